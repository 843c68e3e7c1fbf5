// pkg/geom/smooth.go
package geom

import "math"

// SmoothDamp gradually moves current towards target with a critically damped
// spring. velocity is carried between calls by the caller. maxSpeed bounds the
// travel speed, smoothTime is roughly the time to reach the target.
// The result never overshoots the target.
func SmoothDamp(current, target Vec2, velocity *Vec2, smoothTime, maxSpeed, dt float64) Vec2 {
	if dt <= 0 {
		return current
	}
	smoothTime = math.Max(0.0001, smoothTime)
	omega := 2 / smoothTime
	x := omega * dt
	exp := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current.Sub(target)
	originalTo := target

	// ограничиваем максимальную скорость
	maxChange := maxSpeed * smoothTime
	if sq := change.LenSq(); sq > maxChange*maxChange {
		change = change.Scale(maxChange / math.Sqrt(sq))
	}
	target = current.Sub(change)

	temp := velocity.Add(change.Scale(omega)).Scale(dt)
	*velocity = velocity.Sub(temp.Scale(omega)).Scale(exp)
	output := target.Add(change.Add(temp).Scale(exp))

	// не проскакиваем цель
	if originalTo.Sub(current).Dot(output.Sub(originalTo)) > 0 {
		output = originalTo
		*velocity = Zero
	}
	return output
}
