// internal/meta/pollution.go
package meta

import (
	"go-reef-survivors/internal/config"
	"go-reef-survivors/internal/utils"
	"go-reef-survivors/pkg/render"
	"image/color"
)

// PollutionMeter — уровень загрязнения океана, 0..100, сохраняется между забегами.
type PollutionMeter struct {
	level    float64
	watchers watchers[float64]
}

func NewPollutionMeter(level float64) *PollutionMeter {
	return &PollutionMeter{level: utils.Clamp(level, config.PollutionMin, config.PollutionMax)}
}

// Level returns the current pollution.
func (p *PollutionMeter) Level() float64 {
	return p.level
}

// Set overwrites the level, clamped to [0, 100]. Observers are notified.
func (p *PollutionMeter) Set(level float64) {
	p.level = utils.Clamp(level, config.PollutionMin, config.PollutionMax)
	p.watchers.notify(p.level)
}

// Decrease lowers pollution by x. Only positive x is accepted.
func (p *PollutionMeter) Decrease(x float64) bool {
	if x <= 0 {
		return false
	}
	p.Set(p.level - x)
	return true
}

// Reset returns the meter to fully polluted.
func (p *PollutionMeter) Reset() {
	p.Set(config.PollutionMax)
}

// IsPolluted reports whether new terrain should use the polluted variant.
func (p *PollutionMeter) IsPolluted() bool {
	return p.level >= config.PollutionThreshold
}

// Color interpolates from green (clean) to red (polluted).
func (p *PollutionMeter) Color() color.RGBA {
	return render.LerpColor(config.PollutionClean, config.PollutionDirty, p.level/config.PollutionMax)
}

// Watch registers fn for level changes and returns a cancel func.
func (p *PollutionMeter) Watch(fn func(level float64)) func() {
	return p.watchers.add(fn)
}
