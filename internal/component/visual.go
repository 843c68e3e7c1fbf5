// internal/component/visual.go
package component

import "image/color"

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Timer    float64 // Сколько времени эффект уже активен
	Duration float64 // Общая продолжительность эффекта
}

// Renderable — как рисовать сущность
type Renderable struct {
	Color  color.RGBA
	Radius float64
}
