// internal/defs/types.go
package defs

import "image/color"

// Color is an RGBA color as written in content files.
type Color struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
	A uint8 `json:"a" yaml:"a"`
}

// RGBA converts to the image/color type used by the renderer.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Visuals holds drawing parameters shared by enemies, pickups and props.
type Visuals struct {
	Color  Color   `json:"color" yaml:"color"`
	Radius float64 `json:"radius" yaml:"radius"`
}

// ModifierDefinition describes a stat change granted by an item.
// Stat is one of max_health, recovery, move_speed, strength, projectile_speed,
// magnet, reflect. Kind is "percent" (v *= 1+value/100) or "flat" (v += value).
type ModifierDefinition struct {
	Stat  string  `json:"stat" yaml:"stat"`
	Kind  string  `json:"kind" yaml:"kind"`
	Value float64 `json:"value" yaml:"value"`
}
