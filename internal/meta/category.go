// internal/meta/category.go
package meta

import (
	"fmt"
	"strings"
)

// Category — одна из пяти постоянных прокачек.
type Category int

const (
	Strength Category = iota
	Recovery
	Speed
	Magnet
	Health
)

const (
	CategoryCount = 5
	MaxLevel      = 4
)

var categoryNames = [CategoryCount]string{"Strength", "Recovery", "Speed", "Magnet", "Health"}

// Categories returns all categories in storage order.
func Categories() []Category {
	return []Category{Strength, Recovery, Speed, Magnet, Health}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c >= 0 && c < CategoryCount
}

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory accepts a category name in any case.
func ParseCategory(s string) (Category, error) {
	for i, name := range categoryNames {
		if strings.EqualFold(name, s) {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
