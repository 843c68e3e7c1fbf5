// internal/stats/progression.go
package stats

import "go-reef-survivors/internal/defs"

// Progression — уровень и опыт игрока внутри забега.
type Progression struct {
	Level         int
	Experience    int
	ExperienceCap int
	ranges        []defs.LevelRange
}

// NewProgression starts at level 1 with the cap taken from the first range.
func NewProgression(ranges []defs.LevelRange) *Progression {
	p := &Progression{Level: 1, ranges: ranges}
	if len(ranges) > 0 {
		p.ExperienceCap = ranges[0].CapIncrease
	}
	return p
}

// AddExperience adds n and returns how many levels were gained.
// Leftover experience carries into the next level.
func (p *Progression) AddExperience(n int) int {
	if n <= 0 {
		return 0
	}
	p.Experience += n
	gained := 0
	for p.ExperienceCap > 0 && p.Experience >= p.ExperienceCap {
		p.Level++
		p.Experience -= p.ExperienceCap
		p.ExperienceCap += p.capIncrease(p.Level)
		gained++
	}
	return gained
}

func (p *Progression) capIncrease(level int) int {
	for _, r := range p.ranges {
		if level >= r.Start && level <= r.End {
			return r.CapIncrease
		}
	}
	return 0
}
