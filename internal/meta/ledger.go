// internal/meta/ledger.go
package meta

import (
	"go-reef-survivors/internal/utils"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

// bonusTable[category][level] — прибавка к базовой характеристике.
var bonusTable = [CategoryCount][MaxLevel + 1]float64{
	Strength: {0, 0.1, 0.2, 0.3, 0.5},
	Recovery: {0, 0.25, 0.35, 0.40, 0.50},
	Speed:    {0, 0.5, 1, 1.5, 2},
	Magnet:   {0, 1, 1.4, 2.3, 3.6},
	Health:   {0, 5, 10, 15, 25},
}

// GetUpgradeBonus returns the bonus for a category at a level. The level is
// clamped to [0, MaxLevel]; an unknown category yields 0 and a warning on the
// global logger.
func GetUpgradeBonus(c Category, level int) float64 {
	if !c.Valid() {
		zlog.Warn().Int("category", int(c)).Int("upgrade_level", level).Msg("unknown upgrade category")
		return 0
	}
	return bonusTable[c][utils.ClampInt(level, 0, MaxLevel)]
}

// Ledger хранит уровни постоянных прокачек (0..4 на категорию).
type Ledger struct {
	levels [CategoryCount]int
	log    zerolog.Logger
}

func NewLedger(log zerolog.Logger) *Ledger {
	return &Ledger{log: log.With().Str("service", "ledger").Logger()}
}

// Points returns the current level of c.
func (l *Ledger) Points(c Category) int {
	if !c.Valid() {
		l.log.Warn().Int("category", int(c)).Msg("unknown upgrade category")
		return 0
	}
	return l.levels[c]
}

// Bonus returns the bonus granted by the current level of c.
func (l *Ledger) Bonus(c Category) float64 {
	if !c.Valid() {
		l.log.Warn().Int("category", int(c)).Msg("unknown upgrade category")
		return 0
	}
	return GetUpgradeBonus(c, l.levels[c])
}

// AddPoint raises c by one level. Returns false at max level.
func (l *Ledger) AddPoint(c Category) bool {
	if !c.Valid() {
		l.log.Warn().Int("category", int(c)).Msg("unknown upgrade category")
		return false
	}
	if l.levels[c] >= MaxLevel {
		l.log.Info().Stringer("category", c).Msg("upgrade already maxed")
		return false
	}
	l.levels[c]++
	return true
}

// SetLevel sets c directly (clamped); used when loading a profile.
func (l *Ledger) SetLevel(c Category, level int) {
	if !c.Valid() {
		return
	}
	l.levels[c] = utils.ClampInt(level, 0, MaxLevel)
}

// Levels returns a copy of all levels in category order.
func (l *Ledger) Levels() [CategoryCount]int {
	return l.levels
}

// Reset drops every category back to level 0.
func (l *Ledger) Reset() {
	l.levels = [CategoryCount]int{}
}
