// internal/stats/runtime.go
package stats

// RuntimeStats — характеристики игрока в текущем забеге.
// Инвариант: 0 <= CurrentHealth <= MaxHealth.
type RuntimeStats struct {
	CurrentHealth   float64
	MaxHealth       float64
	Recovery        float64 // здоровья в секунду
	MoveSpeed       float64
	Strength        float64 // множитель урона оружия
	ProjectileSpeed float64
	Magnet          float64 // радиус притяжения подбираемых предметов
	Reflect         float64 // процент отражённого урона
}

// ApplyModifier mutates the stat in place. Raising MaxHealth does not heal;
// lowering it below CurrentHealth clamps CurrentHealth.
func (s *RuntimeStats) ApplyModifier(m Modifier) {
	switch m.Stat {
	case MaxHealth:
		s.MaxHealth = m.apply(s.MaxHealth)
		if s.MaxHealth < 0 {
			s.MaxHealth = 0
		}
		if s.CurrentHealth > s.MaxHealth {
			s.CurrentHealth = s.MaxHealth
		}
	case Recovery:
		s.Recovery = m.apply(s.Recovery)
	case MoveSpeed:
		s.MoveSpeed = m.apply(s.MoveSpeed)
	case Strength:
		s.Strength = m.apply(s.Strength)
	case ProjectileSpeed:
		s.ProjectileSpeed = m.apply(s.ProjectileSpeed)
	case Magnet:
		s.Magnet = m.apply(s.Magnet)
	case Reflect:
		s.Reflect = m.apply(s.Reflect)
	}
}

// RestoreHealth heals up to MaxHealth and returns the amount actually restored.
func (s *RuntimeStats) RestoreHealth(amount float64) float64 {
	if amount <= 0 || s.CurrentHealth >= s.MaxHealth {
		return 0
	}
	before := s.CurrentHealth
	s.CurrentHealth += amount
	if s.CurrentHealth > s.MaxHealth {
		s.CurrentHealth = s.MaxHealth
	}
	return s.CurrentHealth - before
}

// TakeDamage subtracts amount (never below zero) and reports death.
func (s *RuntimeStats) TakeDamage(amount float64) bool {
	if amount > 0 {
		s.CurrentHealth -= amount
		if s.CurrentHealth < 0 {
			s.CurrentHealth = 0
		}
	}
	return s.CurrentHealth <= 0
}

// Recover regenerates Recovery*dt health.
func (s *RuntimeStats) Recover(dt float64) {
	if s.Recovery > 0 && dt > 0 {
		s.RestoreHealth(s.Recovery * dt)
	}
}

// Alive reports whether health is above zero.
func (s RuntimeStats) Alive() bool {
	return s.CurrentHealth > 0
}

// ReflectedDamage is how much of an incoming hit is thrown back at the attacker.
func (s RuntimeStats) ReflectedDamage(incoming float64) float64 {
	if s.Reflect <= 0 || incoming <= 0 {
		return 0
	}
	return incoming * s.Reflect / 100 * (1 + s.Strength)
}
