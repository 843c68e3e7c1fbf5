// internal/component/combat.go
package component

// Weapon — экипированное оружие игрока
type Weapon struct {
	DefID    string
	Slot     int
	Cooldown float64 // до следующей атаки
}
