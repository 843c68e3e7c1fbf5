// internal/component/enemy.go
package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID  string  // ID из определений врагов
	Damage float64 // урон при касании игрока
}

// Health — здоровье врага или разрушаемого объекта
type Health struct {
	Value float64
	Max   float64
}

// Prop — разрушаемый объект окружения (ящик)
type Prop struct {
	DefID     string
	DropTable string
}
