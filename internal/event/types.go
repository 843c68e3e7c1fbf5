// internal/event/types.go
package event

import (
	"go-reef-survivors/internal/types"
	"go-reef-survivors/pkg/geom"
)

const (
	EnemySpawned     EventType = "EnemySpawned"
	EnemyHit         EventType = "EnemyHit"
	EnemyKilled      EventType = "EnemyKilled" // Враг уничтожен
	PropDestroyed    EventType = "PropDestroyed"
	PlayerDamaged    EventType = "PlayerDamaged"
	LevelUp          EventType = "LevelUp"
	StatChanged      EventType = "StatChanged"
	ExpChanged       EventType = "ExpChanged"
	PickupCollected  EventType = "PickupCollected"
	DraftOpened      EventType = "DraftOpened"
	DraftClosed      EventType = "DraftClosed"
	WaveAdvanced     EventType = "WaveAdvanced"
	PetSummoned      EventType = "PetSummoned"
	PetAttacked      EventType = "PetAttacked"
	PollutionChanged EventType = "PollutionChanged"
	CurrencyChanged  EventType = "CurrencyChanged"
	GamePaused       EventType = "GamePaused"
	GameResumed      EventType = "GameResumed"
	GameOver         EventType = "GameOver"
	TriggerEnter     EventType = "TriggerEnter"
	TriggerStay      EventType = "TriggerStay"
	TriggerExit      EventType = "TriggerExit"
)

// EnemyKilledData — кто умер и где
type EnemyKilledData struct {
	ID       types.EntityID
	DefID    string
	Position geom.Vec2
}

// EnemyHitData — попадание по врагу
type EnemyHitData struct {
	ID     types.EntityID
	Damage float64
}

// PropDestroyedData — разрушен ящик / бочка
type PropDestroyedData struct {
	ID        types.EntityID
	DropTable string
	Position  geom.Vec2
}

// DamageData — урон по игроку
type DamageData struct {
	Amount float64
	Source types.EntityID
	Health float64
}

// LevelUpData — новый уровень игрока
type LevelUpData struct {
	Level int
}

// ExpData — текущий опыт и порог
type ExpData struct {
	Experience int
	Cap        int
	Level      int
}

// PickupData — подобранный предмет
type PickupData struct {
	Kind   string
	Amount float64
}

// WaveData — номер (с нуля) и имя текущей волны
type WaveData struct {
	Index int
	Name  string
}

// PetData — сколько питомцев призвано
type PetData struct {
	ID    types.EntityID
	Count int
	Max   int
}

// GameOverData — итог забега
type GameOverData struct {
	Survived bool
	Reason   string
}

// TriggerData — пара пересекающихся коллайдеров. A < B по id.
type TriggerData struct {
	A, B       types.EntityID
	TagA, TagB types.Tag
}

// Match возвращает (self, other), если пара состоит из тегов selfTag и otherTag.
func (d TriggerData) Match(selfTag, otherTag types.Tag) (self, other types.EntityID, ok bool) {
	if d.TagA == selfTag && d.TagB == otherTag {
		return d.A, d.B, true
	}
	if d.TagB == selfTag && d.TagA == otherTag {
		return d.B, d.A, true
	}
	return 0, 0, false
}
