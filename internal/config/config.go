// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth   = 1200
	ScreenHeight  = 900
	PixelsPerUnit = 32.0 // масштаб мира при отрисовке
	MaxDeltaTime  = 0.06
	FixedTick     = 1.0 / 50.0 // шаг физики / спавнера

	// Сессия
	SessionDuration = 1200.0 // обратный отсчёт, секунды
	DraftSlots      = 3

	// Инвентарь
	WeaponSlots  = 2
	PassiveSlots = 4

	// Игрок
	PlayerRadius         = 0.5
	InvincibilityTime    = 0.5
	DefaultCharacterID   = "diver"
	DefaultMoveDirection = 1.0 // вправо, пока игрок не двигался
	PickupCollectRadius  = 0.6
	PickupPullSpeed      = 9.0

	// Враги
	EnemyDespawnDistance = 25.0
	KnockbackForce       = 2.0
	KnockbackDuration    = 0.1
	DamageFlashDuration  = 0.2

	// Питомец (акула)
	PetFollowRadius    = 3.0
	PetDetectionRadius = 15.0
	PetDamage          = 10.0
	PetRechargeTime    = 3.0
	PetRetryDelay      = 1.0
	PetMoveSpeed       = 6.0
	PetSmoothing       = 0.3
	PetHopHeight       = 1.0
	PetArriveEpsilon   = 0.1
	PetRadius          = 0.4
	MaxPets            = 3
	StatueRadius       = 1.2

	// Загрязнение
	PollutionMax       = 100.0
	PollutionMin       = 0.0
	PollutionThreshold = 50.0 // ниже — чистый чанк

	// Террейн
	ChunkSize             = 20.0
	ChunkCheckRadius      = 1 // соседние чанки вокруг игрока
	ChunkCullDistance     = 60.0
	ChunkOptimizeCooldown = 1.0
)

var (
	BackgroundColor = color.RGBA{12, 40, 64, 255}
	CleanChunkColor = color.RGBA{24, 86, 120, 255}
	DirtyChunkColor = color.RGBA{70, 72, 52, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	PlayerColor     = color.RGBA{250, 210, 80, 255}
	PetColor        = color.RGBA{150, 160, 175, 255}
	StatueColor     = color.RGBA{120, 200, 190, 255}
	ProjectileColor = color.RGBA{230, 230, 255, 255}
	OrbiterColor    = color.RGBA{255, 190, 210, 255}
	HealthBarColor  = color.RGBA{220, 60, 60, 255}
	ExpBarColor     = color.RGBA{70, 130, 230, 255}
	PanelColor      = color.RGBA{10, 20, 35, 220}
	PanelStroke     = color.RGBA{240, 240, 240, 255}
	DisabledColor   = color.RGBA{90, 90, 90, 220}
	FlashColor      = color.RGBA{255, 255, 255, 255}
	PollutionClean  = color.RGBA{0, 255, 0, 255}
	PollutionDirty  = color.RGBA{255, 0, 0, 255}
	PickupExpColor  = color.RGBA{80, 200, 255, 255}
	PickupGoldColor = color.RGBA{255, 215, 0, 255}
	PickupHealColor = color.RGBA{255, 90, 120, 255}
	PropColor       = color.RGBA{140, 100, 60, 255}
	StrokeWidth     = 2.0
)
