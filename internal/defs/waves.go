// internal/defs/waves.go
package defs

import "go-reef-survivors/pkg/geom"

// EnemyGroupDefinition — сколько врагов одного типа в волне.
type EnemyGroupDefinition struct {
	EnemyID string `json:"enemy_id" yaml:"enemy_id"`
	Count   int    `json:"count" yaml:"count"`
}

// WaveDefinition описывает параметры для одной волны врагов.
type WaveDefinition struct {
	Name          string                 `json:"name" yaml:"name"`
	Groups        []EnemyGroupDefinition `json:"groups" yaml:"groups"`
	SpawnInterval float64                `json:"spawn_interval" yaml:"spawn_interval"` // секунды
}

// SpawnerDefinition — общие настройки спавнера.
type SpawnerDefinition struct {
	MaxEnemiesAllowed int         `json:"max_enemies_allowed" yaml:"max_enemies_allowed"`
	WaveInterval      float64     `json:"wave_interval" yaml:"wave_interval"`
	SpawnPoints       []geom.Vec2 `json:"spawn_points" yaml:"spawn_points"` // относительно игрока
}
