// internal/component/wave.go
package component

// EnemyGroup — группа одного типа врагов внутри волны
type EnemyGroup struct {
	EnemyID string
	Count   int
	Spawned int
}

// Wave — состояние текущей волны
type Wave struct {
	Index         int
	Name          string
	Groups        []EnemyGroup
	Quota         int // сумма Count по группам
	Spawned       int
	SpawnInterval float64
}

// Done reports whether the whole quota has been spawned.
func (w *Wave) Done() bool {
	return w.Spawned >= w.Quota
}
