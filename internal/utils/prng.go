// internal/utils/prng.go
package utils

import (
	"go-reef-survivors/internal/defs"
	"go-reef-survivors/pkg/geom"
	"math"
	"math/rand"
	"time"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed возвращает сид, с которым создан генератор.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое число в диапазоне [0, n). При n <= 0 возвращает 0.
func (s *PRNGService) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range возвращает число в диапазоне [min, max].
func (s *PRNGService) Range(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + s.rng.Float64()*(max-min)
}

// Direction возвращает случайный единичный вектор.
func (s *PRNGService) Direction() geom.Vec2 {
	return geom.FromAngle(s.rng.Float64()*2*math.Pi, 1)
}

// InsideCircle возвращает случайную точку внутри круга радиуса r.
func (s *PRNGService) InsideCircle(r float64) geom.Vec2 {
	return s.Direction().Scale(r * math.Sqrt(s.rng.Float64()))
}

// ChooseWeighted выполняет взвешенный случайный выбор из таблицы выпадения.
// Он суммирует все веса, выбирает случайное число в этом диапазоне,
// а затем находит элемент, которому соответствует это число.
// Пустой PickupID у выбранной записи означает «ничего не выпало».
func (s *PRNGService) ChooseWeighted(entries []defs.DropEntry) string {
	if len(entries) == 0 {
		return ""
	}

	totalWeight := 0.0
	for _, entry := range entries {
		if entry.Weight > 0 {
			totalWeight += entry.Weight
		}
	}

	if totalWeight <= 0 {
		return entries[0].PickupID
	}

	r := s.rng.Float64() * totalWeight
	upto := 0.0
	for _, entry := range entries {
		if entry.Weight <= 0 {
			continue
		}
		if upto+entry.Weight > r {
			return entry.PickupID
		}
		upto += entry.Weight
	}

	return entries[len(entries)-1].PickupID
}
