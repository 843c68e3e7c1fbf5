// internal/ui/format.go
package ui

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"go-reef-survivors/internal/config"
	"go-reef-survivors/internal/stats"
	"go-reef-survivors/pkg/render"
)

// FormatTimer форматирует оставшееся время как MM:SS. Отрицательное — 00:00.
func FormatTimer(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	total := int(math.Floor(seconds))
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// HealthCounter — "текущее / максимум". Живой игрок никогда не показывает 0.
func HealthCounter(current, max float64) string {
	if current < 0 {
		current = 0
	}
	return fmt.Sprintf("%d / %d", int(math.Ceil(current)), int(math.Round(max)))
}

func ExpCounter(exp, cap int) string {
	return fmt.Sprintf("%d / %d", exp, cap)
}

func LevelCounter(level int) string {
	return fmt.Sprintf("Lv. %d", level)
}

func PetCounter(count, max int) string {
	return fmt.Sprintf("Sharks %d/%d", count, max)
}

func KillCounter(kills int) string {
	return fmt.Sprintf("Kills %d", kills)
}

func CurrencyLabel(amount int) string {
	return fmt.Sprintf("Pearls %d", amount)
}

// StatLines — строки для панели характеристик.
func StatLines(s stats.RuntimeStats) []string {
	return []string{
		fmt.Sprintf("Health     %s", HealthCounter(s.CurrentHealth, s.MaxHealth)),
		fmt.Sprintf("Recovery   %.1f/s", s.Recovery),
		fmt.Sprintf("Speed      %.2f", s.MoveSpeed),
		fmt.Sprintf("Strength   x%.2f", s.Strength),
		fmt.Sprintf("Projectile %.2f", s.ProjectileSpeed),
		fmt.Sprintf("Magnet     %.2f", s.Magnet),
		fmt.Sprintf("Reflect    %.0f%%", s.Reflect),
	}
}

// PollutionColor интерполирует зелёный -> красный по уровню загрязнения.
func PollutionColor(level float64) color.RGBA {
	t := clamp01(level / config.PollutionMax)
	return render.LerpColor(config.PollutionClean, config.PollutionDirty, t)
}

func PollutionLabel(level float64) string {
	return fmt.Sprintf("Pollution %d%%", int(math.Round(clamp01(level/config.PollutionMax)*100)))
}

// wrap режет текст по словам на строки не длиннее width символов.
func wrap(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}
