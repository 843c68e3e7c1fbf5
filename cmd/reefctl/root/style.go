// cmd/reefctl/root/style.go
package root

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	cPrimary = lipgloss.Color("39")  // морская волна
	cGood    = lipgloss.Color("42")  // green
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
)

// LabelValue — «Label: value» с выделенной подписью.
func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}
