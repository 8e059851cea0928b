// internal/pretty/pretty.go
package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"enigma-core/alphabet"
	"enigma-core/machine"
	"enigma/pkg/api"
)

var slotNames = [machine.Slots]string{"left", "middle", "right"}

// Palette for the state panels.
var (
	Accent = lipgloss.Color("#8BC34A")
	Muted  = lipgloss.Color("#6B7A90")
	Lamp   = lipgloss.Color("#FFC107")
)

// Styles groups the lipgloss styles used by Render.
type Styles struct {
	Panel  lipgloss.Style
	Title  lipgloss.Style
	Label  lipgloss.Style
	Window lipgloss.Style
	Wiring lipgloss.Style
	Table  lipgloss.Style
}

// DefaultStyles returns rounded panels with a lime accent.
func DefaultStyles() Styles {
	return Styles{
		Panel:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Muted).Padding(0, 1),
		Title:  lipgloss.NewStyle().Bold(true).Foreground(Accent),
		Label:  lipgloss.NewStyle().Foreground(Muted),
		Window: lipgloss.NewStyle().Bold(true).Foreground(Lamp),
		Wiring: lipgloss.NewStyle(),
		Table:  lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true, false, false, false).BorderForeground(Muted),
	}
}

// State captures a machine's configuration in the stable dump schema.
func State(m *machine.Machine) api.StateV1 {
	offs := m.Offsets()
	st := api.StateV1{
		Reflector: m.Reflector().Name(),
		Wiring:    m.Reflector().Permutation.String(),
		Positions: m.Positions(),
		Table:     m.Table(),
	}
	for i, r := range m.Rotors() {
		st.Rotors = append(st.Rotors, api.RotorV1{
			Slot:      i,
			Name:      r.Name(),
			Wiring:    r.Permutation.String(),
			Turnovers: string(r.Turnovers()),
			Offset:    offs[i],
			Window:    string(alphabet.Letters[offs[i]]),
		})
	}
	return st
}

// Render draws the rotors side by side, then the reflector and the
// zero-offset substitution table.
func Render(st api.StateV1, s Styles) string {
	panels := make([]string, 0, len(st.Rotors))
	for _, r := range st.Rotors {
		name := r.Name
		if r.Slot >= 0 && r.Slot < len(slotNames) {
			name = fmt.Sprintf("%s (%s)", r.Name, slotNames[r.Slot])
		}
		body := strings.Join([]string{
			s.Title.Render(name),
			s.Label.Render("window ") + s.Window.Render(r.Window) + s.Label.Render(fmt.Sprintf("  offset %d", r.Offset)),
			s.Label.Render("notch  ") + r.Turnovers,
			s.Wiring.Render(r.Wiring),
		}, "\n")
		panels = append(panels, s.Panel.Render(body))
	}
	rotors := lipgloss.JoinHorizontal(lipgloss.Top, panels...)

	refl := s.Panel.Render(s.Title.Render("reflector "+st.Reflector) + "\n" + s.Wiring.Render(st.Wiring))

	table := s.Table.Render(
		s.Label.Render("In:  ") + alphabet.Letters + "\n" +
			s.Label.Render("Out: ") + st.Table)

	return lipgloss.JoinVertical(lipgloss.Left, rotors, refl, table) + "\n"
}
