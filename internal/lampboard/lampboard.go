// internal/lampboard/lampboard.go
package lampboard

import (
	"context"
	"io"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"enigma-core/machine"
	"enigma/internal/pretty"
)

// Rows is the lamp layout of the wartime keyboard.
var Rows = []string{"QWERTZUIO", "ASDFGHJK", "PYXCVBNML"}

var (
	windowStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(pretty.Muted).Padding(0, 1).Bold(true)
	litStyle    = lipgloss.NewStyle().Bold(true).Foreground(pretty.Lamp)
	darkStyle   = lipgloss.NewStyle().Foreground(pretty.Muted)
	helpStyle   = lipgloss.NewStyle().Foreground(pretty.Muted).Italic(true)
)

// Model is the bubbletea model for one keyboard session. Each letter key
// advances the machine and lights the lamp of the encoded letter.
type Model struct {
	m     *machine.Machine
	lamp  rune
	typed []rune
	tape  []rune
}

// New wraps a machine. The machine is advanced in place.
func New(m *machine.Machine) Model { return Model{m: m} }

func (Model) Init() tea.Cmd { return nil }

func (l Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}
	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return l, tea.Quit
	case tea.KeyCtrlR:
		l.m.Reset()
		l.lamp = 0
		l.typed = nil
		l.tape = nil
	case tea.KeySpace:
		l.typed = append(l.typed, ' ')
		l.tape = append(l.tape, ' ')
	case tea.KeyRunes:
		for _, r := range key.Runes {
			l.press(r)
		}
	}
	// Backspace and every other key fall through: the wheels cannot step back.
	return l, nil
}

func (l *Model) press(r rune) {
	up := unicode.ToUpper(r)
	out, err := l.m.EncodeCharacter(up)
	if err != nil {
		l.typed = append(l.typed, r)
		l.tape = append(l.tape, r)
		return
	}
	l.lamp = out
	l.typed = append(l.typed, up)
	l.tape = append(l.tape, out)
}

// Lamp is the letter lit by the last key, or 0.
func (l Model) Lamp() rune { return l.lamp }

// Typed is the plaintext keyed so far, letters in upper case.
func (l Model) Typed() string { return string(l.typed) }

// Tape is the encoded output so far.
func (l Model) Tape() string { return string(l.tape) }

func (l Model) View() string {
	var sb strings.Builder

	pos := l.m.Positions()
	wins := make([]string, 0, len(pos))
	for _, c := range pos {
		wins = append(wins, windowStyle.Render(string(c)))
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, wins...))
	sb.WriteString("\n\n")

	for i, row := range Rows {
		sb.WriteString(strings.Repeat(" ", i))
		for j, c := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if c == l.lamp {
				sb.WriteString(litStyle.Render(string(c)))
			} else {
				sb.WriteString(darkStyle.Render(string(c)))
			}
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("\nin:  " + l.Typed() + "\n")
	sb.WriteString("out: " + l.Tape() + "\n\n")
	sb.WriteString(helpStyle.Render("type to encode, ctrl+r reset, esc quit"))
	sb.WriteByte('\n')
	return sb.String()
}

// Run drives the keyboard until the user quits or ctx is done and returns
// the final model. Signals are left to the caller's context.
func Run(ctx context.Context, m *machine.Machine, in io.Reader, out io.Writer) (Model, error) {
	p := tea.NewProgram(New(m),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithoutSignals(),
	)
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		return fm, err
	}
	return New(m), err
}
