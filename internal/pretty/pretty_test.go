package pretty

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enigma-core/catalog"
	"enigma-core/machine"
)

func standardMachine(t *testing.T, offsets ...int) *machine.Machine {
	t.Helper()
	rs, err := catalog.Rotors("I", "II", "III")
	require.NoError(t, err)
	refl, err := catalog.Reflector("B")
	require.NoError(t, err)
	m, err := machine.New(rs, refl, offsets...)
	require.NoError(t, err)
	return m
}

func plainStyles() Styles {
	s := DefaultStyles()
	s.Title = lipgloss.NewStyle()
	s.Label = lipgloss.NewStyle()
	s.Window = lipgloss.NewStyle()
	return s
}

func TestState(t *testing.T) {
	m := standardMachine(t, 0, 1, 25)
	st := State(m)

	require.Len(t, st.Rotors, 3)
	assert.Equal(t, "B", st.Reflector)
	assert.Equal(t, "YRUHQSLDPXNGOKMIEBFZCWVJAT", st.Wiring)
	assert.Equal(t, "ABZ", st.Positions)
	assert.Equal(t, "DINASOYVBMRQJCFULKEZPHXWGT", st.Table)

	assert.Equal(t, "I", st.Rotors[0].Name)
	assert.Equal(t, "EKMFLGDQVZNTOWYHXUSPAIBRCJ", st.Rotors[0].Wiring)
	assert.Equal(t, "R", st.Rotors[0].Turnovers)
	assert.Equal(t, 1, st.Rotors[1].Offset)
	assert.Equal(t, "B", st.Rotors[1].Window)
	assert.Equal(t, 2, st.Rotors[2].Slot)
	assert.Equal(t, "Z", st.Rotors[2].Window)
}

func TestStateDoesNotAdvance(t *testing.T) {
	m := standardMachine(t, 3, 4, 5)
	_ = State(m)
	assert.Equal(t, []int{3, 4, 5}, m.Offsets())
}

func TestRender(t *testing.T) {
	out := Render(State(standardMachine(t)), plainStyles())

	for _, want := range []string{
		"I (left)", "II (middle)", "III (right)",
		"EKMFLGDQVZNTOWYHXUSPAIBRCJ",
		"AJDKSIRUXBLHWTMCQGZNPYFVOE",
		"BDFHJLCPRTXVZNYEIWGAKMUSQO",
		"reflector B",
		"YRUHQSLDPXNGOKMIEBFZCWVJAT",
		"In:  ABCDEFGHIJKLMNOPQRSTUVWXYZ",
		"Out: DINASOYVBMRQJCFULKEZPHXWGT",
	} {
		assert.Contains(t, out, want)
	}
	assert.True(t, strings.HasSuffix(out, "\n"))
}
