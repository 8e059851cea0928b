// core/machine/state.go
package machine

import (
	"fmt"
	"strings"

	"enigma-core/alphabet"
)

// Table returns what each letter A..Z encodes to when typed as the first
// key on a machine at offsets 0,0,0. The machine itself is not changed.
func (m *Machine) Table() string {
	b := make([]byte, alphabet.Size)
	probe := m.Clone()
	for i := 0; i < alphabet.Size; i++ {
		probe.offsets = [Slots]int{}
		probe.Step()
		r, err := probe.route(i)
		if err != nil {
			b[i] = '?'
			continue
		}
		b[i] = byte(r)
	}
	return string(b)
}

// String dumps the wheel choices, offsets, reflector and the zero-offset table.
func (m *Machine) String() string {
	var sb strings.Builder
	for i, r := range m.rotors {
		fmt.Fprintf(&sb, "Rotor %d: %s offset: %d\n", i, r, m.offsets[i])
	}
	fmt.Fprintf(&sb, "Reflector: %s\n", m.reflector)
	fmt.Fprintf(&sb, "In:  %s\n", alphabet.Letters)
	fmt.Fprintf(&sb, "Out: %s", m.Table())
	return sb.String()
}
