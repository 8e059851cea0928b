// core/machine/step.go
package machine

import "enigma-core/alphabet"

// Step advances the wheels once, as a keypress does.
//
// Both notch checks read the offsets as they were before this step, so a
// middle wheel sitting on its own notch carries the left wheel and moves
// itself (the double step), and may move a second time in the same step
// if the right wheel is on its notch too.
func (m *Machine) Step() {
	midNotch := m.rotors[Middle].AtNotch(m.offsets[Middle])
	rightNotch := m.rotors[Right].AtNotch(m.offsets[Right])

	if midNotch {
		m.offsets[Left] = alphabet.Mod(m.offsets[Left] + 1)
		m.offsets[Middle] = alphabet.Mod(m.offsets[Middle] + 1)
	}
	if rightNotch {
		m.offsets[Middle] = alphabet.Mod(m.offsets[Middle] + 1)
	}
	m.offsets[Right] = alphabet.Mod(m.offsets[Right] + 1)
}
