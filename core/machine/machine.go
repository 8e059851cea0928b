// core/machine/machine.go
package machine

import (
	"errors"
	"fmt"

	"enigma-core/alphabet"
	"enigma-core/rotor"
)

// Slots is the number of wheels a machine carries.
const Slots = 3

// Wheel positions, slowest first.
const (
	Left = iota
	Middle
	Right
)

var (
	ErrRotorCount          = errors.New("rotor count mismatch")
	ErrOffsetCountMismatch = errors.New("offset count mismatch")
)

// Machine is one encoding session: three wheels, a reflector and the wheel
// offsets. Wheels and reflector are shared and never written; the offsets
// are owned by the Machine and advance on every encoded letter.
//
// A Machine is not safe for concurrent use. Build one per session from the
// same rotor values instead.
type Machine struct {
	rotors    [Slots]*rotor.Rotor
	reflector *rotor.Reflector
	offsets   [Slots]int
	initial   [Slots]int
}

// New builds a machine from left-to-right rotors, a reflector and optional
// starting offsets (all zero when omitted).
func New(rotors []*rotor.Rotor, reflector *rotor.Reflector, offsets ...int) (*Machine, error) {
	if len(rotors) != Slots {
		return nil, fmt.Errorf("%w: want %d rotors, got %d", ErrRotorCount, Slots, len(rotors))
	}
	if reflector == nil {
		return nil, errors.New("machine: nil reflector")
	}
	m := &Machine{reflector: reflector}
	for i, r := range rotors {
		if r == nil {
			return nil, fmt.Errorf("machine: nil rotor in slot %d", i)
		}
		m.rotors[i] = r
	}
	if len(offsets) > 0 {
		if err := m.SetOffsets(offsets); err != nil {
			return nil, err
		}
	}
	m.initial = m.offsets
	return m, nil
}

// SetOffsets replaces all offsets. Values are taken mod 26; on a count
// mismatch the machine is left untouched.
func (m *Machine) SetOffsets(offsets []int) error {
	if len(offsets) != Slots {
		return fmt.Errorf("%w: want %d offsets, got %d", ErrOffsetCountMismatch, Slots, len(offsets))
	}
	for i, o := range offsets {
		m.offsets[i] = alphabet.Mod(o)
	}
	return nil
}

// Offsets returns a copy of the current offsets, left to right.
func (m *Machine) Offsets() []int {
	return append([]int(nil), m.offsets[:]...)
}

// Positions renders the offsets as window letters, e.g. "AAB".
func (m *Machine) Positions() string {
	b := make([]byte, Slots)
	for i, o := range m.offsets {
		b[i] = alphabet.Letters[o]
	}
	return string(b)
}

// Reset returns the offsets to the values the machine was built with.
func (m *Machine) Reset() { m.offsets = m.initial }

func (m *Machine) Rotors() []*rotor.Rotor      { return append([]*rotor.Rotor(nil), m.rotors[:]...) }
func (m *Machine) Reflector() *rotor.Reflector { return m.reflector }

// Clone returns an independent session over the same wheels.
func (m *Machine) Clone() *Machine {
	c := *m
	return &c
}

// ParsePositions converts window letters ("AAZ") into offsets.
func ParsePositions(s string) ([]int, error) {
	rs := []rune(alphabet.Normalize(s))
	if len(rs) != Slots {
		return nil, fmt.Errorf("%w: want %d positions, got %d", ErrOffsetCountMismatch, Slots, len(rs))
	}
	out := make([]int, Slots)
	for i, r := range rs {
		j, ok := alphabet.Index(r)
		if !ok {
			return nil, fmt.Errorf("position %d: %w: %q", i+1, alphabet.ErrNotEncodable, r)
		}
		out[i] = j
	}
	return out, nil
}
