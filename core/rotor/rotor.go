// core/rotor/rotor.go
package rotor

import (
	"fmt"
	"strings"

	"enigma-core/alphabet"
)

// MaxTurnovers is the most notches a wheel carries.
const MaxTurnovers = 2

// Rotor is an immutable wheel: a wiring plus its turnover symbols.
// A Rotor holds no position; offsets belong to the machine using it,
// so one Rotor can be shared by any number of machines.
type Rotor struct {
	Permutation
	name      string
	turnovers []rune
	notch     [alphabet.Size]bool // indexed by symbol
}

// NewRotor builds a rotor from a 26-letter wiring and up to two turnover symbols.
func NewRotor(name, wiring string, turnovers ...rune) (*Rotor, error) {
	p, err := NewPermutation(wiring)
	if err != nil {
		return nil, fmt.Errorf("rotor %s: %w", name, err)
	}
	if len(turnovers) > MaxTurnovers {
		return nil, fmt.Errorf("rotor %s: %w: %d turnovers, at most %d", name, ErrInvalidTurnover, len(turnovers), MaxTurnovers)
	}
	r := &Rotor{Permutation: p, name: name}
	for _, t := range turnovers {
		j, ok := alphabet.Index(t)
		if !ok {
			return nil, fmt.Errorf("rotor %s: %w: %q", name, ErrInvalidTurnover, t)
		}
		if r.notch[j] {
			continue
		}
		r.notch[j] = true
		r.turnovers = append(r.turnovers, t)
	}
	return r, nil
}

// MustRotor is NewRotor for package-level tables; it panics on bad input.
func MustRotor(name, wiring string, turnovers ...rune) *Rotor {
	r, err := NewRotor(name, wiring, turnovers...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Rotor) Name() string { return r.name }

// Turnovers returns a copy of the notch symbols in declaration order.
func (r *Rotor) Turnovers() []rune {
	return append([]rune(nil), r.turnovers...)
}

// AtNotch reports whether the symbol wired at offset is a turnover symbol.
func (r *Rotor) AtNotch(offset int) bool {
	return r.notch[r.indexAt(alphabet.Mod(offset))]
}

// Forward routes a signal from the entry side toward the reflector.
func (r *Rotor) Forward(signal, offset int) int {
	return r.indexAt(alphabet.Mod(signal + offset))
}

// Backward routes a signal from the reflector side back to the entry.
// Backward(Forward(x, k), k) == x for every x and k.
func (r *Rotor) Backward(signal, offset int) int {
	return alphabet.Mod(r.positionOf(alphabet.Mod(signal)) - offset)
}

// String renders the wiring and notches, e.g. "EKMF…CJ, [R]".
func (r *Rotor) String() string {
	ts := make([]string, len(r.turnovers))
	for i, t := range r.turnovers {
		ts[i] = string(t)
	}
	return r.Permutation.String() + ", [" + strings.Join(ts, " ") + "]"
}
