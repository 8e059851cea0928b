// core/rotor/reflector.go
package rotor

import (
	"fmt"

	"enigma-core/alphabet"
)

// Reflector is an involutive, fixed-point-free wiring.
type Reflector struct {
	Permutation
	name string
}

// NewReflector validates that the wiring pairs every symbol with a different one.
func NewReflector(name, wiring string) (*Reflector, error) {
	p, err := NewPermutation(wiring)
	if err != nil {
		return nil, fmt.Errorf("reflector %s: %w", name, err)
	}
	for i := 0; i < alphabet.Size; i++ {
		j := p.indexAt(i)
		if j == i {
			return nil, fmt.Errorf("reflector %s: %w: %c maps to itself", name, ErrInvalidReflector, alphabet.Letters[i])
		}
		if p.indexAt(j) != i {
			return nil, fmt.Errorf("reflector %s: %w: %c->%c but %c->%c", name, ErrInvalidReflector,
				alphabet.Letters[i], alphabet.Letters[j], alphabet.Letters[j], alphabet.Letters[p.indexAt(j)])
		}
	}
	return &Reflector{Permutation: p, name: name}, nil
}

// MustReflector panics on bad input.
func MustReflector(name, wiring string) *Reflector {
	r, err := NewReflector(name, wiring)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Reflector) Name() string { return r.name }

// Reflect returns the index paired with i.
func (r *Reflector) Reflect(i int) int {
	return r.indexAt(alphabet.Mod(i))
}
