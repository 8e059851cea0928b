// core/rotor/errors.go
package rotor

import "errors"

var (
	ErrInvalidPermutation = errors.New("invalid permutation")
	ErrInvalidReflector   = errors.New("invalid reflector")
	ErrInvalidTurnover    = errors.New("invalid turnover")
	// ErrInconsistent means a construction-time invariant no longer holds.
	ErrInconsistent = errors.New("internal consistency error")
)
