// internal/writers/brokenpipe.go
package writers

import (
	"errors"
	"io"
	"syscall"
)

// downstreamGone are the errors a write gets once the reader has left,
// e.g. `enigma batch big.txt | head` or a closed socket.
var downstreamGone = []error{syscall.EPIPE, syscall.ECONNRESET, io.ErrClosedPipe}

// IsBrokenPipe reports whether err means the consumer stopped reading.
// Such errors end output early but do not fail the run.
func IsBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	for _, target := range downstreamGone {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
