// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"enigma/internal/batch"
)

// Options shared by all result writers.
type Options struct {
	Header    bool
	Rotors    []string
	Reflector string
	BufSize   int
}

// StartFunc launches a writer goroutine; results go in, one error comes out
// after the input channel is closed.
type StartFunc func(out io.Writer, o Options) (chan<- batch.Result, <-chan error)

var resultWriters = map[string]StartFunc{}

// Register adds a format (last registration wins).
func Register(format string, fn StartFunc) { resultWriters[format] = fn }

// Formats lists registered format names.
func Formats() []string {
	out := make([]string, 0, len(resultWriters))
	for k := range resultWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Start dispatches to the writer registered for format. An unknown format
// still returns a usable channel; the error arrives once it is closed.
func Start(format string, out io.Writer, o Options) (chan<- batch.Result, <-chan error) {
	if fn, ok := resultWriters[format]; ok {
		return fn(out, o)
	}
	in := make(chan batch.Result)
	errCh := make(chan error, 1)
	go func() {
		for range in {
		}
		errCh <- fmt.Errorf("unknown result format %q (no writer registered)", format)
	}()
	return in, errCh
}
