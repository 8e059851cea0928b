// core/records/open.go
package records

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

var gzipMagic = []byte{0x1f, 0x8b}

// readCloser pairs a reader with everything that must be closed behind it.
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (rc *readCloser) Close() error {
	var err error
	for _, c := range rc.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Wrap sniffs r for the gzip magic number and decompresses it when found.
// Closing the result closes the gzip stream (if any) and then c; c may be nil.
func Wrap(r io.Reader, c io.Closer) (io.ReadCloser, error) {
	br := bufio.NewReader(r)
	out := &readCloser{Reader: br}
	if c != nil {
		out.closers = append(out.closers, c)
	}
	sig, _ := br.Peek(len(gzipMagic))
	if len(sig) < len(gzipMagic) || sig[0] != gzipMagic[0] || sig[1] != gzipMagic[1] {
		return out, nil
	}
	gr, err := gzip.NewReader(br)
	if err != nil {
		return nil, err
	}
	out.Reader = gr
	out.closers = append([]io.Closer{gr}, out.closers...)
	return out, nil
}

// Open returns a reader for path; "-" is the process stdin. Gzip input is
// recognized by content, not by name.
func Open(path string) (io.ReadCloser, error) {
	if path == Stdin {
		return Wrap(os.Stdin, nil)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	rc, err := Wrap(fh, fh)
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	return rc, nil
}
