// core/records/stream.go
package records

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
)

// Record is one message to encode.
type Record struct {
	ID     string
	Text   string
	Source string // file the record came from ("-" for stdin)
	Line   int    // 1-based line of the header, or of the text for headerless input
}

// StreamCtx parses message records from r and calls emit for each one.
//
// A line starting with '>' opens a record named by the first word of the
// header; every following line up to the next header belongs to it, joined
// with '\n' (trailing blank lines dropped). Lines before the first header
// are records on their own, named "<source>:<line>"; blank ones are skipped.
//
// Cancellation is checked between lines.
func StreamCtx(ctx context.Context, r io.Reader, source string, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 16 * 1024 * 1024
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		cur    *Record
		body   []string
		lineNo int
	)

	flush := func() error {
		if cur == nil {
			return nil
		}
		for len(body) > 0 && strings.TrimSpace(body[len(body)-1]) == "" {
			body = body[:len(body)-1]
		}
		cur.Text = strings.Join(body, "\n")
		rec := *cur
		cur, body = nil, body[:0]
		return emit(rec)
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		lineNo++
		line := bytes.TrimRight(sc.Bytes(), "\r")
		if len(line) > 0 && line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			cur = &Record{ID: parseHeaderID(line[1:], source, lineNo), Source: source, Line: lineNo}
			continue
		}
		if cur != nil {
			body = append(body, string(line))
			continue
		}
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		rec := Record{ID: fmt.Sprintf("%s:%d", source, lineNo), Text: string(line), Source: source, Line: lineNo}
		if err := emit(rec); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("records scan: %w", err)
	}
	return flush()
}

// StreamPathCtx opens path (see Open) and streams its records.
func StreamPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	return StreamInputCtx(ctx, path, nil, emit)
}

// StreamInputCtx is StreamPathCtx with stdin supplied by the caller: the
// path "-" reads stdin when it is non-nil. Gzip is detected on either.
func StreamInputCtx(ctx context.Context, path string, stdin io.Reader, emit func(Record) error) error {
	var (
		rc  io.ReadCloser
		err error
	)
	if path == Stdin && stdin != nil {
		rc, err = Wrap(stdin, nil)
	} else {
		rc, err = Open(path)
	}
	if err != nil {
		return err
	}
	defer rc.Close()
	return StreamCtx(ctx, rc, path, emit)
}

func parseHeaderID(hdr []byte, source string, lineNo int) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		hdr = hdr[:i]
	}
	if len(hdr) == 0 {
		return fmt.Sprintf("%s:%d", source, lineNo)
	}
	return string(hdr)
}
