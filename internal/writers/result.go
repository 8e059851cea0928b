// internal/writers/result.go
package writers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"enigma-core/alphabet"
	"enigma/internal/batch"
	"enigma/internal/jsonlutil"
	"enigma/pkg/api"
)

func init() {
	Register("text", StartTextWriter)
	Register("json", StartJSONWriter)
	Register("jsonl", StartJSONLWriter)
}

// TextHeader is the column line of the text format.
const TextHeader = "# id\tstart\tend\tletters\toutput"

// ToAPIResult converts a batch result into the v1 wire schema.
func ToAPIResult(r batch.Result, o Options) api.ResultV1 {
	return api.ResultV1{
		Session:   r.Session,
		ID:        r.Record.ID,
		Source:    r.Record.Source,
		Line:      r.Record.Line,
		Rotors:    o.Rotors,
		Reflector: o.Reflector,
		Start:     Window(r.Start),
		End:       Window(r.End),
		Letters:   r.Letters,
		Output:    r.Output,
	}
}

// StartTextWriter streams one TSV row per result. Tabs and newlines inside
// the output are escaped so every record stays on one row.
func StartTextWriter(out io.Writer, o Options) (chan<- batch.Result, <-chan error) {
	in := make(chan batch.Result, bufSize(o))
	errCh := make(chan error, 1)
	go func() {
		bw := bufio.NewWriter(out)
		var err error
		if o.Header {
			_, err = fmt.Fprintln(bw, TextHeader)
		}
		for r := range in {
			if err != nil {
				continue // drain
			}
			_, err = fmt.Fprintf(bw, "%s\t%s\t%s\t%d\t%s\n",
				r.Record.ID, Window(r.Start), Window(r.End), r.Letters, escape(r.Output))
		}
		if err == nil {
			err = bw.Flush()
		}
		errCh <- err
	}()
	return in, errCh
}

// StartJSONWriter collects all results and writes one indented JSON array.
func StartJSONWriter(out io.Writer, o Options) (chan<- batch.Result, <-chan error) {
	in := make(chan batch.Result, bufSize(o))
	errCh := make(chan error, 1)
	go func() {
		list := make([]api.ResultV1, 0)
		for r := range in {
			list = append(list, ToAPIResult(r, o))
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		errCh <- enc.Encode(list)
	}()
	return in, errCh
}

// StartJSONLWriter streams each result as one JSON line (v1).
func StartJSONLWriter(out io.Writer, o Options) (chan<- batch.Result, <-chan error) {
	return jsonlutil.Start[batch.Result](out, bufSize(o),
		func(enc *json.Encoder, r batch.Result) error {
			return enc.Encode(ToAPIResult(r, o))
		},
		IsBrokenPipe,
	)
}

// Window renders offsets as window letters.
func Window(offsets []int) string {
	b := make([]byte, len(offsets))
	for i, o := range offsets {
		b[i] = alphabet.Letters[alphabet.Mod(o)]
	}
	return string(b)
}

func bufSize(o Options) int {
	if o.BufSize <= 0 {
		return 64
	}
	return o.BufSize
}

var escaper = strings.NewReplacer("\\", `\\`, "\t", `\t`, "\n", `\n`, "\r", `\r`)

func escape(s string) string { return escaper.Replace(s) }
