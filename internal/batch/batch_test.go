package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"enigma-core/machine"
	"enigma/internal/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func factory(t *testing.T, positions string) Factory {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Machine.Positions = positions
	require.NoError(t, cfg.Validate())
	return cfg.NewMachine
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestRunPreservesOrderAcrossWorkers(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 200; i++ {
		fmt.Fprintf(&sb, ">m%03d\nMESSAGE NUMBER %d FOLLOWS\n", i, i)
	}
	src := writeFile(t, "many.txt", sb.String())

	var got []Result
	n, err := Run(context.Background(), Config{Workers: 8, Session: "s1"}, []string{src}, factory(t, "AAA"), func(r Result) error {
		got = append(got, r)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 200, n)
	require.Len(t, got, 200)

	for i, r := range got {
		assert.Equal(t, i, r.Seq)
		assert.Equal(t, fmt.Sprintf("m%03d", i), r.Record.ID)
		assert.Equal(t, "s1", r.Session)

		// each record is its own session from AAA
		m, err := factory(t, "AAA")()
		require.NoError(t, err)
		want, err := m.EncodeMessage(r.Record.Text)
		require.NoError(t, err)
		assert.Equal(t, want, r.Output)
		assert.Equal(t, []int{0, 0, 0}, r.Start)
		assert.Equal(t, m.Offsets(), r.End)
	}
}

func TestRunKnownVectorAndLetters(t *testing.T) {
	src := writeFile(t, "one.txt", "AB3 CD!\nJACKDAWS LOVE MY BIG SPHINX OF QUARTZ\n")
	var got []Result
	n, err := Run(context.Background(), Config{Workers: 2}, []string{src}, factory(t, "AAA"), func(r Result) error {
		got = append(got, r)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 2, n)
	assert.Equal(t, "DM3 QV!", got[0].Output)
	assert.Equal(t, 4, got[0].Letters)
	assert.Equal(t, []int{0, 0, 4}, got[0].End)
	assert.Equal(t, "MHQZRJHM RNEJ UD GHH AOGKCP WU GQUJLO", got[1].Output)
	assert.Equal(t, 31, got[1].Letters)
	assert.NotEmpty(t, got[0].Session, "session defaults to a uuid")
	assert.Equal(t, got[0].Session, got[1].Session)
}

func TestRunMultipleSources(t *testing.T) {
	a := writeFile(t, "a.txt", "AAA\nBBB\n")
	b := writeFile(t, "b.txt", ">x\nCCC\n")
	var ids []string
	n, err := Run(context.Background(), Config{Workers: 3}, []string{a, b}, factory(t, "AAA"), func(r Result) error {
		ids = append(ids, r.Record.ID)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{a + ":1", a + ":2", "x"}, ids)
}

func TestRunReadsGivenStdin(t *testing.T) {
	file := writeFile(t, "a.txt", ">f\nCCC\n")
	var got []Result
	n, err := Run(context.Background(),
		Config{Workers: 2, Stdin: strings.NewReader(">s\nAB3 CD!\n")},
		[]string{"-", file}, factory(t, "AAA"),
		func(r Result) error {
			got = append(got, r)
			return nil
		})
	require.NoError(t, err)
	require.Equal(t, 2, n)
	assert.Equal(t, "s", got[0].Record.ID)
	assert.Equal(t, "-", got[0].Record.Source)
	assert.Equal(t, "DM3 QV!", got[0].Output)
	assert.Equal(t, "f", got[1].Record.ID)
}

func TestRunVisitErrorStops(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 500; i++ {
		sb.WriteString("HELLO WORLD\n")
	}
	src := writeFile(t, "lots.txt", sb.String())
	stop := errors.New("sink closed")
	n, err := Run(context.Background(), Config{Workers: 4}, []string{src}, factory(t, "AAA"), func(r Result) error {
		if r.Seq == 10 {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 10, n)
}

func TestRunFactoryError(t *testing.T) {
	src := writeFile(t, "one.txt", "HELLO\n")
	bad := func() (*machine.Machine, error) { return nil, machine.ErrRotorCount }
	_, err := Run(context.Background(), Config{Workers: 2}, []string{src}, bad, func(Result) error { return nil })
	assert.ErrorIs(t, err, machine.ErrRotorCount)
}

func TestRunMissingSource(t *testing.T) {
	_, err := Run(context.Background(), Config{Workers: 1}, []string{filepath.Join(t.TempDir(), "none.txt")}, factory(t, "AAA"), func(Result) error { return nil })
	assert.Error(t, err)
}

func TestRunCancelled(t *testing.T) {
	src := writeFile(t, "one.txt", "HELLO\nWORLD\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, Config{Workers: 2}, []string{src}, factory(t, "AAA"), func(Result) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunLogsSummary(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	src := writeFile(t, "one.txt", "HELLO\n")
	_, err := Run(context.Background(), Config{Workers: 1, Session: "abc", Logger: zap.New(core)}, []string{src}, factory(t, "AAA"), func(Result) error { return nil })
	require.NoError(t, err)
	entries := logs.FilterMessage("batch done").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "abc", fields["session"])
	assert.EqualValues(t, 1, fields["records"])
}
