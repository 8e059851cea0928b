package appshell

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvokeEmptyArgsShowsHelp(t *testing.T) {
	var got []string
	code := Invoke(context.Background(), func(_ context.Context, argv []string, _, _ io.Writer) int {
		got = argv
		return 0
	}, nil, io.Discard, io.Discard)
	assert.Equal(t, 0, code)
	assert.Equal(t, []string{"--help"}, got)
}

func TestInvokeCanceledIs130(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ok := func(context.Context, []string, io.Writer, io.Writer) int { return 0 }
	assert.Equal(t, 130, Invoke(ctx, ok, []string{"encode"}, io.Discard, io.Discard))

	usage := func(context.Context, []string, io.Writer, io.Writer) int { return 2 }
	assert.Equal(t, 2, Invoke(ctx, usage, []string{"encode"}, io.Discard, io.Discard))
}
