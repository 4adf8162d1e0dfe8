package ocr

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRunner_CapturesStdout(t *testing.T) {
	r := execRunner{logger: slog.Default()}

	out, errb, err := r.Run(context.Background(), "echo", "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(out))
	assert.Empty(t, errb)
}

func TestExecRunner_MissingBinary(t *testing.T) {
	r := execRunner{logger: slog.Default()}

	_, _, err := r.Run(context.Background(), "no-such-binary-on-any-path")
	require.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 8))
	long := strings.Repeat("x", 20)
	got := truncate(long, 8)
	assert.Equal(t, "xxxxxxxx...(truncated)", got)
}
