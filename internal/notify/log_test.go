package notify

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/userdir/internal/logging"
)

func TestLogNotifier_WritesPhoneAndCode(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	n := NewLogNotifier(l)
	err := n.Notify(context.Background(), "+79997654321", "aB3dE9")
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.Contains(out, "+79997654321"), "expected phone in output:\n%s", out)
	assert.True(t, strings.Contains(out, "aB3dE9"), "expected code in output:\n%s", out)
}
