package sink

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConsole_RoutesByLevel(t *testing.T) {
	var out, errOut bytes.Buffer
	c := NewConsole(ConsoleConfig{Out: &out, Err: &errOut})

	require.NoError(t, c.Trace("trace"))
	require.NoError(t, c.Debug("debug"))
	require.NoError(t, c.Info("info"))
	require.NoError(t, c.Warn("warn"))
	require.NoError(t, c.Error("error"))

	require.Equal(t, "trace\ndebug\ninfo\n", out.String())
	require.Equal(t, "warn\nerror\n", errOut.String())
	require.NoError(t, c.Sync())
}

func TestConsole_LineEndings(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(ConsoleConfig{Out: &buf, Err: &buf})

	require.NoError(t, c.Info("already\n"))
	require.NoError(t, c.Info([]byte("bytes")))
	require.NoError(t, c.Info(42))
	require.NoError(t, c.Error(""))

	require.Equal(t, "already\nbytes\n42\n\n", buf.String())
	require.NoError(t, c.Sync())
}

// lineCollector is a writer value that cannot be compared with ==.
type lineCollector struct {
	buf  *bytes.Buffer
	tags []string
}

func (w lineCollector) Write(p []byte) (int, error) { return w.buf.Write(p) }

func TestConsole_UncomparableWriter(t *testing.T) {
	w := lineCollector{buf: &bytes.Buffer{}, tags: []string{"x"}}

	var c *Console
	require.NotPanics(t, func() {
		c = NewConsole(ConsoleConfig{Out: w, Err: w})
	})

	require.NoError(t, c.Info("info"))
	require.NoError(t, c.Error("error"))
	require.Equal(t, "info\nerror\n", w.buf.String())
}

func TestSameWriter(t *testing.T) {
	var a, b bytes.Buffer
	require.True(t, sameWriter(&a, &a))
	require.False(t, sameWriter(&a, &b))

	w := lineCollector{buf: &a}
	require.False(t, sameWriter(w, w))
}
