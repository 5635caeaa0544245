package registry

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReport(t *testing.T) {
	reg, _, _ := newTestRegistry(t)

	a := reg.Acquire(12000)
	reg.Acquire(4096)
	reg.Acquire(8)
	reg.ReleaseBlock(a)
	reg.Release(0)

	var buf bytes.Buffer
	require.NoError(t, reg.Report(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "2 live blocks, 4,104 bytes (peak 16,104)", lines[0])
	require.Equal(t, "acquired 3, released 1, misses 1, failures 0", lines[1])
	require.True(t, strings.HasPrefix(strings.TrimSpace(lines[2]), "#2 "), lines[2])
	require.True(t, strings.HasSuffix(lines[2], "4,096 bytes"), lines[2])
	require.True(t, strings.HasSuffix(lines[3], " 8 bytes"), lines[3])
}

func TestReport_Empty(t *testing.T) {
	reg, _, _ := newTestRegistry(t)

	var buf bytes.Buffer
	require.NoError(t, reg.Report(&buf))
	require.Equal(t, "0 live blocks, 0 bytes (peak 0)\nacquired 0, released 0, misses 0, failures 0\n", buf.String())
}
