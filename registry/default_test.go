package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/safealloc/internal/testutil"
)

func TestDefault_SetDefaultAndPackageFuncs(t *testing.T) {
	prev := defaultReg
	t.Cleanup(func() { SetDefault(prev) })

	reg, ra, ex := newTestRegistry(t)
	SetDefault(reg)
	require.Same(t, reg, Default())

	a := Acquire(4)
	b := Acquire(4)
	require.Equal(t, 2, reg.Len())

	require.True(t, ReleaseBlock(a))
	require.False(t, Release(AddressOf(a)))

	ReleaseAll(3)
	require.Equal(t, []int{3}, ex.Codes)
	require.Zero(t, ra.Live())
	require.False(t, reg.Contains(AddressOf(b)))
}

func TestDefault_LazyCreation(t *testing.T) {
	prev := defaultReg
	t.Cleanup(func() { SetDefault(prev) })
	keepLogger(t)
	t.Setenv(EnvBackend, "heap")
	t.Setenv(EnvLimit, "")

	SetDefault(nil)
	reg := Default()
	require.NotNil(t, reg)
	require.Same(t, reg, Default(), "Default must return the same registry until replaced")
	require.Zero(t, reg.Len())

	other := New(Options{Allocator: testutil.NewRecording(t)})
	SetDefault(other)
	require.Same(t, other, Default())
}
