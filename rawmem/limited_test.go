package rawmem

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLimited_Budget(t *testing.T) {
	l := NewLimited(NewHeap(), 100)

	a, err := l.Allocate(60)
	require.NoError(t, err)
	require.Equal(t, int64(60), l.InUse())

	_, err = l.Allocate(41)
	require.ErrorIs(t, err, ErrBudgetExceeded)
	require.Equal(t, int64(60), l.InUse(), "failed allocation must not consume budget")

	b, err := l.Allocate(40)
	require.NoError(t, err)
	require.Equal(t, int64(100), l.InUse())

	require.NoError(t, l.Free(a))
	require.Equal(t, int64(40), l.InUse())

	_, err = l.Allocate(60)
	require.NoError(t, err, "freed bytes should return to the budget")

	require.NoError(t, l.Free(b))
	require.Equal(t, int64(60), l.InUse())
}

func TestLimited_InvalidSize(t *testing.T) {
	l := NewLimited(NewHeap(), 10)

	_, err := l.Allocate(0)
	require.ErrorIs(t, err, ErrInvalidSize)
	require.Zero(t, l.InUse())
}

func TestLimited_ZeroBudget(t *testing.T) {
	l := NewLimited(NewHeap(), 0)

	_, err := l.Allocate(1)
	require.ErrorIs(t, err, ErrBudgetExceeded)
	require.Equal(t, int64(0), l.Limit())
}

type brokenFree struct {
	*Heap
}

var errBrokenFree = errors.New("free refused")

func (brokenFree) Free([]byte) error { return errBrokenFree }

func TestLimited_FreeErrorStillReturnsBudget(t *testing.T) {
	l := NewLimited(brokenFree{NewHeap()}, 32)

	b, err := l.Allocate(32)
	require.NoError(t, err)

	require.ErrorIs(t, l.Free(b), errBrokenFree)
	require.Zero(t, l.InUse())

	_, err = l.Allocate(32)
	require.NoError(t, err)
}
