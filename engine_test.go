package lagraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitRejectsNonPositiveThreadCounts(t *testing.T) {
	err := Init(0, 1)
	require.Error(t, err)
	require.True(t, IsStatus(err, InvalidValue))

	err = Init(1, -1)
	require.Error(t, err)
	require.True(t, IsStatus(err, InvalidValue))
}

func TestSetNumThreadsRejectsNonPositiveCounts(t *testing.T) {
	err := SetNumThreads(0, 4)
	require.Error(t, err)
	require.True(t, IsStatus(err, InvalidValue))

	err = SetNumThreads(4, 0)
	require.Error(t, err)
	require.True(t, IsStatus(err, InvalidValue))
}

func TestSetNumThreadsUpdatesGetNumThreads(t *testing.T) {
	prevOuter, prevInner := GetNumThreads()
	defer func() { _ = SetNumThreads(prevOuter, prevInner) }()

	require.NoError(t, SetNumThreads(3, 5))
	outer, inner := GetNumThreads()
	require.Equal(t, 3, outer)
	require.Equal(t, 5, inner)
}

func TestFinalizeBeforeInitIsInvalidValue(t *testing.T) {
	global.mu.Lock()
	wasInitialized := global.initialized
	global.initialized = false
	global.mu.Unlock()
	defer func() {
		global.mu.Lock()
		global.initialized = wasInitialized
		global.mu.Unlock()
	}()

	err := Finalize()
	require.Error(t, err)
	require.True(t, IsStatus(err, InvalidValue))
}
