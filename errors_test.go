package lagraph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorFormatsWithAndWithoutSite(t *testing.T) {
	withSite := newError(InvalidValue, "lagraph.Foo", "bad %s", "input")
	require.Equal(t, "InvalidValue: bad input (lagraph.Foo)", withSite.Error())

	bare := &Error{Status: OutOfMemory, Msg: "allocation failed"}
	require.Equal(t, "OutOfMemory: allocation failed", bare.Error())
}

func TestIsStatusMatchesWrappedStatus(t *testing.T) {
	err := newError(InvalidIndex, "lagraph.Bar", "index out of range")
	require.True(t, IsStatus(err, InvalidIndex))
	require.False(t, IsStatus(err, InvalidValue))
}

func TestIsStatusRejectsNilAndForeignErrors(t *testing.T) {
	require.False(t, IsStatus(nil, Success))
	require.False(t, IsStatus(errors.New("not ours"), InvalidValue))
}

func TestWrapEngineNilPassesThrough(t *testing.T) {
	require.NoError(t, wrapEngine("lagraph.Baz", nil))
}

func TestWrapEngineAugmentsSite(t *testing.T) {
	err := wrapEngine("lagraph.Baz", errors.New("engine exploded"))
	require.Error(t, err)
	require.True(t, IsStatus(err, InvalidObject))
	require.Contains(t, err.Error(), "lagraph.Baz")
	require.Contains(t, err.Error(), "engine exploded")
}

func TestStatusStringUnknownValue(t *testing.T) {
	require.Equal(t, "Unknown", Status(999).String())
}
