package lagraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypeNameRoundTrip(t *testing.T) {
	require.Equal(t, "bool", TypeName[bool]())
	require.Equal(t, "int64", TypeName[int64]())
	require.Equal(t, "double", TypeName[float64]())
	require.Equal(t, "float", TypeName[float32]())

	for _, name := range []string{"bool", "int64", "double", "float"} {
		kind, err := TypeFromName(name)
		require.NoError(t, err)
		require.Equal(t, name, kind)
	}
}

func TestTypeFromNameRejectsUnknown(t *testing.T) {
	_, err := TypeFromName("nonsense")
	require.Error(t, err)
	require.True(t, IsStatus(err, InvalidValue))
}
