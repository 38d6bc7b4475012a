package games

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	for _, name := range []string{"ttt", "nested"} {
		factory, err := Lookup(name)

		require.NoError(t, err)
		require.Equal(t, []string{"X", "O"}, factory.Players)
		state := factory.New()
		require.False(t, state.Terminal())
		require.Equal(t, "X", state.Player())
	}

	factory, err := Lookup("havannah")
	require.NoError(t, err)
	require.Equal(t, []string{"Blue", "Red"}, factory.Players)
	state := factory.New()
	require.False(t, state.Terminal())
	require.Equal(t, "Blue", state.Player())

	_, err = Lookup("chess")
	require.ErrorContains(t, err, "unknown game")
}
