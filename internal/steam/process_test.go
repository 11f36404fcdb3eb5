package steam

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsClientProcess(t *testing.T) {
	require.True(t, isClientProcess("steam"))
	require.True(t, isClientProcess("Steam.exe"))
	require.True(t, isClientProcess(" steam_osx "))
	require.False(t, isClientProcess("steamwebhelper"))
	require.False(t, isClientProcess(""))
}
