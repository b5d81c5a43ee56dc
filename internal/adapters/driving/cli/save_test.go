package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveCmd_PersistsStop(t *testing.T) {
	stop, _, _, cleanup := setupTestServices()
	defer cleanup()

	buf, err := execute("save", "1234", "Pillbox North")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Saved stop 1234: Pillbox North")

	require.Len(t, stop.savedStops, 1)
	assert.Equal(t, 1234, stop.savedStops[0].ID)
	assert.Equal(t, "Pillbox North", stop.savedStops[0].Name)
	assert.False(t, stop.savedStops[0].HasLocation())
}

// resetSaveFlags clears sticky flag state between executions.
func resetSaveFlags() {
	saveCmd.Flags().Lookup("lat").Changed = false
	saveCmd.Flags().Lookup("lon").Changed = false
	saveLat, saveLon = 0, 0
}

func TestSaveCmd_WithLocation(t *testing.T) {
	stop, _, _, cleanup := setupTestServices()
	defer cleanup()
	defer resetSaveFlags()

	_, err := execute("save", "1234", "Pillbox North", "--lat", "43.35", "--lon", "-8.41")
	require.NoError(t, err)

	require.Len(t, stop.savedStops, 1)
	require.True(t, stop.savedStops[0].HasLocation())
	assert.InDelta(t, 43.35, *stop.savedStops[0].Lat, 0.0001)
	assert.InDelta(t, -8.41, *stop.savedStops[0].Lon, 0.0001)
}

func TestSaveCmd_RejectsHalfLocation(t *testing.T) {
	_, _, _, cleanup := setupTestServices()
	defer cleanup()
	defer resetSaveFlags()

	_, err := execute("save", "1234", "Pillbox North", "--lat", "43.35")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--lat and --lon must be given together")
}

func TestForgetCmd_RemovedStop(t *testing.T) {
	stop, _, _, cleanup := setupTestServices()
	defer cleanup()
	stop.forgetRemoved = true

	buf, err := execute("forget", "1234")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Forgot stop 1234.")
}

func TestForgetCmd_NotPersisted(t *testing.T) {
	stop, _, _, cleanup := setupTestServices()
	defer cleanup()
	stop.forgetRemoved = false

	buf, err := execute("forget", "1234")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Stop 1234 was not persisted.")
}
