package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionCmd_Use(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
}

func TestVersionCmd_Executes(t *testing.T) {
	originalVersion := version
	version = "test-version-1.0.0"
	defer func() { version = originalVersion }()

	buf, err := execute("version")

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "stopline version test-version-1.0.0")
}

func TestVersionCmd_DisplaysDevByDefault(t *testing.T) {
	buf, err := execute("version")

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "stopline version dev")
}
