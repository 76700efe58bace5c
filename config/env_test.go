package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

// init wires viper to the process environment for all config tests
func init() {
	viper.AutomaticEnv()
}

func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env.local")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write overlay file: %v", err)
	}
	return path
}

// unsetenv clears a variable for the duration of the test and restores the
// original value afterwards.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadOverlayMissingFile(t *testing.T) {
	err := LoadOverlay(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.NoError(t, err)
}

func TestLoadOverlayDoesNotOverwriteEnvironment(t *testing.T) {
	t.Setenv("OVERLAY_TEST_KEPT", "from-env")

	path := writeOverlay(t, "OVERLAY_TEST_KEPT=from-file\n")
	assert.NoError(t, LoadOverlay(path))

	assert.Equal(t, "from-env", os.Getenv("OVERLAY_TEST_KEPT"))
}

func TestLoadOverlaySetsUnsetKeys(t *testing.T) {
	unsetenv(t, "OVERLAY_TEST_NEW")

	path := writeOverlay(t, "OVERLAY_TEST_NEW=from-file\n")
	assert.NoError(t, LoadOverlay(path))

	assert.Equal(t, "from-file", os.Getenv("OVERLAY_TEST_NEW"))
}

func TestLoadOverlaySkipsMalformedLines(t *testing.T) {
	unsetenv(t, "OVERLAY_TEST_GOOD")
	unsetenv(t, "OVERLAY_TEST_NOEQUALS")

	path := writeOverlay(t, `
# a comment

OVERLAY_TEST_NOEQUALS
=orphan-value
OVERLAY_TEST_GOOD=one=two
`)
	assert.NoError(t, LoadOverlay(path))

	// value keeps everything after the first "="
	assert.Equal(t, "one=two", os.Getenv("OVERLAY_TEST_GOOD"))

	_, set := os.LookupEnv("OVERLAY_TEST_NOEQUALS")
	assert.False(t, set, "line without = must not set anything")
}

func TestRequire(t *testing.T) {
	t.Setenv("REQUIRE_TEST_SET", "value")

	value, err := Require("REQUIRE_TEST_SET")
	assert.NoError(t, err)
	assert.Equal(t, "value", value)
}

func TestRequireMissingNamesVariable(t *testing.T) {
	unsetenv(t, "REQUIRE_TEST_MISSING")

	_, err := Require("REQUIRE_TEST_MISSING")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "REQUIRE_TEST_MISSING")
}

func TestRequireEmptyCountsAsMissing(t *testing.T) {
	t.Setenv("REQUIRE_TEST_EMPTY", "")

	_, err := Require("REQUIRE_TEST_EMPTY")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "REQUIRE_TEST_EMPTY")
}

func TestOptional(t *testing.T) {
	t.Setenv("OPTIONAL_TEST_SET", "abc123")

	value := Optional("OPTIONAL_TEST_SET")
	if assert.NotNil(t, value) {
		assert.Equal(t, "abc123", *value)
	}
}

// Empty and unset are deliberately identical for optional lookups.
func TestOptionalEmptyIsAbsent(t *testing.T) {
	t.Setenv("OPTIONAL_TEST_EMPTY", "")
	assert.Nil(t, Optional("OPTIONAL_TEST_EMPTY"))

	unsetenv(t, "OPTIONAL_TEST_UNSET")
	assert.Nil(t, Optional("OPTIONAL_TEST_UNSET"))
}
