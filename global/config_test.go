package global

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nathanieltooley/pokedex/dex"
	"github.com/nathanieltooley/pokedex/pokeapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigWritesDefaults(t *testing.T) {
	t.Setenv(envAPIURL, "")
	t.Setenv(envDebug, "")

	path := filepath.Join(t.TempDir(), "pokedex", "config.toml")

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, pokeapi.DefaultBaseURL, config.API.BaseURL)
	assert.Equal(t, dex.NameListLimit, config.API.NameLimit)
	assert.Equal(t, 0, config.API.TimeoutSeconds)
	assert.Equal(t, 2.5, config.Log.MaxSizeMB)
	assert.Equal(t, 2, config.Log.MaxFiles)
	assert.False(t, config.Debug)

	_, err = os.Stat(path)
	assert.NoError(t, err, "default config should be written")
}

func TestLoadConfigReadsFile(t *testing.T) {
	t.Setenv(envAPIURL, "")
	t.Setenv(envDebug, "")

	path := filepath.Join(t.TempDir(), "config.toml")
	contents := `
debug = true
prefs_location = "/tmp/prefs.json"

[api]
base_url = "http://localhost:9000"
timeout_seconds = 5
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000", config.API.BaseURL)
	assert.Equal(t, 5, config.API.TimeoutSeconds)
	assert.Equal(t, "/tmp/prefs.json", config.PrefsLocation)
	assert.True(t, config.Debug)
	// missing fields still get defaults
	assert.Equal(t, dex.NameListLimit, config.API.NameLimit)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(envAPIURL, "http://env.example")
	t.Setenv(envDebug, "true")

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, SaveConfigTo(path, populateConfig(GlobalConfig{API: APIConfig{BaseURL: "http://file.example"}})))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://env.example", config.API.BaseURL)
	assert.True(t, config.Debug)
}

func TestInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("debug = [nope"), 0644))

	config, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Equal(t, pokeapi.DefaultBaseURL, config.API.BaseURL)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv(envAPIURL, "")
	t.Setenv(envDebug, "")

	path := filepath.Join(t.TempDir(), "config.toml")
	want := populateConfig(GlobalConfig{Debug: true, API: APIConfig{NameLimit: 151}})

	require.NoError(t, SaveConfigTo(path, want))

	got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
