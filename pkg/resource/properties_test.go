package resource

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleProperties = `
app:
  name: ${TEST_APP_NAME:weather-checker}
  openweather:
    base-url: http://api.openweathermap.org
    api-key: ${TEST_OPENWEATHER_KEY:}
    read-timeout: 15s
  animations:
    sunny: ${TEST_SUNNY_PATH:assets/sunny.json}
  places:
    - Kadapa
    - ${TEST_EXTRA_PLACE:Anantapur}
`

func writeProperties(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "application.yml")
	require.NoError(t, os.WriteFile(path, []byte(sampleProperties), 0o600))
	return path
}

func TestInit_ResolvesPlaceholders(t *testing.T) {
	t.Setenv("TEST_OPENWEATHER_KEY", "abc123")
	t.Setenv("TEST_EXTRA_PLACE", "Palamaner")

	require.NoError(t, Init(writeProperties(t)))

	assert.Equal(t, "weather-checker", GetString("app.name"))
	assert.Equal(t, "http://api.openweathermap.org", GetString("app.openweather.base-url"))
	assert.Equal(t, "abc123", GetString("app.openweather.api-key"))
	assert.Equal(t, 15*time.Second, GetDuration("app.openweather.read-timeout"))
	assert.Equal(t, map[string]string{"sunny": "assets/sunny.json"}, GetStringMapString("app.animations"))
	assert.Equal(t, []string{"Kadapa", "Palamaner"}, GetStringSlice("app.places"))
}

func TestInit_EmptyDefault(t *testing.T) {
	require.NoError(t, Init(writeProperties(t)))

	assert.Equal(t, "", GetString("app.openweather.api-key"))
}

func TestInit_MissingFile(t *testing.T) {
	err := Init(filepath.Join(t.TempDir(), "missing.yml"))

	assert.Error(t, err)
}

func TestPath(t *testing.T) {
	t.Setenv("PROPERTIES_FILE_PATH", "/etc/weather/application.yml")
	assert.Equal(t, "/etc/weather/application.yml", Path())
}

func TestResolveEnvVariable(t *testing.T) {
	t.Setenv("TEST_HOST", "example.test")

	assert.Equal(t, "http://example.test:8080", resolveEnvVariable("http://${TEST_HOST}:${TEST_UNSET_PORT:8080}"))
	assert.Equal(t, "plain", resolveEnvVariable("plain"))
}
