package carrierconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	config := Defaults()

	assert.Equal(t, 30*time.Second, config.RequestTimeout)

	for _, name := range []string{"cmacgm", "hmm", "maersk", "zim"} {
		carrier, ok := config.Carrier(name)
		require.True(t, ok, name)
		assert.True(t, carrier.Enabled, name)

		_, ok = carrier.Endpoint(EndpointTracking)
		assert.True(t, ok, name)
	}

	maersk, _ := config.Carrier("maersk")
	assert.Equal(t, AuthTypeOAuth2, maersk.AuthType)
	assert.True(t, maersk.SupplementaryAPIKey)
	assert.Equal(t, "Consumer-Key", maersk.APIKeyHeader)
	assert.NotEmpty(t, maersk.TokenURL)

	hmm, _ := config.Carrier("hmm")
	assert.Equal(t, AuthTypeAPIKey, hmm.AuthType)
	assert.Equal(t, "x-Gateway-APIKey", hmm.APIKeyHeader)

	zim, _ := config.Carrier("zim")
	_, ok := zim.Endpoint(EndpointScheduleVessel)
	assert.False(t, ok, "zim only exposes point to point schedules")
}

func TestLoadWithoutOverrides(t *testing.T) {
	t.Setenv(configPathEnv, "")

	config, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), config)
}

func TestLoadOverridesCarrier(t *testing.T) {
	overrides := `
request_timeout: 10s
carriers:
  hmm:
    enabled: false
  maersk:
    enabled: true
    auth_type: oauth2
    token_url: https://sandbox.example.com/oauth2/token
    endpoints:
      schedule-ptp:
        url: https://sandbox.example.com/ocean-products
        method: GET
`

	path := filepath.Join(t.TempDir(), "carriers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(overrides), 0o644))
	t.Setenv(configPathEnv, path)

	config, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, config.RequestTimeout)

	hmm, ok := config.Carrier("hmm")
	require.True(t, ok)
	assert.False(t, hmm.Enabled)

	// A carrier in the file replaces its default definition wholesale.
	maersk, ok := config.Carrier("maersk")
	require.True(t, ok)
	endpoint, ok := maersk.Endpoint(EndpointSchedulePointToPoint)
	require.True(t, ok)
	assert.Equal(t, "https://sandbox.example.com/ocean-products", endpoint.URL)
	_, ok = maersk.Endpoint(EndpointTracking)
	assert.False(t, ok)

	// Untouched carriers keep their defaults.
	cmacgm, ok := config.Carrier("cmacgm")
	require.True(t, ok)
	assert.True(t, cmacgm.Enabled)
	assert.Equal(t, "KeyId", cmacgm.APIKeyHeader)
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv(configPathEnv, "/nonexistent/carriers.yaml")

	_, err := Load()
	assert.Error(t, err)
}
