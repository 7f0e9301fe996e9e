package credentials

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linertrack/linertrack/pkg/carrierconfig"
)

func oauthTestManager(tokenServer *httptest.Server) *Manager {
	manager := NewManager(map[string]string{
		"LINERTRACK_MAERSK_CLIENT_ID":     "client-id",
		"LINERTRACK_MAERSK_CLIENT_SECRET": "client-secret",
		"LINERTRACK_MAERSK_API_KEY":       "consumer-key",
	})
	manager.httpClient = tokenServer.Client()

	return manager
}

func TestTokenExchangeAndCache(t *testing.T) {
	var exchanges atomic.Int32

	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		exchanges.Add(1)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "client-id", r.PostForm.Get("client_id"))
		assert.Equal(t, "client-secret", r.PostForm.Get("client_secret"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token": "tok-1", "token_type": "Bearer", "expires_in": 3600}`))
	}))
	defer tokenServer.Close()

	manager := oauthTestManager(tokenServer)

	token, err := manager.Token(context.Background(), "maersk", tokenServer.URL)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	token, err = manager.Token(context.Background(), "maersk", tokenServer.URL)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	assert.Equal(t, int32(1), exchanges.Load(), "second call should be served from cache")
}

func TestTokenEarlyRefresh(t *testing.T) {
	var exchanges atomic.Int32

	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		exchanges.Add(1)
		w.Write([]byte(`{"access_token": "tok", "expires_in": 3600}`))
	}))
	defer tokenServer.Close()

	manager := oauthTestManager(tokenServer)

	currentTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	manager.now = func() time.Time { return currentTime }

	_, err := manager.Token(context.Background(), "maersk", tokenServer.URL)
	require.NoError(t, err)
	assert.Equal(t, int32(1), exchanges.Load())

	// 54 minutes in: expiry is 6 minutes away, outside the refresh buffer.
	currentTime = currentTime.Add(54 * time.Minute)
	_, err = manager.Token(context.Background(), "maersk", tokenServer.URL)
	require.NoError(t, err)
	assert.Equal(t, int32(1), exchanges.Load())

	// 56 minutes in: expiry is 4 minutes away, inside the refresh buffer.
	currentTime = currentTime.Add(2 * time.Minute)
	_, err = manager.Token(context.Background(), "maersk", tokenServer.URL)
	require.NoError(t, err)
	assert.Equal(t, int32(2), exchanges.Load())
}

func TestTokenConcurrentRefreshSingleExchange(t *testing.T) {
	var exchanges atomic.Int32

	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		exchanges.Add(1)
		time.Sleep(50 * time.Millisecond)
		w.Write([]byte(`{"access_token": "tok", "expires_in": 3600}`))
	}))
	defer tokenServer.Close()

	manager := oauthTestManager(tokenServer)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			token, err := manager.Token(context.Background(), "maersk", tokenServer.URL)
			assert.NoError(t, err)
			assert.Equal(t, "tok", token)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), exchanges.Load(), "concurrent callers should share one exchange")
}

func TestTokenInvalidate(t *testing.T) {
	var exchanges atomic.Int32

	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		exchanges.Add(1)
		w.Write([]byte(`{"access_token": "tok", "expires_in": 3600}`))
	}))
	defer tokenServer.Close()

	manager := oauthTestManager(tokenServer)

	_, err := manager.Token(context.Background(), "maersk", tokenServer.URL)
	require.NoError(t, err)

	manager.InvalidateToken("maersk")

	_, err = manager.Token(context.Background(), "maersk", tokenServer.URL)
	require.NoError(t, err)

	assert.Equal(t, int32(2), exchanges.Load())
}

func TestTokenMissingClientCredentials(t *testing.T) {
	manager := NewManager(map[string]string{})

	_, err := manager.Token(context.Background(), "zim", "https://example.com/token")
	require.Error(t, err)

	var authErr *AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, []string{"LINERTRACK_ZIM_CLIENT_ID", "LINERTRACK_ZIM_CLIENT_SECRET"}, authErr.TriedVariables)
}

func TestTokenEndpointFailure(t *testing.T) {
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid_client", http.StatusUnauthorized)
	}))
	defer tokenServer.Close()

	manager := oauthTestManager(tokenServer)

	_, err := manager.Token(context.Background(), "maersk", tokenServer.URL)
	require.Error(t, err)

	var authErr *AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Contains(t, authErr.Reason, "invalid_client")
}

func TestHeadersOAuth2WithSupplementaryKey(t *testing.T) {
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"access_token": "tok-bearer", "expires_in": 3600}`))
	}))
	defer tokenServer.Close()

	manager := oauthTestManager(tokenServer)

	carrierConfig := carrierconfig.Carrier{
		AuthType:            carrierconfig.AuthTypeOAuth2,
		SupplementaryAPIKey: true,
		APIKeyHeader:        "Consumer-Key",
		TokenURL:            tokenServer.URL,
	}

	headers, err := manager.Headers(context.Background(), "maersk", carrierconfig.EndpointSchedulePointToPoint, carrierConfig, carrierconfig.Endpoint{})
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-bearer", headers.Get("Authorization"))
	assert.Equal(t, "consumer-key", headers.Get("Consumer-Key"))
}
