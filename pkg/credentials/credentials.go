package credentials

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/linertrack/linertrack/pkg/carrierconfig"
)

const envPrefix = "LINERTRACK"

// refreshBuffer is how long before actual expiry a cached token is treated as
// expired, so in-flight calls never ride a token that dies mid-request.
const refreshBuffer = 5 * time.Minute

// Manager resolves and caches the authentication material for carrier calls:
// OAuth2 client-credentials tokens and multi-tier API keys. It is safe for
// concurrent use; a Manager is constructed once and injected wherever outbound
// calls are made.
type Manager struct {
	env        map[string]string
	httpClient *http.Client
	now        func() time.Time

	mutex        sync.Mutex
	tokens       map[string]cachedToken
	refreshGroup singleflight.Group
}

type cachedToken struct {
	accessToken string
	expiresAt   time.Time
}

func NewManager(env map[string]string) *Manager {
	return &Manager{
		env:        env,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		now:        time.Now,
		tokens:     map[string]cachedToken{},
	}
}

// Headers returns every authentication header an outbound call to the given
// carrier endpoint must carry.
func (m *Manager) Headers(ctx context.Context, carrier string, endpointType carrierconfig.EndpointType, carrierConfig carrierconfig.Carrier, endpoint carrierconfig.Endpoint) (http.Header, error) {
	headers := http.Header{}

	switch carrierConfig.AuthType {
	case carrierconfig.AuthTypeNone:
		return headers, nil

	case carrierconfig.AuthTypeAPIKey:
		headerName, key, err := m.resolveAPIKey(carrier, endpointType, carrierConfig, endpoint)
		if err != nil {
			return nil, err
		}
		headers.Set(headerName, key)

	case carrierconfig.AuthTypeOAuth2:
		token, err := m.Token(ctx, carrier, carrierConfig.TokenURL)
		if err != nil {
			return nil, err
		}
		headers.Set("Authorization", "Bearer "+token)

		if carrierConfig.SupplementaryAPIKey {
			headerName, key, err := m.resolveAPIKey(carrier, endpointType, carrierConfig, endpoint)
			if err != nil {
				return nil, err
			}
			headers.Set(headerName, key)
		}

	default:
		return nil, fmt.Errorf("unknown auth type %q for carrier %s", carrierConfig.AuthType, carrier)
	}

	return headers, nil
}

// resolveAPIKey walks the env var resolution order for a (carrier, endpoint)
// pair: endpoint-specific primary, endpoint-specific secondary, endpoint
// generic, then the carrier-wide default key.
func (m *Manager) resolveAPIKey(carrier string, endpointType carrierconfig.EndpointType, carrierConfig carrierconfig.Carrier, endpoint carrierconfig.Endpoint) (string, string, error) {
	candidates := APIKeyEnvCandidates(carrier, endpointType)

	headerName := carrierConfig.APIKeyHeader
	if endpoint.APIKeyHeader != "" {
		headerName = endpoint.APIKeyHeader
	}
	if headerName == "" {
		headerName = "X-Api-Key"
	}

	for _, candidate := range candidates {
		if value := m.env[candidate]; value != "" {
			return headerName, value, nil
		}
	}

	return "", "", &AuthenticationError{
		Carrier:        carrier,
		TriedVariables: candidates,
		Reason:         "no API key configured",
	}
}

// APIKeyEnvCandidates returns the env var names tried for a (carrier,
// endpoint) pair, most specific first.
func APIKeyEnvCandidates(carrier string, endpointType carrierconfig.EndpointType) []string {
	carrierPart := envSegment(carrier)
	endpointPart := envSegment(string(endpointType))

	return []string{
		fmt.Sprintf("%s_%s_%s_API_KEY_PRIMARY", envPrefix, carrierPart, endpointPart),
		fmt.Sprintf("%s_%s_%s_API_KEY_SECONDARY", envPrefix, carrierPart, endpointPart),
		fmt.Sprintf("%s_%s_%s_API_KEY", envPrefix, carrierPart, endpointPart),
		fmt.Sprintf("%s_%s_API_KEY", envPrefix, carrierPart),
	}
}

func envSegment(s string) string {
	return strings.ToUpper(strings.ReplaceAll(s, "-", "_"))
}

// InvalidateToken drops the cached token for a carrier. The transport client
// calls this when a vendor answers 401 so the retried call fetches a fresh
// token.
func (m *Manager) InvalidateToken(carrier string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	delete(m.tokens, carrier)

	log.Debug().Str("carrier", carrier).Msg("Invalidated cached OAuth2 token")
}

// Reset drops all cached tokens. Intended for test teardown.
func (m *Manager) Reset() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.tokens = map[string]cachedToken{}
}
