package credentials

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// Token returns a valid OAuth2 access token for the carrier, serving from
// cache while the token is more than refreshBuffer away from expiry.
// Concurrent callers that all observe an expired token trigger exactly one
// upstream exchange per carrier.
func (m *Manager) Token(ctx context.Context, carrier string, tokenURL string) (string, error) {
	m.mutex.Lock()
	cached, ok := m.tokens[carrier]
	m.mutex.Unlock()

	if ok && m.now().Before(cached.expiresAt.Add(-refreshBuffer)) {
		return cached.accessToken, nil
	}

	token, err, _ := m.refreshGroup.Do(carrier, func() (interface{}, error) {
		// Another caller may have refreshed while we waited on the group.
		m.mutex.Lock()
		cached, ok := m.tokens[carrier]
		m.mutex.Unlock()

		if ok && m.now().Before(cached.expiresAt.Add(-refreshBuffer)) {
			return cached.accessToken, nil
		}

		return m.exchangeToken(ctx, carrier, tokenURL)
	})
	if err != nil {
		return "", err
	}

	return token.(string), nil
}

func (m *Manager) exchangeToken(ctx context.Context, carrier string, tokenURL string) (string, error) {
	clientIDVar := fmt.Sprintf("%s_%s_CLIENT_ID", envPrefix, envSegment(carrier))
	clientSecretVar := fmt.Sprintf("%s_%s_CLIENT_SECRET", envPrefix, envSegment(carrier))

	clientID := m.env[clientIDVar]
	clientSecret := m.env[clientSecretVar]

	if clientID == "" || clientSecret == "" {
		return "", &AuthenticationError{
			Carrier:        carrier,
			TriedVariables: []string{clientIDVar, clientSecretVar},
			Reason:         "OAuth2 client credentials not configured",
		}
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", clientID)
	form.Set("client_secret", clientSecret)

	request, err := http.NewRequestWithContext(ctx, "POST", tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := m.httpClient.Do(request)
	if err != nil {
		return "", &AuthenticationError{Carrier: carrier, Reason: fmt.Sprintf("token exchange failed: %s", err)}
	}
	defer response.Body.Close()

	body, _ := io.ReadAll(response.Body)

	if response.StatusCode != http.StatusOK {
		return "", &AuthenticationError{
			Carrier: carrier,
			Reason:  fmt.Sprintf("token endpoint returned %s: %s", response.Status, string(body)),
		}
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return "", &AuthenticationError{Carrier: carrier, Reason: fmt.Sprintf("invalid token response: %s", err)}
	}
	if token.AccessToken == "" {
		return "", &AuthenticationError{Carrier: carrier, Reason: "token response contained no access token"}
	}

	expiresAt := m.now().Add(time.Duration(token.ExpiresIn) * time.Second)

	m.mutex.Lock()
	m.tokens[carrier] = cachedToken{
		accessToken: token.AccessToken,
		expiresAt:   expiresAt,
	}
	m.mutex.Unlock()

	log.Debug().
		Str("carrier", carrier).
		Time("expires", expiresAt).
		Msg("Obtained new OAuth2 token")

	return token.AccessToken, nil
}

// AuthenticationError covers both missing credential configuration and failed
// OAuth2 exchanges. TriedVariables names every env var consulted so operators
// can see exactly what to set.
type AuthenticationError struct {
	Carrier        string
	TriedVariables []string
	Reason         string
}

func (e *AuthenticationError) Error() string {
	if len(e.TriedVariables) > 0 {
		return fmt.Sprintf("%s: %s (tried %s)", e.Carrier, e.Reason, strings.Join(e.TriedVariables, ", "))
	}

	return fmt.Sprintf("%s: %s", e.Carrier, e.Reason)
}
