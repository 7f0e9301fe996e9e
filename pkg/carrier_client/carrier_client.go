package carrier_client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/linertrack/linertrack/pkg/carrierconfig"
	"github.com/linertrack/linertrack/pkg/credentials"
)

// Client executes authenticated HTTP calls against carrier endpoints. Every
// call names its target endpoint with an explicit EndpointType; a call that
// fails with 401 is retried exactly once with a freshly obtained token.
type Client struct {
	httpClient  *http.Client
	config      *carrierconfig.Config
	credentials *credentials.Manager
}

// Call describes one outbound vendor request.
type Call struct {
	Carrier      string
	EndpointType carrierconfig.EndpointType

	Query url.Values

	// Body is JSON-marshalled into the request body when non-nil. Used by
	// carriers whose sub-APIs are POST-based.
	Body any
}

func NewClient(config *carrierconfig.Config, credentialManager *credentials.Manager) *Client {
	return &Client{
		httpClient:  &http.Client{},
		config:      config,
		credentials: credentialManager,
	}
}

// Do executes the call and returns the raw vendor response body. Vendor
// failures are wrapped in a carrier-qualified VendorHTTPError carrying the
// status and raw error body.
func (c *Client) Do(ctx context.Context, call Call) ([]byte, error) {
	carrierConfig, ok := c.config.Carrier(call.Carrier)
	if !ok {
		return nil, fmt.Errorf("no configuration for carrier %s", call.Carrier)
	}

	endpoint, ok := carrierConfig.Endpoint(call.EndpointType)
	if !ok {
		return nil, fmt.Errorf("carrier %s has no %s endpoint configured", call.Carrier, call.EndpointType)
	}

	timeout := c.config.RequestTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	response, body, err := c.execute(ctx, call, carrierConfig, endpoint)
	if err != nil {
		return nil, err
	}

	// One fresh-token retry on auth expiry. Only meaningful for OAuth2
	// carriers where the cached token may have been revoked upstream.
	if response.StatusCode == http.StatusUnauthorized && carrierConfig.AuthType == carrierconfig.AuthTypeOAuth2 {
		log.Debug().
			Str("carrier", call.Carrier).
			Str("endpoint", string(call.EndpointType)).
			Msg("Vendor returned 401, retrying once with fresh token")

		c.credentials.InvalidateToken(call.Carrier)

		response, body, err = c.execute(ctx, call, carrierConfig, endpoint)
		if err != nil {
			return nil, err
		}
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, &VendorHTTPError{
			Carrier:      call.Carrier,
			EndpointType: call.EndpointType,
			StatusCode:   response.StatusCode,
			Status:       response.Status,
			Body:         string(body),
		}
	}

	return body, nil
}

func (c *Client) execute(ctx context.Context, call Call, carrierConfig carrierconfig.Carrier, endpoint carrierconfig.Endpoint) (*http.Response, []byte, error) {
	var requestBody io.Reader
	if call.Body != nil {
		encoded, err := json.Marshal(call.Body)
		if err != nil {
			return nil, nil, fmt.Errorf("encode %s request body: %w", call.Carrier, err)
		}
		requestBody = bytes.NewReader(encoded)
	}

	requestURL := endpoint.URL
	if len(call.Query) > 0 {
		requestURL = fmt.Sprintf("%s?%s", endpoint.URL, call.Query.Encode())
	}

	method := endpoint.Method
	if method == "" {
		method = "GET"
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, requestBody)
	if err != nil {
		return nil, nil, err
	}

	headers, err := c.credentials.Headers(ctx, call.Carrier, call.EndpointType, carrierConfig, endpoint)
	if err != nil {
		return nil, nil, err
	}
	for name, values := range headers {
		request.Header[name] = values
	}

	request.Header.Set("Accept", "application/json")
	if call.Body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, nil, fmt.Errorf("%s %s call failed: %w", call.Carrier, call.EndpointType, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("%s %s read response: %w", call.Carrier, call.EndpointType, err)
	}

	return response, body, nil
}

// VendorHTTPError wraps a non-2xx vendor response.
type VendorHTTPError struct {
	Carrier      string
	EndpointType carrierconfig.EndpointType
	StatusCode   int
	Status       string
	Body         string
}

func (e *VendorHTTPError) Error() string {
	return fmt.Sprintf("%s %s returned %s: %s", e.Carrier, e.EndpointType, e.Status, e.Body)
}
