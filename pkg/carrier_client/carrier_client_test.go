package carrier_client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linertrack/linertrack/pkg/carrierconfig"
	"github.com/linertrack/linertrack/pkg/credentials"
)

func testConfig(carrier string, carrierConfig carrierconfig.Carrier) *carrierconfig.Config {
	return &carrierconfig.Config{
		RequestTimeout: 5 * time.Second,
		Carriers: map[string]carrierconfig.Carrier{
			carrier: carrierConfig,
		},
	}
}

func TestDoAttachesQueryAndAPIKey(t *testing.T) {
	vendor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "NLRTM", r.URL.Query().Get("portOfLoading"))
		assert.Equal(t, "the-key", r.Header.Get("KeyId"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Write([]byte(`{"ok": true}`))
	}))
	defer vendor.Close()

	config := testConfig("cmacgm", carrierconfig.Carrier{
		Enabled:      true,
		AuthType:     carrierconfig.AuthTypeAPIKey,
		APIKeyHeader: "KeyId",
		Endpoints: map[carrierconfig.EndpointType]carrierconfig.Endpoint{
			carrierconfig.EndpointScheduleRoute: {URL: vendor.URL, Method: "GET"},
		},
	})

	manager := credentials.NewManager(map[string]string{
		"LINERTRACK_CMACGM_API_KEY": "the-key",
	})
	client := NewClient(config, manager)

	query := url.Values{}
	query.Set("portOfLoading", "NLRTM")

	body, err := client.Do(context.Background(), Call{
		Carrier:      "cmacgm",
		EndpointType: carrierconfig.EndpointScheduleRoute,
		Query:        query,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok": true}`, string(body))
}

func TestDoEncodesJSONBody(t *testing.T) {
	vendor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var decoded map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&decoded))
		assert.Equal(t, "QEX0123456", decoded["vvdCode"])

		w.Write([]byte(`{"resultCode": "Success"}`))
	}))
	defer vendor.Close()

	config := testConfig("hmm", carrierconfig.Carrier{
		Enabled:      true,
		AuthType:     carrierconfig.AuthTypeAPIKey,
		APIKeyHeader: "x-Gateway-APIKey",
		Endpoints: map[carrierconfig.EndpointType]carrierconfig.Endpoint{
			carrierconfig.EndpointScheduleVessel: {URL: vendor.URL, Method: "POST"},
		},
	})

	manager := credentials.NewManager(map[string]string{
		"LINERTRACK_HMM_API_KEY": "hmm-key",
	})
	client := NewClient(config, manager)

	_, err := client.Do(context.Background(), Call{
		Carrier:      "hmm",
		EndpointType: carrierconfig.EndpointScheduleVessel,
		Body:         map[string]string{"vvdCode": "QEX0123456"},
	})
	require.NoError(t, err)
}

func TestDoWrapsVendorFailure(t *testing.T) {
	vendor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "window too large"}`, http.StatusUnprocessableEntity)
	}))
	defer vendor.Close()

	config := testConfig("cmacgm", carrierconfig.Carrier{
		Enabled:  true,
		AuthType: carrierconfig.AuthTypeNone,
		Endpoints: map[carrierconfig.EndpointType]carrierconfig.Endpoint{
			carrierconfig.EndpointSchedule: {URL: vendor.URL, Method: "GET"},
		},
	})

	client := NewClient(config, credentials.NewManager(map[string]string{}))

	_, err := client.Do(context.Background(), Call{
		Carrier:      "cmacgm",
		EndpointType: carrierconfig.EndpointSchedule,
	})
	require.Error(t, err)

	var vendorErr *VendorHTTPError
	require.ErrorAs(t, err, &vendorErr)
	assert.Equal(t, "cmacgm", vendorErr.Carrier)
	assert.Equal(t, carrierconfig.EndpointSchedule, vendorErr.EndpointType)
	assert.Equal(t, http.StatusUnprocessableEntity, vendorErr.StatusCode)
	assert.Contains(t, vendorErr.Body, "window too large")
}

func TestDoRetriesOnceWithFreshToken(t *testing.T) {
	var tokenExchanges atomic.Int32

	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenExchanges.Add(1)
		if tokenExchanges.Load() == 1 {
			w.Write([]byte(`{"access_token": "stale-token", "expires_in": 3600}`))
			return
		}
		w.Write([]byte(`{"access_token": "fresh-token", "expires_in": 3600}`))
	}))
	defer tokenServer.Close()

	var vendorCalls atomic.Int32

	vendor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vendorCalls.Add(1)
		if r.Header.Get("Authorization") != "Bearer fresh-token" {
			http.Error(w, "token expired", http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"ok": true}`))
	}))
	defer vendor.Close()

	config := testConfig("maersk", carrierconfig.Carrier{
		Enabled:  true,
		AuthType: carrierconfig.AuthTypeOAuth2,
		TokenURL: tokenServer.URL,
		Endpoints: map[carrierconfig.EndpointType]carrierconfig.Endpoint{
			carrierconfig.EndpointScheduleVessel: {URL: vendor.URL, Method: "GET"},
		},
	})

	manager := credentials.NewManager(map[string]string{
		"LINERTRACK_MAERSK_CLIENT_ID":     "client-id",
		"LINERTRACK_MAERSK_CLIENT_SECRET": "client-secret",
	})
	client := NewClient(config, manager)

	body, err := client.Do(context.Background(), Call{
		Carrier:      "maersk",
		EndpointType: carrierconfig.EndpointScheduleVessel,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok": true}`, string(body))

	assert.Equal(t, int32(2), vendorCalls.Load())
	assert.Equal(t, int32(2), tokenExchanges.Load())
}

func TestDoDoesNotRetryAPIKey401(t *testing.T) {
	var vendorCalls atomic.Int32

	vendor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vendorCalls.Add(1)
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	defer vendor.Close()

	config := testConfig("hmm", carrierconfig.Carrier{
		Enabled:      true,
		AuthType:     carrierconfig.AuthTypeAPIKey,
		APIKeyHeader: "x-Gateway-APIKey",
		Endpoints: map[carrierconfig.EndpointType]carrierconfig.Endpoint{
			carrierconfig.EndpointTracking: {URL: vendor.URL, Method: "POST"},
		},
	})

	manager := credentials.NewManager(map[string]string{
		"LINERTRACK_HMM_API_KEY": "wrong-key",
	})
	client := NewClient(config, manager)

	_, err := client.Do(context.Background(), Call{
		Carrier:      "hmm",
		EndpointType: carrierconfig.EndpointTracking,
	})
	require.Error(t, err)

	var vendorErr *VendorHTTPError
	require.ErrorAs(t, err, &vendorErr)
	assert.Equal(t, http.StatusUnauthorized, vendorErr.StatusCode)
	assert.Equal(t, int32(1), vendorCalls.Load())
}

func TestDoUnknownEndpoint(t *testing.T) {
	config := testConfig("zim", carrierconfig.Carrier{
		Enabled:  true,
		AuthType: carrierconfig.AuthTypeNone,
	})

	client := NewClient(config, credentials.NewManager(map[string]string{}))

	_, err := client.Do(context.Background(), Call{
		Carrier:      "zim",
		EndpointType: carrierconfig.EndpointSchedulePort,
	})
	assert.Error(t, err)
}
