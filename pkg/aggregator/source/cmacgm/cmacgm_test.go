package cmacgm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linertrack/linertrack/pkg/aggregator/query"
	"github.com/linertrack/linertrack/pkg/aggregator/source"
	"github.com/linertrack/linertrack/pkg/carrier_client"
	"github.com/linertrack/linertrack/pkg/carrierconfig"
	"github.com/linertrack/linertrack/pkg/credentials"
)

// testSource wires the source against a stub vendor where every sub-API lives
// on its own path, so routing decisions are observable.
func testSource(t *testing.T) (Source, *string) {
	var calledPath string

	vendor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calledPath = r.URL.Path
		w.Write([]byte(`[]`))
	}))
	t.Cleanup(vendor.Close)

	config := &carrierconfig.Config{
		RequestTimeout: 5 * time.Second,
		Carriers: map[string]carrierconfig.Carrier{
			"cmacgm": {
				Enabled:  true,
				AuthType: carrierconfig.AuthTypeNone,
				Endpoints: map[carrierconfig.EndpointType]carrierconfig.Endpoint{
					carrierconfig.EndpointScheduleRoute:    {URL: vendor.URL + "/route", Method: "GET"},
					carrierconfig.EndpointScheduleVoyage:   {URL: vendor.URL + "/voyage", Method: "GET"},
					carrierconfig.EndpointScheduleProforma: {URL: vendor.URL + "/proforma", Method: "GET"},
					carrierconfig.EndpointSchedule:         {URL: vendor.URL + "/commercial", Method: "GET"},
					carrierconfig.EndpointTracking:         {URL: vendor.URL + "/tracking", Method: "GET"},
				},
			},
		},
	}

	client := carrier_client.NewClient(config, credentials.NewManager(map[string]string{}))

	return Source{Client: client}, &calledPath
}

func TestScheduleQueryRouting(t *testing.T) {
	testCases := []struct {
		name         string
		query        query.Schedule
		expectedPath string
	}{
		{
			name: "lane pair routes to route",
			query: query.Schedule{
				PlaceOfLoading:   "NLRTM",
				PlaceOfDischarge: "SGSIN",
			},
			expectedPath: "/route",
		},
		{
			name: "unlocode lane pair routes to route",
			query: query.Schedule{
				UNLocodePlaceOfLoading:   "NLRTM",
				UNLocodePlaceOfDischarge: "SGSIN",
			},
			expectedPath: "/route",
		},
		{
			name: "route beats voyage when both trigger",
			query: query.Schedule{
				PlaceOfLoading:   "NLRTM",
				PlaceOfDischarge: "SGSIN",
				VoyageCode:       "0FL4HW1MA",
			},
			expectedPath: "/route",
		},
		{
			name:         "service code routes to proforma",
			query:        query.Schedule{ServiceCode: "FAL1"},
			expectedPath: "/proforma",
		},
		{
			name:         "line code routes to proforma",
			query:        query.Schedule{LineCode: "EPIC"},
			expectedPath: "/proforma",
		},
		{
			name: "zone pair routes to proforma",
			query: query.Schedule{
				ZoneFromCode: "NEU",
				ZoneToCode:   "FE",
			},
			expectedPath: "/proforma",
		},
		{
			name: "proforma beats voyage when both trigger",
			query: query.Schedule{
				ServiceCode: "FAL1",
				VoyageCode:  "0FL4HW1MA",
			},
			expectedPath: "/proforma",
		},
		{
			name:         "lone zone side falls through to voyage triggers",
			query:        query.Schedule{ZoneFromCode: "NEU", StartDate: "2024-03-01"},
			expectedPath: "/voyage",
		},
		{
			name:         "voyage code routes to voyage",
			query:        query.Schedule{VoyageCode: "0FL4HW1MA"},
			expectedPath: "/voyage",
		},
		{
			name:         "vessel imo routes to voyage",
			query:        query.Schedule{VesselIMONumber: "9454436"},
			expectedPath: "/voyage",
		},
		{
			name:         "port code routes to voyage",
			query:        query.Schedule{PortCode: "NLRTM"},
			expectedPath: "/voyage",
		},
		{
			name:         "no triggers routes to commercial",
			query:        query.Schedule{},
			expectedPath: "/commercial",
		},
		{
			name:         "dcsa params route to commercial",
			query:        query.Schedule{CarrierServiceCode: "FAL1", Limit: 10},
			expectedPath: "/commercial",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			carrierSource, calledPath := testSource(t)

			_, err := carrierSource.ScheduleQuery(context.Background(), testCase.query)
			require.NoError(t, err)

			assert.Equal(t, testCase.expectedPath, *calledPath)
		})
	}
}

func TestRouteQueryRequiresBothLaneSides(t *testing.T) {
	carrierSource, _ := testSource(t)

	_, err := carrierSource.RouteQuery(context.Background(), query.Schedule{
		PlaceOfLoading: "NLRTM",
	})
	require.Error(t, err)

	var missingErr *source.MissingParameterError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, source.CarrierCMACGM, missingErr.Carrier)
	assert.Equal(t, "route", missingErr.SubAPI)
	assert.Contains(t, missingErr.Parameter, "placeOfDischarge")
}

func TestTrackingQuery(t *testing.T) {
	vendor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "MAEU12345", r.URL.Query().Get("carrierBookingReference"))

		w.Write([]byte(`[
			{
				"eventType": "TRANSPORT",
				"eventCreatedDateTime": "2024-03-01T10:00:00Z",
				"eventDateTime": "2024-03-01T09:00:00Z",
				"transportEventTypeCode": "DEPA"
			}
		]`))
	}))
	defer vendor.Close()

	config := &carrierconfig.Config{
		Carriers: map[string]carrierconfig.Carrier{
			"cmacgm": {
				Enabled:  true,
				AuthType: carrierconfig.AuthTypeNone,
				Endpoints: map[carrierconfig.EndpointType]carrierconfig.Endpoint{
					carrierconfig.EndpointTracking: {URL: vendor.URL, Method: "GET"},
				},
			},
		},
	}

	carrierSource := Source{Client: carrier_client.NewClient(config, credentials.NewManager(map[string]string{}))}

	events, err := carrierSource.TrackingQuery(context.Background(), query.Tracking{
		CarrierBookingReference: "MAEU12345",
	})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "TRANSPORT", string(events[0].GetEventType()))
}
