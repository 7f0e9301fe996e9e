package maersk

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

var testToday = time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

func testSource(t *testing.T) (Source, *string) {
	var calledPath string

	vendor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calledPath = r.URL.Path

		switch r.URL.Path {
		case "/ptp":
			w.Write([]byte(`{"oceanProducts": []}`))
		case "/port":
			w.Write([]byte(`{"portCalls": []}`))
		case "/vessel":
			w.Write([]byte(`[]`))
		default:
			w.Write([]byte(`{"events": []}`))
		}
	}))
	t.Cleanup(vendor.Close)

	config := &carrierconfig.Config{
		RequestTimeout: 5 * time.Second,
		Carriers: map[string]carrierconfig.Carrier{
			"maersk": {
				Enabled:  true,
				AuthType: carrierconfig.AuthTypeNone,
				Endpoints: map[carrierconfig.EndpointType]carrierconfig.Endpoint{
					carrierconfig.EndpointSchedulePointToPoint: {URL: vendor.URL + "/ptp", Method: "GET"},
					carrierconfig.EndpointSchedulePort:         {URL: vendor.URL + "/port", Method: "GET"},
					carrierconfig.EndpointScheduleVessel:       {URL: vendor.URL + "/vessel", Method: "GET"},
					carrierconfig.EndpointTracking:             {URL: vendor.URL + "/tracking", Method: "GET"},
				},
			},
		},
	}

	client := carrier_client.NewClient(config, credentials.NewManager(map[string]string{}))

	return Source{
		Client: client,
		Now:    func() time.Time { return testToday },
	}, &calledPath
}

func TestScheduleQueryRouting(t *testing.T) {
	testCases := []struct {
		name         string
		query        query.Schedule
		expectedPath string
	}{
		{
			name: "receipt and delivery route to point to point",
			query: query.Schedule{
				PlaceOfReceipt:  "NLRTM",
				PlaceOfDelivery: "SGSIN",
			},
			expectedPath: "/ptp",
		},
		{
			name: "point to point beats port schedule",
			query: query.Schedule{
				PlaceOfReceipt:  "NLRTM",
				PlaceOfDelivery: "SGSIN",
				UNLocationCode:  "NLRTM",
				StartDate:       "2024-03-20",
			},
			expectedPath: "/ptp",
		},
		{
			name: "location and date route to port schedule",
			query: query.Schedule{
				UNLocationCode: "NLRTM",
				StartDate:      "2024-03-20",
			},
			expectedPath: "/port",
		},
		{
			name: "vessel scoping disqualifies port schedule",
			query: query.Schedule{
				UNLocationCode:  "NLRTM",
				StartDate:       "2024-03-20",
				VesselIMONumber: "9778791",
			},
			expectedPath: "/vessel",
		},
		{
			name: "service scoping disqualifies port schedule",
			query: query.Schedule{
				UNLocationCode:     "NLRTM",
				EndDate:            "2024-04-01",
				CarrierServiceCode: "AE1",
			},
			expectedPath: "/vessel",
		},
		{
			name:         "location without dates defaults to vessel schedule",
			query:        query.Schedule{UNLocationCode: "NLRTM"},
			expectedPath: "/vessel",
		},
		{
			name:         "empty query defaults to vessel schedule",
			query:        query.Schedule{},
			expectedPath: "/vessel",
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

func TestVesselScheduleDateWindow(t *testing.T) {
	testCases := []struct {
		name       string
		date       string
		outOfRange bool
	}{
		{name: "89 days back is accepted", date: "2023-12-17"},
		{name: "90 days back is the boundary", date: "2023-12-16"},
		{name: "91 days back is rejected", date: "2023-12-15", outOfRange: true},
		{name: "180 days ahead is the boundary", date: "2024-09-11"},
		{name: "181 days ahead is rejected", date: "2024-09-12", outOfRange: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			carrierSource, calledPath := testSource(t)

			_, err := carrierSource.VesselScheduleQuery(context.Background(), query.Schedule{
				StartDate: testCase.date,
			})

			if testCase.outOfRange {
				require.Error(t, err)
				assert.Empty(t, *calledPath, "no vendor call should be made")

				var rangeErr *source.OutOfRangeDateError
				require.ErrorAs(t, err, &rangeErr)
				assert.Equal(t, source.CarrierMaersk, rangeErr.Carrier)
				assert.Equal(t, "startDate", rangeErr.Parameter)
				assert.Equal(t, testCase.date, rangeErr.Value)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "/vessel", *calledPath)
		})
	}
}

func TestVesselScheduleRejectsMalformedDate(t *testing.T) {
	carrierSource, _ := testSource(t)

	_, err := carrierSource.VesselScheduleQuery(context.Background(), query.Schedule{
		EndDate: "15/03/2024",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "endDate")
}

func TestPointToPointRequiresBothEnds(t *testing.T) {
	carrierSource, _ := testSource(t)

	_, err := carrierSource.PointToPointQuery(context.Background(), query.Schedule{
		PlaceOfReceipt: "NLRTM",
	})
	require.Error(t, err)

	var missingErr *source.MissingParameterError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, "point-to-point", missingErr.SubAPI)
}

func TestTrackingQueryUnwrapsEnvelope(t *testing.T) {
	vendor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "MSKU9070323", r.URL.Query().Get("equipmentReference"))

		w.Write([]byte(`{
			"events": [
				{
					"eventType": "EQUIPMENT",
					"eventCreatedDateTime": "2024-03-01T10:00:00Z",
					"eventDateTime": "2024-03-01T09:00:00Z",
					"equipmentEventTypeCode": "LOAD",
					"equipmentReference": "MSKU9070323",
					"emptyIndicatorCode": "LADEN"
				}
			]
		}`))
	}))
	defer vendor.Close()

	config := &carrierconfig.Config{
		Carriers: map[string]carrierconfig.Carrier{
			"maersk": {
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
		EquipmentReference: "MSKU9070323",
	})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "EQUIPMENT", string(events[0].GetEventType()))
}
