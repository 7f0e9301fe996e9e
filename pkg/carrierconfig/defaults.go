package carrierconfig

import "time"

// Defaults returns the production carrier endpoint definitions. Operators
// override individual carriers through the YAML file named by
// LINERTRACK_CARRIERS_CONFIG.
func Defaults() *Config {
	return &Config{
		RequestTimeout: 30 * time.Second,

		Carriers: map[string]Carrier{
			"cmacgm": {
				Enabled:      true,
				AuthType:     AuthTypeAPIKey,
				APIKeyHeader: "KeyId",
				Endpoints: map[EndpointType]Endpoint{
					EndpointScheduleRoute: {
						URL:    "https://apis.cma-cgm.net/vesselschedule/routing/v2/port-routings",
						Method: "GET",
					},
					EndpointScheduleVoyage: {
						URL:    "https://apis.cma-cgm.net/vesselschedule/v2/voyages",
						Method: "GET",
					},
					EndpointScheduleProforma: {
						URL:    "https://apis.cma-cgm.net/vesselschedule/v2/proformas",
						Method: "GET",
					},
					EndpointSchedule: {
						URL:    "https://apis.cma-cgm.net/commercialschedule/v1/service-schedules",
						Method: "GET",
					},
					EndpointTracking: {
						URL:    "https://apis.cma-cgm.net/shipment/events/v1",
						Method: "GET",
					},
				},
			},

			"hmm": {
				Enabled:      true,
				AuthType:     AuthTypeAPIKey,
				APIKeyHeader: "x-Gateway-APIKey",
				Endpoints: map[EndpointType]Endpoint{
					EndpointScheduleVessel: {
						URL:    "https://gateway.hmm21.com/gateway/vesselSchedule/v1/vessel-schedules",
						Method: "POST",
					},
					EndpointSchedulePointToPoint: {
						URL:    "https://gateway.hmm21.com/gateway/p2pschedule/v1/port-to-port-schedules",
						Method: "POST",
					},
					EndpointSchedulePort: {
						URL:    "https://gateway.hmm21.com/gateway/portSchedule/v1/port-schedules",
						Method: "POST",
					},
					EndpointTracking: {
						URL:    "https://gateway.hmm21.com/gateway/trackTrace/v1/events",
						Method: "POST",
					},
				},
			},

			"maersk": {
				Enabled:             true,
				AuthType:            AuthTypeOAuth2,
				SupplementaryAPIKey: true,
				APIKeyHeader:        "Consumer-Key",
				TokenURL:            "https://api.maersk.com/customer-identity/oauth/v2/access_token",
				Endpoints: map[EndpointType]Endpoint{
					EndpointSchedulePointToPoint: {
						URL:    "https://api.maersk.com/products/ocean-products",
						Method: "GET",
					},
					EndpointSchedulePort: {
						URL:    "https://api.maersk.com/schedules/port-calls",
						Method: "GET",
					},
					EndpointScheduleVessel: {
						URL:    "https://api.maersk.com/schedules/vessel-schedules",
						Method: "GET",
					},
					EndpointTracking: {
						URL:    "https://api.maersk.com/track-and-trace-private/events",
						Method: "GET",
					},
				},
			},

			"zim": {
				Enabled:             true,
				AuthType:            AuthTypeOAuth2,
				SupplementaryAPIKey: true,
				APIKeyHeader:        "Ocp-Apim-Subscription-Key",
				TokenURL:            "https://apigw.zim.com/oauth2/v1/token",
				Endpoints: map[EndpointType]Endpoint{
					EndpointSchedulePointToPoint: {
						URL:    "https://apigw.zim.com/schedules/v2/point-to-point",
						Method: "GET",
					},
					EndpointTracking: {
						URL:    "https://apigw.zim.com/tracing/v1/events",
						Method: "GET",
					},
				},
			},
		},
	}
}
