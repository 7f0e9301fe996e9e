package carrierconfig

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// EndpointType tags every outbound call with the vendor sub-API it targets.
// Call sites always know which endpoint they are calling, so nothing is ever
// inferred from URL text.
type EndpointType string

const (
	EndpointSchedule             EndpointType = "schedule"
	EndpointScheduleRoute        EndpointType = "schedule-route"
	EndpointScheduleVoyage       EndpointType = "schedule-voyage"
	EndpointScheduleProforma     EndpointType = "schedule-proforma"
	EndpointSchedulePointToPoint EndpointType = "schedule-ptp"
	EndpointSchedulePort         EndpointType = "schedule-port"
	EndpointScheduleVessel       EndpointType = "schedule-vessel"
	EndpointTracking             EndpointType = "tracking"
)

type AuthType string

const (
	AuthTypeNone   AuthType = "none"
	AuthTypeAPIKey AuthType = "api-key"
	AuthTypeOAuth2 AuthType = "oauth2"
)

type Endpoint struct {
	URL    string `yaml:"url"`
	Method string `yaml:"method"`

	// APIKeyHeader overrides the carrier-wide header name for this endpoint.
	APIKeyHeader string `yaml:"api_key_header"`
}

type Carrier struct {
	Enabled  bool     `yaml:"enabled"`
	AuthType AuthType `yaml:"auth_type"`

	// APIKeyHeader is the carrier-wide default header the resolved API key is
	// sent in.
	APIKeyHeader string `yaml:"api_key_header"`

	// SupplementaryAPIKey attaches the resolved API key in addition to the
	// OAuth2 bearer token. Some carriers require both at once.
	SupplementaryAPIKey bool `yaml:"supplementary_api_key"`

	TokenURL string `yaml:"token_url"`

	Endpoints map[EndpointType]Endpoint `yaml:"endpoints"`
}

type Config struct {
	RequestTimeout time.Duration

	Carriers map[string]Carrier
}

const configPathEnv = "LINERTRACK_CARRIERS_CONFIG"

// fileConfig is the on-disk shape. yaml.v3 has no native duration decoding,
// so the timeout travels as a Go duration string.
type fileConfig struct {
	RequestTimeout string             `yaml:"request_timeout"`
	Carriers       map[string]Carrier `yaml:"carriers"`
}

// Load returns the built-in carrier defaults, overlaid with the YAML file
// named by LINERTRACK_CARRIERS_CONFIG when set. A carrier present in the file
// replaces its default definition wholesale.
func Load() (*Config, error) {
	config := Defaults()

	path := os.Getenv(configPathEnv)
	if path == "" {
		return config, nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read carriers config %s: %w", path, err)
	}

	var overrides fileConfig
	if err := yaml.Unmarshal(file, &overrides); err != nil {
		return nil, fmt.Errorf("parse carriers config %s: %w", path, err)
	}

	if overrides.RequestTimeout != "" {
		timeout, err := time.ParseDuration(overrides.RequestTimeout)
		if err != nil {
			return nil, fmt.Errorf("parse request_timeout %q: %w", overrides.RequestTimeout, err)
		}
		config.RequestTimeout = timeout
	}
	for name, carrier := range overrides.Carriers {
		config.Carriers[name] = carrier
	}

	return config, nil
}

func (c *Config) Carrier(name string) (Carrier, bool) {
	carrier, ok := c.Carriers[name]
	return carrier, ok
}

func (c Carrier) Endpoint(endpointType EndpointType) (Endpoint, bool) {
	endpoint, ok := c.Endpoints[endpointType]
	return endpoint, ok
}
