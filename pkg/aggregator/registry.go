package aggregator

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/linertrack/linertrack/pkg/aggregator/source"
	"github.com/linertrack/linertrack/pkg/aggregator/source/cmacgm"
	"github.com/linertrack/linertrack/pkg/aggregator/source/hmm"
	"github.com/linertrack/linertrack/pkg/aggregator/source/maersk"
	"github.com/linertrack/linertrack/pkg/aggregator/source/zim"
	"github.com/linertrack/linertrack/pkg/carrier_client"
	"github.com/linertrack/linertrack/pkg/carrierconfig"
)

// Registry builds and caches one carrier source per configured, enabled
// carrier. It is an explicitly constructed object passed by reference; there
// is no package-level instance.
type Registry struct {
	config *carrierconfig.Config
	client *carrier_client.Client

	mutex   sync.Mutex
	sources map[string]source.CarrierSource
}

func NewRegistry(config *carrierconfig.Config, client *carrier_client.Client) *Registry {
	return &Registry{
		config:  config,
		client:  client,
		sources: map[string]source.CarrierSource{},
	}
}

// Get returns the source for a carrier, constructing it on first use.
func (r *Registry) Get(carrier string) (source.CarrierSource, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if cached, ok := r.sources[carrier]; ok {
		return cached, nil
	}

	carrierConfig, ok := r.config.Carrier(carrier)
	if !ok {
		return nil, fmt.Errorf("unknown carrier %s", carrier)
	}
	if !carrierConfig.Enabled {
		return nil, fmt.Errorf("carrier %s is disabled", carrier)
	}

	var carrierSource source.CarrierSource

	switch source.Carrier(carrier) {
	case source.CarrierCMACGM:
		carrierSource = cmacgm.Source{Client: r.client}
	case source.CarrierHMM:
		carrierSource = hmm.Source{Client: r.client}
	case source.CarrierMaersk:
		carrierSource = maersk.Source{Client: r.client}
	case source.CarrierZIM:
		carrierSource = zim.Source{Client: r.client}
	default:
		return nil, fmt.Errorf("no source implemented for carrier %s", carrier)
	}

	r.sources[carrier] = carrierSource

	log.Debug().Str("name", carrierSource.GetName()).Msg("Registered new carrier source")

	return carrierSource, nil
}

// Reset drops every cached source. Intended for test teardown.
func (r *Registry) Reset() {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.sources = map[string]source.CarrierSource{}
}
