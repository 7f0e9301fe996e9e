package routes

import (
	"fmt"
	"strings"

	"github.com/linertrack/linertrack/pkg/aggregator/source"
	"github.com/linertrack/linertrack/pkg/util"
)

// parseCarriers turns the comma separated carriers parameter into a validated
// carrier list. An empty parameter selects every known carrier.
func parseCarriers(value string) ([]string, error) {
	var known []string
	for _, carrier := range source.AllCarriers {
		known = append(known, string(carrier))
	}

	if value == "" {
		return known, nil
	}

	var carriers []string
	for _, carrier := range strings.Split(value, ",") {
		carrier = strings.ToLower(strings.TrimSpace(carrier))
		if carrier == "" {
			continue
		}

		if !util.ContainsString(known, carrier) {
			return nil, fmt.Errorf("unknown carrier %s", carrier)
		}

		carriers = append(carriers, carrier)
	}

	carriers = util.RemoveDuplicateStrings(carriers, []string{})

	if len(carriers) == 0 {
		return known, nil
	}

	return carriers, nil
}
