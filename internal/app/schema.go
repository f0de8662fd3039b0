package app

import (
	"fmt"
	"sort"

	"points_hotel/internal/domain"
)

// The seven allowed filter keys. This whitelist is the sole trust boundary
// between unconstrained model output and the filtering engine: no generated
// key outside it can ever influence record selection.
var (
	stringKeys = map[string]bool{"city": true, "brand": true, "state": true, "hotel": true}
	numberKeys = map[string]bool{"minPtsNight": true, "maxPtsNight": true, "maxDistanceKm": true}
)

// validateFilterMap checks a corrected raw filter against the whitelist.
// Runs after all corrections so they cannot be bypassed by ordering.
func validateFilterMap(raw map[string]any) *domain.SchemaError {
	var bad []string
	for k, v := range raw {
		switch {
		case stringKeys[k]:
			if _, ok := v.(string); !ok {
				bad = append(bad, fmt.Sprintf("%s: must be a string", k))
			}
		case numberKeys[k]:
			n, ok := v.(float64)
			if !ok || n < 0 {
				bad = append(bad, fmt.Sprintf("%s: must be a non-negative number", k))
			}
		default:
			bad = append(bad, fmt.Sprintf("%s: unknown key", k))
		}
	}
	if len(bad) == 0 {
		return nil
	}
	sort.Strings(bad)
	return &domain.SchemaError{Fields: bad}
}

// buildFilter converts a validated raw map into the typed filter.
func buildFilter(raw map[string]any) domain.Filter {
	var f domain.Filter
	str := func(k string) *string {
		if v, ok := raw[k].(string); ok {
			return &v
		}
		return nil
	}
	num := func(k string) *float64 {
		if v, ok := raw[k].(float64); ok {
			return &v
		}
		return nil
	}
	f.City = str("city")
	f.Brand = str("brand")
	f.State = str("state")
	f.Hotel = str("hotel")
	f.MinPtsNight = num("minPtsNight")
	f.MaxPtsNight = num("maxPtsNight")
	f.MaxDistanceKm = num("maxDistanceKm")
	return f
}
