package app

import (
	"strings"

	"points_hotel/internal/domain"
)

// umbrellaBrand is the chain name that spans every sub-brand in the dataset.
// It never appears literally in the brand field, so filtering by it alone
// must not narrow results.
const umbrellaBrand = "marriott"

// ApplyFilter returns the records satisfying every present filter field
// (logical AND; absent fields impose no constraint). The result preserves
// the input order; ranking belongs to the intent post-processor.
func ApplyFilter(f domain.Filter, records []domain.Hotel) []domain.Hotel {
	out := make([]domain.Hotel, 0, len(records))
	for _, r := range records {
		if matches(f, r) {
			out = append(out, r)
		}
	}
	return out
}

func matches(f domain.Filter, r domain.Hotel) bool {
	if f.City != nil && !tokensMatch(*f.City, r.City) {
		return false
	}
	if f.State != nil && !tokensMatch(*f.State, r.State) {
		return false
	}
	if f.Hotel != nil && !tokensMatch(*f.Hotel, r.Hotel) {
		return false
	}
	if f.Brand != nil && !brandMatch(*f.Brand, r) {
		return false
	}
	if f.MinPtsNight != nil && r.AvgPtsNight < *f.MinPtsNight {
		return false
	}
	if f.MaxPtsNight != nil && r.AvgPtsNight > *f.MaxPtsNight {
		return false
	}
	if f.MaxDistanceKm != nil {
		// An unknown (zero) distance never satisfies a distance cap.
		if r.DistanceKmFromAirport <= 0 || r.DistanceKmFromAirport > *f.MaxDistanceKm {
			return false
		}
	}
	return true
}

// tokensMatch reports whether every whitespace-delimited token of the filter
// value occurs as a substring of the field, case-insensitive. Tolerates
// multi-word phrases like "new delhi" against "New Delhi".
func tokensMatch(filterVal, fieldVal string) bool {
	field := strings.ToLower(fieldVal)
	for _, tok := range strings.Fields(strings.ToLower(filterVal)) {
		if !strings.Contains(field, tok) {
			return false
		}
	}
	return true
}

// brandMatch is a plain substring match against the brand or the hotel name,
// except that the umbrella chain name matches everything.
func brandMatch(filterVal string, r domain.Hotel) bool {
	b := strings.ToLower(strings.TrimSpace(filterVal))
	if b == umbrellaBrand {
		return true
	}
	return strings.Contains(strings.ToLower(r.Brand), b) ||
		strings.Contains(strings.ToLower(r.Hotel), b)
}
