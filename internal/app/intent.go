package app

import (
	"regexp"
	"sort"

	"points_hotel/internal/domain"
)

const nearestLimit = 5

var (
	cheapestRe = regexp.MustCompile(`(?i)\b(cheapest|lowest|least\s+expensive|min(?:imum)?)\b`)
	nearestRe  = regexp.MustCompile(`(?i)\b(nearest|closest)\b`)
)

// DetectIntents classifies the literal query text. Computed once per request
// and threaded through; never re-derived downstream.
func DetectIntents(query string) domain.Intents {
	return domain.Intents{
		Cheapest: cheapestRe.MatchString(query),
		Nearest:  nearestRe.MatchString(query),
	}
}

// ApplyIntents transforms an already-filtered result set. Cheapest reduction
// runs before the nearest sort/truncate; with both intents present this can
// discard the cheapest record if it is not among the five nearest, which is
// the documented behavior.
func ApplyIntents(in []domain.Hotel, intents domain.Intents) []domain.Hotel {
	out := in
	if intents.Cheapest {
		out = reduceToCheapest(out)
	}
	if intents.Nearest {
		out = rankNearest(out)
	}
	return out
}

// reduceToCheapest keeps every record whose AvgPtsNight equals the set-wide
// minimum. Ties are all retained.
func reduceToCheapest(in []domain.Hotel) []domain.Hotel {
	if len(in) == 0 {
		return in
	}
	min := in[0].AvgPtsNight
	for _, r := range in[1:] {
		if r.AvgPtsNight < min {
			min = r.AvgPtsNight
		}
	}
	out := make([]domain.Hotel, 0, len(in))
	for _, r := range in {
		if r.AvgPtsNight == min {
			out = append(out, r)
		}
	}
	return out
}

// rankNearest restricts to records with a measured (strictly positive)
// distance, sorts ascending, and truncates to at most five.
func rankNearest(in []domain.Hotel) []domain.Hotel {
	out := make([]domain.Hotel, 0, len(in))
	for _, r := range in {
		if r.DistanceKmFromAirport > 0 {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DistanceKmFromAirport < out[j].DistanceKmFromAirport
	})
	if len(out) > nearestLimit {
		out = out[:nearestLimit]
	}
	return out
}
