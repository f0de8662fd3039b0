package domain

// Hotel is one row of the redemption dataset. The record set is loaded once
// at startup and never mutated; every query stage derives a new slice.
type Hotel struct {
	Brand         string  `json:"brand"`
	Hotel         string  `json:"hotel"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	AvgPtValue    float64 `json:"avgPtValue"`
	AvgPtsNight   float64 `json:"avgPtsNight"`
	AvgPts5Nights float64 `json:"avgPts5Nights"`
	// DistanceKmFromAirport is 0 when unknown, never a measured zero.
	DistanceKmFromAirport float64 `json:"distanceKmFromAirport"`
}

// Filter is the structured form of one query. A nil field imposes no
// constraint; a zero-key filter matches every record.
type Filter struct {
	City          *string  `json:"city,omitempty"`
	Brand         *string  `json:"brand,omitempty"`
	State         *string  `json:"state,omitempty"`
	Hotel         *string  `json:"hotel,omitempty"`
	MinPtsNight   *float64 `json:"minPtsNight,omitempty"`
	MaxPtsNight   *float64 `json:"maxPtsNight,omitempty"`
	MaxDistanceKm *float64 `json:"maxDistanceKm,omitempty"`
}

// Intents are derived from the literal query text, never from the filter.
// Both may be set at once; cheapest reduction runs before nearest ranking.
type Intents struct {
	Cheapest bool `json:"cheapest"`
	Nearest  bool `json:"nearest"`
}

func (i Intents) Any() bool { return i.Cheapest || i.Nearest }
