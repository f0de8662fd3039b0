package app

import (
	"context"
	"errors"
	"fmt"

	"points_hotel/internal/domain"
)

// GeocodeCache lets the enricher reuse coordinates across runs; the public
// geocoders are slow and rate-limited.
type GeocodeCache interface {
	Lookup(place string) (lat, lon float64, ok bool)
	Store(place string, lat, lon float64)
}

// Enricher fills in airport distances for records where the measurement is
// unknown. Offline concern; never runs on the serving path.
type Enricher struct {
	geo   domain.GeoClient
	cache GeocodeCache // may be nil
}

func NewEnricher(g domain.GeoClient, cache GeocodeCache) *Enricher {
	return &Enricher{geo: g, cache: cache}
}

// AirportDistanceKm resolves the hotel and its city's airport and measures
// the driving distance between them.
func (e *Enricher) AirportDistanceKm(ctx context.Context, h domain.Hotel) (float64, error) {
	hotelLat, hotelLon, err := e.locate(ctx,
		fmt.Sprintf("%s, %s", h.Hotel, h.City),
		h.City)
	if err != nil {
		return 0, fmt.Errorf("locate hotel: %w", err)
	}

	airLat, airLon, err := e.locate(ctx,
		fmt.Sprintf("%s international airport", h.City),
		fmt.Sprintf("%s airport", h.City))
	if err != nil {
		return 0, fmt.Errorf("locate airport: %w", err)
	}

	return e.geo.RouteKm(ctx, hotelLat, hotelLon, airLat, airLon)
}

// locate geocodes primary, falling back to the coarser query when the
// geocoder has no match. Results are cached per query string.
func (e *Enricher) locate(ctx context.Context, primary, fallback string) (float64, float64, error) {
	for _, place := range []string{primary, fallback} {
		if e.cache != nil {
			if lat, lon, ok := e.cache.Lookup(place); ok {
				return lat, lon, nil
			}
		}
		lat, lon, err := e.geo.Geocode(ctx, place)
		if err == nil {
			if e.cache != nil {
				e.cache.Store(place, lat, lon)
			}
			return lat, lon, nil
		}
		if !errors.Is(err, domain.ErrNoMatch) {
			return 0, 0, err
		}
	}
	return 0, 0, fmt.Errorf("%w: %s", domain.ErrNoMatch, primary)
}
