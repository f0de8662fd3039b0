package domain

import (
	"context"
	"time"
)

// ModelClient is the external language-model collaborator. Translate returns
// the raw text the model produced for the given query; parsing and correction
// happen in the application layer.
type ModelClient interface {
	Translate(ctx context.Context, query string) (string, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// DatasetSource loads the full record set once at startup.
type DatasetSource interface {
	LoadHotels(ctx context.Context) ([]Hotel, error)
}

// GeoClient resolves place names to coordinates and measures driving
// distance; used only by the offline enrichment tool.
type GeoClient interface {
	Geocode(ctx context.Context, place string) (lat, lon float64, err error)
	RouteKm(ctx context.Context, fromLat, fromLon, toLat, toLon float64) (float64, error)
}
