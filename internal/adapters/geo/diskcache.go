package geo

import (
	"encoding/json"
	"os"
	"sync"
)

type coords struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// DiskCache is an on-disk geocode cache shared across enricher runs. Safe
// for concurrent workers; persisted explicitly via Save.
type DiskCache struct {
	path string

	mu      sync.Mutex
	entries map[string]coords
}

// OpenDiskCache loads the cache at path; a missing file yields an empty cache.
func OpenDiskCache(path string) (*DiskCache, error) {
	c := &DiskCache{path: path, entries: map[string]coords{}}
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(b, &c.entries); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *DiskCache) Lookup(place string) (float64, float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[place]
	return v.Lat, v.Lon, ok
}

func (c *DiskCache) Store(place string, lat, lon float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[place] = coords{Lat: lat, Lon: lon}
}

func (c *DiskCache) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, b, 0o644)
}
