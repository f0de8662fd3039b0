package geo

import (
	"context"
	crand "crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"points_hotel/internal/adapters/observability"
	"points_hotel/internal/domain"
)

// Client talks to a Nominatim-style geocoder and an OSRM-style router. Used
// only by the offline enrichment tool; the serving path never calls out here.
type Client struct {
	geocodeBase string
	routeBase   string
	hc          *http.Client
	rl          *rate.Limiter
}

func New(geocodeBase, routeBase string, rps int) *Client {
	if rps <= 0 {
		rps = 1 // public Nominatim allows 1 req/s
	}
	return &Client{
		geocodeBase: strings.TrimRight(geocodeBase, "/"),
		routeBase:   strings.TrimRight(routeBase, "/"),
		hc:          &http.Client{Timeout: 20 * time.Second},
		rl:          rate.NewLimiter(rate.Limit(rps), rps),
	}
}

// ErrNoMatch aliases the domain sentinel so callers of this package can
// match on either import.
var ErrNoMatch = domain.ErrNoMatch

type geocodeHit struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves a place name to coordinates, picking the top hit.
func (c *Client) Geocode(ctx context.Context, place string) (float64, float64, error) {
	u := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", c.geocodeBase, url.QueryEscape(place))

	var hits []geocodeHit
	start := time.Now()
	err := c.get(ctx, u, &hits)
	observability.ObserveExternal("geo", "geocode", statusOf(err), time.Since(start))
	if err != nil {
		return 0, 0, err
	}
	if len(hits) == 0 {
		return 0, 0, fmt.Errorf("%w: %s", ErrNoMatch, place)
	}
	lat, err := strconv.ParseFloat(hits[0].Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad lat %q: %w", hits[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(hits[0].Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad lon %q: %w", hits[0].Lon, err)
	}
	return lat, lon, nil
}

type routeResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"` // meters
	} `json:"routes"`
}

// RouteKm returns the driving distance between two points in kilometers.
func (c *Client) RouteKm(ctx context.Context, fromLat, fromLon, toLat, toLon float64) (float64, error) {
	u := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=false",
		c.routeBase, fromLon, fromLat, toLon, toLat)

	var rr routeResponse
	start := time.Now()
	err := c.get(ctx, u, &rr)
	observability.ObserveExternal("geo", "route", statusOf(err), time.Since(start))
	if err != nil {
		return 0, err
	}
	if rr.Code != "Ok" || len(rr.Routes) == 0 {
		return 0, fmt.Errorf("%w: no route", ErrNoMatch)
	}
	return rr.Routes[0].Distance / 1000, nil
}

func statusOf(err error) int {
	if err == nil {
		return 200
	}
	return 0
}

// get performs a GET with client-side rate limiting, retries, and JSON decode
// into out. Retries on 429 and transient 5xx, honoring Retry-After.
func (c *Client) get(ctx context.Context, rawURL string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var lastErr error
	for i := 0; i < 4; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "points-hotel-enricher/1.0")

		resp, err := c.hc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr
		}

		switch resp.StatusCode {
		case http.StatusOK:
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			return err

		case http.StatusNotFound:
			resp.Body.Close()
			return ErrNoMatch

		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = fmt.Errorf("remote %d", resp.StatusCode)
			if i < 3 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr

		default:
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			return fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
		}
	}

	return lastErr
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After (seconds or HTTP-date). 0 if absent/invalid.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff doubles each attempt (200ms, 400ms, 800ms...) with up to +50%
// jitter from crypto/rand.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	j := time.Duration(0.5 * f * float64(base))
	return base + j
}
