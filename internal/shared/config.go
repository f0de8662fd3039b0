package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string

	// dataset
	DatasetSource string // csv | mysql
	DatasetPath   string
	MySQLDSN      string

	// model
	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string
	ModelRPS      int

	// translation cache
	RedisAddr string
	RedisDB   int
	RedisPass string
	CacheTTL  time.Duration

	// enricher
	GeocodeBase  string
	RouteBase    string
	GeoRPS       int
	GeoCachePath string
	Workers      int
	DatasetOut   string
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:        env("APP_ENV", "prod"),
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		MetricsAddr:   env("METRICS_ADDR", ":9100"),
		DatasetSource: env("DATASET_SOURCE", "csv"),
		DatasetPath:   env("DATASET_PATH", "data/hotels.csv"),
		MySQLDSN:      env("MYSQL_DSN", "root:root@tcp(localhost:3306)/points?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		OpenAIKey:     env("OPENAI_API_KEY", ""),
		OpenAIModel:   env("OPENAI_MODEL", "gpt-4o"),
		OpenAIBaseURL: env("OPENAI_BASE_URL", ""),
		ModelRPS:      atoi("OPENAI_RPS", 3),
		RedisAddr:     env("REDIS_ADDR", "localhost:6379"),
		RedisPass:     env("REDIS_PASSWORD", ""),
		RedisDB:       atoi("REDIS_DB", 0),
		CacheTTL:      time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		GeocodeBase:   env("GEOCODE_BASE_URL", "https://nominatim.openstreetmap.org"),
		RouteBase:     env("ROUTE_BASE_URL", "https://router.project-osrm.org"),
		GeoRPS:        atoi("GEO_RPS", 1),
		GeoCachePath:  env("GEO_CACHE_PATH", "data/geocache.json"),
		Workers:       atoi("ENRICH_WORKERS", 4),
		DatasetOut:    env("DATASET_OUT", ""),
	}
	if c.OpenAIKey == "" {
		log.Warn().Msg("OPENAI_API_KEY is empty; search requests will fail until it is set")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
