package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"points_hotel/internal/adapters/geo"
	"points_hotel/internal/adapters/observability"
	"points_hotel/internal/app"
	"points_hotel/internal/dataset"
	"points_hotel/internal/domain"
	"points_hotel/internal/shared"
	mysqlrepo "points_hotel/internal/storage/mysql"
)

// Offline tool: fills distanceKmFromAirport for records where it is unknown,
// geocoding each hotel and its city's airport and routing between them.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("source", cfg.DatasetSource).
		Str("geocoder", cfg.GeocodeBase).
		Int("workers", cfg.Workers).
		Msg("enricher starting")

	var repo *mysqlrepo.Repo
	var records []domain.Hotel
	switch cfg.DatasetSource {
	case "mysql":
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		defer db.Close()
		repo = mysqlrepo.New(db)
		records, err = repo.LoadHotels(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("load hotels from mysql failed")
		}
	default:
		var err error
		records, err = dataset.Load(cfg.DatasetPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.DatasetPath).Msg("load hotels from csv failed")
		}
	}

	geocache, err := geo.OpenDiskCache(cfg.GeoCachePath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.GeoCachePath).Msg("open geocode cache failed")
	}
	enr := app.NewEnricher(geo.New(cfg.GeocodeBase, cfg.RouteBase, cfg.GeoRPS), geocache)

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup
	var mu sync.Mutex // guards writes into records
	var enriched int

	for i := range records {
		if records[i].DistanceKmFromAirport > 0 {
			continue // already measured
		}

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			defer sem.Release(1)

			h := records[idx]
			km, err := enr.AirportDistanceKm(ctx, h)
			if err != nil {
				log.Warn().Str("hotel", h.Hotel).Str("city", h.City).Err(err).Msg("enrich failed")
				return
			}

			mu.Lock()
			records[idx].DistanceKmFromAirport = km
			enriched++
			mu.Unlock()

			if repo != nil {
				if err := repo.UpdateDistance(ctx, h.Hotel, h.City, km); err != nil {
					log.Warn().Str("hotel", h.Hotel).Err(err).Msg("distance write-back failed")
					return
				}
			}
			log.Info().Str("hotel", h.Hotel).Float64("km", km).Msg("enriched")
		}(i)
	}

	wg.Wait()

	if err := geocache.Save(); err != nil {
		log.Warn().Err(err).Msg("save geocode cache failed")
	}

	if repo == nil {
		out := cfg.DatasetOut
		if out == "" {
			out = cfg.DatasetPath
		}
		if err := dataset.Write(out, records); err != nil {
			log.Fatal().Err(err).Str("path", out).Msg("write enriched dataset failed")
		}
		log.Info().Str("path", out).Msg("enriched dataset written")
	}

	log.Info().Int("enriched", enriched).Msg("enrichment completed")
}
