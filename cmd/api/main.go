package main

import (
	"context"
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "points_hotel/internal/adapters/http_server"
	"points_hotel/internal/adapters/observability"
	openaiad "points_hotel/internal/adapters/openai"
	redisad "points_hotel/internal/adapters/redis"
	"points_hotel/internal/app"
	"points_hotel/internal/dataset"
	"points_hotel/internal/domain"
	"points_hotel/internal/locale"
	"points_hotel/internal/shared"
	mysqlrepo "points_hotel/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	records := loadRecords(cfg)
	log.Info().Int("records", len(records)).Str("source", cfg.DatasetSource).Msg("dataset loaded")

	// deps
	loc := locale.New(records)
	model := openaiad.New(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL, cfg.ModelRPS)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	tr := app.NewTranslator(model, loc)
	svc := app.NewSearchService(records, tr, cache, cfg.CacheTTL)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{S: svc})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

func loadRecords(cfg shared.Config) []domain.Hotel {
	switch cfg.DatasetSource {
	case "mysql":
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		records, err := mysqlrepo.New(db).LoadHotels(context.Background())
		if err != nil {
			log.Fatal().Err(err).Msg("load hotels from mysql failed")
		}
		_ = db.Close() // dataset is fully in memory from here on
		return records
	default:
		records, err := dataset.Load(cfg.DatasetPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.DatasetPath).Msg("load hotels from csv failed")
		}
		return records
	}
}
