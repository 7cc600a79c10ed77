package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	server "holdhive/internal/adapters/http_server"
	"holdhive/internal/adapters/observability"
	redisad "holdhive/internal/adapters/redis"
	"holdhive/internal/app"
	"holdhive/internal/shared"
	mysqlrepo "holdhive/internal/storage/mysql"
)

func main() {
	_ = godotenv.Load()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// deps
	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	handlers := &server.Handlers{
		Q: app.NewQueryService(repo, cache, cfg.CacheTTL),
		S: app.NewSearchService(repo, cache, cfg.CacheTTL),
		A: app.NewAnalyticsService(repo, cache, cfg.CacheTTL, nil),
		C: app.NewCommandService(repo, cache, nil, nil),
	}

	// http
	srv := server.New(server.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst))
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(handlers)

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
