package main

import (
	"context"
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	server "tripster/internal/adapters/http_server"
	"tripster/internal/adapters/observability"
	redisad "tripster/internal/adapters/redis"
	"tripster/internal/app"
	"tripster/internal/catalog"
	"tripster/internal/domain"
	"tripster/internal/planner"
	"tripster/internal/shared"
	memstore "tripster/internal/storage/memory"
	mysqlrepo "tripster/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// catalog: loaded once, read-only afterwards
	cat, err := catalog.Load(context.Background(), cfg.CatalogDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.CatalogDir).Msg("catalog load failed")
	}

	// itinerary store
	var store domain.ItineraryStore
	switch cfg.StoreBackend {
	case "mysql":
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("database connection ok")
		store = mysqlrepo.New(db)
	case "memory":
		store = memstore.New()
		log.Warn().Msg("using in-memory itinerary store; itineraries are lost on restart")
	default:
		log.Fatal().Str("backend", cfg.StoreBackend).Msg("unknown STORE_BACKEND")
	}

	// deps
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	pcfg := planner.DefaultConfig()
	pcfg.DayHoursCap = cfg.DayHoursCap
	pcfg.DefaultMealsPerDay = cfg.MealsPerDay
	asm := planner.NewAssembler(cat, pcfg)

	p := app.NewPlanService(asm, store, cache, int(cfg.CacheTTL.Seconds()))
	q := app.NewQueryService(store, cat, cache, cfg.CacheTTL)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		P:       p,
		Q:       q,
		Limiter: rate.NewLimiter(rate.Limit(cfg.PlanRateLimit), cfg.PlanRateLimit*2),
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
