package shared

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string

	StoreBackend string // mysql|memory
	MySQLDSN     string
	RedisAddr    string
	RedisDB      int
	RedisPass    string
	CacheTTL     time.Duration

	CatalogDir string

	// plan endpoint throttle, requests per second (burst = 2x)
	PlanRateLimit int

	// planner tunables
	DayHoursCap float64
	MealsPerDay int
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
	atof := func(k string, def float64) float64 {
		if v := os.Getenv(k); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		}
		return def
	}
	return Config{
		AppEnv:        env("APP_ENV", "prod"),
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		MetricsAddr:   env("METRICS_ADDR", ""),
		StoreBackend:  env("STORE_BACKEND", "memory"),
		MySQLDSN:      env("MYSQL_DSN", "root:root@tcp(localhost:3306)/tripster?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:     env("REDIS_ADDR", "localhost:6379"),
		RedisPass:     env("REDIS_PASSWORD", ""),
		RedisDB:       atoi("REDIS_DB", 0),
		CacheTTL:      time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		CatalogDir:    env("CATALOG_DIR", "data/catalog"),
		PlanRateLimit: atoi("PLAN_RATE_LIMIT", 10),
		DayHoursCap:   atof("DAY_HOURS_CAP", 6),
		MealsPerDay:   atoi("MEALS_PER_DAY", 2),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
