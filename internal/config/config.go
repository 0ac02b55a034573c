package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Config holds runtime configuration loaded from env.
type Config struct {
	Port               string
	DataDir            string
	MoviesFile         string
	RestaurantsFile    string
	FrontendDir        string
	CORSAllowedOrigins []string
	ValkeyAddr         string
	ValkeyPassword     string
	CacheTTL           time.Duration
	RateLimitRPS       float64
	RateLimitBurst     int
	BackupDir          string
	BackupInterval     time.Duration
	BackupKeep         int
	LogLevel           string
	LogFormat          string
	Env                string
}

func FromEnv() Config {
	dataDir := getEnv("DATA_DIR", "./data")
	c := Config{
		Port:            getEnv("PORT", "8000"),
		DataDir:         dataDir,
		MoviesFile:      getEnv("MOVIES_FILE", filepath.Join(dataDir, "movies.json")),
		RestaurantsFile: getEnv("RESTAURANTS_FILE", filepath.Join(dataDir, "restaurants.json")),
		FrontendDir:     getEnv("FRONTEND_DIR", "./frontend"),
		ValkeyAddr:      os.Getenv("VALKEY_ADDR"),
		ValkeyPassword:  os.Getenv("VALKEY_PASSWORD"),
		CacheTTL:        getDuration("CACHE_TTL", 30*time.Second),
		RateLimitRPS:    getFloat("RATE_LIMIT_RPS", 0),
		RateLimitBurst:  getInt("RATE_LIMIT_BURST", 20),
		BackupDir:       getEnv("BACKUP_DIR", filepath.Join(dataDir, "backups")),
		BackupInterval:  getDuration("BACKUP_INTERVAL", 0),
		BackupKeep:      getInt("BACKUP_KEEP", 10),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
		Env:             getEnv("ENV", "development"),
	}
	// CORS allowed origins; empty means any origin
	if s := os.Getenv("CORS_ALLOWED_ORIGINS"); s != "" {
		for _, p := range strings.Split(s, ",") {
			if v := strings.TrimSpace(p); v != "" {
				c.CORSAllowedOrigins = append(c.CORSAllowedOrigins, v)
			}
		}
	}
	return c
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid integer, using default")
		return def
	}
	return n
}

func getFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid number, using default")
		return def
	}
	return f
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid duration, using default")
		return def
	}
	return d
}
