package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/derschnepf/Synergy-app/internal/config"
	"github.com/derschnepf/Synergy-app/internal/jobs"
	"github.com/derschnepf/Synergy-app/internal/repos"
	"github.com/derschnepf/Synergy-app/internal/server"
	"github.com/derschnepf/Synergy-app/pkg/cache"
)

const serviceName = "vault-server"

func main() {
	_ = godotenv.Load() // best-effort
	cfg := config.FromEnv()
	cfg.SetupLogging()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var c cache.Cache
	if addr := cfg.ValkeyAddr; addr != "" {
		vc, err := cache.NewValkey(addr, cfg.ValkeyPassword, serviceName+":")
		if err != nil {
			log.Error().Err(err).Msg("valkey connect failed, using in-memory cache")
			c = cache.NewInMemory()
		} else {
			c = vc
		}
	} else {
		c = cache.NewInMemory()
	}
	defer c.Close()

	repository := repos.New(repos.Options{
		MoviesPath:      cfg.MoviesFile,
		RestaurantsPath: cfg.RestaurantsFile,
		Cache:           c,
		CacheTTL:        cfg.CacheTTL,
	})

	// A document that exists but does not parse must be fixed by the operator.
	if err := jobs.VerifyStores(ctx, repository); err != nil {
		log.Fatal().Err(err).Msg("collection verification failed")
	}

	jobs.StartBackups(ctx, repository, cfg.BackupDir, cfg.BackupInterval, cfg.BackupKeep)

	api := server.New(repository, server.Options{
		Name:               serviceName,
		FrontendDir:        cfg.FrontendDir,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitRPS:       cfg.RateLimitRPS,
		RateLimitBurst:     cfg.RateLimitBurst,
	})

	addr := ":" + cfg.Port
	go func() {
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
		if err := server.StartHTTP(ctx, addr, api.Router()); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	_, _ = fmt.Fprintln(os.Stderr, "shutting down...")
	time.Sleep(200 * time.Millisecond)
}
