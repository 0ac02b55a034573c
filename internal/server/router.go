package server

import (
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/derschnepf/Synergy-app/internal/repos"
	"github.com/derschnepf/Synergy-app/internal/routes"
	"github.com/derschnepf/Synergy-app/pkg/deps"
)

// Options tunes the HTTP surface around the API handlers.
type Options struct {
	Name               string
	FrontendDir        string   // empty or missing disables static serving
	CORSAllowedOrigins []string // empty allows any origin
	RateLimitRPS       float64  // 0 disables rate limiting
	RateLimitBurst     int
}

type Server struct {
	deps.ServerDeps
	opts Options
}

func New(r *repos.Repository, opts Options) *Server {
	return &Server{
		ServerDeps: deps.ServerDeps{Repo: r, Name: opts.Name, StartedAt: time.Now()},
		opts:       opts,
	}
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	sd := s.ServerDeps

	// Endpoints declared here for easy scanning
	mux.HandleFunc("GET /health", routes.Health(sd))
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /movies", routes.Movies(sd))
	mux.HandleFunc("POST /movies", routes.CreateMovie(sd))
	mux.HandleFunc("PUT /movies/{id}", routes.UpdateMovie(sd))
	mux.HandleFunc("DELETE /movies/{id}", routes.DeleteMovie(sd))

	mux.HandleFunc("GET /restaurants", routes.Restaurants(sd))
	mux.HandleFunc("POST /restaurants", routes.CreateRestaurant(sd))
	mux.HandleFunc("PUT /restaurants/{id}", routes.UpdateRestaurant(sd))
	mux.HandleFunc("DELETE /restaurants/{id}", routes.DeleteRestaurant(sd))

	if dir := s.opts.FrontendDir; dir != "" {
		if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
			mux.Handle("GET /frontend/", http.StripPrefix("/frontend/", http.FileServer(http.Dir(dir))))
			mux.Handle("GET /{$}", http.RedirectHandler("/frontend/", http.StatusFound))
		} else {
			log.Warn().Str("dir", dir).Msg("frontend directory not found, static serving disabled")
		}
	}

	var h http.Handler = mux
	if s.opts.RateLimitRPS > 0 {
		h = newRateLimiter(s.opts.RateLimitRPS, s.opts.RateLimitBurst).middleware(h)
	}
	h = withCORS(s.opts.CORSAllowedOrigins)(h)
	h = withSecurityHeaders(h)
	h = withRecovery(h)
	return withCorrelationID(withLogging(h))
}
