package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"FounderX/internals/apperrors"
	"FounderX/internals/handlers/analytics"
	"FounderX/internals/handlers/httpx"
	"FounderX/internals/handlers/middleware"
	"FounderX/internals/handlers/predictions"
	"FounderX/internals/handlers/startups"
	"FounderX/internals/handlers/users"
	"FounderX/internals/metrics"
)

const welcomeMessage = "Welcome to AI Startup Advisor Backend!"

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type AuthService interface {
	users.AuthService
	middleware.TokenVerifier
}

type Deps struct {
	Auth        AuthService
	Startups    startups.Service
	Health      HealthChecker
	Metrics     *metrics.Collector
	Gatherer    prometheus.Gatherer
	RateLimiter *middleware.RateLimiter
	Logger      zerolog.Logger
	CORSOrigins []string

	// TrustProxyHeaders enables chi's RealIP, which rewrites RemoteAddr from
	// client-supplied headers. The rate limiter keys on RemoteAddr.
	TrustProxyHeaders bool
}

func NewRouter(d Deps) (http.Handler, error) {
	if d.Auth == nil {
		return nil, errors.New("nil Auth service")
	}
	if d.Startups == nil {
		return nil, errors.New("nil Startups service")
	}
	if d.Health == nil {
		return nil, errors.New("nil Health checker")
	}
	if d.Metrics == nil || d.Gatherer == nil {
		return nil, errors.New("nil metrics")
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	if d.TrustProxyHeaders {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.RequestLogger(d.Logger, d.Metrics))
	r.Use(chimw.Recoverer)
	r.Use(chimw.StripSlashes)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteError(w, r, apperrors.New(apperrors.KindNotFound, "not_found", "route not found"))
	})

	r.Get("/", rootHandler)
	r.Get("/healthz", healthHandler(d.Health))
	r.Handle("/metrics", metrics.Handler(d.Gatherer))

	r.Route("/auth", func(r chi.Router) {
		if d.RateLimiter != nil {
			r.Use(d.RateLimiter.Middleware(httpx.WriteError))
		}
		r.Post("/signup", users.SignupHandler(d.Auth, d.Metrics))
		r.Post("/login", users.LoginHandler(d.Auth, d.Metrics))
		r.With(middleware.Bearer(d.Auth, httpx.WriteError)).Get("/me", users.MeHandler(d.Auth))
	})

	r.Route("/startups", func(r chi.Router) {
		r.Post("/", startups.CreateHandler(d.Startups))
		r.Get("/", startups.ListHandler(d.Startups))
		r.Get("/{id}", startups.GetHandler(d.Startups))
	})

	r.Post("/analytics", analytics.AnalyzeHandler())

	r.Route("/predictions", func(r chi.Router) {
		r.Post("/recommend", predictions.RecommendHandler())
		r.Get("/growth", predictions.GrowthHandler())
		r.Get("/ideas", predictions.IdeasHandler())
	})

	origins := d.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})

	return c.Handler(r), nil
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, r, http.StatusOK, map[string]string{"message": welcomeMessage})
}

func healthHandler(h HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.Ping(ctx); err != nil {
			httpx.WriteError(w, r, apperrors.ErrUnavailable(err))
			return
		}
		httpx.JSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	}
}
