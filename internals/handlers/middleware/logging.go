package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// unmatchedRoute labels requests no route matched.
const unmatchedRoute = "unmatched"

type RequestRecorder interface {
	RecordRequest(method, route string, status int, d time.Duration)
}

// RequestLogger attaches logger to the request context and logs one line per
// request. When rec is non-nil the request is also counted per route pattern.
func RequestLogger(logger zerolog.Logger, rec RequestRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqID := chimw.GetReqID(r.Context())
			l := logger.With().Str("request_id", reqID).Logger()

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(l.WithContext(r.Context())))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			elapsed := time.Since(start)

			route := unmatchedRoute
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			if rec != nil {
				rec.RecordRequest(r.Method, route, status, elapsed)
			}

			ev := l.Info()
			if status >= http.StatusInternalServerError {
				ev = l.Error()
			} else if status >= http.StatusBadRequest {
				ev = l.Warn()
			}
			ev.Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("route", route).
				Int("status", status).
				Dur("duration", elapsed).
				Msg("http_request")
		})
	}
}
