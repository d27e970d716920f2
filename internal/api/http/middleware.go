package http

import (
	"net/http"
	"time"

	"ecorent-backend/internal/logger"

	"github.com/google/uuid"
)

// RequestIDMiddleware tags every request with a request id and logs it with
// method, path, and duration.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		next.ServeHTTP(w, r)

		logger.WithRequest(requestID, r.URL.Path).Debug("request handled",
			"method", r.Method, "duration_ms", time.Since(start).Milliseconds())
	})
}
