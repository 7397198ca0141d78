package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/goliatone/go-zettel/internal/logging"
	"github.com/goliatone/go-zettel/pkg/interfaces"
)

const requestIDHeader = "X-Request-ID"

// withRequestID assigns each request an id, echoes it in the response header,
// and logs the request with the id attached. Incoming ids from trusted
// proxies are reused.
func withRequestID(logger interfaces.Logger, next http.Handler) http.Handler {
	if logger == nil {
		logger = logging.NoOp()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		ctx := logging.ContextWithFields(r.Context(), map[string]any{
			"request_id": requestID,
		})

		logging.WithFields(logger, map[string]any{"request_id": requestID}).
			Debug("request", "method", r.Method, "path", r.URL.Path)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
