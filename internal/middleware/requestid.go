package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/HammerMeetNail/syncin/internal/logging"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with an id. A well-formed UUID supplied by
// the client is reused; anything else is replaced.
type RequestID struct {
	logger *logging.Logger
}

func NewRequestID(logger *logging.Logger) *RequestID {
	if logger == nil {
		logger = logging.Default
	}
	return &RequestID{logger: logger}
}

func (m *RequestID) Apply(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, id)

		ctx := logging.NewContext(r.Context(), m.logger)
		ctx = logging.WithRequestID(ctx, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
