package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/gitwrapped/gitwrapped/internal/app"
)

// Service can compute yearly wrapped insights for a user.
type Service interface {
	Wrapped(ctx context.Context, username string, year int) (app.Wrapped, error)
}

// NewWrappedHandler creates handlerfunc returning the wrapped insights
// response.
func NewWrappedHandler(
	getUsername func(*http.Request) string,
	service Service,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := getUsername(r)
		year := getYearParam(r, time.Now().Year())

		wrapped, err := service.Wrapped(r.Context(), username, year)
		if err != nil {
			writeError(w, err, l)
			return
		}

		response := newWrappedResponse(wrapped)

		w.Header().Set("Content-type", "application/json; charset=utf-8")
		_ = jsoniter.ConfigFastest.NewEncoder(w).Encode(response)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, err error, l logrus.FieldLogger) {
	var status int
	switch {
	case app.IsInvalidRequestError(err):
		status = http.StatusBadRequest
	case app.IsNotFoundError(err):
		status = http.StatusNotFound
	case app.IsRateLimitedError(err):
		status = http.StatusTooManyRequests
	default:
		l.Errorf("handling wrapped request: %v", err)
		status = http.StatusBadGateway
	}

	w.Header().Set("Content-type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = jsoniter.ConfigFastest.NewEncoder(w).Encode(errorResponse{Error: err.Error()})
}

func getYearParam(r *http.Request, defaultValue int) int {
	value := defaultValue
	if vs := r.URL.Query().Get("year"); vs != "" {
		if v, err := strconv.Atoi(vs); err == nil {
			value = v
		}
	}

	return value
}
