package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// NewMux creates router for app's http server.
func NewMux(service Service, timeout time.Duration, l logrus.FieldLogger) *http.ServeMux {
	timeoutMiddleware := NewTimeoutMiddleware(timeout)

	wrappedPath := "/wrapped/"
	wrappedHandler := NewWrappedHandler(
		func(r *http.Request) string {
			return strings.TrimPrefix(r.URL.Path, wrappedPath)
		},
		service,
		l,
	)
	wrappedHandler = timeoutMiddleware(wrappedHandler)

	m := http.NewServeMux()
	m.HandleFunc(wrappedPath, wrappedHandler)

	return m
}
