package http

import nethttp "net/http"

// NewRouter registers the status routes and, when present, the metrics exporter.
func NewRouter(handler *Handler, metricsHandler nethttp.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	if metricsHandler != nil {
		mux.Handle("/metrics", metricsHandler)
	}
	return mux
}
