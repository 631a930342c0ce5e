package handlers

import (
	"fmt"
	"net/http"
)

// Plain-text liveness metric. A full metrics pipeline is out of scope for
// the console backend.

type MetricsHandler struct{}

func NewMetricsHandler() *MetricsHandler {
	return &MetricsHandler{}
}

func (h *MetricsHandler) Export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintf(w, "# HELP plexconsole_up Is the server up\n")
	fmt.Fprintf(w, "# TYPE plexconsole_up gauge\n")
	fmt.Fprintf(w, "plexconsole_up 1\n")
}
