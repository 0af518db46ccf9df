package evolution

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var metricsHandler = promhttp.Handler()

// Metrics exposes the Prometheus registry for scraping.
//
//encore:api public raw method=GET path=/metrics
func (s *Service) Metrics(w http.ResponseWriter, req *http.Request) {
	metricsHandler.ServeHTTP(w, req)
}
