package monitor

import (
	"crypto/subtle"
	"net/http"
	"os"

	"academic-directory-api/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterMetrics exposes GET /metrics from a dedicated registry holding the
// Go/process collectors plus the given ones.
func RegisterMetrics(router *gin.Engine, extra ...prometheus.Collector) (*prometheus.Registry, error) {
	reg := prometheus.NewRegistry()
	base := []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	}
	for _, c := range append(base, extra...) {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))
	return reg, nil
}

// RegisterLogsRoute serves the service log file at GET /logs?token=... when
// MONITOR_TOKEN is set.
func RegisterLogsRoute(router *gin.Engine) {
	token := os.Getenv("MONITOR_TOKEN")
	if token == "" {
		return
	}
	router.GET("/logs", func(c *gin.Context) {
		if subtle.ConstantTimeCompare([]byte(c.Query("token")), []byte(token)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
			return
		}
		logData, err := os.ReadFile(config.LogFilePath())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to read log"})
			return
		}
		c.Data(http.StatusOK, "text/plain; charset=utf-8", logData)
	})
}
