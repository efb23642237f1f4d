package monitor

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"academic-directory-api/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRegisterMetricsExposesRankingCollectors(t *testing.T) {
	router := gin.New()
	metrics := services.NewRankingMetrics()
	_, err := RegisterMetrics(router, metrics.Collectors()...)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), services.MetricRankingRunDuration)
	assert.Contains(t, w.Body.String(), services.MetricRankingProfessorsUpdated)
}

func TestRegisterLogsRouteDisabledWithoutToken(t *testing.T) {
	t.Setenv("MONITOR_TOKEN", "")
	router := gin.New()
	RegisterLogsRoute(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/logs?token=x", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRegisterLogsRouteChecksToken(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "directory-api.log")
	require.NoError(t, os.WriteFile(logPath, []byte("ranking run finished\n"), 0o644))
	t.Setenv("LOG_FILE", logPath)
	t.Setenv("MONITOR_TOKEN", "s3cret")

	router := gin.New()
	RegisterLogsRoute(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/logs?token=wrong", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/logs?token=s3cret", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ranking run finished\n", w.Body.String())
}
