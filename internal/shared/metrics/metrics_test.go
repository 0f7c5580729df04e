package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountersIncrement(t *testing.T) {
	before := testutil.ToFloat64(analysisStartedTotal)
	IncAnalysisStarted()
	assert.Equal(t, before+1, testutil.ToFloat64(analysisStartedTotal))

	failedBefore := testutil.ToFloat64(analysisFailedTotal.WithLabelValues("remote"))
	IncAnalysisFailed("remote")
	assert.Equal(t, failedBefore+1, testutil.ToFloat64(analysisFailedTotal.WithLabelValues("remote")))

	unknownBefore := testutil.ToFloat64(analysisFailedTotal.WithLabelValues("unknown"))
	IncAnalysisFailed("")
	assert.Equal(t, unknownBefore+1, testutil.ToFloat64(analysisFailedTotal.WithLabelValues("unknown")))
}

func TestHandlerRendersPrometheusText(t *testing.T) {
	gin.SetMode(gin.TestMode)
	IncExport("ok")
	ObserveAnalysisDurationMs(-5)

	r := gin.New()
	r.GET("/metrics", Handler())
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, resp.Code)
	body := resp.Body.String()
	assert.True(t, strings.Contains(body, `report_exports_total{status="ok"}`), body)
	assert.True(t, strings.Contains(body, "analysis_duration_ms_bucket"), body)
}
