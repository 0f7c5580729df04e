package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-dashboard/internal/requestlog"
	"resume-dashboard/internal/sessions"
	"resume-dashboard/internal/shared/config"
)

func devConfig(t *testing.T, apiURL string) config.Config {
	return config.Config{
		Env:                "dev",
		AnalysisAPIURL:     apiURL,
		AnalysisAPITimeout: 5 * time.Second,
		SessionTTL:         time.Minute,
		ObjectStoreType:    "local",
		LocalStoreDir:      t.TempDir(),
		RateLimitPerMinute: 10,
	}
}

func TestBuildDevFallsBackToMemory(t *testing.T) {
	app, err := Build(context.Background(), devConfig(t, "http://127.0.0.1:5000"))
	require.NoError(t, err)
	defer app.Close()

	assert.Nil(t, app.DB)
	assert.Nil(t, app.Redis)
	assert.IsType(t, &sessions.MemoryStore{}, app.Sessions)
	assert.IsType(t, &requestlog.MemoryRepo{}, app.Requests)
	assert.Equal(t, []string{"analysis_api"}, app.Health.Names())
	assert.True(t, app.Handler.ExposeRequests)
	require.NotNil(t, app.Router)
}

func TestBuildRequiresDatabaseOutsideDev(t *testing.T) {
	cfg := devConfig(t, "http://127.0.0.1:5000")
	cfg.Env = "production"

	_, err := Build(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestBuildRequiresAnalysisURL(t *testing.T) {
	_, err := Build(context.Background(), devConfig(t, ""))
	require.Error(t, err)
}

func TestBuildUsesRedisWhenReachable(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := devConfig(t, "http://127.0.0.1:5000")
	cfg.RedisAddr = mr.Addr()

	app, err := Build(context.Background(), cfg)
	require.NoError(t, err)
	defer app.Close()

	assert.IsType(t, &sessions.RedisStore{}, app.Sessions)
	assert.Equal(t, []string{"analysis_api", "redis"}, app.Health.Names())
}

func TestReadinessReflectsAnalysisAPI(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	app, err := Build(context.Background(), devConfig(t, upstream.URL))
	require.NoError(t, err)
	defer app.Close()

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	upstream.Close()
	rec = httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestBuildRejectsS3WithoutBucket(t *testing.T) {
	cfg := devConfig(t, "http://127.0.0.1:5000")
	cfg.ObjectStoreType = "s3"

	_, err := Build(context.Background(), cfg)
	require.Error(t, err)
}
