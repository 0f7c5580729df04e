package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-dashboard/internal/analysis"
	"resume-dashboard/internal/extract"
)

func newTestRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, ttl), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedisStore(t, 30*time.Minute)
	result := analysis.Result{
		MatchScore:     81,
		MatchedSkills:  []string{"Go"},
		Recommendation: analysis.StrongFit,
	}
	state := State{
		FileName:   "cv.pdf",
		JobTitle:   "Backend Engineer",
		Result:     &result,
		Inspection: &extract.Inspection{Words: 120, HasEmail: true},
		CreatedAt:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	require.NoError(t, store.Put(ctx, "s1", state))
	assert.True(t, mr.Exists(keyPrefix+"s1"))
	assert.Equal(t, 30*time.Minute, mr.TTL(keyPrefix+"s1"))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, got.Result)
	assert.Equal(t, analysis.Score(81), got.Result.MatchScore)
	assert.Equal(t, []string{"Go"}, got.Result.MatchedSkills)
	assert.Equal(t, 120, got.Inspection.Words)
	assert.Equal(t, "Backend Engineer", got.JobTitle)
	assert.True(t, state.CreatedAt.Equal(got.CreatedAt))
}

func TestRedisStoreExpiryAndDelete(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedisStore(t, time.Minute)

	require.NoError(t, store.Put(ctx, "s1", State{FileName: "a.pdf"}))
	mr.FastForward(2 * time.Minute)
	_, err := store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Put(ctx, "s2", State{FileName: "b.pdf"}))
	require.NoError(t, store.Delete(ctx, "s2"))
	_, err = store.Get(ctx, "s2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStorePing(t *testing.T) {
	store, mr := newTestRedisStore(t, 0)
	require.NoError(t, store.Ping(context.Background()))

	mr.Close()
	assert.Error(t, store.Ping(context.Background()))
}
