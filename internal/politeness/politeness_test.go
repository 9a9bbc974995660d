package politeness

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDelay_Profiles(t *testing.T) {
	cautious := NewDelay(ProfileCautious)
	normal := NewDelay(ProfileNormal)
	aggressive := NewDelay(ProfileAggressive)

	assert.Greater(t, cautious.Min, normal.Min)
	assert.Greater(t, normal.Min, aggressive.Min)
	for _, d := range []*Delay{cautious, normal, aggressive} {
		assert.Greater(t, d.Max, d.Min)
	}
}

func TestNewDelay_UnknownProfileFallsBackToNormal(t *testing.T) {
	assert.Equal(t, NewDelay(ProfileNormal), NewDelay("turbo"))
}

func TestDelay_WaitHonorsCancellation(t *testing.T) {
	d := &Delay{Min: time.Minute, Max: time.Minute}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDelay_WaitCompletes(t *testing.T) {
	d := &Delay{Min: time.Millisecond, Max: 2 * time.Millisecond}
	assert.NoError(t, d.Wait(context.Background()))
}

func TestRobotsChecker(t *testing.T) {
	var fetches atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/robots.txt", r.URL.Path)
		fetches.Add(1)
		w.Write([]byte("User-agent: *\nDisallow: /private/\n"))
	}))
	defer srv.Close()

	checker := NewRobotsChecker(srv.Client(), true)

	allowed, err := checker.IsAllowed("test-agent", srv.URL+"/app/70/")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = checker.IsAllowed("test-agent", srv.URL+"/private/secret")
	require.NoError(t, err)
	assert.False(t, allowed)

	// Second origin check came from the cache.
	assert.Equal(t, int32(1), fetches.Load())
}

func TestRobotsChecker_Disabled(t *testing.T) {
	checker := NewRobotsChecker(http.DefaultClient, false)

	allowed, err := checker.IsAllowed("test-agent", "https://store.steampowered.com/app/70/")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRobotsChecker_FetchFailureAllows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	srv.Close()

	checker := NewRobotsChecker(srv.Client(), true)

	allowed, err := checker.IsAllowed("test-agent", srv.URL+"/app/70/")
	require.NoError(t, err)
	assert.True(t, allowed)
}
