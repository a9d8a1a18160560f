package controller

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within %s", timeout)
}

func TestStatusBannerExpires(t *testing.T) {
	banner := NewStatusBanner(50 * time.Millisecond)
	banner.Set("User created successfully")

	require.Equal(t, "User created successfully", banner.Message())
	waitFor(t, time.Second, func() bool { return banner.Message() == "" })
}

func TestStatusBannerSupersededTimerDoesNotClearNewMessage(t *testing.T) {
	banner := NewStatusBanner(50 * time.Millisecond)
	banner.Set("first")

	time.Sleep(30 * time.Millisecond)
	banner.Set("second")

	// The first timer's deadline passes; "second" must survive it.
	time.Sleep(35 * time.Millisecond)
	assert.Equal(t, "second", banner.Message())

	waitFor(t, time.Second, func() bool { return banner.Message() == "" })
}

func TestStatusBannerClear(t *testing.T) {
	banner := NewStatusBanner(time.Minute)
	banner.Set("pending")
	banner.Clear()

	assert.Empty(t, banner.Message())
}

func TestStatusBannerStopKeepsMessage(t *testing.T) {
	banner := NewStatusBanner(30 * time.Millisecond)
	banner.Set("kept")
	banner.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, "kept", banner.Message())
}

func TestStatusBannerDefaultTTL(t *testing.T) {
	banner := NewStatusBanner(0)
	assert.Equal(t, DefaultStatusTTL, banner.ttl)
}
