package booking_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/khlug/booking/pkg/bookingsdk"
	"github.com/khlug/booking/pkg/httpx"
	"github.com/stretchr/testify/require"
)

// TestMintRateLimit verifies the strict per-IP limit on the token mint
// endpoint, the only unauthenticated endpoint that creates server-side
// state. The global limits are relaxed in TestMain, so this test pins the
// strict profile back down for a server of its own.
func TestMintRateLimit(t *testing.T) {
	saved := httpx.StrictLimit
	httpx.StrictLimit = httpx.RateLimitConfig{
		RequestsPerWindow: 5,
		Window:            time.Minute,
		Burst:             5,
	}
	t.Cleanup(func() { httpx.StrictLimit = saved })

	client, st := setupServer(t)
	seedDirectory(t, st)
	ctx := t.Context()

	for i := 0; i < 5; i++ {
		_, err := client.MintToken(ctx, "alice")
		require.NoError(t, err, "request %d should not be rate limited yet", i+1)
	}

	_, err := client.MintToken(ctx, "alice")
	require.Error(t, err)
	apiErr, ok := err.(*bookingsdk.APIError)
	require.True(t, ok, "expected *bookingsdk.APIError, got %T", err)
	require.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
}
