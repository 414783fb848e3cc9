package booking_test

import (
	"context"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/khlug/booking/internal/booking/domain"
	httpapi "github.com/khlug/booking/internal/booking/http"
	"github.com/khlug/booking/internal/booking/qr"
	"github.com/khlug/booking/internal/booking/service"
	"github.com/khlug/booking/internal/booking/store"
	"github.com/khlug/booking/internal/booking/store/drivers/sqlite"
	"github.com/khlug/booking/pkg/bookingsdk"
	"github.com/khlug/booking/pkg/httpx"
	"github.com/khlug/booking/pkg/slogx"
	"github.com/stretchr/testify/require"
)

/*
 * Common helpers for booking service end-to-end tests. The whole stack runs
 * in-process against an httptest server and an in-memory database; only the
 * SDK client touches it, so every request crosses the real HTTP surface.
 */

// TestMain raises the rate limits so rapid test traffic is not throttled.
// The dedicated rate limit test restores the strict profile locally.
func TestMain(m *testing.M) {
	httpx.StrictLimit.RequestsPerWindow = 1000
	httpx.StrictLimit.Burst = 1000
	httpx.LenientLimit.RequestsPerWindow = 10000
	httpx.LenientLimit.Burst = 10000

	os.Exit(m.Run())
}

// setupServer boots a full booking service and returns an SDK client bound
// to it plus the backing store for direct seeding.
func setupServer(t *testing.T) (*bookingsdk.Client, store.Store) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	logger := slogx.New(slogx.Config{
		Service: "booking-service",
		Version: "test",
		Env:     "test",
		Level:   "error",
		Format:  "text",
	})

	tokens := qr.NewStore(time.Minute)
	authService := &service.AuthService{Tokens: tokens, Store: st}

	router := httpapi.NewRouter("test", st, logger)
	router.AuthService = authService
	router.LoanService = &service.LoanService{Store: st}
	router.BookService = &service.BookService{Store: st}
	router.UserService = &service.UserService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return bookingsdk.NewClient(srv.URL), st
}

// seedDirectory inserts the standard test accounts and titles.
func seedDirectory(t *testing.T, st store.Store) {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()

	users := []domain.User{
		{ID: "admin", Name: "Administrator", Email: "admin@khlug.org", Role: domain.RoleManager, CreatedAt: now, UpdatedAt: now},
		{ID: "alice", Name: "Alice", Email: "alice@khlug.org", Role: domain.RoleMember, CreatedAt: now, UpdatedAt: now},
		{ID: "bob", Name: "Bob", Role: domain.RoleMember, CreatedAt: now, UpdatedAt: now},
	}
	for _, u := range users {
		require.NoError(t, st.Users().CreateUser(ctx, u))
	}

	books := []struct {
		book  domain.Book
		total int
	}{
		{domain.Book{ISBN: "9788966262472", Title: "The Rust Programming Language", Author: "Steve Klabnik"}, 2},
		{domain.Book{ISBN: "9788968482519", Title: "Clean Code", Author: "Robert C. Martin"}, 1},
	}
	for _, b := range books {
		require.NoError(t, st.Books().CreateBook(ctx, b.book, b.total))
	}
}

// mintToken mints a fresh QR token for userID through the API.
func mintToken(t *testing.T, client *bookingsdk.Client, userID string) string {
	t.Helper()

	resp, err := client.MintToken(t.Context(), userID)
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// requireAPIError asserts err is an APIError with the given status and kind.
func requireAPIError(t *testing.T, err error, status int, kind string) {
	t.Helper()

	require.Error(t, err)
	apiErr, ok := err.(*bookingsdk.APIError)
	require.True(t, ok, "expected *bookingsdk.APIError, got %T: %v", err, err)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, kind, apiErr.Kind)
}
