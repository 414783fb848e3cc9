package booking_test

import (
	"net/http"
	"testing"

	"github.com/khlug/booking/pkg/bookingsdk"
	"github.com/stretchr/testify/require"
)

func TestAddAndListBooks(t *testing.T) {
	client, st := setupServer(t)
	seedDirectory(t, st)
	ctx := t.Context()

	three := 3
	book, err := client.AddBook(ctx, "9791162241882", bookingsdk.AddBookRequest{
		Title:      "Python Algorithm Interview",
		Author:     "Sangil Park",
		TotalCount: &three,
	})
	require.NoError(t, err)
	require.Equal(t, 3, book.TotalCount)
	require.Equal(t, 3, book.AvailableCount)

	// Same ISBN again is a conflict.
	_, err = client.AddBook(ctx, "9791162241882", bookingsdk.AddBookRequest{Title: "Duplicate"})
	requireAPIError(t, err, http.StatusConflict, bookingsdk.ErrorKindConflict)

	// Missing title is rejected before anything is written.
	_, err = client.AddBook(ctx, "9790000000000", bookingsdk.AddBookRequest{})
	requireAPIError(t, err, http.StatusBadRequest, bookingsdk.ErrorKindBadRequest)

	books, err := client.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 3)
}

func TestManagerGate(t *testing.T) {
	client, st := setupServer(t)
	seedDirectory(t, st)
	ctx := t.Context()

	t.Run("member token is forbidden", func(t *testing.T) {
		token := mintToken(t, client, "alice")
		_, err := client.CreateUser(ctx, bookingsdk.CreateUserRequest{
			QRToken: token, ID: "carol", Name: "Carol", Role: "MEMBER",
		})
		requireAPIError(t, err, http.StatusForbidden, bookingsdk.ErrorKindForbidden)
	})

	t.Run("rejected token is still consumed", func(t *testing.T) {
		token := mintToken(t, client, "alice")
		_, err := client.CreateUser(ctx, bookingsdk.CreateUserRequest{
			QRToken: token, ID: "carol", Name: "Carol", Role: "MEMBER",
		})
		requireAPIError(t, err, http.StatusForbidden, bookingsdk.ErrorKindForbidden)

		// Even a plain borrow cannot reuse it.
		_, err = client.Borrow(ctx, "9788966262472", token)
		requireAPIError(t, err, http.StatusUnauthorized, bookingsdk.ErrorKindUnauthorized)
	})

	t.Run("garbage token is unauthorized", func(t *testing.T) {
		err := client.DeleteBook(ctx, "9788966262472", "nope")
		requireAPIError(t, err, http.StatusUnauthorized, bookingsdk.ErrorKindUnauthorized)
	})
}

func TestManageUsers(t *testing.T) {
	client, st := setupServer(t)
	seedDirectory(t, st)
	ctx := t.Context()

	token := mintToken(t, client, "admin")
	user, err := client.CreateUser(ctx, bookingsdk.CreateUserRequest{
		QRToken: token, ID: "carol", Name: "Carol", Email: "carol@khlug.org", Role: "MEMBER",
	})
	require.NoError(t, err)
	require.Equal(t, "carol", user.ID)
	require.Equal(t, "MEMBER", user.Role)

	t.Run("duplicate id", func(t *testing.T) {
		token := mintToken(t, client, "admin")
		_, err := client.CreateUser(ctx, bookingsdk.CreateUserRequest{
			QRToken: token, ID: "carol", Name: "Other Carol", Role: "MEMBER",
		})
		requireAPIError(t, err, http.StatusConflict, bookingsdk.ErrorKindConflict)
	})

	t.Run("invalid role", func(t *testing.T) {
		token := mintToken(t, client, "admin")
		_, err := client.CreateUser(ctx, bookingsdk.CreateUserRequest{
			QRToken: token, ID: "dave", Name: "Dave", Role: "SUPERUSER",
		})
		requireAPIError(t, err, http.StatusBadRequest, bookingsdk.ErrorKindBadRequest)
	})

	t.Run("self delete refused", func(t *testing.T) {
		token := mintToken(t, client, "admin")
		err := client.DeleteUser(ctx, "admin", token)
		requireAPIError(t, err, http.StatusConflict, bookingsdk.ErrorKindConflict)
	})

	t.Run("open loans block deletion", func(t *testing.T) {
		borrow := mintToken(t, client, "carol")
		_, err := client.Borrow(ctx, "9788966262472", borrow)
		require.NoError(t, err)

		token := mintToken(t, client, "admin")
		err = client.DeleteUser(ctx, "carol", token)
		requireAPIError(t, err, http.StatusConflict, bookingsdk.ErrorKindConflict)

		ret := mintToken(t, client, "carol")
		_, err = client.Return(ctx, "9788966262472", ret)
		require.NoError(t, err)

		token = mintToken(t, client, "admin")
		require.NoError(t, client.DeleteUser(ctx, "carol", token))
	})
}

func TestManageBooks(t *testing.T) {
	client, st := setupServer(t)
	seedDirectory(t, st)
	ctx := t.Context()

	// Two copies out of the Rust book.
	for _, member := range []string{"alice", "bob"} {
		token := mintToken(t, client, member)
		_, err := client.Borrow(ctx, "9788966262472", token)
		require.NoError(t, err)
	}

	t.Run("cannot shrink below open loans", func(t *testing.T) {
		one := 1
		token := mintToken(t, client, "admin")
		_, err := client.UpdateBook(ctx, "9788966262472", bookingsdk.UpdateBookRequest{
			QRToken: token, TotalCount: &one,
		})
		requireAPIError(t, err, http.StatusBadRequest, bookingsdk.ErrorKindBadRequest)
	})

	t.Run("grow recomputes available", func(t *testing.T) {
		five := 5
		newTitle := "The Rust Programming Language, 2nd Edition"
		token := mintToken(t, client, "admin")
		book, err := client.UpdateBook(ctx, "9788966262472", bookingsdk.UpdateBookRequest{
			QRToken: token, Title: &newTitle, TotalCount: &five,
		})
		require.NoError(t, err)
		require.Equal(t, newTitle, book.Title)
		require.Equal(t, 5, book.TotalCount)
		require.Equal(t, 3, book.AvailableCount)
	})

	t.Run("delete refused while on loan", func(t *testing.T) {
		token := mintToken(t, client, "admin")
		err := client.DeleteBook(ctx, "9788966262472", token)
		requireAPIError(t, err, http.StatusConflict, bookingsdk.ErrorKindConflict)
	})

	t.Run("delete after all copies return", func(t *testing.T) {
		for _, member := range []string{"alice", "bob"} {
			token := mintToken(t, client, member)
			_, err := client.Return(ctx, "9788966262472", token)
			require.NoError(t, err)
		}

		token := mintToken(t, client, "admin")
		require.NoError(t, client.DeleteBook(ctx, "9788966262472", token))

		_, err := client.GetBook(ctx, "9788966262472")
		requireAPIError(t, err, http.StatusNotFound, bookingsdk.ErrorKindNotFound)
	})
}
