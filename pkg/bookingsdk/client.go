// Package bookingsdk is a small client for the booking service. The kiosk
// frontend and the end-to-end tests both drive the API through it.
package bookingsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to a booking service instance.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// MintToken mints a single-use QR token for userID.
func (c *Client) MintToken(ctx context.Context, userID string) (TokenResponse, error) {
	var out TokenResponse
	err := c.do(ctx, http.MethodPost, "/v1/auth/token", MintTokenRequest{UserID: userID}, &out)
	return out, err
}

// Borrow lends one copy of isbn to the token's holder.
func (c *Client) Borrow(ctx context.Context, isbn, qrToken string) (LoanResponse, error) {
	var out LoanResponse
	err := c.do(ctx, http.MethodPost, "/v1/borrow/"+url.PathEscape(isbn), TokenRequest{QRToken: qrToken}, &out)
	return out, err
}

// Return gives back one copy of isbn held by the token's holder.
func (c *Client) Return(ctx context.Context, isbn, qrToken string) (LoanResponse, error) {
	var out LoanResponse
	err := c.do(ctx, http.MethodPost, "/v1/return/"+url.PathEscape(isbn), TokenRequest{QRToken: qrToken}, &out)
	return out, err
}

// UserLoans fetches a user's loan history, newest first.
func (c *Client) UserLoans(ctx context.Context, userID string) ([]LoanRecord, error) {
	var out []LoanRecord
	err := c.do(ctx, http.MethodGet, "/v1/users/"+url.PathEscape(userID)+"/borrows", nil, &out)
	return out, err
}

// ListBooks fetches the whole catalogue with counters.
func (c *Client) ListBooks(ctx context.Context) ([]Book, error) {
	var out []Book
	err := c.do(ctx, http.MethodGet, "/v1/books", nil, &out)
	return out, err
}

// GetBook fetches one title with counters and current borrowers.
func (c *Client) GetBook(ctx context.Context, isbn string) (BookDetailResponse, error) {
	var out BookDetailResponse
	err := c.do(ctx, http.MethodGet, "/v1/books/"+url.PathEscape(isbn), nil, &out)
	return out, err
}

// AddBook registers a new title under isbn.
func (c *Client) AddBook(ctx context.Context, isbn string, req AddBookRequest) (Book, error) {
	var out Book
	err := c.do(ctx, http.MethodPut, "/v1/books/"+url.PathEscape(isbn), req, &out)
	return out, err
}

// UpdateBook edits a title. Manager token required.
func (c *Client) UpdateBook(ctx context.Context, isbn string, req UpdateBookRequest) (Book, error) {
	var out Book
	err := c.do(ctx, http.MethodPatch, "/v1/manage/books/"+url.PathEscape(isbn), req, &out)
	return out, err
}

// DeleteBook removes a title. Manager token required.
func (c *Client) DeleteBook(ctx context.Context, isbn, qrToken string) error {
	return c.do(ctx, http.MethodDelete, "/v1/manage/books/"+url.PathEscape(isbn), TokenRequest{QRToken: qrToken}, nil)
}

// CreateUser registers a new account. Manager token required.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (User, error) {
	var out User
	err := c.do(ctx, http.MethodPost, "/v1/manage/users", req, &out)
	return out, err
}

// DeleteUser removes an account. Manager token required.
func (c *Client) DeleteUser(ctx context.Context, userID, qrToken string) error {
	return c.do(ctx, http.MethodDelete, "/v1/manage/users/"+url.PathEscape(userID), TokenRequest{QRToken: qrToken}, nil)
}

// Livez hits the liveness probe.
func (c *Client) Livez(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.do(ctx, http.MethodGet, "/livez", nil, &out)
	return out, err
}

// Readyz hits the readiness probe.
func (c *Client) Readyz(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.do(ctx, http.MethodGet, "/readyz", nil, &out)
	return out, err
}

// do performs one JSON round trip. Non-2xx responses come back as *APIError.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body *bytes.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
