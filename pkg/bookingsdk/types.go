package bookingsdk

import "time"

// MintTokenRequest asks the service to mint a short-lived QR token for a
// user. The token string is what the kiosk encodes into the QR image.
type MintTokenRequest struct {
	// UserID identifies the member the token is for
	UserID string `json:"user_id" validate:"required"`
}

// TokenResponse is returned from POST /v1/auth/token.
type TokenResponse struct {
	// Token is the opaque single-use token
	Token string `json:"token"`

	// ExpiresIn is the token lifetime in seconds
	ExpiresIn int `json:"expires_in"`
}

// TokenRequest carries a previously minted QR token. Borrow, return and
// every manager operation authenticate with one of these.
type TokenRequest struct {
	QRToken string `json:"qr_token" validate:"required"`
}

// Book is the wire form of a catalog entry joined with its counters.
type Book struct {
	ISBN           string `json:"isbn"`
	Title          string `json:"title"`
	Author         string `json:"author,omitempty"`
	Publisher      string `json:"publisher,omitempty"`
	PublishedYear  int    `json:"published_year,omitempty"`
	Language       string `json:"language,omitempty"`
	Pages          int    `json:"pages,omitempty"`
	CoverURL       string `json:"cover_url,omitempty"`
	TotalCount     int    `json:"total_count"`
	AvailableCount int    `json:"available_count"`
}

// LoanResponse is returned by both borrow and return with the post-mutation
// counters, so the kiosk can show availability immediately.
type LoanResponse struct {
	Success bool `json:"success"`
	Book    Book `json:"book"`
}

// LoanRecord is one row of a user's loan history.
type LoanRecord struct {
	ISBN       string     `json:"isbn"`
	Title      string     `json:"title,omitempty"`
	BorrowedAt time.Time  `json:"borrowed_at"`
	ReturnedAt *time.Time `json:"returned_at,omitempty"`
}

// Borrower is one open loan on a title, shown on the book detail view.
type Borrower struct {
	UserID     string    `json:"user_id"`
	UserName   string    `json:"user_name"`
	BorrowedAt time.Time `json:"borrowed_at"`
}

// BookDetailResponse is returned from GET /v1/books/{isbn}.
type BookDetailResponse struct {
	Book
	Borrowers []Borrower `json:"borrowers"`
}

// AddBookRequest registers a new title. The ISBN comes from the URL path.
type AddBookRequest struct {
	Title         string `json:"title" validate:"required"`
	Author        string `json:"author,omitempty"`
	Publisher     string `json:"publisher,omitempty"`
	PublishedYear int    `json:"published_year,omitempty" validate:"omitempty,gte=0"`
	Language      string `json:"language,omitempty"`
	Pages         int    `json:"pages,omitempty" validate:"omitempty,gte=0"`
	CoverURL      string `json:"cover_url,omitempty" validate:"omitempty,url"`
	TotalCount    *int   `json:"total_count,omitempty" validate:"omitempty,gte=0"`
}

// UpdateBookRequest edits a title. Only non-nil fields are applied; a
// non-nil TotalCount resizes the inventory.
type UpdateBookRequest struct {
	QRToken       string  `json:"qr_token" validate:"required"`
	Title         *string `json:"title,omitempty"`
	Author        *string `json:"author,omitempty"`
	Publisher     *string `json:"publisher,omitempty"`
	PublishedYear *int    `json:"published_year,omitempty" validate:"omitempty,gte=0"`
	Language      *string `json:"language,omitempty"`
	Pages         *int    `json:"pages,omitempty" validate:"omitempty,gte=0"`
	CoverURL      *string `json:"cover_url,omitempty"`
	TotalCount    *int    `json:"total_count,omitempty" validate:"omitempty,gte=0"`
}

// CreateUserRequest registers a new member or manager account.
type CreateUserRequest struct {
	QRToken string `json:"qr_token" validate:"required"`
	ID      string `json:"id" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Role    string `json:"role" validate:"required,oneof=MEMBER MANAGER"`
}

// User is the wire form of an account.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// HealthChecks reports the state of critical dependencies in readyz.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned from the livez and readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
