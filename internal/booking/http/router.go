package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/khlug/booking/internal/booking/service"
	"github.com/khlug/booking/internal/booking/store"
	"github.com/khlug/booking/internal/booking/validation"
	"github.com/khlug/booking/pkg/httpx"
	"github.com/khlug/booking/pkg/slogx"

	_ "github.com/khlug/booking/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	validator    *validation.Validator

	store       store.Store
	AuthService *service.AuthService
	LoanService *service.LoanService
	BookService *service.BookService
	UserService *service.UserService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		validator:    validation.New(),
		store:        st,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerLending()
	r.registerBooks()
	r.registerManagement()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			KHLUG Booking Service API
//	@version		0.1.0
//	@description	Self-service library lending for the club room. Members scan a short-lived
//	@description	single-use QR token at the kiosk to borrow and return books; managers use the
//	@description	same tokens to administer the catalogue and the member directory.
//
//	@contact.name	KHLUG
//	@contact.url	https://github.com/khlug/booking
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// POST /auth/token - strict rate limit by IP (the only way to obtain a
	// credential, so minting is the endpoint worth brute-forcing)
	mintHandler := &TokenMintHandler{AuthService: r.AuthService, Validator: r.validator}
	r.Mux.Handle("POST /v1/auth/token",
		httpx.Chain(mintHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerLending() {
	borrowHandler := &BorrowHandler{
		AuthService: r.AuthService,
		LoanService: r.LoanService,
		Validator:   r.validator,
	}
	returnHandler := &ReturnHandler{
		AuthService: r.AuthService,
		LoanService: r.LoanService,
		Validator:   r.validator,
	}
	borrowsHandler := &UserBorrowsHandler{
		LoanService: r.LoanService,
		BookService: r.BookService,
		UserService: r.UserService,
	}

	// Kiosk traffic - lenient rate limits (tokens gate the mutations anyway)
	r.Mux.Handle("POST /v1/borrow/{isbn}",
		httpx.Chain(borrowHandler,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /v1/return/{isbn}",
		httpx.Chain(returnHandler,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/users/{user_id}/borrows",
		httpx.Chain(borrowsHandler,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerBooks() {
	h := &BooksHandler{BookService: r.BookService, Validator: r.validator}

	r.Mux.Handle("GET /v1/books",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/books/{isbn}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// PUT /books/{isbn} - registration is open to any club member at the
	// shelf, but strictly rate limited
	r.Mux.Handle("PUT /v1/books/{isbn}",
		httpx.Chain(http.HandlerFunc(h.HandleAdd),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerManagement() {
	booksHandler := &ManageBooksHandler{
		AuthService: r.AuthService,
		BookService: r.BookService,
		Validator:   r.validator,
	}
	usersHandler := &ManageUsersHandler{
		AuthService: r.AuthService,
		UserService: r.UserService,
		Validator:   r.validator,
	}

	// Manager operations carry their own token gate; strict rate limits on
	// top keep token guessing impractical
	r.Mux.Handle("PATCH /v1/manage/books/{isbn}",
		httpx.Chain(http.HandlerFunc(booksHandler.HandleUpdate),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/manage/books/{isbn}",
		httpx.Chain(http.HandlerFunc(booksHandler.HandleDelete),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/manage/users",
		httpx.Chain(http.HandlerFunc(usersHandler.HandleCreate),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/manage/users/{user_id}",
		httpx.Chain(http.HandlerFunc(usersHandler.HandleDelete),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - public rate limits (monitoring may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
