package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"zonos-storefront/internal/cart"
	"zonos-storefront/internal/domain"
)

type cartActions interface {
	AddItem(ctx context.Context, ids cart.IDStore, sku string, quantity int) string
	RemoveItem(ctx context.Context, ids cart.IDStore, itemID string) string
	UpdateItemQuantity(ctx context.Context, ids cart.IDStore, sku string, quantity int) string
	RedirectToCheckout(ctx context.Context, ids cart.IDStore) (string, error)
	CreateCartAndSetCookie(ctx context.Context, ids cart.IDStore) (string, error)
}

type cartReader interface {
	GetCart(ctx context.Context, ids cart.IDStore) (*domain.Cart, error)
}

type catalogAPI interface {
	Products(ctx context.Context, query, sortKey string, reverse bool) ([]domain.Product, error)
	Product(ctx context.Context, handle string) (*domain.Product, error)
	Recommendations(ctx context.Context, handle string) ([]domain.Product, error)
	Collections(ctx context.Context) ([]domain.Collection, error)
	Collection(ctx context.Context, handle string) (*domain.Collection, error)
	CollectionProducts(ctx context.Context, handle, sortKey string, reverse bool) ([]domain.Product, error)
	Menu(ctx context.Context, handle string) ([]domain.MenuItem, error)
	Pages(ctx context.Context) ([]domain.Page, error)
	Page(ctx context.Context, handle string) (*domain.Page, error)
}

// Deps are the services the HTTP layer exposes.
type Deps struct {
	Cart    cartReader
	Actions cartActions
	Catalog catalogAPI
	Cache   *TagCache

	CookieTTL          time.Duration
	AllowedOrigins     []string
	RevalidationSecret string
}

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
	logger     logrus.FieldLogger
	db         *pgxpool.Pool
}

// New builds a Server with all storefront routes.
func New(addr string, logger logrus.FieldLogger, db *pgxpool.Pool, deps Deps) (*Server, error) {
	router := buildRouter(logger, db, deps)

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpServer: httpSrv,
		logger:     logger,
		db:         db,
	}, nil
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func readyHandler(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Without a catalog mirror the static fixtures serve reads, so the
		// server is ready as soon as it is up.
		if db == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ready"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "db not reachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
