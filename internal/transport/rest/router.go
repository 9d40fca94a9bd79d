// Package rest exposes the public JSON API. Routing is done on path
// segments: the first segment names the resource, an optional second one
// is a numeric id or a slug. Every response uses the same envelope.
package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/kdtech/site-backend/internal/domain"
	"github.com/kdtech/site-backend/internal/service/catalog"
	"github.com/kdtech/site-backend/internal/service/intake"
	"github.com/kdtech/site-backend/internal/service/order"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type catalogService interface {
	ListProjects(ctx context.Context, filter catalog.ListFilter) ([]domain.ProjectWithCategory, int64, error)
	GetProjectByID(ctx context.Context, id int64) (*catalog.ProjectDetail, error)
	GetProjectBySlug(ctx context.Context, slug string) (*catalog.ProjectDetail, error)
	CreateProject(ctx context.Context, input catalog.CreateProjectInput) (*domain.Project, error)
	PortfolioStats(ctx context.Context) (*domain.PortfolioStats, error)

	ListProducts(ctx context.Context, filter catalog.ListFilter) ([]domain.ProductWithCategory, int64, error)
	GetProductByID(ctx context.Context, id int64) (*catalog.ProductDetail, error)
	GetProductBySlug(ctx context.Context, slug string) (*catalog.ProductDetail, error)
	ProductStats(ctx context.Context) (*domain.ProductStats, error)

	ListServices(ctx context.Context, filter catalog.ListFilter) ([]domain.ServiceWithCategory, int64, error)
	GetServiceByID(ctx context.Context, id int64) (*catalog.ServiceDetail, error)
	GetServiceBySlug(ctx context.Context, slug string) (*catalog.ServiceDetail, error)

	ListCategories(ctx context.Context, categoryType string) ([]domain.Category, error)

	NormalizePage(page, limit int) catalog.Page
}

type orderService interface {
	CreateOrder(ctx context.Context, input order.CreateOrderInput) (*domain.OrderWithItems, error)
	GetOrder(ctx context.Context, id int64) (*domain.OrderWithItems, error)
	OrderStats(ctx context.Context) (*domain.OrderStats, error)
}

type intakeService interface {
	CreateQuote(ctx context.Context, input intake.CreateQuoteInput) (*domain.Quote, error)
	CreateContact(ctx context.Context, input intake.CreateContactInput) (*domain.ContactMessage, error)
}

// ---------------------------------------------------------------------------
// Router
// ---------------------------------------------------------------------------

// Router dispatches API requests to the resource handlers.
type Router struct {
	catalog catalogService
	orders  orderService
	intake  intakeService
	health  *HealthHandler
	log     *slog.Logger
}

// NewRouter creates the API router.
func NewRouter(
	catalogSvc catalogService,
	orderSvc orderService,
	intakeSvc intakeService,
	health *HealthHandler,
	logger *slog.Logger,
) *Router {
	return &Router{
		catalog: catalogSvc,
		orders:  orderSvc,
		intake:  intakeSvc,
		health:  health,
		log:     logger.With("component", "rest"),
	}
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Preflight is normally answered by the CORS middleware; this is the
	// fallback when the router is mounted bare.
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	resource, rest := splitPath(r.URL.Path)

	switch resource {
	case "portfolio":
		rt.servePortfolio(w, r, rest)
	case "products":
		rt.serveProducts(w, r, rest)
	case "services":
		rt.serveServices(w, r, rest)
	case "orders":
		rt.serveOrders(w, r, rest)
	case "quotes":
		rt.serveQuotes(w, r, rest)
	case "contact":
		rt.serveContact(w, r, rest)
	case "categories":
		rt.serveCategories(w, r, rest)
	case "stats":
		rt.serveStats(w, r, rest)
	case "health":
		rt.serveProbe(w, r, rest, rt.health.Health)
	case "ready":
		rt.serveProbe(w, r, rest, rt.health.Ready)
	case "live":
		rt.serveProbe(w, r, rest, rt.health.Live)
	default:
		notFoundRoute(w)
	}
}

func (rt *Router) serveProbe(w http.ResponseWriter, r *http.Request, rest []string, probe http.HandlerFunc) {
	if len(rest) > 0 {
		notFoundRoute(w)
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	probe(w, r)
}

// splitPath breaks a request path into the resource name and the
// remaining segments.
func splitPath(path string) (string, []string) {
	segments := make([]string, 0, 3)
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	if len(segments) == 0 {
		return "", nil
	}
	return segments[0], segments[1:]
}

// parseRef classifies an id-or-slug path segment. A purely numeric
// segment is an id, anything else a slug.
func parseRef(segment string) (int64, string) {
	if id, err := strconv.ParseInt(segment, 10, 64); err == nil {
		return id, ""
	}
	return 0, segment
}
