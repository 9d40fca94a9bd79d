package rest

import (
	"net/http"

	"github.com/kdtech/site-backend/internal/domain"
)

// dashboardStats aggregates the per-domain counters into one response.
type dashboardStats struct {
	Portfolio *domain.PortfolioStats `json:"portfolio"`
	Products  *domain.ProductStats   `json:"products"`
	Orders    *domain.OrderStats     `json:"orders"`
}

func (rt *Router) serveStats(w http.ResponseWriter, r *http.Request, rest []string) {
	if len(rest) > 0 {
		notFoundRoute(w)
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	portfolio, err := rt.catalog.PortfolioStats(r.Context())
	if err != nil {
		handleError(w, r, rt.log, err)
		return
	}
	products, err := rt.catalog.ProductStats(r.Context())
	if err != nil {
		handleError(w, r, rt.log, err)
		return
	}
	orders, err := rt.orders.OrderStats(r.Context())
	if err != nil {
		handleError(w, r, rt.log, err)
		return
	}

	writeSuccess(w, http.StatusOK, "stats retrieved", dashboardStats{
		Portfolio: portfolio,
		Products:  products,
		Orders:    orders,
	})
}
