package rest

import (
	"net/http"

	"github.com/kdtech/site-backend/internal/service/catalog"
)

func (rt *Router) serveProducts(w http.ResponseWriter, r *http.Request, rest []string) {
	switch len(rest) {
	case 0:
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		rt.listProducts(w, r)
	case 1:
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		rt.getProduct(w, r, rest[0])
	default:
		notFoundRoute(w)
	}
}

func (rt *Router) listProducts(w http.ResponseWriter, r *http.Request) {
	filter := listFilterFromQuery(r)

	products, total, err := rt.catalog.ListProducts(r.Context(), filter)
	if err != nil {
		handleError(w, r, rt.log, err)
		return
	}

	page := rt.catalog.NormalizePage(filter.Page, filter.Limit)
	writePaginated(w, "products retrieved", products,
		newPagination(page.Number, page.Size, total))
}

func (rt *Router) getProduct(w http.ResponseWriter, r *http.Request, ref string) {
	var (
		detail *catalog.ProductDetail
		err    error
	)
	if id, slug := parseRef(ref); slug == "" {
		detail, err = rt.catalog.GetProductByID(r.Context(), id)
	} else {
		detail, err = rt.catalog.GetProductBySlug(r.Context(), slug)
	}
	if err != nil {
		handleError(w, r, rt.log, err)
		return
	}

	writeSuccess(w, http.StatusOK, "product retrieved", detail)
}
