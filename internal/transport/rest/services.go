package rest

import (
	"net/http"

	"github.com/kdtech/site-backend/internal/service/catalog"
)

func (rt *Router) serveServices(w http.ResponseWriter, r *http.Request, rest []string) {
	switch len(rest) {
	case 0:
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		rt.listServices(w, r)
	case 1:
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		rt.getService(w, r, rest[0])
	default:
		notFoundRoute(w)
	}
}

func (rt *Router) listServices(w http.ResponseWriter, r *http.Request) {
	filter := listFilterFromQuery(r)

	services, total, err := rt.catalog.ListServices(r.Context(), filter)
	if err != nil {
		handleError(w, r, rt.log, err)
		return
	}

	page := rt.catalog.NormalizePage(filter.Page, filter.Limit)
	writePaginated(w, "services retrieved", services,
		newPagination(page.Number, page.Size, total))
}

func (rt *Router) getService(w http.ResponseWriter, r *http.Request, ref string) {
	var (
		detail *catalog.ServiceDetail
		err    error
	)
	if id, slug := parseRef(ref); slug == "" {
		detail, err = rt.catalog.GetServiceByID(r.Context(), id)
	} else {
		detail, err = rt.catalog.GetServiceBySlug(r.Context(), slug)
	}
	if err != nil {
		handleError(w, r, rt.log, err)
		return
	}

	writeSuccess(w, http.StatusOK, "service retrieved", detail)
}
