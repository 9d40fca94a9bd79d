package rest

import "net/http"

func (rt *Router) serveCategories(w http.ResponseWriter, r *http.Request, rest []string) {
	if len(rest) > 0 {
		notFoundRoute(w)
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	categories, err := rt.catalog.ListCategories(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		handleError(w, r, rt.log, err)
		return
	}

	writeSuccess(w, http.StatusOK, "categories retrieved", categories)
}
