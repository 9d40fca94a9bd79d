package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/kdtech/site-backend/internal/domain"
	"github.com/kdtech/site-backend/internal/service/catalog"
)

func (rt *Router) servePortfolio(w http.ResponseWriter, r *http.Request, rest []string) {
	switch len(rest) {
	case 0:
		switch r.Method {
		case http.MethodGet:
			rt.listProjects(w, r)
		case http.MethodPost:
			rt.createProject(w, r)
		default:
			methodNotAllowed(w)
		}
	case 1:
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		rt.getProject(w, r, rest[0])
	default:
		notFoundRoute(w)
	}
}

func (rt *Router) listProjects(w http.ResponseWriter, r *http.Request) {
	filter := listFilterFromQuery(r)

	projects, total, err := rt.catalog.ListProjects(r.Context(), filter)
	if err != nil {
		handleError(w, r, rt.log, err)
		return
	}

	page := rt.catalog.NormalizePage(filter.Page, filter.Limit)
	writePaginated(w, "projects retrieved", projects,
		newPagination(page.Number, page.Size, total))
}

func (rt *Router) getProject(w http.ResponseWriter, r *http.Request, ref string) {
	var (
		detail *catalog.ProjectDetail
		err    error
	)
	if id, slug := parseRef(ref); slug == "" {
		detail, err = rt.catalog.GetProjectByID(r.Context(), id)
	} else {
		detail, err = rt.catalog.GetProjectBySlug(r.Context(), slug)
	}
	if err != nil {
		handleError(w, r, rt.log, err)
		return
	}

	writeSuccess(w, http.StatusOK, "project retrieved", detail)
}

type createProjectRequest struct {
	CategoryID       *int64                `json:"category_id"`
	Title            string                `json:"title"`
	Slug             string                `json:"slug"`
	ClientName       *string               `json:"client_name"`
	ProjectType      string                `json:"project_type"`
	ShortDescription string                `json:"short_description"`
	FullDescription  *string               `json:"full_description"`
	Technologies     []string              `json:"technologies"`
	ProjectURL       *string               `json:"project_url"`
	GithubURL        *string               `json:"github_url"`
	ImageURL         *string               `json:"image_url"`
	GalleryImages    []string              `json:"gallery_images"`
	StartDate        *time.Time            `json:"start_date"`
	EndDate          *time.Time            `json:"end_date"`
	ProjectStatus    *domain.ProjectStatus `json:"project_status"`
	IsFeatured       *bool                 `json:"is_featured"`
	IsActive         *bool                 `json:"is_active"`
	SortOrder        *int                  `json:"sort_order"`
}

func (rt *Router) createProject(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	project, err := rt.catalog.CreateProject(r.Context(), catalog.CreateProjectInput{
		CategoryID:       req.CategoryID,
		Title:            req.Title,
		Slug:             req.Slug,
		ClientName:       req.ClientName,
		ProjectType:      req.ProjectType,
		ShortDescription: req.ShortDescription,
		FullDescription:  req.FullDescription,
		Technologies:     req.Technologies,
		ProjectURL:       req.ProjectURL,
		GithubURL:        req.GithubURL,
		ImageURL:         req.ImageURL,
		GalleryImages:    req.GalleryImages,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		ProjectStatus:    req.ProjectStatus,
		IsFeatured:       req.IsFeatured,
		IsActive:         req.IsActive,
		SortOrder:        req.SortOrder,
	})
	if err != nil {
		handleError(w, r, rt.log, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "project created", project)
}

// listFilterFromQuery reads the shared catalog listing parameters.
func listFilterFromQuery(r *http.Request) catalog.ListFilter {
	return catalog.ListFilter{
		Page:       queryInt(r, "page", 1),
		Limit:      queryInt(r, "limit", 0),
		CategoryID: queryInt64Ptr(r, "category"),
		Featured:   queryBoolPtr(r, "featured"),
		Search:     r.URL.Query().Get("search"),
	}
}
