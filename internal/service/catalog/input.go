package catalog

import (
	"net/url"
	"strings"
	"time"

	"github.com/kdtech/site-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Listing filters
// ---------------------------------------------------------------------------

// ListFilter holds the common listing parameters for catalog entities.
type ListFilter struct {
	Page       int
	Limit      int
	CategoryID *int64
	Featured   *bool
	Search     string
}

// ---------------------------------------------------------------------------
// CreateProjectInput / UpdateProjectInput
// ---------------------------------------------------------------------------

// CreateProjectInput holds the parameters for creating a portfolio project.
type CreateProjectInput struct {
	CategoryID       *int64
	Title            string
	Slug             string
	ClientName       *string
	ProjectType      string
	ShortDescription string
	FullDescription  *string
	Technologies     []string
	ProjectURL       *string
	GithubURL        *string
	ImageURL         *string
	GalleryImages    []string
	StartDate        *time.Time
	EndDate          *time.Time
	ProjectStatus    *domain.ProjectStatus
	IsFeatured       *bool
	IsActive         *bool
	SortOrder        *int
}

// Validate checks all fields and collects all errors.
func (i CreateProjectInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if strings.TrimSpace(i.ProjectType) == "" {
		errs = append(errs, domain.FieldError{Field: "project_type", Message: "required"})
	}
	if strings.TrimSpace(i.ShortDescription) == "" {
		errs = append(errs, domain.FieldError{Field: "short_description", Message: "required"})
	}

	errs = appendURLError(errs, "project_url", i.ProjectURL)
	errs = appendURLError(errs, "github_url", i.GithubURL)
	errs = appendURLError(errs, "image_url", i.ImageURL)

	if i.StartDate != nil && i.EndDate != nil && i.EndDate.Before(*i.StartDate) {
		errs = append(errs, domain.FieldError{Field: "end_date", Message: "must not precede start_date"})
	}
	if i.ProjectStatus != nil && !i.ProjectStatus.IsValid() {
		errs = append(errs, domain.FieldError{Field: "project_status", Message: "unknown status"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateProjectInput holds the parameters for updating a project.
// Nil pointers mean "leave unchanged".
type UpdateProjectInput struct {
	CategoryID       *int64
	Title            *string
	ClientName       *string
	ProjectType      *string
	ShortDescription *string
	FullDescription  *string
	Technologies     []string
	ProjectURL       *string
	GithubURL        *string
	ImageURL         *string
	GalleryImages    []string
	StartDate        *time.Time
	EndDate          *time.Time
	ProjectStatus    *domain.ProjectStatus
	IsFeatured       *bool
	IsActive         *bool
	SortOrder        *int
}

// Validate checks all fields and collects all errors.
func (i UpdateProjectInput) Validate() error {
	var errs []domain.FieldError

	if i.Title != nil && strings.TrimSpace(*i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "must not be empty"})
	}
	if i.ProjectType != nil && strings.TrimSpace(*i.ProjectType) == "" {
		errs = append(errs, domain.FieldError{Field: "project_type", Message: "must not be empty"})
	}

	errs = appendURLError(errs, "project_url", i.ProjectURL)
	errs = appendURLError(errs, "github_url", i.GithubURL)
	errs = appendURLError(errs, "image_url", i.ImageURL)

	if i.StartDate != nil && i.EndDate != nil && i.EndDate.Before(*i.StartDate) {
		errs = append(errs, domain.FieldError{Field: "end_date", Message: "must not precede start_date"})
	}
	if i.ProjectStatus != nil && !i.ProjectStatus.IsValid() {
		errs = append(errs, domain.FieldError{Field: "project_status", Message: "unknown status"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// CreateProductInput / UpdateProductInput
// ---------------------------------------------------------------------------

// CreateProductInput holds the parameters for creating a product.
type CreateProductInput struct {
	CategoryID       *int64
	Name             string
	Slug             string
	SKU              string
	ShortDescription string
	FullDescription  *string
	Specifications   []string
	Price            float64
	SalePrice        *float64
	StockQuantity    *int
	MinStockLevel    *int
	ImageURL         *string
	GalleryImages    []string
	IsFeatured       *bool
	IsActive         *bool
	SortOrder        *int
}

// Validate checks all fields and collects all errors.
func (i CreateProductInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if strings.TrimSpace(i.ShortDescription) == "" {
		errs = append(errs, domain.FieldError{Field: "short_description", Message: "required"})
	}
	if i.Price < 0 {
		errs = append(errs, domain.FieldError{Field: "price", Message: "must not be negative"})
	}
	if i.SalePrice != nil && *i.SalePrice < 0 {
		errs = append(errs, domain.FieldError{Field: "sale_price", Message: "must not be negative"})
	}
	if i.StockQuantity != nil && *i.StockQuantity < 0 {
		errs = append(errs, domain.FieldError{Field: "stock_quantity", Message: "must not be negative"})
	}
	if i.MinStockLevel != nil && *i.MinStockLevel < 0 {
		errs = append(errs, domain.FieldError{Field: "min_stock_level", Message: "must not be negative"})
	}

	errs = appendURLError(errs, "image_url", i.ImageURL)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateProductInput holds the parameters for updating a product.
// Nil pointers mean "leave unchanged".
type UpdateProductInput struct {
	CategoryID       *int64
	Name             *string
	ShortDescription *string
	FullDescription  *string
	Specifications   []string
	Price            *float64
	SalePrice        *float64
	StockQuantity    *int
	MinStockLevel    *int
	ImageURL         *string
	GalleryImages    []string
	IsFeatured       *bool
	IsActive         *bool
	SortOrder        *int
}

// Validate checks all fields and collects all errors.
func (i UpdateProductInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil && strings.TrimSpace(*i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
	}
	if i.Price != nil && *i.Price < 0 {
		errs = append(errs, domain.FieldError{Field: "price", Message: "must not be negative"})
	}
	if i.SalePrice != nil && *i.SalePrice < 0 {
		errs = append(errs, domain.FieldError{Field: "sale_price", Message: "must not be negative"})
	}
	if i.StockQuantity != nil && *i.StockQuantity < 0 {
		errs = append(errs, domain.FieldError{Field: "stock_quantity", Message: "must not be negative"})
	}
	if i.MinStockLevel != nil && *i.MinStockLevel < 0 {
		errs = append(errs, domain.FieldError{Field: "min_stock_level", Message: "must not be negative"})
	}

	errs = appendURLError(errs, "image_url", i.ImageURL)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// CreateServiceInput / UpdateServiceInput
// ---------------------------------------------------------------------------

// CreateServiceInput holds the parameters for creating a service offering.
type CreateServiceInput struct {
	CategoryID       *int64
	Title            string
	Slug             string
	ShortDescription string
	FullDescription  *string
	Features         []string
	PriceRange       *string
	ImageURL         *string
	IconClass        *string
	IsFeatured       *bool
	IsActive         *bool
	SortOrder        *int
}

// Validate checks all fields and collects all errors.
func (i CreateServiceInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if strings.TrimSpace(i.ShortDescription) == "" {
		errs = append(errs, domain.FieldError{Field: "short_description", Message: "required"})
	}

	errs = appendURLError(errs, "image_url", i.ImageURL)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateServiceInput holds the parameters for updating a service offering.
// Nil pointers mean "leave unchanged".
type UpdateServiceInput struct {
	CategoryID       *int64
	Title            *string
	ShortDescription *string
	FullDescription  *string
	Features         []string
	PriceRange       *string
	ImageURL         *string
	IconClass        *string
	IsFeatured       *bool
	IsActive         *bool
	SortOrder        *int
}

// Validate checks all fields and collects all errors.
func (i UpdateServiceInput) Validate() error {
	var errs []domain.FieldError

	if i.Title != nil && strings.TrimSpace(*i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "must not be empty"})
	}

	errs = appendURLError(errs, "image_url", i.ImageURL)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// appendURLError validates an optional URL field: it must parse and carry
// an http(s) scheme.
func appendURLError(errs []domain.FieldError, field string, value *string) []domain.FieldError {
	if value == nil || strings.TrimSpace(*value) == "" {
		return errs
	}
	u, err := url.ParseRequestURI(strings.TrimSpace(*value))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return append(errs, domain.FieldError{Field: field, Message: "must be a valid http(s) URL"})
	}
	return errs
}
