package domain

import "time"

// Project is a portfolio item shown on the public site.
// Technologies and GalleryImages are jsonb list columns.
type Project struct {
	ID               int64         `db:"id" json:"id"`
	CategoryID       *int64        `db:"category_id" json:"category_id,omitempty"`
	Title            string        `db:"title" json:"title"`
	Slug             string        `db:"slug" json:"slug"`
	ClientName       *string       `db:"client_name" json:"client_name,omitempty"`
	ProjectType      string        `db:"project_type" json:"project_type"`
	ShortDescription string        `db:"short_description" json:"short_description"`
	FullDescription  *string       `db:"full_description" json:"full_description,omitempty"`
	Technologies     []string      `db:"technologies" json:"technologies"`
	ProjectURL       *string       `db:"project_url" json:"project_url,omitempty"`
	GithubURL        *string       `db:"github_url" json:"github_url,omitempty"`
	ImageURL         *string       `db:"image_url" json:"image_url,omitempty"`
	GalleryImages    []string      `db:"gallery_images" json:"gallery_images"`
	StartDate        *time.Time    `db:"start_date" json:"start_date,omitempty"`
	EndDate          *time.Time    `db:"end_date" json:"end_date,omitempty"`
	ProjectStatus    ProjectStatus `db:"project_status" json:"project_status"`
	IsFeatured       bool          `db:"is_featured" json:"is_featured"`
	IsActive         bool          `db:"is_active" json:"is_active"`
	SortOrder        int           `db:"sort_order" json:"sort_order"`
	CreatedAt        time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time     `db:"updated_at" json:"updated_at"`
}

// ProjectWithCategory is a Project joined with its category's display fields.
type ProjectWithCategory struct {
	Project
	CategoryName *string `db:"category_name" json:"category_name,omitempty"`
	CategorySlug *string `db:"category_slug" json:"category_slug,omitempty"`
}

// PortfolioStats are the aggregate counters for the dashboard.
type PortfolioStats struct {
	TotalProjects      int64 `db:"total_projects" json:"total_projects"`
	CompletedProjects  int64 `db:"completed_projects" json:"completed_projects"`
	InProgressProjects int64 `db:"in_progress_projects" json:"in_progress_projects"`
	FeaturedProjects   int64 `db:"featured_projects" json:"featured_projects"`
	UniqueClients      int64 `db:"unique_clients" json:"unique_clients"`
	ProjectTypes       int64 `db:"project_types" json:"project_types"`
}
