package catalog

import (
	"context"
	"fmt"

	"github.com/kdtech/site-backend/internal/adapter/postgres/record"
	"github.com/kdtech/site-backend/internal/domain"
)

const projectOrder = "p.sort_order ASC, p.created_at DESC"

// ProjectDetail is a project with its related projects attached.
type ProjectDetail struct {
	domain.ProjectWithCategory
	Related []domain.ProjectWithCategory `json:"related"`
}

// ListProjects returns active projects under the given filter plus the
// total matching count for pagination.
func (s *Service) ListProjects(ctx context.Context, filter ListFilter) ([]domain.ProjectWithCategory, int64, error) {
	page := s.normalizePage(filter.Page, filter.Limit)

	conds := record.Conditions{"is_active": true}
	if filter.CategoryID != nil {
		conds["category_id"] = *filter.CategoryID
	}
	if filter.Featured != nil {
		conds["is_featured"] = *filter.Featured
	}

	items, err := s.projects.ListWithCategory(ctx, conds, projectOrder, page.limit(), page.offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list projects: %w", err)
	}

	total, err := s.projects.Count(ctx, conds)
	if err != nil {
		return nil, 0, fmt.Errorf("count projects: %w", err)
	}

	return items, total, nil
}

// GetProjectByID returns one project with category fields and up to the
// configured number of related projects.
func (s *Service) GetProjectByID(ctx context.Context, id int64) (*ProjectDetail, error) {
	p, err := s.projects.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.projectDetail(ctx, &domain.ProjectWithCategory{Project: *p})
}

// GetProjectBySlug returns one active project by slug with related projects.
func (s *Service) GetProjectBySlug(ctx context.Context, slug string) (*ProjectDetail, error) {
	p, err := s.projects.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.projectDetail(ctx, p)
}

func (s *Service) projectDetail(ctx context.Context, p *domain.ProjectWithCategory) (*ProjectDetail, error) {
	related, err := s.projects.Related(ctx, &p.Project, s.cfg.RelatedLimit)
	if err != nil {
		return nil, fmt.Errorf("related projects: %w", err)
	}
	return &ProjectDetail{ProjectWithCategory: *p, Related: related}, nil
}

// CreateProject validates the input, derives a unique slug when none is
// supplied, applies defaults, and stores the project.
func (s *Service) CreateProject(ctx context.Context, input CreateProjectInput) (*domain.Project, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	slug := record.Slugify(input.Slug)
	if slug == "" {
		var err error
		slug, err = s.projects.UniqueSlug(ctx, input.Title, 0)
		if err != nil {
			return nil, fmt.Errorf("derive slug: %w", err)
		}
	}

	status := domain.ProjectStatusCompleted
	if input.ProjectStatus != nil {
		status = *input.ProjectStatus
	}

	fields := record.Fields{
		"category_id":       input.CategoryID,
		"title":             input.Title,
		"slug":              slug,
		"client_name":       trimOrNil(input.ClientName),
		"project_type":      input.ProjectType,
		"short_description": input.ShortDescription,
		"full_description":  input.FullDescription,
		"technologies":      emptyIfNil(input.Technologies),
		"project_url":       trimOrNil(input.ProjectURL),
		"github_url":        trimOrNil(input.GithubURL),
		"image_url":         trimOrNil(input.ImageURL),
		"gallery_images":    emptyIfNil(input.GalleryImages),
		"start_date":        input.StartDate,
		"end_date":          input.EndDate,
		"project_status":    status,
		"is_featured":       boolOr(input.IsFeatured, false),
		"is_active":         boolOr(input.IsActive, true),
		"sort_order":        intOr(input.SortOrder, 0),
	}

	created, err := s.projects.Create(ctx, fields)
	if err != nil {
		return nil, err
	}

	s.record(ctx, domain.EntityTypeProject, created.ID, "create", "project created: "+created.Title)
	return created, nil
}

// UpdateProject applies the non-nil fields of input to an existing project.
func (s *Service) UpdateProject(ctx context.Context, id int64, input UpdateProjectInput) (*domain.Project, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	fields := record.Fields{}
	if input.CategoryID != nil {
		fields["category_id"] = *input.CategoryID
	}
	if input.Title != nil {
		fields["title"] = *input.Title
		slug, err := s.projects.UniqueSlug(ctx, *input.Title, id)
		if err != nil {
			return nil, fmt.Errorf("derive slug: %w", err)
		}
		fields["slug"] = slug
	}
	if input.ClientName != nil {
		fields["client_name"] = trimOrNil(input.ClientName)
	}
	if input.ProjectType != nil {
		fields["project_type"] = *input.ProjectType
	}
	if input.ShortDescription != nil {
		fields["short_description"] = *input.ShortDescription
	}
	if input.FullDescription != nil {
		fields["full_description"] = input.FullDescription
	}
	if input.Technologies != nil {
		fields["technologies"] = input.Technologies
	}
	if input.ProjectURL != nil {
		fields["project_url"] = trimOrNil(input.ProjectURL)
	}
	if input.GithubURL != nil {
		fields["github_url"] = trimOrNil(input.GithubURL)
	}
	if input.ImageURL != nil {
		fields["image_url"] = trimOrNil(input.ImageURL)
	}
	if input.GalleryImages != nil {
		fields["gallery_images"] = input.GalleryImages
	}
	if input.StartDate != nil {
		fields["start_date"] = input.StartDate
	}
	if input.EndDate != nil {
		fields["end_date"] = input.EndDate
	}
	if input.ProjectStatus != nil {
		fields["project_status"] = *input.ProjectStatus
	}
	if input.IsFeatured != nil {
		fields["is_featured"] = *input.IsFeatured
	}
	if input.IsActive != nil {
		fields["is_active"] = *input.IsActive
	}
	if input.SortOrder != nil {
		fields["sort_order"] = *input.SortOrder
	}

	if len(fields) == 0 {
		return nil, domain.NewValidationError("fields", "nothing to update")
	}

	updated, err := s.projects.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	s.record(ctx, domain.EntityTypeProject, id, "update", "project updated: "+updated.Title)
	return updated, nil
}

// DeleteProject removes a project.
func (s *Service) DeleteProject(ctx context.Context, id int64) error {
	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}
	s.record(ctx, domain.EntityTypeProject, id, "delete", "project deleted")
	return nil
}

// PortfolioStats returns the portfolio dashboard counters.
func (s *Service) PortfolioStats(ctx context.Context) (*domain.PortfolioStats, error) {
	return s.projects.Stats(ctx)
}

// emptyIfNil turns a nil list into an empty one so jsonb columns never
// store SQL NULL.
func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

func boolOr(v *bool, def bool) bool {
	if v != nil {
		return *v
	}
	return def
}

func intOr(v *int, def int) int {
	if v != nil {
		return *v
	}
	return def
}
