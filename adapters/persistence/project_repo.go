package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type projectRepo struct {
	q      DBTX
	sb     sq.StatementBuilderType
	logger logger.Logger
	now    func() time.Time
}

func scanProject(row rowScanner) (*project.Project, error) {
	p := &project.Project{}
	var company, impact, gitHub, live, image sql.NullString
	var projectType string

	err := row.Scan(
		&p.ID,
		&p.ProfileID,
		&p.Title,
		&company,
		&p.Description,
		&impact,
		&projectType,
		&gitHub,
		&live,
		&image,
		&p.IsFeatured,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NewNotFound("project", "")
		}
		return nil, apperror.NewInternal("failed to scan project row", err)
	}

	p.Type = project.ProjectType(projectType)
	p.Company = stringPtr(company)
	p.Impact = stringPtr(impact)
	p.GitHubURL = stringPtr(gitHub)
	p.LiveURL = stringPtr(live)
	p.ImageURL = stringPtr(image)
	return p, nil
}

func scanProjects(rows *sql.Rows) ([]*project.Project, error) {
	defer rows.Close()
	projects := make([]*project.Project, 0)

	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating project rows", err)
	}
	return projects, nil
}

func (r *projectRepo) List(ctx context.Context, featuredOnly bool) ([]*project.Project, error) {
	b := r.sb.Select("id, profile_id, title, company, description, impact, project_type, github_url, live_url, image_url, is_featured, created_at, updated_at").
		From("projects").
		OrderBy("created_at DESC", "id DESC")
	if featuredOnly {
		b = b.Where(sq.Eq{"is_featured": true})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list projects query", err)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects", err)
	}
	return scanProjects(rows)
}

func (r *projectRepo) TechnologiesByProject(ctx context.Context, ids []int64) (map[int64][]string, error) {
	if len(ids) == 0 {
		return map[int64][]string{}, nil
	}
	return stringsByParent(ctx, r.q, r.sb.Select("project_id", "technology").
		From("project_technologies").
		Where(sq.Eq{"project_id": ids}).
		OrderBy("id ASC"))
}

func (r *projectRepo) Create(ctx context.Context, p *project.Project) error {
	if err := p.Validate(); err != nil {
		return apperror.NewInvalidInput(err.Error(), err)
	}
	now := r.now()

	id, err := insertReturningID(ctx, r.q, r.sb.Insert("projects").
		Columns("profile_id", "title", "company", "description", "impact", "project_type",
			"github_url", "live_url", "image_url", "is_featured", "created_at", "updated_at").
		Values(p.ProfileID, p.Title, p.Company, p.Description, p.Impact, string(p.Type),
			p.GitHubURL, p.LiveURL, p.ImageURL, p.IsFeatured, now, now))
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperror.NewInvalidInput("project references a missing profile", err)
		}
		return apperror.NewInternal("failed to save project", err)
	}

	p.ID = id
	p.CreatedAt = now
	p.UpdatedAt = now
	r.logger.Debug("Project saved", zap.Int64("project_id", id), zap.String("title", p.Title))
	return nil
}

func (r *projectRepo) AddTechnologies(ctx context.Context, projectID int64, technologies []string) error {
	return insertStrings(ctx, r.q, r.sb, "project_technologies", "technology", "project_id", projectID, technologies, r.now())
}
