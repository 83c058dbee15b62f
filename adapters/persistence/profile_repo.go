package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type profileRepo struct {
	q      DBTX
	sb     sq.StatementBuilderType
	logger logger.Logger
	now    func() time.Time
}

const profileColumns = "id, name, title, summary, location, availability, email, linkedin_url, github_url, website_url, avatar_url, is_active, created_at, updated_at"

func scanProfile(row rowScanner) (*profile.Profile, error) {
	p := &profile.Profile{}
	var location, linkedIn, gitHub, website, avatar sql.NullString

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Title,
		&p.Summary,
		&location,
		&p.Availability,
		&p.Email,
		&linkedIn,
		&gitHub,
		&website,
		&avatar,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", "active")
		}
		return nil, apperror.NewInternal("failed to scan profile row", err)
	}

	p.Location = stringPtr(location)
	p.LinkedInURL = stringPtr(linkedIn)
	p.GitHubURL = stringPtr(gitHub)
	p.WebsiteURL = stringPtr(website)
	p.AvatarURL = stringPtr(avatar)
	return p, nil
}

func (r *profileRepo) FindActive(ctx context.Context) (*profile.Profile, error) {
	query, args, err := r.sb.Select(profileColumns).
		From("profiles").
		Where(sq.Eq{"is_active": true}).
		OrderBy("id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build find active profile query", err)
	}
	return scanProfile(r.q.QueryRowContext(ctx, query, args...))
}

func (r *profileRepo) Count(ctx context.Context) (int, error) {
	query, args, err := r.sb.Select("COUNT(*)").From("profiles").ToSql()
	if err != nil {
		return 0, apperror.NewInternal("failed to build count profiles query", err)
	}
	var n int
	if err := r.q.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, apperror.NewInternal("failed to count profiles", err)
	}
	return n, nil
}

func (r *profileRepo) Create(ctx context.Context, p *profile.Profile) error {
	now := r.now()
	if p.Availability == "" {
		p.Availability = profile.DefaultAvailability
	}

	id, err := insertReturningID(ctx, r.q, r.sb.Insert("profiles").
		Columns("name", "title", "summary", "location", "availability", "email",
			"linkedin_url", "github_url", "website_url", "avatar_url", "is_active",
			"created_at", "updated_at").
		Values(p.Name, p.Title, p.Summary, p.Location, p.Availability, p.Email,
			p.LinkedInURL, p.GitHubURL, p.WebsiteURL, p.AvatarURL, p.IsActive,
			now, now))
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.NewConflict("profile", "email", p.Email)
		}
		return apperror.NewInternal("failed to save profile", err)
	}

	p.ID = id
	p.CreatedAt = now
	p.UpdatedAt = now
	r.logger.Debug("Profile saved", zap.Int64("profile_id", id))
	return nil
}
