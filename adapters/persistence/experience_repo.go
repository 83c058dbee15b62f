package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type experienceRepo struct {
	q      DBTX
	sb     sq.StatementBuilderType
	logger logger.Logger
	now    func() time.Time
}

func scanExperience(row rowScanner) (*experience.Experience, error) {
	e := &experience.Experience{}
	var endDate sql.NullTime
	var location sql.NullString

	err := row.Scan(
		&e.ID,
		&e.ProfileID,
		&e.Company,
		&e.Position,
		&e.Description,
		&e.StartDate,
		&endDate,
		&location,
		&e.IsCurrent,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NewNotFound("experience", "")
		}
		return nil, apperror.NewInternal("failed to scan experience row", err)
	}

	e.StartDate = e.StartDate.UTC()
	e.EndDate = timePtr(endDate)
	e.Location = stringPtr(location)
	return e, nil
}

func (r *experienceRepo) ListByStartDateDesc(ctx context.Context) ([]*experience.Experience, error) {
	query, args, err := r.sb.Select("id, profile_id, company, position, description, start_date, end_date, location, is_current, created_at, updated_at").
		From("experiences").
		OrderBy("start_date DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list experiences query", err)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query experiences", err)
	}
	defer rows.Close()

	experiences := make([]*experience.Experience, 0)
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		experiences = append(experiences, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating experience rows", err)
	}
	return experiences, nil
}

func (r *experienceRepo) TechnologiesByExperience(ctx context.Context, ids []int64) (map[int64][]string, error) {
	if len(ids) == 0 {
		return map[int64][]string{}, nil
	}
	return stringsByParent(ctx, r.q, r.sb.Select("experience_id", "technology").
		From("experience_technologies").
		Where(sq.Eq{"experience_id": ids}).
		OrderBy("id ASC"))
}

func (r *experienceRepo) AchievementsByExperience(ctx context.Context, ids []int64) (map[int64][]string, error) {
	if len(ids) == 0 {
		return map[int64][]string{}, nil
	}
	return stringsByParent(ctx, r.q, r.sb.Select("experience_id", "achievement").
		From("experience_achievements").
		Where(sq.Eq{"experience_id": ids}).
		OrderBy("id ASC"))
}

func (r *experienceRepo) Create(ctx context.Context, e *experience.Experience) error {
	now := r.now()

	id, err := insertReturningID(ctx, r.q, r.sb.Insert("experiences").
		Columns("profile_id", "company", "position", "description", "start_date",
			"end_date", "location", "is_current", "created_at", "updated_at").
		Values(e.ProfileID, e.Company, e.Position, e.Description, e.StartDate.UTC(),
			utcPtr(e.EndDate), e.Location, e.IsCurrent, now, now))
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperror.NewInvalidInput("experience references a missing profile", err)
		}
		return apperror.NewInternal("failed to save experience", err)
	}

	e.ID = id
	e.CreatedAt = now
	e.UpdatedAt = now
	r.logger.Debug("Experience saved", zap.Int64("experience_id", id), zap.String("company", e.Company))
	return nil
}

func (r *experienceRepo) AddTechnologies(ctx context.Context, experienceID int64, technologies []string) error {
	return insertStrings(ctx, r.q, r.sb, "experience_technologies", "technology", "experience_id", experienceID, technologies, r.now())
}

func (r *experienceRepo) AddAchievements(ctx context.Context, experienceID int64, achievements []string) error {
	return insertStrings(ctx, r.q, r.sb, "experience_achievements", "achievement", "experience_id", experienceID, achievements, r.now())
}
