package persistence

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/domain/skill"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type skillRepo struct {
	q      DBTX
	sb     sq.StatementBuilderType
	logger logger.Logger
	now    func() time.Time
}

func (r *skillRepo) ListCategories(ctx context.Context) ([]*skill.Category, error) {
	query, args, err := r.sb.Select("id, name, description, display_order, created_at, updated_at").
		From("skill_categories").
		OrderBy("display_order ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list categories query", err)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query skill categories", err)
	}
	defer rows.Close()

	categories := make([]*skill.Category, 0)
	for rows.Next() {
		c := &skill.Category{}
		var description sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &description, &c.DisplayOrder, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, apperror.NewInternal("failed to scan skill category row", err)
		}
		c.Description = stringPtr(description)
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating skill category rows", err)
	}
	return categories, nil
}

func (r *skillRepo) NamesByCategory(ctx context.Context) (map[int64][]string, error) {
	return stringsByParent(ctx, r.q, r.sb.Select("category_id", "name").
		From("skills").
		OrderBy("id ASC"))
}

func (r *skillRepo) CreateCategory(ctx context.Context, c *skill.Category) error {
	now := r.now()

	id, err := insertReturningID(ctx, r.q, r.sb.Insert("skill_categories").
		Columns("name", "description", "display_order", "created_at", "updated_at").
		Values(c.Name, c.Description, c.DisplayOrder, now, now))
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.NewConflict("skill category", "name", c.Name)
		}
		return apperror.NewInternal("failed to save skill category", err)
	}

	c.ID = id
	c.CreatedAt = now
	c.UpdatedAt = now
	r.logger.Debug("Skill category saved", zap.Int64("category_id", id), zap.String("name", c.Name))
	return nil
}

func (r *skillRepo) CreateSkill(ctx context.Context, s *skill.Skill) error {
	if s.ProficiencyLevel < skill.MinProficiency || s.ProficiencyLevel > skill.MaxProficiency {
		return apperror.NewInvalidInput("proficiency level must be between 1 and 10", nil)
	}
	if s.YearsExperience < 0 {
		return apperror.NewInvalidInput("years of experience must not be negative", nil)
	}
	now := r.now()

	id, err := insertReturningID(ctx, r.q, r.sb.Insert("skills").
		Columns("category_id", "name", "description", "proficiency_level", "years_experience", "created_at", "updated_at").
		Values(s.CategoryID, s.Name, s.Description, s.ProficiencyLevel, s.YearsExperience, now, now))
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperror.NewInvalidInput("skill references a missing category", err)
		}
		return apperror.NewInternal("failed to save skill", err)
	}

	s.ID = id
	s.CreatedAt = now
	s.UpdatedAt = now
	return nil
}
