package portfolio

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

var tracer = otel.Tracer("portfolio_usecase")

// QueryUseCase answers the read-only portfolio queries. It is bound to the
// repositories of a single request session.
type QueryUseCase struct {
	repos  service.Repositories
	logger logger.Logger
}

func NewQueryUseCase(repos service.Repositories, log logger.Logger) *QueryUseCase {
	return &QueryUseCase{repos: repos, logger: log}
}

func (uc *QueryUseCase) GetProfile(ctx context.Context) (*profile.Profile, error) {
	ctx, span := tracer.Start(ctx, "GetProfile")
	defer span.End()

	p, err := uc.repos.Profiles.FindActive(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.Int64("profile_id", p.ID))
	return p, nil
}

// GetExperiences returns every experience, most recent start first, with
// technologies and achievements in insertion order.
func (uc *QueryUseCase) GetExperiences(ctx context.Context) ([]*experience.Experience, error) {
	ctx, span := tracer.Start(ctx, "GetExperiences")
	defer span.End()

	list, err := uc.repos.Experiences.ListByStartDateDesc(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	ids := make([]int64, len(list))
	for i, e := range list {
		ids[i] = e.ID
	}

	techs, err := uc.repos.Experiences.TechnologiesByExperience(ctx, ids)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	achievements, err := uc.repos.Experiences.AchievementsByExperience(ctx, ids)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	for _, e := range list {
		e.Technologies = nonNil(techs[e.ID])
		e.Achievements = nonNil(achievements[e.ID])
	}

	span.SetAttributes(attribute.Int("count", len(list)))
	uc.logger.Debug("Experiences loaded", zap.Int("count", len(list)))
	return list, nil
}

// GetProjects returns projects newest first, optionally only featured ones.
func (uc *QueryUseCase) GetProjects(ctx context.Context, featuredOnly bool) ([]*project.Project, error) {
	ctx, span := tracer.Start(ctx, "GetProjects")
	defer span.End()
	span.SetAttributes(attribute.Bool("featured_only", featuredOnly))

	list, err := uc.repos.Projects.List(ctx, featuredOnly)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	ids := make([]int64, len(list))
	for i, p := range list {
		ids[i] = p.ID
	}
	techs, err := uc.repos.Projects.TechnologiesByProject(ctx, ids)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	for _, p := range list {
		p.Technologies = nonNil(techs[p.ID])
	}

	span.SetAttributes(attribute.Int("count", len(list)))
	return list, nil
}

// GetSkillsByCategory maps each category key to its skill names. Categories
// keep display order and ones without skills map to an empty list.
func (uc *QueryUseCase) GetSkillsByCategory(ctx context.Context) (*skill.Catalog, error) {
	ctx, span := tracer.Start(ctx, "GetSkillsByCategory")
	defer span.End()

	categories, err := uc.repos.Skills.ListCategories(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	names, err := uc.repos.Skills.NamesByCategory(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	catalog := skill.NewCatalog()
	for _, c := range categories {
		catalog.Set(c.Key(), names[c.ID])
	}
	return catalog, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
