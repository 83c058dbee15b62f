package seed

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

var tracer = otel.Tracer("seed_usecase")

type SeedUseCase struct {
	uow    service.UnitOfWork
	data   Data
	logger logger.Logger
}

func NewSeedUseCase(uow service.UnitOfWork, data Data, log logger.Logger) *SeedUseCase {
	return &SeedUseCase{uow: uow, data: data, logger: log}
}

// Execute loads the sample portfolio into an empty store. A store that
// already holds a profile is left untouched. Everything is written in one
// transaction, so a failure leaves no partial data behind.
func (uc *SeedUseCase) Execute(ctx context.Context) (seeded bool, err error) {
	ctx, span := tracer.Start(ctx, "Execute")
	defer span.End()

	err = uc.uow.WithTx(ctx, func(repos service.Repositories) error {
		n, err := repos.Profiles.Count(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}

		if err := uc.seedSkills(ctx, repos.Skills); err != nil {
			return err
		}
		p, err := uc.seedProfile(ctx, repos.Profiles)
		if err != nil {
			return err
		}
		if err := uc.seedExperiences(ctx, repos.Experiences, p.ID); err != nil {
			return err
		}
		if err := uc.seedProjects(ctx, repos.Projects, p.ID); err != nil {
			return err
		}
		seeded = true
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return false, fmt.Errorf("seed sample data: %w", err)
	}

	if seeded {
		uc.logger.Info("Sample data loaded",
			zap.Int("categories", len(uc.data.Categories)),
			zap.Int("experiences", len(uc.data.Experiences)),
			zap.Int("projects", len(uc.data.Projects)),
		)
	} else {
		uc.logger.Info("Sample data already present, skipping seed")
	}
	return seeded, nil
}

func (uc *SeedUseCase) seedSkills(ctx context.Context, repo skill.Repository) error {
	for _, cs := range uc.data.Categories {
		c := &skill.Category{Name: cs.Name, DisplayOrder: cs.DisplayOrder}
		if cs.Description != "" {
			desc := cs.Description
			c.Description = &desc
		}
		if err := repo.CreateCategory(ctx, c); err != nil {
			return err
		}
		for _, name := range cs.Skills {
			s := &skill.Skill{
				CategoryID:       c.ID,
				Name:             name,
				ProficiencyLevel: defaultProficiency,
				YearsExperience:  defaultYears,
			}
			if err := repo.CreateSkill(ctx, s); err != nil {
				return err
			}
		}
	}
	return nil
}

func (uc *SeedUseCase) seedProfile(ctx context.Context, repo profile.Repository) (*profile.Profile, error) {
	p := uc.data.Profile.Profile()
	if err := repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *SeedUseCase) seedExperiences(ctx context.Context, repo experience.Repository, profileID int64) error {
	for _, es := range uc.data.Experiences {
		e := &experience.Experience{
			ProfileID:   profileID,
			Company:     es.Company,
			Position:    es.Position,
			Description: es.Description,
			StartDate:   es.StartDate,
			EndDate:     es.EndDate,
			IsCurrent:   es.IsCurrent,
		}
		if err := repo.Create(ctx, e); err != nil {
			return err
		}
		if err := repo.AddTechnologies(ctx, e.ID, es.Technologies); err != nil {
			return err
		}
		if err := repo.AddAchievements(ctx, e.ID, es.Achievements); err != nil {
			return err
		}
	}
	return nil
}

func (uc *SeedUseCase) seedProjects(ctx context.Context, repo project.Repository, profileID int64) error {
	for _, ps := range uc.data.Projects {
		p := &project.Project{
			ProfileID:   profileID,
			Title:       ps.Title,
			Company:     optional(ps.Company),
			Description: ps.Description,
			Impact:      optional(ps.Impact),
			Type:        ps.Type,
			IsFeatured:  ps.IsFeatured,
		}
		if err := repo.Create(ctx, p); err != nil {
			return err
		}
		if err := repo.AddTechnologies(ctx, p.ID, ps.Technologies); err != nil {
			return err
		}
	}
	return nil
}

// Profile builds the active profile row described by ps.
func (ps ProfileSeed) Profile() *profile.Profile {
	return &profile.Profile{
		Name:         ps.Name,
		Title:        ps.Title,
		Summary:      ps.Summary,
		Location:     optional(ps.Location),
		Availability: ps.Availability,
		Email:        ps.Email,
		LinkedInURL:  optional(ps.LinkedInURL),
		GitHubURL:    optional(ps.GitHubURL),
		IsActive:     true,
	}
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
