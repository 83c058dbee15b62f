package service

import (
	"context"

	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
)

// Repositories groups the repositories bound to one connection or
// transaction.
type Repositories struct {
	Profiles    profile.Repository
	Experiences experience.Repository
	Projects    project.Repository
	Skills      skill.Repository
}

// UnitOfWork runs fn inside a transaction. Returning an error (or panicking)
// rolls everything back.
type UnitOfWork interface {
	WithTx(ctx context.Context, fn func(repos Repositories) error) error
}
