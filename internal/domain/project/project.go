package project

import (
	"context"
	"errors"
	"fmt"
	"time"
)

type ProjectType string

const (
	TypeBackend        ProjectType = "backend"
	TypeAI             ProjectType = "ai"
	TypeFullstack      ProjectType = "fullstack"
	TypeData           ProjectType = "data"
	TypeInfrastructure ProjectType = "infrastructure"
)

// Types lists every accepted project type in declaration order.
var Types = []ProjectType{TypeBackend, TypeAI, TypeFullstack, TypeData, TypeInfrastructure}

func (t ProjectType) Valid() bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

type Project struct {
	ID           int64       `json:"id"`
	ProfileID    int64       `json:"profile_id"`
	Title        string      `json:"title"`
	Company      *string     `json:"company"`
	Description  string      `json:"description"`
	Impact       *string     `json:"impact"`
	Type         ProjectType `json:"project_type"`
	GitHubURL    *string     `json:"github_url"`
	LiveURL      *string     `json:"live_url"`
	ImageURL     *string     `json:"image_url"`
	IsFeatured   bool        `json:"is_featured"`
	Technologies []string    `json:"technologies"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

var ErrInvalidType = errors.New("unknown project type")

func (p *Project) Validate() error {
	if !p.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, p.Type)
	}
	return nil
}

type Repository interface {
	// List orders by creation time, newest first.
	List(ctx context.Context, featuredOnly bool) ([]*Project, error)
	TechnologiesByProject(ctx context.Context, ids []int64) (map[int64][]string, error)

	Create(ctx context.Context, p *Project) error
	AddTechnologies(ctx context.Context, projectID int64, technologies []string) error
}
