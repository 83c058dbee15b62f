package profile

import (
	"context"
	"time"
)

const DefaultAvailability = "Open to opportunities"

type Profile struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Title        string    `json:"title"`
	Summary      string    `json:"summary"`
	Location     *string   `json:"location"`
	Availability string    `json:"availability"`
	Email        string    `json:"email"`
	LinkedInURL  *string   `json:"linkedin_url"`
	GitHubURL    *string   `json:"github_url"`
	WebsiteURL   *string   `json:"website_url"`
	AvatarURL    *string   `json:"avatar_url"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Repository interface {
	// FindActive returns the first active profile, or a not-found AppError.
	FindActive(ctx context.Context) (*Profile, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, p *Profile) error
}
