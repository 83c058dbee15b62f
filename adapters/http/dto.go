package http

import (
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
)

const ServiceName = "sagarneeli-portfolio-backend"

// Profile DTOs
type ContactDTO struct {
	Email    string  `json:"email"`
	LinkedIn *string `json:"linkedin"`
	GitHub   *string `json:"github"`
}

type ProfileDTO struct {
	Name         string     `json:"name"`
	Title        string     `json:"title"`
	Summary      string     `json:"summary"`
	Location     *string    `json:"location"`
	Availability string     `json:"availability"`
	Contact      ContactDTO `json:"contact"`
}

func ToProfileDTO(p *profile.Profile) ProfileDTO {
	return ProfileDTO{
		Name:         p.Name,
		Title:        p.Title,
		Summary:      p.Summary,
		Location:     p.Location,
		Availability: p.Availability,
		Contact:      toContactDTO(p),
	}
}

func toContactDTO(p *profile.Profile) ContactDTO {
	return ContactDTO{Email: p.Email, LinkedIn: p.LinkedInURL, GitHub: p.GitHubURL}
}

// RootDTO is the landing summary served at "/".
type RootDTO struct {
	Name        string     `json:"name"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Contact     ContactDTO `json:"contact"`
}

func ToRootDTO(p *profile.Profile) RootDTO {
	return RootDTO{Name: p.Name, Title: p.Title, Description: p.Summary, Contact: toContactDTO(p)}
}

// Experience DTOs
type ExperienceDTO struct {
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Duration     string   `json:"duration"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Achievements []string `json:"achievements"`
}

type ExperienceListResponse struct {
	Experience []ExperienceDTO `json:"experience"`
}

func ToExperienceListResponse(list []*experience.Experience) ExperienceListResponse {
	out := make([]ExperienceDTO, len(list))
	for i, e := range list {
		out[i] = ExperienceDTO{
			Company:      e.Company,
			Position:     e.Position,
			Duration:     e.Duration(),
			Description:  e.Description,
			Technologies: e.Technologies,
			Achievements: e.Achievements,
		}
	}
	return ExperienceListResponse{Experience: out}
}

// Project DTOs
type ProjectDTO struct {
	Title        string   `json:"title"`
	Company      *string  `json:"company"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Impact       *string  `json:"impact"`
	Type         string   `json:"type"`
}

type ProjectListResponse struct {
	Projects []ProjectDTO `json:"projects"`
}

func ToProjectListResponse(list []*project.Project) ProjectListResponse {
	out := make([]ProjectDTO, len(list))
	for i, p := range list {
		out[i] = ProjectDTO{
			Title:        p.Title,
			Company:      p.Company,
			Description:  p.Description,
			Technologies: p.Technologies,
			Impact:       p.Impact,
			Type:         string(p.Type),
		}
	}
	return ProjectListResponse{Projects: out}
}

// Health DTOs
type HealthChecks struct {
	Database   string `json:"database"`
	Redis      string `json:"redis"`
	AIServices string `json:"ai_services"`
}

type DetailedHealthDTO struct {
	Status      string       `json:"status"`
	Service     string       `json:"service"`
	Timestamp   string       `json:"timestamp"`
	Version     string       `json:"version"`
	Environment string       `json:"environment"`
	Checks      HealthChecks `json:"checks"`
}

type ReadinessDTO struct {
	Status  string            `json:"status"`
	Service string            `json:"service"`
	Checks  map[string]string `json:"checks"`
}
