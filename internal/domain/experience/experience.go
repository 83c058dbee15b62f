package experience

import (
	"context"
	"time"
)

const monthYear = "Jan 2006"

type Experience struct {
	ID           int64      `json:"id"`
	ProfileID    int64      `json:"profile_id"`
	Company      string     `json:"company"`
	Position     string     `json:"position"`
	Description  string     `json:"description"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	Location     *string    `json:"location"`
	IsCurrent    bool       `json:"is_current"`
	Technologies []string   `json:"technologies"`
	Achievements []string   `json:"achievements"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Duration renders "Jul 2025–Present" or "Mar 2025–Jul 2025".
// A finished role with no end date still renders as Present.
func (e *Experience) Duration() string {
	start := e.StartDate.UTC().Format(monthYear)
	if e.IsCurrent || e.EndDate == nil {
		return start + "–Present"
	}
	return start + "–" + e.EndDate.UTC().Format(monthYear)
}

type Repository interface {
	// ListByStartDateDesc returns bare rows; child lists are not loaded.
	ListByStartDateDesc(ctx context.Context) ([]*Experience, error)
	TechnologiesByExperience(ctx context.Context, ids []int64) (map[int64][]string, error)
	AchievementsByExperience(ctx context.Context, ids []int64) (map[int64][]string, error)

	Create(ctx context.Context, e *Experience) error
	AddTechnologies(ctx context.Context, experienceID int64, technologies []string) error
	AddAchievements(ctx context.Context, experienceID int64, achievements []string) error
}
