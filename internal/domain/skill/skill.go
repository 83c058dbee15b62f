package skill

import (
	"context"
	"regexp"
	"strings"
	"time"
)

type Category struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Key is the JSON key a category is published under.
func (c *Category) Key() string {
	return CategoryKey(c.Name)
}

type Skill struct {
	ID               int64     `json:"id"`
	CategoryID       int64     `json:"category_id"`
	Name             string    `json:"name"`
	Description      *string   `json:"description"`
	ProficiencyLevel int       `json:"proficiency_level"`
	YearsExperience  int       `json:"years_experience"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

const (
	MinProficiency = 1
	MaxProficiency = 10
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// CategoryKey lowercases name, collapses every run of non-alphanumerics into
// one underscore and trims underscores at both ends.
// "AI/ML & GenAI" becomes "ai_ml_genai".
func CategoryKey(name string) string {
	return strings.Trim(nonAlnum.ReplaceAllString(strings.ToLower(name), "_"), "_")
}

type Repository interface {
	// ListCategories orders by display order.
	ListCategories(ctx context.Context) ([]*Category, error)
	// NamesByCategory keeps insertion order within each category.
	NamesByCategory(ctx context.Context) (map[int64][]string, error)

	CreateCategory(ctx context.Context, c *Category) error
	CreateSkill(ctx context.Context, s *Skill) error
}
