package persistence

import (
	"context"
	"fmt"
	"strings"

	"github.com/khoahotran/portfolio-api/internal/domain/project"
)

type columnTypes struct {
	id        string
	timestamp string
}

func (s *Store) columnTypes() columnTypes {
	if s.dialect == DialectPostgres {
		return columnTypes{id: "BIGSERIAL PRIMARY KEY", timestamp: "TIMESTAMPTZ"}
	}
	return columnTypes{id: "INTEGER PRIMARY KEY AUTOINCREMENT", timestamp: "TIMESTAMP"}
}

func projectTypeCheck() string {
	quoted := make([]string, len(project.Types))
	for i, t := range project.Types {
		quoted[i] = "'" + string(t) + "'"
	}
	return strings.Join(quoted, ", ")
}

// schemaStatements uses %[1]s for the id column, %[2]s for timestamps and
// %[3]s for the allowed project types.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS skill_categories (
		id %[1]s,
		name VARCHAR(100) NOT NULL UNIQUE,
		description TEXT,
		display_order INTEGER NOT NULL DEFAULT 0,
		created_at %[2]s NOT NULL,
		updated_at %[2]s NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS skills (
		id %[1]s,
		name VARCHAR(100) NOT NULL,
		description TEXT,
		proficiency_level INTEGER NOT NULL DEFAULT 5 CHECK (proficiency_level BETWEEN 1 AND 10),
		years_experience INTEGER NOT NULL DEFAULT 0 CHECK (years_experience >= 0),
		category_id BIGINT NOT NULL REFERENCES skill_categories(id),
		created_at %[2]s NOT NULL,
		updated_at %[2]s NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_skills_category_id ON skills(category_id)`,
	`CREATE TABLE IF NOT EXISTS profiles (
		id %[1]s,
		name VARCHAR(200) NOT NULL,
		title VARCHAR(200) NOT NULL,
		summary TEXT NOT NULL,
		location VARCHAR(100),
		availability VARCHAR(100) NOT NULL DEFAULT 'Open to opportunities',
		email VARCHAR(200) NOT NULL UNIQUE,
		linkedin_url VARCHAR(500),
		github_url VARCHAR(500),
		website_url VARCHAR(500),
		avatar_url VARCHAR(500),
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at %[2]s NOT NULL,
		updated_at %[2]s NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS experiences (
		id %[1]s,
		company VARCHAR(200) NOT NULL,
		position VARCHAR(200) NOT NULL,
		description TEXT NOT NULL,
		start_date %[2]s NOT NULL,
		end_date %[2]s,
		location VARCHAR(100),
		is_current BOOLEAN NOT NULL DEFAULT FALSE,
		profile_id BIGINT NOT NULL REFERENCES profiles(id),
		created_at %[2]s NOT NULL,
		updated_at %[2]s NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_experiences_start_date ON experiences(start_date)`,
	`CREATE TABLE IF NOT EXISTS experience_technologies (
		id %[1]s,
		technology VARCHAR(100) NOT NULL,
		experience_id BIGINT NOT NULL REFERENCES experiences(id),
		created_at %[2]s NOT NULL,
		updated_at %[2]s NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_experience_technologies_experience_id ON experience_technologies(experience_id)`,
	`CREATE TABLE IF NOT EXISTS experience_achievements (
		id %[1]s,
		achievement TEXT NOT NULL,
		experience_id BIGINT NOT NULL REFERENCES experiences(id),
		created_at %[2]s NOT NULL,
		updated_at %[2]s NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_experience_achievements_experience_id ON experience_achievements(experience_id)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id %[1]s,
		title VARCHAR(200) NOT NULL,
		company VARCHAR(200),
		description TEXT NOT NULL,
		impact TEXT,
		project_type VARCHAR(20) NOT NULL CHECK (project_type IN (%[3]s)),
		github_url VARCHAR(500),
		live_url VARCHAR(500),
		image_url VARCHAR(500),
		is_featured BOOLEAN NOT NULL DEFAULT FALSE,
		profile_id BIGINT NOT NULL REFERENCES profiles(id),
		created_at %[2]s NOT NULL,
		updated_at %[2]s NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_created_at ON projects(created_at)`,
	`CREATE TABLE IF NOT EXISTS project_technologies (
		id %[1]s,
		technology VARCHAR(100) NOT NULL,
		project_id BIGINT NOT NULL REFERENCES projects(id),
		created_at %[2]s NOT NULL,
		updated_at %[2]s NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_project_technologies_project_id ON project_technologies(project_id)`,
}

// CreateTables is idempotent; it only creates what is missing.
func (s *Store) CreateTables(ctx context.Context) error {
	types := s.columnTypes()
	checks := projectTypeCheck()

	for _, stmt := range schemaStatements {
		ddl := stmt
		if strings.Contains(stmt, "%[") {
			ddl = fmt.Sprintf(stmt, types.id, types.timestamp, checks)
		}
		if _, err := s.db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("create tables: %w", err)
		}
	}
	s.logger.Info("Database schema is ready.")
	return nil
}
