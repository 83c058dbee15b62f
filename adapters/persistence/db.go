package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

const sqlitePragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite"

// DBTX is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db      *sql.DB
	dialect Dialect
	builder sq.StatementBuilderType
	logger  logger.Logger
	now     func() time.Time
}

// Open picks the backend from cfg: Postgres when DATABASE_URL is a postgres
// URL, a SQLite file for sqlite:// URLs, and an in-memory SQLite database
// when no URL is configured or the environment is "test".
func Open(ctx context.Context, cfg config.Config, log logger.Logger) (*Store, error) {
	url := strings.TrimSpace(cfg.DB.URL)
	switch {
	case cfg.IsTest() || url == "":
		return OpenSQLite(ctx, ":memory:", log)
	case strings.HasPrefix(url, "sqlite://"):
		return OpenSQLite(ctx, strings.TrimPrefix(url, "sqlite://"), log)
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return OpenPostgres(ctx, url, log)
	}
	return nil, fmt.Errorf("unsupported DATABASE_URL scheme: %q", redactURL(url))
}

func OpenPostgres(ctx context.Context, dsn string, log logger.Logger) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("do not create connection pool: %w", err)
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database failed: %w", err)
	}

	log.Info("Connect PostgreSQL successfully.")
	return newStore(db, DialectPostgres, log), nil
}

// OpenSQLite opens path (":memory:" for a private in-memory database) with
// foreign keys enforced. A single connection is kept so an in-memory
// database lives as long as the Store.
func OpenSQLite(ctx context.Context, path string, log logger.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", sqliteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	log.Info("Open SQLite successfully.", zap.String("path", path))
	return newStore(db, DialectSQLite, log), nil
}

// sqliteDSN appends the connection pragmas, keeping any query string
// already present on path.
func sqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path + "&" + sqlitePragmas
	}
	return path + "?" + sqlitePragmas
}

func newStore(db *sql.DB, dialect Dialect, log logger.Logger) *Store {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == DialectPostgres {
		placeholder = sq.Dollar
	}
	return &Store{
		db:      db,
		dialect: dialect,
		builder: sq.StatementBuilder.PlaceholderFormat(placeholder),
		logger:  log,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) Dialect() Dialect {
	return s.dialect
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) repositories(q DBTX) service.Repositories {
	return service.Repositories{
		Profiles:    &profileRepo{q: q, sb: s.builder, logger: s.logger, now: s.now},
		Experiences: &experienceRepo{q: q, sb: s.builder, logger: s.logger, now: s.now},
		Projects:    &projectRepo{q: q, sb: s.builder, logger: s.logger, now: s.now},
		Skills:      &skillRepo{q: q, sb: s.builder, logger: s.logger, now: s.now},
	}
}

// redactURL drops credentials before a URL ends up in an error message.
func redactURL(url string) string {
	if at := strings.LastIndex(url, "@"); at >= 0 {
		if scheme := strings.Index(url, "://"); scheme >= 0 && scheme < at {
			return url[:scheme+3] + "***" + url[at:]
		}
	}
	return url
}
