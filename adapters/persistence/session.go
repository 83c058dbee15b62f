package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/khoahotran/portfolio-api/internal/application/service"
)

// Session pins one pooled connection for the lifetime of a request.
type Session struct {
	service.Repositories
	conn *sql.Conn
}

// Acquire checks a connection out of the pool. Callers must Close the
// session on every path.
func (s *Store) Acquire(ctx context.Context) (*Session, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	return &Session{Repositories: s.repositories(conn), conn: conn}, nil
}

// Close returns the connection to the pool. Safe to call more than once.
func (s *Session) Close() error {
	if s == nil || s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}

// WithTx begins a transaction, hands fn repositories bound to it and commits
// when fn returns nil. An error or panic from fn rolls the transaction back.
func (s *Store) WithTx(ctx context.Context, fn func(repos service.Repositories) error) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(s.repositories(tx)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

var _ service.UnitOfWork = (*Store)(nil)
