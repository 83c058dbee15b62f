package persistence

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	v := nt.Time.UTC()
	return &v
}

// insertReturningID runs an INSERT ... RETURNING id and yields the new key.
func insertReturningID(ctx context.Context, q DBTX, b sq.InsertBuilder) (int64, error) {
	query, args, err := b.Suffix("RETURNING id").ToSql()
	if err != nil {
		return 0, apperror.NewInternal("failed to build insert query", err)
	}
	var id int64
	if err := q.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// stringsByParent reads (parent_id, value) rows into ordered lists keyed by
// parent. Rows must already be sorted by insertion order.
func stringsByParent(ctx context.Context, q DBTX, b sq.SelectBuilder) (map[int64][]string, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build child list query", err)
	}
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query child list", err)
	}
	defer rows.Close()

	out := make(map[int64][]string)
	for rows.Next() {
		var parentID int64
		var value string
		if err := rows.Scan(&parentID, &value); err != nil {
			return nil, apperror.NewInternal("failed to scan child list row", err)
		}
		out[parentID] = append(out[parentID], value)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating child list rows", err)
	}
	return out, nil
}

// insertStrings writes one child row per value. Rows go in one at a time so
// ids follow the order of values.
func insertStrings(ctx context.Context, q DBTX, sb sq.StatementBuilderType, table, column, parentColumn string, parentID int64, values []string, now time.Time) error {
	for _, v := range values {
		query, args, err := sb.Insert(table).
			Columns(column, parentColumn, "created_at", "updated_at").
			Values(v, parentID, now, now).
			ToSql()
		if err != nil {
			return apperror.NewInternal("failed to build child insert query", err)
		}
		if _, err := q.ExecContext(ctx, query, args...); err != nil {
			if isForeignKeyViolation(err) {
				return apperror.NewInvalidInput(table+" references a missing parent", err)
			}
			return apperror.NewInternal("failed to insert into "+table, err)
		}
	}
	return nil
}

// utcPtr keeps a nil time nil so it is stored as NULL.
func utcPtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}
