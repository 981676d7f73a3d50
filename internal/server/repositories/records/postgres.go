package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/jobkeeper/internal/common"
	"github.com/dmitrijs2005/jobkeeper/internal/dbx"
	"github.com/google/uuid"
)

type PostgresRepository struct {
	db    dbx.DBTX
	table Table
}

func NewPostgresRepository(db dbx.DBTX, table Table) *PostgresRepository {
	return &PostgresRepository{db: db, table: table}
}

func (r *PostgresRepository) columnList() string {
	names := make([]string, len(r.table.Columns))
	for i, c := range r.table.Columns {
		names[i] = c.Name
	}
	return strings.Join(names, ", ")
}

func (r *PostgresRepository) List(ctx context.Context, userID string) ([]Row, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE user_id = $1 ORDER BY %s`,
		r.columnList(), r.table.Name, r.table.OrderBy)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]Row, 0)
	for rows.Next() {
		row, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, userID string, fields map[string]any) (Row, error) {
	names, args, err := r.bindAll(fields)
	if err != nil {
		return nil, err
	}

	cols := append([]string{"user_id"}, names...)
	args = append([]any{userID}, args...)
	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING %s`,
		r.table.Name, strings.Join(cols, ", "), strings.Join(placeholders, ", "), r.columnList())

	row, err := r.scan(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, dbx.WriteError(err)
	}
	return row, nil
}

func (r *PostgresRepository) Update(ctx context.Context, userID, id string, fields map[string]any) (Row, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrNotFound
	}

	names, args, err := r.bindAll(fields)
	if err != nil {
		return nil, err
	}

	set := make([]string, 0, len(names)+1)
	for i, n := range names {
		set = append(set, fmt.Sprintf("%s = $%d", n, i+1))
	}
	set = append(set, "updated_at = now()")
	args = append(args, id, userID)

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $%d AND user_id = $%d RETURNING %s`,
		r.table.Name, strings.Join(set, ", "), len(args)-1, len(args), r.columnList())

	row, err := r.scan(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, dbx.WriteError(err)
	}
	return row, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrNotFound
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 AND user_id = $2`, r.table.Name)
	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.ExpectOne(res)
}

// bindAll converts fields in column-name order so generated SQL is stable.
func (r *PostgresRepository) bindAll(fields map[string]any) ([]string, []any, error) {
	names := make([]string, 0, len(fields))
	for n := range fields {
		names = append(names, n)
	}
	sort.Strings(names)

	args := make([]any, len(names))
	for i, n := range names {
		v, err := r.table.bind(n, fields[n])
		if err != nil {
			return nil, nil, err
		}
		args[i] = v
	}
	return names, args, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *PostgresRepository) scan(s scanner) (Row, error) {
	dest := make([]any, len(r.table.Columns))
	for i, c := range r.table.Columns {
		switch c.Kind {
		case Int:
			dest[i] = &sql.NullInt64{}
		case Bool:
			dest[i] = &sql.NullBool{}
		case Date, Timestamp:
			dest[i] = &sql.NullTime{}
		default:
			dest[i] = &sql.NullString{}
		}
	}

	if err := s.Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan %s: %w", r.table.Name, err)
	}

	row := make(Row, len(dest))
	for i, c := range r.table.Columns {
		var v any
		switch d := dest[i].(type) {
		case *sql.NullString:
			if d.Valid {
				v = d.String
			}
		case *sql.NullInt64:
			if d.Valid {
				v = d.Int64
			}
		case *sql.NullBool:
			if d.Valid {
				v = d.Bool
			}
		case *sql.NullTime:
			if d.Valid {
				v = d.Time.UTC()
			}
		}
		row[c.Name] = v
	}
	return row, nil
}
