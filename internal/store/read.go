package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when no record has the requested id.
var ErrNotFound = errors.New("conversion not found")

const selectColumns = `SELECT seq, id, name, source, digest, columns, ops, url FROM conversions`

// Get returns the conversion with the given id.
func (s *Store) Get(ctx context.Context, id string) (*Conversion, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)
	c, err := scanConversion(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns the most recent conversions, newest first. A limit of zero
// or less returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]Conversion, error) {
	query := selectColumns + ` ORDER BY seq DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	return s.queryConversions(ctx, query, args...)
}

// FindByDigest returns every conversion that produced the given grid,
// oldest first.
func (s *Store) FindByDigest(ctx context.Context, digest string) ([]Conversion, error) {
	return s.queryConversions(ctx, selectColumns+` WHERE digest = ? ORDER BY seq ASC`, digest)
}

func (s *Store) queryConversions(ctx context.Context, query string, args ...any) ([]Conversion, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query conversions: %w", err)
	}
	defer rows.Close()

	conversions := []Conversion{}
	for rows.Next() {
		c, err := scanConversion(rows)
		if err != nil {
			return nil, err
		}
		conversions = append(conversions, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversions: %w", err)
	}
	return conversions, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanConversion(row scanner) (Conversion, error) {
	var c Conversion
	err := row.Scan(&c.Seq, &c.ID, &c.Name, &c.Source, &c.Digest, &c.Columns, &c.Ops, &c.URL)
	if errors.Is(err, sql.ErrNoRows) {
		return c, err
	}
	if err != nil {
		return c, fmt.Errorf("scan conversion: %w", err)
	}
	return c, nil
}
