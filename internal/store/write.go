package store

import (
	"context"
	"fmt"
)

// Conversion is one recorded circuit → URL conversion.
type Conversion struct {
	Seq     int64  `json:"seq"`
	ID      string `json:"id"`
	Name    string `json:"name"`
	Source  string `json:"source"`
	Digest  string `json:"digest"`
	Columns int    `json:"columns"`
	Ops     int    `json:"ops"`
	URL     string `json:"url"`
}

// Record appends a conversion to the log and returns it with ID and Seq
// filled in. An empty ID is replaced by one from the store's generator.
// Writing the same ID twice is a no-op; the original record is returned.
func (s *Store) Record(ctx context.Context, c Conversion) (Conversion, error) {
	if c.ID == "" {
		c.ID = s.ids.Generate()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO conversions (id, name, source, digest, columns, ops, url)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		c.ID,
		c.Name,
		c.Source,
		c.Digest,
		c.Columns,
		c.Ops,
		c.URL,
	)
	if err != nil {
		return Conversion{}, fmt.Errorf("record conversion: %w", err)
	}

	stored, err := s.Get(ctx, c.ID)
	if err != nil {
		return Conversion{}, fmt.Errorf("record conversion: %w", err)
	}
	return *stored, nil
}
