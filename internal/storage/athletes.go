package storage

import (
	"context"
	"fmt"

	"github.com/herrenbrad/runplans/internal/models"
)

// GetOrCreateAthlete finds or creates an athlete by name and returns its ID.
func (db *DB) GetOrCreateAthlete(ctx context.Context, name string) (int, error) {
	var id int
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO athletes (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("upserting athlete: %w", err)
	}
	return id, nil
}

// ListAthletes returns all athletes ordered by name.
func (db *DB) ListAthletes(ctx context.Context) ([]models.AthleteRow, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, name, created_at FROM athletes ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("querying athletes: %w", err)
	}
	defer rows.Close()

	var result []models.AthleteRow
	for rows.Next() {
		var a models.AthleteRow
		if err := rows.Scan(&a.ID, &a.Name, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning athlete: %w", err)
		}
		result = append(result, a)
	}
	return result, rows.Err()
}
