package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/erazemk/prtljaga/internal/model"
)

// CreateBag creates a bag on a trip.
func CreateBag(ctx context.Context, db *sql.DB, tripID, name, color, icon string) (*model.Bag, error) {
	b := &model.Bag{
		ID:     uuid.NewString(),
		TripID: tripID,
		Name:   name,
		Color:  color,
		Icon:   icon,
	}

	_, err := db.ExecContext(ctx,
		`INSERT INTO bags (id, trip_id, name, color, icon) VALUES (?, ?, ?, ?, ?)`,
		b.ID, b.TripID, b.Name, b.Color, b.Icon,
	)
	if err != nil {
		return nil, fmt.Errorf("creating bag: %w", err)
	}
	return b, nil
}

// GetBag returns a bag by id, or nil if it does not exist.
func GetBag(ctx context.Context, db *sql.DB, id string) (*model.Bag, error) {
	b := &model.Bag{}
	err := db.QueryRowContext(ctx,
		`SELECT id, trip_id, name, color, icon FROM bags WHERE id = ?`, id,
	).Scan(&b.ID, &b.TripID, &b.Name, &b.Color, &b.Icon)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting bag: %w", err)
	}
	return b, nil
}

// ListBagsByTrip returns all bags on a trip.
func ListBagsByTrip(ctx context.Context, db *sql.DB, tripID string) ([]model.Bag, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, trip_id, name, color, icon FROM bags WHERE trip_id = ?`, tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing bags: %w", err)
	}
	defer rows.Close()

	var bags []model.Bag
	for rows.Next() {
		var b model.Bag
		if err := rows.Scan(&b.ID, &b.TripID, &b.Name, &b.Color, &b.Icon); err != nil {
			return nil, fmt.Errorf("scanning bag: %w", err)
		}
		bags = append(bags, b)
	}
	return bags, rows.Err()
}

// UpdateBag applies a sparse patch: only non-nil fields are written.
func UpdateBag(ctx context.Context, db *sql.DB, id string, patch model.BagPatch) error {
	set, args := patchClauses(map[string]*string{
		"name":  patch.Name,
		"color": patch.Color,
		"icon":  patch.Icon,
	})
	if len(set) == 0 {
		return nil
	}

	args = append(args, id)
	_, err := db.ExecContext(ctx,
		`UPDATE bags SET `+strings.Join(set, ", ")+` WHERE id = ?`, args...,
	)
	if err != nil {
		return fmt.Errorf("updating bag: %w", err)
	}
	return nil
}

// DeleteBag removes a bag. Every assignment referencing the bag is deleted
// first so no assignment ever points at a missing bag.
func DeleteBag(ctx context.Context, db *sql.DB, id string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM item_bag_assignments WHERE bag_id = ?`, id,
	); err != nil {
		return fmt.Errorf("deleting bag assignments: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM bags WHERE id = ?`, id,
	); err != nil {
		return fmt.Errorf("deleting bag: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing bag deletion: %w", err)
	}
	return nil
}
