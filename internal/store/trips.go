package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/erazemk/prtljaga/internal/model"
)

// tripColumns is the select list shared by trip reads, including the
// derived progress counts. Counts are always computed from packing_items,
// never stored.
const tripColumns = `t.id, t.user_id, t.title, t.destination, t.start_date, t.end_date,
       t.type, t.cover_image_id, t.template_id, t.created_at,
       (SELECT COUNT(*) FROM packing_items i WHERE i.trip_id = t.id AND i.is_packed = 1),
       (SELECT COUNT(*) FROM packing_items i WHERE i.trip_id = t.id)`

// CreateTrip inserts a new trip owned by trip.UserID, assigning the id and
// creation time.
func CreateTrip(ctx context.Context, db *sql.DB, trip *model.Trip) (*model.TripWithProgress, error) {
	trip.ID = uuid.NewString()
	trip.CreatedAt = time.Now().UTC()

	_, err := db.ExecContext(ctx,
		`INSERT INTO trips (id, user_id, title, destination, start_date, end_date, type, cover_image_id, template_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		trip.ID, trip.UserID, trip.Title, trip.Destination, trip.StartDate, trip.EndDate,
		trip.Type, nullString(trip.CoverImageID), nullString(trip.TemplateID), trip.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating trip: %w", err)
	}

	return GetTrip(ctx, db, trip.ID)
}

// GetTrip returns a trip with its progress counts, or nil if it does not
// exist. The read is not ownership-filtered.
func GetTrip(ctx context.Context, db *sql.DB, id string) (*model.TripWithProgress, error) {
	t := &model.TripWithProgress{}
	var coverImageID, templateID sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT `+tripColumns+` FROM trips t WHERE t.id = ?`, id,
	).Scan(&t.ID, &t.UserID, &t.Title, &t.Destination, &t.StartDate, &t.EndDate,
		&t.Type, &coverImageID, &templateID, &t.CreatedAt, &t.PackedCount, &t.TotalCount)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting trip: %w", err)
	}
	t.CoverImageID = coverImageID.String
	t.TemplateID = templateID.String
	return t, nil
}

// ListTrips returns all trips owned by userID with progress counts, most
// recent start date first.
func ListTrips(ctx context.Context, db *sql.DB, userID string) ([]model.TripWithProgress, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+tripColumns+` FROM trips t WHERE t.user_id = ? ORDER BY t.start_date DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing trips: %w", err)
	}
	defer rows.Close()

	var trips []model.TripWithProgress
	for rows.Next() {
		var t model.TripWithProgress
		var coverImageID, templateID sql.NullString
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Destination, &t.StartDate, &t.EndDate,
			&t.Type, &coverImageID, &templateID, &t.CreatedAt, &t.PackedCount, &t.TotalCount); err != nil {
			return nil, fmt.Errorf("scanning trip: %w", err)
		}
		t.CoverImageID = coverImageID.String
		t.TemplateID = templateID.String
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

// UpdateTrip applies a sparse patch: only non-nil fields are written.
func UpdateTrip(ctx context.Context, db *sql.DB, id string, patch model.TripPatch) error {
	set, args := patchClauses(map[string]*string{
		"title":          patch.Title,
		"destination":    patch.Destination,
		"start_date":     patch.StartDate,
		"end_date":       patch.EndDate,
		"type":           patch.Type,
		"cover_image_id": patch.CoverImageID,
	})
	if len(set) == 0 {
		return nil
	}

	args = append(args, id)
	_, err := db.ExecContext(ctx,
		`UPDATE trips SET `+strings.Join(set, ", ")+` WHERE id = ?`, args...,
	)
	if err != nil {
		return fmt.Errorf("updating trip: %w", err)
	}
	return nil
}

// DeleteTrip removes a trip and everything under it. The deletion plan is
// ordered so no orphan rows remain: item assignments, items, categories,
// bag assignments, bags, then the trip itself, all in one transaction.
func DeleteTrip(ctx context.Context, db *sql.DB, id string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	steps := []string{
		`DELETE FROM item_bag_assignments WHERE item_id IN
		     (SELECT id FROM packing_items WHERE trip_id = ?)`,
		`DELETE FROM packing_items WHERE trip_id = ?`,
		`DELETE FROM packing_categories WHERE trip_id = ?`,
		`DELETE FROM item_bag_assignments WHERE bag_id IN
		     (SELECT id FROM bags WHERE trip_id = ?)`,
		`DELETE FROM bags WHERE trip_id = ?`,
		`DELETE FROM trips WHERE id = ?`,
	}
	for _, q := range steps {
		if _, err := tx.ExecContext(ctx, q, id); err != nil {
			return fmt.Errorf("deleting trip: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing trip deletion: %w", err)
	}
	return nil
}

// nullString maps "" to NULL for optional columns.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// patchClauses builds SET clauses for the non-nil fields of a patch.
func patchClauses(fields map[string]*string) ([]string, []any) {
	var set []string
	var args []any
	for column, value := range fields {
		if value != nil {
			set = append(set, column+" = ?")
			args = append(args, *value)
		}
	}
	return set, args
}
