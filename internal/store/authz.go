package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Sentinel errors for the guard. The API layer maps these to 404 and 403.
var (
	ErrNotFound      = errors.New("not found")
	ErrNotAuthorized = errors.New("not authorized")
)

// TripOwner returns the owner id of a trip, or ErrNotFound.
func TripOwner(ctx context.Context, db *sql.DB, tripID string) (string, error) {
	var owner string
	err := db.QueryRowContext(ctx,
		`SELECT user_id FROM trips WHERE id = ?`, tripID,
	).Scan(&owner)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("resolving trip owner: %w", err)
	}
	return owner, nil
}

// AuthorizeTrip verifies that userID owns the trip. Returns ErrNotFound if
// the trip does not exist and ErrNotAuthorized on an ownership mismatch.
// The owner is re-derived on every call, never cached.
func AuthorizeTrip(ctx context.Context, db *sql.DB, tripID, userID string) error {
	owner, err := TripOwner(ctx, db, tripID)
	if err != nil {
		return err
	}
	if owner != userID {
		return ErrNotAuthorized
	}
	return nil
}

// AuthorizeItem verifies trip ownership one hop away, through the item row.
func AuthorizeItem(ctx context.Context, db *sql.DB, itemID, userID string) error {
	var tripID string
	err := db.QueryRowContext(ctx,
		`SELECT trip_id FROM packing_items WHERE id = ?`, itemID,
	).Scan(&tripID)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("resolving item trip: %w", err)
	}
	return AuthorizeTrip(ctx, db, tripID, userID)
}

// AuthorizeBag verifies trip ownership one hop away, through the bag row.
func AuthorizeBag(ctx context.Context, db *sql.DB, bagID, userID string) error {
	var tripID string
	err := db.QueryRowContext(ctx,
		`SELECT trip_id FROM bags WHERE id = ?`, bagID,
	).Scan(&tripID)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("resolving bag trip: %w", err)
	}
	return AuthorizeTrip(ctx, db, tripID, userID)
}
