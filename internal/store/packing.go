package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/erazemk/prtljaga/internal/model"
)

// ListCategoriesWithItems returns a trip's categories in ascending sort
// order, each with its items. Item order within a category is unspecified.
func ListCategoriesWithItems(ctx context.Context, db *sql.DB, tripID string) ([]model.CategoryWithItems, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, trip_id, name, sort_order
		 FROM packing_categories WHERE trip_id = ? ORDER BY sort_order`, tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var categories []model.CategoryWithItems
	for rows.Next() {
		var c model.CategoryWithItems
		if err := rows.Scan(&c.ID, &c.TripID, &c.Name, &c.SortOrder); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		c.Items = []model.PackingItem{}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	items, err := listItemsByTrip(ctx, db, tripID)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string]int, len(categories))
	for i, c := range categories {
		byCategory[c.ID] = i
	}
	for _, item := range items {
		if i, ok := byCategory[item.CategoryID]; ok {
			categories[i].Items = append(categories[i].Items, item)
		}
	}
	return categories, nil
}

// CreateCategory creates a category at the end of the trip's ordering:
// sort_order is one past the current maximum, or 0 for the first category.
func CreateCategory(ctx context.Context, db *sql.DB, tripID, name string) (*model.PackingCategory, error) {
	c := &model.PackingCategory{
		ID:     uuid.NewString(),
		TripID: tripID,
		Name:   name,
	}

	err := db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(sort_order) + 1, 0) FROM packing_categories WHERE trip_id = ?`,
		tripID,
	).Scan(&c.SortOrder)
	if err != nil {
		return nil, fmt.Errorf("computing sort order: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO packing_categories (id, trip_id, name, sort_order) VALUES (?, ?, ?, ?)`,
		c.ID, c.TripID, c.Name, c.SortOrder,
	)
	if err != nil {
		return nil, fmt.Errorf("creating category: %w", err)
	}
	return c, nil
}

// CreateItem inserts a new packing item. Quantity defaults to 1 and the
// packed flag starts false.
func CreateItem(ctx context.Context, db *sql.DB, item *model.PackingItem) (*model.PackingItem, error) {
	item.ID = uuid.NewString()
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	item.IsPacked = false

	_, err := db.ExecContext(ctx,
		`INSERT INTO packing_items (id, trip_id, category_id, name, quantity, is_packed, notes)
		 VALUES (?, ?, ?, ?, ?, 0, ?)`,
		item.ID, item.TripID, item.CategoryID, item.Name, item.Quantity, nullString(item.Notes),
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}
	return item, nil
}

// GetItem returns an item by id, or nil if it does not exist.
func GetItem(ctx context.Context, db *sql.DB, id string) (*model.PackingItem, error) {
	item := &model.PackingItem{}
	var notes sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, trip_id, category_id, name, quantity, is_packed, notes
		 FROM packing_items WHERE id = ?`, id,
	).Scan(&item.ID, &item.TripID, &item.CategoryID, &item.Name, &item.Quantity, &item.IsPacked, &notes)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	item.Notes = notes.String
	return item, nil
}

// UpdateItem applies a sparse patch: only non-nil fields are written,
// everything else keeps its previous value.
func UpdateItem(ctx context.Context, db *sql.DB, id string, patch model.ItemPatch) error {
	var set []string
	var args []any

	if patch.Name != nil {
		set = append(set, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Quantity != nil {
		set = append(set, "quantity = ?")
		args = append(args, *patch.Quantity)
	}
	if patch.IsPacked != nil {
		set = append(set, "is_packed = ?")
		args = append(args, *patch.IsPacked)
	}
	if patch.Notes != nil {
		set = append(set, "notes = ?")
		args = append(args, *patch.Notes)
	}
	if patch.CategoryID != nil {
		set = append(set, "category_id = ?")
		args = append(args, *patch.CategoryID)
	}
	if len(set) == 0 {
		return nil
	}

	args = append(args, id)
	_, err := db.ExecContext(ctx,
		`UPDATE packing_items SET `+strings.Join(set, ", ")+` WHERE id = ?`, args...,
	)
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}
	return nil
}

// TogglePacked flips an item's packed flag.
func TogglePacked(ctx context.Context, db *sql.DB, id string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE packing_items SET is_packed = NOT is_packed WHERE id = ?`, id,
	)
	if err != nil {
		return fmt.Errorf("toggling packed flag: %w", err)
	}
	return nil
}

// DeleteItem removes an item. Its bag assignments are deleted first so no
// assignment ever references a missing item.
func DeleteItem(ctx context.Context, db *sql.DB, id string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM item_bag_assignments WHERE item_id = ?`, id,
	); err != nil {
		return fmt.Errorf("deleting item assignments: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM packing_items WHERE id = ?`, id,
	); err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing item deletion: %w", err)
	}
	return nil
}

// AssignToBag assigns an item to a bag and returns the assignment id.
// Idempotent: a second call for the same pair returns the existing
// assignment. Uses INSERT OR IGNORE + re-SELECT so concurrent duplicate
// calls converge on a single row.
func AssignToBag(ctx context.Context, db *sql.DB, itemID, bagID string) (string, error) {
	_, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO item_bag_assignments (id, item_id, bag_id) VALUES (?, ?, ?)`,
		uuid.NewString(), itemID, bagID,
	)
	if err != nil {
		return "", fmt.Errorf("assigning item to bag: %w", err)
	}

	// Always read back (either our insert or the existing row).
	var id string
	err = db.QueryRowContext(ctx,
		`SELECT id FROM item_bag_assignments WHERE item_id = ? AND bag_id = ?`,
		itemID, bagID,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("reading assignment: %w", err)
	}
	return id, nil
}

// UnassignFromBag removes the assignment for the (item, bag) pair. Removing
// an absent pair is a no-op, not an error.
func UnassignFromBag(ctx context.Context, db *sql.DB, itemID, bagID string) error {
	_, err := db.ExecContext(ctx,
		`DELETE FROM item_bag_assignments WHERE item_id = ? AND bag_id = ?`,
		itemID, bagID,
	)
	if err != nil {
		return fmt.Errorf("unassigning item from bag: %w", err)
	}
	return nil
}

// ListAssignmentsByTrip returns every bag assignment across all of the
// trip's items, used to reconstruct the item-to-bags fan-out.
func ListAssignmentsByTrip(ctx context.Context, db *sql.DB, tripID string) ([]model.ItemBagAssignment, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT a.id, a.item_id, a.bag_id
		 FROM item_bag_assignments a
		 JOIN packing_items i ON i.id = a.item_id
		 WHERE i.trip_id = ?`, tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing assignments: %w", err)
	}
	defer rows.Close()

	var assignments []model.ItemBagAssignment
	for rows.Next() {
		var a model.ItemBagAssignment
		if err := rows.Scan(&a.ID, &a.ItemID, &a.BagID); err != nil {
			return nil, fmt.Errorf("scanning assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// listItemsByTrip returns all items for a trip.
func listItemsByTrip(ctx context.Context, db *sql.DB, tripID string) ([]model.PackingItem, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, trip_id, category_id, name, quantity, is_packed, notes
		 FROM packing_items WHERE trip_id = ?`, tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []model.PackingItem
	for rows.Next() {
		var item model.PackingItem
		var notes sql.NullString
		if err := rows.Scan(&item.ID, &item.TripID, &item.CategoryID, &item.Name, &item.Quantity, &item.IsPacked, &notes); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		item.Notes = notes.String
		items = append(items, item)
	}
	return items, rows.Err()
}
