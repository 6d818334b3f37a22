package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/erazemk/prtljaga/internal/model"
)

// ListTemplates returns all system templates.
func ListTemplates(ctx context.Context, db *sql.DB) ([]model.Template, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, description, icon, is_system FROM templates WHERE is_system = 1`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	defer rows.Close()

	var templates []model.Template
	for rows.Next() {
		var t model.Template
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.Icon, &t.IsSystem); err != nil {
			return nil, fmt.Errorf("scanning template: %w", err)
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

// GetTemplate returns a template with its categories (in sort order) and
// their items, or nil if it does not exist.
func GetTemplate(ctx context.Context, db *sql.DB, id string) (*model.TemplateWithCategories, error) {
	t := &model.TemplateWithCategories{}
	err := db.QueryRowContext(ctx,
		`SELECT id, name, description, icon, is_system FROM templates WHERE id = ?`, id,
	).Scan(&t.ID, &t.Name, &t.Description, &t.Icon, &t.IsSystem)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting template: %w", err)
	}

	categories, err := listTemplateCategories(ctx, db, id)
	if err != nil {
		return nil, err
	}

	t.Categories = make([]model.TemplateCategoryWithItems, 0, len(categories))
	for _, c := range categories {
		items, err := listTemplateItems(ctx, db, c.ID)
		if err != nil {
			return nil, err
		}
		t.Categories = append(t.Categories, model.TemplateCategoryWithItems{
			TemplateCategory: c,
			Items:            items,
		})
	}
	return t, nil
}

// ApplyTemplateToTrip copies a template's categories and items onto a trip
// as fresh rows: names, sort orders and quantities are preserved, the
// packed flag starts false and notes are empty. The copy is one-way — the
// new rows keep no link back to the template. All inserts run in one
// transaction so a failed copy leaves no partial state.
func ApplyTemplateToTrip(ctx context.Context, db *sql.DB, tripID, templateID string) error {
	categories, err := listTemplateCategories(ctx, db, templateID)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, c := range categories {
		newCategoryID := uuid.NewString()
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO packing_categories (id, trip_id, name, sort_order) VALUES (?, ?, ?, ?)`,
			newCategoryID, tripID, c.Name, c.SortOrder,
		); err != nil {
			return fmt.Errorf("copying template category: %w", err)
		}

		items, err := listTemplateItems(ctx, db, c.ID)
		if err != nil {
			return err
		}
		for _, item := range items {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO packing_items (id, trip_id, category_id, name, quantity, is_packed, notes)
				 VALUES (?, ?, ?, ?, ?, 0, NULL)`,
				uuid.NewString(), tripID, newCategoryID, item.Name, item.Quantity,
			); err != nil {
				return fmt.Errorf("copying template item: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing template copy: %w", err)
	}
	return nil
}

func listTemplateCategories(ctx context.Context, db *sql.DB, templateID string) ([]model.TemplateCategory, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, template_id, name, sort_order
		 FROM template_categories WHERE template_id = ? ORDER BY sort_order`, templateID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing template categories: %w", err)
	}
	defer rows.Close()

	var categories []model.TemplateCategory
	for rows.Next() {
		var c model.TemplateCategory
		if err := rows.Scan(&c.ID, &c.TemplateID, &c.Name, &c.SortOrder); err != nil {
			return nil, fmt.Errorf("scanning template category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func listTemplateItems(ctx context.Context, db *sql.DB, categoryID string) ([]model.TemplateItem, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, category_id, name, quantity
		 FROM template_items WHERE category_id = ?`, categoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing template items: %w", err)
	}
	defer rows.Close()

	var items []model.TemplateItem
	for rows.Next() {
		var item model.TemplateItem
		if err := rows.Scan(&item.ID, &item.CategoryID, &item.Name, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scanning template item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
