package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

type seedItem struct {
	name     string
	quantity int
}

type seedCategory struct {
	name  string
	items []seedItem
}

type seedTemplate struct {
	name        string
	description string
	icon        string
	categories  []seedCategory
}

// systemTemplates is the built-in template catalog. Category sort order is
// positional.
var systemTemplates = []seedTemplate{
	{
		name:        "Beach Vacation",
		description: "Everything you need for a perfect beach getaway",
		icon:        "beach",
		categories: []seedCategory{
			{name: "Clothing", items: []seedItem{
				{"Swimsuit", 2}, {"Shorts", 3}, {"T-shirts", 4},
				{"Sundress", 2}, {"Sandals", 2}, {"Cover-up", 1},
			}},
			{name: "Beach Essentials", items: []seedItem{
				{"Sunscreen SPF 50", 1}, {"Beach towel", 2}, {"Sunglasses", 1},
				{"Sun hat", 1}, {"Aloe vera gel", 1},
			}},
			{name: "Gear", items: []seedItem{
				{"Snorkel set", 1}, {"Waterproof phone pouch", 1},
				{"Beach bag", 1}, {"Cooler bag", 1},
			}},
			{name: "Toiletries", items: []seedItem{
				{"Shampoo", 1}, {"Conditioner", 1}, {"Toothbrush", 1},
				{"Toothpaste", 1}, {"Deodorant", 1},
			}},
		},
	},
	{
		name:        "Hiking Adventure",
		description: "Gear up for trails and outdoor exploration",
		icon:        "hiking",
		categories: []seedCategory{
			{name: "Clothing", items: []seedItem{
				{"Hiking boots", 1}, {"Moisture-wicking shirts", 3}, {"Hiking pants", 2},
				{"Wool socks", 4}, {"Rain jacket", 1}, {"Fleece layer", 1},
			}},
			{name: "Gear", items: []seedItem{
				{"Backpack (40L)", 1}, {"Water bottles", 2}, {"Headlamp", 1},
				{"Trekking poles", 1}, {"First aid kit", 1},
			}},
			{name: "Navigation & Safety", items: []seedItem{
				{"Trail map", 1}, {"Compass", 1}, {"Whistle", 1},
				{"Emergency blanket", 1},
			}},
			{name: "Food & Hydration", items: []seedItem{
				{"Trail mix", 3}, {"Energy bars", 6},
				{"Water purification tablets", 1}, {"Electrolyte packets", 4},
			}},
		},
	},
	{
		name:        "Business Trip",
		description: "Professional packing for work travel",
		icon:        "briefcase",
		categories: []seedCategory{
			{name: "Business Attire", items: []seedItem{
				{"Suits", 2}, {"Dress shirts", 3}, {"Dress shoes", 1},
				{"Ties", 2}, {"Belt", 1}, {"Dress socks", 4},
			}},
			{name: "Tech & Documents", items: []seedItem{
				{"Laptop", 1}, {"Laptop charger", 1}, {"Phone charger", 1},
				{"Business cards", 1}, {"Portfolio/notebook", 1},
			}},
			{name: "Casual Wear", items: []seedItem{
				{"Casual pants", 1}, {"Casual shirt", 2},
				{"Comfortable shoes", 1}, {"Underwear", 4},
			}},
			{name: "Toiletries", items: []seedItem{
				{"Travel toiletry kit", 1}, {"Cologne/perfume", 1}, {"Lint roller", 1},
				{"Stain remover pen", 1}, {"Wrinkle release spray", 1},
			}},
		},
	},
	{
		name:        "Winter Getaway",
		description: "Stay warm and prepared for cold weather destinations",
		icon:        "snowflake",
		categories: []seedCategory{
			{name: "Outerwear", items: []seedItem{
				{"Winter jacket", 1}, {"Gloves", 2}, {"Wool scarf", 1},
				{"Beanie/winter hat", 1}, {"Snow boots", 1},
			}},
			{name: "Base Layers", items: []seedItem{
				{"Thermal tops", 3}, {"Thermal leggings", 3},
				{"Wool socks", 5}, {"Fleece pullover", 2},
			}},
			{name: "Winter Gear", items: []seedItem{
				{"Hand warmers", 4}, {"Lip balm with SPF", 1}, {"Moisturizer", 1},
				{"Neck gaiter", 1}, {"Ski goggles", 1},
			}},
			{name: "Essentials", items: []seedItem{
				{"Insulated water bottle", 1}, {"Portable charger", 1},
				{"Travel blanket", 1}, {"Sunscreen (for snow glare)", 1},
			}},
		},
	},
	{
		name:        "Moving Day",
		description: "Organize your move with a comprehensive checklist",
		icon:        "truck",
		categories: []seedCategory{
			{name: "Packing Supplies", items: []seedItem{
				{"Moving boxes (large)", 10}, {"Moving boxes (medium)", 15},
				{"Moving boxes (small)", 10}, {"Packing tape", 4},
				{"Bubble wrap rolls", 3}, {"Packing paper", 2},
			}},
			{name: "Labeling & Organization", items: []seedItem{
				{"Colored labels", 1}, {"Permanent markers", 4},
				{"Room inventory sheets", 1}, {"Fragile stickers", 1},
			}},
			{name: "Tools", items: []seedItem{
				{"Box cutter", 2}, {"Screwdriver set", 1}, {"Furniture dolly", 1},
				{"Moving straps", 2}, {"Furniture pads/blankets", 6},
			}},
			{name: "Essentials Box", items: []seedItem{
				{"Toilet paper", 2}, {"Paper towels", 1}, {"Basic cleaning supplies", 1},
				{"Snacks and water", 1}, {"Phone charger", 1},
				{"Important documents folder", 1},
			}},
		},
	},
}

// SeedTemplates inserts the system template catalog on first run. It is a
// no-op when system templates already exist.
func SeedTemplates(ctx context.Context, db *sql.DB) error {
	var count int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM templates WHERE is_system = 1`,
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("checking existing templates: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, tpl := range systemTemplates {
		templateID := uuid.NewString()
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO templates (id, name, description, icon, is_system) VALUES (?, ?, ?, ?, 1)`,
			templateID, tpl.name, tpl.description, tpl.icon,
		); err != nil {
			return fmt.Errorf("seeding template %q: %w", tpl.name, err)
		}

		for sortOrder, category := range tpl.categories {
			categoryID := uuid.NewString()
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO template_categories (id, template_id, name, sort_order) VALUES (?, ?, ?, ?)`,
				categoryID, templateID, category.name, sortOrder,
			); err != nil {
				return fmt.Errorf("seeding template category %q: %w", category.name, err)
			}

			for _, item := range category.items {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO template_items (id, category_id, name, quantity) VALUES (?, ?, ?, ?)`,
					uuid.NewString(), categoryID, item.name, item.quantity,
				); err != nil {
					return fmt.Errorf("seeding template item %q: %w", item.name, err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing template seed: %w", err)
	}
	return nil
}
