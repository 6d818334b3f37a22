package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. Record tables use opaque TEXT ids
// assigned by the application, with single-column equality indexes for the
// lookups the store performs. Cross-table cleanup is done by the store as
// explicit ordered deletes, not by ON DELETE CASCADE.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id            TEXT PRIMARY KEY,
    username      TEXT NOT NULL,
    name          TEXT,
    password_hash TEXT NOT NULL,
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    deleted_at    DATETIME
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username_active
    ON users(username) WHERE deleted_at IS NULL;

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS revoked_tokens (
    jti        TEXT PRIMARY KEY,
    expires_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS trips (
    id             TEXT PRIMARY KEY,
    user_id        TEXT NOT NULL,
    title          TEXT NOT NULL,
    destination    TEXT NOT NULL,
    start_date     TEXT NOT NULL,
    end_date       TEXT NOT NULL,
    type           TEXT NOT NULL CHECK (type IN ('travel', 'moving')),
    cover_image_id TEXT,
    template_id    TEXT,
    created_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_trips_user_id ON trips(user_id);

CREATE TABLE IF NOT EXISTS bags (
    id      TEXT PRIMARY KEY,
    trip_id TEXT NOT NULL REFERENCES trips(id),
    name    TEXT NOT NULL,
    color   TEXT NOT NULL,
    icon    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_bags_trip_id ON bags(trip_id);

CREATE TABLE IF NOT EXISTS packing_categories (
    id         TEXT PRIMARY KEY,
    trip_id    TEXT NOT NULL REFERENCES trips(id),
    name       TEXT NOT NULL,
    sort_order INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_packing_categories_trip_id ON packing_categories(trip_id);

CREATE TABLE IF NOT EXISTS packing_items (
    id          TEXT PRIMARY KEY,
    trip_id     TEXT NOT NULL REFERENCES trips(id),
    category_id TEXT NOT NULL REFERENCES packing_categories(id),
    name        TEXT NOT NULL,
    quantity    INTEGER NOT NULL DEFAULT 1 CHECK (quantity >= 1),
    is_packed   INTEGER NOT NULL DEFAULT 0,
    notes       TEXT
);

CREATE INDEX IF NOT EXISTS idx_packing_items_trip_id ON packing_items(trip_id);
CREATE INDEX IF NOT EXISTS idx_packing_items_category_id ON packing_items(category_id);

CREATE TABLE IF NOT EXISTS item_bag_assignments (
    id      TEXT PRIMARY KEY,
    item_id TEXT NOT NULL REFERENCES packing_items(id),
    bag_id  TEXT NOT NULL REFERENCES bags(id)
);

CREATE INDEX IF NOT EXISTS idx_item_bag_assignments_item_id ON item_bag_assignments(item_id);
CREATE INDEX IF NOT EXISTS idx_item_bag_assignments_bag_id ON item_bag_assignments(bag_id);

CREATE UNIQUE INDEX IF NOT EXISTS idx_item_bag_assignments_pair
    ON item_bag_assignments(item_id, bag_id);

CREATE TABLE IF NOT EXISTS templates (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    description TEXT NOT NULL,
    icon        TEXT NOT NULL,
    is_system   INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_templates_is_system ON templates(is_system);

CREATE TABLE IF NOT EXISTS template_categories (
    id          TEXT PRIMARY KEY,
    template_id TEXT NOT NULL REFERENCES templates(id),
    name        TEXT NOT NULL,
    sort_order  INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_template_categories_template_id ON template_categories(template_id);

CREATE TABLE IF NOT EXISTS template_items (
    id          TEXT PRIMARY KEY,
    category_id TEXT NOT NULL REFERENCES template_categories(id),
    name        TEXT NOT NULL,
    quantity    INTEGER NOT NULL DEFAULT 1
);

CREATE INDEX IF NOT EXISTS idx_template_items_category_id ON template_items(category_id);
`

// migrations is a list of SQL statements applied in order after schema
// creation. Each migration must be idempotent. Append new migrations at
// the end.
var migrations = []string{
	// Migration 1: enforce at most one assignment per (item, bag) pair so
	// that concurrent assign calls converge on a single row.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_item_bag_assignments_pair
	     ON item_bag_assignments(item_id, bag_id)`,
}

// Migrate creates the schema and runs the migrations. Safe to call on
// every startup.
func Migrate(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}

	return nil
}
