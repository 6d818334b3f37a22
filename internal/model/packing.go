package model

// PackingCategory is a named, ordered grouping of items within a trip.
type PackingCategory struct {
	ID        string `json:"id"`
	TripID    string `json:"trip_id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
}

// PackingItem is a single item on a trip's packing list.
type PackingItem struct {
	ID         string `json:"id"`
	TripID     string `json:"trip_id"`
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	IsPacked   bool   `json:"is_packed"`
	Notes      string `json:"notes,omitempty"`
}

// CategoryWithItems is a category with its items, as returned by list reads.
type CategoryWithItems struct {
	PackingCategory
	Items []PackingItem `json:"items"`
}

// ItemBagAssignment links an item to a bag. At most one assignment exists
// per (item, bag) pair.
type ItemBagAssignment struct {
	ID     string `json:"id"`
	ItemID string `json:"item_id"`
	BagID  string `json:"bag_id"`
}

// ItemPatch is a sparse update: nil fields are left unchanged.
type ItemPatch struct {
	Name       *string `json:"name"`
	Quantity   *int    `json:"quantity"`
	IsPacked   *bool   `json:"is_packed"`
	Notes      *string `json:"notes"`
	CategoryID *string `json:"category_id"`
}
