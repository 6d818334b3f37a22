package model

// Bag represents a named, colored container (suitcase, box, ...) belonging
// to a trip. Items are assigned to bags many-to-many.
type Bag struct {
	ID     string `json:"id"`
	TripID string `json:"trip_id"`
	Name   string `json:"name"`
	Color  string `json:"color"`
	Icon   string `json:"icon"`
}

// BagPatch is a sparse update: nil fields are left unchanged.
type BagPatch struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
	Icon  *string `json:"icon"`
}
