package model

import "time"

// Trip represents a travel or moving event owned by a single user. It is the
// container for packing categories, items and bags.
type Trip struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Title        string    `json:"title"`
	Destination  string    `json:"destination"`
	StartDate    string    `json:"start_date"` // ISO date (YYYY-MM-DD)
	EndDate      string    `json:"end_date"`
	Type         string    `json:"type"`
	CoverImageID string    `json:"cover_image_id,omitempty"`
	TemplateID   string    `json:"template_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Trip types.
const (
	TripTypeTravel = "travel"
	TripTypeMoving = "moving"
)

// ValidTripType reports whether t is a known trip type.
func ValidTripType(t string) bool {
	return t == TripTypeTravel || t == TripTypeMoving
}

// TripWithProgress is a trip annotated with derived packing progress counts.
// Progress is never stored, only computed at read time.
type TripWithProgress struct {
	Trip
	PackedCount int `json:"packed_count"`
	TotalCount  int `json:"total_count"`
}

// Progress returns the packed fraction in [0, 1]. A trip with no items
// reports 0, not NaN.
func (t *TripWithProgress) Progress() float64 {
	if t.TotalCount == 0 {
		return 0
	}
	return float64(t.PackedCount) / float64(t.TotalCount)
}

// TripPatch is a sparse update: nil fields are left unchanged.
type TripPatch struct {
	Title        *string `json:"title"`
	Destination  *string `json:"destination"`
	StartDate    *string `json:"start_date"`
	EndDate      *string `json:"end_date"`
	Type         *string `json:"type"`
	CoverImageID *string `json:"cover_image_id"`
}
