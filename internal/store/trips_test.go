package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/erazemk/prtljaga/internal/db"
	"github.com/erazemk/prtljaga/internal/model"
)

func newTrip(t *testing.T, database *sql.DB, userID, title, startDate string) *model.TripWithProgress {
	t.Helper()
	trip, err := CreateTrip(context.Background(), database, &model.Trip{
		UserID:      userID,
		Title:       title,
		Destination: "Lisbon",
		StartDate:   startDate,
		EndDate:     "2026-10-01",
		Type:        model.TripTypeTravel,
	})
	if err != nil {
		t.Fatalf("CreateTrip: %v", err)
	}
	return trip
}

func TestCreateAndGetTrip(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	trip := newTrip(t, database, "user-1", "Summer in Lisbon", "2026-09-20")
	if trip.ID == "" {
		t.Fatal("expected trip id to be assigned")
	}
	if trip.UserID != "user-1" {
		t.Errorf("expected owner 'user-1', got %q", trip.UserID)
	}
	if trip.TotalCount != 0 || trip.PackedCount != 0 {
		t.Errorf("expected zero counts on a fresh trip, got %d/%d", trip.PackedCount, trip.TotalCount)
	}
	if trip.Progress() != 0 {
		t.Errorf("expected progress 0 for empty trip, got %f", trip.Progress())
	}

	got, err := GetTrip(ctx, database, trip.ID)
	if err != nil {
		t.Fatalf("GetTrip: %v", err)
	}
	if got == nil || got.Title != "Summer in Lisbon" {
		t.Errorf("expected to read back the trip, got %+v", got)
	}
}

func TestGetTripMissing(t *testing.T) {
	database := db.NewTestDB(t)

	got, err := GetTrip(context.Background(), database, "no-such-trip")
	if err != nil {
		t.Fatalf("GetTrip: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing trip, got %+v", got)
	}
}

func TestListTripsProgressCounts(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	trip := newTrip(t, database, "user-1", "Packed Trip", "2026-09-20")
	empty := newTrip(t, database, "user-1", "Empty Trip", "2026-10-05")
	newTrip(t, database, "user-2", "Someone Else", "2026-09-01")

	category, _ := CreateCategory(ctx, database, trip.ID, "Clothing")
	for i, packed := range []bool{true, true, false} {
		item, err := CreateItem(ctx, database, &model.PackingItem{
			TripID:     trip.ID,
			CategoryID: category.ID,
			Name:       "Item",
			Quantity:   i + 1,
		})
		if err != nil {
			t.Fatalf("CreateItem: %v", err)
		}
		if packed {
			TogglePacked(ctx, database, item.ID)
		}
	}

	trips, err := ListTrips(ctx, database, "user-1")
	if err != nil {
		t.Fatalf("ListTrips: %v", err)
	}
	if len(trips) != 2 {
		t.Fatalf("expected 2 trips for user-1, got %d", len(trips))
	}

	// Most future start date first.
	if trips[0].ID != empty.ID {
		t.Errorf("expected trips ordered by start date descending")
	}
	if trips[0].TotalCount != 0 || trips[0].Progress() != 0 {
		t.Errorf("expected empty trip to report 0 progress, got %d items, %f",
			trips[0].TotalCount, trips[0].Progress())
	}
	if trips[1].PackedCount != 2 || trips[1].TotalCount != 3 {
		t.Errorf("expected counts 2/3, got %d/%d", trips[1].PackedCount, trips[1].TotalCount)
	}
}

func TestUpdateTripPartial(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	trip := newTrip(t, database, "user-1", "Old Title", "2026-09-20")

	title := "New Title"
	if err := UpdateTrip(ctx, database, trip.ID, model.TripPatch{Title: &title}); err != nil {
		t.Fatalf("UpdateTrip: %v", err)
	}

	got, _ := GetTrip(ctx, database, trip.ID)
	if got.Title != "New Title" {
		t.Errorf("expected updated title, got %q", got.Title)
	}
	if got.Destination != "Lisbon" {
		t.Errorf("expected destination untouched, got %q", got.Destination)
	}
	if got.StartDate != "2026-09-20" {
		t.Errorf("expected start date untouched, got %q", got.StartDate)
	}
}

func TestUpdateTripEmptyPatch(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	trip := newTrip(t, database, "user-1", "Unchanged", "2026-09-20")
	if err := UpdateTrip(ctx, database, trip.ID, model.TripPatch{}); err != nil {
		t.Fatalf("UpdateTrip with empty patch: %v", err)
	}

	got, _ := GetTrip(ctx, database, trip.ID)
	if got.Title != "Unchanged" {
		t.Errorf("expected title unchanged, got %q", got.Title)
	}
}

func TestDeleteTripCascades(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	trip := newTrip(t, database, "user-1", "Doomed", "2026-09-20")
	category, _ := CreateCategory(ctx, database, trip.ID, "Clothing")
	item, _ := CreateItem(ctx, database, &model.PackingItem{
		TripID: trip.ID, CategoryID: category.ID, Name: "Socks",
	})
	bag, _ := CreateBag(ctx, database, trip.ID, "Suitcase", "blue", "suitcase")
	if _, err := AssignToBag(ctx, database, item.ID, bag.ID); err != nil {
		t.Fatalf("AssignToBag: %v", err)
	}

	if err := DeleteTrip(ctx, database, trip.ID); err != nil {
		t.Fatalf("DeleteTrip: %v", err)
	}

	if got, _ := GetTrip(ctx, database, trip.ID); got != nil {
		t.Error("expected trip to be gone")
	}
	if categories, _ := ListCategoriesWithItems(ctx, database, trip.ID); len(categories) != 0 {
		t.Errorf("expected no categories, got %d", len(categories))
	}
	if bags, _ := ListBagsByTrip(ctx, database, trip.ID); len(bags) != 0 {
		t.Errorf("expected no bags, got %d", len(bags))
	}
	if got, _ := GetItem(ctx, database, item.ID); got != nil {
		t.Error("expected item to be gone")
	}

	// No orphan rows left behind in any child table.
	for _, table := range []string{"packing_categories", "packing_items", "bags"} {
		var count int
		database.QueryRow("SELECT COUNT(*) FROM "+table+" WHERE trip_id = ?", trip.ID).Scan(&count)
		if count != 0 {
			t.Errorf("expected no %s rows for deleted trip, got %d", table, count)
		}
	}
	var count int
	database.QueryRow("SELECT COUNT(*) FROM item_bag_assignments").Scan(&count)
	if count != 0 {
		t.Errorf("expected no assignments after trip deletion, got %d", count)
	}
}
