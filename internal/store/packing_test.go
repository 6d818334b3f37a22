package store

import (
	"context"
	"testing"

	"github.com/erazemk/prtljaga/internal/db"
	"github.com/erazemk/prtljaga/internal/model"
)

func TestCreateCategorySortOrder(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	trip := newTrip(t, database, "user-1", "Trip", "2026-09-20")

	for want := 0; want < 3; want++ {
		category, err := CreateCategory(ctx, database, trip.ID, "Category")
		if err != nil {
			t.Fatalf("CreateCategory: %v", err)
		}
		if category.SortOrder != want {
			t.Errorf("expected sort order %d, got %d", want, category.SortOrder)
		}
	}
}

func TestCreateItemDefaults(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	trip := newTrip(t, database, "user-1", "Trip", "2026-09-20")
	category, _ := CreateCategory(ctx, database, trip.ID, "Clothing")

	item, err := CreateItem(ctx, database, &model.PackingItem{
		TripID:     trip.ID,
		CategoryID: category.ID,
		Name:       "T-shirts",
	})
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if item.Quantity != 1 {
		t.Errorf("expected default quantity 1, got %d", item.Quantity)
	}
	if item.IsPacked {
		t.Error("expected new item to start unpacked")
	}
}

func TestUpdateItemPartial(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	trip := newTrip(t, database, "user-1", "Trip", "2026-09-20")
	category, _ := CreateCategory(ctx, database, trip.ID, "Clothing")
	item, _ := CreateItem(ctx, database, &model.PackingItem{
		TripID: trip.ID, CategoryID: category.ID, Name: "Socks", Quantity: 4, Notes: "wool",
	})

	packed := true
	if err := UpdateItem(ctx, database, item.ID, model.ItemPatch{IsPacked: &packed}); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}

	got, _ := GetItem(ctx, database, item.ID)
	if !got.IsPacked {
		t.Error("expected item to be packed")
	}
	if got.Name != "Socks" || got.Quantity != 4 || got.Notes != "wool" {
		t.Errorf("expected other fields untouched, got %+v", got)
	}
}

func TestTogglePacked(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	trip := newTrip(t, database, "user-1", "Trip", "2026-09-20")
	category, _ := CreateCategory(ctx, database, trip.ID, "Clothing")
	item, _ := CreateItem(ctx, database, &model.PackingItem{
		TripID: trip.ID, CategoryID: category.ID, Name: "Socks",
	})

	TogglePacked(ctx, database, item.ID)
	got, _ := GetItem(ctx, database, item.ID)
	if !got.IsPacked {
		t.Error("expected item packed after first toggle")
	}

	TogglePacked(ctx, database, item.ID)
	got, _ = GetItem(ctx, database, item.ID)
	if got.IsPacked {
		t.Error("expected item unpacked after second toggle")
	}
}

func TestListCategoriesWithItems(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	trip := newTrip(t, database, "user-1", "Trip", "2026-09-20")
	clothing, _ := CreateCategory(ctx, database, trip.ID, "Clothing")
	gear, _ := CreateCategory(ctx, database, trip.ID, "Gear")

	CreateItem(ctx, database, &model.PackingItem{TripID: trip.ID, CategoryID: clothing.ID, Name: "Shirt"})
	CreateItem(ctx, database, &model.PackingItem{TripID: trip.ID, CategoryID: clothing.ID, Name: "Socks"})
	CreateItem(ctx, database, &model.PackingItem{TripID: trip.ID, CategoryID: gear.ID, Name: "Headlamp"})

	categories, err := ListCategoriesWithItems(ctx, database, trip.ID)
	if err != nil {
		t.Fatalf("ListCategoriesWithItems: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
	if categories[0].Name != "Clothing" || categories[1].Name != "Gear" {
		t.Errorf("expected categories in sort order, got %q, %q", categories[0].Name, categories[1].Name)
	}
	if len(categories[0].Items) != 2 {
		t.Errorf("expected 2 items in Clothing, got %d", len(categories[0].Items))
	}
	if len(categories[1].Items) != 1 {
		t.Errorf("expected 1 item in Gear, got %d", len(categories[1].Items))
	}
}

func TestAssignToBagIdempotent(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	trip := newTrip(t, database, "user-1", "Trip", "2026-09-20")
	category, _ := CreateCategory(ctx, database, trip.ID, "Clothing")
	item, _ := CreateItem(ctx, database, &model.PackingItem{
		TripID: trip.ID, CategoryID: category.ID, Name: "Socks",
	})
	bag, _ := CreateBag(ctx, database, trip.ID, "Suitcase", "blue", "suitcase")

	first, err := AssignToBag(ctx, database, item.ID, bag.ID)
	if err != nil {
		t.Fatalf("AssignToBag: %v", err)
	}
	second, err := AssignToBag(ctx, database, item.ID, bag.ID)
	if err != nil {
		t.Fatalf("AssignToBag (repeat): %v", err)
	}
	if first != second {
		t.Errorf("expected the same assignment id on repeat, got %q and %q", first, second)
	}

	assignments, _ := ListAssignmentsByTrip(ctx, database, trip.ID)
	if len(assignments) != 1 {
		t.Errorf("expected exactly one assignment row, got %d", len(assignments))
	}
}

func TestUnassignMissingPairNoError(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	trip := newTrip(t, database, "user-1", "Trip", "2026-09-20")
	category, _ := CreateCategory(ctx, database, trip.ID, "Clothing")
	item, _ := CreateItem(ctx, database, &model.PackingItem{
		TripID: trip.ID, CategoryID: category.ID, Name: "Socks",
	})
	bag, _ := CreateBag(ctx, database, trip.ID, "Suitcase", "blue", "suitcase")

	if err := UnassignFromBag(ctx, database, item.ID, bag.ID); err != nil {
		t.Errorf("expected no error unassigning an absent pair, got %v", err)
	}
}

func TestDeleteItemCascadesAssignments(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	trip := newTrip(t, database, "user-1", "Trip", "2026-09-20")
	category, _ := CreateCategory(ctx, database, trip.ID, "Clothing")
	item, _ := CreateItem(ctx, database, &model.PackingItem{
		TripID: trip.ID, CategoryID: category.ID, Name: "Socks",
	})
	bag, _ := CreateBag(ctx, database, trip.ID, "Suitcase", "blue", "suitcase")
	AssignToBag(ctx, database, item.ID, bag.ID)

	if err := DeleteItem(ctx, database, item.ID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}

	if got, _ := GetItem(ctx, database, item.ID); got != nil {
		t.Error("expected item to be gone")
	}
	assignments, _ := ListAssignmentsByTrip(ctx, database, trip.ID)
	if len(assignments) != 0 {
		t.Errorf("expected no assignments after item deletion, got %d", len(assignments))
	}
}
