package store

import (
	"context"
	"errors"
	"testing"

	"github.com/erazemk/prtljaga/internal/db"
	"github.com/erazemk/prtljaga/internal/model"
)

func TestAuthorizeTrip(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	trip := newTrip(t, database, "user-1", "Trip", "2026-09-20")

	if err := AuthorizeTrip(ctx, database, trip.ID, "user-1"); err != nil {
		t.Errorf("expected owner to be authorized, got %v", err)
	}
	if err := AuthorizeTrip(ctx, database, trip.ID, "user-2"); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("expected ErrNotAuthorized for non-owner, got %v", err)
	}
	if err := AuthorizeTrip(ctx, database, "no-such-trip", "user-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing trip, got %v", err)
	}
}

func TestAuthorizeItemResolvesThroughTrip(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	trip := newTrip(t, database, "user-1", "Trip", "2026-09-20")
	category, _ := CreateCategory(ctx, database, trip.ID, "Clothing")
	item, _ := CreateItem(ctx, database, &model.PackingItem{
		TripID: trip.ID, CategoryID: category.ID, Name: "Socks",
	})

	if err := AuthorizeItem(ctx, database, item.ID, "user-1"); err != nil {
		t.Errorf("expected owner to be authorized via item, got %v", err)
	}
	if err := AuthorizeItem(ctx, database, item.ID, "user-2"); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("expected ErrNotAuthorized via item, got %v", err)
	}
	if err := AuthorizeItem(ctx, database, "no-such-item", "user-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing item, got %v", err)
	}
}

func TestAuthorizeBagResolvesThroughTrip(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	trip := newTrip(t, database, "user-1", "Trip", "2026-09-20")
	bag, _ := CreateBag(ctx, database, trip.ID, "Suitcase", "blue", "suitcase")

	if err := AuthorizeBag(ctx, database, bag.ID, "user-1"); err != nil {
		t.Errorf("expected owner to be authorized via bag, got %v", err)
	}
	if err := AuthorizeBag(ctx, database, bag.ID, "user-2"); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("expected ErrNotAuthorized via bag, got %v", err)
	}
}
