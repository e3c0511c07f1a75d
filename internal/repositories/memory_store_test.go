package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"maxdata/internal/askmax"
	"maxdata/internal/models"
)

func TestMemoryListingStoreAppendAndClear(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryListingStore()

	first, err := store.Append(ctx, models.Listing{Address: "1 A St", Status: models.StatusDraft})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if first.ID == "" || first.CreatedAt.IsZero() {
		t.Fatalf("expected id and created_at to be assigned, got %#v", first)
	}
	// Same address again is a new record, never an update.
	if _, err := store.Append(ctx, models.Listing{Address: "1 A St", Status: models.StatusPublished}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	listings, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(listings) != 2 || listings[0].Status != models.StatusDraft || listings[1].Status != models.StatusPublished {
		t.Fatalf("expected two listings in insertion order, got %#v", listings)
	}

	got, err := store.Get(ctx, first.ID)
	if err != nil || got.Address != "1 A St" {
		t.Fatalf("Get: %#v, %v", got, err)
	}
	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrListingNotFound) {
		t.Fatalf("expected ErrListingNotFound, got %v", err)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	listings, _ = store.List(ctx)
	if len(listings) != 0 {
		t.Fatalf("expected empty store after clear, got %d", len(listings))
	}
}

func TestMemoryOrderStoreExpireBoosts(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryOrderStore()
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	short, _ := models.NewBoostInfo(now, 1)
	long, _ := models.NewBoostInfo(now, 30)
	if _, err := store.Create(ctx, models.Order{ListingID: "l1", Status: models.OrderPaid, Boost: &short}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := store.Create(ctx, models.Order{ListingID: "l1", Status: models.OrderPaid, Boost: &long}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := store.Create(ctx, models.Order{ListingID: "l2", Status: models.OrderPaid}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	cleared, err := store.ExpireBoosts(ctx, now.AddDate(0, 0, 2))
	if err != nil {
		t.Fatalf("ExpireBoosts: %v", err)
	}
	if cleared != 1 {
		t.Fatalf("expected 1 expired order, got %d", cleared)
	}
	orders, _ := store.ListByListing(ctx, "l1")
	if len(orders) != 2 || orders[0].Status != models.OrderExpired || orders[1].Status != models.OrderPaid {
		t.Fatalf("unexpected orders %#v", orders)
	}
	if orders[0].UpdatedAt == nil {
		t.Fatal("expected updated_at on expired order")
	}

	cleared, _ = store.ExpireBoosts(ctx, now.AddDate(0, 0, 2))
	if cleared != 0 {
		t.Fatalf("expired orders must not be counted twice, got %d", cleared)
	}
}

func TestMemorySessionStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()
	conv := askmax.New("s1", time.Now())

	if err := store.Save(ctx, conv); err != nil {
		t.Fatalf("Save: %v", err)
	}
	conv.Step = askmax.StepChat

	loaded, err := store.Load(ctx, "s1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Step != askmax.StepPrompt {
		t.Fatalf("stored session must not change with the caller's copy, got %s", loaded.Step)
	}

	if err := store.Delete(ctx, "s1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Load(ctx, "s1"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
