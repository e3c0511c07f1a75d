package services

import (
	"context"
	"errors"
	"testing"

	"maxdata/internal/models"
	"maxdata/internal/repositories"
)

func newListingService() *ListingService {
	pool := []string{"/demo/1.jpg", "/demo/2.jpg", "/demo/3.jpg"}
	return NewListingService(repositories.NewMemoryListingStore(), models.NewCatalog(models.DefaultAddons), pool)
}

func TestSaveDraftAppliesFinalPhotos(t *testing.T) {
	svc := newListingService()
	l := models.NewEditorListing()
	l.Status = models.StatusPublished
	l.Photos = []string{"/demo/1.jpg", "/demo/2.jpg", "/demo/3.jpg"}

	res, err := svc.SaveDraft(context.Background(), l)
	if err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}
	if res.Published || res.Listing.Status != models.StatusDraft {
		t.Fatalf("expected draft, got %#v", res)
	}
	if res.Listing.Photos[0] != models.PicsumPhotos(l.Address)[0] {
		t.Fatalf("expected untouched demo photos to be swapped, got %v", res.Listing.Photos)
	}
}

func TestPublishAttachesCart(t *testing.T) {
	svc := newListingService()
	ctx := context.Background()
	l := models.NewEditorListing()
	l.Photos = []string{"/uploads/own.jpg"}

	res, err := svc.Publish(ctx, l, []string{"featured", "email_blast", "featured"})
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if !res.Published || res.Listing.Status != models.StatusPublished {
		t.Fatalf("expected published result, got %#v", res)
	}
	if len(res.Listing.Cart) != 2 || res.Listing.Photos[0] != "/uploads/own.jpg" {
		t.Fatalf("unexpected stored listing %#v", res.Listing)
	}

	if _, err := svc.Publish(ctx, l, []string{"nope"}); !errors.Is(err, models.ErrUnknownAddon) {
		t.Fatalf("expected ErrUnknownAddon, got %v", err)
	}

	page, err := svc.List(ctx, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.Filter != models.FilterAll || len(page.Listings) != 1 || page.CartCount != 2 || page.Empty {
		t.Fatalf("unexpected page %#v", page)
	}
	cart, err := svc.Cart(ctx)
	if err != nil || len(cart) != 2 || cart[0].ID != "featured" {
		t.Fatalf("unexpected cart %#v, %v", cart, err)
	}
}

func TestListFilterAndClear(t *testing.T) {
	svc := newListingService()
	ctx := context.Background()
	l := models.NewEditorListing()
	if _, err := svc.SaveDraft(ctx, l); err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}
	// Re-saving is a second record, never an update.
	if _, err := svc.Publish(ctx, l, nil); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	page, _ := svc.List(ctx, "Draft")
	if len(page.Cards) != 1 || page.Cards[0].Status != models.StatusDraft {
		t.Fatalf("unexpected draft page %#v", page.Cards)
	}
	page, _ = svc.List(ctx, "All")
	if len(page.Cards) != 2 || page.CartCount != 0 {
		t.Fatalf("unexpected full page %#v", page)
	}

	got, err := svc.Get(ctx, page.Listings[1].ID)
	if err != nil || got.Status != models.StatusPublished {
		t.Fatalf("Get: %#v, %v", got, err)
	}

	if err := svc.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	page, _ = svc.List(ctx, "")
	if !page.Empty {
		t.Fatal("expected empty page after clear")
	}
	if _, err := svc.Get(ctx, got.ID); !errors.Is(err, repositories.ErrListingNotFound) {
		t.Fatalf("expected ErrListingNotFound, got %v", err)
	}
}

func TestPreviewUsesDemoPool(t *testing.T) {
	svc := newListingService()
	p := svc.Preview(models.Listing{Address: "1 A St, Town FL"})
	if p.MainPhoto == models.PlaceholderPhoto || p.PlaceholderSlots != 0 {
		t.Fatalf("expected demo photos in preview, got %#v", p)
	}
	missing := svc.Missing(models.Listing{})
	if missing[0].Count != 2 {
		t.Fatalf("unexpected missing summary %#v", missing)
	}
}
