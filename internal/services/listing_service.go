package services

import (
	"context"
	"fmt"
	"strings"

	"maxdata/internal/models"
	"maxdata/internal/repositories"
)

type ListingService struct {
	Store     repositories.ListingStore
	Catalog   *models.Catalog
	PhotoPool []string
	// Fallback is the card photo shown when a listing photo fails to load.
	Fallback string
}

func NewListingService(store repositories.ListingStore, catalog *models.Catalog, photoPool []string) *ListingService {
	fallback := models.PlaceholderPhoto
	if len(photoPool) > 0 {
		fallback = photoPool[0]
	}
	return &ListingService{Store: store, Catalog: catalog, PhotoPool: photoPool, Fallback: fallback}
}

// ListingPage is what the listings page renders.
type ListingPage struct {
	Filter    string           `json:"filter"`
	Listings  []models.Listing `json:"listings"`
	Cards     []models.Card    `json:"cards"`
	CartCount int              `json:"cart_count"`
	Empty     bool             `json:"empty"`
}

type SaveResult struct {
	Listing   models.Listing `json:"listing"`
	Published bool           `json:"published"`
}

func (s *ListingService) SaveDraft(ctx context.Context, l models.Listing) (SaveResult, error) {
	l.Status = models.StatusDraft
	l.Cart = nil
	return s.save(ctx, l)
}

// Publish stores a published copy with the cart attached. Unknown add-ons
// reject the whole request.
func (s *ListingService) Publish(ctx context.Context, l models.Listing, cart []string) (SaveResult, error) {
	l.Status = models.StatusPublished
	l.Cart = nil
	if len(cart) > 0 {
		addons, err := s.Catalog.Resolve(cart)
		if err != nil {
			return SaveResult{}, err
		}
		l.Cart = make([]string, 0, len(addons))
		for _, a := range addons {
			l.Cart = append(l.Cart, a.ID)
		}
	}
	res, err := s.save(ctx, l)
	if err != nil {
		return SaveResult{}, err
	}
	res.Published = true
	return res, nil
}

func (s *ListingService) save(ctx context.Context, l models.Listing) (SaveResult, error) {
	l.ID = ""
	l.Photos = models.FinalPhotos(l.Photos, s.PhotoPool, l.Address)
	saved, err := s.Store.Append(ctx, l)
	if err != nil {
		return SaveResult{}, fmt.Errorf("append listing: %w", err)
	}
	return SaveResult{Listing: saved}, nil
}

func (s *ListingService) List(ctx context.Context, filter string) (ListingPage, error) {
	all, err := s.Store.List(ctx)
	if err != nil {
		return ListingPage{}, err
	}
	filter = strings.TrimSpace(filter)
	if filter == "" {
		filter = models.FilterAll
	}
	shown := models.FilterByStatus(all, filter)
	cards := make([]models.Card, 0, len(shown))
	for _, l := range shown {
		cards = append(cards, models.BuildCard(l, s.Fallback))
	}
	return ListingPage{
		Filter:    filter,
		Listings:  shown,
		Cards:     cards,
		CartCount: models.CartCount(all),
		Empty:     len(shown) == 0,
	}, nil
}

func (s *ListingService) Get(ctx context.Context, id string) (models.Listing, error) {
	return s.Store.Get(ctx, strings.TrimSpace(id))
}

// Preview renders an unsaved payload. Photos fall back to the demo pool the
// same way the editor shows them before any upload.
func (s *ListingService) Preview(l models.Listing) models.Preview {
	photos := l.Photos
	if len(photos) == 0 {
		photos = models.DemoPhotos(l.Address, s.PhotoPool)
	}
	return models.BuildPreview(l, photos)
}

func (s *ListingService) Missing(l models.Listing) []models.TabMissing {
	return models.TabSummary(l)
}

func (s *ListingService) Clear(ctx context.Context) error {
	return s.Store.Clear(ctx)
}

// Cart returns the resolved add-ons attached to the most recent published listing.
func (s *ListingService) Cart(ctx context.Context) ([]models.Addon, error) {
	all, err := s.Store.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].Status == models.StatusPublished {
			return s.Catalog.Resolve(all[i].Cart)
		}
	}
	return []models.Addon{}, nil
}
