package repositories

import (
	"context"
	"errors"
	"time"

	"maxdata/internal/askmax"
	"maxdata/internal/models"
)

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrSessionNotFound = errors.New("session not found")
)

// ListingStore keeps listings in insertion order. Records are only ever
// appended; Clear is the single way to remove them.
type ListingStore interface {
	Append(ctx context.Context, listing models.Listing) (models.Listing, error)
	List(ctx context.Context) ([]models.Listing, error)
	Get(ctx context.Context, id string) (models.Listing, error)
	Clear(ctx context.Context) error
}

type OrderStore interface {
	Create(ctx context.Context, order models.Order) (models.Order, error)
	Get(ctx context.Context, id string) (models.Order, error)
	ListByListing(ctx context.Context, listingID string) ([]models.Order, error)
	// ExpireBoosts marks paid orders whose boost window has ended as expired.
	ExpireBoosts(ctx context.Context, now time.Time) (int, error)
}

type SessionStore interface {
	Save(ctx context.Context, conv *askmax.Conversation) error
	Load(ctx context.Context, id string) (*askmax.Conversation, error)
	Delete(ctx context.Context, id string) error
}

// boostExpired reports whether a paid order should move to expired.
func boostExpired(o models.Order, now time.Time) bool {
	return o.Status == models.OrderPaid && o.Boost != nil && !o.Boost.IsActive(now)
}
