package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"maxdata/internal/models"
	"maxdata/internal/pricing"
	"maxdata/internal/repositories"
	"maxdata/utils"
)

type CheckoutService struct {
	Catalog  *models.Catalog
	Listings repositories.ListingStore
	Orders   repositories.OrderStore
	Currency string
	now      func() time.Time
	code     func() string
}

func NewCheckoutService(catalog *models.Catalog, listings repositories.ListingStore, orders repositories.OrderStore, currency string) *CheckoutService {
	return &CheckoutService{
		Catalog:  catalog,
		Listings: listings,
		Orders:   orders,
		Currency: currency,
		now:      time.Now,
		code:     utils.ConfirmationCode,
	}
}

func (s *CheckoutService) Addons() []models.Addon {
	return s.Catalog.All()
}

func (s *CheckoutService) Quote(ids []string) (models.Quote, error) {
	addons, err := s.Catalog.Resolve(ids)
	if err != nil {
		return models.Quote{}, err
	}
	return pricing.Quote(addons, s.Currency), nil
}

// Checkout runs the mock payment: the order is paid as soon as it is created
// and the boost window starts with the longest add-on in the cart.
func (s *CheckoutService) Checkout(ctx context.Context, req models.CheckoutRequest) (models.Order, error) {
	listingID := strings.TrimSpace(req.ListingID)
	if _, err := s.Listings.Get(ctx, listingID); err != nil {
		return models.Order{}, err
	}
	addons, err := s.Catalog.Resolve(req.Addons)
	if err != nil {
		return models.Order{}, err
	}
	if len(addons) == 0 {
		return models.Order{}, models.ErrEmptyCart
	}

	now := s.now().UTC()
	order := models.Order{
		ListingID:        listingID,
		Addons:           make([]string, 0, len(addons)),
		Quote:            pricing.Quote(addons, s.Currency),
		Status:           models.OrderPaid,
		ConfirmationCode: s.code(),
		CreatedAt:        now,
	}
	for _, a := range addons {
		order.Addons = append(order.Addons, a.ID)
	}
	if days := models.LongestDuration(addons); days > 0 {
		boost, err := models.NewBoostInfo(now, days)
		if err != nil {
			return models.Order{}, err
		}
		order.Boost = &boost
	}

	created, err := s.Orders.Create(ctx, order)
	if err != nil {
		return models.Order{}, fmt.Errorf("create order: %w", err)
	}
	return created, nil
}

func (s *CheckoutService) Order(ctx context.Context, id string) (models.Order, error) {
	return s.Orders.Get(ctx, strings.TrimSpace(id))
}

func (s *CheckoutService) OrdersForListing(ctx context.Context, listingID string) ([]models.Order, error) {
	return s.Orders.ListByListing(ctx, strings.TrimSpace(listingID))
}

func (s *CheckoutService) ClearExpiredBoosts(ctx context.Context, now time.Time) (int, error) {
	if s == nil || s.Orders == nil {
		return 0, nil
	}
	if now.IsZero() {
		now = time.Now()
	}
	return s.Orders.ExpireBoosts(ctx, now.UTC())
}
