package models

import "time"

const (
	OrderPending = "pending"
	OrderPaid    = "paid"
	OrderExpired = "expired"
)

type LineItem struct {
	AddonID    string `json:"addon_id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
}

// Quote is the cart summary shown before checkout.
type Quote struct {
	Items         []LineItem `json:"items"`
	Count         int        `json:"count"`
	SubtotalCents int64      `json:"subtotal_cents"`
	TotalCents    int64      `json:"total_cents"`
	Currency      string     `json:"currency"`
	Total         string     `json:"total"`
}

// Order is a mock checkout for the add-ons of one listing.
type Order struct {
	ID               string     `json:"id"`
	ListingID        string     `json:"listing_id"`
	Addons           []string   `json:"addons"`
	Quote            Quote      `json:"quote"`
	Status           string     `json:"status"`
	ConfirmationCode string     `json:"confirmation_code"`
	Boost            *BoostInfo `json:"boost,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

type CheckoutRequest struct {
	ListingID string   `json:"listing_id"`
	Addons    []string `json:"addons"`
}

type QuoteRequest struct {
	Addons []string `json:"addons"`
}
