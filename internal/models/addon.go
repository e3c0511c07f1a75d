package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrUnknownAddon         = errors.New("unknown add-on")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrInvalidBoostDuration = errors.New("invalid boost duration")
)

const DefaultCurrency = "USD"

// Addon is a paid marketing item that can be attached to a listing at publish time.
type Addon struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Description  string `json:"description" yaml:"description"`
	PriceCents   int64  `json:"price_cents" yaml:"price_cents"`
	DurationDays int    `json:"duration_days" yaml:"duration_days"`
}

// DefaultAddons is the catalog used when the config does not provide one.
var DefaultAddons = []Addon{
	{ID: "featured", Name: "Featured listing", Description: "Pinned to the top of search results", PriceCents: 9900, DurationDays: 14},
	{ID: "social_boost", Name: "Social media boost", Description: "Sponsored posts on partner networks", PriceCents: 4900, DurationDays: 7},
	{ID: "email_blast", Name: "Email blast", Description: "One send to the local buyer list", PriceCents: 2900},
	{ID: "open_house", Name: "Open house promo", Description: "Event page and reminders", PriceCents: 3900, DurationDays: 3},
	{ID: "virtual_tour", Name: "Virtual tour", Description: "3D walkthrough hosting", PriceCents: 14900, DurationDays: 30},
}

// Catalog indexes add-ons by id while keeping their display order.
type Catalog struct {
	order []string
	items map[string]Addon
}

func NewCatalog(addons []Addon) *Catalog {
	c := &Catalog{items: make(map[string]Addon, len(addons))}
	for _, a := range addons {
		id := strings.TrimSpace(a.ID)
		if id == "" {
			continue
		}
		if _, dup := c.items[id]; !dup {
			c.order = append(c.order, id)
		}
		a.ID = id
		c.items[id] = a
	}
	return c
}

func (c *Catalog) Lookup(id string) (Addon, bool) {
	a, ok := c.items[strings.TrimSpace(id)]
	return a, ok
}

func (c *Catalog) All() []Addon {
	out := make([]Addon, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

// Resolve maps cart ids to catalog entries in request order, dropping
// duplicates. Any unknown id fails the whole cart.
func (c *Catalog) Resolve(ids []string) ([]Addon, error) {
	seen := make(map[string]struct{}, len(ids))
	out := make([]Addon, 0, len(ids))
	for _, raw := range ids {
		id := strings.TrimSpace(raw)
		if _, ok := seen[id]; ok {
			continue
		}
		a, ok := c.items[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAddon, raw)
		}
		seen[id] = struct{}{}
		out = append(out, a)
	}
	return out, nil
}

// BoostInfo is the promotion window bought with a checkout.
type BoostInfo struct {
	ActivatedAt  time.Time `json:"activated_at"`
	ExpiresAt    time.Time `json:"expires_at"`
	DurationDays int       `json:"duration_days"`
}

func NewBoostInfo(now time.Time, durationDays int) (BoostInfo, error) {
	if durationDays <= 0 {
		return BoostInfo{}, fmt.Errorf("%w: %d", ErrInvalidBoostDuration, durationDays)
	}
	now = now.UTC()
	return BoostInfo{
		ActivatedAt:  now,
		ExpiresAt:    now.AddDate(0, 0, durationDays).UTC(),
		DurationDays: durationDays,
	}, nil
}

func (b BoostInfo) IsActive(now time.Time) bool {
	if b.ActivatedAt.IsZero() || b.ExpiresAt.IsZero() {
		return false
	}
	return now.UTC().Before(b.ExpiresAt)
}

func (b BoostInfo) Marshal() (string, error) {
	payload, err := json.Marshal(b)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

// ParseBoostInfo reads a stored window. Empty or unreadable values mean no boost.
func ParseBoostInfo(raw string) *BoostInfo {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var info BoostInfo
	if err := json.Unmarshal([]byte(raw), &info); err != nil {
		return nil
	}
	info.ActivatedAt = info.ActivatedAt.UTC()
	info.ExpiresAt = info.ExpiresAt.UTC()
	return &info
}

// LongestDuration returns the longest boost duration in a cart, 0 for one-shot carts.
func LongestDuration(addons []Addon) int {
	longest := 0
	for _, a := range addons {
		if a.DurationDays > longest {
			longest = a.DurationDays
		}
	}
	return longest
}
