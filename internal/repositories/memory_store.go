package repositories

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"maxdata/internal/askmax"
	"maxdata/internal/models"
)

// MemoryListingStore is used in demo mode and tests.
type MemoryListingStore struct {
	mu       sync.RWMutex
	listings []models.Listing
}

func NewMemoryListingStore() *MemoryListingStore {
	return &MemoryListingStore{}
}

func (s *MemoryListingStore) Append(_ context.Context, l models.Listing) (models.Listing, error) {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	s.mu.Lock()
	s.listings = append(s.listings, l)
	s.mu.Unlock()
	return l, nil
}

func (s *MemoryListingStore) List(_ context.Context) ([]models.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Listing, len(s.listings))
	copy(out, s.listings)
	return out, nil
}

func (s *MemoryListingStore) Get(_ context.Context, id string) (models.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.listings {
		if l.ID == id {
			return l, nil
		}
	}
	return models.Listing{}, ErrListingNotFound
}

func (s *MemoryListingStore) Clear(_ context.Context) error {
	s.mu.Lock()
	s.listings = nil
	s.mu.Unlock()
	return nil
}

type MemoryOrderStore struct {
	mu     sync.RWMutex
	orders []models.Order
}

func NewMemoryOrderStore() *MemoryOrderStore {
	return &MemoryOrderStore{}
}

func (s *MemoryOrderStore) Create(_ context.Context, o models.Order) (models.Order, error) {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}
	s.mu.Lock()
	s.orders = append(s.orders, o)
	s.mu.Unlock()
	return o, nil
}

func (s *MemoryOrderStore) Get(_ context.Context, id string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

func (s *MemoryOrderStore) ListByListing(_ context.Context, listingID string) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Order{}
	for _, o := range s.orders {
		if o.ListingID == listingID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *MemoryOrderStore) ExpireBoosts(_ context.Context, now time.Time) (int, error) {
	now = now.UTC()
	s.mu.Lock()
	defer s.mu.Unlock()
	cleared := 0
	for i := range s.orders {
		if !boostExpired(s.orders[i], now) {
			continue
		}
		s.orders[i].Status = models.OrderExpired
		s.orders[i].UpdatedAt = &now
		cleared++
	}
	return cleared, nil
}

// MemorySessionStore stores encoded snapshots so callers never share state
// with the store. Sessions do not expire.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string][]byte
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string][]byte)}
}

func (s *MemorySessionStore) Save(_ context.Context, conv *askmax.Conversation) error {
	payload, err := json.Marshal(conv)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.sessions[conv.ID] = payload
	s.mu.Unlock()
	return nil
}

func (s *MemorySessionStore) Load(_ context.Context, id string) (*askmax.Conversation, error) {
	s.mu.Lock()
	payload, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	var conv askmax.Conversation
	if err := json.Unmarshal(payload, &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}
