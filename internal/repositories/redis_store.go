package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"maxdata/internal/askmax"
	"maxdata/internal/models"
)

const (
	ListingsKey      = "maxdata_listings"
	OrdersKey        = "maxdata_orders"
	sessionKeyPrefix = "maxdata_session:"
)

// RedisListingStore keeps every listing in one JSON array under a single key.
// Appends read, modify and write the whole array with no conflict detection.
type RedisListingStore struct {
	rdb *redis.Client
	key string
}

func NewRedisListingStore(rdb *redis.Client) *RedisListingStore {
	return &RedisListingStore{rdb: rdb, key: ListingsKey}
}

func (s *RedisListingStore) Append(ctx context.Context, l models.Listing) (models.Listing, error) {
	listings, err := s.List(ctx)
	if err != nil {
		return models.Listing{}, err
	}
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	listings = append(listings, l)
	if err := writeJSON(ctx, s.rdb, s.key, listings, 0); err != nil {
		return models.Listing{}, err
	}
	return l, nil
}

func (s *RedisListingStore) List(ctx context.Context) ([]models.Listing, error) {
	listings := []models.Listing{}
	if err := readJSON(ctx, s.rdb, s.key, &listings); err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}
	return listings, nil
}

func (s *RedisListingStore) Get(ctx context.Context, id string) (models.Listing, error) {
	listings, err := s.List(ctx)
	if err != nil {
		return models.Listing{}, err
	}
	for _, l := range listings {
		if l.ID == id {
			return l, nil
		}
	}
	return models.Listing{}, ErrListingNotFound
}

func (s *RedisListingStore) Clear(ctx context.Context) error {
	return s.rdb.Del(ctx, s.key).Err()
}

type RedisOrderStore struct {
	rdb *redis.Client
	key string
}

func NewRedisOrderStore(rdb *redis.Client) *RedisOrderStore {
	return &RedisOrderStore{rdb: rdb, key: OrdersKey}
}

func (s *RedisOrderStore) all(ctx context.Context) ([]models.Order, error) {
	orders := []models.Order{}
	if err := readJSON(ctx, s.rdb, s.key, &orders); err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}
	return orders, nil
}

func (s *RedisOrderStore) Create(ctx context.Context, o models.Order) (models.Order, error) {
	orders, err := s.all(ctx)
	if err != nil {
		return models.Order{}, err
	}
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}
	orders = append(orders, o)
	if err := writeJSON(ctx, s.rdb, s.key, orders, 0); err != nil {
		return models.Order{}, err
	}
	return o, nil
}

func (s *RedisOrderStore) Get(ctx context.Context, id string) (models.Order, error) {
	orders, err := s.all(ctx)
	if err != nil {
		return models.Order{}, err
	}
	for _, o := range orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

func (s *RedisOrderStore) ListByListing(ctx context.Context, listingID string) ([]models.Order, error) {
	orders, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	out := []models.Order{}
	for _, o := range orders {
		if o.ListingID == listingID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *RedisOrderStore) ExpireBoosts(ctx context.Context, now time.Time) (int, error) {
	orders, err := s.all(ctx)
	if err != nil {
		return 0, err
	}
	now = now.UTC()
	cleared := 0
	for i := range orders {
		if !boostExpired(orders[i], now) {
			continue
		}
		orders[i].Status = models.OrderExpired
		orders[i].UpdatedAt = &now
		cleared++
	}
	if cleared == 0 {
		return 0, nil
	}
	if err := writeJSON(ctx, s.rdb, s.key, orders, 0); err != nil {
		return 0, err
	}
	return cleared, nil
}

// RedisSessionStore keeps one Ask MAX conversation per key. Every save
// refreshes the TTL, so idle sessions expire on their own.
type RedisSessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisSessionStore(rdb *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb, ttl: ttl}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func (s *RedisSessionStore) Save(ctx context.Context, conv *askmax.Conversation) error {
	return writeJSON(ctx, s.rdb, sessionKey(conv.ID), conv, s.ttl)
}

func (s *RedisSessionStore) Load(ctx context.Context, id string) (*askmax.Conversation, error) {
	var conv askmax.Conversation
	if err := readJSON(ctx, s.rdb, sessionKey(id), &conv); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &conv, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, sessionKey(id)).Err()
}

func readJSON(ctx context.Context, rdb *redis.Client, key string, dst any) error {
	raw, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func writeJSON(ctx context.Context, rdb *redis.Client, key string, v any, ttl time.Duration) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, payload, ttl).Err()
}
