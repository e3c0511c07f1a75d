package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"maxdata/internal/models"
)

const orderColumns = `id, listing_id, addons, quote, status, confirmation_code, boost, created_at, updated_at`

type OrderRepository struct {
	DB     *sql.DB
	Driver string
}

func NewOrderRepository(db *sql.DB, driver string) *OrderRepository {
	return &OrderRepository{DB: db, Driver: driver}
}

func (r *OrderRepository) Create(ctx context.Context, o models.Order) (models.Order, error) {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}
	addons, err := json.Marshal(o.Addons)
	if err != nil {
		return models.Order{}, err
	}
	quote, err := json.Marshal(o.Quote)
	if err != nil {
		return models.Order{}, err
	}
	var boost sql.NullString
	if o.Boost != nil {
		payload, err := o.Boost.Marshal()
		if err != nil {
			return models.Order{}, err
		}
		boost = sql.NullString{String: payload, Valid: true}
	}

	query := Rebind(r.Driver, `INSERT INTO orders (`+orderColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err = r.DB.ExecContext(ctx, query, o.ID, o.ListingID, string(addons), string(quote), o.Status,
		o.ConfirmationCode, boost, o.CreatedAt, o.UpdatedAt)
	if err != nil {
		return models.Order{}, fmt.Errorf("insert order: %w", err)
	}
	return o, nil
}

func (r *OrderRepository) Get(ctx context.Context, id string) (models.Order, error) {
	row := r.DB.QueryRowContext(ctx, Rebind(r.Driver, `SELECT `+orderColumns+` FROM orders WHERE id = ?`), id)
	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return models.Order{}, err
	}
	return o, nil
}

func (r *OrderRepository) ListByListing(ctx context.Context, listingID string) ([]models.Order, error) {
	rows, err := r.DB.QueryContext(ctx, Rebind(r.Driver, `SELECT `+orderColumns+` FROM orders WHERE listing_id = ? ORDER BY created_at`), listingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) ExpireBoosts(ctx context.Context, now time.Time) (int, error) {
	if r == nil || r.DB == nil {
		return 0, nil
	}
	now = now.UTC()
	rows, err := r.DB.QueryContext(ctx, Rebind(r.Driver, `SELECT id, boost FROM orders WHERE status = ? AND boost IS NOT NULL AND boost <> ''`), models.OrderPaid)
	if err != nil {
		return 0, err
	}

	var expired []string
	for rows.Next() {
		var (
			id    string
			boost sql.NullString
		)
		if err := rows.Scan(&id, &boost); err != nil {
			rows.Close()
			return 0, err
		}
		info := models.ParseBoostInfo(boost.String)
		if info == nil || info.IsActive(now) {
			continue
		}
		expired = append(expired, id)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return 0, err
	}
	rows.Close()

	cleared := 0
	update := Rebind(r.Driver, `UPDATE orders SET status = ?, updated_at = ? WHERE id = ? AND status = ?`)
	for _, id := range expired {
		if _, err := r.DB.ExecContext(ctx, update, models.OrderExpired, now, id, models.OrderPaid); err != nil {
			return cleared, err
		}
		cleared++
	}
	return cleared, nil
}

func scanOrder(scanner interface{ Scan(dest ...any) error }) (models.Order, error) {
	var (
		o       models.Order
		addons  string
		quote   string
		boost   sql.NullString
		updated sql.NullTime
	)
	err := scanner.Scan(&o.ID, &o.ListingID, &addons, &quote, &o.Status, &o.ConfirmationCode, &boost, &o.CreatedAt, &updated)
	if err != nil {
		return models.Order{}, err
	}
	if err := json.Unmarshal([]byte(addons), &o.Addons); err != nil {
		return models.Order{}, fmt.Errorf("decode addons of %s: %w", o.ID, err)
	}
	if err := json.Unmarshal([]byte(quote), &o.Quote); err != nil {
		return models.Order{}, fmt.Errorf("decode quote of %s: %w", o.ID, err)
	}
	if boost.Valid {
		o.Boost = models.ParseBoostInfo(boost.String)
	}
	if updated.Valid {
		t := updated.Time
		o.UpdatedAt = &t
	}
	return o, nil
}
