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

const listingColumns = `id, address, bedrooms, bathrooms, living_area, lot_area, year_built, property_type, price, listing_dates, description, photos, status, cart, last_updated, created_at`

type ListingRepository struct {
	DB     *sql.DB
	Driver string
}

func NewListingRepository(db *sql.DB, driver string) *ListingRepository {
	return &ListingRepository{DB: db, Driver: driver}
}

func (r *ListingRepository) Append(ctx context.Context, l models.Listing) (models.Listing, error) {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	if l.Photos == nil {
		l.Photos = []string{}
	}
	photos, err := json.Marshal(l.Photos)
	if err != nil {
		return models.Listing{}, err
	}
	cart, err := json.Marshal(l.Cart)
	if err != nil {
		return models.Listing{}, err
	}

	query := Rebind(r.Driver, `INSERT INTO listings (`+listingColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err = r.DB.ExecContext(ctx, query,
		l.ID, l.Address, l.Bedrooms, l.Bathrooms, l.LivingArea, l.LotArea, l.YearBuilt,
		l.PropertyType, l.Price, l.ListingDates, l.Description, string(photos), l.Status,
		string(cart), l.LastUpdated, l.CreatedAt,
	)
	if err != nil {
		return models.Listing{}, fmt.Errorf("insert listing: %w", err)
	}
	return l, nil
}

func (r *ListingRepository) List(ctx context.Context) ([]models.Listing, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+listingColumns+` FROM listings ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := []models.Listing{}
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *ListingRepository) Get(ctx context.Context, id string) (models.Listing, error) {
	row := r.DB.QueryRowContext(ctx, Rebind(r.Driver, `SELECT `+listingColumns+` FROM listings WHERE id = ?`), id)
	l, err := scanListing(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Listing{}, ErrListingNotFound
	}
	if err != nil {
		return models.Listing{}, err
	}
	return l, nil
}

func (r *ListingRepository) Clear(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM listings`)
	return err
}

func scanListing(scanner interface{ Scan(dest ...any) error }) (models.Listing, error) {
	var (
		l      models.Listing
		photos sql.NullString
		cart   sql.NullString
	)
	err := scanner.Scan(&l.ID, &l.Address, &l.Bedrooms, &l.Bathrooms, &l.LivingArea, &l.LotArea,
		&l.YearBuilt, &l.PropertyType, &l.Price, &l.ListingDates, &l.Description, &photos,
		&l.Status, &cart, &l.LastUpdated, &l.CreatedAt)
	if err != nil {
		return models.Listing{}, err
	}
	l.Photos = []string{}
	if photos.Valid && photos.String != "" {
		if err := json.Unmarshal([]byte(photos.String), &l.Photos); err != nil {
			return models.Listing{}, fmt.Errorf("decode photos of %s: %w", l.ID, err)
		}
	}
	if cart.Valid && cart.String != "" && cart.String != "null" {
		if err := json.Unmarshal([]byte(cart.String), &l.Cart); err != nil {
			return models.Listing{}, fmt.Errorf("decode cart of %s: %w", l.ID, err)
		}
	}
	return l, nil
}
