package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"strings"

	_ "github.com/go-sql-driver/mysql" // MariaDB/MySQL
	_ "github.com/jackc/pgx/v5/stdlib" // Postgres
	"github.com/redis/go-redis/v9"

	"maxdata/internal/config"
	"maxdata/internal/handlers"
	"maxdata/internal/models"
	"maxdata/internal/repositories"
	"maxdata/internal/services"
	"maxdata/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger

	listingHandler  *handlers.ListingHandler
	addressHandler  *handlers.AddressHandler
	askMaxHandler   *handlers.AskMaxHandler
	checkoutHandler *handlers.CheckoutHandler
	photoHandler    *handlers.PhotoHandler

	askMaxService   *services.AskMaxService
	checkoutService *services.CheckoutService

	tokens        *utils.Manager
	authEnabled   bool
	uploads       http.Handler
	uploadsPrefix string
}

// stores groups the backends picked by the storage config.
type stores struct {
	listings repositories.ListingStore
	orders   repositories.OrderStore
	sessions repositories.SessionStore
	db       *sql.DB
	rdb      *redis.Client
}

func (s *stores) Close() {
	if s.db != nil {
		_ = s.db.Close()
	}
	if s.rdb != nil {
		_ = s.rdb.Close()
	}
}

func openStores(ctx context.Context, cfg config.Config, infoLog *log.Logger) (*stores, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQL:
		db, err := openDB(cfg.Database.Driver, cfg.Database.URL)
		if err != nil {
			return nil, err
		}
		if err := repositories.EnsureSchema(ctx, db, cfg.Database.Driver); err != nil {
			db.Close()
			return nil, fmt.Errorf("ensure schema: %w", err)
		}
		infoLog.Printf("Using %s listing store", cfg.Database.Driver)
		return &stores{
			listings: repositories.NewListingRepository(db, cfg.Database.Driver),
			orders:   repositories.NewOrderRepository(db, cfg.Database.Driver),
			sessions: repositories.NewMemorySessionStore(),
			db:       db,
		}, nil
	case config.BackendRedis:
		rdb, err := openRedis(ctx, cfg)
		if err != nil {
			return nil, err
		}
		infoLog.Printf("Using redis listing store at %s", cfg.Redis.Addr)
		return &stores{
			listings: repositories.NewRedisListingStore(rdb),
			orders:   repositories.NewRedisOrderStore(rdb),
			sessions: repositories.NewRedisSessionStore(rdb, cfg.AskMax.SessionTTL),
			rdb:      rdb,
		}, nil
	}
	infoLog.Println("Using in-memory listing store")
	return &stores{
		listings: repositories.NewMemoryListingStore(),
		orders:   repositories.NewMemoryOrderStore(),
		sessions: repositories.NewMemorySessionStore(),
	}, nil
}

func openPhotoStorage(cfg config.Config) (utils.PhotoStorage, error) {
	if cfg.Photos.Storage == config.PhotosS3 {
		s3 := cfg.Photos.S3
		return utils.NewS3Storage(utils.S3Config{
			Bucket:    s3.Bucket,
			Region:    s3.Region,
			Endpoint:  s3.Endpoint,
			AccessKey: s3.AccessKey,
			SecretKey: s3.SecretKey,
			PublicURL: s3.PublicURL,
			Folder:    s3.Folder,
		})
	}
	return utils.NewLocalStorage(cfg.Photos.UploadDir, cfg.Photos.UploadURL)
}

func initializeApp(cfg config.Config, st *stores, photoStorage utils.PhotoStorage, errorLog, infoLog *log.Logger) (*application, error) {
	catalog := models.NewCatalog(cfg.Checkout.Addons)
	pool := cfg.Photos.DemoPool

	listingService := services.NewListingService(st.listings, catalog, pool)
	askMaxService := services.NewAskMaxService(st.sessions, pool)
	checkoutService := services.NewCheckoutService(catalog, st.listings, st.orders, cfg.Checkout.Currency)
	photoService := services.NewPhotoService(photoStorage, cfg.Photos.MaxBytes)

	app := &application{
		errorLog:        errorLog,
		infoLog:         infoLog,
		listingHandler:  &handlers.ListingHandler{Service: listingService},
		addressHandler:  &handlers.AddressHandler{Book: models.MockAddresses},
		askMaxHandler:   &handlers.AskMaxHandler{Service: askMaxService},
		checkoutHandler: &handlers.CheckoutHandler{Service: checkoutService},
		photoHandler:    &handlers.PhotoHandler{Service: photoService, MaxMemory: cfg.Photos.MaxBytes},
		askMaxService:   askMaxService,
		checkoutService: checkoutService,
		authEnabled:     cfg.Auth.Enabled,
	}

	if cfg.Auth.Enabled {
		tokens, err := utils.NewManager(cfg.Auth.Secret)
		if err != nil {
			return nil, err
		}
		app.tokens = tokens
	}
	if cfg.Photos.Storage == config.PhotosLocal {
		app.uploadsPrefix = strings.TrimRight(cfg.Photos.UploadURL, "/") + "/"
		app.uploads = http.StripPrefix(app.uploadsPrefix, http.FileServer(http.Dir(cfg.Photos.UploadDir)))
	}
	return app, nil
}

func openDB(driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		db.Close()
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}

func openRedis(ctx context.Context, cfg config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}
