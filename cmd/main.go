package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"maxdata/internal/config"
	"maxdata/internal/models"
	"maxdata/utils"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	configPath := flag.String("config", "config/config.yaml", "Path to the YAML config file")
	addr := flag.String("addr", "", "HTTP network address (overrides config)")
	tokenFor := flag.String("token", "", "Print a signed access token for this user id and exit")
	tokenRole := flag.String("role", models.RoleAgent, "Role of the token printed with -token")
	flag.Parse()

	infoLog := log.New(os.Stdout, "INFO\t", log.Ldate|log.Ltime)
	errorLog := log.New(os.Stderr, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile)

	cfg, err := config.Load(*configPath)
	if err != nil {
		errorLog.Fatal(err)
	}
	if *addr != "" {
		cfg.Server.Address = *addr
	}

	if *tokenFor != "" {
		if err := printToken(cfg.Auth.Secret, *tokenFor, *tokenRole); err != nil {
			errorLog.Fatal(err)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg, infoLog)
	if err != nil {
		errorLog.Fatal(err)
	}
	defer st.Close()

	photoStorage, err := openPhotoStorage(cfg)
	if err != nil {
		errorLog.Fatal(err)
	}

	app, err := initializeApp(cfg, st, photoStorage, errorLog, infoLog)
	if err != nil {
		errorLog.Fatal(err)
	}

	startBoostCleaner(ctx, app.checkoutService, cfg.Cleaner.Interval, cfg.Cleaner.Timeout, infoLog, errorLog)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: true,
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		ErrorLog:     errorLog,
		Handler:      c.Handler(app.routes()),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			errorLog.Printf("shutdown: %v", err)
		}
	}()

	infoLog.Printf("Starting server on %s (storage=%s, photos=%s)", cfg.Server.Address, cfg.Storage.Backend, cfg.Photos.Storage)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		errorLog.Fatal(err)
	}
	infoLog.Println("Server stopped")
}

func printToken(secret, userID, role string) error {
	manager, err := utils.NewManager(secret)
	if err != nil {
		return fmt.Errorf("token: %w", err)
	}
	token, err := manager.NewJWT(userID, role, 24*time.Hour)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
