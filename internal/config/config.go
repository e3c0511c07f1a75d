package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v2"

	"maxdata/internal/models"
)

const (
	BackendMemory = "memory"
	BackendSQL    = "sql"
	BackendRedis  = "redis"

	PhotosLocal = "local"
	PhotosS3    = "s3"
)

const (
	defaultAddress         = ":4001"
	defaultBackend         = BackendMemory
	defaultDriver          = "mysql"
	defaultRedisAddr       = "localhost:6379"
	defaultPhotoStorage    = PhotosLocal
	defaultUploadDir       = "./uploads"
	defaultUploadURL       = "/uploads"
	defaultMaxUploadBytes  = 10 << 20
	defaultSessionTTL      = 24 * time.Hour
	defaultCleanerInterval = 5 * time.Minute
	defaultCleanerTimeout  = 30 * time.Second
)

type Config struct {
	Server struct {
		Address        string   `yaml:"address"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"server"`
	Storage struct {
		// Backend selects where listings, orders and sessions live.
		Backend string `yaml:"backend"`
	} `yaml:"storage"`
	Database struct {
		Driver string `yaml:"driver"`
		URL    string `yaml:"url"`
	} `yaml:"database"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Photos struct {
		Storage   string   `yaml:"storage"`
		UploadDir string   `yaml:"upload_dir"`
		UploadURL string   `yaml:"upload_url"`
		MaxBytes  int64    `yaml:"max_bytes"`
		DemoPool  []string `yaml:"demo_pool"`
		S3        struct {
			Bucket    string `yaml:"bucket"`
			Region    string `yaml:"region"`
			Endpoint  string `yaml:"endpoint"`
			AccessKey string `yaml:"access_key"`
			SecretKey string `yaml:"secret_key"`
			PublicURL string `yaml:"public_url"`
			Folder    string `yaml:"folder"`
		} `yaml:"s3"`
	} `yaml:"photos"`
	Auth struct {
		Enabled bool   `yaml:"enabled"`
		Secret  string `yaml:"secret"`
	} `yaml:"auth"`
	Checkout struct {
		Currency string         `yaml:"currency"`
		Addons   []models.Addon `yaml:"addons"`
	} `yaml:"checkout"`
	AskMax struct {
		SessionTTL time.Duration `yaml:"session_ttl"`
	} `yaml:"ask_max"`
	Cleaner struct {
		Interval time.Duration `yaml:"interval"`
		Timeout  time.Duration `yaml:"timeout"`
	} `yaml:"cleaner"`
}

// Defaults returns a config that runs fully in memory with local photo storage.
func Defaults() Config {
	var cfg Config
	cfg.Server.Address = defaultAddress
	cfg.Server.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	cfg.Storage.Backend = defaultBackend
	cfg.Database.Driver = defaultDriver
	cfg.Redis.Addr = defaultRedisAddr
	cfg.Photos.Storage = defaultPhotoStorage
	cfg.Photos.UploadDir = defaultUploadDir
	cfg.Photos.UploadURL = defaultUploadURL
	cfg.Photos.MaxBytes = defaultMaxUploadBytes
	cfg.Photos.DemoPool = append([]string(nil), models.DefaultDemoPhotos...)
	cfg.Photos.S3.Region = "us-east-1"
	cfg.Checkout.Currency = models.DefaultCurrency
	cfg.Checkout.Addons = append([]models.Addon(nil), models.DefaultAddons...)
	cfg.AskMax.SessionTTL = defaultSessionTTL
	cfg.Cleaner.Interval = defaultCleanerInterval
	cfg.Cleaner.Timeout = defaultCleanerTimeout
	return cfg
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("unmarshal config data: %w", err)
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		cfg.Server.Address = ":" + strings.TrimPrefix(v, ":")
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); strings.TrimSpace(v) != "" {
		cfg.Server.AllowedOrigins = splitList(v)
	}
	setString(&cfg.Storage.Backend, "STORAGE_BACKEND", true)
	setString(&cfg.Database.Driver, "DATABASE_DRIVER", true)
	setString(&cfg.Database.URL, "DATABASE_URL", false)
	setString(&cfg.Redis.Addr, "REDIS_ADDR", false)
	setString(&cfg.Redis.Password, "REDIS_PASSWORD", false)
	if v, err := readIntEnv("REDIS_DB"); err != nil {
		return fmt.Errorf("parse REDIS_DB: %w", err)
	} else if v != nil {
		cfg.Redis.DB = *v
	}

	setString(&cfg.Photos.Storage, "PHOTO_STORAGE", true)
	setString(&cfg.Photos.UploadDir, "UPLOAD_DIR", false)
	if v, err := readIntEnv("MAX_UPLOAD_BYTES"); err != nil {
		return fmt.Errorf("parse MAX_UPLOAD_BYTES: %w", err)
	} else if v != nil {
		cfg.Photos.MaxBytes = int64(*v)
	}
	setString(&cfg.Photos.S3.Bucket, "S3_BUCKET", false)
	setString(&cfg.Photos.S3.Region, "S3_REGION", false)
	setString(&cfg.Photos.S3.Endpoint, "S3_ENDPOINT", false)
	setString(&cfg.Photos.S3.AccessKey, "S3_ACCESS_KEY", false)
	setString(&cfg.Photos.S3.SecretKey, "S3_SECRET_KEY", false)
	setString(&cfg.Photos.S3.PublicURL, "S3_PUBLIC_URL", false)

	setString(&cfg.Auth.Secret, "JWT_SECRET", false)
	if v := strings.TrimSpace(os.Getenv("AUTH_ENABLED")); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse AUTH_ENABLED: %w", err)
		}
		cfg.Auth.Enabled = enabled
	}
	setString(&cfg.Checkout.Currency, "CHECKOUT_CURRENCY", false)

	if v, err := readIntEnv("ASK_MAX_SESSION_TTL_SECONDS"); err != nil {
		return fmt.Errorf("parse ASK_MAX_SESSION_TTL_SECONDS: %w", err)
	} else if v != nil {
		cfg.AskMax.SessionTTL = time.Duration(*v) * time.Second
	}
	if v, err := readIntEnv("BOOST_CLEANER_INTERVAL_SECONDS"); err != nil {
		return fmt.Errorf("parse BOOST_CLEANER_INTERVAL_SECONDS: %w", err)
	} else if v != nil {
		cfg.Cleaner.Interval = time.Duration(*v) * time.Second
	}
	return nil
}

func (c Config) Validate() error {
	switch c.Storage.Backend {
	case BackendMemory, BackendRedis:
	case BackendSQL:
		if c.Database.Driver != "mysql" && c.Database.Driver != "pgx" {
			return fmt.Errorf("DATABASE_DRIVER must be mysql or pgx, got %q", c.Database.Driver)
		}
		if c.Database.URL == "" {
			return fmt.Errorf("DATABASE_URL is required for the sql backend")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.Storage.Backend)
	}
	if c.Storage.Backend == BackendRedis && c.Redis.Addr == "" {
		return fmt.Errorf("REDIS_ADDR is required for the redis backend")
	}

	switch c.Photos.Storage {
	case PhotosLocal:
		if c.Photos.UploadDir == "" {
			return fmt.Errorf("UPLOAD_DIR is required for local photo storage")
		}
	case PhotosS3:
		if c.Photos.S3.Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required for s3 photo storage")
		}
	default:
		return fmt.Errorf("unknown PHOTO_STORAGE %q", c.Photos.Storage)
	}

	if c.Auth.Enabled && c.Auth.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required when auth is enabled")
	}
	if len(c.Checkout.Addons) == 0 {
		return fmt.Errorf("checkout catalog is empty")
	}
	if c.AskMax.SessionTTL <= 0 {
		return fmt.Errorf("ASK_MAX_SESSION_TTL_SECONDS must be positive")
	}
	if c.Cleaner.Interval <= 0 {
		return fmt.Errorf("BOOST_CLEANER_INTERVAL_SECONDS must be positive")
	}
	if c.Cleaner.Timeout <= 0 {
		return fmt.Errorf("cleaner timeout must be positive")
	}
	return nil
}

func setString(dst *string, name string, lower bool) {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return
	}
	if lower {
		v = strings.ToLower(v)
	}
	*dst = v
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func readIntEnv(name string) (*int, error) {
	val := os.Getenv(name)
	if val == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(val)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
