package utils

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

var ErrInvalidFileName = errors.New("invalid file name")

// PhotoStorage saves an uploaded photo and returns the URL it is served from.
type PhotoStorage interface {
	Save(ctx context.Context, data []byte, name, contentType string) (string, error)
}

type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	PublicURL string
	Folder    string
}

// S3Storage uploads to an S3 compatible bucket with public read access.
type S3Storage struct {
	client *s3.S3
	cfg    S3Config
}

func NewS3Storage(cfg S3Config) (*S3Storage, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("s3: empty bucket")
	}
	awsCfg := &aws.Config{Region: aws.String(cfg.Region)}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
		awsCfg.S3ForcePathStyle = aws.Bool(true)
	}
	if cfg.AccessKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}
	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("s3 session: %w", err)
	}
	return &S3Storage{client: s3.New(sess), cfg: cfg}, nil
}

func (s *S3Storage) Save(ctx context.Context, data []byte, name, contentType string) (string, error) {
	key := path.Join(s.cfg.Folder, name)
	if contentType == "" {
		contentType = "image/jpeg"
	}
	_, err := s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("unable to upload file to S3: %w", err)
	}
	return s.objectURL(key), nil
}

func (s *S3Storage) objectURL(key string) string {
	if s.cfg.PublicURL != "" {
		return strings.TrimRight(s.cfg.PublicURL, "/") + "/" + key
	}
	if s.cfg.Endpoint != "" {
		return strings.TrimRight(s.cfg.Endpoint, "/") + "/" + s.cfg.Bucket + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
}

// LocalStorage writes photos to a directory served under URLPrefix.
type LocalStorage struct {
	Dir       string
	URLPrefix string
}

func NewLocalStorage(dir, urlPrefix string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStorage{Dir: dir, URLPrefix: urlPrefix}, nil
}

func (s *LocalStorage) Save(_ context.Context, data []byte, name, _ string) (string, error) {
	base := filepath.Base(name)
	if base == "." || base == "/" || base == ".." || base != name {
		return "", fmt.Errorf("%w: %q", ErrInvalidFileName, name)
	}
	if err := os.WriteFile(filepath.Join(s.Dir, base), data, 0o644); err != nil {
		return "", err
	}
	return strings.TrimRight(s.URLPrefix, "/") + "/" + base, nil
}
