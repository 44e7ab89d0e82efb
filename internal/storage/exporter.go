package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/brainrotlabs/brainrot-api/internal/models"
)

type Config struct {
	Endpoint      string
	Region        string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
	UsePathStyle  bool
	Prefix        string
}

// Exporter writes post-history snapshots to an S3-compatible bucket and
// returns a download URL.
type Exporter struct {
	cfg    Config
	client *s3.Client
}

func NewExporter(cfg Config) (*Exporter, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("s3 region is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("s3 credentials are required")
	}
	if cfg.PublicBaseURL == "" {
		return nil, fmt.Errorf("s3 public base url is required")
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "exports"
	}

	options := s3.Options{
		Region:       cfg.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		UsePathStyle: cfg.UsePathStyle,
	}
	if cfg.Endpoint != "" {
		options.BaseEndpoint = aws.String(cfg.Endpoint)
	}

	return &Exporter{
		cfg:    cfg,
		client: s3.New(options),
	}, nil
}

type exportDocument struct {
	UserID     string        `json:"user_id"`
	ExportedAt time.Time     `json:"exported_at"`
	PostCount  int           `json:"post_count"`
	Posts      []models.Post `json:"posts"`
}

// ExportHistory uploads the user's posts as a JSON document.
func (e *Exporter) ExportHistory(ctx context.Context, userID string, posts []models.Post) (string, error) {
	if len(posts) == 0 {
		return "", fmt.Errorf("nothing to export")
	}

	doc := exportDocument{
		UserID:     userID,
		ExportedAt: time.Now().UTC(),
		PostCount:  len(posts),
		Posts:      posts,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal export: %w", err)
	}

	key := e.generateKey()
	_, err = e.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(e.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("upload export: %w", err)
	}
	return strings.TrimRight(e.cfg.PublicBaseURL, "/") + "/" + key, nil
}

func (e *Exporter) generateKey() string {
	now := time.Now().UTC()
	prefix := strings.Trim(e.cfg.Prefix, "/")
	return path.Join(prefix, fmt.Sprintf("%04d/%02d/%02d", now.Year(), now.Month(), now.Day()), uuid.NewString()+".json")
}
