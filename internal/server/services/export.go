package services

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/CODE-SECX/English-Sikho/internal/dbx"
	"github.com/CODE-SECX/English-Sikho/internal/models"
	sc "github.com/CODE-SECX/English-Sikho/internal/server/config"
	"github.com/CODE-SECX/English-Sikho/internal/server/repositories/repomanager"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// Snapshot is the document written by an export.
type Snapshot struct {
	ExportedAt time.Time           `json:"exported_at"`
	Categories []models.Category   `json:"categories"`
	Vocabulary []models.Vocabulary `json:"vocabulary"`
	Notes      []models.Note       `json:"notes"`
}

// ExportResult locates an uploaded snapshot.
type ExportResult struct {
	Key        string
	URL        string
	Categories int
	Vocabulary int
	Notes      int
}

// ExportService uploads full snapshots of the store to object storage.
type ExportService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
	now         func() time.Time
}

func NewExportService(db *sql.DB, repomanager repomanager.RepositoryManager, config *sc.Config) *ExportService {
	return &ExportService{
		db:          db,
		repomanager: repomanager,
		config:      config,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// ExportKey builds exports/YYYY/MM/DD/<uuid>.json for the given day.
func ExportKey(d time.Time) string {
	return fmt.Sprintf("exports/%04d/%02d/%02d/%s.json", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *ExportService) getS3Client(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}

// Snapshot reads all three tables inside one transaction.
func (s *ExportService) Snapshot(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{ExportedAt: s.now()}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		if snap.Categories, err = s.repomanager.Categories(tx).List(ctx); err != nil {
			return err
		}
		if snap.Vocabulary, err = s.repomanager.Vocabulary(tx).List(ctx); err != nil {
			return err
		}
		if snap.Notes, err = s.repomanager.Notes(tx).List(ctx); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error reading snapshot: %w", err)
	}
	return snap, nil
}

// Export uploads a snapshot and returns its key with a presigned download URL.
func (s *ExportService) Export(ctx context.Context) (*ExportResult, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	body, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding snapshot: %w", err)
	}

	client, err := s.getS3Client(ctx)
	if err != nil {
		return nil, fmt.Errorf("error creating s3 client: %w", err)
	}

	bucket := s.config.S3Bucket
	key := ExportKey(snap.ExportedAt)

	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return nil, fmt.Errorf("error uploading snapshot: %w", err)
	}

	req, err := presignGetObject(newS3PresignClient(client), ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(s.config.ExportURLValidity))
	if err != nil {
		return nil, fmt.Errorf("error presigning snapshot: %w", err)
	}

	return &ExportResult{
		Key:        key,
		URL:        req.URL,
		Categories: len(snap.Categories),
		Vocabulary: len(snap.Vocabulary),
		Notes:      len(snap.Notes),
	}, nil
}
