package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/profefranko/profefranko-api/pkg/logger"
	"github.com/profefranko/profefranko-api/pkg/metrics"
	"go.uber.org/zap"
)

// ArchiveClient archives generated PDF summaries in an S3-compatible bucket.
// The archive is best-effort: the notification pipeline never depends on it.
type ArchiveClient struct {
	s3Client   *s3.Client
	bucketName string
	endpoint   string
}

// NewArchiveClient creates an object storage client using the S3 SDK
func NewArchiveClient(accessKeyID, secretAccessKey, bucketName, endpoint, region string) (*ArchiveClient, error) {
	if endpoint == "" {
		endpoint = "https://s3.amazonaws.com"
	}
	if region == "" {
		region = "us-east-1"
	}

	s3Client := s3.New(s3.Options{
		Region:       region,
		BaseEndpoint: aws.String(endpoint),
		Credentials: credentials.NewStaticCredentialsProvider(
			accessKeyID,
			secretAccessKey,
			"", // session token not needed
		),
	})

	logger.Info("PDF archive storage client initialized",
		zap.String("bucket", bucketName),
		zap.String("endpoint", endpoint),
		zap.String("region", region),
	)

	return &ArchiveClient{
		s3Client:   s3Client,
		bucketName: bucketName,
		endpoint:   endpoint,
	}, nil
}

// UploadPDF uploads a generated PDF to the archive bucket.
// Returns the public URL of the stored object.
func (a *ArchiveClient) UploadPDF(ctx context.Context, pdfBytes []byte, key string) (string, error) {
	start := time.Now()
	operation := "uploadPDF"

	_, err := a.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(pdfBytes),
		ContentType: aws.String("application/pdf"),
	})

	duration := metrics.MeasureDuration(start)

	if err != nil {
		metrics.StorageRequestDuration.WithLabelValues(operation, "error").Observe(duration)
		metrics.StorageRequestTotal.WithLabelValues(operation, "error").Inc()
		logger.LogAPICall("archive_storage", operation, "error", duration,
			zap.Error(err),
			zap.String("key", key),
		)
		return "", fmt.Errorf("failed to upload PDF to archive: %w", err)
	}

	metrics.StorageRequestDuration.WithLabelValues(operation, "success").Observe(duration)
	metrics.StorageRequestTotal.WithLabelValues(operation, "success").Inc()
	logger.LogAPICall("archive_storage", operation, "success", duration,
		zap.String("key", key),
		zap.Int("size_bytes", len(pdfBytes)),
	)

	// Format: {endpoint}/{bucket}/{key}
	objectURL := fmt.Sprintf("%s/%s/%s", a.endpoint, a.bucketName, key)

	return objectURL, nil
}
