package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/tuanngo/vehicle-registration-backend/interfaces"
)

// S3Mirror replicates attachments in Amazon S3 or compatible object storage
// under their canonical content identifier. It supports both public read-only
// access and authenticated write access.
type S3Mirror struct {
	client         *s3.S3
	writeClient    *s3.S3
	bucketName     string
	prefix         string
	log            *slog.Logger
	locationURI    string
	hasWriteAccess bool
}

// NewS3Mirror creates a new S3 mirror.
// If accessKey and secretKey are provided, the mirror will have write access.
// Otherwise, it will be read-only for publicly accessible objects.
func NewS3Mirror(bucketName, prefix, region, endpoint, accessKey, secretKey string, log *slog.Logger) (*S3Mirror, error) {
	uri := fmt.Sprintf("s3://%s/%s?region=%s", bucketName, prefix, region)
	if endpoint != "" {
		uri += fmt.Sprintf("&endpoint=%s", endpoint)
	}
	if accessKey != "" {
		uri = fmt.Sprintf("s3://%s:***@%s/%s?region=%s", accessKey, bucketName, prefix, region)
		if endpoint != "" {
			uri += fmt.Sprintf("&endpoint=%s", endpoint)
		}
	}

	baseCfg := aws.Config{
		Region: aws.String(region),
	}
	if endpoint != "" {
		baseCfg.Endpoint = aws.String(endpoint)
	}

	// No credentials required for public buckets.
	baseSess, err := session.NewSession(&baseCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}
	readClient := s3.New(baseSess)

	hasWriteAccess := accessKey != "" && secretKey != ""
	var writeClient *s3.S3

	if hasWriteAccess {
		writeCfg := baseCfg.Copy()
		writeCfg.Credentials = credentials.NewStaticCredentials(accessKey, secretKey, "")

		writeSess, err := session.NewSession(writeCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create AWS write session: %w", err)
		}
		writeClient = s3.New(writeSess)
	} else {
		// This may work for public writable buckets (not recommended for production).
		writeClient = readClient
		log.Warn("No S3 credentials provided - write operations may fail unless bucket is public writable")
	}

	return &S3Mirror{
		client:         readClient,
		writeClient:    writeClient,
		bucketName:     bucketName,
		prefix:         strings.TrimSuffix(prefix, "/"),
		log:            log,
		locationURI:    uri,
		hasWriteAccess: hasWriteAccess,
	}, nil
}

// PutAt uploads data to S3 under the given content identifier.
func (m *S3Mirror) PutAt(ctx context.Context, id interfaces.ContentID, data []byte) error {
	key := m.getObjectKey(id)

	_, err := m.writeClient.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket: aws.String(m.bucketName),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		if !m.hasWriteAccess {
			return fmt.Errorf("failed to upload object to S3 (no write credentials provided): %w", err)
		}
		return fmt.Errorf("failed to upload object to S3: %w", err)
	}

	m.log.Debug("Mirrored content to S3",
		slog.String("bucket", m.bucketName),
		slog.String("key", key),
		slog.Int("size", len(data)))

	return nil
}

// Get retrieves an object from S3 by its content identifier.
// Returns ErrContentNotFound if the object doesn't exist.
func (m *S3Mirror) Get(ctx context.Context, id interfaces.ContentID) ([]byte, error) {
	start := time.Now()
	key := m.getObjectKey(id)

	result, err := m.client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(m.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		if strings.Contains(err.Error(), "NoSuchKey") || strings.Contains(err.Error(), "404") {
			m.log.Debug("Content not found in S3",
				slog.String("cid", id.String()),
				slog.String("bucket", m.bucketName),
				slog.String("key", key),
				slog.Duration("duration", time.Since(start)))
			return nil, interfaces.ErrContentNotFound
		}

		m.log.Error("Failed to get object from S3",
			slog.String("cid", id.String()),
			slog.String("bucket", m.bucketName),
			slog.String("key", key),
			"err", err,
			slog.Duration("duration", time.Since(start)))
		return nil, fmt.Errorf("failed to get object from S3: %w", err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object body: %w", err)
	}

	m.log.Debug("Fetched content from S3",
		slog.String("cid", id.String()),
		slog.String("bucket", m.bucketName),
		slog.String("key", key),
		slog.Int("size", len(data)),
		slog.Duration("duration", time.Since(start)))

	return data, nil
}

// Available checks if the S3 mirror is accessible by attempting to head the bucket.
func (m *S3Mirror) Available(ctx context.Context) bool {
	start := time.Now()

	_, err := m.client.HeadBucketWithContext(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(m.bucketName),
	})
	if err != nil {
		m.log.Warn("S3 mirror unavailable",
			slog.String("bucket", m.bucketName),
			"err", err,
			slog.Duration("duration", time.Since(start)))
		return false
	}

	return true
}

// Name returns a unique identifier for this mirror.
func (m *S3Mirror) Name() string {
	return fmt.Sprintf("s3-%s", m.bucketName)
}

// LocationURI returns the URI that identifies this mirror.
func (m *S3Mirror) LocationURI() string {
	return m.locationURI
}

func (m *S3Mirror) getObjectKey(id interfaces.ContentID) string {
	if m.prefix == "" {
		return id.String()
	}
	return path.Join(m.prefix, id.String())
}
