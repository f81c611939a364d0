package clients

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"regexp"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"tours/internal/config"
)

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// ObjectPutter is the part of the S3 client used for uploads.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3ImageStore struct {
	client ObjectPutter
	bucket string
	region string
	prefix string
}

func NewS3ImageStore(ctx context.Context, cfg config.S3Config) (*S3ImageStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return NewS3ImageStoreWithClient(s3.NewFromConfig(awsCfg), cfg), nil
}

func NewS3ImageStoreWithClient(client ObjectPutter, cfg config.S3Config) *S3ImageStore {
	return &S3ImageStore{
		client: client,
		bucket: cfg.Bucket,
		region: cfg.Region,
		prefix: cfg.KeyPrefix,
	}
}

// Upload stores an image under a timestamped key and returns its public URL.
func (s *S3ImageStore) Upload(ctx context.Context, fileName, contentType string, content []byte) (string, error) {
	name := unsafeKeyChars.ReplaceAllString(path.Base(fileName), "_")
	key := fmt.Sprintf("%spackageImg-%d-%s", s.prefix, time.Now().UnixMilli(), name)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("error uploading image %s: %w", key, err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}
