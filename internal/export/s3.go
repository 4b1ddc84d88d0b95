package export

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"
)

// DefaultRegion is used by NewS3Sink when no region is given.
const DefaultRegion = `eu-west-2`

// S3Sink uploads objects to an S3 bucket.
type S3Sink struct {
	Bucket string
	// Prefix is prepended to every key, separated by a slash.
	Prefix   string
	Uploader s3manageriface.UploaderAPI
	Logger   *log.Logger
}

// NewS3Sink sets up an uploader for bucket in region using the default
// AWS credential chain.
func NewS3Sink(region, bucket, prefix string) (*S3Sink, error) {
	if bucket == "" {
		return nil, fmt.Errorf("no bucket given")
	}
	if region == "" {
		region = DefaultRegion
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up aws session: %w", err)
	}

	return &S3Sink{
		Bucket:   bucket,
		Prefix:   prefix,
		Uploader: s3manager.NewUploader(sess),
		Logger:   log.New(os.Stderr, "", 0),
	}, nil
}

// Key returns the object key used for name.
func (s *S3Sink) Key(name string) string {
	if s.Prefix == "" {
		return name
	}
	return path.Join(s.Prefix, name)
}

// Put encodes img as PNG and uploads it, returning the upload location.
func (s *S3Sink) Put(ctx context.Context, name string, img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", name, err)
	}

	key := s.Key(name)
	if s.Logger != nil {
		s.Logger.Printf("Uploading s3://%s/%s", s.Bucket, key)
	}

	out, err := s.Uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/png"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload s3://%s/%s: %w", s.Bucket, key, err)
	}
	return out.Location, nil
}
