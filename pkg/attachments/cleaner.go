package attachments

import (
	"context"
	"fmt"

	"github.com/Gobusters/ectologger"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/Ramsey-B/juniper/pkg/tracing"
)

// Cleaner removes files attached to a component. Cleanup is best-effort by
// contract: callers log failures and proceed with the component delete.
type Cleaner interface {
	DeleteComponentFiles(ctx context.Context, tenantID, componentID string) error
}

// S3Cleaner deletes attachment objects under the component's key prefix.
type S3Cleaner struct {
	client *s3.Client
	bucket string
	logger ectologger.Logger
}

// NewS3Cleaner creates a cleaner against the given bucket using the default
// AWS credential chain.
func NewS3Cleaner(ctx context.Context, bucket, region string, logger ectologger.Logger) (*S3Cleaner, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3Cleaner{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		logger: logger,
	}, nil
}

// DeleteComponentFiles removes every object under the component's attachment
// prefix, paging through the listing and deleting in batches.
func (c *S3Cleaner) DeleteComponentFiles(ctx context.Context, tenantID, componentID string) error {
	ctx, span := tracing.StartSpan(ctx, "attachments.S3Cleaner.DeleteComponentFiles")
	defer span.End()

	prefix := fmt.Sprintf("%s/components/%s/", tenantID, componentID)

	var token *string
	deleted := 0
	for {
		out, err := c.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(c.bucket),
			Prefix:            aws.String(prefix),
			ContinuationToken: token,
		})
		if err != nil {
			return fmt.Errorf("failed to list attachments under %s: %w", prefix, err)
		}

		if len(out.Contents) > 0 {
			objects := make([]types.ObjectIdentifier, 0, len(out.Contents))
			for _, obj := range out.Contents {
				objects = append(objects, types.ObjectIdentifier{Key: obj.Key})
			}

			if _, err := c.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
				Bucket: aws.String(c.bucket),
				Delete: &types.Delete{Objects: objects, Quiet: aws.Bool(true)},
			}); err != nil {
				return fmt.Errorf("failed to delete attachments under %s: %w", prefix, err)
			}
			deleted += len(objects)
		}

		if out.IsTruncated == nil || !*out.IsTruncated {
			break
		}
		token = out.NextContinuationToken
	}

	if deleted > 0 {
		c.logger.WithContext(ctx).WithFields(map[string]any{
			"component_id": componentID,
			"deleted":      deleted,
		}).Info("Deleted component attachments")
	}

	return nil
}

// NopCleaner skips attachment cleanup. Used when no bucket is configured and
// in tests.
type NopCleaner struct{}

func (NopCleaner) DeleteComponentFiles(context.Context, string, string) error {
	return nil
}
