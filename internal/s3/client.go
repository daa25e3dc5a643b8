package s3

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// Client wraps the AWS S3 client
type Client struct {
	s3Client *s3.Client
	config   aws.Config
}

// NewClient creates a new S3 client
func NewClient(ctx context.Context, profile, region string) (*Client, error) {
	// Load AWS config
	opts := []func(*config.LoadOptions) error{}

	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}

	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return &Client{
		s3Client: s3.NewFromConfig(cfg),
		config:   cfg,
	}, nil
}

// GetRegion returns the configured region
func (c *Client) GetRegion() string {
	return c.config.Region
}

// LocateBucket performs the cheapest bucket-level access check:
// GetBucketLocation needs no list or read permission on the contents.
// Returns nil on success, otherwise a *Error with a classified Kind.
func (c *Client) LocateBucket(ctx context.Context, bucket string) error {
	_, err := c.s3Client.GetBucketLocation(ctx, &s3.GetBucketLocationInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return classify("locate bucket", err, false)
	}
	return nil
}

// StatObject performs a metadata-only object access check via HeadObject,
// avoiding a content fetch. Returns nil on success, otherwise a *Error
// with a classified Kind.
func (c *Client) StatObject(ctx context.Context, bucket, key string) error {
	_, err := c.s3Client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return classify("stat object", err, true)
	}
	return nil
}

// classify maps an AWS SDK error into the closed ErrorKind set exactly once,
// at the client boundary. HeadObject reports a bare 404 NotFound for a
// missing key, so in object context NotFound means the key is absent.
func classify(op string, err error, object bool) *Error {
	var noSuchBucket *types.NoSuchBucket
	if errors.As(err, &noSuchBucket) {
		return &Error{Kind: KindNoSuchBucket, Op: op, Code: "NoSuchBucket", Err: err}
	}
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return &Error{Kind: KindNoSuchKey, Op: op, Code: "NoSuchKey", Err: err}
	}
	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		if object {
			return &Error{Kind: KindNoSuchKey, Op: op, Code: "NotFound", Err: err}
		}
		return &Error{Kind: KindNoSuchBucket, Op: op, Code: "NotFound", Err: err}
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		switch code {
		case "NoSuchBucket":
			return &Error{Kind: KindNoSuchBucket, Op: op, Code: code, Err: err}
		case "NoSuchKey", "NotFound":
			kind := KindNoSuchBucket
			if object {
				kind = KindNoSuchKey
			}
			return &Error{Kind: kind, Op: op, Code: code, Err: err}
		case "AccessDenied", "Forbidden":
			return &Error{Kind: KindAccessDenied, Op: op, Code: code, Err: err}
		default:
			return &Error{Kind: KindOther, Op: op, Code: code, Err: err}
		}
	}

	return &Error{Kind: KindOther, Op: op, Err: err}
}

// ListRegions returns all enabled AWS regions
func (c *Client) ListRegions(ctx context.Context) ([]string, error) {
	// Create EC2 client to list regions
	ec2Client := ec2.NewFromConfig(c.config)

	result, err := ec2Client.DescribeRegions(ctx, &ec2.DescribeRegionsInput{
		AllRegions: aws.Bool(false), // Only enabled regions
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list AWS regions: %w", err)
	}

	regions := make([]string, 0, len(result.Regions))
	for _, region := range result.Regions {
		if region.RegionName != nil {
			regions = append(regions, *region.RegionName)
		}
	}

	return regions, nil
}
