// Package probe performs minimal-permission reachability checks against
// canonical S3 addresses and fans them out over a bounded worker pool.
package probe

import (
	"context"
	"errors"
	"fmt"

	"github.com/ppiankov/s3reach/internal/address"
	"github.com/ppiankov/s3reach/internal/s3"
)

// Classification is the outcome category of a single probe.
type Classification int

const (
	BucketOK Classification = iota
	ObjectOK
	BucketNotFound
	ObjectNotFound
	AccessDenied
	MalformedInput
	TransportError
)

func (c Classification) String() string {
	switch c {
	case BucketOK:
		return "bucket_ok"
	case ObjectOK:
		return "object_ok"
	case BucketNotFound:
		return "bucket_not_found"
	case ObjectNotFound:
		return "object_not_found"
	case AccessDenied:
		return "access_denied"
	case MalformedInput:
		return "malformed_input"
	case TransportError:
		return "transport_error"
	default:
		return "unknown"
	}
}

// Outcome is the result of probing one address. Reachable is true only
// for BucketOK and ObjectOK.
type Outcome struct {
	Address        address.Address
	Reachable      bool
	Classification Classification
	Detail         string
}

// StorageClient is the minimal capability set a probe needs. Failures are
// reported as *s3.Error with a classified Kind. Implementations must be
// safe for concurrent use.
type StorageClient interface {
	LocateBucket(ctx context.Context, bucket string) error
	StatObject(ctx context.Context, bucket, key string) error
}

// Probe checks a single address with the cheapest call that proves access:
// GetBucketLocation for bucket addresses, HeadObject for object addresses.
// Client errors never escape; they are classified into the Outcome.
func Probe(ctx context.Context, client StorageClient, addr address.Address) Outcome {
	if addr.IsObject() {
		return probeObject(ctx, client, addr)
	}
	return probeBucket(ctx, client, addr)
}

func probeBucket(ctx context.Context, client StorageClient, addr address.Address) Outcome {
	err := client.LocateBucket(ctx, addr.Bucket)
	if err == nil {
		return Outcome{Address: addr, Reachable: true, Classification: BucketOK, Detail: "Bucket accessible"}
	}

	out := Outcome{Address: addr}
	switch kind(err) {
	case s3.KindNoSuchBucket:
		out.Classification = BucketNotFound
		out.Detail = "Bucket does not exist"
	case s3.KindAccessDenied:
		out.Classification = AccessDenied
		out.Detail = "Access denied to bucket"
	default:
		out.Classification = TransportError
		out.Detail = errorDetail(err)
	}
	return out
}

func probeObject(ctx context.Context, client StorageClient, addr address.Address) Outcome {
	err := client.StatObject(ctx, addr.Bucket, addr.Key)
	if err == nil {
		return Outcome{Address: addr, Reachable: true, Classification: ObjectOK, Detail: "Object accessible"}
	}

	out := Outcome{Address: addr}
	switch kind(err) {
	case s3.KindNoSuchKey:
		out.Classification = ObjectNotFound
		out.Detail = "Object does not exist"
	case s3.KindNoSuchBucket:
		out.Classification = BucketNotFound
		out.Detail = "Bucket does not exist"
	case s3.KindAccessDenied:
		out.Classification = AccessDenied
		out.Detail = "Access denied to object"
	default:
		out.Classification = TransportError
		out.Detail = errorDetail(err)
	}
	return out
}

// Malformed builds the outcome for an input line that never produced a
// valid address.
func Malformed(err error) Outcome {
	return Outcome{
		Classification: MalformedInput,
		Detail:         fmt.Sprintf("Invalid S3 URL format: %v", err),
	}
}

func kind(err error) s3.ErrorKind {
	var storeErr *s3.Error
	if errors.As(err, &storeErr) {
		return storeErr.Kind
	}
	return s3.KindOther
}

func errorDetail(err error) string {
	var storeErr *s3.Error
	if errors.As(err, &storeErr) && storeErr.Code != "" {
		return fmt.Sprintf("Error: %s", storeErr.Code)
	}
	return fmt.Sprintf("Error: %v", err)
}
