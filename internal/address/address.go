package address

import (
	"fmt"
	"strings"
)

// Address is the canonical (bucket, key) form of an S3 location.
// An empty Key means the address refers to the bucket itself.
type Address struct {
	Bucket string
	Key    string
}

// URL renders the address in s3:// form.
func (a Address) URL() string {
	if a.Key == "" {
		return "s3://" + a.Bucket
	}
	return "s3://" + a.Bucket + "/" + a.Key
}

// IsObject reports whether the address names an object rather than a bucket.
func (a Address) IsObject() bool {
	return a.Key != ""
}

// Normalize converts a raw domain or URL string into a canonical Address.
// Accepted forms, checked in this order:
//
//	bucket.s3.region.amazonaws.com/path   (virtual-hosted)
//	bucket.s3-region.amazonaws.com/path   (virtual-hosted, legacy dash)
//	s3.region.amazonaws.com/bucket/path   (path-style)
//	s3.amazonaws.com/bucket/path          (path-style, global endpoint)
//	s3://bucket/path                      (already canonical)
//	bucket/path                           (bare bucket name)
//
// A leading http:// or https:// scheme is stripped first. The first matching
// form wins. Normalize fails only when no bucket can be extracted.
func Normalize(raw string) (Address, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Address{}, fmt.Errorf("empty input")
	}

	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	if s == "" {
		return Address{}, fmt.Errorf("no address after scheme in %q", raw)
	}

	switch {
	case isVirtualHosted(s):
		return parseVirtualHosted(s), nil
	case strings.HasPrefix(s, "s3.") || strings.HasPrefix(s, "s3-") || strings.Contains(s, "s3.amazonaws.com"):
		return parsePathStyle(s, raw)
	case strings.HasPrefix(s, "s3://"):
		return parseCanonical(s, raw)
	default:
		bucket, key := splitFirst(s)
		if bucket == "" {
			return Address{}, fmt.Errorf("no bucket in %q", raw)
		}
		return Address{Bucket: bucket, Key: key}, nil
	}
}

// isVirtualHosted matches hosts that embed the bucket name before an
// .s3. or .s3- marker, e.g. bucket.s3.us-west-2.amazonaws.com.
func isVirtualHosted(s string) bool {
	host, _ := splitFirst(s)
	return strings.Contains(host, ".s3.") || strings.Contains(host, ".s3-")
}

func parseVirtualHosted(s string) Address {
	host, key := splitFirst(s)

	bucket := host
	if i := strings.Index(host, ".s3."); i >= 0 {
		bucket = host[:i]
	} else if i := strings.Index(host, ".s3-"); i >= 0 {
		bucket = host[:i]
	}

	return Address{Bucket: bucket, Key: key}
}

// parsePathStyle handles s3.region.amazonaws.com/bucket/key: the host segment
// is discarded, the first path segment is the bucket.
func parsePathStyle(s, raw string) (Address, error) {
	parts := strings.SplitN(s, "/", 3)
	if len(parts) < 2 || parts[1] == "" {
		return Address{}, fmt.Errorf("no bucket in path-style URL %q", raw)
	}
	addr := Address{Bucket: parts[1]}
	if len(parts) == 3 {
		addr.Key = parts[2]
	}
	return addr, nil
}

func parseCanonical(s, raw string) (Address, error) {
	rest := strings.TrimPrefix(s, "s3://")
	bucket, key := splitFirst(rest)
	if bucket == "" {
		return Address{}, fmt.Errorf("no bucket in %q", raw)
	}
	return Address{Bucket: bucket, Key: key}, nil
}

func splitFirst(s string) (string, string) {
	if i := strings.Index(s, "/"); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}
