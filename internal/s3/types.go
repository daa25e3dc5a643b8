package s3

import "fmt"

// ErrorKind is the closed set of failure categories a storage call can
// report. Callers branch on Kind instead of matching AWS error strings.
type ErrorKind int

const (
	// KindOther covers transport failures and any AWS error code not
	// mapped to a more specific kind.
	KindOther ErrorKind = iota
	KindNoSuchBucket
	KindNoSuchKey
	KindAccessDenied
)

// Error is the typed failure returned by Client operations. Code carries
// the raw AWS error code when one was present.
type Error struct {
	Kind ErrorKind
	Op   string
	Code string
	Err  error
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
