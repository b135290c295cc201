package topology

import "errors"

// Sentinel errors for the topology package, following the same errors.Is
// branching policy as graph and reservation (mirrors builder/errors.go).
var (
	// ErrTooFewVertices indicates a size parameter (n, rows, cols, spokes)
	// is smaller than the constructor's minimum.
	ErrTooFewVertices = errors.New("topology: parameter too small")

	// ErrBadSegmentLength indicates a non-positive segment length was
	// supplied to a constructor.
	ErrBadSegmentLength = errors.New("topology: segment length must be > 0")
)

// wrapf prefixes an inner error with the constructor's method name,
// mirroring builder/errors.go's builderErrorf.
func wrapf(method string, err error) error {
	return &wrappedError{method: method, err: err}
}

type wrappedError struct {
	method string
	err    error
}

func (w *wrappedError) Error() string { return w.method + ": " + w.err.Error() }

func (w *wrappedError) Unwrap() error { return w.err }
