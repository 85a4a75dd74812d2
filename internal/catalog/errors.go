package catalog

import (
	"fmt"

	"github.com/go-faster/errors"
)

// ErrFetch matches every failure returned by a Fetcher.
var ErrFetch = errors.New("fetch products")

// FetchError describes why the catalogue could not be fetched: a transport
// error, a non-success status, or a body that is not a product list.
type FetchError struct {
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("GET %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("GET %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrFetch) true for any *FetchError.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}
