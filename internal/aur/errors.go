package aur

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

var (
	// ErrUnsupportedPlatform is returned when the AUR channel is queried outside Linux.
	ErrUnsupportedPlatform = errors.New("AUR update check is only available on Linux")

	// ErrNetwork marks transport failures reaching the AUR.
	ErrNetwork = errors.New("AUR network error")

	// ErrAPI marks non-success HTTP responses from the AUR.
	ErrAPI = errors.New("AUR API error")

	// ErrParse marks response bodies that are not valid RPC JSON.
	ErrParse = errors.New("AUR response parse error")

	// ErrNotFound marks lookups where the AUR reports no matching package.
	ErrNotFound = errors.New("AUR package not found")
)

// APIError is returned when the AUR answers with a non-success status.
type APIError struct {
	StatusCode int
}

// Error returns the error message.
func (e *APIError) Error() string {
	return fmt.Sprintf("AUR API returned error: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Is lets errors.Is(err, ErrAPI) match any APIError.
func (*APIError) Is(target error) bool {
	return target == ErrAPI
}
