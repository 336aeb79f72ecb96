// ABOUTME: Typed errors for SportRadar API failures.
// ABOUTME: Tags upstream HTTP, transport, and decode failures with resource context.

package sportradar

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies an APIError.
type ErrorKind string

const (
	// KindUpstream marks a non-2xx status from the SportRadar API.
	KindUpstream ErrorKind = "upstream"
	// KindTransport marks a network or timeout failure reaching the API.
	KindTransport ErrorKind = "transport"
	// KindDecode marks a response body that is not valid JSON.
	KindDecode ErrorKind = "decode"
)

// APIError captures a failed API call with enough context to identify the
// request that caused it. The credential is never included.
type APIError struct {
	Kind       ErrorKind
	Resource   string
	Params     map[string]string
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s error", e.Resource, e.Kind)
	if e.StatusCode > 0 {
		fmt.Fprintf(&b, " (status=%d)", e.StatusCode)
	}
	if len(e.Params) > 0 {
		fmt.Fprintf(&b, " %s", formatParams(e.Params))
	}
	if e.Message != "" {
		fmt.Fprintf(&b, ": %s", e.Message)
	}
	return b.String()
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// AsAPIError attempts to unwrap an error into an APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func formatParams(params map[string]string) string {
	parts := make([]string, 0, len(params))
	for _, k := range sortedKeys(params) {
		parts = append(parts, k+"="+params[k])
	}
	return strings.Join(parts, " ")
}
