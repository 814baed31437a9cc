package openai

import (
	"errors"
	"strings"

	"github.com/r-okamoto/explainer/internal/inference"
)

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// Retry on 5xx errors (server errors) and rate limiting (429)
	var requestErr *inference.RequestError
	if errors.As(err, &requestErr) && requestErr.StatusCode > 0 {
		return requestErr.StatusCode >= 500 || requestErr.StatusCode == 429
	}

	// Retry on network-related errors
	errStr := err.Error()
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}

	return false
}
