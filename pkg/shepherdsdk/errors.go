package shepherdsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error codes written by the server.
const (
	ErrorCodeInvalidRequest    = "invalid_request"
	ErrorCodeValidationFailed  = "validation_failed"
	ErrorCodeUnauthorized      = "unauthorized"
	ErrorCodeInvalidToken      = "invalid_token"
	ErrorCodeInvalidCredential = "invalid_credentials"
	ErrorCodeForbidden         = "forbidden"
	ErrorCodeNotFound          = "not_found"
	ErrorCodeConflict          = "conflict"
	ErrorCodeRateLimited       = "rate_limit_exceeded"
	ErrorCodeServerError       = "server_error"
)

// APIError is a non-2xx response decoded into a Go error.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
	Fields      map[string]string
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("shepherd: %d %s", e.StatusCode, e.Code)
	}
	return fmt.Sprintf("shepherd: %d %s: %s", e.StatusCode, e.Code, e.Description)
}

// StatusCode returns the HTTP status of err if it is an *APIError, else 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// parseErrorResponse turns an error body into an *APIError, falling back to
// the status text when the body is not an ErrorResponse.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
			Fields:      errResp.Fields,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
