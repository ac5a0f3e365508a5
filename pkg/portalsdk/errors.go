package portalsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Stable error codes returned in ErrorResponse.Error.
const (
	// Token validation codes (GET /v1/invitations/validate).
	ErrorCodeNoToken         = "NO_TOKEN"
	ErrorCodeInvalidToken    = "INVALID_TOKEN"
	ErrorCodeAlreadyAccepted = "ALREADY_ACCEPTED"
	ErrorCodeRevoked         = "REVOKED"
	ErrorCodeExpired         = "EXPIRED"

	// Acceptance and creation codes.
	ErrorCodeWeakPassword   = "WEAK_PASSWORD"
	ErrorCodeEmailTaken     = "EMAIL_TAKEN"
	ErrorCodePendingExists  = "PENDING_EXISTS"
	ErrorCodeInvalidRequest = "INVALID_REQUEST"
	ErrorCodeNotFound       = "NOT_FOUND"
	ErrorCodeNotPending     = "NOT_PENDING"
	ErrorCodeRateLimited    = "RATE_LIMITED"
	ErrorCodeServerError    = "SERVER_ERROR"
)

// APIError is a typed error parsed from an ErrorResponse body. It implements
// the error interface so SDK callers can branch on Code.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int `json:"-"`

	// Code is the stable machine-readable error code.
	Code string `json:"error"`

	// Description is the human-readable message.
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// parseErrorResponse turns a non-2xx response body into an *APIError.
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
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
