package portalsdk

import (
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the portal invitation service. Public invitee
// operations work without credentials; staff operations require Token to be
// set to a bearer access token carrying the invitations scopes.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client

	// Token is attached as a Bearer credential to staff operations when
	// non-empty. The external auth service issues it; this SDK never mints
	// tokens itself.
	Token string
}

// NewSDKClient creates a new portal service client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}
