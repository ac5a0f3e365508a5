package portal_test

import (
	"net/http"
	"testing"

	"github.com/northbeamhq/portal/pkg/portalsdk"
	"github.com/stretchr/testify/require"
)

// TestValidateRateLimited checks the strict per-IP limit on the public token
// endpoint. Uses production default limits, so it gets its own container.
func TestValidateRateLimited(t *testing.T) {
	baseURL, cleanup := setupPortalContainerWithDefaultRateLimits(t)
	defer cleanup()

	public := publicClient(baseURL)

	// Burn through the strict budget with invalid tokens, then watch the
	// limiter take over.
	limited := false
	for i := 0; i < 20; i++ {
		_, err := public.ValidateInvitation(t.Context(), "enumeration-attempt")
		require.Error(t, err)

		var apiErr *portalsdk.APIError
		require.ErrorAs(t, err, &apiErr)

		if apiErr.StatusCode == http.StatusTooManyRequests {
			require.Equal(t, portalsdk.ErrorCodeRateLimited, apiErr.Code)
			limited = true
			break
		}
		require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	}

	require.True(t, limited, "strict limiter should kick in within 20 requests")
}
