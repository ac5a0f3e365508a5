package portal_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/northbeamhq/portal/pkg/portalsdk"
	"github.com/stretchr/testify/require"
)

func TestInvitationLifecycle(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	staff := staffClient(t, baseURL, "invitations:read", "invitations:write")
	public := publicClient(baseURL)

	inv, token := setupInvitation(t, staff, "owner@citygym.example", "City Gym")
	require.Equal(t, "owner@citygym.example", inv.Email)
	require.WithinDuration(t, time.Now().Add(7*24*time.Hour), inv.ExpiresAt, time.Minute,
		"invitation should expire seven days out")

	// The public validate endpoint sees the pending invitation but never
	// the token itself.
	validated, err := public.ValidateInvitation(t.Context(), token)
	require.NoError(t, err)
	require.Equal(t, inv.ID, validated.ID)
	require.Equal(t, inv.Email, validated.Email)
	require.NotNil(t, validated.OrganizationSetup)
	require.Equal(t, "City Gym", validated.OrganizationSetup.BusinessName)

	// Staff listing includes the pending invitation.
	list, err := staff.ListInvitations(t.Context(), "pending")
	require.NoError(t, err)
	require.Len(t, list.Invitations, 1)
	require.Equal(t, inv.ID, list.Invitations[0].ID)

	// Revoking flips it to revoked and kills the token.
	revoked, err := staff.RevokeInvitation(t.Context(), inv.ID)
	require.NoError(t, err)
	require.Equal(t, "revoked", revoked.Status)

	_, err = public.ValidateInvitation(t.Context(), token)
	requireAPIError(t, err, http.StatusGone, portalsdk.ErrorCodeRevoked)

	// Revoking again is rejected, the invitation is no longer pending.
	_, err = staff.RevokeInvitation(t.Context(), inv.ID)
	requireAPIError(t, err, http.StatusConflict, portalsdk.ErrorCodeNotPending)
}

func TestInvitationPendingDuplicate(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	staff := staffClient(t, baseURL, "invitations:write")

	setupInvitation(t, staff, "dup@citygym.example", "City Gym")

	_, err := staff.CreateInvitation(t.Context(), portalsdk.CreateInvitationRequest{
		Email:       "dup@citygym.example",
		Role:        "client",
		AccountType: "team_lead",
		OrganizationSetup: &portalsdk.OrganizationSetup{
			BusinessName: "Another Gym",
		},
	})
	requireAPIError(t, err, http.StatusConflict, portalsdk.ErrorCodePendingExists)
}

func TestInvitationValidateErrors(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	public := publicClient(baseURL)

	_, err := public.ValidateInvitation(t.Context(), "")
	requireAPIError(t, err, http.StatusBadRequest, portalsdk.ErrorCodeNoToken)

	_, err = public.ValidateInvitation(t.Context(), "not-a-real-token")
	requireAPIError(t, err, http.StatusNotFound, portalsdk.ErrorCodeInvalidToken)
}

func TestInvitationStaffEndpointsRequireAuth(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	// No credentials at all.
	anon := publicClient(baseURL)
	_, err := anon.CreateInvitation(t.Context(), portalsdk.CreateInvitationRequest{
		Email:       "anon@example.com",
		Role:        "client",
		AccountType: "team_lead",
		OrganizationSetup: &portalsdk.OrganizationSetup{
			BusinessName: "Anon Gym",
		},
	})
	var apiErr *portalsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	// Authenticated but missing the write scope.
	readOnly := staffClient(t, baseURL, "invitations:read")
	_, err = readOnly.CreateInvitation(t.Context(), portalsdk.CreateInvitationRequest{
		Email:       "scopeless@example.com",
		Role:        "client",
		AccountType: "team_lead",
		OrganizationSetup: &portalsdk.OrganizationSetup{
			BusinessName: "Scopeless Gym",
		},
	})
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusForbidden, apiErr.StatusCode)

	// Read scope is enough for listing.
	_, err = readOnly.ListInvitations(t.Context(), "")
	require.NoError(t, err)
}
