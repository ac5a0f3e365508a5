package portal_test

import (
	"net/http"
	"testing"

	"github.com/northbeamhq/portal/pkg/portalsdk"
	"github.com/stretchr/testify/require"
)

func TestAcceptProvisionsTenant(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	staff := staffClient(t, baseURL, "invitations:read", "invitations:write")
	public := publicClient(baseURL)

	_, token := setupInvitation(t, staff, "owner@citygym.example", "City Gym")

	accepted, err := public.AcceptInvitation(t.Context(), portalsdk.AcceptInvitationRequest{
		Token:    token,
		Password: "a-long-enough-password",
		Name:     "Casey Owner",
	})
	require.NoError(t, err)

	require.Equal(t, "owner@citygym.example", accepted.Email)
	require.Equal(t, "a-long-enough-password", accepted.Password,
		"plaintext is echoed once for the sign-in handoff")
	require.Equal(t, "Casey Owner", accepted.User.Name)
	require.Equal(t, "client", accepted.User.Role)

	require.NotNil(t, accepted.Organization)
	require.Equal(t, "City Gym", accepted.Organization.Name)
	require.Equal(t, "city-gym", accepted.Organization.Slug)
	require.Equal(t, accepted.Organization.ID, accepted.User.OrganizationID)

	require.NotNil(t, accepted.Project)
	require.Equal(t, "City Gym Website", accepted.Project.Name)
	require.Equal(t, accepted.Organization.ID, accepted.Project.OrganizationID)

	// The token is single-use: both validate and a second accept now fail.
	_, err = public.ValidateInvitation(t.Context(), token)
	requireAPIError(t, err, http.StatusGone, portalsdk.ErrorCodeAlreadyAccepted)

	_, err = public.AcceptInvitation(t.Context(), portalsdk.AcceptInvitationRequest{
		Token:    token,
		Password: "a-long-enough-password",
	})
	requireAPIError(t, err, http.StatusGone, portalsdk.ErrorCodeAlreadyAccepted)

	// Staff-side the invitation shows as accepted with the tenant backfilled.
	list, err := staff.ListInvitations(t.Context(), "accepted")
	require.NoError(t, err)
	require.Len(t, list.Invitations, 1)
	require.Equal(t, accepted.Organization.ID, list.Invitations[0].OrganizationID)
	require.NotNil(t, list.Invitations[0].AcceptedAt)
}

func TestAcceptWeakPassword(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	staff := staffClient(t, baseURL, "invitations:write")
	public := publicClient(baseURL)

	_, token := setupInvitation(t, staff, "weak@citygym.example", "Weak Gym")

	_, err := public.AcceptInvitation(t.Context(), portalsdk.AcceptInvitationRequest{
		Token:    token,
		Password: "short",
	})
	requireAPIError(t, err, http.StatusBadRequest, portalsdk.ErrorCodeWeakPassword)

	// A failed attempt leaves the invitation redeemable.
	validated, err := public.ValidateInvitation(t.Context(), token)
	require.NoError(t, err)
	require.Equal(t, "weak@citygym.example", validated.Email)
}

func TestAcceptEmailTaken(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	staff := staffClient(t, baseURL, "invitations:write")
	public := publicClient(baseURL)

	_, firstToken := setupInvitation(t, staff, "taken@citygym.example", "First Gym")
	_, err := public.AcceptInvitation(t.Context(), portalsdk.AcceptInvitationRequest{
		Token:    firstToken,
		Password: "a-long-enough-password",
	})
	require.NoError(t, err)

	// A second invitation for the same address can be minted once the first
	// is no longer pending, but accepting it trips the existing account.
	_, secondToken := setupInvitation(t, staff, "taken@citygym.example", "Second Gym")
	_, err = public.AcceptInvitation(t.Context(), portalsdk.AcceptInvitationRequest{
		Token:    secondToken,
		Password: "a-long-enough-password",
	})
	requireAPIError(t, err, http.StatusConflict, portalsdk.ErrorCodeEmailTaken)

	// The failed invitation is retired rather than left pending.
	_, err = public.ValidateInvitation(t.Context(), secondToken)
	requireAPIError(t, err, http.StatusGone, portalsdk.ErrorCodeAlreadyAccepted)
}

func TestAcceptSlugDisambiguation(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	staff := staffClient(t, baseURL, "invitations:write")
	public := publicClient(baseURL)

	_, firstToken := setupInvitation(t, staff, "one@acme.example", "Acme Gym")
	first, err := public.AcceptInvitation(t.Context(), portalsdk.AcceptInvitationRequest{
		Token:    firstToken,
		Password: "a-long-enough-password",
	})
	require.NoError(t, err)
	require.Equal(t, "acme-gym", first.Organization.Slug)

	_, secondToken := setupInvitation(t, staff, "two@acme.example", "Acme Gym")
	second, err := public.AcceptInvitation(t.Context(), portalsdk.AcceptInvitationRequest{
		Token:    secondToken,
		Password: "a-long-enough-password",
	})
	require.NoError(t, err)
	require.Equal(t, "acme-gym-1", second.Organization.Slug)
}
