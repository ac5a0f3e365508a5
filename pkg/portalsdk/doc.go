/*
Package portalsdk provides a typed client for the portal invitation service.

# Overview

The SDK wraps the invitation lifecycle endpoints: staff create, list and
revoke invitations with a bearer token; invitees validate tokens and accept
invitations without authentication.

	client := portalsdk.NewSDKClient("https://portal.example.com")

	// Public invitee flow
	inv, err := client.ValidateInvitation(ctx, token)
	res, err := client.AcceptInvitation(ctx, portalsdk.AcceptInvitationRequest{
		Token:    token,
		Password: "hunter2hunter2",
		Name:     "Bob",
	})

	// Staff flow (requires a bearer token with the invitations scopes)
	client.Token = staffAccessToken
	created, err := client.CreateInvitation(ctx, portalsdk.CreateInvitationRequest{...})
	list, err := client.ListInvitations(ctx, "pending")
	revoked, err := client.RevokeInvitation(ctx, created.Invitation.ID)

# Error Handling

Non-2xx responses are returned as *APIError carrying the HTTP status and the
service's error code (e.g. EXPIRED, ALREADY_ACCEPTED, EMAIL_TAKEN), so callers
can branch on the condition rather than parsing messages.
*/
package portalsdk
