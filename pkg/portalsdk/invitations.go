package portalsdk

import (
	"context"
	"net/http"
	"net/url"
)

// ValidateInvitation checks a raw invitation token. Lifecycle failures come
// back as *APIError with one of the token validation codes.
func (c *SDKClient) ValidateInvitation(ctx context.Context, token string) (*ValidateInvitationResponse, error) {
	path := "/v1/invitations/validate?token=" + url.QueryEscape(token)

	var out ValidateInvitationResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// AcceptInvitation redeems a token and provisions the tenant, user, and
// credential account. The response includes the plaintext password exactly
// once for the sign-in handoff.
func (c *SDKClient) AcceptInvitation(ctx context.Context, req AcceptInvitationRequest) (*AcceptInvitationResponse, error) {
	var out AcceptInvitationResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/invitations/accept", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateInvitation mints a new invitation. Staff operation; requires a bearer
// token with the invitations:write scope.
func (c *SDKClient) CreateInvitation(ctx context.Context, req CreateInvitationRequest) (*CreateInvitationResponse, error) {
	var out CreateInvitationResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/invitations", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// RevokeInvitation retires a pending invitation. Staff operation; requires a
// bearer token with the invitations:write scope.
func (c *SDKClient) RevokeInvitation(ctx context.Context, id string) (*Invitation, error) {
	var out Invitation
	if err := c.doJSON(ctx, http.MethodDelete, "/v1/invitations/"+url.PathEscape(id), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListInvitations returns invitations newest first. status filters to one
// lifecycle state when non-empty. Staff operation; requires a bearer token
// with the invitations:read scope.
func (c *SDKClient) ListInvitations(ctx context.Context, status string) (*ListInvitationsResponse, error) {
	path := "/v1/invitations"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}

	var out ListInvitationsResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
