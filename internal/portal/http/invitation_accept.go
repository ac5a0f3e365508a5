package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/northbeamhq/portal/internal/portal/service"
	"github.com/northbeamhq/portal/pkg/httpx"
	"github.com/northbeamhq/portal/pkg/portalsdk"
	"github.com/northbeamhq/portal/pkg/slogx"
)

type InvitationAcceptHandler struct {
	ProvisioningService *service.ProvisioningService
	Notifier            service.Notifier
}

// ServeHTTP godoc
//
//	@Summary		Accept Invitation
//	@Description	Redeem an invitation token: provisions the organization, project, user, and credential account atomically
//	@Description	and marks the invitation accepted. The response echoes the plaintext password exactly once for the
//	@Description	immediate sign-in handoff; it is never persisted or logged.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.AcceptInvitationRequest	true	"token, password, name"
//	@Success		201		{object}	portalsdk.AcceptInvitationResponse	"user, organization, project, email_sent"
//	@Failure		400		{object}	portalsdk.ErrorResponse	"NO_TOKEN, WEAK_PASSWORD, INVALID_REQUEST"
//	@Failure		404		{object}	portalsdk.ErrorResponse	"INVALID_TOKEN"
//	@Failure		409		{object}	portalsdk.ErrorResponse	"EMAIL_TAKEN"
//	@Failure		410		{object}	portalsdk.ErrorResponse	"ALREADY_ACCEPTED, REVOKED, EXPIRED"
//	@Router			/v1/invitations/accept [post].
func (h *InvitationAcceptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalsdk.AcceptInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, portalsdk.ErrorCodeInvalidRequest,
			"invalid JSON body")
		return
	}

	res, err := h.ProvisioningService.Accept(ctx, req.Token, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWeakPassword):
			writeError(w, http.StatusBadRequest, portalsdk.ErrorCodeWeakPassword,
				"password must be at least 8 characters")
		case errors.Is(err, service.ErrNoToken):
			writeError(w, http.StatusBadRequest, portalsdk.ErrorCodeNoToken,
				"token is required")
		case errors.Is(err, service.ErrInvalidToken):
			writeError(w, http.StatusNotFound, portalsdk.ErrorCodeInvalidToken,
				"invitation token is not recognised")
		case errors.Is(err, service.ErrAlreadyAccepted):
			writeError(w, http.StatusGone, portalsdk.ErrorCodeAlreadyAccepted,
				"invitation has already been accepted")
		case errors.Is(err, service.ErrRevoked):
			writeError(w, http.StatusGone, portalsdk.ErrorCodeRevoked,
				"invitation has been revoked")
		case errors.Is(err, service.ErrExpired):
			writeError(w, http.StatusGone, portalsdk.ErrorCodeExpired,
				"invitation has expired")
		case errors.Is(err, service.ErrEmailTaken):
			writeError(w, http.StatusConflict, portalsdk.ErrorCodeEmailTaken,
				"a user with this email already exists")
		default:
			log.Error("failed to accept invitation", "err", err)
			writeError(w, http.StatusInternalServerError, portalsdk.ErrorCodeServerError,
				"failed to accept invitation")
		}
		return
	}

	// Welcome email is out of band; a delivery failure never rolls back
	// provisioning.
	emailSent := true
	if err := h.Notifier.SendWelcome(ctx, res.User); err != nil {
		log.Warn("failed to send welcome email", "err", err)
		emailSent = false
	}

	response := portalsdk.AcceptInvitationResponse{
		User: portalsdk.AcceptedUser{
			ID:             res.User.ID,
			Email:          res.User.Email,
			Name:           res.User.Name,
			Role:           string(res.User.Role),
			AccountType:    string(res.User.AccountType),
			OrganizationID: derefString(res.User.OrganizationID),
		},
		Email:     res.User.Email,
		Password:  res.Password,
		EmailSent: emailSent,
	}
	if res.Organization != nil {
		response.Organization = &portalsdk.Organization{
			ID:           res.Organization.ID,
			Name:         res.Organization.Name,
			Slug:         res.Organization.Slug,
			BusinessType: res.Organization.BusinessType,
			Status:       string(res.Organization.Status),
		}
	}
	if res.Project != nil {
		response.Project = &portalsdk.Project{
			ID:             res.Project.ID,
			OrganizationID: derefString(res.Project.OrganizationID),
			Name:           res.Project.Name,
			Status:         string(res.Project.Status),
		}
	}

	httpx.WriteJSON(w, http.StatusCreated, response)
}
