package http

import (
	"errors"
	"net/http"

	"github.com/northbeamhq/portal/internal/portal/service"
	"github.com/northbeamhq/portal/pkg/httpx"
	"github.com/northbeamhq/portal/pkg/portalsdk"
	"github.com/northbeamhq/portal/pkg/slogx"
)

type InvitationValidateHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Validate Invitation Token
//	@Description	Check whether an invitation token is live. Returns the invitation details for a pending, unexpired token.
//	@Description	The token itself is never echoed back. A pending invitation past its deadline is marked expired by this call.
//	@Tags			Invitations
//	@Produce		json
//	@Param			token	query		string									true	"Raw invitation token"
//	@Success		200		{object}	portalsdk.ValidateInvitationResponse	"invitation details"
//	@Failure		400		{object}	portalsdk.ErrorResponse	"NO_TOKEN"
//	@Failure		404		{object}	portalsdk.ErrorResponse	"INVALID_TOKEN"
//	@Failure		410		{object}	portalsdk.ErrorResponse	"ALREADY_ACCEPTED, REVOKED, EXPIRED"
//	@Router			/v1/invitations/validate [get].
func (h *InvitationValidateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	token := r.URL.Query().Get("token")

	inv, err := h.InvitationService.Validate(ctx, token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoToken):
			writeError(w, http.StatusBadRequest, portalsdk.ErrorCodeNoToken,
				"token query parameter is required")
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
		default:
			log.Error("failed to validate invitation", "err", err)
			writeError(w, http.StatusInternalServerError, portalsdk.ErrorCodeServerError,
				"failed to validate invitation")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.ValidateInvitationResponse{
		ID:                inv.ID,
		Email:             inv.Email,
		Name:              inv.Name,
		OrganizationID:    derefString(inv.OrganizationID),
		OrganizationSetup: toAPISetup(inv.Setup),
		Role:              string(inv.Role),
		AccountType:       string(inv.AccountType),
		Demo:              inv.Demo,
		ExpiresAt:         inv.ExpiresAt,
	})
}
