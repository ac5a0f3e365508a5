package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/northbeamhq/portal/internal/portal/domain"
	"github.com/northbeamhq/portal/internal/portal/service"
	"github.com/northbeamhq/portal/pkg/httpx"
	"github.com/northbeamhq/portal/pkg/portalsdk"
	"github.com/northbeamhq/portal/pkg/slogx"
)

type InvitationCreateHandler struct {
	InvitationService *service.InvitationService
	Notifier          service.Notifier
}

// ServeHTTP godoc
//
//	@Summary		Create Invitation
//	@Description	Mint a single-use, time-limited invitation. Staff-only. The raw token is returned exactly once
//	@Description	in this response; only its fingerprint is stored.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.CreateInvitationRequest	true	"invitation details"
//	@Success		201		{object}	portalsdk.CreateInvitationResponse	"invitation, token, email_sent"
//	@Failure		400		{object}	portalsdk.ErrorResponse	"INVALID_REQUEST"
//	@Failure		401		{object}	portalsdk.ErrorResponse	"unauthenticated"
//	@Failure		409		{object}	portalsdk.ErrorResponse	"PENDING_EXISTS"
//	@Security		BearerAuth
//	@Router			/v1/invitations [post].
func (h *InvitationCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalsdk.CreateInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, portalsdk.ErrorCodeInvalidRequest,
			"invalid JSON body")
		return
	}

	invitedBy := httpx.UserIDFromContext(ctx)
	if invitedBy == "" {
		writeError(w, http.StatusUnauthorized, portalsdk.ErrorCodeInvalidRequest,
			"authentication required")
		return
	}

	params := service.CreateInvitationParams{
		Email:              req.Email,
		Name:               req.Name,
		Role:               domain.Role(req.Role),
		AccountType:        domain.AccountType(req.AccountType),
		Setup:              fromAPISetup(req.OrganizationSetup),
		Demo:               req.Demo,
		Message:            req.Message,
		SkipDefaultProject: req.SkipDefaultProject,
		InvitedBy:          invitedBy,
	}
	if req.OrganizationID != "" {
		params.OrganizationID = &req.OrganizationID
	}
	if req.ProjectID != "" {
		params.ProjectID = &req.ProjectID
	}

	inv, token, err := h.InvitationService.CreateInvitation(ctx, params)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPendingExists):
			writeError(w, http.StatusConflict, portalsdk.ErrorCodePendingExists,
				"a pending invitation already exists for this email")
		case errors.Is(err, service.ErrSeedConflict):
			writeError(w, http.StatusBadRequest, portalsdk.ErrorCodeInvalidRequest,
				"organization_id and organization_setup are mutually exclusive")
		case errors.Is(err, service.ErrBusinessNameRequired):
			writeError(w, http.StatusBadRequest, portalsdk.ErrorCodeInvalidRequest,
				"business_name must contain at least one usable character")
		case errors.Is(err, service.ErrInvalidRole):
			writeError(w, http.StatusBadRequest, portalsdk.ErrorCodeInvalidRequest,
				"role must be one of admin, staff, client")
		case errors.Is(err, service.ErrInvalidAccountType):
			writeError(w, http.StatusBadRequest, portalsdk.ErrorCodeInvalidRequest,
				"account_type must be one of team_lead, team_member")
		case errors.Is(err, service.ErrInvalidOrganization):
			writeError(w, http.StatusBadRequest, portalsdk.ErrorCodeInvalidRequest,
				"organization_id does not reference an existing organization")
		case errors.Is(err, service.ErrInvalidProject):
			writeError(w, http.StatusBadRequest, portalsdk.ErrorCodeInvalidRequest,
				"project_id does not reference an existing project")
		case errors.Is(err, service.ErrInvalidInvitationRequest):
			writeError(w, http.StatusBadRequest, portalsdk.ErrorCodeInvalidRequest,
				"email is required and must be a usable address")
		default:
			log.Error("failed to create invitation", "err", err)
			writeError(w, http.StatusInternalServerError, portalsdk.ErrorCodeServerError,
				"failed to create invitation")
		}
		return
	}

	// Invitation email is best effort; the token in this response is the
	// fallback delivery channel.
	emailSent := true
	if err := h.Notifier.SendInvitation(ctx, inv, token); err != nil {
		log.Warn("failed to send invitation email", "err", err)
		emailSent = false
	}

	httpx.WriteJSON(w, http.StatusCreated, portalsdk.CreateInvitationResponse{
		Invitation: toAPIInvitation(inv),
		Token:      token,
		EmailSent:  emailSent,
	})
}
