package http

import (
	"errors"
	"net/http"

	"github.com/northbeamhq/portal/internal/portal/domain"
	"github.com/northbeamhq/portal/internal/portal/service"
	"github.com/northbeamhq/portal/pkg/httpx"
	"github.com/northbeamhq/portal/pkg/portalsdk"
	"github.com/northbeamhq/portal/pkg/slogx"
)

type InvitationListHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		List Invitations
//	@Description	List invitations newest first, optionally filtered to one lifecycle state. Staff-only.
//	@Tags			Invitations
//	@Produce		json
//	@Param			status	query		string	false	"Filter: pending, accepted, expired, revoked"
//	@Success		200		{object}	portalsdk.ListInvitationsResponse	"invitations"
//	@Failure		400		{object}	portalsdk.ErrorResponse	"INVALID_REQUEST"
//	@Security		BearerAuth
//	@Router			/v1/invitations [get].
func (h *InvitationListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	status := domain.InvitationStatus(r.URL.Query().Get("status"))

	invitations, err := h.InvitationService.List(ctx, status)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInvitationRequest) {
			writeError(w, http.StatusBadRequest, portalsdk.ErrorCodeInvalidRequest,
				"status must be one of pending, accepted, expired, revoked")
			return
		}
		log.Error("failed to list invitations", "err", err)
		writeError(w, http.StatusInternalServerError, portalsdk.ErrorCodeServerError,
			"failed to list invitations")
		return
	}

	out := make([]portalsdk.Invitation, 0, len(invitations))
	for _, inv := range invitations {
		out = append(out, toAPIInvitation(inv))
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.ListInvitationsResponse{Invitations: out})
}
