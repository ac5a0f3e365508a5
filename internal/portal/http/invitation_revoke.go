package http

import (
	"errors"
	"net/http"

	"github.com/northbeamhq/portal/internal/portal/service"
	"github.com/northbeamhq/portal/pkg/httpx"
	"github.com/northbeamhq/portal/pkg/portalsdk"
	"github.com/northbeamhq/portal/pkg/slogx"
)

type InvitationRevokeHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Revoke Invitation
//	@Description	Retire a pending invitation so its token can no longer be accepted. Staff-only.
//	@Description	Terminal invitations (accepted, expired, revoked) cannot be revoked again.
//	@Tags			Invitations
//	@Produce		json
//	@Param			id	path		string					true	"Invitation id"
//	@Success		200	{object}	portalsdk.Invitation	"updated invitation"
//	@Failure		404	{object}	portalsdk.ErrorResponse	"NOT_FOUND"
//	@Failure		409	{object}	portalsdk.ErrorResponse	"NOT_PENDING"
//	@Security		BearerAuth
//	@Router			/v1/invitations/{id} [delete].
func (h *InvitationRevokeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id := r.PathValue("id")

	inv, err := h.InvitationService.Revoke(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvitationNotFound):
			writeError(w, http.StatusNotFound, portalsdk.ErrorCodeNotFound,
				"invitation not found")
		case errors.Is(err, service.ErrNotPending):
			writeError(w, http.StatusConflict, portalsdk.ErrorCodeNotPending,
				"invitation is no longer pending")
		default:
			log.Error("failed to revoke invitation", "err", err)
			writeError(w, http.StatusInternalServerError, portalsdk.ErrorCodeServerError,
				"failed to revoke invitation")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAPIInvitation(inv))
}
