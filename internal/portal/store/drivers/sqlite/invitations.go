package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/northbeamhq/portal/internal/portal/domain"
	"github.com/northbeamhq/portal/internal/portal/store"
	"github.com/northbeamhq/portal/internal/portal/store/drivers/sqlite/gen"
)

type invitationsRepo struct {
	q *gen.Queries
}

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	setup, err := mapSetupNull(inv.Setup)
	if err != nil {
		return err
	}

	err = r.q.CreateInvitation(ctx, gen.CreateInvitationParams{
		ID:                 inv.ID,
		Email:              inv.Email,
		Name:               inv.Name,
		TokenHash:          inv.TokenHash,
		OrganizationID:     mapOptionalString(inv.OrganizationID),
		ProjectID:          mapOptionalString(inv.ProjectID),
		Setup:              setup,
		Role:               string(inv.Role),
		AccountType:        string(inv.AccountType),
		Demo:               inv.Demo,
		InvitedBy:          inv.InvitedBy,
		Message:            inv.Message,
		SkipDefaultProject: inv.SkipDefaultProject,
		ExpiresAt:          inv.ExpiresAt,
	})
	return mapAlreadyExists(err)
}

func (r *invitationsRepo) GetInvitationByID(
	ctx context.Context,
	id string,
) (domain.Invitation, error) {
	row, err := r.q.GetInvitationByID(ctx, id)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	return mapInvitation(row)
}

func (r *invitationsRepo) GetInvitationByTokenHash(
	ctx context.Context,
	hash string,
) (domain.Invitation, error) {
	row, err := r.q.GetInvitationByTokenHash(ctx, hash)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	return mapInvitation(row)
}

func (r *invitationsRepo) ExistsPendingInvitationByEmail(
	ctx context.Context,
	email string,
) (bool, error) {
	count, err := r.q.CountPendingInvitationsByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *invitationsRepo) MarkInvitationAccepted(
	ctx context.Context,
	id string,
	acceptedAt time.Time,
) error {
	rows, err := r.q.MarkInvitationAccepted(ctx, gen.MarkInvitationAcceptedParams{
		AcceptedAt: sql.NullTime{Time: acceptedAt, Valid: true},
		ID:         id,
	})
	if err != nil {
		return err
	}
	if rows == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *invitationsRepo) MarkInvitationExpired(ctx context.Context, id string) error {
	rows, err := r.q.MarkInvitationExpired(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *invitationsRepo) MarkInvitationRevoked(ctx context.Context, id string) error {
	rows, err := r.q.MarkInvitationRevoked(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *invitationsRepo) SetInvitationOrganization(
	ctx context.Context,
	id string,
	organizationID string,
) error {
	return r.q.SetInvitationOrganization(ctx, gen.SetInvitationOrganizationParams{
		OrganizationID: mapStringNull(organizationID),
		ID:             id,
	})
}

func (r *invitationsRepo) ListInvitations(ctx context.Context) ([]domain.Invitation, error) {
	rows, err := r.q.ListInvitations(ctx)
	if err != nil {
		return nil, err
	}
	return mapInvitations(rows)
}

func (r *invitationsRepo) ListInvitationsByStatus(
	ctx context.Context,
	status domain.InvitationStatus,
) ([]domain.Invitation, error) {
	rows, err := r.q.ListInvitationsByStatus(ctx, string(status))
	if err != nil {
		return nil, err
	}
	return mapInvitations(rows)
}

func (r *invitationsRepo) MarkExpiredInvitations(
	ctx context.Context,
	now time.Time,
) (int64, error) {
	return r.q.MarkExpiredInvitations(ctx, now)
}

func mapInvitations(rows []gen.Invitation) ([]domain.Invitation, error) {
	out := make([]domain.Invitation, 0, len(rows))
	for _, row := range rows {
		inv, err := mapInvitation(row)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, nil
}
