package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/northbeamhq/portal/internal/portal/domain"
	"github.com/northbeamhq/portal/internal/portal/store"
	"github.com/northbeamhq/portal/pkg/cryptox"
	"github.com/northbeamhq/portal/pkg/idx"
	"github.com/northbeamhq/portal/pkg/slogx"
)

var (
	ErrInvalidInvitationRequest = errors.New("invalid invitation request")
	ErrInvalidRole              = errors.New("invalid role")
	ErrInvalidAccountType       = errors.New("invalid account type")
	ErrSeedConflict             = errors.New("invitation cannot carry both an organization id and embedded setup data")
	ErrInvalidOrganization      = errors.New("organization not found")
	ErrInvalidProject           = errors.New("project not found")
	ErrPendingExists            = errors.New("a pending invitation already exists for this email")

	ErrNoToken         = errors.New("missing invitation token")
	ErrInvalidToken    = errors.New("invalid invitation token")
	ErrAlreadyAccepted = errors.New("invitation has already been accepted")
	ErrRevoked         = errors.New("invitation has been revoked")
	ErrExpired         = errors.New("invitation has expired")

	ErrInvitationNotFound = errors.New("invitation not found")
	ErrNotPending         = errors.New("invitation is no longer pending")
)

// InvitationTTL is the fixed validity window of a freshly issued invitation.
const InvitationTTL = 7 * 24 * time.Hour

type InvitationService struct {
	Store store.Store
}

// CreateInvitationParams carries everything the inviter supplies. Exactly one
// of OrganizationID / Setup / neither seeds the organization linkage;
// ProjectID may accompany any of them.
type CreateInvitationParams struct {
	Email              string
	Name               string
	Role               domain.Role
	AccountType        domain.AccountType
	OrganizationID     *string
	ProjectID          *string
	Setup              *domain.OrganizationSetupData
	Demo               bool
	Message            string
	SkipDefaultProject bool
	InvitedBy          string
}

// CreateInvitation mints a new single-use invitation token and persists the
// invitation as pending. It returns the invitation and the raw token; only
// the SHA-256 fingerprint of the token is stored.
func (s *InvitationService) CreateInvitation(
	ctx context.Context,
	params CreateInvitationParams,
) (domain.Invitation, string, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	email := strings.ToLower(strings.TrimSpace(params.Email))
	if email == "" || !strings.Contains(email, "@") {
		log.Warn("invitation creation with unusable email")
		return domain.Invitation{}, "", ErrInvalidInvitationRequest
	}
	if !params.Role.Valid() {
		return domain.Invitation{}, "", ErrInvalidRole
	}
	if !params.AccountType.Valid() {
		return domain.Invitation{}, "", ErrInvalidAccountType
	}
	if params.OrganizationID != nil && params.Setup != nil {
		return domain.Invitation{}, "", ErrSeedConflict
	}
	if params.Setup != nil && slugify(params.Setup.BusinessName) == "" {
		log.Warn("invitation creation with unnormalizable business name",
			slog.String("business_name", params.Setup.BusinessName),
		)
		return domain.Invitation{}, "", ErrBusinessNameRequired
	}

	// 2. Validate referenced entities exist.
	if params.OrganizationID != nil {
		if _, err := s.Store.Organizations().GetOrganizationByID(ctx, *params.OrganizationID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.Invitation{}, "", ErrInvalidOrganization
			}
			log.Error("failed to fetch organization", slog.Any("error", err))
			return domain.Invitation{}, "", err
		}
	}
	if params.ProjectID != nil {
		if _, err := s.Store.Projects().GetProjectByID(ctx, *params.ProjectID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.Invitation{}, "", ErrInvalidProject
			}
			log.Error("failed to fetch project", slog.Any("error", err))
			return domain.Invitation{}, "", err
		}
	}

	// 3. Reject a second live invitation for the same address. The partial
	// unique index on pending email is the arbiter under concurrency; this
	// check just gives a clean error on the common path.
	exists, err := s.Store.Invitations().ExistsPendingInvitationByEmail(ctx, email)
	if err != nil {
		log.Error("failed to check pending invitations", slog.Any("error", err))
		return domain.Invitation{}, "", err
	}
	if exists {
		log.Warn("invitation creation for email with live pending invitation",
			slog.String("email", email),
		)
		return domain.Invitation{}, "", ErrPendingExists
	}

	// 4. Generate random token and fingerprint it.
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate invitation token", slog.Any("error", err))
		return domain.Invitation{}, "", err
	}
	fingerprint := cryptox.FingerprintToken(token)

	now := time.Now()
	inv := domain.Invitation{
		ID:                 idx.New().String(),
		Email:              email,
		Name:               strings.TrimSpace(params.Name),
		TokenHash:          fingerprint,
		OrganizationID:     params.OrganizationID,
		ProjectID:          params.ProjectID,
		Setup:              params.Setup,
		Role:               params.Role,
		AccountType:        params.AccountType,
		Status:             domain.InvitationPending,
		Demo:               params.Demo,
		InvitedBy:          params.InvitedBy,
		Message:            params.Message,
		SkipDefaultProject: params.SkipDefaultProject,
		ExpiresAt:          now.Add(InvitationTTL),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	// 5. Persist.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Invitations().CreateInvitation(ctx, inv)
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Invitation{}, "", ErrPendingExists
		}
		log.Error("failed to create invitation",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return domain.Invitation{}, "", err
	}

	log.Info("invitation created",
		slog.String("invitation_id", inv.ID),
		slog.String("email", email),
		slog.String("role", string(inv.Role)),
		slog.Time("expires_at", inv.ExpiresAt),
	)

	// 6. Return the raw token (not the fingerprint).
	return inv, token, nil
}

// Validate looks an invitation up by its raw token and enforces the status
// lifecycle. A pending invitation past its deadline is flipped to expired
// here; this read path is the canonical place stale invitations get marked.
func (s *InvitationService) Validate(ctx context.Context, token string) (domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	// 1. A missing token is a caller bug, not a lookup miss.
	if token == "" {
		return domain.Invitation{}, ErrNoToken
	}

	// 2. Fingerprint and look up.
	fingerprint := cryptox.FingerprintToken(token)
	inv, err := s.Store.Invitations().GetInvitationByTokenHash(ctx, fingerprint)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invitation{}, ErrInvalidToken
		}
		log.Error("failed to fetch invitation", slog.Any("error", err))
		return domain.Invitation{}, err
	}

	// 3. Terminal states are immutable and mutually exclusive.
	switch inv.Status {
	case domain.InvitationAccepted:
		return domain.Invitation{}, ErrAlreadyAccepted
	case domain.InvitationRevoked:
		return domain.Invitation{}, ErrRevoked
	case domain.InvitationExpired:
		return domain.Invitation{}, ErrExpired
	}

	// 4. Pending past the deadline: persist the transition, then report it.
	if time.Now().After(inv.ExpiresAt) {
		err := s.Store.Invitations().MarkInvitationExpired(ctx, inv.ID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			log.Error("failed to mark invitation expired",
				slog.String("invitation_id", inv.ID),
				slog.Any("error", err),
			)
			return domain.Invitation{}, err
		}
		if errors.Is(err, store.ErrNotFound) {
			// Lost a race against another transition; report whatever won.
			return s.Validate(ctx, token)
		}
		log.Debug("invitation expired on read", slog.String("invitation_id", inv.ID))
		return domain.Invitation{}, ErrExpired
	}

	// 5. Still live.
	return inv, nil
}

// Revoke transitions a pending invitation to revoked. Terminal invitations
// are left untouched.
func (s *InvitationService) Revoke(ctx context.Context, id string) (domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	inv, err := s.Store.Invitations().GetInvitationByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invitation{}, ErrInvitationNotFound
		}
		log.Error("failed to fetch invitation", slog.Any("error", err))
		return domain.Invitation{}, err
	}
	if inv.Status.IsTerminal() {
		return domain.Invitation{}, ErrNotPending
	}

	if err := s.Store.Invitations().MarkInvitationRevoked(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invitation{}, ErrNotPending
		}
		log.Error("failed to revoke invitation",
			slog.String("invitation_id", id),
			slog.Any("error", err),
		)
		return domain.Invitation{}, err
	}

	log.Info("invitation revoked", slog.String("invitation_id", id))

	return s.Store.Invitations().GetInvitationByID(ctx, id)
}

// List returns invitations newest first, optionally filtered by status.
func (s *InvitationService) List(
	ctx context.Context,
	status domain.InvitationStatus,
) ([]domain.Invitation, error) {
	if status == "" {
		return s.Store.Invitations().ListInvitations(ctx)
	}
	switch status {
	case domain.InvitationPending, domain.InvitationAccepted,
		domain.InvitationExpired, domain.InvitationRevoked:
	default:
		return nil, ErrInvalidInvitationRequest
	}
	return s.Store.Invitations().ListInvitationsByStatus(ctx, status)
}
