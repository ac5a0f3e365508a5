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
	ErrWeakPassword = errors.New("password must be at least 8 characters")
	ErrEmailTaken   = errors.New("a user with this email already exists")
)

const minPasswordLength = 8

// ProvisioningService turns an accepted invitation into real tenant rows:
// organization, project, user, and credential account, then flips the
// invitation to accepted as the final write of one transaction.
type ProvisioningService struct {
	Store       store.Store
	Invitations *InvitationService
}

// AcceptResult is everything a successful acceptance produced. Organization
// and Project cover linked rows as well as freshly created ones, so the
// caller always sees the tenant the user was bound to. Password is the
// caller-supplied plaintext, echoed back exactly once for the immediate
// sign-in handoff; it is never persisted or logged.
type AcceptResult struct {
	Invitation   domain.Invitation
	User         domain.User
	Password     string
	Organization *domain.Organization
	Project      *domain.Project
}

// Accept validates the token, resolves the tenant, and provisions all rows
// atomically. Any failure before the final status flip rolls back every
// insert and leaves the invitation pending, so the whole call is retryable.
func (s *ProvisioningService) Accept(
	ctx context.Context,
	token string,
	password string,
	name string,
) (AcceptResult, error) {
	log := slogx.FromContext(ctx)

	// 1. Cheap input validation before any reads.
	if len(password) < minPasswordLength {
		return AcceptResult{}, ErrWeakPassword
	}

	// 2. Token must validate to a live pending invitation.
	inv, err := s.Invitations.Validate(ctx, token)
	if err != nil {
		return AcceptResult{}, err
	}

	// 3. An existing user with the invitation's email makes the invitation
	// stale, not actionable: surface EmailTaken and retire it so it stops
	// showing up as live.
	_, err = s.Store.Users().GetUserByEmail(ctx, inv.Email)
	if err == nil {
		s.markStaleAccepted(ctx, inv.ID)
		return AcceptResult{}, ErrEmailTaken
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check email availability", slog.Any("error", err))
		return AcceptResult{}, err
	}

	// 4. Pre-fetch the pre-assigned project so resolution stays a pure
	// function of stored fields.
	var preassigned *domain.Project
	if inv.ProjectID != nil {
		p, err := s.Store.Projects().GetProjectByID(ctx, *inv.ProjectID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			log.Error("failed to fetch pre-assigned project", slog.Any("error", err))
			return AcceptResult{}, err
		}
		if err == nil {
			preassigned = &p
		}
	}

	plan := resolveTenant(inv, preassigned)

	// 5. The result reports the tenant the user ends up bound to, linked
	// rows included, not just freshly created ones.
	var (
		newUser domain.User
		org     *domain.Organization
		project *domain.Project
	)
	if plan.OrganizationID != nil {
		linked, err := s.Store.Organizations().GetOrganizationByID(ctx, *plan.OrganizationID)
		if err != nil {
			log.Error("failed to fetch linked organization",
				slog.String("organization_id", *plan.OrganizationID),
				slog.Any("error", err),
			)
			return AcceptResult{}, err
		}
		org = &linked
	}
	if preassigned != nil {
		project = preassigned
	}

	// 6. Hash the password outside the transaction; argon2id is the slow
	// part and needs no database state.
	passwordHash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return AcceptResult{}, err
	}

	displayName := strings.TrimSpace(name)
	if displayName == "" {
		displayName = inv.Name
	}

	// 7. Provision everything in one transaction. The conditional status
	// flip at the end is the commit point: a concurrent acceptor that
	// already won turns this whole transaction into a rollback.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		orgID := plan.OrganizationID

		if plan.CreateOrganization {
			created, err := s.createOrganization(ctx, tx, inv, plan.Setup)
			if err != nil {
				return err
			}
			org = &created
			orgID = &created.ID

			// Back-fill the linkage for provenance.
			if err := tx.Invitations().SetInvitationOrganization(ctx, inv.ID, created.ID); err != nil {
				return err
			}
		}

		if plan.CreateProject && orgID != nil {
			p := domain.Project{
				ID:             idx.New().String(),
				OrganizationID: orgID,
				Name:           plan.ProjectName,
				ClientName:     plan.Setup.ContactName,
				Status:         domain.ProjectActive,
			}
			if err := tx.Projects().CreateProject(ctx, p); err != nil {
				return err
			}
			project = &p
		}

		// Acceptance of a possession-proven link counts as email
		// verification.
		newUser = domain.User{
			ID:             idx.New().String(),
			Email:          inv.Email,
			Name:           displayName,
			Role:           inv.Role,
			AccountType:    inv.AccountType,
			OrganizationID: orgID,
			EmailVerified:  true,
			Demo:           inv.Demo,
		}
		if err := tx.Users().CreateUser(ctx, newUser); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrEmailTaken
			}
			return err
		}

		account := domain.CredentialAccount{
			ID:           idx.New().String(),
			UserID:       newUser.ID,
			Provider:     domain.ProviderCredential,
			PasswordHash: passwordHash,
		}
		if err := tx.Accounts().CreateCredentialAccount(ctx, account); err != nil {
			return err
		}

		// Last write: pending -> accepted, conditional on still pending.
		if err := tx.Invitations().MarkInvitationAccepted(ctx, inv.ID, time.Now()); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrAlreadyAccepted
			}
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			// Lost the unique-email race inside the tx; same staleness
			// treatment as the precondition check.
			s.markStaleAccepted(ctx, inv.ID)
		}
		return AcceptResult{}, err
	}

	log.Info("invitation accepted",
		slog.String("invitation_id", inv.ID),
		slog.String("user_id", newUser.ID),
		slog.String("role", string(newUser.Role)),
		slog.Bool("organization_created", org != nil),
		slog.Bool("project_created", project != nil),
	)

	inv.Status = domain.InvitationAccepted
	return AcceptResult{
		Invitation:   inv,
		User:         newUser,
		Password:     password,
		Organization: org,
		Project:      project,
	}, nil
}

// createOrganization allocates a unique slug and inserts the organization.
// The probe in allocateSlug is best-effort; a unique violation on insert
// retries with the next candidate.
func (s *ProvisioningService) createOrganization(
	ctx context.Context,
	tx store.Tx,
	inv domain.Invitation,
	setup *domain.OrganizationSetupData,
) (domain.Organization, error) {
	slug, attempt, err := allocateSlug(ctx, tx.Organizations(), setup.BusinessName)
	if err != nil {
		return domain.Organization{}, err
	}

	tags := setup.CustomTags
	if len(tags) == 0 {
		tags = defaultPhotoTags(setup.BusinessType)
	}

	base := slugify(setup.BusinessName)
	for ; attempt < slugRetryLimit; attempt++ {
		org := domain.Organization{
			ID:           idx.New().String(),
			Name:         setup.BusinessName,
			Slug:         slug,
			BusinessType: setup.BusinessType,
			ContactName:  setup.ContactName,
			ContactEmail: inv.Email,
			Status:       domain.OrganizationActive,
			Settings: domain.OrganizationSettings{
				LogoKey:   setup.LogoKey,
				Colors:    setup.Colors,
				PhotoTags: tags,
			},
		}

		err := tx.Organizations().CreateOrganization(ctx, org)
		if err == nil {
			return org, nil
		}
		if !errors.Is(err, store.ErrAlreadyExists) {
			return domain.Organization{}, err
		}
		slug = nextSlugCandidate(base, attempt+1)
	}
	return domain.Organization{}, errors.New("exhausted slug candidates")
}

// markStaleAccepted retires an invitation whose email is already taken. Best
// effort: losing a transition race here is fine, the row is terminal either
// way.
func (s *ProvisioningService) markStaleAccepted(ctx context.Context, id string) {
	log := slogx.FromContext(ctx)
	err := s.Store.Invitations().MarkInvitationAccepted(ctx, id, time.Now())
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to retire stale invitation",
			slog.String("invitation_id", id),
			slog.Any("error", err),
		)
	}
}
