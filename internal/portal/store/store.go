package store

import (
	"context"
	"errors"
	"time"

	"github.com/northbeamhq/portal/internal/portal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable. We can change having the sub-repos as methods later but we do it
// now so we can have more control and actively stop people from accidently
// doing transactions within transactions.
type Store interface {
	Invitations() Invitations
	Organizations() Organizations
	Projects() Projects
	Users() Users
	Accounts() Accounts

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// Use it for multi-step operations that must be atomic (e.g., acceptance
	// provisioning). The caller MUST call Commit() or Rollback() on the
	// returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// This is the recommended way to handle transactions as it automatically
	// handles commit/rollback logic.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Invitations interface {
	// CreateInvitation inserts a new invitation (id is provided by app via ULID).
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	// GetInvitationByID returns an invitation by id regardless of status.
	GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error)

	// GetInvitationByTokenHash looks an invitation up by the SHA-256
	// fingerprint of its token, regardless of status.
	GetInvitationByTokenHash(ctx context.Context, hash string) (domain.Invitation, error)

	// ExistsPendingInvitationByEmail reports whether a pending invitation is
	// already on file for the (lowercased) email.
	ExistsPendingInvitationByEmail(ctx context.Context, email string) (bool, error)

	// MarkInvitationAccepted transitions pending -> accepted and records the
	// acceptance time. Returns ErrNotFound if the invitation is no longer
	// pending, which is how concurrent acceptors lose the race.
	MarkInvitationAccepted(ctx context.Context, id string, acceptedAt time.Time) error

	// MarkInvitationExpired transitions pending -> expired. Returns
	// ErrNotFound if the invitation is no longer pending.
	MarkInvitationExpired(ctx context.Context, id string) error

	// MarkInvitationRevoked transitions pending -> revoked. Returns
	// ErrNotFound if the invitation is no longer pending.
	MarkInvitationRevoked(ctx context.Context, id string) error

	// SetInvitationOrganization back-fills the organization linkage once
	// provisioning has resolved or created the tenant.
	SetInvitationOrganization(ctx context.Context, id string, organizationID string) error

	// ListInvitations returns all invitations ordered by creation date
	// (newest first).
	ListInvitations(ctx context.Context) ([]domain.Invitation, error)

	// ListInvitationsByStatus filters the listing to one lifecycle state.
	ListInvitationsByStatus(ctx context.Context, status domain.InvitationStatus) ([]domain.Invitation, error)

	// MarkExpiredInvitations bulk-transitions every pending invitation whose
	// deadline has passed. Returns the number of rows flipped (housekeeping).
	MarkExpiredInvitations(ctx context.Context, now time.Time) (int64, error)
}

type Organizations interface {
	// CreateOrganization inserts a new organization. A slug collision
	// surfaces as ErrAlreadyExists so the caller can retry with a suffixed
	// candidate.
	CreateOrganization(ctx context.Context, org domain.Organization) error

	// GetOrganizationByID fetches an organization by id.
	GetOrganizationByID(ctx context.Context, id string) (domain.Organization, error)

	// ExistsOrganizationSlug reports whether the slug is already taken.
	ExistsOrganizationSlug(ctx context.Context, slug string) (bool, error)
}

type Projects interface {
	// CreateProject inserts a new project (id is ULID).
	CreateProject(ctx context.Context, p domain.Project) error

	// GetProjectByID fetches a project by id.
	GetProjectByID(ctx context.Context, id string) (domain.Project, error)
}

type Users interface {
	// CreateUser inserts a new user. An email collision surfaces as
	// ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail returns a user by (lowercased) email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
}

type Accounts interface {
	// CreateCredentialAccount inserts the password credential for a user.
	CreateCredentialAccount(ctx context.Context, a domain.CredentialAccount) error
}
