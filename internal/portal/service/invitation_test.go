package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/northbeamhq/portal/internal/portal/domain"
	"github.com/northbeamhq/portal/internal/portal/store"
	"github.com/northbeamhq/portal/internal/portal/store/drivers/sqlite"
	"github.com/northbeamhq/portal/pkg/cryptox"
	"github.com/northbeamhq/portal/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "portal-service-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "portal.db") + "?_busy_timeout=5000"
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func testCreateParams(email string) CreateInvitationParams {
	return CreateInvitationParams{
		Email:       email,
		Name:        "Test Person",
		Role:        domain.RoleClient,
		AccountType: domain.AccountTeamLead,
		InvitedBy:   idx.New().String(),
	}
}

func TestCreateInvitation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &InvitationService{Store: st}

	t.Run("mints a pending invitation with a raw token", func(t *testing.T) {
		params := testCreateParams("Bob@Co.com")
		params.Setup = &domain.OrganizationSetupData{BusinessName: "Bob's Gym"}

		inv, token, err := svc.CreateInvitation(ctx, params)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		// Email is lowercased; only the fingerprint is stored.
		require.Equal(t, "bob@co.com", inv.Email)
		require.Equal(t, domain.InvitationPending, inv.Status)
		require.Equal(t, cryptox.FingerprintToken(token), inv.TokenHash)
		require.WithinDuration(t, time.Now().Add(InvitationTTL), inv.ExpiresAt, time.Minute)

		stored, err := st.Invitations().GetInvitationByID(ctx, inv.ID)
		require.NoError(t, err)
		require.NotNil(t, stored.Setup)
		require.Equal(t, "Bob's Gym", stored.Setup.BusinessName)
	})

	t.Run("rejects a second pending invitation for the same email", func(t *testing.T) {
		_, _, err := svc.CreateInvitation(ctx, testCreateParams("bob@co.com"))
		require.ErrorIs(t, err, ErrPendingExists)
	})

	t.Run("rejects organization id alongside setup data", func(t *testing.T) {
		orgID := "org-1"
		params := testCreateParams("seed@co.com")
		params.OrganizationID = &orgID
		params.Setup = &domain.OrganizationSetupData{BusinessName: "Seed Inc"}

		_, _, err := svc.CreateInvitation(ctx, params)
		require.ErrorIs(t, err, ErrSeedConflict)
	})

	t.Run("rejects unnormalizable business names", func(t *testing.T) {
		params := testCreateParams("empty@co.com")
		params.Setup = &domain.OrganizationSetupData{BusinessName: "!!!"}

		_, _, err := svc.CreateInvitation(ctx, params)
		require.ErrorIs(t, err, ErrBusinessNameRequired)
	})

	t.Run("rejects unknown organization references", func(t *testing.T) {
		orgID := "no-such-org"
		params := testCreateParams("ref@co.com")
		params.OrganizationID = &orgID

		_, _, err := svc.CreateInvitation(ctx, params)
		require.ErrorIs(t, err, ErrInvalidOrganization)
	})

	t.Run("rejects invalid roles and account types", func(t *testing.T) {
		params := testCreateParams("role@co.com")
		params.Role = "superuser"
		_, _, err := svc.CreateInvitation(ctx, params)
		require.ErrorIs(t, err, ErrInvalidRole)

		params = testCreateParams("acct@co.com")
		params.AccountType = "owner"
		_, _, err = svc.CreateInvitation(ctx, params)
		require.ErrorIs(t, err, ErrInvalidAccountType)
	})

	t.Run("rejects unusable emails", func(t *testing.T) {
		_, _, err := svc.CreateInvitation(ctx, testCreateParams("not-an-email"))
		require.ErrorIs(t, err, ErrInvalidInvitationRequest)
	})
}

func TestValidate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &InvitationService{Store: st}

	t.Run("missing token", func(t *testing.T) {
		_, err := svc.Validate(ctx, "")
		require.ErrorIs(t, err, ErrNoToken)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := svc.Validate(ctx, "definitely-not-issued")
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("pending invitation is returned unchanged", func(t *testing.T) {
		inv, token, err := svc.CreateInvitation(ctx, testCreateParams("live@co.com"))
		require.NoError(t, err)

		got, err := svc.Validate(ctx, token)
		require.NoError(t, err)
		require.Equal(t, inv.ID, got.ID)
		require.Equal(t, domain.InvitationPending, got.Status)
	})

	t.Run("expiry is persisted on read and sticks", func(t *testing.T) {
		token, err := cryptox.GenerateToken(cryptox.TokenSize256)
		require.NoError(t, err)

		stale := domain.Invitation{
			ID:          idx.New().String(),
			Email:       "stale@co.com",
			TokenHash:   cryptox.FingerprintToken(token),
			Role:        domain.RoleClient,
			AccountType: domain.AccountTeamMember,
			Status:      domain.InvitationPending,
			InvitedBy:   idx.New().String(),
			ExpiresAt:   time.Now().Add(-time.Hour),
		}
		require.NoError(t, st.Invitations().CreateInvitation(ctx, stale))

		_, err = svc.Validate(ctx, token)
		require.ErrorIs(t, err, ErrExpired)

		stored, err := st.Invitations().GetInvitationByID(ctx, stale.ID)
		require.NoError(t, err)
		require.Equal(t, domain.InvitationExpired, stored.Status)

		// Re-validation never re-derives a different state.
		_, err = svc.Validate(ctx, token)
		require.ErrorIs(t, err, ErrExpired)
	})

	t.Run("revoked invitation", func(t *testing.T) {
		inv, token, err := svc.CreateInvitation(ctx, testCreateParams("revoked@co.com"))
		require.NoError(t, err)

		_, err = svc.Revoke(ctx, inv.ID)
		require.NoError(t, err)

		_, err = svc.Validate(ctx, token)
		require.ErrorIs(t, err, ErrRevoked)
	})
}

func TestRevoke(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &InvitationService{Store: st}

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Revoke(ctx, idx.New().String())
		require.ErrorIs(t, err, ErrInvitationNotFound)
	})

	t.Run("pending to revoked, then immutable", func(t *testing.T) {
		inv, _, err := svc.CreateInvitation(ctx, testCreateParams("gone@co.com"))
		require.NoError(t, err)

		revoked, err := svc.Revoke(ctx, inv.ID)
		require.NoError(t, err)
		require.Equal(t, domain.InvitationRevoked, revoked.Status)

		_, err = svc.Revoke(ctx, inv.ID)
		require.ErrorIs(t, err, ErrNotPending)
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &InvitationService{Store: st}

	first, _, err := svc.CreateInvitation(ctx, testCreateParams("one@co.com"))
	require.NoError(t, err)
	second, _, err := svc.CreateInvitation(ctx, testCreateParams("two@co.com"))
	require.NoError(t, err)

	_, err = svc.Revoke(ctx, first.ID)
	require.NoError(t, err)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	pending, err := svc.List(ctx, domain.InvitationPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, second.ID, pending[0].ID)

	_, err = svc.List(ctx, "bogus")
	require.ErrorIs(t, err, ErrInvalidInvitationRequest)
}

func TestHousekeepingSweep(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	require.NoError(t, err)

	overdue := domain.Invitation{
		ID:          idx.New().String(),
		Email:       "overdue@co.com",
		TokenHash:   cryptox.FingerprintToken(token),
		Role:        domain.RoleClient,
		AccountType: domain.AccountTeamMember,
		Status:      domain.InvitationPending,
		InvitedBy:   idx.New().String(),
		ExpiresAt:   time.Now().Add(-time.Hour),
	}
	require.NoError(t, st.Invitations().CreateInvitation(ctx, overdue))

	flipped, err := st.Invitations().MarkExpiredInvitations(ctx, time.Now())
	require.NoError(t, err)
	require.EqualValues(t, 1, flipped)

	stored, err := st.Invitations().GetInvitationByID(ctx, overdue.ID)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationExpired, stored.Status)

	// Terminal rows are untouched by subsequent sweeps.
	flipped, err = st.Invitations().MarkExpiredInvitations(ctx, time.Now())
	require.NoError(t, err)
	require.Zero(t, flipped)
}
