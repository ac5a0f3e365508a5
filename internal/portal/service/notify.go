package service

import (
	"context"
	"log/slog"

	"github.com/northbeamhq/portal/internal/portal/domain"
	"github.com/northbeamhq/portal/pkg/slogx"
)

// Notifier delivers invitation and welcome emails. Delivery failures are
// non-fatal: callers log them and report email_sent=false, the invitation
// link itself remains the source of truth.
type Notifier interface {
	// SendInvitation emails the accept link for a freshly created
	// invitation. rawToken is the only copy of the token outside the
	// creation response; implementations must not log it.
	SendInvitation(ctx context.Context, inv domain.Invitation, rawToken string) error

	// SendWelcome emails the newly provisioned user after acceptance.
	SendWelcome(ctx context.Context, user domain.User) error
}

// LogNotifier is the no-transport Notifier used in development and tests. It
// records that a send would have happened, never the token or any credential.
type LogNotifier struct{}

func (LogNotifier) SendInvitation(ctx context.Context, inv domain.Invitation, rawToken string) error {
	slogx.FromContext(ctx).Info("invitation email (log only)",
		slog.String("invitation_id", inv.ID),
		slog.String("email", inv.Email),
		slog.Time("expires_at", inv.ExpiresAt),
	)
	return nil
}

func (LogNotifier) SendWelcome(ctx context.Context, user domain.User) error {
	slogx.FromContext(ctx).Info("welcome email (log only)",
		slog.String("user_id", user.ID),
		slog.String("email", user.Email),
	)
	return nil
}
