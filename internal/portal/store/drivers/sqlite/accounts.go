package sqlite

import (
	"context"

	"github.com/northbeamhq/portal/internal/portal/domain"
	"github.com/northbeamhq/portal/internal/portal/store/drivers/sqlite/gen"
)

type accountsRepo struct {
	q *gen.Queries
}

func (r *accountsRepo) CreateCredentialAccount(ctx context.Context, a domain.CredentialAccount) error {
	err := r.q.CreateCredentialAccount(ctx, gen.CreateCredentialAccountParams{
		ID:           a.ID,
		UserID:       a.UserID,
		Provider:     a.Provider,
		PasswordHash: a.PasswordHash,
	})
	return mapAlreadyExists(err)
}
