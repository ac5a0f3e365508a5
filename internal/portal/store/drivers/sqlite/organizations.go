package sqlite

import (
	"context"
	"encoding/json"

	"github.com/northbeamhq/portal/internal/portal/domain"
	"github.com/northbeamhq/portal/internal/portal/store/drivers/sqlite/gen"
)

type organizationsRepo struct {
	q *gen.Queries
}

func (r *organizationsRepo) CreateOrganization(ctx context.Context, org domain.Organization) error {
	settings, err := json.Marshal(org.Settings)
	if err != nil {
		return err
	}

	err = r.q.CreateOrganization(ctx, gen.CreateOrganizationParams{
		ID:           org.ID,
		Name:         org.Name,
		Slug:         org.Slug,
		BusinessType: org.BusinessType,
		ContactName:  org.ContactName,
		ContactEmail: org.ContactEmail,
		Status:       string(org.Status),
		Settings:     string(settings),
	})
	return mapAlreadyExists(err)
}

func (r *organizationsRepo) GetOrganizationByID(
	ctx context.Context,
	id string,
) (domain.Organization, error) {
	row, err := r.q.GetOrganizationByID(ctx, id)
	if err != nil {
		return domain.Organization{}, mapNotFound(err)
	}
	return mapOrganization(row)
}

func (r *organizationsRepo) ExistsOrganizationSlug(
	ctx context.Context,
	slug string,
) (bool, error) {
	count, err := r.q.CountOrganizationsBySlug(ctx, slug)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
