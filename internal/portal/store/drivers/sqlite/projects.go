package sqlite

import (
	"context"

	"github.com/northbeamhq/portal/internal/portal/domain"
	"github.com/northbeamhq/portal/internal/portal/store/drivers/sqlite/gen"
)

type projectsRepo struct {
	q *gen.Queries
}

func (r *projectsRepo) CreateProject(ctx context.Context, p domain.Project) error {
	return r.q.CreateProject(ctx, gen.CreateProjectParams{
		ID:             p.ID,
		OrganizationID: mapOptionalString(p.OrganizationID),
		Name:           p.Name,
		ClientName:     p.ClientName,
		Status:         string(p.Status),
		StartDate:      mapOptionalTime(p.StartDate),
		EndDate:        mapOptionalTime(p.EndDate),
	})
}

func (r *projectsRepo) GetProjectByID(ctx context.Context, id string) (domain.Project, error) {
	row, err := r.q.GetProjectByID(ctx, id)
	if err != nil {
		return domain.Project{}, mapNotFound(err)
	}
	return mapProject(row), nil
}
