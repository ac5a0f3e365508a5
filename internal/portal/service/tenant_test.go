package service

import (
	"testing"

	"github.com/northbeamhq/portal/internal/portal/domain"
	"github.com/stretchr/testify/require"
)

func TestResolveTenant(t *testing.T) {
	t.Parallel()

	orgID := "org-1"
	projectID := "proj-1"

	t.Run("project organization wins over embedded setup", func(t *testing.T) {
		inv := domain.Invitation{
			ProjectID: &projectID,
			Setup:     &domain.OrganizationSetupData{BusinessName: "Ignored Inc"},
		}
		project := domain.Project{ID: projectID, OrganizationID: &orgID}

		plan := resolveTenant(inv, &project)
		require.Equal(t, &orgID, plan.OrganizationID)
		require.False(t, plan.CreateOrganization)
		require.False(t, plan.CreateProject)
	})

	t.Run("explicit organization id used directly", func(t *testing.T) {
		plan := resolveTenant(domain.Invitation{OrganizationID: &orgID}, nil)
		require.Equal(t, &orgID, plan.OrganizationID)
		require.False(t, plan.CreateOrganization)
	})

	t.Run("embedded setup plans organization and default project", func(t *testing.T) {
		inv := domain.Invitation{
			Setup: &domain.OrganizationSetupData{BusinessName: "Bob's Gym"},
		}

		plan := resolveTenant(inv, nil)
		require.True(t, plan.CreateOrganization)
		require.True(t, plan.CreateProject)
		require.Equal(t, "Bob's Gym Website", plan.ProjectName)
	})

	t.Run("skip flag suppresses the default project", func(t *testing.T) {
		inv := domain.Invitation{
			Setup:              &domain.OrganizationSetupData{BusinessName: "Bob's Gym"},
			SkipDefaultProject: true,
		}

		plan := resolveTenant(inv, nil)
		require.True(t, plan.CreateOrganization)
		require.False(t, plan.CreateProject)
	})

	t.Run("pre-assigned project suppresses the default project", func(t *testing.T) {
		// Project without an organization: setup still creates the org, but
		// no extra project is planned.
		inv := domain.Invitation{
			ProjectID: &projectID,
			Setup:     &domain.OrganizationSetupData{BusinessName: "Bob's Gym"},
		}
		project := domain.Project{ID: projectID}

		plan := resolveTenant(inv, &project)
		require.True(t, plan.CreateOrganization)
		require.False(t, plan.CreateProject)
	})

	t.Run("nothing set yields no organization", func(t *testing.T) {
		plan := resolveTenant(domain.Invitation{}, nil)
		require.Nil(t, plan.OrganizationID)
		require.False(t, plan.CreateOrganization)
		require.False(t, plan.CreateProject)
	})

	t.Run("resolution is deterministic", func(t *testing.T) {
		inv := domain.Invitation{
			Setup: &domain.OrganizationSetupData{BusinessName: "Bob's Gym"},
		}
		require.Equal(t, resolveTenant(inv, nil), resolveTenant(inv, nil))
	})
}

func TestDefaultPhotoTags(t *testing.T) {
	t.Parallel()

	require.Contains(t, defaultPhotoTags("gym"), "equipment")
	require.Contains(t, defaultPhotoTags("restaurant"), "menu")
	require.NotEmpty(t, defaultPhotoTags("something-else"))
}
