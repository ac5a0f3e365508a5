package service

import (
	"github.com/northbeamhq/portal/internal/portal/domain"
)

// tenantPlan is the outcome of tenant resolution: either an existing
// organization id, instructions to create one from embedded setup data, or
// neither.
type tenantPlan struct {
	// OrganizationID is set when the invitation binds to an existing
	// organization (directly or inherited through a pre-assigned project).
	OrganizationID *string

	// CreateOrganization signals that Setup should materialize a new
	// organization. Mutually exclusive with OrganizationID.
	CreateOrganization bool
	Setup              *domain.OrganizationSetupData

	// CreateProject signals a default project should accompany the newly
	// created organization.
	CreateProject bool
	ProjectName   string
}

// resolveTenant decides which organization and project an accepted invitation
// binds the new user to. First match wins:
//
//  1. A pre-assigned project with an organization: inherit it. Embedded setup
//     data is ignored for creation purposes.
//  2. An explicit organization id: use it directly.
//  3. Embedded setup data: create a new organization, plus a default
//     "{businessName} Website" project unless the invitation opted out.
//  4. Nothing: the user gets no organization.
//
// It is a pure function of the invitation's stored fields and the pre-fetched
// project, so retried provisioning attempts on the same pending invitation
// always resolve identically.
func resolveTenant(inv domain.Invitation, preassigned *domain.Project) tenantPlan {
	if inv.ProjectID != nil && preassigned != nil && preassigned.OrganizationID != nil {
		return tenantPlan{OrganizationID: preassigned.OrganizationID}
	}

	if inv.OrganizationID != nil {
		return tenantPlan{OrganizationID: inv.OrganizationID}
	}

	if inv.Setup != nil {
		return tenantPlan{
			CreateOrganization: true,
			Setup:              inv.Setup,
			CreateProject:      inv.ProjectID == nil && !inv.SkipDefaultProject,
			ProjectName:        inv.Setup.BusinessName + " Website",
		}
	}

	return tenantPlan{}
}

// defaultPhotoTags derives the starter photo tag vocabulary for a new
// organization from its business type. Caller-supplied custom tags take
// precedence over these.
func defaultPhotoTags(businessType string) []string {
	switch businessType {
	case "gym", "fitness":
		return []string{"facility", "equipment", "classes", "team", "events"}
	case "restaurant", "cafe", "hospitality":
		return []string{"interior", "menu", "dishes", "team", "events"}
	case "retail":
		return []string{"storefront", "products", "displays", "team", "promotions"}
	default:
		return []string{"location", "team", "products", "events"}
	}
}
