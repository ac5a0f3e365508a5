package http

import (
	"net/http"

	"github.com/northbeamhq/portal/internal/portal/domain"
	"github.com/northbeamhq/portal/pkg/httpx"
	"github.com/northbeamhq/portal/pkg/portalsdk"
)

func writeError(w http.ResponseWriter, status int, code, description string) {
	httpx.WriteJSON(w, status, portalsdk.ErrorResponse{
		Error:            code,
		ErrorDescription: description,
	})
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toAPISetup(setup *domain.OrganizationSetupData) *portalsdk.OrganizationSetup {
	if setup == nil {
		return nil
	}
	out := &portalsdk.OrganizationSetup{
		BusinessName: setup.BusinessName,
		BusinessType: setup.BusinessType,
		ContactName:  setup.ContactName,
		LogoKey:      setup.LogoKey,
		CustomTags:   setup.CustomTags,
	}
	if setup.Colors != (domain.BrandColors{}) {
		out.Colors = &portalsdk.BrandColors{
			Primary:   setup.Colors.Primary,
			Secondary: setup.Colors.Secondary,
			Accent:    setup.Colors.Accent,
		}
	}
	return out
}

func fromAPISetup(setup *portalsdk.OrganizationSetup) *domain.OrganizationSetupData {
	if setup == nil {
		return nil
	}
	out := &domain.OrganizationSetupData{
		BusinessName: setup.BusinessName,
		BusinessType: setup.BusinessType,
		ContactName:  setup.ContactName,
		LogoKey:      setup.LogoKey,
		CustomTags:   setup.CustomTags,
	}
	if setup.Colors != nil {
		out.Colors = domain.BrandColors{
			Primary:   setup.Colors.Primary,
			Secondary: setup.Colors.Secondary,
			Accent:    setup.Colors.Accent,
		}
	}
	return out
}

// toAPIInvitation maps an invitation to its API shape. The token hash never
// leaves the store layer's consumers.
func toAPIInvitation(inv domain.Invitation) portalsdk.Invitation {
	return portalsdk.Invitation{
		ID:                inv.ID,
		Email:             inv.Email,
		Name:              inv.Name,
		OrganizationID:    derefString(inv.OrganizationID),
		ProjectID:         derefString(inv.ProjectID),
		OrganizationSetup: toAPISetup(inv.Setup),
		Role:              string(inv.Role),
		AccountType:       string(inv.AccountType),
		Status:            string(inv.Status),
		Demo:              inv.Demo,
		Message:           inv.Message,
		ExpiresAt:         inv.ExpiresAt,
		AcceptedAt:        inv.AcceptedAt,
		CreatedAt:         inv.CreatedAt,
	}
}
