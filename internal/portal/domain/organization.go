package domain

import "time"

type OrganizationStatus string

const (
	OrganizationActive   OrganizationStatus = "active"
	OrganizationInactive OrganizationStatus = "inactive"
)

// OrganizationSettings is the JSON settings blob attached to a tenant:
// branding plus the photo tag vocabulary offered in upload dialogs.
type OrganizationSettings struct {
	LogoKey   string      `json:"logo_key,omitempty"`
	Colors    BrandColors `json:"colors,omitzero"`
	PhotoTags []string    `json:"photo_tags,omitempty"`
}

// Organization is a tenant. The slug is allocated once at creation and never
// changes; everything scoped to the tenant hangs off its id.
type Organization struct {
	ID           string
	Name         string
	Slug         string
	BusinessType string
	ContactName  string
	ContactEmail string
	Status       OrganizationStatus
	Settings     OrganizationSettings
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
