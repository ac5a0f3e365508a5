package domain

import "time"

type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "active"
	ProjectArchived ProjectStatus = "archived"
)

// Project is a unit of work. OrganizationID is nil for standalone projects
// that have not been attached to a tenant.
type Project struct {
	ID             string
	OrganizationID *string
	Name           string
	ClientName     string
	Status         ProjectStatus
	StartDate      *time.Time
	EndDate        *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
