package domain

import "time"

// User is a principal provisioned through invitation acceptance. Email is
// stored lowercased and unique across the system. OrganizationID is nil for
// principals that are not bound to a tenant (internal staff).
type User struct {
	ID             string
	Email          string
	Name           string
	Role           Role
	AccountType    AccountType
	OrganizationID *string
	EmailVerified  bool
	Demo           bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
