package portalsdk

import "time"

// ErrorResponse is the wire shape of every error body returned by the
// service. Error carries a stable machine-readable code; ErrorDescription is
// human-readable.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// HealthChecks reports the status of critical dependencies on /readyz.
type HealthChecks struct {
	Database string `json:"database,omitempty"`
	Verifier string `json:"verifier,omitempty"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// BrandColors are the organization's styling choices.
type BrandColors struct {
	Primary   string `json:"primary,omitempty"`
	Secondary string `json:"secondary,omitempty"`
	Accent    string `json:"accent,omitempty"`
}

// OrganizationSetup seeds a brand-new organization created when the
// invitation is accepted.
type OrganizationSetup struct {
	BusinessName string       `json:"business_name"`
	BusinessType string       `json:"business_type,omitempty"`
	ContactName  string       `json:"contact_name,omitempty"`
	LogoKey      string       `json:"logo_key,omitempty"`
	Colors       *BrandColors `json:"colors,omitempty"`
	CustomTags   []string     `json:"custom_tags,omitempty"`
}

// CreateInvitationRequest is the staff-side payload for minting an
// invitation. OrganizationID and OrganizationSetup are mutually exclusive.
type CreateInvitationRequest struct {
	Email              string             `json:"email"`
	Name               string             `json:"name,omitempty"`
	Role               string             `json:"role"`
	AccountType        string             `json:"account_type"`
	OrganizationID     string             `json:"organization_id,omitempty"`
	ProjectID          string             `json:"project_id,omitempty"`
	OrganizationSetup  *OrganizationSetup `json:"organization_setup,omitempty"`
	Message            string             `json:"message,omitempty"`
	Demo               bool               `json:"demo,omitempty"`
	SkipDefaultProject bool               `json:"skip_default_project,omitempty"`
}

// Invitation is the API representation of an invitation. The raw token is
// never included; it only appears once in CreateInvitationResponse.
type Invitation struct {
	ID                string             `json:"id"`
	Email             string             `json:"email"`
	Name              string             `json:"name,omitempty"`
	OrganizationID    string             `json:"organization_id,omitempty"`
	ProjectID         string             `json:"project_id,omitempty"`
	OrganizationSetup *OrganizationSetup `json:"organization_setup,omitempty"`
	Role              string             `json:"role"`
	AccountType       string             `json:"account_type"`
	Status            string             `json:"status"`
	Demo              bool               `json:"demo,omitempty"`
	Message           string             `json:"message,omitempty"`
	ExpiresAt         time.Time          `json:"expires_at"`
	AcceptedAt        *time.Time         `json:"accepted_at,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
}

// CreateInvitationResponse carries the freshly minted invitation plus the raw
// token. The token is shown exactly once; only its fingerprint is stored.
type CreateInvitationResponse struct {
	Invitation Invitation `json:"invitation"`
	Token      string     `json:"token"`
	EmailSent  bool       `json:"email_sent"`
}

// ValidateInvitationResponse is the public view of a live pending invitation.
type ValidateInvitationResponse struct {
	ID                string             `json:"id"`
	Email             string             `json:"email"`
	Name              string             `json:"name,omitempty"`
	OrganizationID    string             `json:"organization_id,omitempty"`
	OrganizationSetup *OrganizationSetup `json:"organization_setup,omitempty"`
	Role              string             `json:"role"`
	AccountType       string             `json:"account_type"`
	Demo              bool               `json:"demo,omitempty"`
	ExpiresAt         time.Time          `json:"expires_at"`
}

// AcceptInvitationRequest is the invitee's acceptance payload.
type AcceptInvitationRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// AcceptedUser is the user record created by acceptance.
type AcceptedUser struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	Name           string `json:"name,omitempty"`
	Role           string `json:"role"`
	AccountType    string `json:"account_type"`
	OrganizationID string `json:"organization_id,omitempty"`
}

// Organization is the API representation of a tenant.
type Organization struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	BusinessType string `json:"business_type,omitempty"`
	Status       string `json:"status"`
}

// Project is the API representation of a project.
type Project struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organization_id,omitempty"`
	Name           string `json:"name"`
	Status         string `json:"status"`
}

// AcceptInvitationResponse is returned once per invitation. Password echoes
// the caller-supplied plaintext for the immediate sign-in handoff; the
// service never persists or logs it.
type AcceptInvitationResponse struct {
	User         AcceptedUser  `json:"user"`
	Email        string        `json:"email"`
	Password     string        `json:"password"`
	Organization *Organization `json:"organization,omitempty"`
	Project      *Project      `json:"project,omitempty"`
	EmailSent    bool          `json:"email_sent"`
}

// ListInvitationsResponse wraps the staff listing.
type ListInvitationsResponse struct {
	Invitations []Invitation `json:"invitations"`
}
