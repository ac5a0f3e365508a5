package domain

import "time"

// InvitationStatus is the lifecycle state of an invitation. Transitions only
// move forward: pending is the sole non-terminal state.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationExpired  InvitationStatus = "expired"
	InvitationRevoked  InvitationStatus = "revoked"
)

// IsTerminal reports whether no further transitions are possible.
func (s InvitationStatus) IsTerminal() bool {
	return s == InvitationAccepted || s == InvitationExpired || s == InvitationRevoked
}

// Role is the system-wide role granted to the invited user.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleStaff  Role = "staff"
	RoleClient Role = "client"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleClient:
		return true
	}
	return false
}

// AccountType distinguishes the lead contact of a client organization from
// additional members.
type AccountType string

const (
	AccountTeamLead   AccountType = "team_lead"
	AccountTeamMember AccountType = "team_member"
)

func (a AccountType) Valid() bool {
	return a == AccountTeamLead || a == AccountTeamMember
}

// BrandColors are the client organization's styling choices, carried through
// invitation setup data into organization settings.
type BrandColors struct {
	Primary   string `json:"primary,omitempty"`
	Secondary string `json:"secondary,omitempty"`
	Accent    string `json:"accent,omitempty"`
}

// OrganizationSetupData is the embedded seed for creating a brand-new
// organization at acceptance time. It is stored on the invitation as a typed
// structure so tenant resolution can branch exhaustively over it.
type OrganizationSetupData struct {
	BusinessName string      `json:"business_name"`
	BusinessType string      `json:"business_type,omitempty"`
	ContactName  string      `json:"contact_name,omitempty"`
	LogoKey      string      `json:"logo_key,omitempty"`
	Colors       BrandColors `json:"colors,omitzero"`
	CustomTags   []string    `json:"custom_tags,omitempty"`
}

// Invitation is a single-use, time-limited offer to create an account,
// optionally pre-bound to an organization or project.
//
// Exactly one of OrganizationID / Setup / neither seeds the organization
// linkage at creation time. OrganizationID may be back-filled for provenance
// once provisioning resolves or creates the organization.
type Invitation struct {
	ID    string
	Email string // always stored lowercased
	Name  string // optional display name

	// TokenHash is the SHA-256 fingerprint of the raw invitation token.
	// The raw token only ever exists in the creation response and the
	// invitation email.
	TokenHash string

	OrganizationID *string
	ProjectID      *string
	Setup          *OrganizationSetupData

	Role        Role
	AccountType AccountType
	Status      InvitationStatus
	Demo        bool

	InvitedBy string // staff user id of the inviter
	Message   string // optional personal note included in the email

	// SkipDefaultProject opts the acceptance flow out of creating the
	// default "{businessName} Website" project alongside a new organization.
	SkipDefaultProject bool

	ExpiresAt  time.Time
	AcceptedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
