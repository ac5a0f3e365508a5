package domain

import "time"

const ProviderCredential = "credential"

// CredentialAccount holds the login material for a user under a given
// provider. Only the credential (password) provider is issued here; the hash
// is argon2id in PHC format and the plaintext is never persisted.
type CredentialAccount struct {
	ID           string
	UserID       string
	Provider     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
