package secondary

import "context"

// CredentialStore persists the bearer credential between sessions so that a
// restarted client can restore its login. Only the opaque token is stored;
// identity claims are re-decoded from it on restore.
type CredentialStore interface {
	// SaveCredential stores the credential for a client
	SaveCredential(ctx context.Context, clientID, token string) error

	// LoadCredential retrieves the stored credential, or "" when absent
	LoadCredential(ctx context.Context, clientID string) (string, error)

	// DeleteCredential removes the stored credential
	DeleteCredential(ctx context.Context, clientID string) error
}
