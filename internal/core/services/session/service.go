package session

import (
	"context"

	"gitlab.com/fcv-2025.net/client/internal/domain"
)

// ISessionService holds the bearer credential and decoded identity for one
// client. It is an explicit context object passed to its consumers, never a
// global lookup; consumers re-read identity and credential at the start of
// every action so login/logout during editing takes effect immediately.
type ISessionService interface {
	// Init restores a persisted credential if one exists
	Init(ctx context.Context) error

	// Login adopts a bearer token, decodes its identity claims and persists
	// the credential
	Login(ctx context.Context, token string) (*domain.AuthClaims, error)

	// Logout clears credential and identity atomically and removes the
	// persisted credential
	Logout(ctx context.Context) error

	// Identity returns the decoded claims, or nil when not authenticated
	Identity() *domain.AuthClaims

	// Credential returns the bearer token, or "" when not authenticated
	Credential() string

	// CurrentUser returns the cached judge-side user record, or nil
	CurrentUser() *domain.User

	// RefreshUser re-fetches the judge-side user record for the identity
	RefreshUser(ctx context.Context) error
}
