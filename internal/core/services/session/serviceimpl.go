package session

import (
	"context"
	"sync"

	"gitlab.com/fcv-2025.net/client/internal/core/ports/primary"
	"gitlab.com/fcv-2025.net/client/internal/core/ports/secondary"
	"gitlab.com/fcv-2025.net/client/internal/domain"
	"gitlab.com/fcv-2025.net/client/internal/static/errs"
)

var _ ISessionService = (*SessionService)(nil)

// SessionService implements the ISessionService interface
type SessionService struct {
	mu         sync.Mutex
	clientID   string
	credential string
	claims     *domain.AuthClaims
	user       *domain.User

	decoder primary.ClaimDecoder
	store   secondary.CredentialStore
	gateway secondary.JudgeGateway
	logger  primary.Logger
}

// NewSessionService creates a new session service
func NewSessionService(
	clientID string,
	decoder primary.ClaimDecoder,
	store secondary.CredentialStore,
	gateway secondary.JudgeGateway,
	logger primary.Logger,
) *SessionService {
	return &SessionService{
		clientID: clientID,
		decoder:  decoder,
		store:    store,
		gateway:  gateway,
		logger:   logger,
	}
}

// Init restores a persisted credential if one exists. A credential whose
// claims no longer decode is discarded rather than adopted half-way.
func (s *SessionService) Init(ctx context.Context) error {
	token, err := s.store.LoadCredential(ctx, s.clientID)
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	claims, err := s.decoder.DecodeTokenPayload(ctx, token)
	if err != nil {
		s.logger.Warn("Discarding persisted credential", "error", err)
		return s.store.DeleteCredential(ctx, s.clientID)
	}

	s.mu.Lock()
	s.credential = token
	s.claims = &claims
	s.mu.Unlock()

	s.logger.Info("Session restored", "user", claims.Name)
	return nil
}

// Login adopts a bearer token and persists it. A persistence failure is
// logged but does not undo the in-memory login.
func (s *SessionService) Login(ctx context.Context, token string) (*domain.AuthClaims, error) {
	claims, err := s.decoder.DecodeTokenPayload(ctx, token)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.credential = token
	s.claims = &claims
	s.user = nil
	s.mu.Unlock()

	if err := s.store.SaveCredential(ctx, s.clientID, token); err != nil {
		s.logger.Error("Failed to persist credential", "error", err)
	}

	s.logger.Info("Logged in", "user", claims.Name)
	return &claims, nil
}

// Logout clears credential, identity and cached user under one lock
func (s *SessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.credential = ""
	s.claims = nil
	s.user = nil
	s.mu.Unlock()

	if err := s.store.DeleteCredential(ctx, s.clientID); err != nil {
		s.logger.Error("Failed to remove persisted credential", "error", err)
		return err
	}

	s.logger.Info("Logged out")
	return nil
}

// Identity returns the decoded claims, or nil when not authenticated
func (s *SessionService) Identity() *domain.AuthClaims {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.claims == nil {
		return nil
	}
	claims := *s.claims
	return &claims
}

// Credential returns the bearer token, or "" when not authenticated
func (s *SessionService) Credential() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.credential
}

// CurrentUser returns the cached judge-side user record, or nil
func (s *SessionService) CurrentUser() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

// RefreshUser re-fetches the judge-side user record. Submissions change
// server-side aggregates, so the cache is refreshed after each successful
// submit and on workspace open.
func (s *SessionService) RefreshUser(ctx context.Context) error {
	s.mu.Lock()
	claims := s.claims
	credential := s.credential
	s.mu.Unlock()

	if claims == nil {
		return errs.AuthMissing
	}

	user, err := s.gateway.GetUser(ctx, credential, claims.Name, claims.Email)
	if err != nil {
		s.logger.Error("Failed to refresh user", "error", err)
		return err
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return nil
}
