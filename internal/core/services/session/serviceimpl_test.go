package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/fcv-2025.net/client/internal/domain"
	"gitlab.com/fcv-2025.net/client/internal/static/errs"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

type fakeDecoder struct {
	claims map[string]domain.AuthClaims
}

func (d fakeDecoder) DecodeTokenPayload(ctx context.Context, token string) (domain.AuthClaims, error) {
	claims, ok := d.claims[token]
	if !ok {
		return domain.AuthClaims{}, errors.New("invalid token")
	}
	return claims, nil
}

type fakeStore struct {
	saved   map[string]string
	loadErr error
	saveErr error
	deletes int
}

func newFakeStore() *fakeStore {
	return &fakeStore{saved: make(map[string]string)}
}

func (s *fakeStore) SaveCredential(ctx context.Context, clientID, token string) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved[clientID] = token
	return nil
}

func (s *fakeStore) LoadCredential(ctx context.Context, clientID string) (string, error) {
	if s.loadErr != nil {
		return "", s.loadErr
	}
	return s.saved[clientID], nil
}

func (s *fakeStore) DeleteCredential(ctx context.Context, clientID string) error {
	s.deletes++
	delete(s.saved, clientID)
	return nil
}

type fakeGateway struct {
	user         *domain.User
	err          error
	lastCred     string
	lastUsername string
	lastEmail    string
}

func (g *fakeGateway) RunCode(ctx context.Context, payload *domain.SubmissionPayload, credential string) (string, error) {
	return "", nil
}
func (g *fakeGateway) AddSubmission(ctx context.Context, payload *domain.SubmissionPayload, credential string) (string, error) {
	return "", nil
}
func (g *fakeGateway) GetProblem(ctx context.Context, credential, problemID string) (*domain.Problem, error) {
	return nil, nil
}
func (g *fakeGateway) GetUser(ctx context.Context, credential, username, email string) (*domain.User, error) {
	g.lastCred = credential
	g.lastUsername = username
	g.lastEmail = email
	return g.user, g.err
}
func (g *fakeGateway) GetSubmissions(ctx context.Context, credential, problemID string) ([]*domain.SubmissionRecord, error) {
	return nil, nil
}

func aliceDecoder() fakeDecoder {
	return fakeDecoder{claims: map[string]domain.AuthClaims{
		"tok-123": {Name: "alice", Email: "alice@fpt.edu.vn", Role: "student"},
	}}
}

func TestLoginSetsIdentityAndPersists(t *testing.T) {
	store := newFakeStore()
	svc := NewSessionService("client-a", aliceDecoder(), store, &fakeGateway{}, nopLogger{})

	claims, err := svc.Login(context.Background(), "tok-123")

	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Name)
	assert.Equal(t, "tok-123", svc.Credential())
	require.NotNil(t, svc.Identity())
	assert.Equal(t, "alice", svc.Identity().Name)
	assert.Equal(t, "tok-123", store.saved["client-a"])
}

func TestLoginRejectsUndecodableToken(t *testing.T) {
	store := newFakeStore()
	svc := NewSessionService("client-a", aliceDecoder(), store, &fakeGateway{}, nopLogger{})

	_, err := svc.Login(context.Background(), "garbage")

	require.Error(t, err)
	assert.Nil(t, svc.Identity())
	assert.Empty(t, svc.Credential())
	assert.Empty(t, store.saved)
}

// persistence failure keeps the in-memory login
func TestLoginSurvivesStoreFailure(t *testing.T) {
	store := newFakeStore()
	store.saveErr = errors.New("redis down")
	svc := NewSessionService("client-a", aliceDecoder(), store, &fakeGateway{}, nopLogger{})

	_, err := svc.Login(context.Background(), "tok-123")

	require.NoError(t, err)
	assert.Equal(t, "tok-123", svc.Credential())
}

func TestLogoutClearsEverything(t *testing.T) {
	store := newFakeStore()
	gw := &fakeGateway{user: &domain.User{ID: "user-1"}}
	svc := NewSessionService("client-a", aliceDecoder(), store, gw, nopLogger{})

	_, err := svc.Login(context.Background(), "tok-123")
	require.NoError(t, err)
	require.NoError(t, svc.RefreshUser(context.Background()))

	require.NoError(t, svc.Logout(context.Background()))

	assert.Nil(t, svc.Identity())
	assert.Nil(t, svc.CurrentUser())
	assert.Empty(t, svc.Credential())
	assert.Empty(t, store.saved)
}

func TestInitRestoresPersistedSession(t *testing.T) {
	store := newFakeStore()
	store.saved["client-a"] = "tok-123"
	svc := NewSessionService("client-a", aliceDecoder(), store, &fakeGateway{}, nopLogger{})

	require.NoError(t, svc.Init(context.Background()))

	assert.Equal(t, "tok-123", svc.Credential())
	require.NotNil(t, svc.Identity())
	assert.Equal(t, "alice", svc.Identity().Name)
}

func TestInitDiscardsUndecodableCredential(t *testing.T) {
	store := newFakeStore()
	store.saved["client-a"] = "stale-garbage"
	svc := NewSessionService("client-a", aliceDecoder(), store, &fakeGateway{}, nopLogger{})

	require.NoError(t, svc.Init(context.Background()))

	assert.Nil(t, svc.Identity())
	assert.Empty(t, svc.Credential())
	assert.Equal(t, 1, store.deletes)
	assert.Empty(t, store.saved)
}

func TestInitWithoutPersistedCredential(t *testing.T) {
	svc := NewSessionService("client-a", aliceDecoder(), newFakeStore(), &fakeGateway{}, nopLogger{})

	require.NoError(t, svc.Init(context.Background()))
	assert.Nil(t, svc.Identity())
}

func TestRefreshUserRequiresIdentity(t *testing.T) {
	gw := &fakeGateway{user: &domain.User{ID: "user-1"}}
	svc := NewSessionService("client-a", aliceDecoder(), newFakeStore(), gw, nopLogger{})

	err := svc.RefreshUser(context.Background())

	require.ErrorIs(t, err, errs.AuthMissing)
	assert.Empty(t, gw.lastCred)
}

func TestRefreshUserCachesRecord(t *testing.T) {
	gw := &fakeGateway{user: &domain.User{ID: "user-1", Username: "alice"}}
	svc := NewSessionService("client-a", aliceDecoder(), newFakeStore(), gw, nopLogger{})
	_, err := svc.Login(context.Background(), "tok-123")
	require.NoError(t, err)

	require.NoError(t, svc.RefreshUser(context.Background()))

	user := svc.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "tok-123", gw.lastCred)
	assert.Equal(t, "alice", gw.lastUsername)
	assert.Equal(t, "alice@fpt.edu.vn", gw.lastEmail)
}

func TestRefreshUserGatewayFailureKeepsOldCache(t *testing.T) {
	gw := &fakeGateway{user: &domain.User{ID: "user-1"}}
	svc := NewSessionService("client-a", aliceDecoder(), newFakeStore(), gw, nopLogger{})
	_, err := svc.Login(context.Background(), "tok-123")
	require.NoError(t, err)
	require.NoError(t, svc.RefreshUser(context.Background()))

	gw.err = errors.New("judge unavailable")
	require.Error(t, svc.RefreshUser(context.Background()))

	require.NotNil(t, svc.CurrentUser())
	assert.Equal(t, "user-1", svc.CurrentUser().ID)
}
