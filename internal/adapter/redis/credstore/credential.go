package credstore

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"gitlab.com/fcv-2025.net/client/internal/core/ports/primary"
	"gitlab.com/fcv-2025.net/client/internal/core/ports/secondary"
)

const (
	credentialKeyPrefix  = "workspace:credential:"
	credentialExpiration = 30 * 24 * time.Hour
)

var _ secondary.CredentialStore = (*CredentialStore)(nil)

// CredentialStore implements the CredentialStore interface with Redis
type CredentialStore struct {
	redisClient *redis.Client
	logger      primary.Logger
}

// NewCredentialStore creates a new Redis credential store
func NewCredentialStore(redisClient *redis.Client, logger primary.Logger) *CredentialStore {
	return &CredentialStore{
		redisClient: redisClient,
		logger:      logger,
	}
}

// SaveCredential stores the credential with expiration
func (s *CredentialStore) SaveCredential(ctx context.Context, clientID, token string) error {
	key := fmt.Sprintf("%s%s", credentialKeyPrefix, clientID)
	if err := s.redisClient.Set(ctx, key, token, credentialExpiration).Err(); err != nil {
		s.logger.Error("Failed to save credential", "error", err)
		return fmt.Errorf("failed to save credential: %w", err)
	}
	return nil
}

// LoadCredential retrieves the stored credential, or "" when none is stored
func (s *CredentialStore) LoadCredential(ctx context.Context, clientID string) (string, error) {
	key := fmt.Sprintf("%s%s", credentialKeyPrefix, clientID)
	token, err := s.redisClient.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		s.logger.Error("Failed to load credential", "error", err)
		return "", fmt.Errorf("failed to load credential: %w", err)
	}
	return token, nil
}

// DeleteCredential removes the stored credential
func (s *CredentialStore) DeleteCredential(ctx context.Context, clientID string) error {
	key := fmt.Sprintf("%s%s", credentialKeyPrefix, clientID)
	if err := s.redisClient.Del(ctx, key).Err(); err != nil {
		s.logger.Error("Failed to delete credential", "error", err)
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	return nil
}
