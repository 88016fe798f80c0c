package otp

import (
	"context"
	"encoding/json"
	"time"

	"sprout/config"
	"sprout/internal/domain/entity"
	"sprout/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "checkout:otp:"

// redisStore is a Redis-backed ChallengeStore. Entries expire server-side a
// grace period after the challenge TTL, so a horizontally scaled deployment
// shares live challenges across instances.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore is the constructor for redisStore.
func NewRedisStore(cfg *config.RedisConfig) service.ChallengeStore {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &redisStore{client: client}
}

// Put stores (or replaces) the session for an attempt.
func (s *redisStore) Put(ctx context.Context, attemptID uuid.UUID, session *entity.VerificationSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "failed to marshal verification session")
	}

	ttl := time.Until(session.ExpiresAt.Add(evictionGrace))
	if ttl <= 0 {
		ttl = evictionGrace
	}

	if err := s.client.Set(ctx, keyPrefix+attemptID.String(), payload, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to store verification session")
	}

	return nil
}

// Get returns the live session for an attempt.
func (s *redisStore) Get(ctx context.Context, attemptID uuid.UUID) (*entity.VerificationSession, error) {
	payload, err := s.client.Get(ctx, keyPrefix+attemptID.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, service.ErrSessionNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load verification session")
	}

	var session entity.VerificationSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal verification session")
	}

	return &session, nil
}

// Delete removes the session, if any.
func (s *redisStore) Delete(ctx context.Context, attemptID uuid.UUID) error {
	deleted, err := s.client.Del(ctx, keyPrefix+attemptID.String()).Result()
	if err != nil {
		return errors.Wrap(err, "failed to delete verification session")
	}
	if deleted == 0 {
		return service.ErrSessionNotFound
	}

	return nil
}

// Close releases the underlying Redis connection.
func (s *redisStore) Close() error {
	return s.client.Close()
}
