package otp

import (
	"context"
	"testing"
	"time"

	"sprout/internal/domain/entity"
	"sprout/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_PutGetDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	attemptID := uuid.New()

	session := &entity.VerificationSession{
		PhoneDigits:       "9876543210",
		CodeHash:          "hashed-code",
		AttemptsRemaining: 5,
		ExpiresAt:         time.Now().Add(5 * time.Minute),
	}

	require.NoError(t, store.Put(ctx, attemptID, session))

	loaded, err := store.Get(ctx, attemptID)
	require.NoError(t, err)
	assert.Equal(t, session, loaded)

	require.NoError(t, store.Delete(ctx, attemptID))

	_, err = store.Get(ctx, attemptID)
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestMemoryStore_GetUnknown(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestMemoryStore_DeleteUnknown(t *testing.T) {
	store := NewMemoryStore()

	err := store.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestMemoryStore_ExpiredSessionStillReadableWithinGrace(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	attemptID := uuid.New()

	// Expired a minute ago but still within the eviction grace window: the
	// caller needs to see it to answer "expired" rather than "not found".
	session := &entity.VerificationSession{
		PhoneDigits: "9876543210",
		ExpiresAt:   time.Now().Add(-time.Minute),
	}

	require.NoError(t, store.Put(ctx, attemptID, session))

	loaded, err := store.Get(ctx, attemptID)
	require.NoError(t, err)
	assert.True(t, loaded.Expired(time.Now()))
}

func TestMemoryStore_EvictsBeyondGrace(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	attemptID := uuid.New()

	session := &entity.VerificationSession{
		PhoneDigits: "9876543210",
		ExpiresAt:   time.Now().Add(-evictionGrace - time.Minute),
	}

	require.NoError(t, store.Put(ctx, attemptID, session))

	_, err := store.Get(ctx, attemptID)
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestMemoryStore_PutReplacesSession(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	attemptID := uuid.New()

	require.NoError(t, store.Put(ctx, attemptID, &entity.VerificationSession{
		CodeHash:  "old-hash",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}))
	require.NoError(t, store.Put(ctx, attemptID, &entity.VerificationSession{
		CodeHash:  "fresh-hash",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}))

	loaded, err := store.Get(ctx, attemptID)
	require.NoError(t, err)
	assert.Equal(t, "fresh-hash", loaded.CodeHash)
}
