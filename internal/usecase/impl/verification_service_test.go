package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"sprout/config"
	"sprout/internal/domain/entity"
	domainerrors "sprout/internal/domain/errors"
	"sprout/internal/domain/service"
	mockSvc "sprout/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestVerificationService(t *testing.T) (*verificationService, *mockSvc.MockChallengeStore, *mockSvc.MockChallengeSender, *mockSvc.MockCodeHasher, *mockSvc.MockSessionTokenService) {
	mockStore := mockSvc.NewMockChallengeStore(t)
	mockSender := mockSvc.NewMockChallengeSender(t)
	mockHasher := mockSvc.NewMockCodeHasher(t)
	mockTokenSvc := mockSvc.NewMockSessionTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Otp: &config.OtpConfig{
			CodeLength:     6,
			TTL:            5 * time.Minute,
			ResendCooldown: 30 * time.Second,
			MaxAttempts:    5,
		},
	}

	svc := NewVerificationService(VerificationServiceParams{
		Store:    mockStore,
		Sender:   mockSender,
		Hasher:   mockHasher,
		TokenSvc: mockTokenSvc,
		Config:   cfg,
		Logger:   logger,
	})

	return svc.(*verificationService), mockStore, mockSender, mockHasher, mockTokenSvc
}

func TestVerificationService_RequestChallenge_Success(t *testing.T) {
	svc, mockStore, mockSender, mockHasher, _ := newTestVerificationService(t)

	ctx := context.Background()
	attemptID := uuid.New()

	var sentCode string
	mockSender.EXPECT().
		SendCode(ctx, "9876543210", mock.AnythingOfType("string")).
		Run(func(_ context.Context, _ string, code string) {
			sentCode = code
		}).
		Return(nil)

	mockHasher.EXPECT().
		Hash(mock.AnythingOfType("string")).
		Return("hashed-code", nil)

	var stored *entity.VerificationSession
	mockStore.EXPECT().
		Put(ctx, attemptID, mock.AnythingOfType("*entity.VerificationSession")).
		Run(func(_ context.Context, _ uuid.UUID, session *entity.VerificationSession) {
			stored = session
		}).
		Return(nil)

	info, err := svc.RequestChallenge(ctx, attemptID, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, "9876543210", info.PhoneDigits)
	assert.Equal(t, 5, info.AttemptsAllowed)
	assert.True(t, info.ResendNotBefore.Before(info.ExpiresAt))

	require.NotNil(t, stored)
	assert.Equal(t, "hashed-code", stored.CodeHash)
	assert.Len(t, sentCode, 6)
}

func TestVerificationService_RequestChallenge_InvalidPhone(t *testing.T) {
	svc, _, _, _, _ := newTestVerificationService(t)

	ctx := context.Background()

	for _, phone := range []string{"", "12345", "1234567890", "98765432101", "98765abc10"} {
		_, err := svc.RequestChallenge(ctx, uuid.New(), phone)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidPhoneFormat, "phone %q", phone)
	}
}

func TestVerificationService_RequestChallenge_DispatchFailed(t *testing.T) {
	svc, _, mockSender, mockHasher, _ := newTestVerificationService(t)

	ctx := context.Background()
	attemptID := uuid.New()

	mockHasher.EXPECT().
		Hash(mock.AnythingOfType("string")).
		Return("hashed-code", nil)

	mockSender.EXPECT().
		SendCode(ctx, "9876543210", mock.AnythingOfType("string")).
		Return(service.ErrDispatchRateLimited)

	// No Put expectation: a failed dispatch must leave no live challenge.
	_, err := svc.RequestChallenge(ctx, attemptID, "9876543210")
	assert.ErrorIs(t, err, domainerrors.ErrSmsRateLimited)
}

func TestVerificationService_RequestChallenge_DispatchUnavailable(t *testing.T) {
	svc, _, mockSender, mockHasher, _ := newTestVerificationService(t)

	ctx := context.Background()

	mockHasher.EXPECT().
		Hash(mock.AnythingOfType("string")).
		Return("hashed-code", nil)

	mockSender.EXPECT().
		SendCode(ctx, "9876543210", mock.AnythingOfType("string")).
		Return(service.ErrDispatchUnavailable)

	_, err := svc.RequestChallenge(ctx, uuid.New(), "9876543210")
	assert.ErrorIs(t, err, domainerrors.ErrSmsUnavailable)
}

func TestVerificationService_SubmitCode_NoActiveChallenge(t *testing.T) {
	svc, mockStore, _, _, _ := newTestVerificationService(t)

	ctx := context.Background()
	attemptID := uuid.New()

	mockStore.EXPECT().
		Get(ctx, attemptID).
		Return(nil, service.ErrSessionNotFound)

	_, err := svc.SubmitCode(ctx, attemptID, "123456")
	assert.ErrorIs(t, err, domainerrors.ErrNoActiveChallenge)
}

func TestVerificationService_SubmitCode_Expired(t *testing.T) {
	svc, mockStore, _, _, _ := newTestVerificationService(t)

	ctx := context.Background()
	attemptID := uuid.New()

	// The session survives a late submit so the store's grace window, not
	// the service, decides when it disappears.
	mockStore.EXPECT().
		Get(ctx, attemptID).
		Return(&entity.VerificationSession{
			PhoneDigits:       "9876543210",
			CodeHash:          "hashed-code",
			AttemptsRemaining: 5,
			ExpiresAt:         time.Now().Add(-time.Minute),
		}, nil).
		Times(2)

	// Repeated late submissions all report expiry, never a missing
	// challenge.
	for i := 0; i < 2; i++ {
		_, err := svc.SubmitCode(ctx, attemptID, "123456")
		assert.ErrorIs(t, err, domainerrors.ErrChallengeExpired)
	}
}

func TestVerificationService_SubmitCode_Mismatch(t *testing.T) {
	svc, mockStore, _, mockHasher, _ := newTestVerificationService(t)

	ctx := context.Background()
	attemptID := uuid.New()

	mockStore.EXPECT().
		Get(ctx, attemptID).
		Return(&entity.VerificationSession{
			PhoneDigits:       "9876543210",
			CodeHash:          "hashed-code",
			AttemptsRemaining: 3,
			ExpiresAt:         time.Now().Add(5 * time.Minute),
		}, nil)

	mockHasher.EXPECT().
		Check("000000", "hashed-code").
		Return(false)

	var stored *entity.VerificationSession
	mockStore.EXPECT().
		Put(ctx, attemptID, mock.AnythingOfType("*entity.VerificationSession")).
		Run(func(_ context.Context, _ uuid.UUID, session *entity.VerificationSession) {
			stored = session
		}).
		Return(nil)

	_, err := svc.SubmitCode(ctx, attemptID, "000000")
	assert.ErrorIs(t, err, domainerrors.ErrCodeMismatch)

	require.NotNil(t, stored)
	assert.Equal(t, 2, stored.AttemptsRemaining)
}

func TestVerificationService_SubmitCode_AttemptsExhausted(t *testing.T) {
	svc, mockStore, _, mockHasher, _ := newTestVerificationService(t)

	ctx := context.Background()
	attemptID := uuid.New()

	mockStore.EXPECT().
		Get(ctx, attemptID).
		Return(&entity.VerificationSession{
			PhoneDigits:       "9876543210",
			CodeHash:          "hashed-code",
			AttemptsRemaining: 1,
			ExpiresAt:         time.Now().Add(5 * time.Minute),
		}, nil)

	mockHasher.EXPECT().
		Check("000000", "hashed-code").
		Return(false)

	mockStore.EXPECT().
		Delete(ctx, attemptID).
		Return(nil)

	_, err := svc.SubmitCode(ctx, attemptID, "000000")
	assert.ErrorIs(t, err, domainerrors.ErrTooManyCodeAttempts)
}

func TestVerificationService_SubmitCode_Success(t *testing.T) {
	svc, mockStore, _, mockHasher, mockTokenSvc := newTestVerificationService(t)

	ctx := context.Background()
	attemptID := uuid.New()

	mockStore.EXPECT().
		Get(ctx, attemptID).
		Return(&entity.VerificationSession{
			PhoneDigits:       "9876543210",
			CodeHash:          "hashed-code",
			AttemptsRemaining: 5,
			ExpiresAt:         time.Now().Add(5 * time.Minute),
		}, nil)

	mockHasher.EXPECT().
		Check("123456", "hashed-code").
		Return(true)

	mockStore.EXPECT().
		Delete(ctx, attemptID).
		Return(nil)

	mockTokenSvc.EXPECT().
		Issue(service.VerifiedSession{Phone: "+919876543210"}).
		Return("signed-token", nil)

	result, err := svc.SubmitCode(ctx, attemptID, "123456")
	require.NoError(t, err)
	assert.Equal(t, "+919876543210", result.Phone)
	assert.Equal(t, "signed-token", result.SessionToken)
}

func TestVerificationService_Resend_CooldownActive(t *testing.T) {
	svc, mockStore, _, _, _ := newTestVerificationService(t)

	ctx := context.Background()
	attemptID := uuid.New()

	mockStore.EXPECT().
		Get(ctx, attemptID).
		Return(&entity.VerificationSession{
			PhoneDigits:       "9876543210",
			CodeHash:          "hashed-code",
			AttemptsRemaining: 5,
			ExpiresAt:         time.Now().Add(5 * time.Minute),
			ResendNotBefore:   time.Now().Add(20 * time.Second),
		}, nil)

	_, err := svc.Resend(ctx, attemptID)
	assert.ErrorIs(t, err, domainerrors.ErrResendCooldownActive)
}

func TestVerificationService_Resend_Success(t *testing.T) {
	svc, mockStore, mockSender, mockHasher, _ := newTestVerificationService(t)

	ctx := context.Background()
	attemptID := uuid.New()

	mockStore.EXPECT().
		Get(ctx, attemptID).
		Return(&entity.VerificationSession{
			PhoneDigits:       "9876543210",
			CodeHash:          "old-hash",
			AttemptsRemaining: 2,
			ExpiresAt:         time.Now().Add(2 * time.Minute),
			ResendNotBefore:   time.Now().Add(-time.Second),
		}, nil)

	mockHasher.EXPECT().
		Hash(mock.AnythingOfType("string")).
		Return("fresh-hash", nil)

	mockSender.EXPECT().
		SendCode(ctx, "9876543210", mock.AnythingOfType("string")).
		Return(nil)

	var stored *entity.VerificationSession
	mockStore.EXPECT().
		Put(ctx, attemptID, mock.AnythingOfType("*entity.VerificationSession")).
		Run(func(_ context.Context, _ uuid.UUID, session *entity.VerificationSession) {
			stored = session
		}).
		Return(nil)

	info, err := svc.Resend(ctx, attemptID)
	require.NoError(t, err)
	assert.Equal(t, "9876543210", info.PhoneDigits)

	// A resent challenge starts over: fresh code, attempts fully restored.
	require.NotNil(t, stored)
	assert.Equal(t, "fresh-hash", stored.CodeHash)
	assert.Equal(t, 5, stored.AttemptsRemaining)
}

func TestVerificationService_Resend_NoActiveChallenge(t *testing.T) {
	svc, mockStore, _, _, _ := newTestVerificationService(t)

	ctx := context.Background()
	attemptID := uuid.New()

	mockStore.EXPECT().
		Get(ctx, attemptID).
		Return(nil, service.ErrSessionNotFound)

	_, err := svc.Resend(ctx, attemptID)
	assert.ErrorIs(t, err, domainerrors.ErrNoActiveChallenge)
}

func TestVerificationService_Restart(t *testing.T) {
	svc, mockStore, _, _, _ := newTestVerificationService(t)

	ctx := context.Background()
	attemptID := uuid.New()

	mockStore.EXPECT().
		Delete(ctx, attemptID).
		Return(nil)

	require.NoError(t, svc.Restart(ctx, attemptID))
}

func TestVerificationService_Restart_NoSession(t *testing.T) {
	svc, mockStore, _, _, _ := newTestVerificationService(t)

	ctx := context.Background()
	attemptID := uuid.New()

	mockStore.EXPECT().
		Delete(ctx, attemptID).
		Return(service.ErrSessionNotFound)

	require.NoError(t, svc.Restart(ctx, attemptID))
}

func TestVerificationService_Restart_StoreFailure(t *testing.T) {
	svc, mockStore, _, _, _ := newTestVerificationService(t)

	ctx := context.Background()
	attemptID := uuid.New()

	mockStore.EXPECT().
		Delete(ctx, attemptID).
		Return(errors.New("store down"))

	assert.Error(t, svc.Restart(ctx, attemptID))
}
