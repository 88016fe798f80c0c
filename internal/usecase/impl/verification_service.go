package impl

import (
	"context"
	"crypto/rand"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"sprout/config"
	deliverycontext "sprout/internal/delivery/context"
	"sprout/internal/domain/entity"
	domainerrors "sprout/internal/domain/errors"
	"sprout/internal/domain/service"
	"sprout/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// verificationService implements the VerificationUsecase interface.
// It owns the challenge lifecycle; it never touches customer records.
type verificationService struct {
	store    service.ChallengeStore
	sender   service.ChallengeSender
	hasher   service.CodeHasher
	tokenSvc service.SessionTokenService
	otp      *config.OtpConfig
	logger   *slog.Logger
}

// VerificationServiceParams holds dependencies for verificationService, injected by Fx.
type VerificationServiceParams struct {
	fx.In

	Store    service.ChallengeStore
	Sender   service.ChallengeSender
	Hasher   service.CodeHasher
	TokenSvc service.SessionTokenService
	Config   *config.Config
	Logger   *slog.Logger
}

// NewVerificationService is the constructor for verificationService.
func NewVerificationService(params VerificationServiceParams) usecase.VerificationUsecase {
	return &verificationService{
		store:    params.Store,
		sender:   params.Sender,
		hasher:   params.Hasher,
		tokenSvc: params.TokenSvc,
		otp:      params.Config.Otp,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *verificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestChallenge validates the number, dispatches a one-time code, and
// records the armed challenge for the attempt.
func (srv *verificationService) RequestChallenge(ctx context.Context, attemptID uuid.UUID, phoneDigits string) (*usecase.ChallengeInfo, error) {
	phoneDigits = strings.TrimSpace(phoneDigits)
	if !entity.IsValidMobile(phoneDigits) {
		return nil, domainerrors.ErrInvalidPhoneFormat.WrapMessage("phone does not match the mobile pattern")
	}

	return srv.dispatch(ctx, attemptID, phoneDigits)
}

// SubmitCode confirms the dispatched code for the attempt's live challenge.
func (srv *verificationService) SubmitCode(ctx context.Context, attemptID uuid.UUID, code string) (*usecase.VerificationResult, error) {
	session, err := srv.store.Get(ctx, attemptID)
	if errors.Is(err, service.ErrSessionNotFound) {
		return nil, domainerrors.ErrNoActiveChallenge.WrapMessage("submit without a live challenge")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load verification session")
	}

	now := time.Now()
	if session.Expired(now) {
		// Keep the expired entry in place. The store evicts it after its
		// grace window, and until then repeated late submissions keep
		// reporting expiry instead of degrading to a missing challenge.
		return nil, domainerrors.ErrChallengeExpired.WrapMessage("challenge expired before confirmation")
	}

	if !srv.hasher.Check(code, session.CodeHash) {
		session.AttemptsRemaining--
		if session.AttemptsRemaining <= 0 {
			if err := srv.store.Delete(ctx, attemptID); err != nil {
				srv.log(ctx).Warn("Failed to burn exhausted challenge", slog.Any("attemptID", attemptID), slog.Any("error", err))
			}

			return nil, domainerrors.ErrTooManyCodeAttempts.WrapMessage("no code attempts remaining")
		}

		if err := srv.store.Put(ctx, attemptID, session); err != nil {
			return nil, errors.Wrap(err, "failed to record failed attempt")
		}

		return nil, domainerrors.ErrCodeMismatch.WrapMessage("code does not match the challenge")
	}

	// Confirmed: the session is single-use.
	if err := srv.store.Delete(ctx, attemptID); err != nil {
		srv.log(ctx).Warn("Failed to destroy confirmed challenge", slog.Any("attemptID", attemptID), slog.Any("error", err))
	}

	phone := entity.CanonicalPhone(session.PhoneDigits)

	token, err := srv.tokenSvc.Issue(service.VerifiedSession{Phone: phone})
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue verified session token")
	}

	srv.log(ctx).Info("Phone verified", slog.Any("attemptID", attemptID))

	return &usecase.VerificationResult{
		Phone:        phone,
		SessionToken: token,
	}, nil
}

// Resend re-dispatches a fresh code for the same number once the cooldown allows.
func (srv *verificationService) Resend(ctx context.Context, attemptID uuid.UUID) (*usecase.ChallengeInfo, error) {
	session, err := srv.store.Get(ctx, attemptID)
	if errors.Is(err, service.ErrSessionNotFound) {
		return nil, domainerrors.ErrNoActiveChallenge.WrapMessage("resend without a live challenge")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load verification session")
	}

	if !session.CanResend(time.Now()) {
		return nil, domainerrors.ErrResendCooldownActive.WrapMessage("resend requested during cooldown")
	}

	return srv.dispatch(ctx, attemptID, session.PhoneDigits)
}

// Restart discards any live challenge so a different number can be entered.
func (srv *verificationService) Restart(ctx context.Context, attemptID uuid.UUID) error {
	if err := srv.store.Delete(ctx, attemptID); err != nil && !errors.Is(err, service.ErrSessionNotFound) {
		return errors.Wrap(err, "failed to discard verification session")
	}

	return nil
}

// dispatch generates, delivers, and records a fresh challenge. The code is
// sent before the session is stored so a dispatch failure leaves no live
// challenge behind.
func (srv *verificationService) dispatch(ctx context.Context, attemptID uuid.UUID, phoneDigits string) (*usecase.ChallengeInfo, error) {
	code, err := generateCode(srv.otp.CodeLength)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate one-time code")
	}

	codeHash, err := srv.hasher.Hash(code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash one-time code")
	}

	if err := srv.sender.SendCode(ctx, phoneDigits, code); err != nil {
		srv.log(ctx).Warn("Challenge dispatch failed", slog.Any("attemptID", attemptID), slog.Any("error", err))

		return nil, classifyDispatchError(err)
	}

	now := time.Now()
	session := &entity.VerificationSession{
		PhoneDigits:       phoneDigits,
		CodeHash:          codeHash,
		AttemptsRemaining: srv.otp.MaxAttempts,
		ExpiresAt:         now.Add(srv.otp.TTL),
		ResendNotBefore:   now.Add(srv.otp.ResendCooldown),
	}

	if err := srv.store.Put(ctx, attemptID, session); err != nil {
		return nil, errors.Wrap(err, "failed to store verification session")
	}

	srv.log(ctx).Info("Challenge dispatched", slog.Any("attemptID", attemptID))

	return &usecase.ChallengeInfo{
		PhoneDigits:     phoneDigits,
		ExpiresAt:       session.ExpiresAt,
		ResendNotBefore: session.ResendNotBefore,
		AttemptsAllowed: session.AttemptsRemaining,
	}, nil
}

// classifyDispatchError maps SMS channel failures onto the user-facing
// error taxonomy.
func classifyDispatchError(err error) error {
	switch {
	case errors.Is(err, service.ErrDispatchRateLimited):
		return domainerrors.ErrSmsRateLimited.WrapMessage("sms channel rate limited")
	case errors.Is(err, service.ErrDispatchMalformedNumber):
		return domainerrors.ErrInvalidPhoneFormat.WrapMessage("sms channel rejected the number")
	case errors.Is(err, service.ErrDispatchUnavailable):
		return domainerrors.ErrSmsUnavailable.WrapMessage("sms channel unavailable")
	default:
		return domainerrors.ErrChallengeDispatchFailed.WrapMessage(err.Error())
	}
}

// generateCode produces a fixed-length numeric one-time code using
// crypto/rand.
func generateCode(length int) (string, error) {
	var builder strings.Builder
	builder.Grow(length)

	for i := 0; i < length; i++ {
		digit, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		builder.WriteByte(byte('0' + digit.Int64()))
	}

	return builder.String(), nil
}
