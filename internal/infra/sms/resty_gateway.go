// Package sms delivers one-time verification codes over an HTTP SMS gateway.
package sms

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"sprout/config"
	"sprout/internal/domain/entity"
	"sprout/internal/domain/service"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const requestTimeout = 10 * time.Second

// restyGateway dispatches codes through a JSON HTTP gateway. The gateway's
// response status is mapped onto the dispatch failure classes so the
// verification flow can distinguish throttling from a dead channel.
type restyGateway struct {
	client   *resty.Client
	senderID string
}

// NewRestyGateway is the constructor for restyGateway.
func NewRestyGateway(cfg *config.SmsConfig) service.ChallengeSender {
	client := resty.New().
		SetBaseURL(cfg.Endpoint).
		SetTimeout(requestTimeout).
		SetHeader("Authorization", "Bearer "+cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &restyGateway{
		client:   client,
		senderID: cfg.SenderID,
	}
}

// SendCode dispatches the plaintext code to the given 10-digit number.
func (g *restyGateway) SendCode(ctx context.Context, phoneDigits, code string) error {
	body := map[string]string{
		"to":        entity.CanonicalPhone(phoneDigits),
		"sender_id": g.senderID,
		"message":   fmt.Sprintf("%s is your verification code. It expires shortly.", code),
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/messages")
	if err != nil {
		return errors.Wrap(service.ErrDispatchUnavailable, err.Error())
	}

	switch {
	case resp.StatusCode() == http.StatusOK || resp.StatusCode() == http.StatusAccepted:
		return nil
	case resp.StatusCode() == http.StatusTooManyRequests:
		return service.ErrDispatchRateLimited
	case resp.StatusCode() == http.StatusBadRequest || resp.StatusCode() == http.StatusUnprocessableEntity:
		return errors.Wrapf(service.ErrDispatchMalformedNumber, "gateway response: %s", resp.Body())
	default:
		return errors.Wrapf(service.ErrDispatchUnavailable, "gateway status %d", resp.StatusCode())
	}
}
