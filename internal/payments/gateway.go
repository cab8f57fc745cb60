// Package payments wraps the external card-tokenization provider. The core
// waits on charges and refunds but never implements them; a declined or
// timed-out call surfaces as a payment failure and leaves the reservation
// untouched.
package payments

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"campuspark/pkg/client"
	"campuspark/pkg/config"
	apperrors "campuspark/pkg/errors"

	"github.com/google/uuid"
)

type ChargeResult struct {
	Succeeded bool   `json:"succeeded"`
	Reference string `json:"reference"`
}

type RefundResult struct {
	Succeeded bool `json:"succeeded"`
}

type Gateway interface {
	Charge(ctx context.Context, amountCents int64, paymentToken string) (*ChargeResult, error)
	Refund(ctx context.Context, chargeReference string, amountCents int64) (*RefundResult, error)
}

type httpGateway struct {
	client *client.HttpClient
	cfg    *config.Config
}

// NewHTTPGateway talks to the payment provider configured by PaymentBaseURL.
func NewHTTPGateway(cfg *config.Config) Gateway {
	return &httpGateway{
		client: client.NewHttpClient(cfg.PaymentBaseURL, cfg.PaymentTimeout),
		cfg:    cfg,
	}
}

type chargeRequest struct {
	AmountCents  int64  `json:"amount_cents"`
	PaymentToken string `json:"payment_token"`
}

type refundRequest struct {
	ChargeReference string `json:"charge_reference"`
	AmountCents     int64  `json:"amount_cents"`
}

func (g *httpGateway) Charge(ctx context.Context, amountCents int64, paymentToken string) (*ChargeResult, error) {
	resp, err := g.client.POST(ctx, "/v1/charges", chargeRequest{
		AmountCents:  amountCents,
		PaymentToken: paymentToken,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.Timeout("Payment provider did not respond in time")
		}
		return nil, apperrors.PaymentFailure("Payment provider unreachable", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, apperrors.PaymentFailure(
			fmt.Sprintf("Payment provider rejected the charge (status %d)", resp.StatusCode), nil)
	}

	var result ChargeResult
	if err := resp.DecodeJSON(&result); err != nil {
		return nil, apperrors.PaymentFailure("Payment provider returned an unreadable response", err)
	}
	if !result.Succeeded {
		return nil, apperrors.PaymentFailure("Payment was declined", nil)
	}

	return &result, nil
}

func (g *httpGateway) Refund(ctx context.Context, chargeReference string, amountCents int64) (*RefundResult, error) {
	resp, err := g.client.POST(ctx, "/v1/refunds", refundRequest{
		ChargeReference: chargeReference,
		AmountCents:     amountCents,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.Timeout("Payment provider did not respond in time")
		}
		return nil, apperrors.PaymentFailure("Payment provider unreachable", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.PaymentFailure(
			fmt.Sprintf("Payment provider rejected the refund (status %d)", resp.StatusCode), nil)
	}

	var result RefundResult
	if err := resp.DecodeJSON(&result); err != nil {
		return nil, apperrors.PaymentFailure("Payment provider returned an unreadable response", err)
	}
	if !result.Succeeded {
		return nil, apperrors.PaymentFailure("Refund was declined", nil)
	}

	return &result, nil
}

type sandboxGateway struct{}

// NewSandboxGateway approves every charge and refund. Used in local
// development where no provider is configured.
func NewSandboxGateway() Gateway {
	return sandboxGateway{}
}

func (sandboxGateway) Charge(ctx context.Context, amountCents int64, paymentToken string) (*ChargeResult, error) {
	return &ChargeResult{Succeeded: true, Reference: "sandbox-" + uuid.New().String()}, nil
}

func (sandboxGateway) Refund(ctx context.Context, chargeReference string, amountCents int64) (*RefundResult, error) {
	return &RefundResult{Succeeded: true}, nil
}
