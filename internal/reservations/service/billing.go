package service

import (
	"context"
	"errors"

	"campuspark/internal/pricing"
	reserrors "campuspark/internal/reservations/errors"
	"campuspark/internal/reservations/repository"
	"campuspark/pkg/config"
	apperrors "campuspark/pkg/errors"
	"campuspark/pkg/model"
)

// BillingService reads the immutable ledger and reconciles each row's
// display amount through the pricing engine, so history shows the same
// numbers the write path would produce today.
type BillingService interface {
	GetHistory(ctx context.Context, reservationID string) ([]model.BillingEntryView, error)
}

type billingService struct {
	repo    repository.ReservationRepository
	entries repository.BillingEntryRepository
	rules   pricing.Rules
	cfg     *config.Config
}

func NewBillingService(
	repo repository.ReservationRepository,
	entries repository.BillingEntryRepository,
	cfg *config.Config,
) BillingService {
	return &billingService{
		repo:    repo,
		entries: entries,
		rules:   pricing.FromConfig(cfg),
		cfg:     cfg,
	}
}

func (s *billingService) GetHistory(ctx context.Context, reservationID string) ([]model.BillingEntryView, error) {
	if reservationID == "" {
		return nil, apperrors.InvalidInput("Reservation ID cannot be empty")
	}

	if _, err := s.repo.FindByID(ctx, reservationID); err != nil {
		if errors.Is(err, reserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Reservation", reservationID)
		}
		if errors.Is(err, reserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid reservation ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve reservation", err)
	}

	entries, err := s.entries.FindByReservation(ctx, reservationID)
	if err != nil {
		return nil, apperrors.Internal("Failed to retrieve billing history", err)
	}

	views := make([]model.BillingEntryView, 0, len(entries))
	var charged, refunded int64
	for _, entry := range entries {
		views = append(views, model.BillingEntryView{
			BillingEntry:       *entry,
			DisplayAmountCents: pricing.ReconcileDisplayAmount(*entry, s.rules),
		})

		switch entry.Kind {
		case model.EntryCharge:
			charged += entry.AmountCents
		case model.EntryRefund:
			refunded += entry.AmountCents
		}
	}

	if refunded > charged {
		s.cfg.Log.Warn("Billing ledger refunds exceed charges",
			"reservation_id", reservationID,
			"charged_cents", charged,
			"refunded_cents", refunded,
		)
	}

	return views, nil
}
