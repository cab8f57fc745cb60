package service

import (
	"context"
	"testing"

	reserrors "campuspark/internal/reservations/errors"
	apperrors "campuspark/pkg/errors"
	"campuspark/pkg/model"
)

func TestGetHistoryReconcilesDisplayAmounts(t *testing.T) {
	repo := &mockReservationRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Reservation, error) {
			r := *upcomingReservation(3)
			return &r, nil
		},
	}
	entries := &mockBillingEntryRepository{
		findFunc: func(ctx context.Context, reservationID string) ([]*model.BillingEntry, error) {
			return []*model.BillingEntry{
				{
					Kind:        model.EntryCharge,
					AmountCents: 1000, // stale: 2 of the 4 hours were outside the window
					Snapshot: model.RateSnapshot{
						Profile:   model.RateProfile{RateModel: model.RateModelHourly, HourlyRateCents: 250, IsMetered: true},
						StartTime: at(3, 5),
						EndTime:   at(3, 9),
					},
				},
				{
					Kind:        model.EntryRefund,
					AmountCents: 300,
					Snapshot: model.RateSnapshot{
						Profile:   model.RateProfile{RateModel: model.RateModelHourly, HourlyRateCents: 250, IsMetered: true},
						StartTime: at(3, 5),
						EndTime:   at(3, 9),
					},
				},
			}, nil
		},
	}

	svc := NewBillingService(repo, entries, testConfig())

	views, err := svc.GetHistory(context.Background(), testResID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("got %d views, want 2", len(views))
	}

	if views[0].DisplayAmountCents != 500 {
		t.Errorf("charge display = %d, want recomputed 500", views[0].DisplayAmountCents)
	}
	if views[0].AmountCents != 1000 {
		t.Errorf("stored amount mutated: %d, want 1000", views[0].AmountCents)
	}
	if views[1].DisplayAmountCents != 300 {
		t.Errorf("refund display = %d, want 300", views[1].DisplayAmountCents)
	}
}

func TestGetHistoryUnknownReservation(t *testing.T) {
	repo := &mockReservationRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Reservation, error) {
			return nil, reserrors.ErrNotFound
		},
	}
	svc := NewBillingService(repo, &mockBillingEntryRepository{}, testConfig())

	_, err := svc.GetHistory(context.Background(), testResID)
	if err == nil {
		t.Fatal("expected not found error")
	}
	if code := apperrors.AsAppError(err).Code; code != apperrors.CodeNotFound {
		t.Errorf("code = %q, want %q", code, apperrors.CodeNotFound)
	}
}
