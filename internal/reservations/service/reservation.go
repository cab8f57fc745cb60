package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	dirservice "campuspark/internal/directory/service"
	"campuspark/internal/notifications"
	"campuspark/internal/payments"
	"campuspark/internal/pricing"
	reserrors "campuspark/internal/reservations/errors"
	"campuspark/internal/reservations/repository"
	"campuspark/internal/reservations/validator"
	"campuspark/pkg/clock"
	"campuspark/pkg/config"
	apperrors "campuspark/pkg/errors"
	"campuspark/pkg/model"
	"campuspark/pkg/sanitizer"

	"go.mongodb.org/mongo-driver/mongo"
)

type ReservationService interface {
	Create(ctx context.Context, req *model.ReservationRequest) (*model.Reservation, error)
	GetByID(ctx context.Context, id string) (*model.Reservation, error)
	GetByUser(ctx context.Context, userID string, limit int, offset int64) ([]*model.Reservation, int64, error)
	ConfirmPayment(ctx context.Context, id string, paymentToken string) (*model.Reservation, error)
	Extend(ctx context.Context, id string, req *model.ExtensionRequest) (*model.Reservation, error)
	Cancel(ctx context.Context, id string) (*model.Reservation, error)
}

type reservationService struct {
	repo      repository.ReservationRepository
	entries   repository.BillingEntryRepository
	lockRepo  repository.ReservationLockRepository
	directory dirservice.DirectoryService
	gateway   payments.Gateway
	publisher notifications.Publisher
	validator *validator.ReservationValidator
	clk       clock.Clock
	rules     pricing.Rules
	cfg       *config.Config
}

func NewReservationService(
	repo repository.ReservationRepository,
	entries repository.BillingEntryRepository,
	lockRepo repository.ReservationLockRepository,
	directory dirservice.DirectoryService,
	gateway payments.Gateway,
	publisher notifications.Publisher,
	validator *validator.ReservationValidator,
	clk clock.Clock,
	cfg *config.Config,
) ReservationService {
	return &reservationService{
		repo:      repo,
		entries:   entries,
		lockRepo:  lockRepo,
		directory: directory,
		gateway:   gateway,
		publisher: publisher,
		validator: validator,
		clk:       clk,
		rules:     pricing.FromConfig(cfg),
		cfg:       cfg,
	}
}

func (s *reservationService) Create(ctx context.Context, req *model.ReservationRequest) (*model.Reservation, error) {
	req.VehiclePlate = sanitizer.NormalizePlate(req.VehiclePlate)

	if err := s.validator.ValidateRequest(req); err != nil {
		s.cfg.Log.Warn("Reservation validation failed", "error", err)
		return nil, apperrors.Validation("Reservation validation failed", map[string]any{"error": err.Error()})
	}

	profile, err := s.directory.GetRateProfile(ctx, req.LotID)
	if err != nil {
		return nil, err
	}

	quote, err := pricing.ComputeBillableAmount(req.StartTime, req.EndTime, profile, s.rules)
	if err != nil {
		return nil, err
	}

	reservation := &model.Reservation{
		LotID:               req.LotID,
		UserID:              req.UserID,
		VehiclePlate:        req.VehiclePlate,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		OriginalAmountCents: quote.AmountCents,
		CurrentAmountCents:  quote.AmountCents,
		IsFree:              quote.IsFree,
		FreeReason:          quote.FreeReason,
	}

	// A free reservation has no payment to wait on; it is immediately upcoming.
	if quote.IsFree || quote.AmountCents == 0 {
		reservation.Status = model.StatusUpcoming
	} else {
		reservation.Status = model.StatusPending
	}

	lockID, err := s.acquireSlotLock(ctx, req.LotID, req.UserID, req.StartTime)
	if err != nil {
		return nil, err
	}
	defer s.releaseLock(ctx, lockID)

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.repo.Create(sessCtx, reservation); err != nil {
			return apperrors.Internal("Failed to create reservation", err)
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to create reservation", "error", err)
		return nil, err
	}

	s.publisher.PublishStatusChange(ctx, notifications.EventReservationCreated, notifications.StatusChangeEvent{
		ReservationID: reservation.ID,
		UserID:        reservation.UserID,
		LotID:         reservation.LotID,
		NewStatus:     reservation.Status,
		AmountCents:   reservation.CurrentAmountCents,
		OccurredAt:    s.clk.Now(),
	})

	s.cfg.Log.Info("Reservation created successfully",
		"id", reservation.ID,
		"lot_id", reservation.LotID,
		"user_id", reservation.UserID,
		"amount_cents", reservation.CurrentAmountCents,
		"is_free", reservation.IsFree,
		"free_reason", reservation.FreeReason,
	)
	return reservation, nil
}

func (s *reservationService) GetByID(ctx context.Context, id string) (*model.Reservation, error) {
	reservation, err := s.findReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	reservation.Status = pricing.DeriveStatus(reservation, s.clk.Now())
	return reservation, nil
}

func (s *reservationService) GetByUser(ctx context.Context, userID string, limit int, offset int64) ([]*model.Reservation, int64, error) {
	if userID == "" {
		return nil, 0, apperrors.InvalidInput("User ID cannot be empty")
	}

	var count int64
	var reservations []*model.Reservation
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.CountByUser(ctx, userID)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count reservations", "user_id", userID, "error", errCount)
			errCount = apperrors.Internal("Failed to count reservations", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		reservations, errFind = s.repo.FindByUser(ctx, userID, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list reservations", "user_id", userID, "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve reservations", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	now := s.clk.Now()
	for _, r := range reservations {
		r.Status = pricing.DeriveStatus(r, now)
	}

	return reservations, count, nil
}

// ConfirmPayment charges the gateway and fires the pending -> upcoming
// transition. A declined or timed-out charge leaves the reservation pending
// and retryable; the ledger row and the transition commit together or not
// at all.
func (s *reservationService) ConfirmPayment(ctx context.Context, id string, paymentToken string) (*model.Reservation, error) {
	lockID, err := s.acquireReservationLock(ctx, id)
	if err != nil {
		return nil, err
	}
	defer s.releaseLock(ctx, lockID)

	reservation, err := s.findReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.clk.Now()
	status := pricing.DeriveStatus(reservation, now)
	if !pricing.CanConfirm(status) {
		return nil, apperrors.InvalidState(fmt.Sprintf("Cannot confirm payment for a %s reservation", status))
	}

	charge, err := s.gateway.Charge(ctx, reservation.CurrentAmountCents, paymentToken)
	if err != nil {
		s.cfg.Log.Warn("Payment confirmation failed, reservation stays pending",
			"id", id,
			"amount_cents", reservation.CurrentAmountCents,
			"error", err,
		)
		return nil, err
	}

	profile, err := s.directory.GetRateProfile(ctx, reservation.LotID)
	if err != nil {
		return nil, err
	}

	entry := &model.BillingEntry{
		ReservationID: reservation.ID,
		Kind:          model.EntryCharge,
		AmountCents:   reservation.CurrentAmountCents,
		PaymentRef:    charge.Reference,
		Date:          now,
		Snapshot: model.RateSnapshot{
			Profile:   profile,
			StartTime: reservation.StartTime,
			EndTime:   reservation.EndTime,
		},
	}

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.repo.UpdateStatus(sessCtx, id, reservation.Version, model.StatusUpcoming, charge.Reference); err != nil {
			return s.mapWriteError(err, "Failed to confirm reservation")
		}
		if err := s.entries.Create(sessCtx, entry); err != nil {
			return apperrors.Internal("Failed to record charge", err)
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to confirm reservation", "id", id, "error", err)
		return nil, err
	}

	reservation.Status = model.StatusUpcoming
	reservation.PaymentRef = charge.Reference
	reservation.Version++

	s.publisher.PublishStatusChange(ctx, notifications.EventReservationConfirmed, notifications.StatusChangeEvent{
		ReservationID: reservation.ID,
		UserID:        reservation.UserID,
		LotID:         reservation.LotID,
		OldStatus:     model.StatusPending,
		NewStatus:     model.StatusUpcoming,
		AmountCents:   reservation.CurrentAmountCents,
		OccurredAt:    now,
	})

	s.cfg.Log.Info("Reservation payment confirmed", "id", id, "payment_ref", charge.Reference)
	return reservation, nil
}

// Extend prices an extension, charges any fee, and moves the end time. The
// status does not change; only endTime and currentAmount do.
func (s *reservationService) Extend(ctx context.Context, id string, req *model.ExtensionRequest) (*model.Reservation, error) {
	if err := s.validator.ValidateExtension(req); err != nil {
		s.cfg.Log.Warn("Extension validation failed", "id", id, "error", err)
		return nil, apperrors.Validation("Extension validation failed", map[string]any{"error": err.Error()})
	}

	lockID, err := s.acquireReservationLock(ctx, id)
	if err != nil {
		return nil, err
	}
	defer s.releaseLock(ctx, lockID)

	reservation, err := s.findReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.clk.Now()
	status := pricing.DeriveStatus(reservation, now)
	if !pricing.CanExtend(status) {
		return nil, apperrors.InvalidState(fmt.Sprintf("Cannot extend a %s reservation", status))
	}

	hasPermit, err := s.directory.HasActivePermit(ctx, reservation.UserID, now)
	if err != nil {
		return nil, err
	}

	profile, err := s.directory.GetRateProfile(ctx, reservation.LotID)
	if err != nil {
		return nil, err
	}

	quote, err := pricing.ComputeExtension(reservation.EndTime, profile, req.AdditionalHours, now, hasPermit, s.rules)
	if err != nil {
		return nil, err
	}

	var paymentRef string
	if quote.FeeCents > 0 {
		charge, err := s.gateway.Charge(ctx, quote.FeeCents, req.PaymentToken)
		if err != nil {
			s.cfg.Log.Warn("Extension payment failed, reservation unchanged",
				"id", id,
				"fee_cents", quote.FeeCents,
				"error", err,
			)
			return nil, err
		}
		paymentRef = charge.Reference
	}

	newAmount := reservation.CurrentAmountCents + quote.FeeCents

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.repo.UpdateExtension(sessCtx, id, reservation.Version, quote.NewEndTime, newAmount); err != nil {
			return s.mapWriteError(err, "Failed to extend reservation")
		}
		if quote.FeeCents > 0 {
			var surcharge int64
			if quote.Reason == pricing.ReasonMeteredExtension {
				surcharge = s.rules.ExtensionSurchargeCents
			}
			entry := &model.BillingEntry{
				ReservationID: reservation.ID,
				Kind:          model.EntryCharge,
				AmountCents:   quote.FeeCents,
				PaymentRef:    paymentRef,
				Date:          now,
				Snapshot: model.RateSnapshot{
					Profile:        profile,
					StartTime:      reservation.EndTime,
					EndTime:        quote.NewEndTime,
					SurchargeCents: surcharge,
				},
			}
			if err := s.entries.Create(sessCtx, entry); err != nil {
				return apperrors.Internal("Failed to record extension charge", err)
			}
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to extend reservation", "id", id, "error", err)
		return nil, err
	}

	reservation.EndTime = quote.NewEndTime
	reservation.CurrentAmountCents = newAmount
	reservation.Version++

	s.publisher.PublishStatusChange(ctx, notifications.EventReservationExtended, notifications.StatusChangeEvent{
		ReservationID: reservation.ID,
		UserID:        reservation.UserID,
		LotID:         reservation.LotID,
		OldStatus:     status,
		NewStatus:     status,
		AmountCents:   quote.FeeCents,
		OccurredAt:    now,
	})

	s.cfg.Log.Info("Reservation extended",
		"id", id,
		"additional_hours", req.AdditionalHours,
		"fee_cents", quote.FeeCents,
		"reason", quote.Reason,
		"new_end_time", quote.NewEndTime,
	)
	return reservation, nil
}

// Cancel computes the refund, refunds the gateway if anything is owed, and
// fires the sticky transition to cancelled. A reservation is never refunded
// twice: the already-cancelled check and the version-checked write both
// guard it.
func (s *reservationService) Cancel(ctx context.Context, id string) (*model.Reservation, error) {
	lockID, err := s.acquireReservationLock(ctx, id)
	if err != nil {
		return nil, err
	}
	defer s.releaseLock(ctx, lockID)

	reservation, err := s.findReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.clk.Now()
	status := pricing.DeriveStatus(reservation, now)
	if !pricing.CanCancel(status) {
		return nil, apperrors.InvalidState(fmt.Sprintf("Cannot cancel a %s reservation", status))
	}

	entries, err := s.entries.FindByReservation(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("Failed to load billing history", err)
	}
	netPaid := netPaidCents(entries)

	refund := pricing.ComputeRefund(netPaid, reservation.StartTime, now, s.rules)

	if refund > 0 {
		if reservation.PaymentRef == "" {
			return nil, apperrors.Internal("Reservation has charges but no payment reference", nil)
		}
		if _, err := s.gateway.Refund(ctx, reservation.PaymentRef, refund); err != nil {
			s.cfg.Log.Warn("Refund failed, reservation unchanged", "id", id, "refund_cents", refund, "error", err)
			return nil, err
		}
	}

	profile, err := s.directory.GetRateProfile(ctx, reservation.LotID)
	if err != nil {
		return nil, err
	}

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.repo.UpdateStatus(sessCtx, id, reservation.Version, model.StatusCancelled, ""); err != nil {
			return s.mapWriteError(err, "Failed to cancel reservation")
		}
		if refund > 0 {
			entry := &model.BillingEntry{
				ReservationID: reservation.ID,
				Kind:          model.EntryRefund,
				AmountCents:   refund,
				PaymentRef:    reservation.PaymentRef,
				Date:          now,
				Snapshot: model.RateSnapshot{
					Profile:   profile,
					StartTime: reservation.StartTime,
					EndTime:   reservation.EndTime,
				},
			}
			if err := s.entries.Create(sessCtx, entry); err != nil {
				return apperrors.Internal("Failed to record refund", err)
			}
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to cancel reservation", "id", id, "error", err)
		return nil, err
	}

	oldStatus := status
	reservation.Status = model.StatusCancelled
	reservation.Version++

	s.publisher.PublishStatusChange(ctx, notifications.EventReservationCancelled, notifications.StatusChangeEvent{
		ReservationID: reservation.ID,
		UserID:        reservation.UserID,
		LotID:         reservation.LotID,
		OldStatus:     oldStatus,
		NewStatus:     model.StatusCancelled,
		AmountCents:   refund,
		OccurredAt:    now,
	})

	s.cfg.Log.Info("Reservation cancelled", "id", id, "refund_cents", refund)
	return reservation, nil
}

// --- Helpers ---

func (s *reservationService) findReservation(ctx context.Context, id string) (*model.Reservation, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Reservation ID cannot be empty")
	}

	reservation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, reserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Reservation", id)
		}
		if errors.Is(err, reserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid reservation ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve reservation", err)
	}

	return reservation, nil
}

func (s *reservationService) mapWriteError(err error, message string) error {
	if errors.Is(err, reserrors.ErrVersionConflict) {
		return apperrors.Conflict("Reservation was modified by another request. Please retry with fresh state.")
	}
	if errors.Is(err, reserrors.ErrNotFound) {
		return apperrors.NotFound("Reservation")
	}
	return apperrors.Internal(message, err)
}

func netPaidCents(entries []*model.BillingEntry) int64 {
	var net int64
	for _, e := range entries {
		switch e.Kind {
		case model.EntryCharge:
			net += e.AmountCents
		case model.EntryRefund:
			net -= e.AmountCents
		}
	}
	if net < 0 {
		return 0
	}
	return net
}

// acquireSlotLock serializes concurrent booking attempts on the same slot.
func (s *reservationService) acquireSlotLock(ctx context.Context, lotID, userID string, startTime time.Time) (string, error) {
	lockID := fmt.Sprintf("reservation_lock_%s_%s_%d", lotID, userID, startTime.Unix())
	return s.acquireLock(ctx, lockID, "This time slot is currently being reserved by another request. Please try again.")
}

// acquireReservationLock serializes state-changing operations per reservation.
func (s *reservationService) acquireReservationLock(ctx context.Context, reservationID string) (string, error) {
	lockID := "reservation_lock_" + reservationID
	return s.acquireLock(ctx, lockID, "Another operation on this reservation is in progress. Please try again.")
}

func (s *reservationService) acquireLock(ctx context.Context, lockID, conflictMsg string) (string, error) {
	lock := &model.ReservationLock{
		ID:        lockID,
		ExpiresAt: time.Now().Add(s.cfg.LockTTL),
	}

	_, err := s.lockRepo.Create(ctx, lock)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", apperrors.Conflict(conflictMsg)
		}
		return "", apperrors.Internal("Failed to acquire reservation lock", err)
	}

	return lockID, nil
}

func (s *reservationService) releaseLock(ctx context.Context, lockID string) {
	if err := s.lockRepo.Delete(ctx, lockID); err != nil {
		s.cfg.Log.Warn("Failed to release reservation lock", "lock_id", lockID, "error", err)
	}
}
