package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"campuspark/internal/directory/repository"
	"campuspark/internal/directory/validator"
	reserrors "campuspark/internal/reservations/errors"
	"campuspark/pkg/config"
	apperrors "campuspark/pkg/errors"
	"campuspark/pkg/model"
	"campuspark/pkg/sanitizer"
)

// DirectoryService owns the lot and permit directories the booking flow
// reads from: rate profiles per lot and active-permit checks per user.
type DirectoryService interface {
	CreateLot(ctx context.Context, lot *model.Lot) error
	GetLot(ctx context.Context, id string) (*model.Lot, error)
	ListLots(ctx context.Context, limit int, offset int64) ([]*model.Lot, int64, error)
	GetRateProfile(ctx context.Context, lotID string) (model.RateProfile, error)
	CreatePermit(ctx context.Context, permit *model.Permit) error
	GetPermitsByUser(ctx context.Context, userID string) ([]*model.Permit, error)
	HasActivePermit(ctx context.Context, userID string, at time.Time) (bool, error)
}

type directoryService struct {
	lots      repository.LotRepository
	permits   repository.PermitRepository
	validator *validator.DirectoryValidator
	cfg       *config.Config
}

func NewDirectoryService(
	lots repository.LotRepository,
	permits repository.PermitRepository,
	validator *validator.DirectoryValidator,
	cfg *config.Config,
) DirectoryService {
	return &directoryService{
		lots:      lots,
		permits:   permits,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *directoryService) CreateLot(ctx context.Context, lot *model.Lot) error {
	lot.Name = sanitizer.NormalizeLabel(lot.Name)

	if err := s.validator.ValidateLot(lot); err != nil {
		s.cfg.Log.Warn("Lot validation failed", "error", err)
		return apperrors.Validation("Lot validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.lots.Create(ctx, lot); err != nil {
		s.cfg.Log.Error("Failed to create lot", "error", err)
		return apperrors.Internal("Failed to create lot", err)
	}

	s.cfg.Log.Info("Lot created successfully", "id", lot.ID, "name", lot.Name, "rate_model", lot.RateModel)
	return nil
}

func (s *directoryService) GetLot(ctx context.Context, id string) (*model.Lot, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Lot ID cannot be empty")
	}

	lot, err := s.lots.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, reserrors.ErrLotNotFound) {
			return nil, apperrors.NotFoundWithID("Lot", id)
		}
		if errors.Is(err, reserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid lot ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve lot", err)
	}

	return lot, nil
}

func (s *directoryService) ListLots(ctx context.Context, limit int, offset int64) ([]*model.Lot, int64, error) {
	var count int64
	var lots []*model.Lot
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.lots.Count(ctx)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count lots", "error", errCount)
			errCount = apperrors.Internal("Failed to count lots", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		lots, errFind = s.lots.FindAll(ctx, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list lots", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve lots", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return lots, count, nil
}

// GetRateProfile resolves the lot's normalized rate facts. An unrecognized
// rate model falls back to hourly with a logged warning: a bad config row
// must not block a booking.
func (s *directoryService) GetRateProfile(ctx context.Context, lotID string) (model.RateProfile, error) {
	lot, err := s.GetLot(ctx, lotID)
	if err != nil {
		return model.RateProfile{}, err
	}

	profile, recognized := lot.RateProfile()
	if !recognized {
		s.cfg.Log.Warn("Lot has unrecognized rate model, treating as hourly",
			"lot_id", lot.ID,
			"rate_model", lot.RateModel,
		)
	}
	return profile, nil
}

func (s *directoryService) CreatePermit(ctx context.Context, permit *model.Permit) error {
	if err := s.validator.ValidatePermit(permit); err != nil {
		s.cfg.Log.Warn("Permit validation failed", "error", err)
		return apperrors.Validation("Permit validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.permits.Create(ctx, permit); err != nil {
		s.cfg.Log.Error("Failed to create permit", "error", err)
		return apperrors.Internal("Failed to create permit", err)
	}

	s.cfg.Log.Info("Permit created successfully", "id", permit.ID, "user_id", permit.UserID)
	return nil
}

func (s *directoryService) GetPermitsByUser(ctx context.Context, userID string) ([]*model.Permit, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("User ID cannot be empty")
	}

	permits, err := s.permits.FindByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("Failed to retrieve permits", err)
	}

	return permits, nil
}

func (s *directoryService) HasActivePermit(ctx context.Context, userID string, at time.Time) (bool, error) {
	has, err := s.permits.HasActivePermit(ctx, userID, at)
	if err != nil {
		return false, apperrors.Internal("Failed to check permit status", err)
	}
	return has, nil
}
