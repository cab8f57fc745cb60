package validator

import (
	"strings"
	"testing"
	"time"

	"campuspark/pkg/logger"
	"campuspark/pkg/model"
)

const testUserID = "64a1f0c2e4b0a1b2c3d4e5f7"

func testValidator() *DirectoryValidator {
	log := logger.New(logger.Config{
		Level:     "info",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
	return NewDirectoryValidator(log)
}

func TestValidateLot(t *testing.T) {
	validator := testValidator()

	tests := []struct {
		name      string
		lot       *model.Lot
		wantError bool
		errorMsg  string
	}{
		{
			name: "valid hourly lot",
			lot: &model.Lot{
				Name:            "North Garage",
				RateModel:       model.RateModelHourly,
				HourlyRateCents: 250,
			},
			wantError: false,
		},
		{
			name: "valid semester lot",
			lot: &model.Lot{
				Name:              "Faculty Lot B",
				RateModel:         model.RateModelSemester,
				SemesterRateCents: 12000,
			},
			wantError: false,
		},
		{
			name: "missing name",
			lot: &model.Lot{
				RateModel:       model.RateModelHourly,
				HourlyRateCents: 250,
			},
			wantError: true,
			errorMsg:  "Name",
		},
		{
			name: "name too short",
			lot: &model.Lot{
				Name:            "N",
				RateModel:       model.RateModelHourly,
				HourlyRateCents: 250,
			},
			wantError: true,
			errorMsg:  "Name",
		},
		{
			name: "name too long",
			lot: &model.Lot{
				Name:            strings.Repeat("N", 101),
				RateModel:       model.RateModelHourly,
				HourlyRateCents: 250,
			},
			wantError: true,
			errorMsg:  "Name",
		},
		{
			name: "unknown rate model",
			lot: &model.Lot{
				Name:            "North Garage",
				RateModel:       "daily",
				HourlyRateCents: 250,
			},
			wantError: true,
			errorMsg:  "RateModel",
		},
		{
			name: "hourly lot without a rate",
			lot: &model.Lot{
				Name:      "North Garage",
				RateModel: model.RateModelHourly,
			},
			wantError: true,
			errorMsg:  "HourlyRateCents",
		},
		{
			name: "semester lot may omit hourly rate",
			lot: &model.Lot{
				Name:              "Faculty Lot B",
				RateModel:         model.RateModelSemester,
				SemesterRateCents: 12000,
				HourlyRateCents:   0,
			},
			wantError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateLot(tt.lot)
			if (err != nil) != tt.wantError {
				t.Errorf("ValidateLot() error = %v, wantError %v", err, tt.wantError)
			}
			if tt.wantError && err != nil && !strings.Contains(err.Error(), tt.errorMsg) {
				t.Errorf("Expected error to contain %q, got %q", tt.errorMsg, err.Error())
			}
		})
	}
}

func TestValidatePermit(t *testing.T) {
	validator := testValidator()
	now := time.Now().Truncate(time.Minute)

	tests := []struct {
		name      string
		permit    *model.Permit
		wantError bool
	}{
		{
			name: "valid active permit",
			permit: &model.Permit{
				UserID:     testUserID,
				ValidFrom:  now,
				ValidUntil: now.AddDate(0, 4, 0),
				Status:     model.PermitActive,
			},
			wantError: false,
		},
		{
			name: "missing user id",
			permit: &model.Permit{
				ValidFrom:  now,
				ValidUntil: now.AddDate(0, 4, 0),
				Status:     model.PermitActive,
			},
			wantError: true,
		},
		{
			name: "valid_until before valid_from",
			permit: &model.Permit{
				UserID:     testUserID,
				ValidFrom:  now,
				ValidUntil: now.AddDate(0, -1, 0),
				Status:     model.PermitActive,
			},
			wantError: true,
		},
		{
			name: "unknown status",
			permit: &model.Permit{
				UserID:     testUserID,
				ValidFrom:  now,
				ValidUntil: now.AddDate(0, 4, 0),
				Status:     "revoked",
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidatePermit(tt.permit)
			if (err != nil) != tt.wantError {
				t.Errorf("ValidatePermit() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}
