package validator

import (
	"strings"
	"testing"
	"time"

	"campuspark/pkg/logger"
	"campuspark/pkg/model"
)

const (
	testLotID  = "64a1f0c2e4b0a1b2c3d4e5f6"
	testUserID = "64a1f0c2e4b0a1b2c3d4e5f7"
)

func testValidator() *ReservationValidator {
	log := logger.New(logger.Config{
		Level:     "info",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
	return NewReservationValidator(log)
}

func futureTime(hours int) time.Time {
	return time.Now().Add(time.Duration(hours) * time.Hour).Truncate(time.Minute)
}

func TestValidateRequest(t *testing.T) {
	validator := testValidator()

	tests := []struct {
		name      string
		req       *model.ReservationRequest
		wantError bool
		errorMsg  string
	}{
		{
			name: "valid request",
			req: &model.ReservationRequest{
				LotID:        testLotID,
				UserID:       testUserID,
				VehiclePlate: "ABC1234",
				StartTime:    futureTime(24),
				EndTime:      futureTime(28),
			},
			wantError: false,
		},
		{
			name: "missing lot id",
			req: &model.ReservationRequest{
				UserID:       testUserID,
				VehiclePlate: "ABC1234",
				StartTime:    futureTime(24),
				EndTime:      futureTime(28),
			},
			wantError: true,
			errorMsg:  "LotID",
		},
		{
			name: "malformed lot id",
			req: &model.ReservationRequest{
				LotID:        "not-an-object-id",
				UserID:       testUserID,
				VehiclePlate: "ABC1234",
				StartTime:    futureTime(24),
				EndTime:      futureTime(28),
			},
			wantError: true,
			errorMsg:  "ObjectID",
		},
		{
			name: "missing user id",
			req: &model.ReservationRequest{
				LotID:        testLotID,
				VehiclePlate: "ABC1234",
				StartTime:    futureTime(24),
				EndTime:      futureTime(28),
			},
			wantError: true,
			errorMsg:  "UserID",
		},
		{
			name: "plate too short",
			req: &model.ReservationRequest{
				LotID:        testLotID,
				UserID:       testUserID,
				VehiclePlate: "A",
				StartTime:    futureTime(24),
				EndTime:      futureTime(28),
			},
			wantError: true,
			errorMsg:  "VehiclePlate",
		},
		{
			name: "plate too long",
			req: &model.ReservationRequest{
				LotID:        testLotID,
				UserID:       testUserID,
				VehiclePlate: strings.Repeat("A", 13),
				StartTime:    futureTime(24),
				EndTime:      futureTime(28),
			},
			wantError: true,
			errorMsg:  "VehiclePlate",
		},
		{
			name: "end before start",
			req: &model.ReservationRequest{
				LotID:        testLotID,
				UserID:       testUserID,
				VehiclePlate: "ABC1234",
				StartTime:    futureTime(28),
				EndTime:      futureTime(24),
			},
			wantError: true,
			errorMsg:  "EndTime",
		},
		{
			name: "end equals start",
			req: &model.ReservationRequest{
				LotID:        testLotID,
				UserID:       testUserID,
				VehiclePlate: "ABC1234",
				StartTime:    futureTime(24),
				EndTime:      futureTime(24),
			},
			wantError: true,
			errorMsg:  "EndTime",
		},
		{
			name: "start in the past",
			req: &model.ReservationRequest{
				LotID:        testLotID,
				UserID:       testUserID,
				VehiclePlate: "ABC1234",
				StartTime:    futureTime(-2),
				EndTime:      futureTime(2),
			},
			wantError: true,
			errorMsg:  "StartTime",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateRequest(tt.req)
			if (err != nil) != tt.wantError {
				t.Errorf("ValidateRequest() error = %v, wantError %v", err, tt.wantError)
			}
			if tt.wantError && err != nil && !strings.Contains(err.Error(), tt.errorMsg) {
				t.Errorf("Expected error to contain %q, got %q", tt.errorMsg, err.Error())
			}
		})
	}
}

func TestValidateExtension(t *testing.T) {
	validator := testValidator()

	tests := []struct {
		name      string
		req       *model.ExtensionRequest
		wantError bool
	}{
		{
			name:      "one hour",
			req:       &model.ExtensionRequest{AdditionalHours: 1},
			wantError: false,
		},
		{
			name:      "max hours",
			req:       &model.ExtensionRequest{AdditionalHours: 24},
			wantError: false,
		},
		{
			name:      "zero hours",
			req:       &model.ExtensionRequest{AdditionalHours: 0},
			wantError: true,
		},
		{
			name:      "negative hours",
			req:       &model.ExtensionRequest{AdditionalHours: -3},
			wantError: true,
		},
		{
			name:      "too many hours",
			req:       &model.ExtensionRequest{AdditionalHours: 25},
			wantError: true,
		},
		{
			name: "payment token too long",
			req: &model.ExtensionRequest{
				AdditionalHours: 2,
				PaymentToken:    strings.Repeat("x", 129),
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateExtension(tt.req)
			if (err != nil) != tt.wantError {
				t.Errorf("ValidateExtension() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}
