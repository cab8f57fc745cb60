package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "campuspark/pkg/errors"
	"campuspark/pkg/logger"
	"campuspark/pkg/model"

	"github.com/julienschmidt/httprouter"
)

// Mock service for testing
type mockReservationService struct {
	createFunc    func(ctx context.Context, req *model.ReservationRequest) (*model.Reservation, error)
	getByUserFunc func(ctx context.Context, userID string, limit int, offset int64) ([]*model.Reservation, int64, error)
	cancelFunc    func(ctx context.Context, id string) (*model.Reservation, error)
}

func (m *mockReservationService) Create(ctx context.Context, req *model.ReservationRequest) (*model.Reservation, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &model.Reservation{}, nil
}

func (m *mockReservationService) GetByID(ctx context.Context, id string) (*model.Reservation, error) {
	return &model.Reservation{ID: id}, nil
}

func (m *mockReservationService) GetByUser(ctx context.Context, userID string, limit int, offset int64) ([]*model.Reservation, int64, error) {
	if m.getByUserFunc != nil {
		return m.getByUserFunc(ctx, userID, limit, offset)
	}
	return []*model.Reservation{}, 0, nil
}

func (m *mockReservationService) ConfirmPayment(ctx context.Context, id string, paymentToken string) (*model.Reservation, error) {
	return &model.Reservation{ID: id}, nil
}

func (m *mockReservationService) Extend(ctx context.Context, id string, req *model.ExtensionRequest) (*model.Reservation, error) {
	return &model.Reservation{ID: id}, nil
}

func (m *mockReservationService) Cancel(ctx context.Context, id string) (*model.Reservation, error) {
	if m.cancelFunc != nil {
		return m.cancelFunc(ctx, id)
	}
	return &model.Reservation{ID: id}, nil
}

type mockBillingService struct {
	getHistoryFunc func(ctx context.Context, reservationID string) ([]model.BillingEntryView, error)
}

func (m *mockBillingService) GetHistory(ctx context.Context, reservationID string) ([]model.BillingEntryView, error) {
	if m.getHistoryFunc != nil {
		return m.getHistoryFunc(ctx, reservationID)
	}
	return []model.BillingEntryView{}, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:     "info",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
}

func TestGetByUser_QueryParameters(t *testing.T) {
	var receivedLimit int
	var receivedOffset int64
	mockService := &mockReservationService{
		getByUserFunc: func(ctx context.Context, userID string, limit int, offset int64) ([]*model.Reservation, int64, error) {
			receivedLimit = limit
			receivedOffset = offset
			return []*model.Reservation{}, 0, nil
		},
	}

	handler := &ReservationHandler{
		service: mockService,
		billing: &mockBillingService{},
		log:     testLogger(),
	}

	tests := []struct {
		name           string
		queryString    string
		expectHTTPCode int
		expectLimit    int
		expectOffset   int64
	}{
		{
			name:           "missing user_id",
			queryString:    "?limit=10",
			expectHTTPCode: http.StatusBadRequest,
		},
		{
			name:           "invalid limit - alphabetic",
			queryString:    "?user_id=u1&limit=abc",
			expectHTTPCode: http.StatusBadRequest,
		},
		{
			name:           "invalid offset - alphabetic",
			queryString:    "?user_id=u1&limit=10&offset=xyz",
			expectHTTPCode: http.StatusBadRequest,
		},
		{
			name:           "valid parameters forwarded",
			queryString:    "?user_id=u1&limit=20&offset=10",
			expectHTTPCode: http.StatusOK,
			expectLimit:    20,
			expectOffset:   10,
		},
		{
			name:           "negative values normalized",
			queryString:    "?user_id=u1&limit=-10&offset=-5",
			expectHTTPCode: http.StatusOK,
			expectLimit:    10,
			expectOffset:   0,
		},
		{
			name:           "missing pagination uses defaults",
			queryString:    "?user_id=u1",
			expectHTTPCode: http.StatusOK,
			expectLimit:    10,
			expectOffset:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations"+tt.queryString, nil)
			w := httptest.NewRecorder()

			handler.GetByUser(w, req, httprouter.Params{})

			if w.Code != tt.expectHTTPCode {
				t.Errorf("expected status %d, got %d", tt.expectHTTPCode, w.Code)
			}

			if tt.expectHTTPCode == http.StatusOK {
				if receivedLimit != tt.expectLimit {
					t.Errorf("expected limit %d, got %d", tt.expectLimit, receivedLimit)
				}
				if receivedOffset != tt.expectOffset {
					t.Errorf("expected offset %d, got %d", tt.expectOffset, receivedOffset)
				}
			}
		})
	}
}

func TestGetByUser_ResponseShape(t *testing.T) {
	mockService := &mockReservationService{
		getByUserFunc: func(ctx context.Context, userID string, limit int, offset int64) ([]*model.Reservation, int64, error) {
			return []*model.Reservation{
				{ID: "1", Status: model.StatusUpcoming},
				{ID: "2", Status: model.StatusCompleted},
			}, 42, nil
		},
	}

	handler := &ReservationHandler{
		service: mockService,
		billing: &mockBillingService{},
		log:     testLogger(),
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations?user_id=u1&limit=20&offset=10", nil)
	w := httptest.NewRecorder()

	handler.GetByUser(w, req, httprouter.Params{})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var response struct {
		Data       []model.Reservation `json:"data"`
		TotalCount int64               `json:"total_count"`
		Limit      int                 `json:"limit"`
		Offset     int64               `json:"offset"`
	}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response.TotalCount != 42 {
		t.Errorf("expected total_count 42, got %d", response.TotalCount)
	}
	if len(response.Data) != 2 {
		t.Errorf("expected 2 items, got %d", len(response.Data))
	}
}

func TestCreate_InvalidBody(t *testing.T) {
	handler := &ReservationHandler{
		service: &mockReservationService{},
		billing: &mockBillingService{},
		log:     testLogger(),
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	handler.Create(w, req, httprouter.Params{})

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestCancel_ErrorMapping(t *testing.T) {
	tests := []struct {
		name           string
		serviceErr     error
		expectHTTPCode int
		expectCode     string
	}{
		{
			name:           "not found",
			serviceErr:     apperrors.NotFoundWithID("Reservation", "r1"),
			expectHTTPCode: http.StatusNotFound,
			expectCode:     apperrors.CodeNotFound,
		},
		{
			name:           "already cancelled",
			serviceErr:     apperrors.InvalidState("Reservation cannot be cancelled"),
			expectHTTPCode: http.StatusConflict,
			expectCode:     apperrors.CodeInvalidState,
		},
		{
			name:           "concurrent update",
			serviceErr:     apperrors.Conflict("Reservation was modified concurrently"),
			expectHTTPCode: http.StatusConflict,
			expectCode:     apperrors.CodeConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := &ReservationHandler{
				service: &mockReservationService{
					cancelFunc: func(ctx context.Context, id string) (*model.Reservation, error) {
						return nil, tt.serviceErr
					},
				},
				billing: &mockBillingService{},
				log:     testLogger(),
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations/id/r1/cancel", nil)
			w := httptest.NewRecorder()

			handler.Cancel(w, req, httprouter.Params{{Key: "id", Value: "r1"}})

			if w.Code != tt.expectHTTPCode {
				t.Errorf("expected status %d, got %d", tt.expectHTTPCode, w.Code)
			}

			var response struct {
				Code string `json:"code"`
			}
			if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if response.Code != tt.expectCode {
				t.Errorf("expected code %q, got %q", tt.expectCode, response.Code)
			}
		})
	}
}
