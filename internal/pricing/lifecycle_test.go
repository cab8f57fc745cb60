package pricing

import (
	"testing"
	"time"

	"campuspark/pkg/model"
)

func TestDeriveStatus(t *testing.T) {
	start := tuesday(9, 0)
	end := tuesday(12, 0)

	tests := []struct {
		name   string
		stored model.ReservationStatus
		now    time.Time
		want   model.ReservationStatus
	}{
		{"paid before start", model.StatusUpcoming, start.Add(-time.Hour), model.StatusUpcoming},
		{"paid during interval", model.StatusUpcoming, start.Add(time.Hour), model.StatusActive},
		{"paid at start boundary", model.StatusUpcoming, start, model.StatusActive},
		{"paid after end", model.StatusUpcoming, end, model.StatusCompleted},
		{"stale stored active after end", model.StatusActive, end.Add(time.Hour), model.StatusCompleted},
		{"pending stays pending during interval", model.StatusPending, start.Add(time.Hour), model.StatusPending},
		{"cancelled is sticky before start", model.StatusCancelled, start.Add(-time.Hour), model.StatusCancelled},
		{"cancelled is sticky after end", model.StatusCancelled, end.Add(time.Hour), model.StatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &model.Reservation{StartTime: start, EndTime: end, Status: tt.stored}
			if got := DeriveStatus(r, tt.now); got != tt.want {
				t.Errorf("DeriveStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from model.ReservationStatus
		to   model.ReservationStatus
		want bool
	}{
		{model.StatusPending, model.StatusUpcoming, true},
		{model.StatusPending, model.StatusCancelled, true},
		{model.StatusUpcoming, model.StatusCancelled, true},
		{model.StatusActive, model.StatusCancelled, true},
		{model.StatusCompleted, model.StatusCancelled, false},
		{model.StatusCancelled, model.StatusCancelled, false},
		{model.StatusUpcoming, model.StatusPending, false},
		{model.StatusCancelled, model.StatusUpcoming, false},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestOperationGuards(t *testing.T) {
	tests := []struct {
		status     model.ReservationStatus
		canExtend  bool
		canCancel  bool
		canConfirm bool
	}{
		{model.StatusPending, false, true, true},
		{model.StatusUpcoming, true, true, false},
		{model.StatusActive, true, true, false},
		{model.StatusCompleted, false, false, false},
		{model.StatusCancelled, false, false, false},
	}

	for _, tt := range tests {
		if got := CanExtend(tt.status); got != tt.canExtend {
			t.Errorf("CanExtend(%q) = %v, want %v", tt.status, got, tt.canExtend)
		}
		if got := CanCancel(tt.status); got != tt.canCancel {
			t.Errorf("CanCancel(%q) = %v, want %v", tt.status, got, tt.canCancel)
		}
		if got := CanConfirm(tt.status); got != tt.canConfirm {
			t.Errorf("CanConfirm(%q) = %v, want %v", tt.status, got, tt.canConfirm)
		}
	}
}
