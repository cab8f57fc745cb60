package pricing

import (
	"testing"
	"time"

	apperrors "campuspark/pkg/errors"
	"campuspark/pkg/model"
)

// 2026-03-03 is a Tuesday, 2026-03-07 a Saturday.
func tuesday(hour, min int) time.Time {
	return time.Date(2026, 3, 3, hour, min, 0, 0, time.UTC)
}

func saturday(hour, min int) time.Time {
	return time.Date(2026, 3, 7, hour, min, 0, 0, time.UTC)
}

func meteredProfile(rateCents int64) model.RateProfile {
	return model.RateProfile{
		RateModel:       model.RateModelHourly,
		HourlyRateCents: rateCents,
		IsMetered:       true,
	}
}

func TestComputeBillableAmount(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name       string
		start      time.Time
		end        time.Time
		profile    model.RateProfile
		wantAmount int64
		wantFree   bool
		wantReason string
	}{
		{
			name:       "clipped to window start",
			start:      tuesday(5, 0),
			end:        tuesday(9, 0),
			profile:    meteredProfile(250),
			wantAmount: 500, // only 07:00-09:00 bills
		},
		{
			name:       "clipped to window end",
			start:      tuesday(17, 0),
			end:        tuesday(21, 0),
			profile:    meteredProfile(250),
			wantAmount: 500, // only 17:00-19:00 bills
		},
		{
			name:       "fully inside window",
			start:      tuesday(9, 0),
			end:        tuesday(11, 0),
			profile:    meteredProfile(300),
			wantAmount: 600,
		},
		{
			name:       "fractional hours",
			start:      tuesday(9, 0),
			end:        tuesday(10, 30),
			profile:    meteredProfile(200),
			wantAmount: 300,
		},
		{
			name:       "entirely after window",
			start:      tuesday(20, 0),
			end:        tuesday(22, 0),
			profile:    meteredProfile(250),
			wantFree:   true,
			wantReason: ReasonOutsideWindow,
		},
		{
			name:       "entirely before window",
			start:      tuesday(4, 0),
			end:        tuesday(6, 0),
			profile:    meteredProfile(250),
			wantFree:   true,
			wantReason: ReasonOutsideWindow,
		},
		{
			name:       "ends exactly at window start",
			start:      tuesday(5, 0),
			end:        tuesday(7, 0),
			profile:    meteredProfile(250),
			wantFree:   true,
			wantReason: ReasonOutsideWindow,
		},
		{
			name:       "starts exactly at window end",
			start:      tuesday(19, 0),
			end:        tuesday(21, 0),
			profile:    meteredProfile(250),
			wantFree:   true,
			wantReason: ReasonOutsideWindow,
		},
		{
			name:       "weekend",
			start:      saturday(9, 0),
			end:        saturday(11, 0),
			profile:    meteredProfile(250),
			wantFree:   true,
			wantReason: ReasonWeekend,
		},
		{
			name:  "semester rate",
			start: tuesday(9, 0),
			end:   tuesday(11, 0),
			profile: model.RateProfile{
				RateModel:         model.RateModelSemester,
				SemesterRateCents: 15000,
			},
			wantFree:   true,
			wantReason: ReasonSemesterRate,
		},
		{
			name:       "midnight crossing honors start date window only",
			start:      tuesday(18, 0),
			end:        time.Date(2026, 3, 4, 8, 0, 0, 0, time.UTC),
			profile:    meteredProfile(100),
			wantAmount: 100, // 18:00-19:00 on the start date
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := ComputeBillableAmount(tt.start, tt.end, tt.profile, rules)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if quote.AmountCents != tt.wantAmount {
				t.Errorf("amount = %d, want %d", quote.AmountCents, tt.wantAmount)
			}
			if quote.IsFree != tt.wantFree {
				t.Errorf("isFree = %v, want %v", quote.IsFree, tt.wantFree)
			}
			if quote.FreeReason != tt.wantReason {
				t.Errorf("freeReason = %q, want %q", quote.FreeReason, tt.wantReason)
			}
		})
	}
}

func TestComputeBillableAmountNonPositiveDuration(t *testing.T) {
	rules := DefaultRules()

	for _, end := range []time.Time{tuesday(9, 0), tuesday(8, 0)} {
		_, err := ComputeBillableAmount(tuesday(9, 0), end, meteredProfile(250), rules)
		if err == nil {
			t.Fatal("expected error for non-positive duration")
		}
		appErr := apperrors.AsAppError(err)
		if appErr.Code != apperrors.CodeValidation {
			t.Errorf("code = %q, want %q", appErr.Code, apperrors.CodeValidation)
		}
	}
}

func TestComputeBillableAmountNeverExceedsFullDuration(t *testing.T) {
	rules := DefaultRules()
	profile := meteredProfile(275)

	for startHour := 0; startHour < 23; startHour++ {
		for hours := 1; startHour+hours <= 24; hours++ {
			start := tuesday(startHour, 0)
			end := start.Add(time.Duration(hours) * time.Hour)

			quote, err := ComputeBillableAmount(start, end, profile, rules)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			ceiling := int64(hours) * profile.HourlyRateCents
			if quote.AmountCents > ceiling {
				t.Errorf("start=%d dur=%dh: amount %d exceeds full-duration charge %d",
					startHour, hours, quote.AmountCents, ceiling)
			}
			if quote.AmountCents < 0 {
				t.Errorf("start=%d dur=%dh: negative amount %d", startHour, hours, quote.AmountCents)
			}
		}
	}
}

func TestComputeBillableAmountDeterministic(t *testing.T) {
	rules := DefaultRules()
	profile := meteredProfile(250)

	first, err := ComputeBillableAmount(tuesday(5, 0), tuesday(9, 0), profile, rules)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ComputeBillableAmount(tuesday(5, 0), tuesday(9, 0), profile, rules)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("repeated calls disagree: %+v vs %+v", first, second)
	}
}
