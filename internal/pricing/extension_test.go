package pricing

import (
	"testing"
	"time"

	apperrors "campuspark/pkg/errors"
	"campuspark/pkg/model"
)

func TestComputeExtension(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name       string
		endTime    time.Time
		profile    model.RateProfile
		hours      int
		now        time.Time
		hasPermit  bool
		wantFee    int64
		wantFree   bool
		wantReason string
	}{
		{
			name:       "semester lot extends free",
			endTime:    tuesday(14, 0),
			profile:    model.RateProfile{RateModel: model.RateModelSemester},
			hours:      2,
			now:        tuesday(10, 0),
			wantFree:   true,
			wantReason: ReasonSemesterRate,
		},
		{
			name:       "permit holder in the evening",
			endTime:    tuesday(18, 0),
			profile:    meteredProfile(250),
			hours:      1,
			now:        tuesday(17, 0),
			hasPermit:  true,
			wantFree:   true,
			wantReason: ReasonPermitEvening,
		},
		{
			name:       "permit holder evening beats metered fee on any lot",
			endTime:    tuesday(18, 0),
			profile:    model.RateProfile{RateModel: model.RateModelHourly, HourlyRateCents: 250},
			hours:      1,
			now:        tuesday(16, 0),
			hasPermit:  true,
			wantFree:   true,
			wantReason: ReasonPermitEvening,
		},
		{
			name:       "permit holder before evening still pays",
			endTime:    tuesday(13, 0),
			profile:    meteredProfile(250),
			hours:      1,
			now:        tuesday(10, 0),
			hasPermit:  true,
			wantFee:    500, // 250 surcharge + 250 * 1h
			wantReason: ReasonMeteredExtension,
		},
		{
			name:       "metered extension ending after seven is free",
			endTime:    tuesday(18, 0),
			profile:    meteredProfile(250),
			hours:      2,
			now:        tuesday(10, 0),
			wantFree:   true,
			wantReason: ReasonFreeEvening,
		},
		{
			name:       "metered extension inside the day pays surcharge plus rate",
			endTime:    tuesday(14, 0),
			profile:    meteredProfile(250),
			hours:      1,
			now:        tuesday(10, 0),
			wantFee:    500,
			wantReason: ReasonMeteredExtension,
		},
		{
			name:       "metered multi hour",
			endTime:    tuesday(12, 0),
			profile:    meteredProfile(300),
			hours:      3,
			now:        tuesday(9, 0),
			wantFee:    250 + 900,
			wantReason: ReasonMeteredExtension,
		},
		{
			name:       "non-metered hourly lot pays rate only",
			endTime:    tuesday(14, 0),
			profile:    model.RateProfile{RateModel: model.RateModelHourly, HourlyRateCents: 200},
			hours:      2,
			now:        tuesday(10, 0),
			wantFee:    400,
			wantReason: ReasonStandardExtension,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := ComputeExtension(tt.endTime, tt.profile, tt.hours, tt.now, tt.hasPermit, rules)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if quote.FeeCents != tt.wantFee {
				t.Errorf("fee = %d, want %d", quote.FeeCents, tt.wantFee)
			}
			if quote.IsFree != tt.wantFree {
				t.Errorf("isFree = %v, want %v", quote.IsFree, tt.wantFree)
			}
			if quote.Reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", quote.Reason, tt.wantReason)
			}

			wantEnd := tt.endTime.Add(time.Duration(tt.hours) * time.Hour)
			if !quote.NewEndTime.Equal(wantEnd) {
				t.Errorf("newEndTime = %v, want %v", quote.NewEndTime, wantEnd)
			}
		})
	}
}

func TestComputeExtensionHoursOutOfRange(t *testing.T) {
	rules := DefaultRules()

	for _, hours := range []int{0, -1, 25} {
		_, err := ComputeExtension(tuesday(14, 0), meteredProfile(250), hours, tuesday(10, 0), false, rules)
		if err == nil {
			t.Fatalf("expected error for %d hours", hours)
		}
		appErr := apperrors.AsAppError(err)
		if appErr.Code != apperrors.CodeValidation {
			t.Errorf("code = %q, want %q", appErr.Code, apperrors.CodeValidation)
		}
	}
}
