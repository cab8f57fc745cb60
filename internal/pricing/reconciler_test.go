package pricing

import (
	"testing"

	"campuspark/pkg/model"
)

func TestReconcileDisplayAmount(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name  string
		entry model.BillingEntry
		want  int64
	}{
		{
			name: "metered charge recomputed from snapshot",
			entry: model.BillingEntry{
				Kind:        model.EntryCharge,
				AmountCents: 500,
				Snapshot: model.RateSnapshot{
					Profile:   meteredProfile(250),
					StartTime: tuesday(5, 0),
					EndTime:   tuesday(9, 0),
				},
			},
			want: 500,
		},
		{
			name: "stale stored amount from an older code path is corrected",
			entry: model.BillingEntry{
				Kind:        model.EntryCharge,
				AmountCents: 1000, // charged for all 4 hours, 2 were outside the window
				Snapshot: model.RateSnapshot{
					Profile:   meteredProfile(250),
					StartTime: tuesday(5, 0),
					EndTime:   tuesday(9, 0),
				},
			},
			want: 500,
		},
		{
			name: "metered charge entirely outside the window displays zero",
			entry: model.BillingEntry{
				Kind:        model.EntryCharge,
				AmountCents: 500,
				Snapshot: model.RateSnapshot{
					Profile:   meteredProfile(250),
					StartTime: tuesday(20, 0),
					EndTime:   tuesday(22, 0),
				},
			},
			want: 0,
		},
		{
			name: "extension charge keeps its recorded surcharge",
			entry: model.BillingEntry{
				Kind:        model.EntryCharge,
				AmountCents: 500,
				Snapshot: model.RateSnapshot{
					Profile:        meteredProfile(250),
					StartTime:      tuesday(13, 0),
					EndTime:        tuesday(14, 0),
					SurchargeCents: 250,
				},
			},
			want: 500,
		},
		{
			name: "refund against a weekend reservation displays zero",
			entry: model.BillingEntry{
				Kind:        model.EntryRefund,
				AmountCents: 500,
				Snapshot: model.RateSnapshot{
					Profile:   meteredProfile(250),
					StartTime: saturday(9, 0),
					EndTime:   saturday(11, 0),
				},
			},
			want: 0,
		},
		{
			name: "refund capped at the recomputed charge basis",
			entry: model.BillingEntry{
				Kind:        model.EntryRefund,
				AmountCents: 1000,
				Snapshot: model.RateSnapshot{
					Profile:   meteredProfile(250),
					StartTime: tuesday(5, 0),
					EndTime:   tuesday(9, 0),
				},
			},
			want: 500,
		},
		{
			name: "refund within the basis displays as stored",
			entry: model.BillingEntry{
				Kind:        model.EntryRefund,
				AmountCents: 300,
				Snapshot: model.RateSnapshot{
					Profile:   meteredProfile(250),
					StartTime: tuesday(5, 0),
					EndTime:   tuesday(9, 0),
				},
			},
			want: 300,
		},
		{
			name: "non-metered hourly charge is trusted as stored",
			entry: model.BillingEntry{
				Kind:        model.EntryCharge,
				AmountCents: 750,
				Snapshot: model.RateSnapshot{
					Profile:   model.RateProfile{RateModel: model.RateModelHourly, HourlyRateCents: 250},
					StartTime: tuesday(9, 0),
					EndTime:   tuesday(12, 0),
				},
			},
			want: 750,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReconcileDisplayAmount(tt.entry, rules)
			if got != tt.want {
				t.Errorf("display amount = %d, want %d", got, tt.want)
			}

			// Idempotent: a second reconciliation yields the same value.
			if again := ReconcileDisplayAmount(tt.entry, rules); again != got {
				t.Errorf("second reconciliation = %d, first = %d", again, got)
			}
		})
	}
}
