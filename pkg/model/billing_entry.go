package model

import "time"

const (
	EntryCharge = "charge"
	EntryRefund = "refund"
)

// RateSnapshot freezes the lot rate facts and the billed interval at
// transaction time. Every later display of the entry recomputes from this
// snapshot, so a lot rate change never rewrites history.
type RateSnapshot struct {
	Profile        RateProfile `json:"profile" bson:"profile"`
	StartTime      time.Time   `json:"start_time" bson:"start_time"`
	EndTime        time.Time   `json:"end_time" bson:"end_time"`
	SurchargeCents int64       `json:"surcharge_cents,omitempty" bson:"surcharge_cents,omitempty"`
}

// BillingEntry is one immutable ledger row per money-moving event: initial
// charge, extension surcharge or cancellation refund. AmountCents is always
// positive; Kind says which direction the money moved.
type BillingEntry struct {
	ID            string       `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	ReservationID string       `json:"reservation_id" bson:"reservation_id" validate:"required,mongodb"`
	Kind          string       `json:"kind" bson:"kind" validate:"required,oneof=charge refund"`
	AmountCents   int64        `json:"amount_cents" bson:"amount_cents" validate:"min=0"`
	Snapshot      RateSnapshot `json:"snapshot" bson:"snapshot"`
	PaymentRef    string       `json:"payment_ref,omitempty" bson:"payment_ref,omitempty"`
	Date          time.Time    `json:"date" bson:"date"`
}

// BillingEntryView is a billing entry plus its reconciled display amount.
type BillingEntryView struct {
	BillingEntry
	DisplayAmountCents int64 `json:"display_amount_cents"`
}
