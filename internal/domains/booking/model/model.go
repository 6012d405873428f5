package model

import (
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldClientName      = "client_name"
	FieldClientEmail     = "client_email"
	FieldClientPhone     = "client_phone"
	FieldEventType       = "event_type"
	FieldEventDate       = "event_date"
	FieldGuestCount      = "guest_count"
	FieldVenueLocation   = "venue_location"
	FieldBudgetRange     = "budget_range"
	FieldMessage         = "message"
	FieldStatus          = "status"
	FieldInternalNotes   = "internal_notes"
	FieldResponseMessage = "response_message"
	FieldRespondedAt     = "responded_at"
	FieldCreatedAt       = "created_at"
	FieldUpdatedAt       = "updated_at"
)

// Booking statuses. The set is validated but transitions are not: any status
// may be patched onto any booking, the ordering is a staff convention.
const (
	StatusNew          = "new"
	StatusInReview     = "in_review"
	StatusProposalSent = "proposal_sent"
	StatusConfirmed    = "confirmed"
	StatusCompleted    = "completed"
	StatusDeclined     = "declined"
)

var Statuses = []string{
	StatusNew,
	StatusInReview,
	StatusProposalSent,
	StatusConfirmed,
	StatusCompleted,
	StatusDeclined,
}

// ValidStatus reports whether the given value is one of the known statuses.
func ValidStatus(status string) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}

	return false
}

// Booking is one inquiry row. Optional contact fields are nil when the
// client left them blank.
type Booking struct {
	ID              int64      `db:"id"`
	ClientName      string     `db:"client_name"`
	ClientEmail     string     `db:"client_email"`
	ClientPhone     *string    `db:"client_phone"`
	EventType       *string    `db:"event_type"`
	EventDate       *string    `db:"event_date"`
	GuestCount      *int64     `db:"guest_count"`
	VenueLocation   *string    `db:"venue_location"`
	BudgetRange     *string    `db:"budget_range"`
	Message         *string    `db:"message"`
	Status          string     `db:"status"`
	InternalNotes   *string    `db:"internal_notes"`
	ResponseMessage *string    `db:"response_message"`
	RespondedAt     *time.Time `db:"responded_at"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}
