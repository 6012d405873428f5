package dto

import (
	"mountmix/internal/domains/booking/model"
	"mountmix/shared"
	"strings"
	"time"
)

// CreateBookingRequest is the public submission payload. Optional fields are
// pointers so that absent, null and blank input all normalize to nil.
type CreateBookingRequest struct {
	ClientName    string  `json:"clientName"    validate:"required,min=2,max=120"`
	ClientEmail   string  `json:"clientEmail"   validate:"required,email"`
	ClientPhone   *string `json:"clientPhone"   validate:"omitnil,max=32"`
	EventType     *string `json:"eventType"     validate:"omitnil,max=120"`
	EventDate     *string `json:"eventDate"     validate:"omitnil,max=40"`
	GuestCount    *int64  `json:"guestCount"    validate:"omitnil,min=1,max=5000"`
	VenueLocation *string `json:"venueLocation" validate:"omitnil,max=160"`
	BudgetRange   *string `json:"budgetRange"   validate:"omitnil,max=100"`
	Message       *string `json:"message"       validate:"omitnil,max=2000"`
}

// Normalize trims every string field, lower-cases the client email (only the
// email is case-normalized) and maps blank optional input to nil.
func (c *CreateBookingRequest) Normalize() {
	c.ClientName = strings.TrimSpace(c.ClientName)
	c.ClientEmail = strings.ToLower(strings.TrimSpace(c.ClientEmail))
	c.ClientPhone = shared.NormalizeOptional(c.ClientPhone)
	c.EventType = shared.NormalizeOptional(c.EventType)
	c.EventDate = shared.NormalizeOptional(c.EventDate)
	c.VenueLocation = shared.NormalizeOptional(c.VenueLocation)
	c.BudgetRange = shared.NormalizeOptional(c.BudgetRange)
	c.Message = shared.NormalizeOptional(c.Message)
}

func (c *CreateBookingRequest) ToModel(now time.Time) model.Booking {
	return model.Booking{
		ClientName:    c.ClientName,
		ClientEmail:   c.ClientEmail,
		ClientPhone:   c.ClientPhone,
		EventType:     c.EventType,
		EventDate:     c.EventDate,
		GuestCount:    c.GuestCount,
		VenueLocation: c.VenueLocation,
		BudgetRange:   c.BudgetRange,
		Message:       c.Message,
		Status:        model.StatusNew,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// UpdateBookingRequest is the admin patch payload. A nil field was absent
// from the request; a present-but-blank notes/response field clears the
// stored value.
type UpdateBookingRequest struct {
	Status          *string `json:"status"          validate:"omitnil,oneof=new in_review proposal_sent confirmed completed declined"`
	InternalNotes   *string `json:"internalNotes"   validate:"omitnil,max=2000"`
	ResponseMessage *string `json:"responseMessage" validate:"omitnil,max=2000"`
	MarkResponded   *bool   `json:"markResponded"`
}

// Normalize trims the free-text fields without collapsing them to nil, so
// that blank input still clears the stored value.
func (u *UpdateBookingRequest) Normalize() {
	if u.InternalNotes != nil {
		trimmed := strings.TrimSpace(*u.InternalNotes)
		u.InternalNotes = &trimmed
	}

	if u.ResponseMessage != nil {
		trimmed := strings.TrimSpace(*u.ResponseMessage)
		u.ResponseMessage = &trimmed
	}
}

// Empty reports whether the patch carries no recognized field.
func (u *UpdateBookingRequest) Empty() bool {
	return u.Status == nil && u.InternalNotes == nil && u.ResponseMessage == nil && u.MarkResponded == nil
}

type BookingResponse struct {
	ID              int64      `json:"id"`
	ClientName      string     `json:"clientName"`
	ClientEmail     string     `json:"clientEmail"`
	ClientPhone     *string    `json:"clientPhone"`
	EventType       *string    `json:"eventType"`
	EventDate       *string    `json:"eventDate"`
	GuestCount      *int64     `json:"guestCount"`
	VenueLocation   *string    `json:"venueLocation"`
	BudgetRange     *string    `json:"budgetRange"`
	Message         *string    `json:"message"`
	Status          string     `json:"status"`
	InternalNotes   *string    `json:"internalNotes"`
	ResponseMessage *string    `json:"responseMessage"`
	RespondedAt     *time.Time `json:"respondedAt"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.ClientName = mod.ClientName
	r.ClientEmail = mod.ClientEmail
	r.ClientPhone = mod.ClientPhone
	r.EventType = mod.EventType
	r.EventDate = mod.EventDate
	r.GuestCount = mod.GuestCount
	r.VenueLocation = mod.VenueLocation
	r.BudgetRange = mod.BudgetRange
	r.Message = mod.Message
	r.Status = mod.Status
	r.InternalNotes = mod.InternalNotes
	r.ResponseMessage = mod.ResponseMessage
	r.RespondedAt = mod.RespondedAt
	r.CreatedAt = mod.CreatedAt
	r.UpdatedAt = mod.UpdatedAt
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	r.TotalData = len(models)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
