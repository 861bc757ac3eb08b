package model

import "time"

// Reservation statuses as they arrive from the property-management provider.
const (
	StatusConfirmed = "confirmed"
	StatusModified  = "modified"
	StatusCancelled = "cancelled"
)

// Reservation represents the canonical reservation record, independent of
// the shape the provider delivered it in.
type Reservation struct {
	ReservationID  string     `json:"reservation_id"`  // stable identifier across re-deliveries
	PropertyID     string     `json:"property_id"`     // property the reservation belongs to
	GuestID        string     `json:"guest_id"`        // guest identifier used for messaging
	Status         string     `json:"status"`          // one of "confirmed", "modified", "cancelled"
	CheckIn        string     `json:"check_in"`        // ISO calendar date
	CheckOut       string     `json:"check_out"`       // ISO calendar date
	NumGuests      int        `json:"num_guests"`      // party size
	TotalAmount    float64    `json:"total_amount"`    // reservation total
	Currency       string     `json:"currency"`        // currency code
	GuestFirstName *string    `json:"guest_first_name"`
	GuestLastName  *string    `json:"guest_last_name"`
	GuestEmail     *string    `json:"guest_email"`
	GuestPhone     *string    `json:"guest_phone"`
	WebhookID      *string    `json:"webhook_id"`      // provenance of the delivering webhook
	EventTimestamp *time.Time `json:"event_timestamp"` // when the change occurred at the source
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ReservationFilter narrows reservation reads. Zero values mean "not set".
type ReservationFilter struct {
	Status      string
	PropertyID  string
	GuestID     string
	CheckInFrom string
	CheckInTo   string
	Search      string
	Limit       int
	Offset      int
}
