package dto

import "github.com/aliskhannn/reservation-relay/internal/model"

// Filter carries reservation filter criteria on the wire.
type Filter struct {
	Status      string `json:"status"`
	PropertyID  string `json:"propertyId"`
	GuestID     string `json:"guestId"`
	CheckInFrom string `json:"checkInFrom"`
	CheckInTo   string `json:"checkInTo"`
	Search      string `json:"search"`
	Limit       int    `json:"limit"`
	Offset      int    `json:"offset"`
}

// ToModel converts the wire filter into the domain filter.
func (f Filter) ToModel() model.ReservationFilter {
	return model.ReservationFilter{
		Status:      f.Status,
		PropertyID:  f.PropertyID,
		GuestID:     f.GuestID,
		CheckInFrom: f.CheckInFrom,
		CheckInTo:   f.CheckInTo,
		Search:      f.Search,
		Limit:       f.Limit,
		Offset:      f.Offset,
	}
}

// BroadcastRequest asks to message every guest matching the filter.
type BroadcastRequest struct {
	Message string `json:"message" validate:"required"`
	Filters Filter `json:"filters"`
}
