// Package normalize translates the provider's webhook payloads into
// canonical reservation records.
//
// The provider nests the reservation under several possible container keys
// and spells fields in both snake_case and camelCase. Every field is
// resolved through an ordered list of accessor paths, evaluated
// top-to-bottom; the first successful extraction wins.
package normalize

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/aliskhannn/reservation-relay/internal/model"
)

// ErrInvalidPayload is returned when a webhook payload cannot be resolved
// into a complete reservation record.
var ErrInvalidPayload = errors.New("invalid webhook payload: required reservation fields are missing")

// Scope names a node of the payload tree that accessor paths read from.
type Scope string

const (
	// ScopeReservation is the reservation object itself, wherever it was found.
	ScopeReservation Scope = "reservation"
	// ScopeData is the container node ("data" or "payload") the reservation
	// arrived under, if any.
	ScopeData Scope = "data"
	// ScopeRoot is the top-level payload object.
	ScopeRoot Scope = "root"
	// ScopeGuest is the guest contact object, wherever it was found.
	ScopeGuest Scope = "guest"
	// ScopeTotal is the nested {amount, currency} money object on the reservation.
	ScopeTotal Scope = "total"
)

// Path is a single candidate location for a field value.
type Path struct {
	Scope Scope
	Key   string
}

// Accessor path tables, one per field. Order matters: reservation-scoped
// locations are tried before container-scoped ones, container-scoped before
// root-scoped, and snake_case spellings before camelCase.
var (
	reservationIDPaths = []Path{
		{ScopeReservation, "reservation_id"}, {ScopeReservation, "reservationId"}, {ScopeReservation, "id"},
		{ScopeData, "reservation_id"}, {ScopeData, "reservationId"}, {ScopeData, "id"},
		{ScopeRoot, "reservation_id"}, {ScopeRoot, "reservationId"},
	}

	propertyIDPaths = []Path{
		{ScopeReservation, "property_id"}, {ScopeReservation, "propertyId"},
		{ScopeReservation, "listing_id"}, {ScopeReservation, "listingId"},
		{ScopeData, "property_id"}, {ScopeData, "propertyId"},
		{ScopeData, "listing_id"}, {ScopeData, "listingId"},
		{ScopeRoot, "property_id"}, {ScopeRoot, "propertyId"},
	}

	guestIDPaths = []Path{
		{ScopeReservation, "guest_id"}, {ScopeReservation, "guestId"},
		{ScopeData, "guest_id"}, {ScopeData, "guestId"},
		{ScopeGuest, "guest_id"}, {ScopeGuest, "guestId"}, {ScopeGuest, "id"},
	}

	checkInPaths = []Path{
		{ScopeReservation, "check_in"}, {ScopeReservation, "checkIn"}, {ScopeReservation, "checkin"},
		{ScopeReservation, "check_in_date"}, {ScopeReservation, "checkInDate"},
		{ScopeData, "check_in"}, {ScopeData, "checkIn"}, {ScopeData, "checkin"},
		{ScopeData, "check_in_date"}, {ScopeData, "checkInDate"},
		{ScopeRoot, "check_in"}, {ScopeRoot, "checkIn"},
	}

	checkOutPaths = []Path{
		{ScopeReservation, "check_out"}, {ScopeReservation, "checkOut"}, {ScopeReservation, "checkout"},
		{ScopeReservation, "check_out_date"}, {ScopeReservation, "checkOutDate"},
		{ScopeData, "check_out"}, {ScopeData, "checkOut"}, {ScopeData, "checkout"},
		{ScopeData, "check_out_date"}, {ScopeData, "checkOutDate"},
		{ScopeRoot, "check_out"}, {ScopeRoot, "checkOut"},
	}

	numGuestsPaths = []Path{
		{ScopeReservation, "num_guests"}, {ScopeReservation, "numGuests"},
		{ScopeReservation, "guest_count"}, {ScopeReservation, "guestCount"},
		{ScopeReservation, "adults"},
		{ScopeData, "num_guests"}, {ScopeData, "numGuests"},
		{ScopeData, "guest_count"}, {ScopeData, "guestCount"},
		{ScopeData, "adults"},
		{ScopeRoot, "num_guests"}, {ScopeRoot, "numGuests"},
	}

	totalAmountPaths = []Path{
		{ScopeReservation, "total_amount"}, {ScopeReservation, "totalAmount"},
		{ScopeReservation, "amount_total"}, {ScopeReservation, "amountTotal"},
		{ScopeTotal, "amount"},
		{ScopeData, "total_amount"}, {ScopeData, "totalAmount"},
		{ScopeData, "amount_total"}, {ScopeData, "amountTotal"},
		{ScopeRoot, "total_amount"}, {ScopeRoot, "totalAmount"},
	}

	currencyPaths = []Path{
		{ScopeReservation, "currency"},
		{ScopeTotal, "currency"},
		{ScopeData, "currency"},
		{ScopeRoot, "currency"},
	}

	eventTypePaths = []Path{
		{ScopeRoot, "event"}, {ScopeRoot, "type"},
		{ScopeRoot, "event_type"}, {ScopeRoot, "eventType"},
		{ScopeData, "event"}, {ScopeData, "type"},
	}

	rawStatusPaths = []Path{
		{ScopeReservation, "status"},
		{ScopeRoot, "status"},
	}

	firstNamePaths = []Path{
		{ScopeReservation, "guest_first_name"}, {ScopeReservation, "guestFirstName"},
		{ScopeGuest, "first_name"}, {ScopeGuest, "firstName"},
	}

	lastNamePaths = []Path{
		{ScopeReservation, "guest_last_name"}, {ScopeReservation, "guestLastName"},
		{ScopeGuest, "last_name"}, {ScopeGuest, "lastName"},
	}

	emailPaths = []Path{
		{ScopeReservation, "guest_email"}, {ScopeReservation, "guestEmail"},
		{ScopeGuest, "email"},
	}

	phonePaths = []Path{
		{ScopeReservation, "guest_phone"}, {ScopeReservation, "guestPhone"},
		{ScopeGuest, "phone"},
	}

	webhookIDPaths = []Path{
		{ScopeRoot, "webhook_id"}, {ScopeRoot, "webhookId"},
	}

	eventTimestampPaths = []Path{
		{ScopeRoot, "event_timestamp"}, {ScopeRoot, "eventTimestamp"}, {ScopeRoot, "timestamp"},
		{ScopeData, "event_timestamp"}, {ScopeData, "eventTimestamp"}, {ScopeData, "timestamp"},
	}
)

type node = map[string]interface{}

// Scopes holds the resolved nodes of one payload tree.
type Scopes struct {
	nodes map[Scope]node
}

// NewScopes resolves the container, reservation, guest and money nodes of a
// decoded payload. The reservation may live under "reservation" (at the
// root or inside "data"/"payload"), or the container itself may be the
// reservation.
func NewScopes(payload interface{}) Scopes {
	root := asObject(payload)
	data := asObject(root["data"])
	payloadNode := asObject(root["payload"])

	reservation := firstObject(
		root["reservation"],
		data["reservation"],
		payloadNode["reservation"],
		data,
		payloadNode,
	)

	guest := firstObject(
		reservation["guest"],
		data["guest"],
		payloadNode["guest"],
		root["guest"],
	)

	container := data
	if len(container) == 0 {
		container = payloadNode
	}

	return Scopes{nodes: map[Scope]node{
		ScopeRoot:        root,
		ScopeData:        container,
		ScopeReservation: reservation,
		ScopeGuest:       guest,
		ScopeTotal:       asObject(reservation["total"]),
	}}
}

// String resolves the first path whose value is a non-empty string.
func (s Scopes) String(paths []Path) (string, bool) {
	for _, p := range paths {
		if v, ok := asString(s.nodes[p.Scope][p.Key]); ok {
			return v, true
		}
	}
	return "", false
}

// Number resolves the first path whose value is a finite number or a
// numeric string.
func (s Scopes) Number(paths []Path) (float64, bool) {
	for _, p := range paths {
		if v, ok := asNumber(s.nodes[p.Scope][p.Key]); ok {
			return v, true
		}
	}
	return 0, false
}

func asObject(v interface{}) node {
	if m, ok := v.(node); ok {
		return m
	}
	return node{}
}

func firstObject(candidates ...interface{}) node {
	for _, c := range candidates {
		if m, ok := c.(node); ok {
			return m
		}
	}
	return node{}
}

func asString(v interface{}) (string, bool) {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

func asNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case int:
		return float64(n), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return 0, false
		}
		return parsed, true
	}
	return 0, false
}

// mapStatus resolves the reservation status. An explicit status wins when it
// is one of the three valid values; otherwise the event type is mapped.
func mapStatus(eventType, rawStatus string) (string, bool) {
	switch strings.ToLower(rawStatus) {
	case model.StatusConfirmed, model.StatusModified, model.StatusCancelled:
		return strings.ToLower(rawStatus), true
	}

	switch strings.ToLower(eventType) {
	case "reservation.created":
		return model.StatusConfirmed, true
	case "reservation.updated":
		return model.StatusModified, true
	case "reservation.cancelled":
		return model.StatusCancelled, true
	}

	return "", false
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTimestamp parses a source event timestamp. An unparsable value is
// treated as absent so ordering never acts on a timestamp it cannot trust.
func parseTimestamp(raw string) *time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

// Webhook normalizes a decoded webhook payload into a canonical reservation
// record. It is pure: no side effects, deterministic for a given tree.
func Webhook(payload interface{}) (model.Reservation, error) {
	s := NewScopes(payload)

	eventType, _ := s.String(eventTypePaths)
	rawStatus, _ := s.String(rawStatusPaths)
	status, statusOK := mapStatus(eventType, rawStatus)

	reservationID, idOK := s.String(reservationIDPaths)
	propertyID, propOK := s.String(propertyIDPaths)
	guestID, guestOK := s.String(guestIDPaths)
	checkIn, inOK := s.String(checkInPaths)
	checkOut, outOK := s.String(checkOutPaths)
	numGuests, numOK := s.Number(numGuestsPaths)
	totalAmount, amountOK := s.Number(totalAmountPaths)
	currency, curOK := s.String(currencyPaths)

	if !idOK || !propOK || !guestOK || !statusOK || !inOK || !outOK || !numOK || !amountOK || !curOK {
		return model.Reservation{}, ErrInvalidPayload
	}

	rec := model.Reservation{
		ReservationID:  reservationID,
		PropertyID:     propertyID,
		GuestID:        guestID,
		Status:         status,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		NumGuests:      int(numGuests),
		TotalAmount:    totalAmount,
		Currency:       currency,
		GuestFirstName: optionalString(s, firstNamePaths),
		GuestLastName:  optionalString(s, lastNamePaths),
		GuestEmail:     optionalString(s, emailPaths),
		GuestPhone:     optionalString(s, phonePaths),
		WebhookID:      optionalString(s, webhookIDPaths),
	}

	if raw, ok := s.String(eventTimestampPaths); ok {
		rec.EventTimestamp = parseTimestamp(raw)
	}

	return rec, nil
}

func optionalString(s Scopes, paths []Path) *string {
	if v, ok := s.String(paths); ok {
		return &v
	}
	return nil
}
