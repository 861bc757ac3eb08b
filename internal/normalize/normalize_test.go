package normalize

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/reservation-relay/internal/model"
)

func decode(t *testing.T, raw string) interface{} {
	t.Helper()

	var payload interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	return payload
}

func TestWebhook_CreatedEventUnderData(t *testing.T) {
	payload := decode(t, `{
		"event": "reservation.created",
		"data": {
			"reservation_id": "R1",
			"property_id": "P1",
			"guest_id": "G1",
			"check_in": "2024-06-01",
			"check_out": "2024-06-05",
			"num_guests": 2,
			"total_amount": 450,
			"currency": "USD"
		}
	}`)

	rec, err := Webhook(payload)
	require.NoError(t, err)

	assert.Equal(t, "R1", rec.ReservationID)
	assert.Equal(t, "P1", rec.PropertyID)
	assert.Equal(t, "G1", rec.GuestID)
	assert.Equal(t, model.StatusConfirmed, rec.Status)
	assert.Equal(t, "2024-06-01", rec.CheckIn)
	assert.Equal(t, "2024-06-05", rec.CheckOut)
	assert.Equal(t, 2, rec.NumGuests)
	assert.Equal(t, 450.0, rec.TotalAmount)
	assert.Equal(t, "USD", rec.Currency)
	assert.Nil(t, rec.GuestFirstName)
	assert.Nil(t, rec.GuestEmail)
	assert.Nil(t, rec.WebhookID)
	assert.Nil(t, rec.EventTimestamp)
}

func TestWebhook_MissingCurrency(t *testing.T) {
	payload := decode(t, `{
		"event": "reservation.created",
		"data": {
			"reservation_id": "R1",
			"property_id": "P1",
			"guest_id": "G1",
			"check_in": "2024-06-01",
			"check_out": "2024-06-05",
			"num_guests": 2,
			"total_amount": 450
		}
	}`)

	_, err := Webhook(payload)
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestWebhook_ReservationUnderPayloadKey(t *testing.T) {
	payload := decode(t, `{
		"type": "reservation.updated",
		"payload": {
			"reservation": {
				"reservationId": "R2",
				"listingId": "P2",
				"guestId": "G2",
				"checkInDate": "2024-07-10",
				"checkOutDate": "2024-07-12",
				"guestCount": "3",
				"total": {"amount": "120.50", "currency": "EUR"}
			}
		}
	}`)

	rec, err := Webhook(payload)
	require.NoError(t, err)

	assert.Equal(t, "R2", rec.ReservationID)
	assert.Equal(t, "P2", rec.PropertyID)
	assert.Equal(t, model.StatusModified, rec.Status)
	assert.Equal(t, 3, rec.NumGuests)
	assert.Equal(t, 120.50, rec.TotalAmount)
	assert.Equal(t, "EUR", rec.Currency)
}

func TestWebhook_ExplicitStatusWinsOverEventType(t *testing.T) {
	payload := decode(t, `{
		"event": "reservation.created",
		"data": {
			"reservation_id": "R3",
			"property_id": "P1",
			"guest_id": "G1",
			"status": "CANCELLED",
			"check_in": "2024-06-01",
			"check_out": "2024-06-05",
			"num_guests": 1,
			"total_amount": 100,
			"currency": "USD"
		}
	}`)

	rec, err := Webhook(payload)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, rec.Status)
}

func TestWebhook_UnknownStatusFallsBackToEventType(t *testing.T) {
	payload := decode(t, `{
		"event": "reservation.cancelled",
		"data": {
			"reservation_id": "R4",
			"property_id": "P1",
			"guest_id": "G1",
			"status": "pending",
			"check_in": "2024-06-01",
			"check_out": "2024-06-05",
			"num_guests": 1,
			"total_amount": 100,
			"currency": "USD"
		}
	}`)

	rec, err := Webhook(payload)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, rec.Status)
}

func TestWebhook_NoStatusAndNoEventType(t *testing.T) {
	payload := decode(t, `{
		"data": {
			"reservation_id": "R5",
			"property_id": "P1",
			"guest_id": "G1",
			"check_in": "2024-06-01",
			"check_out": "2024-06-05",
			"num_guests": 1,
			"total_amount": 100,
			"currency": "USD"
		}
	}`)

	_, err := Webhook(payload)
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestWebhook_GuestContactFromNestedObject(t *testing.T) {
	payload := decode(t, `{
		"event": "reservation.created",
		"data": {
			"reservation_id": "R6",
			"property_id": "P1",
			"check_in": "2024-06-01",
			"check_out": "2024-06-05",
			"num_guests": 2,
			"total_amount": 200,
			"currency": "USD",
			"guest": {
				"id": "G6",
				"firstName": "Ada",
				"last_name": "Lovelace",
				"email": "ada@example.com",
				"phone": "+100200300"
			}
		}
	}`)

	rec, err := Webhook(payload)
	require.NoError(t, err)

	assert.Equal(t, "G6", rec.GuestID)
	require.NotNil(t, rec.GuestFirstName)
	assert.Equal(t, "Ada", *rec.GuestFirstName)
	require.NotNil(t, rec.GuestLastName)
	assert.Equal(t, "Lovelace", *rec.GuestLastName)
	require.NotNil(t, rec.GuestEmail)
	assert.Equal(t, "ada@example.com", *rec.GuestEmail)
	require.NotNil(t, rec.GuestPhone)
	assert.Equal(t, "+100200300", *rec.GuestPhone)
}

func TestWebhook_ReservationScopeBeatsRootScope(t *testing.T) {
	payload := decode(t, `{
		"event": "reservation.created",
		"property_id": "ROOT",
		"data": {
			"reservation_id": "R7",
			"property_id": "INNER",
			"guest_id": "G1",
			"check_in": "2024-06-01",
			"check_out": "2024-06-05",
			"num_guests": 1,
			"total_amount": 100,
			"currency": "USD"
		}
	}`)

	rec, err := Webhook(payload)
	require.NoError(t, err)
	assert.Equal(t, "INNER", rec.PropertyID)
}

func TestWebhook_WebhookIDAndEventTimestamp(t *testing.T) {
	payload := decode(t, `{
		"event": "reservation.created",
		"webhook_id": "wh-1",
		"event_timestamp": "2024-05-01T12:30:00Z",
		"data": {
			"reservation_id": "R8",
			"property_id": "P1",
			"guest_id": "G1",
			"check_in": "2024-06-01",
			"check_out": "2024-06-05",
			"num_guests": 1,
			"total_amount": 100,
			"currency": "USD"
		}
	}`)

	rec, err := Webhook(payload)
	require.NoError(t, err)

	require.NotNil(t, rec.WebhookID)
	assert.Equal(t, "wh-1", *rec.WebhookID)
	require.NotNil(t, rec.EventTimestamp)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC), rec.EventTimestamp.UTC())
}

func TestWebhook_UnparsableTimestampTreatedAsAbsent(t *testing.T) {
	payload := decode(t, `{
		"event": "reservation.created",
		"timestamp": "not a time",
		"data": {
			"reservation_id": "R9",
			"property_id": "P1",
			"guest_id": "G1",
			"check_in": "2024-06-01",
			"check_out": "2024-06-05",
			"num_guests": 1,
			"total_amount": 100,
			"currency": "USD"
		}
	}`)

	rec, err := Webhook(payload)
	require.NoError(t, err)
	assert.Nil(t, rec.EventTimestamp)
}

func TestWebhook_NonNumericAmountRejected(t *testing.T) {
	payload := decode(t, `{
		"event": "reservation.created",
		"data": {
			"reservation_id": "R10",
			"property_id": "P1",
			"guest_id": "G1",
			"check_in": "2024-06-01",
			"check_out": "2024-06-05",
			"num_guests": 1,
			"total_amount": "NaN",
			"currency": "USD"
		}
	}`)

	_, err := Webhook(payload)
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestWebhook_NonObjectPayload(t *testing.T) {
	_, err := Webhook("just a string")
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestScopes_FieldLookupOrder(t *testing.T) {
	payload := decode(t, `{
		"currency": "ROOT",
		"data": {
			"currency": "DATA",
			"reservation": {
				"total": {"currency": "TOTAL"},
				"currency": "RES"
			}
		}
	}`)

	s := NewScopes(payload)

	got, ok := s.String(currencyPaths)
	require.True(t, ok)
	assert.Equal(t, "RES", got)

	// drop the reservation-scoped value: nested money object is next
	got, ok = s.String(currencyPaths[1:])
	require.True(t, ok)
	assert.Equal(t, "TOTAL", got)
}
