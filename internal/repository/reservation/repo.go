package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/reservation-relay/internal/model"
)

const (
	defaultLimit = 100
	maxLimit     = 500
)

// Repository provides methods to interact with the reservations table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new reservation repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Upsert inserts the record or overwrites the stored row for the same
// reservation id. The write is suppressed when both rows carry an event
// timestamp and the incoming one is strictly older, so out-of-order webhook
// deliveries never clobber a causally newer state. The conflict check and
// the write are one statement; there is no read-then-write window.
func (r *Repository) Upsert(ctx context.Context, rec model.Reservation) error {
	query := `
		INSERT INTO reservations (
		    reservation_id, property_id, guest_id, status,
		    check_in, check_out, num_guests, total_amount, currency,
		    guest_first_name, guest_last_name, guest_email, guest_phone,
		    webhook_id, event_timestamp, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW())
		ON CONFLICT (reservation_id) DO UPDATE SET
		    property_id = EXCLUDED.property_id,
		    guest_id = EXCLUDED.guest_id,
		    status = EXCLUDED.status,
		    check_in = EXCLUDED.check_in,
		    check_out = EXCLUDED.check_out,
		    num_guests = EXCLUDED.num_guests,
		    total_amount = EXCLUDED.total_amount,
		    currency = EXCLUDED.currency,
		    guest_first_name = EXCLUDED.guest_first_name,
		    guest_last_name = EXCLUDED.guest_last_name,
		    guest_email = EXCLUDED.guest_email,
		    guest_phone = EXCLUDED.guest_phone,
		    webhook_id = EXCLUDED.webhook_id,
		    event_timestamp = EXCLUDED.event_timestamp,
		    updated_at = NOW()
		WHERE reservations.event_timestamp IS NULL
		    OR EXCLUDED.event_timestamp IS NULL
		    OR EXCLUDED.event_timestamp >= reservations.event_timestamp;
    `

	_, err := r.db.ExecContext(
		ctx, query,
		rec.ReservationID, rec.PropertyID, rec.GuestID, rec.Status,
		rec.CheckIn, rec.CheckOut, rec.NumGuests, rec.TotalAmount, rec.Currency,
		rec.GuestFirstName, rec.GuestLastName, rec.GuestEmail, rec.GuestPhone,
		rec.WebhookID, rec.EventTimestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert reservation: %w", err)
	}

	return nil
}

// buildFilterWhere translates a filter into a WHERE clause and its
// arguments. List, Count and DistinctGuests all go through here so the
// three reads always agree on the matched population.
func buildFilterWhere(f model.ReservationFilter) (string, []interface{}) {
	var clauses []string
	var args []interface{}

	if f.Status != "" {
		args = append(args, f.Status)
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.PropertyID != "" {
		args = append(args, f.PropertyID)
		clauses = append(clauses, fmt.Sprintf("property_id = $%d", len(args)))
	}
	if f.GuestID != "" {
		args = append(args, f.GuestID)
		clauses = append(clauses, fmt.Sprintf("guest_id = $%d", len(args)))
	}
	if f.CheckInFrom != "" {
		args = append(args, f.CheckInFrom)
		clauses = append(clauses, fmt.Sprintf("check_in >= $%d", len(args)))
	}
	if f.CheckInTo != "" {
		args = append(args, f.CheckInTo)
		clauses = append(clauses, fmt.Sprintf("check_in <= $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf(`(
		    reservation_id ILIKE $%d
		    OR guest_id ILIKE $%d
		    OR COALESCE(guest_first_name, '') ILIKE $%d
		    OR COALESCE(guest_last_name, '') ILIKE $%d
		    OR COALESCE(guest_email, '') ILIKE $%d
		)`, n, n, n, n, n))
	}

	if len(clauses) == 0 {
		return "", args
	}

	return "WHERE " + strings.Join(clauses, " AND "), args
}

// List retrieves reservations matching the filter, newest write first.
func (r *Repository) List(ctx context.Context, f model.ReservationFilter) ([]model.Reservation, error) {
	where, args := buildFilterWhere(f)

	limit := f.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	args = append(args, limit)
	limitIdx := len(args)
	args = append(args, offset)
	offsetIdx := len(args)

	query := fmt.Sprintf(`
		SELECT
		    reservation_id, property_id, guest_id, status,
		    check_in, check_out, num_guests, total_amount, currency,
		    guest_first_name, guest_last_name, guest_email, guest_phone,
		    webhook_id, event_timestamp, created_at, updated_at
		FROM reservations
		%s
		ORDER BY updated_at DESC
		LIMIT $%d OFFSET $%d;
    `, where, limitIdx, offsetIdx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer rows.Close()

	var reservations []model.Reservation
	for rows.Next() {
		var (
			rec                               model.Reservation
			firstName, lastName, email, phone sql.NullString
			webhookID                         sql.NullString
			eventTimestamp                    sql.NullTime
		)

		if err := rows.Scan(
			&rec.ReservationID, &rec.PropertyID, &rec.GuestID, &rec.Status,
			&rec.CheckIn, &rec.CheckOut, &rec.NumGuests, &rec.TotalAmount, &rec.Currency,
			&firstName, &lastName, &email, &phone,
			&webhookID, &eventTimestamp, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, err
		}

		rec.GuestFirstName = nullableString(firstName)
		rec.GuestLastName = nullableString(lastName)
		rec.GuestEmail = nullableString(email)
		rec.GuestPhone = nullableString(phone)
		rec.WebhookID = nullableString(webhookID)
		if eventTimestamp.Valid {
			t := eventTimestamp.Time
			rec.EventTimestamp = &t
		}

		reservations = append(reservations, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reservation rows: %w", err)
	}

	return reservations, nil
}

// Count reports how many reservations match the filter, ignoring pagination.
func (r *Repository) Count(ctx context.Context, f model.ReservationFilter) (int, error) {
	where, args := buildFilterWhere(f)

	query := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM reservations
		%s;
    `, where)

	var count int
	if err := r.db.Master.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count reservations: %w", err)
	}

	return count, nil
}

// DistinctGuests returns the unique guest ids of matching reservations,
// ignoring pagination. This is the recipient set a broadcast fans out to.
func (r *Repository) DistinctGuests(ctx context.Context, f model.ReservationFilter) ([]string, error) {
	where, args := buildFilterWhere(f)

	query := fmt.Sprintf(`
		SELECT DISTINCT guest_id
		FROM reservations
		%s;
    `, where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list distinct guests: %w", err)
	}
	defer rows.Close()

	var guests []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		guests = append(guests, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read guest rows: %w", err)
	}

	return guests, nil
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
