package reservation

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/reservation-relay/internal/model"
	"github.com/aliskhannn/reservation-relay/internal/normalize"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/reservation/mock.go -package=mocks

type reservationRepository interface {
	Upsert(ctx context.Context, rec model.Reservation) error
	List(ctx context.Context, f model.ReservationFilter) ([]model.Reservation, error)
}

type eventSink interface {
	Broadcast(name string, data interface{})
}

// Service owns the webhook ingest path: normalize, store, notify.
type Service struct {
	repo reservationRepository
	sink eventSink
}

func NewService(repo reservationRepository, sink eventSink) *Service {
	return &Service{repo: repo, sink: sink}
}

// IngestWebhook normalizes a decoded webhook payload, merges it into the
// store and notifies live-update listeners. The sink is fire-and-forget:
// once the upsert committed, the webhook is considered ingested.
func (s *Service) IngestWebhook(ctx context.Context, payload interface{}) (model.Reservation, error) {
	rec, err := normalize.Webhook(payload)
	if err != nil {
		return model.Reservation{}, fmt.Errorf("normalize webhook: %w", err)
	}

	if err := s.repo.Upsert(ctx, rec); err != nil {
		return model.Reservation{}, fmt.Errorf("upsert reservation: %w", err)
	}

	zlog.Logger.Info().
		Str("reservation_id", rec.ReservationID).
		Str("status", rec.Status).
		Msg("reservation upserted")

	s.sink.Broadcast("reservation.updated", map[string]string{
		"reservationId": rec.ReservationID,
		"status":        rec.Status,
	})

	return rec, nil
}

// ListReservations retrieves the filtered reservation page.
func (s *Service) ListReservations(ctx context.Context, f model.ReservationFilter) ([]model.Reservation, error) {
	reservations, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	return reservations, nil
}
