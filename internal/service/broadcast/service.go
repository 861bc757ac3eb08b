// Package broadcast fans one message out to every guest matching a filter,
// with bounded concurrency, per-guest retries and partial-failure reporting.
package broadcast

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"
	"golang.org/x/time/rate"

	"github.com/aliskhannn/reservation-relay/internal/model"
	"github.com/aliskhannn/reservation-relay/pkg/guestapi"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/broadcast/mock.go -package=mocks

// maxFailureRecords caps the failure list in a result; counters keep
// counting past it.
const maxFailureRecords = 100

type reservationRepository interface {
	Count(ctx context.Context, f model.ReservationFilter) (int, error)
	DistinctGuests(ctx context.Context, f model.ReservationFilter) ([]string, error)
}

type guestSender interface {
	Send(ctx context.Context, guestID, message string) error
}

// Config tunes the fan-out.
type Config struct {
	Concurrency    int           `mapstructure:"concurrency"`     // max in-flight deliveries
	MaxAttempts    int           `mapstructure:"max_attempts"`    // per-guest attempt budget
	InitialBackoff time.Duration `mapstructure:"initial_backoff"` // first server-error wait, doubles per retry
	RatePerSec     int           `mapstructure:"rate_per_sec"`    // outbound pacing, 0 disables
}

// Failure records one guest that could not be reached.
type Failure struct {
	GuestID string `json:"guestId"`
	Reason  string `json:"reason"`
}

// Result aggregates one broadcast run.
type Result struct {
	TotalMatched int       `json:"totalMatched"` // reservations matching the filter
	Attempted    int       `json:"attempted"`    // distinct guests targeted
	Sent         int       `json:"sent"`
	Failed       int       `json:"failed"`
	Failures     []Failure `json:"failures"`
}

// Service coordinates broadcast runs.
type Service struct {
	repo    reservationRepository
	sender  guestSender
	cfg     Config
	limiter *rate.Limiter
}

// NewService creates a broadcast service. Zero config fields fall back to
// 10 concurrent deliveries, 5 attempts and a 500ms initial backoff.
func NewService(repo reservationRepository, sender guestSender, cfg Config) *Service {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 10
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 5
	}
	if cfg.InitialBackoff <= 0 {
		cfg.InitialBackoff = 500 * time.Millisecond
	}

	var limiter *rate.Limiter
	if cfg.RatePerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSec), cfg.RatePerSec)
	}

	return &Service{repo: repo, sender: sender, cfg: cfg, limiter: limiter}
}

type delivery struct {
	guestID string
	err     error
}

// Broadcast resolves the filter into a recipient set and delivers the
// message to every guest in it, at most Concurrency in flight at once. It
// returns once every recipient reached a terminal state; per-guest
// failures land in the result, never in the error.
func (s *Service) Broadcast(ctx context.Context, message string, f model.ReservationFilter) (Result, error) {
	runID := uuid.New()

	var (
		total     int
		guests    []string
		countErr  error
		guestsErr error
	)

	// Both reads are order-independent; run them together so count and
	// recipients come from the same moment.
	var reads sync.WaitGroup
	reads.Add(2)
	go func() {
		defer reads.Done()
		total, countErr = s.repo.Count(ctx, f)
	}()
	go func() {
		defer reads.Done()
		guests, guestsErr = s.repo.DistinctGuests(ctx, f)
	}()
	reads.Wait()

	if countErr != nil {
		return Result{}, fmt.Errorf("count reservations: %w", countErr)
	}
	if guestsErr != nil {
		return Result{}, fmt.Errorf("list recipients: %w", guestsErr)
	}

	zlog.Logger.Info().
		Str("broadcast_id", runID.String()).
		Int("matched", total).
		Int("recipients", len(guests)).
		Msg("broadcast started")

	jobs := make(chan string)
	results := make(chan delivery)

	var workers sync.WaitGroup
	for i := 0; i < s.cfg.Concurrency; i++ {
		workers.Add(1)
		go func() {
			defer workers.Done()
			for guestID := range jobs {
				results <- delivery{guestID: guestID, err: s.sendWithRetry(ctx, guestID, message)}
			}
		}()
	}

	go func() {
		for _, guestID := range guests {
			jobs <- guestID
		}
		close(jobs)
		workers.Wait()
		close(results)
	}()

	// Single point of aggregation: only this goroutine touches the
	// counters and failure list.
	res := Result{TotalMatched: total, Attempted: len(guests), Failures: []Failure{}}
	for d := range results {
		if d.err == nil {
			res.Sent++
			continue
		}

		res.Failed++
		if len(res.Failures) < maxFailureRecords {
			res.Failures = append(res.Failures, Failure{GuestID: d.guestID, Reason: d.err.Error()})
		}

		zlog.Logger.Warn().
			Str("broadcast_id", runID.String()).
			Str("guest_id", d.guestID).
			Err(d.err).
			Msg("delivery failed")
	}

	zlog.Logger.Info().
		Str("broadcast_id", runID.String()).
		Int("sent", res.Sent).
		Int("failed", res.Failed).
		Msg("broadcast finished")

	return res, nil
}

// sendWithRetry drives one guest to a terminal state. NotFound and other
// client errors end retries immediately; a rate-limit wait is honored
// verbatim and leaves the backoff schedule untouched; server errors back
// off starting at InitialBackoff, doubling per retry. Once the attempt
// budget is spent the guest is failed as exhausted.
func (s *Service) sendWithRetry(ctx context.Context, guestID, message string) error {
	backoff := s.cfg.InitialBackoff

	for attempt := 1; attempt <= s.cfg.MaxAttempts; attempt++ {
		if s.limiter != nil {
			if err := s.limiter.Wait(ctx); err != nil {
				return err
			}
		}

		err := s.sender.Send(ctx, guestID, message)
		if err == nil {
			return nil
		}

		var rateLimited *guestapi.RateLimitError
		var serverErr *guestapi.ServerError
		switch {
		case errors.As(err, &rateLimited):
			if werr := sleep(ctx, rateLimited.Wait); werr != nil {
				return werr
			}
		case errors.As(err, &serverErr):
			if werr := sleep(ctx, backoff); werr != nil {
				return werr
			}
			backoff *= 2
		default:
			// not found or other client error: retrying cannot help
			return err
		}
	}

	return fmt.Errorf("failed after %d attempts", s.cfg.MaxAttempts)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
