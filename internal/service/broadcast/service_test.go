package broadcast

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/aliskhannn/reservation-relay/internal/mocks/service/broadcast"
	"github.com/aliskhannn/reservation-relay/internal/model"
	"github.com/aliskhannn/reservation-relay/pkg/guestapi"
)

func fastConfig() Config {
	return Config{
		Concurrency:    10,
		MaxAttempts:    5,
		InitialBackoff: time.Millisecond,
	}
}

func TestBroadcast_AllSent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockreservationRepository(ctrl)
	senderMock := mocks.NewMockguestSender(ctrl)

	f := model.ReservationFilter{PropertyID: "P1"}
	repoMock.EXPECT().Count(gomock.Any(), f).Return(3, nil)
	repoMock.EXPECT().DistinctGuests(gomock.Any(), f).Return([]string{"G1", "G2", "G3"}, nil)
	senderMock.EXPECT().Send(gomock.Any(), gomock.Any(), "Welcome!").Return(nil).Times(3)

	svc := NewService(repoMock, senderMock, fastConfig())

	res, err := svc.Broadcast(context.Background(), "Welcome!", f)
	require.NoError(t, err)

	assert.Equal(t, 3, res.TotalMatched)
	assert.Equal(t, 3, res.Attempted)
	assert.Equal(t, 3, res.Sent)
	assert.Equal(t, 0, res.Failed)
	assert.Empty(t, res.Failures)
}

func TestBroadcast_PartialFailureReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockreservationRepository(ctrl)
	senderMock := mocks.NewMockguestSender(ctrl)

	f := model.ReservationFilter{PropertyID: "P1"}
	repoMock.EXPECT().Count(gomock.Any(), f).Return(3, nil)
	repoMock.EXPECT().DistinctGuests(gomock.Any(), f).Return([]string{"G1", "G2", "G3"}, nil)

	senderMock.EXPECT().Send(gomock.Any(), gomock.Any(), "Welcome!").DoAndReturn(
		func(_ context.Context, guestID, _ string) error {
			if guestID == "G3" {
				return guestapi.ErrGuestNotFound
			}
			return nil
		},
	).Times(3)

	svc := NewService(repoMock, senderMock, fastConfig())

	res, err := svc.Broadcast(context.Background(), "Welcome!", f)
	require.NoError(t, err)

	assert.Equal(t, 3, res.TotalMatched)
	assert.Equal(t, 3, res.Attempted)
	assert.Equal(t, 2, res.Sent)
	assert.Equal(t, 1, res.Failed)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, "G3", res.Failures[0].GuestID)
	assert.Equal(t, "guest not found", res.Failures[0].Reason)
}

func TestBroadcast_NoRecipients(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockreservationRepository(ctrl)
	senderMock := mocks.NewMockguestSender(ctrl)

	f := model.ReservationFilter{Status: "cancelled"}
	repoMock.EXPECT().Count(gomock.Any(), f).Return(0, nil)
	repoMock.EXPECT().DistinctGuests(gomock.Any(), f).Return(nil, nil)

	svc := NewService(repoMock, senderMock, fastConfig())

	res, err := svc.Broadcast(context.Background(), "hi", f)
	require.NoError(t, err)

	assert.Equal(t, 0, res.TotalMatched)
	assert.Equal(t, 0, res.Attempted)
	assert.Equal(t, 0, res.Sent)
	assert.Equal(t, 0, res.Failed)
}

func TestBroadcast_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockreservationRepository(ctrl)
	senderMock := mocks.NewMockguestSender(ctrl)

	f := model.ReservationFilter{}
	repoMock.EXPECT().Count(gomock.Any(), f).Return(0, fmt.Errorf("connection refused"))
	repoMock.EXPECT().DistinctGuests(gomock.Any(), f).Return(nil, nil).AnyTimes()

	svc := NewService(repoMock, senderMock, fastConfig())

	_, err := svc.Broadcast(context.Background(), "hi", f)
	assert.Error(t, err)
}

func TestBroadcast_ConcurrencyBound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockreservationRepository(ctrl)
	senderMock := mocks.NewMockguestSender(ctrl)

	const recipients = 20
	const bound = 3

	guests := make([]string, 0, recipients)
	for i := 0; i < recipients; i++ {
		guests = append(guests, fmt.Sprintf("G%d", i))
	}

	f := model.ReservationFilter{}
	repoMock.EXPECT().Count(gomock.Any(), f).Return(recipients, nil)
	repoMock.EXPECT().DistinctGuests(gomock.Any(), f).Return(guests, nil)

	var inFlight, maxInFlight int64
	senderMock.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string) error {
			cur := atomic.AddInt64(&inFlight, 1)
			for {
				prev := atomic.LoadInt64(&maxInFlight)
				if cur <= prev || atomic.CompareAndSwapInt64(&maxInFlight, prev, cur) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt64(&inFlight, -1)
			return nil
		},
	).Times(recipients)

	cfg := fastConfig()
	cfg.Concurrency = bound
	svc := NewService(repoMock, senderMock, cfg)

	res, err := svc.Broadcast(context.Background(), "hi", f)
	require.NoError(t, err)

	assert.Equal(t, recipients, res.Sent)
	assert.LessOrEqual(t, atomic.LoadInt64(&maxInFlight), int64(bound))
}

func TestSendWithRetry_ExhaustsTransientFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	senderMock := mocks.NewMockguestSender(ctrl)
	senderMock.EXPECT().Send(gomock.Any(), "G1", "hi").
		Return(&guestapi.ServerError{Status: 500}).
		Times(5)

	svc := NewService(nil, senderMock, fastConfig())

	err := svc.sendWithRetry(context.Background(), "G1", "hi")
	require.Error(t, err)
	assert.Equal(t, "failed after 5 attempts", err.Error())
}

func TestSendWithRetry_NotFoundShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	senderMock := mocks.NewMockguestSender(ctrl)
	senderMock.EXPECT().Send(gomock.Any(), "G1", "hi").
		Return(guestapi.ErrGuestNotFound).
		Times(1)

	svc := NewService(nil, senderMock, fastConfig())

	err := svc.sendWithRetry(context.Background(), "G1", "hi")
	assert.ErrorIs(t, err, guestapi.ErrGuestNotFound)
}

func TestSendWithRetry_ClientErrorShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	senderMock := mocks.NewMockguestSender(ctrl)
	senderMock.EXPECT().Send(gomock.Any(), "G1", "hi").
		Return(&guestapi.APIError{Status: 422, Body: "message too long"}).
		Times(1)

	svc := NewService(nil, senderMock, fastConfig())

	err := svc.sendWithRetry(context.Background(), "G1", "hi")

	assert.Contains(t, err.Error(), "message too long")
}

func TestSendWithRetry_RecoversAfterServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	senderMock := mocks.NewMockguestSender(ctrl)
	gomock.InOrder(
		senderMock.EXPECT().Send(gomock.Any(), "G1", "hi").Return(&guestapi.ServerError{Status: 503}),
		senderMock.EXPECT().Send(gomock.Any(), "G1", "hi").Return(nil),
	)

	svc := NewService(nil, senderMock, fastConfig())

	assert.NoError(t, svc.sendWithRetry(context.Background(), "G1", "hi"))
}

func TestSendWithRetry_HonorsRateLimitWait(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const wait = 30 * time.Millisecond

	senderMock := mocks.NewMockguestSender(ctrl)
	gomock.InOrder(
		senderMock.EXPECT().Send(gomock.Any(), "G1", "hi").Return(&guestapi.RateLimitError{Wait: wait}),
		senderMock.EXPECT().Send(gomock.Any(), "G1", "hi").Return(nil),
	)

	svc := NewService(nil, senderMock, fastConfig())

	start := time.Now()
	require.NoError(t, svc.sendWithRetry(context.Background(), "G1", "hi"))
	assert.GreaterOrEqual(t, time.Since(start), wait)
}

func TestSendWithRetry_BackoffDoubles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var attempts []time.Time
	var mu sync.Mutex

	senderMock := mocks.NewMockguestSender(ctrl)
	senderMock.EXPECT().Send(gomock.Any(), "G1", "hi").DoAndReturn(
		func(_ context.Context, _, _ string) error {
			mu.Lock()
			attempts = append(attempts, time.Now())
			mu.Unlock()
			return &guestapi.ServerError{Status: 500}
		},
	).Times(3)

	cfg := fastConfig()
	cfg.MaxAttempts = 3
	cfg.InitialBackoff = 20 * time.Millisecond
	svc := NewService(nil, senderMock, cfg)

	err := svc.sendWithRetry(context.Background(), "G1", "hi")
	require.Error(t, err)
	require.Len(t, attempts, 3)

	// waits of 20ms then 40ms between attempts
	assert.GreaterOrEqual(t, attempts[1].Sub(attempts[0]), 20*time.Millisecond)
	assert.GreaterOrEqual(t, attempts[2].Sub(attempts[1]), 40*time.Millisecond)
}

func TestBroadcast_FailureListCapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockreservationRepository(ctrl)
	senderMock := mocks.NewMockguestSender(ctrl)

	const recipients = 120

	guests := make([]string, 0, recipients)
	for i := 0; i < recipients; i++ {
		guests = append(guests, fmt.Sprintf("G%d", i))
	}

	f := model.ReservationFilter{}
	repoMock.EXPECT().Count(gomock.Any(), f).Return(recipients, nil)
	repoMock.EXPECT().DistinctGuests(gomock.Any(), f).Return(guests, nil)
	senderMock.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(guestapi.ErrGuestNotFound).
		Times(recipients)

	svc := NewService(repoMock, senderMock, fastConfig())

	res, err := svc.Broadcast(context.Background(), "hi", f)
	require.NoError(t, err)

	assert.Equal(t, recipients, res.Failed)
	assert.Len(t, res.Failures, maxFailureRecords)
}
