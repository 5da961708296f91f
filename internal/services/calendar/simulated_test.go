package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/sessionsync/internal/common/clock/mocks"
	"github.com/KirkDiggler/sessionsync/internal/models"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SimulatedProviderTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockClock *mocks.MockClock
	provider  *simulatedProvider
	ctx       context.Context
	testTime  time.Time
	event     *models.CalendarEvent
}

func (s *SimulatedProviderTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()
	s.testTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	provider, err := NewSimulated(&SimulatedConfig{
		ConnectDelay: 1500 * time.Millisecond,
		CreateDelay:  500 * time.Millisecond,
		Clock:        s.mockClock,
	})
	s.Require().NoError(err)
	s.provider = provider

	s.event = &models.CalendarEvent{
		Title:    "Band Session - SessionSync",
		Location: "Rehearsal Studio",
		Attendees: []models.Attendee{
			{Email: "josh@example.com", DisplayName: "Josh"},
		},
	}
}

func (s *SimulatedProviderTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSimulatedProviderTestSuite(t *testing.T) {
	suite.Run(t, new(SimulatedProviderTestSuite))
}

// fired returns a channel that already holds a tick
func (s *SimulatedProviderTestSuite) fired() <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- s.testTime
	return ch
}

func (s *SimulatedProviderTestSuite) TestStartsDisconnected() {
	s.False(s.provider.IsConnected())
}

func (s *SimulatedProviderTestSuite) TestConnect_HappyPath() {
	s.mockClock.EXPECT().After(1500 * time.Millisecond).Return(s.fired())

	err := s.provider.Connect(s.ctx)

	s.Require().NoError(err)
	s.True(s.provider.IsConnected())
}

func (s *SimulatedProviderTestSuite) TestConnect_AlreadyConnectedDoesNotWait() {
	s.mockClock.EXPECT().After(1500 * time.Millisecond).Return(s.fired()).Times(1)

	s.Require().NoError(s.provider.Connect(s.ctx))
	s.Require().NoError(s.provider.Connect(s.ctx))
	s.True(s.provider.IsConnected())
}

func (s *SimulatedProviderTestSuite) TestConnect_ContextCancelled() {
	s.mockClock.EXPECT().After(1500 * time.Millisecond).Return(make(chan time.Time))

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	err := s.provider.Connect(ctx)

	s.Require().Error(err)
	var providerErr *ProviderError
	s.Require().True(errors.As(err, &providerErr))
	s.Equal(OpConnect, providerErr.Op)
	s.ErrorIs(err, context.Canceled)
	s.False(s.provider.IsConnected())
}

func (s *SimulatedProviderTestSuite) TestCreateEvent_NotConnected() {
	output, err := s.provider.CreateEvent(s.ctx, &CreateEventInput{Event: s.event})

	s.ErrorIs(err, ErrNotConnected)
	s.Nil(output)
}

func (s *SimulatedProviderTestSuite) TestCreateEvent_HappyPath() {
	s.mockClock.EXPECT().After(1500 * time.Millisecond).Return(s.fired())
	s.mockClock.EXPECT().After(500 * time.Millisecond).Return(s.fired())
	s.Require().NoError(s.provider.Connect(s.ctx))

	output, err := s.provider.CreateEvent(s.ctx, &CreateEventInput{Event: s.event})

	s.Require().NoError(err)
	s.Equal("demo_event_1717243200000", output.EventID)
}

func (s *SimulatedProviderTestSuite) TestCreateEvent_NilEvent() {
	s.mockClock.EXPECT().After(1500 * time.Millisecond).Return(s.fired())
	s.Require().NoError(s.provider.Connect(s.ctx))

	_, err := s.provider.CreateEvent(s.ctx, &CreateEventInput{})
	s.ErrorIs(err, ErrNilEvent)
}

func (s *SimulatedProviderTestSuite) TestCreateEvent_ContextCancelled() {
	s.mockClock.EXPECT().After(1500 * time.Millisecond).Return(s.fired())
	s.mockClock.EXPECT().After(500 * time.Millisecond).Return(make(chan time.Time))
	s.Require().NoError(s.provider.Connect(s.ctx))

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.provider.CreateEvent(ctx, &CreateEventInput{Event: s.event})

	var providerErr *ProviderError
	s.Require().True(errors.As(err, &providerErr))
	s.Equal(OpCreateEvent, providerErr.Op)
}

func TestNewSimulated_Validation(t *testing.T) {
	_, err := NewSimulated(nil)
	if !errors.Is(err, ErrNilConfig) {
		t.Fatalf("expected ErrNilConfig, got %v", err)
	}

	_, err = NewSimulated(&SimulatedConfig{})
	if !errors.Is(err, ErrNilClock) {
		t.Fatalf("expected ErrNilClock, got %v", err)
	}
}
