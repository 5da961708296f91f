package calendar

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/KirkDiggler/sessionsync/internal/common/clock"
	"github.com/KirkDiggler/sessionsync/internal/common/logger"
	"go.uber.org/zap"
)

// eventIDPrefix marks event IDs produced without a real calendar behind them
const eventIDPrefix = "demo_event_"

// simulatedProvider implements Provider with timed delays in place of network calls
type simulatedProvider struct {
	connectDelay time.Duration
	createDelay  time.Duration
	clock        clock.Clock
	logger       *zap.Logger

	mu        sync.RWMutex
	connected bool
}

// NewSimulated creates a provider that always connects and invents event IDs
func NewSimulated(cfg *SimulatedConfig) (*simulatedProvider, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &simulatedProvider{
		connectDelay: cfg.ConnectDelay,
		createDelay:  cfg.CreateDelay,
		clock:        cfg.Clock,
		logger:       logger.OrNop(cfg.Logger).Named("calendar"),
	}, nil
}

// wait suspends for the delay, or until the context is done
func (p *simulatedProvider) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-p.clock.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Connect waits out the simulated authorization and marks the provider connected
func (p *simulatedProvider) Connect(ctx context.Context) error {
	if p.IsConnected() {
		return nil
	}

	if err := p.wait(ctx, p.connectDelay); err != nil {
		p.logger.Warn("calendar connection failed", zap.Error(err))
		return &ProviderError{Op: OpConnect, Err: err}
	}

	p.mu.Lock()
	p.connected = true
	p.mu.Unlock()

	p.logger.Info("calendar connected", zap.Bool("simulated", true))
	return nil
}

// IsConnected reports whether Connect has succeeded
func (p *simulatedProvider) IsConnected() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.connected
}

// CreateEvent logs the event it would have created and returns a demo event ID
func (p *simulatedProvider) CreateEvent(ctx context.Context, input *CreateEventInput) (*CreateEventOutput, error) {
	if !p.IsConnected() {
		return nil, ErrNotConnected
	}
	if input == nil || input.Event == nil {
		return nil, ErrNilEvent
	}

	if err := p.wait(ctx, p.createDelay); err != nil {
		p.logger.Warn("calendar event creation failed", zap.Error(err))
		return nil, &ProviderError{Op: OpCreateEvent, Err: err}
	}

	event := input.Event
	eventID := fmt.Sprintf("%s%d", eventIDPrefix, p.clock.Now().UnixMilli())

	attendees := make([]string, 0, len(event.Attendees))
	for _, a := range event.Attendees {
		attendees = append(attendees, a.Email)
	}

	p.logger.Info("would create calendar event",
		zap.String("event_id", eventID),
		zap.String("title", event.Title),
		zap.String("location", event.Location),
		zap.Time("start", event.Start),
		zap.Time("end", event.End),
		zap.String("time_zone", event.TimeZone),
		zap.Strings("attendees", attendees),
		zap.Int("reminders", len(event.Reminders)),
	)

	return &CreateEventOutput{
		EventID: eventID,
	}, nil
}
