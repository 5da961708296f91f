package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/KirkDiggler/sessionsync/internal/common/clock"
	"github.com/KirkDiggler/sessionsync/internal/models"
	availabilityRepo "github.com/KirkDiggler/sessionsync/internal/repositories/availability"
	sessionRepo "github.com/KirkDiggler/sessionsync/internal/repositories/session"
	"github.com/KirkDiggler/sessionsync/internal/roster"
	"github.com/KirkDiggler/sessionsync/internal/services/calendar"
	"github.com/KirkDiggler/sessionsync/internal/services/messaging"
	"go.uber.org/zap"
)

// service implements the Service interface
type service struct {
	threshold     int
	slotTimes     []string
	upcomingDays  int
	sessionLength time.Duration
	location      *time.Location
	eventTitle    string
	eventLocation string
	reminders     []models.Reminder
	simulated     bool

	roster           *roster.Roster
	availabilityRepo availabilityRepo.Repository
	sessionRepo      sessionRepo.Repository
	calendar         calendar.Provider
	messaging        messaging.Service
	clock            clock.Clock
	logger           *zap.Logger

	// views maps a viewer to the member they are acting as
	viewsMu sync.RWMutex
	views   map[string]string

	observersMu    sync.RWMutex
	observers      map[int]Observer
	nextObserverID int
}

// New creates a new scheduler service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Roster == nil {
		return nil, ErrNilRoster
	}
	if cfg.AvailabilityRepo == nil {
		return nil, ErrNilAvailabilityRepo
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.Calendar == nil {
		return nil, ErrNilCalendar
	}
	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	s := &service{
		threshold:        cfg.Threshold,
		slotTimes:        cfg.SlotTimes,
		upcomingDays:     cfg.UpcomingDays,
		sessionLength:    cfg.SessionLength,
		location:         cfg.Location,
		eventTitle:       cfg.EventTitle,
		eventLocation:    cfg.EventLocation,
		reminders:        cfg.Reminders,
		simulated:        cfg.SimulatedCalendar,
		roster:           cfg.Roster,
		availabilityRepo: cfg.AvailabilityRepo,
		sessionRepo:      cfg.SessionRepo,
		calendar:         cfg.Calendar,
		messaging:        cfg.Messaging,
		clock:            cfg.Clock,
		logger:           cfg.Logger,
		views:            make(map[string]string),
		observers:        make(map[int]Observer),
	}

	if s.threshold <= 0 {
		s.threshold = DefaultThreshold
	}
	if len(s.slotTimes) == 0 {
		s.slotTimes = []string{DefaultSlotTime}
	}
	for _, t := range s.slotTimes {
		if _, err := time.Parse(models.TimeLayout, t); err != nil {
			return nil, fmt.Errorf("%w: slot time %q", ErrInvalidSlot, t)
		}
	}
	if s.upcomingDays <= 0 {
		s.upcomingDays = DefaultUpcomingDays
	}
	if s.sessionLength <= 0 {
		s.sessionLength = DefaultSessionLength
	}
	if s.location == nil {
		s.location = time.UTC
	}
	if s.eventTitle == "" {
		s.eventTitle = DefaultEventTitle
	}
	if s.eventLocation == "" {
		s.eventLocation = DefaultEventLocation
	}
	if s.reminders == nil {
		s.reminders = DefaultReminders()
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	s.logger = s.logger.Named("scheduler")

	return s, nil
}

// SwitchView changes which roster member a viewer is marking availability for
func (s *service) SwitchView(ctx context.Context, input *SwitchViewInput) (*SwitchViewOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.ViewerID == "" {
		return nil, ErrMissingViewerID
	}

	member, ok := s.roster.Get(input.MemberID)
	if !ok {
		return nil, ErrMemberNotFound
	}

	s.viewsMu.Lock()
	s.views[input.ViewerID] = member.ID
	s.viewsMu.Unlock()

	s.logger.Debug("view switched",
		zap.String("viewer_id", input.ViewerID),
		zap.String("member_id", member.ID))

	return &SwitchViewOutput{Member: member}, nil
}

// GetView returns the member a viewer is currently acting as
func (s *service) GetView(ctx context.Context, input *GetViewInput) (*GetViewOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.ViewerID == "" {
		return nil, ErrMissingViewerID
	}

	return &GetViewOutput{Member: s.currentMember(input.ViewerID)}, nil
}

// currentMember defaults to the first roster member for new viewers
func (s *service) currentMember(viewerID string) models.Member {
	s.viewsMu.RLock()
	memberID, ok := s.views[viewerID]
	s.viewsMu.RUnlock()

	if ok {
		if member, found := s.roster.Get(memberID); found {
			return member
		}
	}
	return s.roster.First()
}

// ToggleAvailability flips a member's availability for a slot
func (s *service) ToggleAvailability(ctx context.Context, input *ToggleAvailabilityInput) (*ToggleAvailabilityOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if !s.roster.Contains(input.MemberID) {
		return nil, ErrMemberNotFound
	}

	slot, err := parseSlot(input.Date, input.Time)
	if err != nil {
		return nil, err
	}

	toggled, err := s.availabilityRepo.Toggle(ctx, &availabilityRepo.ToggleInput{
		MemberID: input.MemberID,
		Slot:     slot,
	})
	if err != nil {
		return nil, fmt.Errorf("toggle availability: %w", err)
	}

	members, err := s.availableMembers(ctx, slot)
	if err != nil {
		return nil, err
	}

	existing, err := s.existingSession(ctx, slot)
	if err != nil {
		return nil, err
	}

	s.logger.Info("availability toggled",
		zap.String("member_id", input.MemberID),
		zap.String("slot", slot.Key()),
		zap.Bool("available", toggled.Available),
		zap.Int("available_count", len(members)))

	s.publish(ctx, &Event{
		Type:       EventAvailabilityToggled,
		OccurredAt: s.clock.Now(),
		MemberID:   input.MemberID,
		Slot:       slot,
		Available:  toggled.Available,
	})

	return &ToggleAvailabilityOutput{
		Available:      toggled.Available,
		AvailableCount: len(members),
		Creatable:      s.creatable(members, existing),
	}, nil
}

// IsAvailable reports whether a member is available for a slot
func (s *service) IsAvailable(ctx context.Context, input *IsAvailableInput) (*IsAvailableOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	slot, err := parseSlot(input.Date, input.Time)
	if err != nil {
		return nil, err
	}

	available, err := s.availabilityRepo.IsAvailable(ctx, &availabilityRepo.IsAvailableInput{
		MemberID: input.MemberID,
		Slot:     slot,
	})
	if err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}

	return &IsAvailableOutput{Available: available}, nil
}

// GetAvailableMembers returns the members available for a slot in roster order
func (s *service) GetAvailableMembers(ctx context.Context, input *GetAvailableMembersInput) (*GetAvailableMembersOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	slot, err := parseSlot(input.Date, input.Time)
	if err != nil {
		return nil, err
	}

	members, err := s.availableMembers(ctx, slot)
	if err != nil {
		return nil, err
	}

	return &GetAvailableMembersOutput{Members: members}, nil
}

func (s *service) availableMembers(ctx context.Context, slot models.Slot) ([]models.Member, error) {
	out, err := s.availabilityRepo.GetAvailableMemberIDs(ctx, &availabilityRepo.GetAvailableMemberIDsInput{Slot: slot})
	if err != nil {
		return nil, fmt.Errorf("get available members: %w", err)
	}

	ids := make(map[string]bool, len(out.MemberIDs))
	for _, id := range out.MemberIDs {
		ids[id] = true
	}
	return s.roster.Filter(ids), nil
}

// CanCreateSession reports whether a slot has reached the session threshold
func (s *service) CanCreateSession(ctx context.Context, input *CanCreateSessionInput) (*CanCreateSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	slot, err := parseSlot(input.Date, input.Time)
	if err != nil {
		return nil, err
	}

	members, err := s.availableMembers(ctx, slot)
	if err != nil {
		return nil, err
	}

	existing, err := s.existingSession(ctx, slot)
	if err != nil {
		return nil, err
	}

	return &CanCreateSessionOutput{
		Creatable:        s.creatable(members, existing),
		AvailableMembers: members,
		Existing:         existing,
	}, nil
}

// creatable holds when enough members are free and the slot has no session yet
func (s *service) creatable(members []models.Member, existing *models.Session) bool {
	return len(members) >= s.threshold && existing == nil
}

func (s *service) existingSession(ctx context.Context, slot models.Slot) (*models.Session, error) {
	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{SessionID: slot.Key()})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return session, nil
}

// CreateSession records a session for a slot and invites its members when the calendar is connected.
// An existing session for the slot is replaced and moves to the end of the list.
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	slot, err := parseSlot(input.Date, input.Time)
	if err != nil {
		return nil, err
	}

	members := input.Members
	if members == nil {
		members, err = s.availableMembers(ctx, slot)
		if err != nil {
			return nil, err
		}
	}
	seen := make(map[string]bool, len(members))
	for _, m := range members {
		if !s.roster.Contains(m.ID) {
			return nil, fmt.Errorf("%w: %s", ErrMemberNotFound, m.ID)
		}
		if seen[m.ID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateMember, m.ID)
		}
		seen[m.ID] = true
	}
	if len(members) < s.threshold {
		return nil, ErrNotEnoughMembers
	}

	snapshot := make([]models.Member, len(members))
	copy(snapshot, members)

	session := &models.Session{
		ID:        slot.Key(),
		Date:      slot.Date,
		Time:      slot.Time,
		Members:   snapshot,
		CreatedAt: s.clock.Now(),
		Status:    models.SessionStatusScheduled,
	}

	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: session}); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.logger.Info("session scheduled",
		zap.String("session_id", session.ID),
		zap.Int("members", len(session.Members)))

	s.publish(ctx, &Event{
		Type:       EventSessionScheduled,
		OccurredAt: session.CreatedAt,
		Slot:       slot,
		Session:    session,
	})

	output := &CreateSessionOutput{Session: session.Clone()}

	if !s.calendar.IsConnected() {
		start, end, err := s.window(session)
		if err != nil {
			return nil, err
		}
		msg, err := s.messaging.GetSessionScheduledMessage(ctx, &messaging.GetSessionScheduledMessageInput{
			Session: session,
			Start:   start,
			End:     end,
		})
		if err != nil {
			return nil, err
		}
		output.Notice = msg.Notice
		return output, nil
	}

	invited, notice, err := s.sendInvite(ctx, session)
	if err != nil {
		s.logger.Error("calendar invite failed",
			zap.String("session_id", session.ID),
			zap.Error(err))

		output.InviteErr = err
		output.Notice = s.errorNotice(ctx, err)
		return output, nil
	}

	output.Session = invited
	output.Invited = true
	output.Notice = notice
	return output, nil
}

// ResendInvite creates a fresh calendar event for an existing session
func (s *service) ResendInvite(ctx context.Context, input *ResendInviteInput) (*ResendInviteOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{SessionID: input.SessionID})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) || errors.Is(err, sessionRepo.ErrMissingSessionID) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	if !s.calendar.IsConnected() {
		return nil, calendar.ErrNotConnected
	}

	invited, notice, err := s.sendInvite(ctx, session)
	if err != nil {
		s.logger.Error("calendar invite resend failed",
			zap.String("session_id", session.ID),
			zap.Error(err))
		return nil, err
	}

	return &ResendInviteOutput{Session: invited, Notice: notice}, nil
}

// sendInvite creates the calendar event and records its ID on the session
func (s *service) sendInvite(ctx context.Context, session *models.Session) (*models.Session, messaging.Notice, error) {
	event, err := s.buildEvent(session)
	if err != nil {
		return nil, messaging.Notice{}, err
	}

	created, err := s.calendar.CreateEvent(ctx, &calendar.CreateEventInput{Event: event})
	if err != nil {
		var providerErr *calendar.ProviderError
		if errors.Is(err, calendar.ErrNotConnected) || errors.As(err, &providerErr) {
			return nil, messaging.Notice{}, err
		}
		return nil, messaging.Notice{}, &calendar.ProviderError{Op: calendar.OpCreateEvent, Err: err}
	}

	updated, err := s.sessionRepo.SetCalendarEventID(ctx, &sessionRepo.SetCalendarEventIDInput{
		SessionID:       session.ID,
		CalendarEventID: created.EventID,
	})
	if err != nil {
		return nil, messaging.Notice{}, fmt.Errorf("record calendar event: %w", err)
	}

	s.logger.Info("calendar invite sent",
		zap.String("session_id", updated.ID),
		zap.String("event_id", updated.CalendarEventID),
		zap.Int("attendees", len(event.Attendees)))

	s.publish(ctx, &Event{
		Type:       EventSessionInvited,
		OccurredAt: s.clock.Now(),
		Slot:       updated.Slot(),
		Session:    updated,
	})

	msg, err := s.messaging.GetCalendarEventCreatedMessage(ctx, &messaging.GetCalendarEventCreatedMessageInput{
		Session:   updated,
		Event:     event,
		Simulated: s.simulated,
	})
	if err != nil {
		return nil, messaging.Notice{}, err
	}

	return updated, msg.Notice, nil
}

func (s *service) errorNotice(ctx context.Context, err error) messaging.Notice {
	msg, msgErr := s.messaging.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		return messaging.Notice{Title: "Something Went Wrong", Message: err.Error()}
	}
	return msg.Notice
}

// ConnectCalendar connects the calendar provider
func (s *service) ConnectCalendar(ctx context.Context, input *ConnectCalendarInput) (*ConnectCalendarOutput, error) {
	output := &ConnectCalendarOutput{}

	if s.calendar.IsConnected() {
		output.AlreadyConnected = true
	} else {
		if err := s.calendar.Connect(ctx); err != nil {
			s.logger.Error("calendar connect failed", zap.Error(err))
			return nil, err
		}

		s.logger.Info("calendar connected", zap.Bool("simulated", s.simulated))

		s.publish(ctx, &Event{
			Type:       EventCalendarConnected,
			OccurredAt: s.clock.Now(),
		})
	}

	msg, err := s.messaging.GetCalendarConnectedMessage(ctx, &messaging.GetCalendarConnectedMessageInput{
		Simulated: s.simulated,
	})
	if err != nil {
		return nil, err
	}
	output.Notice = msg.Notice

	return output, nil
}

// ListSessions returns the scheduled sessions in creation order
func (s *service) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	out, err := s.sessionRepo.ListSessions(ctx, &sessionRepo.ListSessionsInput{})
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	return &ListSessionsOutput{
		Sessions:          out.Sessions,
		CalendarConnected: s.calendar.IsConnected(),
	}, nil
}

// GetBoard returns the availability grid for the upcoming days starting today in the display time zone
func (s *service) GetBoard(ctx context.Context, input *GetBoardInput) (*GetBoardOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.ViewerID == "" {
		return nil, ErrMissingViewerID
	}

	member := s.currentMember(input.ViewerID)

	sessions, err := s.sessionRepo.ListSessions(ctx, &sessionRepo.ListSessionsInput{})
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	byID := make(map[string]*models.Session, len(sessions.Sessions))
	for _, session := range sessions.Sessions {
		byID[session.ID] = session
	}

	now := s.clock.Now().In(s.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)

	cells := make([]*BoardCell, 0, s.upcomingDays*len(s.slotTimes))
	for day := 0; day < s.upcomingDays; day++ {
		date := today.AddDate(0, 0, day).Format(models.DateLayout)
		for _, t := range s.slotTimes {
			slot := models.Slot{Date: date, Time: t}

			start, err := slot.Start(s.location)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidSlot, err)
			}

			members, err := s.availableMembers(ctx, slot)
			if err != nil {
				return nil, err
			}

			existing := byID[slot.Key()]
			cell := &BoardCell{
				Slot:             slot,
				Start:            start,
				AvailableMembers: members,
				Creatable:        s.creatable(members, existing),
				Session:          existing,
			}
			for _, m := range members {
				if m.ID == member.ID {
					cell.CurrentAvailable = true
					break
				}
			}
			cells = append(cells, cell)
		}
	}

	return &GetBoardOutput{
		Member:            member,
		Roster:            s.roster.Members(),
		Threshold:         s.threshold,
		Cells:             cells,
		CalendarConnected: s.calendar.IsConnected(),
	}, nil
}

func parseSlot(date, clockTime string) (models.Slot, error) {
	slot, err := models.ParseSlot(date, clockTime)
	if err != nil {
		return models.Slot{}, fmt.Errorf("%w: %v", ErrInvalidSlot, err)
	}
	return slot, nil
}
