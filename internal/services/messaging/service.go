package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/KirkDiggler/sessionsync/internal/models"
	"github.com/KirkDiggler/sessionsync/internal/services/calendar"
)

const demoFooter = "(Demo mode: set up a calendar API for real calendar invites)"

// service implements the Service interface
type service struct {
	// Random number generator for selecting headlines. Interaction handlers run
	// concurrently, so every draw goes through pick.
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	seed := time.Now().UnixNano()
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

func (s *service) pick(options []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return options[s.rand.Intn(len(options))]
}

// GetCalendarConnectedMessage returns the notice shown once the calendar connects
func (s *service) GetCalendarConnectedMessage(ctx context.Context, input *GetCalendarConnectedMessageInput) (*GetCalendarConnectedMessageOutput, error) {
	message := "Calendar connected! Scheduled sessions will now send invites to everyone attending."
	if input != nil && input.Simulated {
		message += "\n\n" + demoFooter
	}

	return &GetCalendarConnectedMessageOutput{
		Notice: Notice{
			Title:   "Calendar Connected",
			Message: message,
		},
	}, nil
}

// GetSessionScheduledMessage returns the local notice for a session scheduled without a calendar invite
func (s *service) GetSessionScheduledMessage(ctx context.Context, input *GetSessionScheduledMessageInput) (*GetSessionScheduledMessageOutput, error) {
	if input == nil || input.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	headlines := []string{
		"🎵 Jam session scheduled!",
		"🎸 Rehearsal is on!",
		"🥁 Get the gear ready, session scheduled!",
		"🎹 It's a date, session scheduled!",
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Date: %s\n", input.Session.Date)
	fmt.Fprintf(&b, "Time: %s\n", FormatWindow(input.Start, input.End))
	fmt.Fprintf(&b, "Members: %s\n\n", memberNames(input.Session.Members))
	b.WriteString("Connect the calendar for automatic invites!")

	return &GetSessionScheduledMessageOutput{
		Notice: Notice{
			Title:   s.pick(headlines),
			Message: b.String(),
		},
	}, nil
}

// GetCalendarEventCreatedMessage returns the notice for a successful calendar invite
func (s *service) GetCalendarEventCreatedMessage(ctx context.Context, input *GetCalendarEventCreatedMessageInput) (*GetCalendarEventCreatedMessageOutput, error) {
	if input == nil || input.Session == nil || input.Event == nil {
		return nil, errors.New("session and event cannot be nil")
	}

	names := make([]string, 0, len(input.Event.Attendees))
	for _, a := range input.Event.Attendees {
		names = append(names, a.DisplayName)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n", input.Event.Title)
	fmt.Fprintf(&b, "Date: %s\n", input.Session.Date)
	fmt.Fprintf(&b, "Time: %s\n", FormatWindow(input.Event.Start, input.Event.End))
	fmt.Fprintf(&b, "Attendees: %s", strings.Join(names, ", "))
	if input.Simulated {
		b.WriteString("\n\n" + demoFooter)
	}

	return &GetCalendarEventCreatedMessageOutput{
		Notice: Notice{
			Title:   "✅ Calendar event created!",
			Message: b.String(),
		},
	}, nil
}

// GetErrorMessage returns a user-friendly message for a failed action
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, errors.New("error cannot be nil")
	}

	var providerErr *calendar.ProviderError
	var notice Notice

	switch {
	case errors.Is(input.Err, calendar.ErrNotConnected):
		notice = Notice{
			Title:   "Calendar Not Connected",
			Message: "Please connect the calendar first. Use the Connect Calendar button or `/sessionsync connect`.",
		}
	case errors.As(input.Err, &providerErr) && providerErr.Op == calendar.OpConnect:
		notice = Notice{
			Title:   "Calendar Connection Failed",
			Message: "Failed to connect to the calendar. Try connecting again in a moment.",
		}
	case errors.As(input.Err, &providerErr):
		notice = Notice{
			Title:   "Calendar Invite Failed",
			Message: fmt.Sprintf("Failed to create calendar event: %v. The session is still scheduled; you can resend the invite.", providerErr.Err),
		}
	default:
		notice = Notice{
			Title:   "Something Went Wrong",
			Message: capitalize(input.Err.Error()) + ".",
		}
	}

	return &GetErrorMessageOutput{
		Notice: notice,
	}, nil
}

// FormatWindow renders a time range the way the board shows it, e.g. "7-10 PM"
func FormatWindow(start, end time.Time) string {
	if start.IsZero() || end.IsZero() {
		return ""
	}
	if start.Format("PM") == end.Format("PM") {
		return start.Format("3") + "-" + end.Format("3 PM")
	}
	return start.Format("3 PM") + "-" + end.Format("3 PM")
}

func memberNames(members []models.Member) string {
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.Name)
	}
	return strings.Join(names, ", ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
