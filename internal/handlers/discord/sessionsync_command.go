package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/sessionsync/internal/models"
	"github.com/KirkDiggler/sessionsync/internal/services/messaging"
	"github.com/KirkDiggler/sessionsync/internal/services/scheduler"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Subcommands of /sessionsync
const (
	SubcommandBoard    = "board"
	SubcommandView     = "view"
	SubcommandToggle   = "toggle"
	SubcommandSchedule = "schedule"
	SubcommandSessions = "sessions"
	SubcommandConnect  = "connect"
)

var (
	errUnknownSubcommand = errors.New("unknown subcommand")
	errUnknownComponent  = errors.New("unknown component")
	errMissingUser       = errors.New("interaction has no user")
	errNoSelection       = errors.New("nothing selected")
)

// SessionSyncCommand handles the /sessionsync command and the components on its messages
type SessionSyncCommand struct {
	BaseCommand
	scheduler scheduler.Service
	messaging messaging.Service
	logger    *zap.Logger
}

// NewSessionSyncCommand creates a new sessionsync command handler
func NewSessionSyncCommand(schedulerService scheduler.Service, messagingService messaging.Service, members []models.Member, logger *zap.Logger) *SessionSyncCommand {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(members))
	for i, m := range members {
		if i == maxSelectOptions {
			break
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  fmt.Sprintf("%s (%s)", m.Name, m.Instrument),
			Value: m.ID,
		})
	}

	slotOptions := []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "date",
			Description: "Date as YYYY-MM-DD",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "time",
			Description: "Start time as HH:MM",
			Required:    true,
		},
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &SessionSyncCommand{
		BaseCommand: BaseCommand{
			Name:        "sessionsync",
			Description: "Find a rehearsal time that works for the band",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandBoard,
					Description: "Show the availability board",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandView,
					Description: "Choose which band member you are",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "member",
							Description: "Band member",
							Required:    true,
							Choices:     choices,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandToggle,
					Description: "Toggle whether you can make a slot",
					Options:     slotOptions,
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandSchedule,
					Description: "Schedule a session for a slot",
					Options:     slotOptions,
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandSessions,
					Description: "List scheduled sessions",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandConnect,
					Description: "Connect the band calendar",
				},
			},
		},
		scheduler: schedulerService,
		messaging: messagingService,
		logger:    logger,
	}
}

// Handle processes a Discord interaction for the sessionsync command
func (c *SessionSyncCommand) Handle(ctx context.Context, r Responder, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	viewerID := userID(i)
	if viewerID == "" {
		return errMissingUser
	}

	sub := data.Options[0]
	options := make(map[string]string, len(sub.Options))
	for _, opt := range sub.Options {
		if opt.Type == discordgo.ApplicationCommandOptionString {
			options[opt.Name] = opt.StringValue()
		}
	}

	switch sub.Name {
	case SubcommandBoard:
		return c.showBoard(ctx, r, i, viewerID, false)
	case SubcommandView:
		return c.handleView(ctx, r, i, viewerID, options["member"], false)
	case SubcommandToggle:
		return c.handleToggle(ctx, r, i, viewerID, options["date"], options["time"])
	case SubcommandSchedule:
		return c.handleSchedule(ctx, r, i, options["date"], options["time"])
	case SubcommandSessions:
		return c.showSessions(ctx, r, i, 0, false)
	case SubcommandConnect:
		return c.handleConnect(ctx, r, i)
	default:
		return fmt.Errorf("%w: %s", errUnknownSubcommand, sub.Name)
	}
}

// HandleComponent processes buttons and select menus on sessionsync messages
func (c *SessionSyncCommand) HandleComponent(ctx context.Context, r Responder, i *discordgo.InteractionCreate) error {
	data := i.MessageComponentData()

	viewerID := userID(i)
	if viewerID == "" {
		return errMissingUser
	}

	switch data.CustomID {
	case SelectView:
		if len(data.Values) == 0 {
			return c.respondError(ctx, r, i, errNoSelection)
		}
		return c.handleView(ctx, r, i, viewerID, data.Values[0], true)
	case SelectAvailability:
		return c.handleAvailability(ctx, r, i, viewerID, data.Values)
	case SelectSchedule:
		if len(data.Values) == 0 {
			return c.respondError(ctx, r, i, errNoSelection)
		}
		slot, err := parseSlotValue(data.Values[0])
		if err != nil {
			return c.respondError(ctx, r, i, err)
		}
		return c.handleSchedule(ctx, r, i, slot.Date, slot.Time)
	case ButtonRefresh:
		return c.showBoard(ctx, r, i, viewerID, true)
	case ButtonSessions:
		return c.showSessions(ctx, r, i, 0, false)
	case ButtonConnect:
		return c.handleConnect(ctx, r, i)
	}

	if sessionID, ok := parseInviteCustomID(data.CustomID); ok {
		return c.handleInvite(ctx, r, i, sessionID)
	}
	if page, ok := parseSessionsPageCustomID(data.CustomID); ok {
		return c.showSessions(ctx, r, i, page, true)
	}

	return fmt.Errorf("%w: %s", errUnknownComponent, data.CustomID)
}

// showBoard sends the board, or redraws it in place when update is set
func (c *SessionSyncCommand) showBoard(ctx context.Context, r Responder, i *discordgo.InteractionCreate, viewerID string, update bool) error {
	board, err := c.scheduler.GetBoard(ctx, &scheduler.GetBoardInput{ViewerID: viewerID})
	if err != nil {
		c.logger.Error("failed to build board", zap.String("viewer_id", viewerID), zap.Error(err))
		return c.respondError(ctx, r, i, err)
	}

	embed, components := renderBoard(board)
	if update {
		return UpdateWithEmbed(r, i, embed, components)
	}
	return RespondWithEphemeralEmbed(r, i, embed, components)
}

func (c *SessionSyncCommand) handleView(ctx context.Context, r Responder, i *discordgo.InteractionCreate, viewerID, memberID string, update bool) error {
	_, err := c.scheduler.SwitchView(ctx, &scheduler.SwitchViewInput{
		ViewerID: viewerID,
		MemberID: memberID,
	})
	if err != nil {
		return c.respondError(ctx, r, i, err)
	}
	return c.showBoard(ctx, r, i, viewerID, update)
}

func (c *SessionSyncCommand) handleToggle(ctx context.Context, r Responder, i *discordgo.InteractionCreate, viewerID, date, clockTime string) error {
	view, err := c.scheduler.GetView(ctx, &scheduler.GetViewInput{ViewerID: viewerID})
	if err != nil {
		return c.respondError(ctx, r, i, err)
	}

	out, err := c.scheduler.ToggleAvailability(ctx, &scheduler.ToggleAvailabilityInput{
		MemberID: view.Member.ID,
		Date:     date,
		Time:     clockTime,
	})
	if err != nil {
		return c.respondError(ctx, r, i, err)
	}

	status := fmt.Sprintf("**%s** is no longer marked for %s %s.", view.Member.Name, date, clockTime)
	if out.Available {
		status = fmt.Sprintf("**%s** is in for %s %s.", view.Member.Name, date, clockTime)
	}
	status += fmt.Sprintf("\n%d available.", out.AvailableCount)
	if out.Creatable {
		status += " Ready to schedule!"
	}

	return RespondWithEphemeralEmbed(r, i, &discordgo.MessageEmbed{
		Title:       "Availability Updated",
		Description: status,
		Color:       colorSuccess,
	}, nil)
}

// handleAvailability toggles every listed slot whose selection differs from the viewer's current marks
func (c *SessionSyncCommand) handleAvailability(ctx context.Context, r Responder, i *discordgo.InteractionCreate, viewerID string, values []string) error {
	board, err := c.scheduler.GetBoard(ctx, &scheduler.GetBoardInput{ViewerID: viewerID})
	if err != nil {
		return c.respondError(ctx, r, i, err)
	}

	selected := make(map[string]bool, len(values))
	for _, v := range values {
		selected[v] = true
	}

	for _, slot := range availabilityChanges(board, selected) {
		_, err := c.scheduler.ToggleAvailability(ctx, &scheduler.ToggleAvailabilityInput{
			MemberID: board.Member.ID,
			Date:     slot.Date,
			Time:     slot.Time,
		})
		if err != nil {
			c.logger.Error("failed to toggle availability",
				zap.String("member_id", board.Member.ID),
				zap.String("slot", slot.Key()),
				zap.Error(err))
			return c.respondError(ctx, r, i, err)
		}
	}

	return c.showBoard(ctx, r, i, viewerID, true)
}

// availabilityChanges returns the slots offered in the select whose state the selection flips
func availabilityChanges(board *scheduler.GetBoardOutput, selected map[string]bool) []models.Slot {
	cells := board.Cells
	if len(cells) > maxSelectOptions {
		cells = cells[:maxSelectOptions]
	}

	var changes []models.Slot
	for _, cell := range cells {
		if selected[slotValue(cell.Slot)] != cell.CurrentAvailable {
			changes = append(changes, cell.Slot)
		}
	}
	return changes
}

// handleSchedule schedules the slot with whoever is available right now
func (c *SessionSyncCommand) handleSchedule(ctx context.Context, r Responder, i *discordgo.InteractionCreate, date, clockTime string) error {
	can, err := c.scheduler.CanCreateSession(ctx, &scheduler.CanCreateSessionInput{Date: date, Time: clockTime})
	if err != nil {
		return c.respondError(ctx, r, i, err)
	}
	if can.Existing != nil {
		return RespondWithError(r, i, "Already Scheduled",
			"A session is already scheduled for that slot. Use `/sessionsync sessions` to resend its invite.")
	}
	if !can.Creatable {
		return c.respondError(ctx, r, i, scheduler.ErrNotEnoughMembers)
	}

	if err := DeferEphemeral(r, i); err != nil {
		return err
	}

	out, err := c.scheduler.CreateSession(ctx, &scheduler.CreateSessionInput{
		Date:    date,
		Time:    clockTime,
		Members: can.AvailableMembers,
	})
	if err != nil {
		c.logger.Error("failed to schedule session", zap.String("date", date), zap.String("time", clockTime), zap.Error(err))
		return EditDeferred(r, i, c.errorEmbed(ctx, err), nil)
	}

	embed, components := renderCreateSession(out)
	return EditDeferred(r, i, embed, components)
}

// showSessions sends a page of the session list, or flips the page in place when update is set
func (c *SessionSyncCommand) showSessions(ctx context.Context, r Responder, i *discordgo.InteractionCreate, page int, update bool) error {
	list, err := c.scheduler.ListSessions(ctx, &scheduler.ListSessionsInput{})
	if err != nil {
		c.logger.Error("failed to list sessions", zap.Error(err))
		return c.respondError(ctx, r, i, err)
	}

	embed, components := renderSessions(list, page)
	if update {
		return UpdateWithEmbed(r, i, embed, components)
	}
	return RespondWithEphemeralEmbed(r, i, embed, components)
}

func (c *SessionSyncCommand) handleConnect(ctx context.Context, r Responder, i *discordgo.InteractionCreate) error {
	if err := DeferEphemeral(r, i); err != nil {
		return err
	}

	out, err := c.scheduler.ConnectCalendar(ctx, &scheduler.ConnectCalendarInput{})
	if err != nil {
		return EditDeferred(r, i, c.errorEmbed(ctx, err), nil)
	}

	return EditDeferred(r, i, renderNotice(out.Notice, colorSuccess), nil)
}

func (c *SessionSyncCommand) handleInvite(ctx context.Context, r Responder, i *discordgo.InteractionCreate, sessionID string) error {
	if err := DeferEphemeral(r, i); err != nil {
		return err
	}

	out, err := c.scheduler.ResendInvite(ctx, &scheduler.ResendInviteInput{SessionID: sessionID})
	if err != nil {
		return EditDeferred(r, i, c.errorEmbed(ctx, err), nil)
	}

	return EditDeferred(r, i, renderNotice(out.Notice, colorSuccess), nil)
}

func (c *SessionSyncCommand) errorEmbed(ctx context.Context, err error) *discordgo.MessageEmbed {
	msg, msgErr := c.messaging.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		return renderNotice(messaging.Notice{Title: "Something Went Wrong", Message: err.Error()}, colorError)
	}
	return renderNotice(msg.Notice, colorError)
}

func (c *SessionSyncCommand) respondError(ctx context.Context, r Responder, i *discordgo.InteractionCreate, err error) error {
	return RespondWithEphemeralEmbed(r, i, c.errorEmbed(ctx, err), nil)
}
