package discord

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/sessionsync/internal/models"
	"github.com/KirkDiggler/sessionsync/internal/services/messaging"
	"github.com/KirkDiggler/sessionsync/internal/services/scheduler"
	"github.com/bwmarrin/discordgo"
)

// Component custom IDs
const (
	SelectView         = "view"
	SelectAvailability = "availability"
	SelectSchedule     = "schedule"
	ButtonConnect      = "connect"
	ButtonSessions     = "sessions"
	ButtonRefresh      = "refresh"

	// invitePrefix is followed by the session ID
	invitePrefix = "invite:"

	// sessionsPagePrefix is followed by a zero-based page number
	sessionsPagePrefix = "sessions:"
)

// Discord limits
const (
	maxSelectOptions = 25
	maxEmbedFields   = 25
	maxButtonsPerRow = 5
	maxInviteRows    = 4

	// sessionsPerPage keeps one invite button per listed session
	sessionsPerPage = maxInviteRows * maxButtonsPerRow
)

const (
	colorInfo    = 0x5865f2
	colorSuccess = 0x00ff00
	colorWarning = 0xffa500
	colorError   = 0xff0000
)

var errMalformedSlotValue = errors.New("malformed slot value")

// slotValue encodes a slot for use as a select option value
func slotValue(slot models.Slot) string {
	return slot.Date + "|" + slot.Time
}

// parseSlotValue decodes a value produced by slotValue
func parseSlotValue(value string) (models.Slot, error) {
	date, clockTime, ok := strings.Cut(value, "|")
	if !ok {
		return models.Slot{}, fmt.Errorf("%w: %q", errMalformedSlotValue, value)
	}
	return models.ParseSlot(date, clockTime)
}

func inviteCustomID(sessionID string) string {
	return invitePrefix + sessionID
}

func parseInviteCustomID(customID string) (string, bool) {
	sessionID, ok := strings.CutPrefix(customID, invitePrefix)
	if !ok || sessionID == "" {
		return "", false
	}
	return sessionID, true
}

func sessionsPageCustomID(page int) string {
	return sessionsPagePrefix + strconv.Itoa(page)
}

func parseSessionsPageCustomID(customID string) (int, bool) {
	raw, ok := strings.CutPrefix(customID, sessionsPagePrefix)
	if !ok {
		return 0, false
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 0 {
		return 0, false
	}
	return page, true
}

// slotLabel renders a slot start like "Sat Jun 1, 7:00 PM"
func slotLabel(start time.Time) string {
	return start.Format("Mon Jan 2, 3:04 PM")
}

// sessionLabel renders a session's wall-clock slot without a time zone
func sessionLabel(session *models.Session) string {
	start, err := session.Slot().Start(time.UTC)
	if err != nil {
		return session.ID
	}
	return slotLabel(start)
}

func memberNames(members []models.Member) string {
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.Name)
	}
	return strings.Join(names, ", ")
}

// renderBoard renders the availability board for one viewer
func renderBoard(board *scheduler.GetBoardOutput) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	cells := board.Cells
	if len(cells) > maxSelectOptions {
		cells = cells[:maxSelectOptions]
	}

	embed := &discordgo.MessageEmbed{
		Title: "🎸 Rehearsal Availability",
		Description: fmt.Sprintf("Viewing as **%s** (%s). Pick the days you can make it; a session can be scheduled once %d members are in.",
			board.Member.Name, board.Member.Instrument, board.Threshold),
		Color: colorInfo,
	}
	if board.CalendarConnected {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "📅 Calendar connected"}
	} else {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "Calendar not connected. Sessions are scheduled without invites."}
	}

	for i, cell := range cells {
		if i == maxEmbedFields {
			break
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  slotLabel(cell.Start),
			Value: cellSummary(cell, board.Threshold, len(board.Roster)),
		})
	}

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{viewSelect(board)}},
	}

	if len(cells) > 0 {
		components = append(components, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{availabilitySelect(cells)},
		})
	}

	if schedule, ok := scheduleSelect(cells); ok {
		components = append(components, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{schedule},
		})
	}

	components = append(components, discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Refresh",
				Style:    discordgo.SecondaryButton,
				CustomID: ButtonRefresh,
				Emoji:    &discordgo.ComponentEmoji{Name: "🔄"},
			},
			discordgo.Button{
				Label:    "Sessions",
				Style:    discordgo.SecondaryButton,
				CustomID: ButtonSessions,
				Emoji:    &discordgo.ComponentEmoji{Name: "📋"},
			},
			connectButton(board.CalendarConnected),
		},
	})

	return embed, components
}

func cellSummary(cell *scheduler.BoardCell, threshold, rosterSize int) string {
	var b strings.Builder

	if cell.CurrentAvailable {
		b.WriteString("✅ You're in\n")
	} else {
		b.WriteString("⬜ Not marked\n")
	}

	if len(cell.AvailableMembers) == 0 {
		b.WriteString("👥 Nobody yet\n")
	} else {
		fmt.Fprintf(&b, "👥 %d/%d: %s\n", len(cell.AvailableMembers), rosterSize, memberNames(cell.AvailableMembers))
	}

	switch {
	case cell.Session != nil && cell.Session.HasCalendarEvent():
		b.WriteString("📅 Scheduled, invite sent")
	case cell.Session != nil:
		b.WriteString("📅 Scheduled, no invite yet")
	case cell.Creatable:
		b.WriteString("🎵 Ready to schedule")
	default:
		fmt.Fprintf(&b, "Needs %d more", threshold-len(cell.AvailableMembers))
	}

	return b.String()
}

func viewSelect(board *scheduler.GetBoardOutput) discordgo.SelectMenu {
	options := make([]discordgo.SelectMenuOption, 0, len(board.Roster))
	for i, m := range board.Roster {
		if i == maxSelectOptions {
			break
		}
		options = append(options, discordgo.SelectMenuOption{
			Label:       m.Name,
			Value:       m.ID,
			Description: m.Instrument,
			Default:     m.ID == board.Member.ID,
		})
	}

	return discordgo.SelectMenu{
		MenuType:    discordgo.StringSelectMenu,
		CustomID:    SelectView,
		Placeholder: "Who are you?",
		Options:     options,
	}
}

// availabilitySelect lists every cell with the viewer's current marks preselected
func availabilitySelect(cells []*scheduler.BoardCell) discordgo.SelectMenu {
	options := make([]discordgo.SelectMenuOption, 0, len(cells))
	for _, cell := range cells {
		options = append(options, discordgo.SelectMenuOption{
			Label:   slotLabel(cell.Start),
			Value:   slotValue(cell.Slot),
			Default: cell.CurrentAvailable,
		})
	}

	minValues := 0
	return discordgo.SelectMenu{
		MenuType:    discordgo.StringSelectMenu,
		CustomID:    SelectAvailability,
		Placeholder: "Mark the days you can make it",
		MinValues:   &minValues,
		MaxValues:   len(options),
		Options:     options,
	}
}

// scheduleSelect lists the creatable cells, if there are any
func scheduleSelect(cells []*scheduler.BoardCell) (discordgo.SelectMenu, bool) {
	var options []discordgo.SelectMenuOption
	for _, cell := range cells {
		if !cell.Creatable {
			continue
		}
		options = append(options, discordgo.SelectMenuOption{
			Label:       slotLabel(cell.Start),
			Value:       slotValue(cell.Slot),
			Description: memberNames(cell.AvailableMembers),
			Emoji:       &discordgo.ComponentEmoji{Name: "🎵"},
		})
	}
	if len(options) == 0 {
		return discordgo.SelectMenu{}, false
	}

	return discordgo.SelectMenu{
		MenuType:    discordgo.StringSelectMenu,
		CustomID:    SelectSchedule,
		Placeholder: "Schedule a session",
		Options:     options,
	}, true
}

func connectButton(connected bool) discordgo.Button {
	if connected {
		return discordgo.Button{
			Label:    "Calendar Connected",
			Style:    discordgo.SuccessButton,
			CustomID: ButtonConnect,
			Disabled: true,
			Emoji:    &discordgo.ComponentEmoji{Name: "📅"},
		}
	}
	return discordgo.Button{
		Label:    "Connect Calendar",
		Style:    discordgo.PrimaryButton,
		CustomID: ButtonConnect,
		Emoji:    &discordgo.ComponentEmoji{Name: "📅"},
	}
}

func inviteButton(session *models.Session) discordgo.Button {
	label := "Send Invite"
	if session.HasCalendarEvent() {
		label = "Resend Invite"
	}
	return discordgo.Button{
		Label:    fmt.Sprintf("%s %s", label, session.Slot().Date),
		Style:    discordgo.PrimaryButton,
		CustomID: inviteCustomID(session.ID),
		Emoji:    &discordgo.ComponentEmoji{Name: "📨"},
	}
}

// renderSessions renders one page of scheduled sessions with an invite button each.
// Out of range pages are clamped.
func renderSessions(list *scheduler.ListSessionsOutput, page int) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	embed := &discordgo.MessageEmbed{
		Title: "📋 Scheduled Sessions",
		Color: colorInfo,
	}

	if len(list.Sessions) == 0 {
		embed.Description = "No sessions scheduled yet."
	}

	pages := (len(list.Sessions) + sessionsPerPage - 1) / sessionsPerPage
	if page >= pages {
		page = pages - 1
	}
	if page < 0 {
		page = 0
	}

	start := page * sessionsPerPage
	end := min(start+sessionsPerPage, len(list.Sessions))
	sessions := list.Sessions[start:end]

	for _, session := range sessions {
		invite := "not sent"
		if session.HasCalendarEvent() {
			invite = fmt.Sprintf("sent (`%s`)", session.CalendarEventID)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  sessionLabel(session),
			Value: fmt.Sprintf("Members: %s\nInvite: %s", memberNames(session.Members), invite),
		})
	}

	var components []discordgo.MessageComponent
	var row []discordgo.MessageComponent
	for _, session := range sessions {
		row = append(row, inviteButton(session))
		if len(row) == maxButtonsPerRow {
			components = append(components, discordgo.ActionsRow{Components: row})
			row = nil
		}
	}
	if len(row) > 0 {
		components = append(components, discordgo.ActionsRow{Components: row})
	}

	controls := []discordgo.MessageComponent{connectButton(list.CalendarConnected)}
	if pages > 1 {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Page %d of %d (%d sessions)", page+1, pages, len(list.Sessions)),
		}
		controls = append([]discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Previous",
				Style:    discordgo.SecondaryButton,
				CustomID: sessionsPageCustomID(page - 1),
				Disabled: page == 0,
			},
		}, controls...)
		controls = append(controls, discordgo.Button{
			Label:    "Next",
			Style:    discordgo.SecondaryButton,
			CustomID: sessionsPageCustomID(page + 1),
			Disabled: page == pages-1,
		})
	}
	components = append(components, discordgo.ActionsRow{Components: controls})

	return embed, components
}

// renderNotice renders a notice as an embed
func renderNotice(notice messaging.Notice, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       notice.Title,
		Description: notice.Message,
		Color:       color,
	}
}

// renderCreateSession renders the outcome of scheduling, offering a resend when the invite failed
func renderCreateSession(out *scheduler.CreateSessionOutput) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	switch {
	case out.InviteErr != nil:
		return renderNotice(out.Notice, colorWarning), []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{inviteButton(out.Session)}},
		}
	case out.Invited:
		return renderNotice(out.Notice, colorSuccess), nil
	default:
		return renderNotice(out.Notice, colorInfo), []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{connectButton(false)}},
		}
	}
}
