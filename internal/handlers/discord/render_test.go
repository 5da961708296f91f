package discord

import (
	"fmt"
	"testing"
	"time"

	"github.com/KirkDiggler/sessionsync/internal/models"
	"github.com/KirkDiggler/sessionsync/internal/roster"
	"github.com/KirkDiggler/sessionsync/internal/services/scheduler"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotValue(t *testing.T) {
	slot := models.Slot{Date: "2024-06-01", Time: "19:00"}

	parsed, err := parseSlotValue(slotValue(slot))
	require.NoError(t, err)
	assert.Equal(t, slot, parsed)

	_, err = parseSlotValue("2024-06-01 19:00")
	assert.ErrorIs(t, err, errMalformedSlotValue)

	_, err = parseSlotValue("2024-13-01|19:00")
	assert.ErrorIs(t, err, models.ErrInvalidSlot)
}

func TestInviteCustomID(t *testing.T) {
	id, ok := parseInviteCustomID(inviteCustomID("2024-06-01-19:00"))
	require.True(t, ok)
	assert.Equal(t, "2024-06-01-19:00", id)

	_, ok = parseInviteCustomID("invite:")
	assert.False(t, ok)

	_, ok = parseInviteCustomID(ButtonConnect)
	assert.False(t, ok)
}

func testBoard(t *testing.T) *scheduler.GetBoardOutput {
	t.Helper()

	members := roster.Default().Members()
	start := time.Date(2024, 6, 1, 19, 0, 0, 0, time.UTC)

	return &scheduler.GetBoardOutput{
		Member:    members[1],
		Roster:    members,
		Threshold: 3,
		Cells: []*scheduler.BoardCell{
			{
				Slot:             models.Slot{Date: "2024-06-01", Time: "19:00"},
				Start:            start,
				CurrentAvailable: true,
				AvailableMembers: members[:3],
				Creatable:        true,
			},
			{
				Slot:             models.Slot{Date: "2024-06-02", Time: "19:00"},
				Start:            start.AddDate(0, 0, 1),
				AvailableMembers: members[3:4],
			},
			{
				Slot:             models.Slot{Date: "2024-06-03", Time: "19:00"},
				Start:            start.AddDate(0, 0, 2),
				AvailableMembers: members[:3],
				Session: &models.Session{
					ID:              "2024-06-03-19:00",
					Date:            "2024-06-03",
					Time:            "19:00",
					Members:         members[:3],
					CalendarEventID: "demo_event_1",
				},
			},
		},
	}
}

func TestRenderBoard(t *testing.T) {
	board := testBoard(t)

	embed, components := renderBoard(board)

	assert.Contains(t, embed.Description, "Viewing as **Clay** (Guitar)")
	assert.Contains(t, embed.Footer.Text, "not connected")
	require.Len(t, embed.Fields, 3)
	assert.Equal(t, "Sat Jun 1, 7:00 PM", embed.Fields[0].Name)
	assert.Equal(t, "✅ You're in\n👥 3/6: Josh, Clay, Dan\n🎵 Ready to schedule", embed.Fields[0].Value)
	assert.Equal(t, "⬜ Not marked\n👥 1/6: Matt\nNeeds 2 more", embed.Fields[1].Value)
	assert.Contains(t, embed.Fields[2].Value, "📅 Scheduled, invite sent")

	// view, availability, schedule, buttons
	require.Len(t, components, 4)

	view := components[0].(discordgo.ActionsRow).Components[0].(discordgo.SelectMenu)
	assert.Equal(t, SelectView, view.CustomID)
	require.Len(t, view.Options, 6)
	assert.True(t, view.Options[1].Default)
	assert.False(t, view.Options[0].Default)

	availability := components[1].(discordgo.ActionsRow).Components[0].(discordgo.SelectMenu)
	assert.Equal(t, SelectAvailability, availability.CustomID)
	require.NotNil(t, availability.MinValues)
	assert.Equal(t, 0, *availability.MinValues)
	assert.Equal(t, 3, availability.MaxValues)
	assert.True(t, availability.Options[0].Default)
	assert.Equal(t, "2024-06-02|19:00", availability.Options[1].Value)

	schedule := components[2].(discordgo.ActionsRow).Components[0].(discordgo.SelectMenu)
	assert.Equal(t, SelectSchedule, schedule.CustomID)
	require.Len(t, schedule.Options, 1)
	assert.Equal(t, "2024-06-01|19:00", schedule.Options[0].Value)
	assert.Equal(t, "Josh, Clay, Dan", schedule.Options[0].Description)

	buttons := components[3].(discordgo.ActionsRow).Components
	require.Len(t, buttons, 3)
	connect := buttons[2].(discordgo.Button)
	assert.Equal(t, ButtonConnect, connect.CustomID)
	assert.False(t, connect.Disabled)
}

func TestRenderBoard_NothingCreatable(t *testing.T) {
	board := testBoard(t)
	board.Cells[0].Creatable = false
	board.CalendarConnected = true

	embed, components := renderBoard(board)

	assert.Contains(t, embed.Footer.Text, "Calendar connected")
	require.Len(t, components, 3)

	buttons := components[2].(discordgo.ActionsRow).Components
	assert.True(t, buttons[2].(discordgo.Button).Disabled)
}

func testSessions(count int) []*models.Session {
	members := roster.Default().Members()

	var sessions []*models.Session
	for day := 1; day <= count; day++ {
		date := fmt.Sprintf("2024-07-%02d", day)
		sessions = append(sessions, &models.Session{
			ID:      date + "-19:00",
			Date:    date,
			Time:    "19:00",
			Members: members[:3],
		})
	}
	return sessions
}

func TestRenderSessions(t *testing.T) {
	sessions := testSessions(7)
	sessions[0].CalendarEventID = "demo_event_1"

	embed, components := renderSessions(&scheduler.ListSessionsOutput{Sessions: sessions}, 0)

	assert.Len(t, embed.Fields, 7)
	assert.Nil(t, embed.Footer)
	assert.Equal(t, "Mon Jul 1, 7:00 PM", embed.Fields[0].Name)
	assert.Equal(t, "Members: Josh, Clay, Dan\nInvite: sent (`demo_event_1`)", embed.Fields[0].Value)
	assert.Contains(t, embed.Fields[1].Value, "Invite: not sent")

	// two rows of invite buttons and the controls row
	require.Len(t, components, 3)
	first := components[0].(discordgo.ActionsRow).Components
	require.Len(t, first, maxButtonsPerRow)
	assert.Equal(t, "invite:2024-07-01-19:00", first[0].(discordgo.Button).CustomID)
	assert.Equal(t, "Resend Invite 2024-07-01", first[0].(discordgo.Button).Label)
	assert.Equal(t, "Send Invite 2024-07-02", first[1].(discordgo.Button).Label)
	assert.Len(t, components[1].(discordgo.ActionsRow).Components, 2)

	controls := components[2].(discordgo.ActionsRow).Components
	require.Len(t, controls, 1)
	assert.Equal(t, ButtonConnect, controls[0].(discordgo.Button).CustomID)
}

func TestRenderSessions_PagesKeepEveryInviteReachable(t *testing.T) {
	sessions := testSessions(22)
	list := &scheduler.ListSessionsOutput{Sessions: sessions}

	embed, components := renderSessions(list, 0)
	require.Len(t, embed.Fields, sessionsPerPage)
	assert.Equal(t, "Page 1 of 2 (22 sessions)", embed.Footer.Text)
	require.Len(t, components, maxInviteRows+1)

	controls := components[maxInviteRows].(discordgo.ActionsRow).Components
	require.Len(t, controls, 3)
	prev := controls[0].(discordgo.Button)
	next := controls[2].(discordgo.Button)
	assert.True(t, prev.Disabled)
	assert.False(t, next.Disabled)
	assert.Equal(t, ButtonConnect, controls[1].(discordgo.Button).CustomID)

	page, ok := parseSessionsPageCustomID(next.CustomID)
	require.True(t, ok)
	assert.Equal(t, 1, page)

	embed, components = renderSessions(list, page)
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "Sun Jul 21, 7:00 PM", embed.Fields[0].Name)
	assert.Equal(t, "Page 2 of 2 (22 sessions)", embed.Footer.Text)
	require.Len(t, components, 2)

	invites := components[0].(discordgo.ActionsRow).Components
	require.Len(t, invites, 2)
	assert.Equal(t, "invite:2024-07-21-19:00", invites[0].(discordgo.Button).CustomID)
	assert.Equal(t, "invite:2024-07-22-19:00", invites[1].(discordgo.Button).CustomID)

	controls = components[1].(discordgo.ActionsRow).Components
	assert.False(t, controls[0].(discordgo.Button).Disabled)
	assert.True(t, controls[2].(discordgo.Button).Disabled)

	// a stale page number is clamped to the last page
	embed, _ = renderSessions(list, 9)
	assert.Equal(t, "Page 2 of 2 (22 sessions)", embed.Footer.Text)
}

func TestRenderSessions_Empty(t *testing.T) {
	embed, components := renderSessions(&scheduler.ListSessionsOutput{CalendarConnected: true}, 0)

	assert.Equal(t, "No sessions scheduled yet.", embed.Description)
	assert.Empty(t, embed.Fields)
	require.Len(t, components, 1)
}

func TestSessionsPageCustomID(t *testing.T) {
	page, ok := parseSessionsPageCustomID(sessionsPageCustomID(3))
	require.True(t, ok)
	assert.Equal(t, 3, page)

	_, ok = parseSessionsPageCustomID("sessions:-1")
	assert.False(t, ok)

	_, ok = parseSessionsPageCustomID(ButtonSessions)
	assert.False(t, ok)
}

func TestAvailabilityChanges(t *testing.T) {
	board := testBoard(t)

	// deselect the first slot and select the second
	changes := availabilityChanges(board, map[string]bool{"2024-06-02|19:00": true})

	assert.Equal(t, []models.Slot{
		{Date: "2024-06-01", Time: "19:00"},
		{Date: "2024-06-02", Time: "19:00"},
	}, changes)

	assert.Empty(t, availabilityChanges(board, map[string]bool{"2024-06-01|19:00": true}))
}
