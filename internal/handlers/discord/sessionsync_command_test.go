package discord

import (
	"context"
	"fmt"
	"testing"

	"github.com/KirkDiggler/sessionsync/internal/models"
	"github.com/KirkDiggler/sessionsync/internal/roster"
	"github.com/KirkDiggler/sessionsync/internal/services/calendar"
	"github.com/KirkDiggler/sessionsync/internal/services/messaging"
	"github.com/KirkDiggler/sessionsync/internal/services/scheduler"
	"github.com/KirkDiggler/sessionsync/internal/services/scheduler/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const testUserID = "user-1"

// fakeResponder records what would have been sent to Discord
type fakeResponder struct {
	responses []*discordgo.InteractionResponse
	edits     []*discordgo.WebhookEdit
}

func (f *fakeResponder) InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error {
	f.responses = append(f.responses, resp)
	return nil
}

func (f *fakeResponder) InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.edits = append(f.edits, newresp)
	return &discordgo.Message{}, nil
}

func commandInteraction(sub string, options map[string]string) *discordgo.InteractionCreate {
	var opts []*discordgo.ApplicationCommandInteractionDataOption
	for name, value := range options {
		opts = append(opts, &discordgo.ApplicationCommandInteractionDataOption{
			Name:  name,
			Type:  discordgo.ApplicationCommandOptionString,
			Value: value,
		})
	}

	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name: "sessionsync",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{Name: sub, Type: discordgo.ApplicationCommandOptionSubCommand, Options: opts},
				},
			},
			Member: &discordgo.Member{User: &discordgo.User{ID: testUserID}},
		},
	}
}

func componentInteraction(customID string, values ...string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionMessageComponent,
			Data: discordgo.MessageComponentInteractionData{
				CustomID: customID,
				Values:   values,
			},
			User: &discordgo.User{ID: testUserID},
		},
	}
}

type SessionSyncCommandTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockScheduler *mocks.MockService
	members       []models.Member
	command       *SessionSyncCommand
	responder     *fakeResponder
	ctx           context.Context
}

func (s *SessionSyncCommandTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockScheduler = mocks.NewMockService(s.mockCtrl)
	s.members = roster.Default().Members()
	s.responder = &fakeResponder{}
	s.ctx = context.Background()

	msg, err := messaging.NewService(&messaging.ServiceConfig{Seed: 42})
	s.Require().NoError(err)

	s.command = NewSessionSyncCommand(s.mockScheduler, msg, s.members, zap.NewNop())
}

func (s *SessionSyncCommandTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSessionSyncCommandTestSuite(t *testing.T) {
	suite.Run(t, new(SessionSyncCommandTestSuite))
}

func (s *SessionSyncCommandTestSuite) board() *scheduler.GetBoardOutput {
	return &scheduler.GetBoardOutput{
		Member:    s.members[0],
		Roster:    s.members,
		Threshold: 3,
		Cells: []*scheduler.BoardCell{
			{Slot: models.Slot{Date: "2024-06-01", Time: "19:00"}, CurrentAvailable: true},
			{Slot: models.Slot{Date: "2024-06-02", Time: "19:00"}},
			{Slot: models.Slot{Date: "2024-06-03", Time: "19:00"}},
		},
	}
}

func (s *SessionSyncCommandTestSuite) lastEmbed() *discordgo.MessageEmbed {
	s.Require().NotEmpty(s.responder.responses)
	resp := s.responder.responses[len(s.responder.responses)-1]
	s.Require().Len(resp.Data.Embeds, 1)
	return resp.Data.Embeds[0]
}

func (s *SessionSyncCommandTestSuite) lastEdit() *discordgo.MessageEmbed {
	s.Require().NotEmpty(s.responder.edits)
	edit := s.responder.edits[len(s.responder.edits)-1]
	s.Require().NotNil(edit.Embeds)
	s.Require().Len(*edit.Embeds, 1)
	return (*edit.Embeds)[0]
}

func (s *SessionSyncCommandTestSuite) TestCommandDefinition() {
	cmd := s.command.GetCommand()
	s.Equal("sessionsync", cmd.Name)
	s.Len(cmd.Options, 6)

	view := cmd.Options[1]
	s.Equal(SubcommandView, view.Name)
	s.Require().Len(view.Options[0].Choices, 6)
	s.Equal("Josh (Guitar)", view.Options[0].Choices[0].Name)
	s.Equal("1", view.Options[0].Choices[0].Value)
}

func (s *SessionSyncCommandTestSuite) TestBoard() {
	s.mockScheduler.EXPECT().
		GetBoard(gomock.Any(), &scheduler.GetBoardInput{ViewerID: testUserID}).
		Return(s.board(), nil)

	err := s.command.Handle(s.ctx, s.responder, commandInteraction(SubcommandBoard, nil))
	s.Require().NoError(err)

	resp := s.responder.responses[0]
	s.Equal(discordgo.InteractionResponseChannelMessageWithSource, resp.Type)
	s.Equal(discordgo.MessageFlagsEphemeral, resp.Data.Flags)
	s.Contains(s.lastEmbed().Description, "Viewing as **Josh**")
}

func (s *SessionSyncCommandTestSuite) TestView() {
	board := s.board()
	board.Member = s.members[4]

	gomock.InOrder(
		s.mockScheduler.EXPECT().
			SwitchView(gomock.Any(), &scheduler.SwitchViewInput{ViewerID: testUserID, MemberID: "5"}).
			Return(&scheduler.SwitchViewOutput{Member: s.members[4]}, nil),
		s.mockScheduler.EXPECT().
			GetBoard(gomock.Any(), &scheduler.GetBoardInput{ViewerID: testUserID}).
			Return(board, nil),
	)

	err := s.command.Handle(s.ctx, s.responder, commandInteraction(SubcommandView, map[string]string{"member": "5"}))
	s.Require().NoError(err)
	s.Contains(s.lastEmbed().Description, "Viewing as **Cam**")
}

func (s *SessionSyncCommandTestSuite) TestView_UnknownMember() {
	s.mockScheduler.EXPECT().
		SwitchView(gomock.Any(), gomock.Any()).
		Return(nil, scheduler.ErrMemberNotFound)

	err := s.command.Handle(s.ctx, s.responder, commandInteraction(SubcommandView, map[string]string{"member": "99"}))
	s.Require().NoError(err)
	s.Equal("Something Went Wrong", s.lastEmbed().Title)
	s.Equal("Member not found.", s.lastEmbed().Description)
}

func (s *SessionSyncCommandTestSuite) TestToggle() {
	s.mockScheduler.EXPECT().
		GetView(gomock.Any(), &scheduler.GetViewInput{ViewerID: testUserID}).
		Return(&scheduler.GetViewOutput{Member: s.members[2]}, nil)
	s.mockScheduler.EXPECT().
		ToggleAvailability(gomock.Any(), &scheduler.ToggleAvailabilityInput{MemberID: "3", Date: "2024-06-01", Time: "19:00"}).
		Return(&scheduler.ToggleAvailabilityOutput{Available: true, AvailableCount: 3, Creatable: true}, nil)

	err := s.command.Handle(s.ctx, s.responder, commandInteraction(SubcommandToggle, map[string]string{
		"date": "2024-06-01",
		"time": "19:00",
	}))
	s.Require().NoError(err)
	s.Equal("**Dan** is in for 2024-06-01 19:00.\n3 available. Ready to schedule!", s.lastEmbed().Description)
}

func (s *SessionSyncCommandTestSuite) TestSchedule_CreatesWithSnapshot() {
	snapshot := s.members[:3]
	session := &models.Session{ID: "2024-06-01-19:00", Date: "2024-06-01", Time: "19:00", Members: snapshot}

	s.mockScheduler.EXPECT().
		CanCreateSession(gomock.Any(), &scheduler.CanCreateSessionInput{Date: "2024-06-01", Time: "19:00"}).
		Return(&scheduler.CanCreateSessionOutput{Creatable: true, AvailableMembers: snapshot}, nil)
	s.mockScheduler.EXPECT().
		CreateSession(gomock.Any(), &scheduler.CreateSessionInput{Date: "2024-06-01", Time: "19:00", Members: snapshot}).
		Return(&scheduler.CreateSessionOutput{
			Session: session,
			Notice:  messaging.Notice{Title: "🎸 Rehearsal is on!", Message: "Connect the calendar for automatic invites!"},
		}, nil)

	err := s.command.HandleComponent(s.ctx, s.responder, componentInteraction(SelectSchedule, "2024-06-01|19:00"))
	s.Require().NoError(err)

	s.Require().Len(s.responder.responses, 1)
	s.Equal(discordgo.InteractionResponseDeferredChannelMessageWithSource, s.responder.responses[0].Type)
	s.Equal("🎸 Rehearsal is on!", s.lastEdit().Title)

	components := *s.responder.edits[0].Components
	s.Require().Len(components, 1)
	s.Equal(ButtonConnect, components[0].(discordgo.ActionsRow).Components[0].(discordgo.Button).CustomID)
}

func (s *SessionSyncCommandTestSuite) TestSchedule_InviteFailureOffersResend() {
	snapshot := s.members[:3]
	session := &models.Session{ID: "2024-06-01-19:00", Date: "2024-06-01", Time: "19:00", Members: snapshot}

	s.mockScheduler.EXPECT().
		CanCreateSession(gomock.Any(), gomock.Any()).
		Return(&scheduler.CanCreateSessionOutput{Creatable: true, AvailableMembers: snapshot}, nil)
	s.mockScheduler.EXPECT().
		CreateSession(gomock.Any(), gomock.Any()).
		Return(&scheduler.CreateSessionOutput{
			Session:   session,
			InviteErr: &calendar.ProviderError{Op: calendar.OpCreateEvent, Err: context.DeadlineExceeded},
			Notice:    messaging.Notice{Title: "Calendar Invite Failed"},
		}, nil)

	err := s.command.Handle(s.ctx, s.responder, commandInteraction(SubcommandSchedule, map[string]string{
		"date": "2024-06-01",
		"time": "19:00",
	}))
	s.Require().NoError(err)

	s.Equal("Calendar Invite Failed", s.lastEdit().Title)
	components := *s.responder.edits[0].Components
	s.Equal("invite:2024-06-01-19:00", components[0].(discordgo.ActionsRow).Components[0].(discordgo.Button).CustomID)
}

func (s *SessionSyncCommandTestSuite) TestSchedule_AlreadyScheduled() {
	s.mockScheduler.EXPECT().
		CanCreateSession(gomock.Any(), gomock.Any()).
		Return(&scheduler.CanCreateSessionOutput{
			AvailableMembers: s.members[:3],
			Existing:         &models.Session{ID: "2024-06-01-19:00"},
		}, nil)

	err := s.command.Handle(s.ctx, s.responder, commandInteraction(SubcommandSchedule, map[string]string{
		"date": "2024-06-01",
		"time": "19:00",
	}))
	s.Require().NoError(err)
	s.Equal("Already Scheduled", s.lastEmbed().Title)
	s.Empty(s.responder.edits)
}

func (s *SessionSyncCommandTestSuite) TestSchedule_NotEnoughMembers() {
	s.mockScheduler.EXPECT().
		CanCreateSession(gomock.Any(), gomock.Any()).
		Return(&scheduler.CanCreateSessionOutput{AvailableMembers: s.members[:2]}, nil)

	err := s.command.Handle(s.ctx, s.responder, commandInteraction(SubcommandSchedule, map[string]string{
		"date": "2024-06-01",
		"time": "19:00",
	}))
	s.Require().NoError(err)
	s.Equal("Not enough members available to schedule a session.", s.lastEmbed().Description)
}

func (s *SessionSyncCommandTestSuite) TestAvailabilitySelect_TogglesDifferences() {
	gomock.InOrder(
		s.mockScheduler.EXPECT().
			GetBoard(gomock.Any(), gomock.Any()).
			Return(s.board(), nil),
		s.mockScheduler.EXPECT().
			ToggleAvailability(gomock.Any(), &scheduler.ToggleAvailabilityInput{MemberID: "1", Date: "2024-06-01", Time: "19:00"}).
			Return(&scheduler.ToggleAvailabilityOutput{}, nil),
		s.mockScheduler.EXPECT().
			ToggleAvailability(gomock.Any(), &scheduler.ToggleAvailabilityInput{MemberID: "1", Date: "2024-06-03", Time: "19:00"}).
			Return(&scheduler.ToggleAvailabilityOutput{Available: true}, nil),
		s.mockScheduler.EXPECT().
			GetBoard(gomock.Any(), gomock.Any()).
			Return(s.board(), nil),
	)

	err := s.command.HandleComponent(s.ctx, s.responder, componentInteraction(SelectAvailability, "2024-06-03|19:00"))
	s.Require().NoError(err)

	s.Require().Len(s.responder.responses, 1)
	s.Equal(discordgo.InteractionResponseUpdateMessage, s.responder.responses[0].Type)
}

func (s *SessionSyncCommandTestSuite) TestInvite_NotConnected() {
	s.mockScheduler.EXPECT().
		ResendInvite(gomock.Any(), &scheduler.ResendInviteInput{SessionID: "2024-06-01-19:00"}).
		Return(nil, calendar.ErrNotConnected)

	err := s.command.HandleComponent(s.ctx, s.responder, componentInteraction("invite:2024-06-01-19:00"))
	s.Require().NoError(err)
	s.Equal("Calendar Not Connected", s.lastEdit().Title)
}

func (s *SessionSyncCommandTestSuite) TestConnect() {
	s.mockScheduler.EXPECT().
		ConnectCalendar(gomock.Any(), gomock.Any()).
		Return(&scheduler.ConnectCalendarOutput{Notice: messaging.Notice{Title: "Calendar Connected"}}, nil)

	err := s.command.HandleComponent(s.ctx, s.responder, componentInteraction(ButtonConnect))
	s.Require().NoError(err)
	s.Equal(discordgo.InteractionResponseDeferredChannelMessageWithSource, s.responder.responses[0].Type)
	s.Equal("Calendar Connected", s.lastEdit().Title)
}

func (s *SessionSyncCommandTestSuite) TestConnect_Failure() {
	s.mockScheduler.EXPECT().
		ConnectCalendar(gomock.Any(), gomock.Any()).
		Return(nil, &calendar.ProviderError{Op: calendar.OpConnect, Err: context.Canceled})

	err := s.command.Handle(s.ctx, s.responder, commandInteraction(SubcommandConnect, nil))
	s.Require().NoError(err)
	s.Equal("Calendar Connection Failed", s.lastEdit().Title)
}

func (s *SessionSyncCommandTestSuite) TestSessions() {
	s.mockScheduler.EXPECT().
		ListSessions(gomock.Any(), gomock.Any()).
		Return(&scheduler.ListSessionsOutput{}, nil)

	err := s.command.HandleComponent(s.ctx, s.responder, componentInteraction(ButtonSessions))
	s.Require().NoError(err)
	s.Equal("📋 Scheduled Sessions", s.lastEmbed().Title)
}

func (s *SessionSyncCommandTestSuite) TestSessions_NextPageUpdatesInPlace() {
	var sessions []*models.Session
	for day := 1; day <= 22; day++ {
		slot := models.Slot{Date: fmt.Sprintf("2024-07-%02d", day), Time: "19:00"}
		sessions = append(sessions, &models.Session{ID: slot.Key(), Date: slot.Date, Time: slot.Time, Members: s.members[:3]})
	}
	s.mockScheduler.EXPECT().
		ListSessions(gomock.Any(), gomock.Any()).
		Return(&scheduler.ListSessionsOutput{Sessions: sessions}, nil)

	err := s.command.HandleComponent(s.ctx, s.responder, componentInteraction(sessionsPageCustomID(1)))
	s.Require().NoError(err)

	resp := s.responder.responses[len(s.responder.responses)-1]
	s.Equal(discordgo.InteractionResponseUpdateMessage, resp.Type)

	embed := s.lastEmbed()
	s.Equal("Page 2 of 2 (22 sessions)", embed.Footer.Text)
	s.Require().Len(embed.Fields, 2)

	invites := resp.Data.Components[0].(discordgo.ActionsRow).Components
	s.Equal("invite:2024-07-22-19:00", invites[1].(discordgo.Button).CustomID)
}

func (s *SessionSyncCommandTestSuite) TestUnknownComponent() {
	bot := &Bot{
		commands:    map[string]CommandHandler{},
		sessionSync: s.command,
		logger:      zap.NewNop(),
	}

	bot.dispatch(s.ctx, s.responder, componentInteraction("mystery"))
	s.Equal("Unknown Action", s.lastEmbed().Title)
}
