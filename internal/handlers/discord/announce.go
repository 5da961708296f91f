package discord

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/sessionsync/internal/services/scheduler"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// MessageSender is the part of a Discord session used to post to a channel
type MessageSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Announcer posts scheduling news to a channel
type Announcer struct {
	sender    MessageSender
	channelID string
	logger    *zap.Logger
}

// NewAnnouncer creates an announcer for the given channel
func NewAnnouncer(sender MessageSender, channelID string, logger *zap.Logger) *Announcer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Announcer{
		sender:    sender,
		channelID: channelID,
		logger:    logger,
	}
}

// Announce posts the event if it is worth telling the band about
func (a *Announcer) Announce(ctx context.Context, event *scheduler.Event) error {
	embed := announcement(event)
	if embed == nil {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := a.sender.ChannelMessageSendEmbed(a.channelID, embed, discordgo.WithContext(ctx)); err != nil {
		a.logger.Warn("failed to post announcement",
			zap.String("channel_id", a.channelID),
			zap.String("event", string(event.Type)),
			zap.Error(err))
		return fmt.Errorf("post announcement: %w", err)
	}
	return nil
}

// announcement returns nil for events that stay out of the channel
func announcement(event *scheduler.Event) *discordgo.MessageEmbed {
	if event == nil {
		return nil
	}

	switch event.Type {
	case scheduler.EventSessionScheduled:
		if event.Session == nil {
			return nil
		}
		return &discordgo.MessageEmbed{
			Title:       "🎵 Session scheduled",
			Description: fmt.Sprintf("%s\nMembers: %s", sessionLabel(event.Session), memberNames(event.Session.Members)),
			Color:       colorInfo,
		}
	case scheduler.EventSessionInvited:
		if event.Session == nil {
			return nil
		}
		return &discordgo.MessageEmbed{
			Title:       "📨 Calendar invites sent",
			Description: fmt.Sprintf("%s\nCheck your inbox, %s!", sessionLabel(event.Session), memberNames(event.Session.Members)),
			Color:       colorSuccess,
		}
	case scheduler.EventCalendarConnected:
		return &discordgo.MessageEmbed{
			Title:       "📅 Calendar connected",
			Description: "New sessions will send calendar invites.",
			Color:       colorSuccess,
		}
	default:
		return nil
	}
}
