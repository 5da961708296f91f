package discord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/sessionsync/internal/models"
	"github.com/KirkDiggler/sessionsync/internal/services/messaging"
	"github.com/KirkDiggler/sessionsync/internal/services/scheduler"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const (
	// interactionTimeout bounds the work done for one interaction
	interactionTimeout = 30 * time.Second

	announceTimeout = 10 * time.Second
)

// Bot represents the Discord bot instance
type Bot struct {
	session     *discordgo.Session
	commands    map[string]CommandHandler
	commandIDs  map[string]string // Maps command name to command ID
	sessionSync *SessionSyncCommand
	scheduler   scheduler.Service
	announcer   *Announcer
	unsubscribe func()
	config      *Config
	logger      *zap.Logger
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Optional channel that receives session announcements
	AnnounceChannelID string

	// Members are offered as choices for /sessionsync view
	Members []models.Member

	Scheduler scheduler.Service
	Messaging messaging.Service
	Logger    *zap.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.Scheduler == nil {
		return nil, errors.New("scheduler service cannot be nil")
	}

	if cfg.Messaging == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("discord")

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:     session,
		commands:    make(map[string]CommandHandler),
		commandIDs:  make(map[string]string),
		sessionSync: NewSessionSyncCommand(cfg.Scheduler, cfg.Messaging, cfg.Members, logger),
		scheduler:   cfg.Scheduler,
		config:      cfg,
		logger:      logger,
	}

	if cfg.AnnounceChannelID != "" {
		bot.announcer = NewAnnouncer(session, cfg.AnnounceChannelID, logger)
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.RegisterCommand(b.sessionSync); err != nil {
		return fmt.Errorf("failed to register sessionsync command: %w", err)
	}

	if b.announcer != nil {
		b.unsubscribe = b.scheduler.Subscribe(b.announce)
	}

	b.logger.Info("bot is running")
	return nil
}

// announce posts events in the background so scheduling never waits on Discord
func (b *Bot) announce(_ context.Context, event *scheduler.Event) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), announceTimeout)
		defer cancel()
		_ = b.announcer.Announce(ctx, event)
	}()
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	if b.unsubscribe != nil {
		b.unsubscribe()
	}

	appID := b.appID()
	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn("failed to delete command",
				zap.String("command", cmdName),
				zap.String("command_id", cmdID),
				zap.Error(err))
		} else {
			b.logger.Info("deleted command",
				zap.String("command", cmdName),
				zap.String("command_id", cmdID))
		}
	}

	return b.session.Close()
}

// appID falls back to the session user ID if no application ID is configured
func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord, for the configured guild or globally
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	guildID := b.config.GuildID

	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info("registered command",
		zap.String("command", cmd.GetName()),
		zap.String("command_id", createdCmd.ID),
		zap.String("guild_id", guildID))

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), interactionTimeout)
	defer cancel()

	b.dispatch(ctx, s, i)
}

func (b *Bot) dispatch(ctx context.Context, r Responder, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		h, ok := b.commands[name]
		if !ok {
			return
		}
		if err := h.Handle(ctx, r, i); err != nil {
			b.logger.Error("error handling command", zap.String("command", name), zap.Error(err))
		}
	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		if err := b.sessionSync.HandleComponent(ctx, r, i); err != nil {
			b.logger.Error("error handling component", zap.String("custom_id", customID), zap.Error(err))
			if errors.Is(err, errUnknownComponent) {
				_ = RespondWithError(r, i, "Unknown Action", fmt.Sprintf("Unknown button: %s", customID))
			}
		}
	}
}
