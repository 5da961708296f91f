// Package config loads the bot's settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	// StoreMemory keeps all state in process memory
	StoreMemory = "memory"

	// StoreRedis keeps state in Redis under a namespace scoped to the current run
	StoreRedis = "redis"
)

// Config holds every setting the bot reads at startup
type Config struct {
	// Discord settings
	DiscordToken      string `env:"DISCORD_TOKEN,required"`
	ApplicationID     string `env:"APPLICATION_ID"`
	GuildID           string `env:"GUILD_ID"`
	AnnounceChannelID string `env:"ANNOUNCE_CHANNEL_ID"`

	// Logging
	Env      string `env:"ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// State store. Redis keys never expire on their own; they are purged at shutdown.
	Store         string `env:"STORE" envDefault:"memory"`
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Scheduling rules
	SessionThreshold int           `env:"SESSION_THRESHOLD" envDefault:"3"`
	SlotTimes        []string      `env:"SLOT_TIMES" envDefault:"19:00" envSeparator:","`
	UpcomingDays     int           `env:"UPCOMING_DAYS" envDefault:"14"`
	SessionLength    time.Duration `env:"SESSION_LENGTH" envDefault:"3h"`
	DisplayTimeZone  string        `env:"DISPLAY_TIME_ZONE" envDefault:"America/Chicago"`

	// Simulated calendar provider
	CalendarConnectDelay time.Duration `env:"CALENDAR_CONNECT_DELAY" envDefault:"1500ms"`
	CalendarCreateDelay  time.Duration `env:"CALENDAR_CREATE_DELAY" envDefault:"500ms"`
}

// Load reads an optional .env file and parses the environment into a Config
func Load(dotenvFiles ...string) (*Config, error) {
	if err := godotenv.Load(dotenvFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load dotenv: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values the struct tags cannot express
func (c *Config) Validate() error {
	if c.Store != StoreMemory && c.Store != StoreRedis {
		return fmt.Errorf("STORE must be %q or %q, got %q", StoreMemory, StoreRedis, c.Store)
	}
	if c.SessionThreshold < 1 {
		return fmt.Errorf("SESSION_THRESHOLD must be positive, got %d", c.SessionThreshold)
	}
	if c.UpcomingDays < 1 {
		return fmt.Errorf("UPCOMING_DAYS must be positive, got %d", c.UpcomingDays)
	}
	if len(c.SlotTimes) == 0 {
		return errors.New("SLOT_TIMES cannot be empty")
	}
	for _, t := range c.SlotTimes {
		if _, err := time.Parse("15:04", t); err != nil {
			return fmt.Errorf("SLOT_TIMES entry %q is not HH:MM", t)
		}
	}
	if _, err := time.LoadLocation(c.DisplayTimeZone); err != nil {
		return fmt.Errorf("DISPLAY_TIME_ZONE %q: %w", c.DisplayTimeZone, err)
	}
	return nil
}
