package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/sessionsync/internal/models"
	"github.com/KirkDiggler/sessionsync/internal/repositories/keyspace"
	"github.com/redis/go-redis/v9"
)

const (
	// Key names for Redis, appended to the run namespace
	sessionKeyPrefix = "sessions:data:"
	sessionOrderKey  = "sessions:order"
	sessionSeqKey    = "sessions:seq"

	// maxUpdateRetries bounds optimistic-lock retries in SetCalendarEventID
	maxUpdateRetries = 5
)

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Namespace scopes every key to one run of the bot. Keys carry no expiry;
	// sessions live until the namespace is purged at shutdown.
	Namespace string
}

// redisRepository implements the Repository interface using Redis.
// Sessions are stored as JSON values, and a sorted set scored by a save sequence keeps
// the listing order.
type redisRepository struct {
	client    *redis.Client
	namespace string
}

// NewRedis creates a new Redis-backed session repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client:    cfg.RedisClient,
		namespace: keyspace.Normalize(cfg.Namespace),
	}, nil
}

func (r *redisRepository) sessionKey(sessionID string) string {
	return r.namespace + sessionKeyPrefix + sessionID
}

func (r *redisRepository) orderKey() string {
	return r.namespace + sessionOrderKey
}

func (r *redisRepository) seqKey() string {
	return r.namespace + sessionSeqKey
}

// SaveSession persists a session to Redis, replacing any session with the same ID
func (r *redisRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return ErrNilInput
	}
	if input.Session.ID == "" {
		return ErrMissingSessionID
	}

	// Marshal the session to JSON
	sessionJSON, err := json.Marshal(input.Session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	// A fresh sequence number moves a replaced session to the end of the listing
	seq, err := r.client.Incr(ctx, r.seqKey()).Result()
	if err != nil {
		return fmt.Errorf("failed to allocate session sequence: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.sessionKey(input.Session.ID), sessionJSON, 0)
	pipe.ZAdd(ctx, r.orderKey(), redis.Z{
		Score:  float64(seq),
		Member: input.Session.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GetSession retrieves a session by ID from Redis
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrMissingSessionID
	}

	sessionJSON, err := r.client.Get(ctx, r.sessionKey(input.SessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// ListSessions returns every session in the order it was last saved
func (r *redisRepository) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	sessionIDs, err := r.client.ZRange(ctx, r.orderKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list session IDs: %w", err)
	}

	if len(sessionIDs) == 0 {
		return &ListSessionsOutput{
			Sessions: []*models.Session{},
		}, nil
	}

	// Get all session records using a pipeline
	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, len(sessionIDs))
	for i, sessionID := range sessionIDs {
		commands[i] = pipe.Get(ctx, r.sessionKey(sessionID))
	}

	// redis.Nil from individual GETs is handled per command below
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get sessions: %w", err)
	}

	sessions := make([]*models.Session, 0, len(sessionIDs))
	for i, cmd := range commands {
		sessionJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Session purged between reading the order and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get session %s: %w", sessionIDs[i], err)
		}

		var session models.Session
		if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
			return nil, fmt.Errorf("failed to unmarshal session %s: %w", sessionIDs[i], err)
		}

		sessions = append(sessions, &session)
	}

	return &ListSessionsOutput{
		Sessions: sessions,
	}, nil
}

// SetCalendarEventID records the external calendar event for a session in Redis
func (r *redisRepository) SetCalendarEventID(ctx context.Context, input *SetCalendarEventIDInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrMissingSessionID
	}

	key := r.sessionKey(input.SessionID)
	var updated models.Session

	update := func(tx *redis.Tx) error {
		sessionJSON, err := tx.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				return ErrSessionNotFound
			}
			return fmt.Errorf("failed to get session: %w", err)
		}

		if err := json.Unmarshal([]byte(sessionJSON), &updated); err != nil {
			return fmt.Errorf("failed to unmarshal session: %w", err)
		}
		updated.CalendarEventID = input.CalendarEventID

		data, err := json.Marshal(&updated)
		if err != nil {
			return fmt.Errorf("failed to marshal session: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxUpdateRetries; attempt++ {
		err := r.client.Watch(ctx, update, key)
		if err == nil {
			return &updated, nil
		}
		if err == redis.TxFailedErr {
			continue
		}
		return nil, err
	}

	return nil, fmt.Errorf("failed to update session %s: too many concurrent writes", input.SessionID)
}

// Purge removes every session key written during this run
func (r *redisRepository) Purge(ctx context.Context) error {
	if _, err := keyspace.Purge(ctx, r.client, r.namespace+"sessions:"); err != nil {
		return fmt.Errorf("failed to purge sessions: %w", err)
	}
	return nil
}
