package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/sessionsync/internal/repositories/keyspace"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis, appended to the run namespace
	memberKeyPrefix = "availability:member:"
	slotKeyPrefix   = "availability:slot:"
)

// toggleScript flips the flag in both the member's set and the slot's set so the two
// indexes never disagree. Keys carry no expiry; they live until the run's namespace is purged.
//
// KEYS[1] member set, KEYS[2] slot set; ARGV[1] slot key, ARGV[2] member ID
var toggleScript = redis.NewScript(`
local available
if redis.call("SISMEMBER", KEYS[1], ARGV[1]) == 1 then
	redis.call("SREM", KEYS[1], ARGV[1])
	redis.call("SREM", KEYS[2], ARGV[2])
	available = 0
else
	redis.call("SADD", KEYS[1], ARGV[1])
	redis.call("SADD", KEYS[2], ARGV[2])
	available = 1
end
return available
`)

// Config holds configuration for the Redis availability repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Namespace scopes every key to one run of the bot
	Namespace string
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client    *redis.Client
	namespace string
}

// NewRedis creates a new Redis-backed availability repository
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

func (r *redisRepository) memberKey(memberID string) string {
	return r.namespace + memberKeyPrefix + memberID
}

func (r *redisRepository) slotKey(slotKey string) string {
	return r.namespace + slotKeyPrefix + slotKey
}

// Toggle flips a member's availability flag for a slot in Redis
func (r *redisRepository) Toggle(ctx context.Context, input *ToggleInput) (*ToggleOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.MemberID == "" {
		return nil, ErrMissingMemberID
	}
	if err := validateSlot(input.Slot.Date, input.Slot.Time); err != nil {
		return nil, err
	}

	key := input.Slot.Key()
	result, err := toggleScript.Run(ctx, r.client,
		[]string{r.memberKey(input.MemberID), r.slotKey(key)},
		key, input.MemberID,
	).Int()
	if err != nil {
		return nil, fmt.Errorf("failed to toggle availability: %w", err)
	}

	return &ToggleOutput{
		Available: result == 1,
	}, nil
}

// IsAvailable returns a member's availability flag for a slot from Redis
func (r *redisRepository) IsAvailable(ctx context.Context, input *IsAvailableInput) (bool, error) {
	if input == nil {
		return false, ErrNilInput
	}
	if input.MemberID == "" {
		return false, ErrMissingMemberID
	}
	if err := validateSlot(input.Slot.Date, input.Slot.Time); err != nil {
		return false, err
	}

	available, err := r.client.SIsMember(ctx, r.memberKey(input.MemberID), input.Slot.Key()).Result()
	if err != nil {
		return false, fmt.Errorf("failed to get availability: %w", err)
	}

	return available, nil
}

// GetAvailableMemberIDs returns the IDs of every member available for a slot from Redis
func (r *redisRepository) GetAvailableMemberIDs(ctx context.Context, input *GetAvailableMemberIDsInput) (*GetAvailableMemberIDsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if err := validateSlot(input.Slot.Date, input.Slot.Time); err != nil {
		return nil, err
	}

	memberIDs, err := r.client.SMembers(ctx, r.slotKey(input.Slot.Key())).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get available members: %w", err)
	}

	return &GetAvailableMemberIDsOutput{
		MemberIDs: memberIDs,
	}, nil
}

// Purge removes every availability key written during this run
func (r *redisRepository) Purge(ctx context.Context) error {
	if _, err := keyspace.Purge(ctx, r.client, r.namespace+"availability:"); err != nil {
		return fmt.Errorf("failed to purge availability: %w", err)
	}
	return nil
}
