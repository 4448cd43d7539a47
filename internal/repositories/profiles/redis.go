package profiles

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/keep-objectives/internal/errors"
	"github.com/KirkDiggler/keep-objectives/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/keep-objectives/internal/redis"
)

const (
	// Key patterns: profile:{id} and profile:game:{game_id}
	profileKeyPrefix = "profile:"
	gameIndexPrefix  = "profile:game:"

	// DefaultTTL is how long an untouched profile is kept.
	DefaultTTL = 30 * 24 * time.Hour

	errProfileNil  = "profile cannot be nil"
	errProfileID   = "profile ID cannot be empty"
	errGameIDEmpty = "game ID cannot be empty"
	errValuesNil   = "profile values cannot be nil"

	// maxUpdateAttempts bounds the retries of an update whose watched
	// profile key changed before the write.
	maxUpdateAttempts = 3
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock

	// TTL defaults to DefaultTTL
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.TTL < 0 {
		vb.Field("TTL", "must not be negative")
	}

	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis repository for profiles
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
		ttl:    ttl,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func validateProfile(p *Profile) error {
	if p == nil {
		return errors.InvalidArgument(errProfileNil)
	}
	if p.ID == "" {
		return errors.InvalidArgument(errProfileID)
	}
	if p.GameID == "" {
		return errors.InvalidArgument(errGameIDEmpty)
	}
	if p.Values == nil {
		return errors.InvalidArgument(errValuesNil)
	}
	return nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateProfile(input.Profile); err != nil {
		return nil, err
	}

	now := r.clock.Now().UTC()
	stored := *input.Profile
	stored.CreatedAt = now
	stored.UpdatedAt = now

	data, err := json.Marshal(&stored)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal profile")
	}

	// SETNX keeps two creates with the same ID from overwriting each other.
	created, err := r.client.SetNX(ctx, profileKeyPrefix+stored.ID, data, r.ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store profile")
	}
	if !created {
		return nil, errors.AlreadyExistsf("profile %s already exists", stored.ID)
	}

	if err := r.client.SAdd(ctx, gameIndexPrefix+stored.GameID, stored.ID).Err(); err != nil {
		// An unindexed profile would never be listed; drop it.
		r.client.Del(ctx, profileKeyPrefix+stored.ID)
		return nil, errors.Wrapf(err, "failed to index profile")
	}

	return &CreateOutput{Profile: &stored}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errProfileID)
	}

	result, err := r.client.Get(ctx, profileKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("profile %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get profile")
	}

	var p Profile
	if err := json.Unmarshal([]byte(result), &p); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal profile")
	}

	return &GetOutput{Profile: &p}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateProfile(input.Profile); err != nil {
		return nil, err
	}

	key := profileKeyPrefix + input.Profile.ID
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		stored, err := r.update(ctx, key, input.Profile)
		if err == redis.TxFailedErr {
			continue
		}
		if err != nil {
			return nil, err
		}
		return &UpdateOutput{Profile: stored}, nil
	}

	return nil, errors.WrapWithCode(redis.TxFailedErr, errors.CodeUnavailable,
		"profile "+input.Profile.ID+" kept changing during update")
}

// update rewrites the profile under WATCH, so a profile deleted or replaced
// between the read and the write fails the transaction with redis.TxFailedErr.
func (r *redisRepository) update(ctx context.Context, key string, p *Profile) (*Profile, error) {
	var stored Profile
	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		result, err := tx.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				return errors.NotFoundf("profile %s not found", p.ID)
			}
			return errors.Wrapf(err, "failed to get profile")
		}

		var existing Profile
		if err := json.Unmarshal([]byte(result), &existing); err != nil {
			return errors.Wrapf(err, "failed to unmarshal profile")
		}
		if existing.GameID != p.GameID {
			return errors.InvalidArgumentf("profile %s belongs to game %s", p.ID, existing.GameID)
		}

		stored = *p
		stored.CreatedAt = existing.CreatedAt
		stored.UpdatedAt = r.clock.Now().UTC()

		data, err := json.Marshal(&stored)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal profile")
		}

		// Writing refreshes the TTL.
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, r.ttl)
			pipe.SAdd(ctx, gameIndexPrefix+stored.GameID, stored.ID)
			return nil
		})
		if err != nil && err != redis.TxFailedErr {
			return errors.Wrapf(err, "failed to update profile")
		}
		return err
	}, key)
	if err != nil {
		return nil, err
	}

	return &stored, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errProfileID)
	}

	existing, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, profileKeyPrefix+input.ID)
	pipe.SRem(ctx, gameIndexPrefix+existing.Profile.GameID, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete profile")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByGame(ctx context.Context, input ListByGameInput) (*ListByGameOutput, error) {
	if input.GameID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}

	indexKey := gameIndexPrefix + input.GameID
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list profiles")
	}
	sort.Strings(ids)

	profiles := make([]*Profile, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			// Expired profiles leave stale index entries behind.
			if errors.IsNotFound(err) {
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, err
		}
		profiles = append(profiles, out.Profile)
	}

	return &ListByGameOutput{Profiles: profiles}, nil
}
