package progress

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/usherkit/usher/pkg/errors"
	"github.com/usherkit/usher/pkg/observability"
)

// keyPrefix namespaces progress keys in a shared Redis instance.
const keyPrefix = "usher:progress:"

// RedisConfig configures a Redis-backed progress store.
type RedisConfig struct {
	// Addr is the host:port of the Redis server.
	Addr string

	// Password is optional.
	Password string

	// DB selects the Redis logical database.
	DB int
}

// RedisStore stores progress records in Redis, for applications whose users
// roam between instances.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "connect to redis at %s", cfg.Addr)
	}
	return &RedisStore{client: client}, nil
}

func key(tourID string) string { return keyPrefix + tourID }

// Get retrieves the record for a tour.
func (s *RedisStore) Get(ctx context.Context, tourID string) (*Record, error) {
	if err := errors.ValidateTourID(tourID); err != nil {
		return nil, err
	}

	data, err := s.client.Get(ctx, key(tourID)).Bytes()
	if err == redis.Nil {
		observability.Store().OnStoreGet("redis", tourID, false)
		return nil, nil
	}
	if err != nil {
		observability.Store().OnStoreError("redis", "get", err)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "read progress for %s", tourID)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		observability.Store().OnStoreError("redis", "get", err)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "parse progress for %s", tourID)
	}
	observability.Store().OnStoreGet("redis", tourID, true)
	return &rec, nil
}

// Set stores a record. Records do not expire; tours stay seen until deleted.
func (s *RedisStore) Set(ctx context.Context, rec *Record) error {
	if err := validate(rec); err != nil {
		return err
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "marshal progress for %s", rec.TourID)
	}
	if err := s.client.Set(ctx, key(rec.TourID), data, 0).Err(); err != nil {
		observability.Store().OnStoreError("redis", "set", err)
		return errors.Wrap(errors.ErrCodeStore, err, "write progress for %s", rec.TourID)
	}
	observability.Store().OnStoreSet("redis", rec.TourID)
	return nil
}

// Delete removes a tour's record.
func (s *RedisStore) Delete(ctx context.Context, tourID string) error {
	if err := errors.ValidateTourID(tourID); err != nil {
		return err
	}
	if err := s.client.Del(ctx, key(tourID)).Err(); err != nil {
		observability.Store().OnStoreError("redis", "delete", err)
		return errors.Wrap(errors.ErrCodeStore, err, "delete progress for %s", tourID)
	}
	return nil
}

// List returns all records. Keys are walked with SCAN to stay friendly to
// shared instances.
func (s *RedisStore) List(ctx context.Context) ([]*Record, error) {
	var out []*Record

	iter := s.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		data, err := s.client.Get(ctx, iter.Val()).Bytes()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			observability.Store().OnStoreError("redis", "list", err)
			return nil, errors.Wrap(errors.ErrCodeStore, err, "read %s", iter.Val())
		}
		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			continue
		}
		out = append(out, &rec)
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "scan progress keys")
	}
	return out, nil
}

// Close closes the underlying Redis client.
func (s *RedisStore) Close() error {
	if err := s.client.Close(); err != nil {
		return fmt.Errorf("close redis client: %w", err)
	}
	return nil
}

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)
