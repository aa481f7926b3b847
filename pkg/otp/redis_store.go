package otp

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "otp:"

// RedisStore keeps OTP entries in Redis, one key per contact. The entry
// carries its own issuedAt so the manager can still distinguish an expired
// code from a missing one; the Redis key TTL is only a garbage-collection
// cap set to twice the code window.
type RedisStore struct {
	client *redis.Client
	keyTTL time.Duration
}

// NewRedisStore creates a Redis-backed OTP store for codes valid for ttl
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, keyTTL: 2 * ttl}
}

// Save stores an entry, overwriting any prior entry for the contact
func (s *RedisStore) Save(ctx context.Context, contact string, entry Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, redisKeyPrefix+contact, data, s.keyTTL).Err()
}

// Load returns the live entry for a contact, or ErrNotFound
func (s *RedisStore) Load(ctx context.Context, contact string) (Entry, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+contact).Result()
	if errors.Is(err, redis.Nil) {
		return Entry{}, ErrNotFound
	}
	if err != nil {
		return Entry{}, err
	}

	var entry Entry
	if err := json.Unmarshal([]byte(data), &entry); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// Delete removes the entry for a contact, if any
func (s *RedisStore) Delete(ctx context.Context, contact string) error {
	return s.client.Del(ctx, redisKeyPrefix+contact).Err()
}

// compareAndDeleteScript deletes the key only when the stored entry still
// carries the expected code, so concurrent verifications cannot both consume it.
var compareAndDeleteScript = redis.NewScript(`
local data = redis.call('GET', KEYS[1])
if not data then
	return 0
end
local entry = cjson.decode(data)
if entry.code ~= ARGV[1] then
	return 0
end
redis.call('DEL', KEYS[1])
return 1
`)

// CompareAndDelete removes the entry only if its code matches, atomically
func (s *RedisStore) CompareAndDelete(ctx context.Context, contact, code string) (bool, error) {
	res, err := compareAndDeleteScript.Run(ctx, s.client, []string{redisKeyPrefix + contact}, code).Int()
	if err != nil {
		return false, err
	}
	return res == 1, nil
}
