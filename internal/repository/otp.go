package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const otpKeyPrefix = "otp:"

// consumeOTPScript compares the submitted code against the stored one and
// deletes it only on a match, so a verified code is single-use.
var consumeOTPScript = redis.NewScript(`
local key = KEYS[1]
local code = ARGV[1]

local current = redis.call('GET', key)
if not current then
	return 0
end

if current == code then
	redis.call('DEL', key)
	return 1
end

return 0
`)

// OTPStore holds short-lived login codes keyed by user identifier.
type OTPStore interface {
	Put(ctx context.Context, identifier, code string, ttl time.Duration) error
	Consume(ctx context.Context, identifier, code string) (bool, error)
}

type redisOTPStore struct {
	client *redis.Client
}

func NewOTPStore(client *redis.Client) OTPStore {
	return &redisOTPStore{client: client}
}

func (s *redisOTPStore) Put(ctx context.Context, identifier, code string, ttl time.Duration) error {
	return s.client.Set(ctx, otpKeyPrefix+identifier, code, ttl).Err()
}

func (s *redisOTPStore) Consume(ctx context.Context, identifier, code string) (bool, error) {
	result, err := consumeOTPScript.Run(ctx, s.client, []string{otpKeyPrefix + identifier}, code).Int()
	if err != nil {
		return false, err
	}
	return result == 1, nil
}
