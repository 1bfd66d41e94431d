package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// OTPStore keeps one-time codes with expiry. Codes are single use:
// GetDel removes the code as it reads it.
type OTPStore interface {
	Set(ctx context.Context, mobileNumber, otp string, ttl time.Duration) error
	GetDel(ctx context.Context, mobileNumber string) (string, error)
}

type redisOTPStore struct {
	client *redis.Client
}

func NewOTPStore(client *redis.Client) OTPStore {
	return &redisOTPStore{client: client}
}

func (s *redisOTPStore) Set(ctx context.Context, mobileNumber, otp string, ttl time.Duration) error {
	if err := s.client.Set(ctx, otpKey(mobileNumber), otp, ttl).Err(); err != nil {
		return fmt.Errorf("storing otp: %w", err)
	}
	return nil
}

func (s *redisOTPStore) GetDel(ctx context.Context, mobileNumber string) (string, error) {
	otp, err := s.client.GetDel(ctx, otpKey(mobileNumber)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("fetching otp: %w", err)
	}
	return otp, nil
}

func otpKey(mobileNumber string) string {
	return "otp:" + mobileNumber
}
