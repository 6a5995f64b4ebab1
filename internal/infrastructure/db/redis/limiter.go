package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	attemptWindow = 15 * time.Minute
	maxAttempts   = 10
)

// LoginLimiter throttles login attempts per email, backed by Redis.
// Key format: login_attempts:<email>, expiring after attemptWindow.
type LoginLimiter struct {
	client *redis.Client
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
func NewLoginLimiter(client *redis.Client) *LoginLimiter {
	return &LoginLimiter{client: client}
}

// Allow records an attempt and reports whether the email is still within its
// budget for the current window.
func (l *LoginLimiter) Allow(ctx context.Context, email string) (bool, error) {
	key := l.key(email)
	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("login throttle: %w", err)
	}
	if n == 1 {
		// First attempt in the window starts the clock.
		if err := l.client.Expire(ctx, key, attemptWindow).Err(); err != nil {
			return false, fmt.Errorf("login throttle: %w", err)
		}
	}
	return n <= maxAttempts, nil
}

// Reset clears the counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, email string) error {
	return l.client.Del(ctx, l.key(email)).Err()
}

func (l *LoginLimiter) key(email string) string {
	return "login_attempts:" + email
}
