package utils

import (
	"context"
	"fmt"
	"time"

	DB "Backend-ClassPulse/src/database"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

// ensureClient returns the shared Redis client managed by the database
// package. Nil means Redis was not configured (dev mode); callers degrade
// gracefully in that case.
func ensureClient() *redis.Client {
	return DB.RedisClient
}

const (
	resetTokenTTL      = 15 * time.Minute
	loginAttemptWindow = 15 * time.Minute
	maxLoginAttempts   = 5
)

// StoreResetToken keeps a password-reset token → user mapping with a TTL.
// Without Redis the forgot-password flow is disabled and reports so.
func StoreResetToken(token, userID string) error {
	client := ensureClient()
	if client == nil {
		return fmt.Errorf("redis client not initialized")
	}

	key := fmt.Sprintf("reset_token:%s", token)
	if err := client.Set(Ctx, key, userID, resetTokenTTL).Err(); err != nil {
		return fmt.Errorf("failed to store reset token: %v", err)
	}
	return nil
}

// LookupResetToken returns the user a reset token was issued for, or ""
// when the token is unknown or expired.
func LookupResetToken(token string) (string, error) {
	client := ensureClient()
	if client == nil {
		return "", fmt.Errorf("redis client not initialized")
	}

	key := fmt.Sprintf("reset_token:%s", token)
	userID, err := client.Get(Ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil // token not present (never issued, used, or expired)
		}
		return "", fmt.Errorf("failed to get reset token: %v", err)
	}
	return userID, nil
}

// ConsumeResetToken deletes a token after a successful password reset so it
// cannot be replayed.
func ConsumeResetToken(token string) error {
	client := ensureClient()
	if client == nil {
		return nil
	}

	key := fmt.Sprintf("reset_token:%s", token)
	if err := client.Del(Ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete reset token: %v", err)
	}
	return nil
}

// RecordLoginFailure bumps the per-email failure counter. The first failure
// in a window starts the cooldown clock.
func RecordLoginFailure(email string) {
	client := ensureClient()
	if client == nil {
		return // no rate limiting in dev mode
	}

	key := fmt.Sprintf("login_fail:%s", email)
	n, err := client.Incr(Ctx, key).Result()
	if err != nil {
		return
	}
	if n == 1 {
		client.Expire(Ctx, key, loginAttemptWindow)
	}
}

// ClearLoginFailures resets the counter after a successful login.
func ClearLoginFailures(email string) {
	client := ensureClient()
	if client == nil {
		return
	}
	client.Del(Ctx, fmt.Sprintf("login_fail:%s", email))
}

// IsRateLimited reports whether this email has exhausted its login attempts.
// Without Redis all logins are allowed (dev mode).
func IsRateLimited(email string) bool {
	client := ensureClient()
	if client == nil {
		return false
	}

	n, err := client.Get(Ctx, fmt.Sprintf("login_fail:%s", email)).Int64()
	if err != nil {
		return false // includes redis.Nil: no failures recorded
	}
	return n >= maxLoginAttempts
}

// GetRemainingCooldownTime returns how long until the failure counter expires.
func GetRemainingCooldownTime(email string) time.Duration {
	client := ensureClient()
	if client == nil {
		return 0
	}

	ttl, err := client.TTL(Ctx, fmt.Sprintf("login_fail:%s", email)).Result()
	if err != nil || ttl < 0 {
		return 0
	}
	return ttl
}
