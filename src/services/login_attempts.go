package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	DB "feedback-backend/src/database"
)

// Login throttling: after maxLoginAttempts failures within the attempt
// window the email is locked out until the window expires. Without Redis
// there is no throttling (development mode).
const (
	maxLoginAttempts   = 5
	loginAttemptWindow = 15 * time.Minute
)

func attemptKey(email string) string {
	return fmt.Sprintf("login_attempts:%s", strings.ToLower(email))
}

// IsRateLimited reports whether the email has exhausted its login attempts.
func IsRateLimited(email string) bool {
	if DB.RedisClient == nil {
		return false
	}

	count, err := DB.RedisClient.Get(DB.RedisCtx, attemptKey(email)).Int()
	if err != nil {
		return false
	}
	return count >= maxLoginAttempts
}

// GetRemainingCooldownTime returns how long until the email may try again.
func GetRemainingCooldownTime(email string) time.Duration {
	if DB.RedisClient == nil {
		return 0
	}

	ttl, err := DB.RedisClient.TTL(DB.RedisCtx, attemptKey(email)).Result()
	if err != nil || ttl < 0 {
		return 0
	}
	return ttl
}

// LogLoginAttempt records the outcome of a login try. Failures bump the
// attempt counter; a success clears it.
func LogLoginAttempt(email, ip string, success bool) {
	log.Printf("[auth] login email=%s ip=%s success=%t", strings.ToLower(email), ip, success)

	if DB.RedisClient == nil {
		return
	}

	key := attemptKey(email)
	if success {
		DB.RedisClient.Del(DB.RedisCtx, key)
		return
	}

	count, err := DB.RedisClient.Incr(DB.RedisCtx, key).Result()
	if err != nil {
		return
	}
	if count == 1 {
		DB.RedisClient.Expire(DB.RedisCtx, key, loginAttemptWindow)
	}
}
