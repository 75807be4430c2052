package sharelinks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"

	DB "feedback-backend/src/database"
	"feedback-backend/src/models"
	"feedback-backend/src/services/forms"
)

// Share links live for a week by default.
const DefaultTTL = 7 * 24 * time.Hour

var (
	ErrUnavailable  = errors.New("share links require Redis")
	ErrTokenInvalid = errors.New("share link not found or expired")
)

func tokenKey(token string) string {
	return fmt.Sprintf("share_link:%s", token)
}

// CreateShareLink mints a public token resolving to the form and stores it
// in Redis with a TTL.
func CreateShareLink(ctx context.Context, formID primitive.ObjectID, ttl time.Duration) (*models.ShareLink, error) {
	if DB.RedisClient == nil {
		return nil, ErrUnavailable
	}

	// Verify the form exists before handing out a link to it.
	if _, err := forms.GetFormByID(ctx, formID); err != nil {
		return nil, err
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}

	token := uuid.NewString()
	if err := DB.RedisClient.Set(ctx, tokenKey(token), formID.Hex(), ttl).Err(); err != nil {
		return nil, fmt.Errorf("failed to store share link: %w", err)
	}

	return &models.ShareLink{
		Token:     token,
		FormID:    formID.Hex(),
		URL:       fmt.Sprintf("/f/%s", token),
		ExpiresAt: time.Now().Add(ttl),
	}, nil
}

// ResolveShareLink returns the form behind a token.
func ResolveShareLink(ctx context.Context, token string) (*models.Form, error) {
	if DB.RedisClient == nil {
		return nil, ErrUnavailable
	}

	formHex, err := DB.RedisClient.Get(ctx, tokenKey(token)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrTokenInvalid
		}
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(formHex)
	if err != nil {
		return nil, ErrTokenInvalid
	}
	return forms.GetFormByID(ctx, oid)
}
