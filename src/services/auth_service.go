package services

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"feedback-backend/src/database"
	"feedback-backend/src/models"
)

// AuthenticateUser checks an email/password pair against the users
// collection. The same error comes back for unknown email and wrong
// password.
func AuthenticateUser(email, password string) (*models.User, error) {
	ctx := context.Background()

	var dbUser models.User
	err := database.UserCollection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&dbUser)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dbUser.Password), []byte(password)); err != nil {
		return nil, errors.New("invalid email or password")
	}

	return &models.User{
		ID:    dbUser.ID,
		Email: dbUser.Email,
		Role:  dbUser.Role,
	}, nil
}
