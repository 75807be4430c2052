package seeder

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	DB "feedback-backend/src/database"
	"feedback-backend/src/models"
)

// SeedAdminUser creates the bootstrap admin account if it does not exist
// yet. Controlled by SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD; skipped when
// either is unset.
func SeedAdminUser() {
	email := strings.ToLower(os.Getenv("SEED_ADMIN_EMAIL"))
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("⚠️ SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD not set. Skipping admin seed.")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var existing models.User
	err := DB.UserCollection.FindOne(ctx, bson.M{"email": email}).Decode(&existing)
	if err == nil {
		return
	}
	if err != mongo.ErrNoDocuments {
		log.Println("❌ Failed to check for existing admin:", err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("❌ Failed to hash admin password:", err)
		return
	}

	user := models.User{
		ID:       primitive.NewObjectID(),
		Email:    email,
		Password: string(hash),
		Role:     models.RoleAdmin,
	}
	if _, err := DB.UserCollection.InsertOne(ctx, user); err != nil {
		log.Println("❌ Failed to seed admin user:", err)
		return
	}

	log.Printf("✅ Seeded admin user %s", email)
}
