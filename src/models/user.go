package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is an administrator account. Password holds the bcrypt hash and is
// never serialized back to the client.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password,omitempty" json:"-"`
	Role     string             `bson:"role" json:"role"`
}

const RoleAdmin = "admin"
