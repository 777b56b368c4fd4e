package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Username string             `bson:"username" json:"username"`
	Password string             `bson:"password,omitempty" json:"-"`
}

// NormalizeUsername lowercases a username. The lowercased form is the
// canonical identity stored in users, sessions and recipe ownership stamps.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
