package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/seareny/tastebook/internal/httperr"
	"github.com/seareny/tastebook/internal/models"
)

// userCollection is the slice of *mongo.Collection the user operations use.
type userCollection interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
}

// UserService owns the users collection.
type UserService struct {
	users userCollection
}

func NewUserService(database *mongo.Database) *UserService {
	return &UserService{users: database.Collection("users")}
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// VerifyPassword compares a plain password with a hashed password
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Register creates a new user. The username is stored lowercased; a taken
// name (case-insensitively) is a Conflict the form can recover from.
func (s *UserService) Register(ctx context.Context, username, password string) (models.User, error) {
	username = models.NormalizeUsername(username)

	var existing models.User
	err := s.users.FindOne(ctx, bson.M{"username": username}).Decode(&existing)
	if err == nil {
		return models.User{}, httperr.ErrConflict
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, err
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username: username,
		Password: hashed,
	}
	if _, err := s.users.InsertOne(ctx, user); err != nil {
		// The unique index catches a concurrent registration of the same name.
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, httperr.ErrConflict
		}
		return models.User{}, err
	}
	return user, nil
}

// Login verifies credentials. Unknown username and wrong password fail
// with the same error so the response never reveals which one it was.
func (s *UserService) Login(ctx context.Context, username, password string) (models.User, error) {
	username = models.NormalizeUsername(username)

	var user models.User
	err := s.users.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, httperr.ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, err
	}
	if !VerifyPassword(password, user.Password) {
		return models.User{}, httperr.ErrInvalidCredentials
	}
	return user, nil
}

// Delete removes a user account. Recipes stamped with the username are left
// in place; their created_by simply no longer resolves to a user.
func (s *UserService) Delete(ctx context.Context, username string) error {
	_, err := s.users.DeleteOne(ctx, bson.M{"username": models.NormalizeUsername(username)})
	return err
}
