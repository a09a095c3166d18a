package repository

import (
	"context"
	"errors"
	"time"

	authdomain "gadgetverse-backend/internal/auth/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// userRepository implements UserRepository against the users collection
type userRepository struct {
	users *mongo.Collection
}

// NewUserRepository creates a new instance of userRepository
func NewUserRepository(users *mongo.Collection) UserRepository {
	return &userRepository{
		users: users,
	}
}

func (r *userRepository) Create(ctx context.Context, user *authdomain.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	result, err := r.users.InsertOne(ctx, user)
	if err != nil {
		// The unique index on email closes the check-then-insert race.
		if mongo.IsDuplicateKeyError(err) {
			return authdomain.ErrEmailTaken
		}
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*authdomain.User, error) {
	var user authdomain.User
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
