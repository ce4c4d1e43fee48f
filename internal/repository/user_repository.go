package repository

import (
	"context"
	"errors"
	"time"

	apperrors "tourbook/internal/errors"
	"tourbook/internal/models"
	"tourbook/internal/query"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context, q *query.Query) ([]models.User, error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateUserRequest) (*models.User, error)
	UpdatePassword(ctx context.Context, id primitive.ObjectID, hashedPassword string, changedAt time.Time) error
	SetResetToken(ctx context.Context, id primitive.ObjectID, hashedToken string, expires time.Time) error
	ClearResetToken(ctx context.Context, id primitive.ObjectID) error
	FindByResetToken(ctx context.Context, hashedToken string) (*models.User, error)
	Deactivate(ctx context.Context, id primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// userRepository implements UserRepository using MongoDB.
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{
		collection: db.Collection("users"),
	}
}

// activeOnly is the read-path stage that hides soft-deleted accounts.
func activeOnly(filter bson.M) bson.M {
	if filter == nil {
		filter = bson.M{}
	}
	filter["active"] = bson.M{"$ne": false}
	return filter
}

// Create inserts a new user into the database.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	now := time.Now()
	user.Active = true
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Photo == "" {
		user.Photo = models.DefaultUserPhoto
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrEmailTaken
		}
		return err
	}

	user.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds an active user by their ID.
func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User

	err := r.collection.FindOne(ctx, activeOnly(bson.M{"_id": id})).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// FindByEmail finds an active user by their email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	err := r.collection.FindOne(ctx, activeOnly(bson.M{"email": email})).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// FindAll executes a translated query against active users.
func (r *userRepository) FindAll(ctx context.Context, q *query.Query) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, activeOnly(q.Filter), q.FindOptions())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// Update applies a partial profile update.
func (r *userRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateUserRequest) (*models.User, error) {
	updateDoc := bson.M{"updatedAt": time.Now()}

	if update.Name != nil {
		updateDoc["name"] = *update.Name
	}
	if update.Email != nil {
		updateDoc["email"] = *update.Email
	}
	if update.Role != nil {
		updateDoc["role"] = *update.Role
	}
	if update.Photo != nil {
		updateDoc["photo"] = *update.Photo
	}

	result := r.collection.FindOneAndUpdate(
		ctx,
		activeOnly(bson.M{"_id": id}),
		bson.M{"$set": updateDoc},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		if errors.Is(result.Err(), mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		if mongo.IsDuplicateKeyError(result.Err()) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, result.Err()
	}

	var user models.User
	if err := result.Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdatePassword stores a new password hash and stamps passwordChangedAt.
// The changed-at stamp is what invalidates previously issued tokens.
func (r *userRepository) UpdatePassword(ctx context.Context, id primitive.ObjectID, hashedPassword string, changedAt time.Time) error {
	result, err := r.collection.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{
			"password":          hashedPassword,
			"passwordChangedAt": changedAt,
			"updatedAt":         time.Now(),
		},
		"$unset": bson.M{
			"passwordResetToken":   "",
			"passwordResetExpires": "",
		},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// SetResetToken stores the hashed reset token and its expiry.
func (r *userRepository) SetResetToken(ctx context.Context, id primitive.ObjectID, hashedToken string, expires time.Time) error {
	result, err := r.collection.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"passwordResetToken":   hashedToken,
		"passwordResetExpires": expires,
	}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// ClearResetToken removes an outstanding reset token, e.g. when the email
// could not be sent.
func (r *userRepository) ClearResetToken(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.UpdateByID(ctx, id, bson.M{"$unset": bson.M{
		"passwordResetToken":   "",
		"passwordResetExpires": "",
	}})
	return err
}

// FindByResetToken finds the user holding a non-expired reset token hash.
func (r *userRepository) FindByResetToken(ctx context.Context, hashedToken string) (*models.User, error) {
	var user models.User

	err := r.collection.FindOne(ctx, bson.M{
		"passwordResetToken":   hashedToken,
		"passwordResetExpires": bson.M{"$gt": time.Now()},
	}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrResetTokenInvalid
		}
		return nil, err
	}

	return &user, nil
}

// Deactivate soft-deletes an account; default reads no longer see it.
func (r *userRepository) Deactivate(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"active":    false,
		"updatedAt": time.Now(),
	}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// Delete removes a user permanently. Admin only; regular users are
// deactivated instead.
func (r *userRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}
