package service

import (
	"context"
	"fmt"
	"time"

	"tourbook/internal/models"
	"tourbook/internal/query"
	"tourbook/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "tourbook/internal/errors"
)

const photoURLExpiry = 15 * time.Minute

// UserService handles business logic for user operations.
type UserService struct {
	repo   repository.UserRepository
	photos PhotoStorage
}

// NewUserService creates a new UserService.
func NewUserService(repo repository.UserRepository, photos PhotoStorage) *UserService {
	return &UserService{
		repo:   repo,
		photos: photos,
	}
}

// GetUsers lists users matching a translated query.
func (s *UserService) GetUsers(ctx context.Context, q *query.Query) ([]models.User, error) {
	return s.repo.FindAll(ctx, q)
}

// GetUser retrieves a single user by ID.
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	return s.repo.FindByID(ctx, objectID)
}

// UpdateUser applies an admin update to any user, role included.
func (s *UserService) UpdateUser(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	return s.repo.Update(ctx, objectID, req)
}

// DeleteUser removes a user permanently.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrUserNotFound
	}
	return s.repo.Delete(ctx, objectID)
}

// UpdateMe lets a user edit their own profile. Role changes never pass
// through here; the request type has no role field.
func (s *UserService) UpdateMe(ctx context.Context, id string, req *models.UpdateMeRequest) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	update := &models.UpdateUserRequest{
		Name:  req.Name,
		Email: req.Email,
		Photo: req.Photo,
	}
	return s.repo.Update(ctx, objectID, update)
}

// DeactivateMe soft-deletes the calling user's account.
func (s *UserService) DeactivateMe(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrUserNotFound
	}
	return s.repo.Deactivate(ctx, objectID)
}

// PhotoUploadURL issues a pre-signed upload URL for the user's profile
// photo. The caller PUTs the image there, then saves the returned key via
// UpdateMe.
func (s *UserService) PhotoUploadURL(ctx context.Context, id string) (uploadURL, photoKey string, err error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", "", apperrors.ErrUserNotFound
	}
	if _, err := s.repo.FindByID(ctx, objectID); err != nil {
		return "", "", err
	}

	photoKey = fmt.Sprintf("users/%s/photo-%d.jpg", id, time.Now().Unix())
	uploadURL, err = s.photos.PresignPut(ctx, photoKey, photoURLExpiry)
	if err != nil {
		return "", "", err
	}
	return uploadURL, photoKey, nil
}
