package service

import (
	"context"

	apperrors "tourbook/internal/errors"
	"tourbook/internal/models"
	"tourbook/internal/query"
	"tourbook/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReviewService handles business logic for review operations.
type ReviewService struct {
	repo   repository.ReviewRepository
	tours  repository.TourRepository
	syncer *RatingSynchronizer
}

// NewReviewService creates a new ReviewService.
func NewReviewService(repo repository.ReviewRepository, tours repository.TourRepository, syncer *RatingSynchronizer) *ReviewService {
	return &ReviewService{
		repo:   repo,
		tours:  tours,
		syncer: syncer,
	}
}

// GetReviews lists reviews matching a translated query. A non-empty tourID
// (the nested route) narrows the filter to that tour.
func (s *ReviewService) GetReviews(ctx context.Context, q *query.Query, tourID string) ([]models.Review, error) {
	if tourID != "" {
		objectID, err := primitive.ObjectIDFromHex(tourID)
		if err != nil {
			return nil, apperrors.ErrTourNotFound
		}
		q.Filter["tour"] = objectID
	}
	return s.repo.FindAll(ctx, q)
}

// GetReview retrieves a single review by ID.
func (s *ReviewService) GetReview(ctx context.Context, id string) (*models.Review, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrReviewNotFound
	}
	return s.repo.FindByID(ctx, objectID)
}

// CreateReview creates a review and resynchronizes the tour's rating stats.
// On the nested route the tour comes from the URL and the user from the
// token when the body omits them.
func (s *ReviewService) CreateReview(ctx context.Context, req *models.CreateReviewRequest, tourIDParam, userID string) (*models.Review, error) {
	rawTour := req.Tour
	if rawTour == "" {
		rawTour = tourIDParam
	}
	tourID, err := primitive.ObjectIDFromHex(rawTour)
	if err != nil {
		return nil, apperrors.ErrTourNotFound
	}

	rawUser := req.User
	if rawUser == "" {
		rawUser = userID
	}
	reviewerID, err := primitive.ObjectIDFromHex(rawUser)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	// The tour must exist before a review can point at it.
	if _, err := s.tours.FindByID(ctx, tourID); err != nil {
		return nil, err
	}

	rating := req.Rating
	if rating == 0 {
		rating = models.DefaultReviewRating
	}

	review := &models.Review{
		Review: req.Review,
		Rating: rating,
		TourID: tourID,
		UserID: reviewerID,
	}

	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}

	if err := s.syncer.Recalc(ctx, tourID); err != nil {
		return nil, err
	}

	return review, nil
}

// UpdateReview updates a review and resynchronizes the owning tour. The
// tour id is captured before the mutation executes; afterwards the match
// context is gone.
func (s *ReviewService) UpdateReview(ctx context.Context, id string, req *models.UpdateReviewRequest) (*models.Review, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrReviewNotFound
	}

	existing, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}

	review, err := s.repo.Update(ctx, objectID, req)
	if err != nil {
		return nil, err
	}

	if err := s.syncer.Recalc(ctx, existing.TourID); err != nil {
		return nil, err
	}

	return review, nil
}

// DeleteReview deletes a review and resynchronizes the owning tour, using
// the same capture-then-recompute protocol as UpdateReview.
func (s *ReviewService) DeleteReview(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrReviewNotFound
	}

	existing, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, objectID); err != nil {
		return err
	}

	return s.syncer.Recalc(ctx, existing.TourID)
}
