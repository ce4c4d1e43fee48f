package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"tourbook/internal/cache"
	apperrors "tourbook/internal/errors"
	"tourbook/internal/models"
	"tourbook/internal/query"
	"tourbook/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	tourCacheTTL  = 15 * time.Minute
	statsCacheTTL = 5 * time.Minute

	// Earth radii used to convert a surface distance to radians for
	// $centerSphere queries.
	earthRadiusMiles = 3963.2
	earthRadiusKm    = 6378.1

	metersPerMile = 0.000621371
	metersPerKm   = 0.001
)

// TourService handles business logic for tour operations.
type TourService struct {
	repo    repository.TourRepository
	reviews repository.ReviewRepository
	cache   cache.Cache
}

// NewTourService creates a new TourService.
func NewTourService(repo repository.TourRepository, reviews repository.ReviewRepository, c cache.Cache) *TourService {
	return &TourService{
		repo:    repo,
		reviews: reviews,
		cache:   c,
	}
}

// GetTours lists tours matching a translated query.
func (s *TourService) GetTours(ctx context.Context, q *query.Query) ([]models.Tour, error) {
	return s.repo.FindAll(ctx, q)
}

// GetTour retrieves a single tour with its reviews joined in. The bare tour
// is cached; the review list is always read fresh.
func (s *TourService) GetTour(ctx context.Context, id string) (*models.TourWithReviews, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrTourNotFound
	}

	cacheKey := cache.TourCacheKey(id)
	var tour models.Tour
	found, err := s.cache.Get(ctx, cacheKey, &tour)
	if err != nil || !found {
		dbTour, err := s.repo.FindByID(ctx, objectID)
		if err != nil {
			return nil, err
		}
		tour = *dbTour

		// Store in cache (ignore errors - cache is best effort)
		_ = s.cache.Set(ctx, cacheKey, tour, tourCacheTTL)
	}
	tour.ComputeDerived()

	reviews, err := s.reviews.FindByTourID(ctx, objectID)
	if err != nil {
		return nil, err
	}

	return &models.TourWithReviews{Tour: tour, Reviews: reviews}, nil
}

// CreateTour creates a tour after validating the discount invariant.
func (s *TourService) CreateTour(ctx context.Context, req *models.CreateTourRequest) (*models.Tour, error) {
	if req.PriceDiscount != 0 && req.PriceDiscount >= req.Price {
		return nil, apperrors.ErrInvalidDiscount
	}

	guides, err := parseGuideIDs(req.Guides)
	if err != nil {
		return nil, err
	}

	tour := &models.Tour{
		Name:            req.Name,
		Duration:        req.Duration,
		MaxGroupSize:    req.MaxGroupSize,
		Difficulty:      req.Difficulty,
		RatingsAverage:  models.DefaultRatingsAverage,
		RatingsQuantity: 0,
		Price:           req.Price,
		PriceDiscount:   req.PriceDiscount,
		Summary:         req.Summary,
		Description:     req.Description,
		ImageCover:      req.ImageCover,
		Images:          req.Images,
		StartDates:      req.StartDates,
		SecretTour:      req.SecretTour,
		StartLocation:   req.StartLocation,
		Locations:       req.Locations,
		Guides:          guides,
	}

	if err := s.repo.Create(ctx, tour); err != nil {
		return nil, err
	}

	return tour, nil
}

// UpdateTour applies a partial update, re-checking the discount invariant
// against the effective price.
func (s *TourService) UpdateTour(ctx context.Context, id string, req *models.UpdateTourRequest) (*models.Tour, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrTourNotFound
	}

	if req.PriceDiscount != nil {
		price := req.Price
		if price == nil {
			existing, err := s.repo.FindByID(ctx, objectID)
			if err != nil {
				return nil, err
			}
			price = &existing.Price
		}
		if *req.PriceDiscount >= *price {
			return nil, apperrors.ErrInvalidDiscount
		}
	}

	guides, err := parseGuideIDs(req.Guides)
	if err != nil {
		return nil, err
	}

	tour, err := s.repo.Update(ctx, objectID, req, guides)
	if err != nil {
		return nil, err
	}

	// Invalidate cache
	_ = s.cache.Delete(ctx, cache.TourCacheKey(id))

	return tour, nil
}

// DeleteTour removes a tour.
func (s *TourService) DeleteTour(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrTourNotFound
	}

	if err := s.repo.Delete(ctx, objectID); err != nil {
		return err
	}

	// Invalidate cache
	_ = s.cache.Delete(ctx, cache.TourCacheKey(id))

	return nil
}

// GetStats returns the per-difficulty tour statistics (cached briefly).
func (s *TourService) GetStats(ctx context.Context) ([]models.TourStats, error) {
	var stats []models.TourStats
	found, err := s.cache.Get(ctx, cache.TourStatsCacheKey, &stats)
	if err == nil && found {
		return stats, nil
	}

	stats, err = s.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Set(ctx, cache.TourStatsCacheKey, stats, statsCacheTTL)

	return stats, nil
}

// GetMonthlyPlan returns tour starts grouped per month for one year.
func (s *TourService) GetMonthlyPlan(ctx context.Context, year int) ([]models.MonthlyPlanEntry, error) {
	return s.repo.MonthlyPlan(ctx, year)
}

// GetToursWithin returns tours starting within the given distance of a
// center point expressed as "lat,lng".
func (s *TourService) GetToursWithin(ctx context.Context, distance float64, latlng, unit string) ([]models.Tour, error) {
	lat, lng, err := parseLatLng(latlng)
	if err != nil {
		return nil, err
	}

	var radius float64
	switch unit {
	case "mi":
		radius = distance / earthRadiusMiles
	case "km":
		radius = distance / earthRadiusKm
	default:
		return nil, apperrors.ErrInvalidUnit
	}

	return s.repo.FindWithin(ctx, lat, lng, radius)
}

// GetDistances returns each tour's distance from a point, in the requested
// unit.
func (s *TourService) GetDistances(ctx context.Context, latlng, unit string) ([]models.TourDistance, error) {
	lat, lng, err := parseLatLng(latlng)
	if err != nil {
		return nil, err
	}

	var multiplier float64
	switch unit {
	case "mi":
		multiplier = metersPerMile
	case "km":
		multiplier = metersPerKm
	default:
		return nil, apperrors.ErrInvalidUnit
	}

	return s.repo.Distances(ctx, lat, lng, multiplier)
}

// parseLatLng splits a "lat,lng" path segment into coordinates.
func parseLatLng(latlng string) (lat, lng float64, err error) {
	parts := strings.Split(latlng, ",")
	if len(parts) != 2 {
		return 0, 0, apperrors.ErrInvalidLatLng
	}

	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, apperrors.ErrInvalidLatLng
	}
	lng, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, apperrors.ErrInvalidLatLng
	}

	return lat, lng, nil
}

// parseGuideIDs converts guide id strings to ObjectIDs. nil input stays nil
// so updates can distinguish "unchanged" from "cleared".
func parseGuideIDs(raw []string) ([]primitive.ObjectID, error) {
	if raw == nil {
		return nil, nil
	}

	guides := make([]primitive.ObjectID, 0, len(raw))
	for _, id := range raw {
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, apperrors.ErrUserNotFound
		}
		guides = append(guides, objectID)
	}
	return guides, nil
}
