package service

import (
	"context"
	"math"
	"sync"

	"tourbook/internal/cache"
	"tourbook/internal/models"
	"tourbook/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RatingSynchronizer keeps a tour's ratingsQuantity and ratingsAverage in
// sync with its review collection. It is the only writer of those fields
// outside direct admin edits.
type RatingSynchronizer struct {
	reviews repository.ReviewRepository
	tours   repository.TourRepository
	cache   cache.Cache

	mu    sync.Mutex
	locks map[primitive.ObjectID]*sync.Mutex
}

// NewRatingSynchronizer creates a new RatingSynchronizer.
func NewRatingSynchronizer(reviews repository.ReviewRepository, tours repository.TourRepository, c cache.Cache) *RatingSynchronizer {
	return &RatingSynchronizer{
		reviews: reviews,
		tours:   tours,
		cache:   c,
		locks:   make(map[primitive.ObjectID]*sync.Mutex),
	}
}

// Recalc recomputes the rating statistics for one tour from its reviews and
// persists them. A tour with no reviews is reset to quantity 0 and the
// default average, never left with a stale value.
//
// Recomputation is serialized per tour id so two in-process review writes
// cannot overwrite each other's stats with a stale read. Writers in other
// processes remain last-writer-wins.
func (s *RatingSynchronizer) Recalc(ctx context.Context, tourID primitive.ObjectID) error {
	lock := s.lockFor(tourID)
	lock.Lock()
	defer lock.Unlock()

	stats, err := s.reviews.AggregateRatings(ctx, tourID)
	if err != nil {
		return err
	}

	quantity := stats.Quantity
	average := stats.Average
	if quantity == 0 {
		average = models.DefaultRatingsAverage
	}
	average = math.Round(average*10) / 10

	if err := s.tours.UpdateRatingStats(ctx, tourID, quantity, average); err != nil {
		return err
	}

	// The cached tour now carries stale stats (best effort).
	_ = s.cache.Delete(ctx, cache.TourCacheKey(tourID.Hex()))

	return nil
}

// lockFor returns the mutex guarding one tour's recomputation. Locks live
// for the process lifetime; the map is bounded by the number of distinct
// tours reviewed.
func (s *RatingSynchronizer) lockFor(tourID primitive.ObjectID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[tourID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[tourID] = lock
	}
	return lock
}
