package repository

import (
	"context"
	"testing"

	apperrors "tourbook/internal/errors"
	"tourbook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBookingRepository_Create(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewBookingRepository(tdb.Database)
	ctx := context.Background()

	tdb.ClearCollection(t, "bookings")

	booking := &models.Booking{
		TourID: primitive.NewObjectID(),
		UserID: primitive.NewObjectID(),
		Price:  497,
		Paid:   true,
	}

	err := repo.Create(ctx, booking)

	require.NoError(t, err)
	assert.False(t, booking.ID.IsZero())
	assert.NotZero(t, booking.CreatedAt)
}

func TestBookingRepository_FindByUserID(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewBookingRepository(tdb.Database)
	ctx := context.Background()

	tdb.ClearCollection(t, "bookings")

	userID := primitive.NewObjectID()

	mine1 := &models.Booking{TourID: primitive.NewObjectID(), UserID: userID, Price: 100, Paid: true}
	mine2 := &models.Booking{TourID: primitive.NewObjectID(), UserID: userID, Price: 200, Paid: true}
	other := &models.Booking{TourID: primitive.NewObjectID(), UserID: primitive.NewObjectID(), Price: 300, Paid: true}

	for _, booking := range []*models.Booking{mine1, mine2, other} {
		require.NoError(t, repo.Create(ctx, booking))
	}

	bookings, err := repo.FindByUserID(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, bookings, 2)
	for _, booking := range bookings {
		assert.Equal(t, userID, booking.UserID)
	}
}

func TestBookingRepository_Update(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewBookingRepository(tdb.Database)
	ctx := context.Background()

	t.Run("updates paid state", func(t *testing.T) {
		tdb.ClearCollection(t, "bookings")

		booking := &models.Booking{TourID: primitive.NewObjectID(), UserID: primitive.NewObjectID(), Price: 497}
		require.NoError(t, repo.Create(ctx, booking))

		paid := true
		updated, err := repo.Update(ctx, booking.ID, &models.UpdateBookingRequest{Paid: &paid})

		require.NoError(t, err)
		assert.True(t, updated.Paid)
	})

	t.Run("returns error for non-existent booking", func(t *testing.T) {
		tdb.ClearCollection(t, "bookings")

		price := 100.0
		_, err := repo.Update(ctx, primitive.NewObjectID(), &models.UpdateBookingRequest{Price: &price})

		assert.Equal(t, apperrors.ErrBookingNotFound, err)
	})
}

func TestBookingRepository_Delete(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewBookingRepository(tdb.Database)
	ctx := context.Background()

	tdb.ClearCollection(t, "bookings")

	booking := &models.Booking{TourID: primitive.NewObjectID(), UserID: primitive.NewObjectID(), Price: 497}
	require.NoError(t, repo.Create(ctx, booking))

	require.NoError(t, repo.Delete(ctx, booking.ID))

	_, err := repo.FindByID(ctx, booking.ID)
	assert.Equal(t, apperrors.ErrBookingNotFound, err)
}
