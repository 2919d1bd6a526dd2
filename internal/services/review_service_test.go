package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selexia/internal/models/db_models"
	"selexia/internal/models/request_models"
	"selexia/pkg/utils"
)

func reviewFixture(t *testing.T, eligible bool) (ReviewServiceInterface, *db_models.Excursion) {
	t.Helper()
	excursion := publishedExcursion(120, 10)
	excursionRepo := newFakeExcursionRepo(excursion)
	bookingRepo := newFakeBookingRepo(excursionRepo)
	bookingRepo.eligible = eligible
	return NewReviewService(newFakeReviewRepo(), bookingRepo, excursionRepo), excursion
}

func TestReviewService_Create_RequiresEligibleBooking(t *testing.T) {
	svc, excursion := reviewFixture(t, false)

	_, err := svc.Create(context.Background(), uuid.New(), request_models.CreateReviewRequest{
		ExcursionID: excursion.ID.String(),
		Rating:      5,
		Text:        "Great trip",
	})

	assert.ErrorIs(t, err, utils.ErrReviewNotEligible)
}

func TestReviewService_Create_Success(t *testing.T) {
	svc, excursion := reviewFixture(t, true)

	resp, err := svc.Create(context.Background(), uuid.New(), request_models.CreateReviewRequest{
		ExcursionID: excursion.ID.String(),
		Rating:      5,
		Text:        "Great trip",
	})

	require.NoError(t, err)
	assert.Equal(t, 5, resp.Rating)
	assert.True(t, resp.IsApproved)
}

func TestReviewService_Create_OnePerExcursion(t *testing.T) {
	svc, excursion := reviewFixture(t, true)
	userID := uuid.New()

	req := request_models.CreateReviewRequest{
		ExcursionID: excursion.ID.String(),
		Rating:      4,
		Text:        "Nice",
	}
	_, err := svc.Create(context.Background(), userID, req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), userID, req)
	assert.ErrorIs(t, err, utils.ErrReviewExists)

	// A different user still gets through.
	_, err = svc.Create(context.Background(), uuid.New(), req)
	require.NoError(t, err)
}

func TestReviewService_Create_RatingBounds(t *testing.T) {
	svc, excursion := reviewFixture(t, true)

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Create(context.Background(), uuid.New(), request_models.CreateReviewRequest{
			ExcursionID: excursion.ID.String(),
			Rating:      rating,
			Text:        "text",
		})
		assert.ErrorIs(t, err, utils.ErrInvalidRating, "rating %d", rating)
	}
}

func TestReviewService_Update_OwnerOnly(t *testing.T) {
	svc, excursion := reviewFixture(t, true)
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, request_models.CreateReviewRequest{
		ExcursionID: excursion.ID.String(),
		Rating:      3,
		Text:        "Average",
	})
	require.NoError(t, err)
	reviewID := uuid.MustParse(created.ID)

	newRating := 5
	_, err = svc.Update(context.Background(), uuid.New(), reviewID, request_models.UpdateReviewRequest{Rating: &newRating})
	assert.ErrorIs(t, err, utils.ErrForbidden)

	updated, err := svc.Update(context.Background(), owner, reviewID, request_models.UpdateReviewRequest{Rating: &newRating})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)
}

func TestReviewService_Delete_AdminOverride(t *testing.T) {
	svc, excursion := reviewFixture(t, true)
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, request_models.CreateReviewRequest{
		ExcursionID: excursion.ID.String(),
		Rating:      2,
		Text:        "Bad weather",
	})
	require.NoError(t, err)
	reviewID := uuid.MustParse(created.ID)

	err = svc.Delete(context.Background(), uuid.New(), "user", reviewID)
	assert.ErrorIs(t, err, utils.ErrForbidden)

	err = svc.Delete(context.Background(), uuid.New(), "admin", reviewID)
	require.NoError(t, err)

	err = svc.Delete(context.Background(), owner, "user", reviewID)
	assert.ErrorIs(t, err, utils.ErrReviewNotFound)
}

func TestReviewService_Create_UnknownExcursion(t *testing.T) {
	svc, _ := reviewFixture(t, true)

	_, err := svc.Create(context.Background(), uuid.New(), request_models.CreateReviewRequest{
		ExcursionID: uuid.New().String(),
		Rating:      4,
		Text:        "text",
	})

	assert.ErrorIs(t, err, utils.ErrExcursionNotFound)
}
