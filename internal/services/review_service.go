package services

import (
	"context"

	"github.com/google/uuid"

	"selexia/internal/models/db_models"
	"selexia/internal/models/request_models"
	"selexia/internal/models/response_models"
	"selexia/internal/repositories"
	"selexia/pkg/utils"
)

type ReviewServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, request request_models.CreateReviewRequest) (response_models.ReviewResponse, error)
	Update(ctx context.Context, userID uuid.UUID, reviewID uuid.UUID, request request_models.UpdateReviewRequest) (response_models.ReviewResponse, error)
	Delete(ctx context.Context, userID uuid.UUID, role string, reviewID uuid.UUID) error
	ListByExcursion(ctx context.Context, excursionSlug string, page, pageSize int) (response_models.Page[response_models.ReviewResponse], error)

	Moderate(ctx context.Context, reviewID uuid.UUID, approved bool) (response_models.ReviewResponse, error)
	ListPending(ctx context.Context, page, pageSize int) (response_models.Page[response_models.ReviewResponse], error)
}

type ReviewService struct {
	reviewRepo    repositories.ReviewRepository
	bookingRepo   repositories.BookingRepository
	excursionRepo repositories.ExcursionRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	bookingRepo repositories.BookingRepository,
	excursionRepo repositories.ExcursionRepository,
) ReviewServiceInterface {
	return &ReviewService{
		reviewRepo:    reviewRepo,
		bookingRepo:   bookingRepo,
		excursionRepo: excursionRepo,
	}
}

// Create admits a review only from users who actually went: a
// confirmed or completed booking is required, one review per user per
// excursion.
func (r *ReviewService) Create(ctx context.Context, userID uuid.UUID, request request_models.CreateReviewRequest) (response_models.ReviewResponse, error) {
	var empty response_models.ReviewResponse

	if request.Rating < 1 || request.Rating > 5 {
		return empty, utils.ErrInvalidRating
	}

	excursionID, err := uuid.Parse(request.ExcursionID)
	if err != nil {
		return empty, utils.ErrInvalidInput
	}

	excursion, err := r.excursionRepo.FindByID(ctx, excursionID)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}
	if excursion == nil {
		return empty, utils.ErrExcursionNotFound
	}

	eligible, err := r.bookingRepo.HasEligibleBooking(ctx, userID, excursionID)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}
	if !eligible {
		return empty, utils.ErrReviewNotEligible
	}

	existing, err := r.reviewRepo.FindByUserAndExcursion(ctx, userID, excursionID)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}
	if existing != nil {
		return empty, utils.ErrReviewExists
	}

	review := &db_models.Review{
		ExcursionID: excursionID,
		UserID:      userID,
		Rating:      request.Rating,
		Text:        request.Text,
		IsApproved:  true,
		Images:      request.Images,
	}

	id, err := r.reviewRepo.Create(ctx, review)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}

	created, err := r.reviewRepo.FindByID(ctx, id)
	if err != nil || created == nil {
		return empty, utils.ErrDatabaseError
	}
	return toReviewResponse(created), nil
}

func (r *ReviewService) Update(ctx context.Context, userID uuid.UUID, reviewID uuid.UUID, request request_models.UpdateReviewRequest) (response_models.ReviewResponse, error) {
	var empty response_models.ReviewResponse

	review, err := r.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}
	if review == nil {
		return empty, utils.ErrReviewNotFound
	}
	if review.UserID != userID {
		return empty, utils.ErrForbidden
	}

	if request.Rating != nil {
		if *request.Rating < 1 || *request.Rating > 5 {
			return empty, utils.ErrInvalidRating
		}
		review.Rating = *request.Rating
	}
	if request.Text != nil {
		review.Text = *request.Text
	}

	if err := r.reviewRepo.Update(ctx, review); err != nil {
		return empty, utils.ErrDatabaseError
	}
	return toReviewResponse(review), nil
}

func (r *ReviewService) Delete(ctx context.Context, userID uuid.UUID, role string, reviewID uuid.UUID) error {
	review, err := r.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if review == nil {
		return utils.ErrReviewNotFound
	}
	if review.UserID != userID && role != "admin" {
		return utils.ErrForbidden
	}

	if err := r.reviewRepo.Delete(ctx, reviewID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (r *ReviewService) ListByExcursion(ctx context.Context, excursionSlug string, page, pageSize int) (response_models.Page[response_models.ReviewResponse], error) {
	var empty response_models.Page[response_models.ReviewResponse]
	if err := validatePaging(page, pageSize); err != nil {
		return empty, err
	}

	excursion, err := r.excursionRepo.FindBySlug(ctx, excursionSlug)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}
	if excursion == nil {
		return empty, utils.ErrExcursionNotFound
	}

	reviews, total, err := r.reviewRepo.ListApprovedByExcursion(ctx, excursion.ID, page, pageSize)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}

	items := make([]response_models.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		items = append(items, toReviewResponse(&reviews[i]))
	}
	return response_models.NewPage(items, page, pageSize, total), nil
}

func (r *ReviewService) Moderate(ctx context.Context, reviewID uuid.UUID, approved bool) (response_models.ReviewResponse, error) {
	var empty response_models.ReviewResponse

	review, err := r.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}
	if review == nil {
		return empty, utils.ErrReviewNotFound
	}

	if err := r.reviewRepo.SetApproval(ctx, reviewID, approved); err != nil {
		return empty, utils.ErrDatabaseError
	}
	review.IsApproved = approved
	return toReviewResponse(review), nil
}

func (r *ReviewService) ListPending(ctx context.Context, page, pageSize int) (response_models.Page[response_models.ReviewResponse], error) {
	var empty response_models.Page[response_models.ReviewResponse]
	if err := validatePaging(page, pageSize); err != nil {
		return empty, err
	}

	reviews, total, err := r.reviewRepo.ListPending(ctx, page, pageSize)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}

	items := make([]response_models.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		items = append(items, toReviewResponse(&reviews[i]))
	}
	return response_models.NewPage(items, page, pageSize, total), nil
}
