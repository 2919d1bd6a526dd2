package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"selexia/internal/models/db_models"
	"selexia/internal/models/request_models"
	"selexia/internal/models/response_models"
	"selexia/internal/repositories"
	"selexia/pkg/utils"
)

type BookingServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, request request_models.CreateBookingRequest) (response_models.BookingResponse, error)
	Get(ctx context.Context, userID uuid.UUID, role string, bookingID uuid.UUID) (response_models.BookingResponse, error)
	ListMine(ctx context.Context, userID uuid.UUID, page, pageSize int) (response_models.Page[response_models.BookingResponse], error)

	// Cancel is the user-facing transition; everything else goes
	// through UpdateStatus, which is admin-only.
	Cancel(ctx context.Context, userID uuid.UUID, bookingID uuid.UUID) (response_models.BookingResponse, error)
	ListAll(ctx context.Context, status string, page, pageSize int) (response_models.Page[response_models.BookingResponse], error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, request request_models.UpdateBookingStatusRequest) (response_models.BookingResponse, error)
}

type BookingService struct {
	bookingRepo   repositories.BookingRepository
	excursionRepo repositories.ExcursionRepository
	mailService   MailServiceInterface
}

func NewBookingService(
	bookingRepo repositories.BookingRepository,
	excursionRepo repositories.ExcursionRepository,
	mailService MailServiceInterface,
) BookingServiceInterface {
	return &BookingService{
		bookingRepo:   bookingRepo,
		excursionRepo: excursionRepo,
		mailService:   mailService,
	}
}

func (b *BookingService) Create(ctx context.Context, userID uuid.UUID, request request_models.CreateBookingRequest) (response_models.BookingResponse, error) {
	var empty response_models.BookingResponse

	if request.Date == "" {
		return empty, utils.ErrDateRequired
	}
	date, err := utils.ParseDate(request.Date)
	if err != nil {
		return empty, utils.ErrInvalidInput
	}
	if utils.BeforeToday(date) {
		return empty, utils.ErrDateInPast
	}
	if request.PeopleCount < 1 {
		return empty, utils.ErrPeopleCountTooLow
	}

	excursionID, err := uuid.Parse(request.ExcursionID)
	if err != nil {
		return empty, utils.ErrInvalidInput
	}

	excursion, err := b.excursionRepo.FindByID(ctx, excursionID)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}
	if excursion == nil || excursion.Status != db_models.ExcursionStatusPublished {
		return empty, utils.ErrExcursionNotFound
	}
	if request.PeopleCount > excursion.MaxPeople {
		return empty, fmt.Errorf("%w: maximum %d people", utils.ErrCapacityExceeded, excursion.MaxPeople)
	}

	booking := &db_models.Booking{
		ExcursionID: excursionID,
		UserID:      userID,
		Date:        date,
		PeopleCount: request.PeopleCount,
		// Group price per departure, independent of head count.
		TotalPrice:      excursion.Price,
		Status:          db_models.BookingStatusPending,
		SpecialRequests: request.SpecialRequests,
		ContactPhone:    request.ContactPhone,
		ContactEmail:    request.ContactEmail,
	}

	id, err := b.bookingRepo.Create(ctx, booking)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}

	created, err := b.bookingRepo.FindByID(ctx, id)
	if err != nil || created == nil {
		return empty, utils.ErrDatabaseError
	}

	if err := b.mailService.SendBookingCreated(created, &created.User); err != nil {
		log.Printf("booking notification for %s failed: %v", id, err)
	}

	return toBookingResponse(created), nil
}

func (b *BookingService) Get(ctx context.Context, userID uuid.UUID, role string, bookingID uuid.UUID) (response_models.BookingResponse, error) {
	booking, err := b.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return response_models.BookingResponse{}, utils.ErrDatabaseError
	}
	if booking == nil {
		return response_models.BookingResponse{}, utils.ErrBookingNotFound
	}
	if booking.UserID != userID && role != "admin" {
		return response_models.BookingResponse{}, utils.ErrForbidden
	}
	return toBookingResponse(booking), nil
}

func (b *BookingService) ListMine(ctx context.Context, userID uuid.UUID, page, pageSize int) (response_models.Page[response_models.BookingResponse], error) {
	var empty response_models.Page[response_models.BookingResponse]
	if err := validatePaging(page, pageSize); err != nil {
		return empty, err
	}

	bookings, total, err := b.bookingRepo.ListByUser(ctx, userID, page, pageSize)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}

	items := make([]response_models.BookingResponse, 0, len(bookings))
	for i := range bookings {
		items = append(items, toBookingResponse(&bookings[i]))
	}
	return response_models.NewPage(items, page, pageSize, total), nil
}

func (b *BookingService) Cancel(ctx context.Context, userID uuid.UUID, bookingID uuid.UUID) (response_models.BookingResponse, error) {
	var empty response_models.BookingResponse

	booking, err := b.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}
	if booking == nil {
		return empty, utils.ErrBookingNotFound
	}
	if booking.UserID != userID {
		return empty, utils.ErrForbidden
	}
	if booking.Status != db_models.BookingStatusPending {
		return empty, utils.ErrBookingNotPending
	}

	if err := b.bookingRepo.UpdateStatus(ctx, bookingID, db_models.BookingStatusCancelled); err != nil {
		return empty, utils.ErrDatabaseError
	}
	booking.Status = db_models.BookingStatusCancelled

	if err := b.mailService.SendBookingStatusChanged(booking, &booking.User); err != nil {
		log.Printf("cancellation notification for %s failed: %v", bookingID, err)
	}

	return toBookingResponse(booking), nil
}

func (b *BookingService) ListAll(ctx context.Context, status string, page, pageSize int) (response_models.Page[response_models.BookingResponse], error) {
	var empty response_models.Page[response_models.BookingResponse]
	if err := validatePaging(page, pageSize); err != nil {
		return empty, err
	}

	switch status {
	case "", string(db_models.BookingStatusPending), string(db_models.BookingStatusConfirmed),
		string(db_models.BookingStatusCancelled), string(db_models.BookingStatusCompleted):
	default:
		return empty, utils.ErrInvalidInput
	}

	bookings, total, err := b.bookingRepo.ListAll(ctx, status, page, pageSize)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}

	items := make([]response_models.BookingResponse, 0, len(bookings))
	for i := range bookings {
		items = append(items, toBookingResponse(&bookings[i]))
	}
	return response_models.NewPage(items, page, pageSize, total), nil
}

func (b *BookingService) UpdateStatus(ctx context.Context, bookingID uuid.UUID, request request_models.UpdateBookingStatusRequest) (response_models.BookingResponse, error) {
	var empty response_models.BookingResponse

	booking, err := b.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}
	if booking == nil {
		return empty, utils.ErrBookingNotFound
	}

	next := db_models.BookingStatus(request.Status)
	if !booking.CanTransitionTo(next) {
		return empty, utils.ErrInvalidTransition
	}

	if err := b.bookingRepo.UpdateStatus(ctx, bookingID, next); err != nil {
		return empty, utils.ErrDatabaseError
	}
	booking.Status = next

	if err := b.mailService.SendBookingStatusChanged(booking, &booking.User); err != nil {
		log.Printf("status notification for %s failed: %v", bookingID, err)
	}

	return toBookingResponse(booking), nil
}
