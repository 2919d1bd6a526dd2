package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selexia/internal/models/db_models"
	"selexia/internal/models/request_models"
	"selexia/pkg/utils"
)

func publishedExcursion(price float64, maxPeople int) *db_models.Excursion {
	return &db_models.Excursion{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		TitleRu:   "Обзорная экскурсия",
		TitleEn:   "City highlights",
		Slug:      "city-highlights",
		Price:     price,
		Currency:  "USD",
		MaxPeople: maxPeople,
		Status:    db_models.ExcursionStatusPublished,
	}
}

func bookingFixture(t *testing.T, excursion *db_models.Excursion) (BookingServiceInterface, *fakeBookingRepo, *fakeMailService) {
	t.Helper()
	excursionRepo := newFakeExcursionRepo(excursion)
	bookingRepo := newFakeBookingRepo(excursionRepo)
	mail := &fakeMailService{}
	return NewBookingService(bookingRepo, excursionRepo, mail), bookingRepo, mail
}

func tomorrow() string {
	return time.Now().UTC().AddDate(0, 0, 1).Format(utils.DateLayout)
}

func TestBookingService_Create_FlatPrice(t *testing.T) {
	excursion := publishedExcursion(150, 10)
	svc, _, mail := bookingFixture(t, excursion)
	userID := uuid.New()

	resp, err := svc.Create(context.Background(), userID, request_models.CreateBookingRequest{
		ExcursionID:  excursion.ID.String(),
		Date:         tomorrow(),
		PeopleCount:  3,
		ContactPhone: "+79990001122",
		ContactEmail: "guest@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
	// Group price, not per head.
	assert.Equal(t, 150.0, resp.TotalPrice)
	assert.Equal(t, 3, resp.PeopleCount)
	assert.Equal(t, []string{"booking_created"}, mail.sentKinds())
}

func TestBookingService_Create_CapacityBoundary(t *testing.T) {
	excursion := publishedExcursion(99, 10)
	svc, _, _ := bookingFixture(t, excursion)

	base := request_models.CreateBookingRequest{
		ExcursionID:  excursion.ID.String(),
		Date:         tomorrow(),
		ContactPhone: "+79990001122",
		ContactEmail: "guest@example.com",
	}

	atLimit := base
	atLimit.PeopleCount = 10
	_, err := svc.Create(context.Background(), uuid.New(), atLimit)
	require.NoError(t, err)

	overLimit := base
	overLimit.PeopleCount = 11
	_, err = svc.Create(context.Background(), uuid.New(), overLimit)
	assert.ErrorIs(t, err, utils.ErrCapacityExceeded)
	// The message tells the caller what the limit actually is.
	assert.Contains(t, err.Error(), "10")
}

func TestBookingService_Create_RejectsPastDate(t *testing.T) {
	excursion := publishedExcursion(99, 10)
	svc, _, _ := bookingFixture(t, excursion)

	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format(utils.DateLayout)
	_, err := svc.Create(context.Background(), uuid.New(), request_models.CreateBookingRequest{
		ExcursionID:  excursion.ID.String(),
		Date:         yesterday,
		PeopleCount:  2,
		ContactPhone: "+79990001122",
		ContactEmail: "guest@example.com",
	})

	assert.ErrorIs(t, err, utils.ErrDateInPast)
}

func TestBookingService_Create_TodayIsAllowed(t *testing.T) {
	excursion := publishedExcursion(99, 10)
	svc, _, _ := bookingFixture(t, excursion)

	today := time.Now().UTC().Format(utils.DateLayout)
	_, err := svc.Create(context.Background(), uuid.New(), request_models.CreateBookingRequest{
		ExcursionID:  excursion.ID.String(),
		Date:         today,
		PeopleCount:  1,
		ContactPhone: "+79990001122",
		ContactEmail: "guest@example.com",
	})

	require.NoError(t, err)
}

func TestBookingService_Create_RequiresDate(t *testing.T) {
	excursion := publishedExcursion(99, 10)
	svc, _, _ := bookingFixture(t, excursion)

	_, err := svc.Create(context.Background(), uuid.New(), request_models.CreateBookingRequest{
		ExcursionID:  excursion.ID.String(),
		PeopleCount:  1,
		ContactPhone: "+79990001122",
		ContactEmail: "guest@example.com",
	})

	assert.ErrorIs(t, err, utils.ErrDateRequired)
}

func TestBookingService_Create_RejectsZeroPeople(t *testing.T) {
	excursion := publishedExcursion(99, 10)
	svc, _, _ := bookingFixture(t, excursion)

	_, err := svc.Create(context.Background(), uuid.New(), request_models.CreateBookingRequest{
		ExcursionID:  excursion.ID.String(),
		Date:         tomorrow(),
		PeopleCount:  0,
		ContactPhone: "+79990001122",
		ContactEmail: "guest@example.com",
	})

	assert.ErrorIs(t, err, utils.ErrPeopleCountTooLow)
}

func TestBookingService_Create_DraftExcursionHidden(t *testing.T) {
	excursion := publishedExcursion(99, 10)
	excursion.Status = db_models.ExcursionStatusDraft
	svc, _, _ := bookingFixture(t, excursion)

	_, err := svc.Create(context.Background(), uuid.New(), request_models.CreateBookingRequest{
		ExcursionID:  excursion.ID.String(),
		Date:         tomorrow(),
		PeopleCount:  2,
		ContactPhone: "+79990001122",
		ContactEmail: "guest@example.com",
	})

	assert.ErrorIs(t, err, utils.ErrExcursionNotFound)
}

func TestBookingService_Create_MailFailureDoesNotFail(t *testing.T) {
	excursion := publishedExcursion(99, 10)
	excursionRepo := newFakeExcursionRepo(excursion)
	bookingRepo := newFakeBookingRepo(excursionRepo)
	mail := &fakeMailService{failAl: true}
	svc := NewBookingService(bookingRepo, excursionRepo, mail)

	_, err := svc.Create(context.Background(), uuid.New(), request_models.CreateBookingRequest{
		ExcursionID:  excursion.ID.String(),
		Date:         tomorrow(),
		PeopleCount:  2,
		ContactPhone: "+79990001122",
		ContactEmail: "guest@example.com",
	})

	require.NoError(t, err)
}

func TestBookingService_Cancel_PendingOnly(t *testing.T) {
	excursion := publishedExcursion(99, 10)
	svc, bookingRepo, _ := bookingFixture(t, excursion)
	userID := uuid.New()

	resp, err := svc.Create(context.Background(), userID, request_models.CreateBookingRequest{
		ExcursionID:  excursion.ID.String(),
		Date:         tomorrow(),
		PeopleCount:  2,
		ContactPhone: "+79990001122",
		ContactEmail: "guest@example.com",
	})
	require.NoError(t, err)

	bookingID := uuid.MustParse(resp.ID)

	cancelled, err := svc.Cancel(context.Background(), userID, bookingID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", cancelled.Status)

	// A second cancel hits the non-pending guard.
	_, err = svc.Cancel(context.Background(), userID, bookingID)
	assert.ErrorIs(t, err, utils.ErrBookingNotPending)

	// Confirmed bookings cannot be cancelled by the user either.
	resp2, err := svc.Create(context.Background(), userID, request_models.CreateBookingRequest{
		ExcursionID:  excursion.ID.String(),
		Date:         tomorrow(),
		PeopleCount:  2,
		ContactPhone: "+79990001122",
		ContactEmail: "guest@example.com",
	})
	require.NoError(t, err)
	id2 := uuid.MustParse(resp2.ID)
	require.NoError(t, bookingRepo.UpdateStatus(context.Background(), id2, db_models.BookingStatusConfirmed))

	_, err = svc.Cancel(context.Background(), userID, id2)
	assert.ErrorIs(t, err, utils.ErrBookingNotPending)
}

func TestBookingService_Cancel_OwnerOnly(t *testing.T) {
	excursion := publishedExcursion(99, 10)
	svc, _, _ := bookingFixture(t, excursion)
	owner := uuid.New()

	resp, err := svc.Create(context.Background(), owner, request_models.CreateBookingRequest{
		ExcursionID:  excursion.ID.String(),
		Date:         tomorrow(),
		PeopleCount:  2,
		ContactPhone: "+79990001122",
		ContactEmail: "guest@example.com",
	})
	require.NoError(t, err)

	_, err = svc.Cancel(context.Background(), uuid.New(), uuid.MustParse(resp.ID))
	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestBookingService_UpdateStatus_Lifecycle(t *testing.T) {
	excursion := publishedExcursion(99, 10)
	svc, _, mail := bookingFixture(t, excursion)
	userID := uuid.New()

	resp, err := svc.Create(context.Background(), userID, request_models.CreateBookingRequest{
		ExcursionID:  excursion.ID.String(),
		Date:         tomorrow(),
		PeopleCount:  2,
		ContactPhone: "+79990001122",
		ContactEmail: "guest@example.com",
	})
	require.NoError(t, err)
	bookingID := uuid.MustParse(resp.ID)

	// pending → completed skips confirmation and must be rejected.
	_, err = svc.UpdateStatus(context.Background(), bookingID, request_models.UpdateBookingStatusRequest{Status: "completed"})
	assert.ErrorIs(t, err, utils.ErrInvalidTransition)

	confirmed, err := svc.UpdateStatus(context.Background(), bookingID, request_models.UpdateBookingStatusRequest{Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", confirmed.Status)

	// Confirmed bookings cannot go back to cancelled.
	_, err = svc.UpdateStatus(context.Background(), bookingID, request_models.UpdateBookingStatusRequest{Status: "cancelled"})
	assert.ErrorIs(t, err, utils.ErrInvalidTransition)

	completed, err := svc.UpdateStatus(context.Background(), bookingID, request_models.UpdateBookingStatusRequest{Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, "completed", completed.Status)

	assert.Contains(t, mail.sentKinds(), "booking_status")
}

func TestBookingService_Get_OwnerAndAdmin(t *testing.T) {
	excursion := publishedExcursion(99, 10)
	svc, _, _ := bookingFixture(t, excursion)
	owner := uuid.New()

	resp, err := svc.Create(context.Background(), owner, request_models.CreateBookingRequest{
		ExcursionID:  excursion.ID.String(),
		Date:         tomorrow(),
		PeopleCount:  2,
		ContactPhone: "+79990001122",
		ContactEmail: "guest@example.com",
	})
	require.NoError(t, err)
	bookingID := uuid.MustParse(resp.ID)

	_, err = svc.Get(context.Background(), owner, "user", bookingID)
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), uuid.New(), "admin", bookingID)
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), uuid.New(), "user", bookingID)
	assert.ErrorIs(t, err, utils.ErrForbidden)
}
