package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selexia/internal/models/request_models"
	"selexia/pkg/utils"
)

func applicationFixture(t *testing.T) (ApplicationServiceInterface, *fakeMailService) {
	t.Helper()
	mail := &fakeMailService{}
	return NewApplicationService(newFakeApplicationRepo(), mail), mail
}

func TestApplicationService_Create(t *testing.T) {
	svc, mail := applicationFixture(t)

	resp, err := svc.Create(context.Background(), request_models.CreateApplicationRequest{
		Name:    "Anna",
		Phone:   "+79990001122",
		Email:   "anna@example.com",
		Message: "Looking for a family trip in October",
	})

	require.NoError(t, err)
	assert.Equal(t, "new", resp.Status)
	assert.Equal(t, []string{"application"}, mail.sentKinds())
}

func TestApplicationService_Create_MailFailureDoesNotFail(t *testing.T) {
	mail := &fakeMailService{failAl: true}
	svc := NewApplicationService(newFakeApplicationRepo(), mail)

	_, err := svc.Create(context.Background(), request_models.CreateApplicationRequest{
		Name:    "Anna",
		Phone:   "+79990001122",
		Email:   "anna@example.com",
		Message: "text",
	})

	require.NoError(t, err)
}

func TestApplicationService_Create_RejectsZeroPeople(t *testing.T) {
	svc, _ := applicationFixture(t)

	zero := 0
	_, err := svc.Create(context.Background(), request_models.CreateApplicationRequest{
		Name:        "Anna",
		Phone:       "+79990001122",
		Email:       "anna@example.com",
		Message:     "text",
		PeopleCount: &zero,
	})

	assert.ErrorIs(t, err, utils.ErrPeopleCountTooLow)
}

func TestApplicationService_UpdateStatus_Lifecycle(t *testing.T) {
	svc, _ := applicationFixture(t)

	created, err := svc.Create(context.Background(), request_models.CreateApplicationRequest{
		Name:    "Anna",
		Phone:   "+79990001122",
		Email:   "anna@example.com",
		Message: "text",
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	inProgress, err := svc.UpdateStatus(context.Background(), id, request_models.UpdateApplicationStatusRequest{Status: "in_progress"})
	require.NoError(t, err)
	assert.Equal(t, "in_progress", inProgress.Status)

	// in_progress cannot fall back to new.
	_, err = svc.UpdateStatus(context.Background(), id, request_models.UpdateApplicationStatusRequest{Status: "new"})
	assert.ErrorIs(t, err, utils.ErrInvalidTransition)

	completed, err := svc.UpdateStatus(context.Background(), id, request_models.UpdateApplicationStatusRequest{Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, "completed", completed.Status)

	// Completed is terminal.
	_, err = svc.UpdateStatus(context.Background(), id, request_models.UpdateApplicationStatusRequest{Status: "cancelled"})
	assert.ErrorIs(t, err, utils.ErrInvalidTransition)
}

func TestApplicationService_UpdateStatus_NotFound(t *testing.T) {
	svc, _ := applicationFixture(t)

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), request_models.UpdateApplicationStatusRequest{Status: "in_progress"})
	assert.ErrorIs(t, err, utils.ErrApplicationNotFound)
}

func TestValidatePaging(t *testing.T) {
	assert.NoError(t, validatePaging(1, DefaultPageSize))
	assert.NoError(t, validatePaging(7, MaxPageSize))
	assert.ErrorIs(t, validatePaging(0, 20), utils.ErrInvalidPage)
	assert.ErrorIs(t, validatePaging(-1, 20), utils.ErrInvalidPage)
	assert.ErrorIs(t, validatePaging(1, 0), utils.ErrInvalidPageSize)
	assert.ErrorIs(t, validatePaging(1, MaxPageSize+1), utils.ErrInvalidPageSize)
}
