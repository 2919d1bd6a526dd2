package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"selexia/internal/models/db_models"
	"selexia/internal/models/request_models"
	"selexia/internal/models/response_models"
	"selexia/internal/repositories"
	"selexia/pkg/utils"
)

type ApplicationServiceInterface interface {
	Create(ctx context.Context, request request_models.CreateApplicationRequest) (response_models.ApplicationResponse, error)

	List(ctx context.Context, status string, page, pageSize int) (response_models.Page[response_models.ApplicationResponse], error)
	Get(ctx context.Context, id uuid.UUID) (response_models.ApplicationResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, request request_models.UpdateApplicationStatusRequest) (response_models.ApplicationResponse, error)
}

type ApplicationService struct {
	applicationRepo repositories.ApplicationRepository
	mailService     MailServiceInterface
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	mailService MailServiceInterface,
) ApplicationServiceInterface {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		mailService:     mailService,
	}
}

func (a *ApplicationService) Create(ctx context.Context, request request_models.CreateApplicationRequest) (response_models.ApplicationResponse, error) {
	var empty response_models.ApplicationResponse

	if request.PeopleCount != nil && *request.PeopleCount < 1 {
		return empty, utils.ErrPeopleCountTooLow
	}

	application := &db_models.Application{
		Name:        request.Name,
		Phone:       request.Phone,
		Email:       request.Email,
		Message:     request.Message,
		Destination: request.Destination,
		TravelDates: request.TravelDates,
		PeopleCount: request.PeopleCount,
		Budget:      request.Budget,
		Status:      db_models.ApplicationStatusNew,
	}

	id, err := a.applicationRepo.Create(ctx, application)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}

	if err := a.mailService.SendApplicationReceived(application); err != nil {
		log.Printf("application notification for %s failed: %v", id, err)
	}

	return toApplicationResponse(application), nil
}

func (a *ApplicationService) List(ctx context.Context, status string, page, pageSize int) (response_models.Page[response_models.ApplicationResponse], error) {
	var empty response_models.Page[response_models.ApplicationResponse]
	if err := validatePaging(page, pageSize); err != nil {
		return empty, err
	}

	switch status {
	case "", string(db_models.ApplicationStatusNew), string(db_models.ApplicationStatusInProgress),
		string(db_models.ApplicationStatusCompleted), string(db_models.ApplicationStatusCancelled):
	default:
		return empty, utils.ErrInvalidInput
	}

	applications, total, err := a.applicationRepo.List(ctx, status, page, pageSize)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}

	items := make([]response_models.ApplicationResponse, 0, len(applications))
	for i := range applications {
		items = append(items, toApplicationResponse(&applications[i]))
	}
	return response_models.NewPage(items, page, pageSize, total), nil
}

func (a *ApplicationService) Get(ctx context.Context, id uuid.UUID) (response_models.ApplicationResponse, error) {
	application, err := a.applicationRepo.FindByID(ctx, id)
	if err != nil {
		return response_models.ApplicationResponse{}, utils.ErrDatabaseError
	}
	if application == nil {
		return response_models.ApplicationResponse{}, utils.ErrApplicationNotFound
	}
	return toApplicationResponse(application), nil
}

func (a *ApplicationService) UpdateStatus(ctx context.Context, id uuid.UUID, request request_models.UpdateApplicationStatusRequest) (response_models.ApplicationResponse, error) {
	var empty response_models.ApplicationResponse

	application, err := a.applicationRepo.FindByID(ctx, id)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}
	if application == nil {
		return empty, utils.ErrApplicationNotFound
	}

	next := db_models.ApplicationStatus(request.Status)
	if !application.CanTransitionTo(next) {
		return empty, utils.ErrInvalidTransition
	}

	application.Status = next
	if err := a.applicationRepo.Save(ctx, application); err != nil {
		return empty, utils.ErrDatabaseError
	}
	return toApplicationResponse(application), nil
}
