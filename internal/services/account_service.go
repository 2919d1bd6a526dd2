package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"selexia/internal/models/db_models"
	"selexia/internal/models/request_models"
	"selexia/internal/models/response_models"
	"selexia/internal/repositories"
	"selexia/pkg/utils"
)

type AccountServiceInterface interface {
	SignUp(ctx context.Context, request request_models.SignUpRequest) (response_models.LoginResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (response_models.LoginResponse, error)

	GetProfile(ctx context.Context, userID uuid.UUID) (response_models.AccountResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, request request_models.UpdateProfileRequest) (response_models.AccountResponse, error)
	GetSettings(ctx context.Context, userID uuid.UUID) (response_models.SettingsResponse, error)
	UpdateSettings(ctx context.Context, userID uuid.UUID, request request_models.UpdateSettingsRequest) (response_models.SettingsResponse, error)
}

type AccountService struct {
	accountRepo  repositories.AccountRepository
	favoriteRepo repositories.FavoriteRepository
	mailService  MailServiceInterface
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	favoriteRepo repositories.FavoriteRepository,
	mailService MailServiceInterface,
) AccountServiceInterface {
	return &AccountService{
		accountRepo:  accountRepo,
		favoriteRepo: favoriteRepo,
		mailService:  mailService,
	}
}

func (a *AccountService) SignUp(ctx context.Context, request request_models.SignUpRequest) (response_models.LoginResponse, error) {
	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return response_models.LoginResponse{}, utils.ErrDatabaseError
	}
	if existing != nil {
		return response_models.LoginResponse{}, utils.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return response_models.LoginResponse{}, utils.ErrDatabaseError
	}

	user := &db_models.User{
		Email:        request.Email,
		PasswordHash: hashed,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		Phone:        request.Phone,
		Role:         "user",
	}

	if err := a.accountRepo.InsertTx(ctx, user); err != nil {
		return response_models.LoginResponse{}, utils.ErrDatabaseError
	}

	if err := a.mailService.SendWelcome(user); err != nil {
		log.Printf("welcome mail to %s failed: %v", user.Email, err)
	}

	token, err := utils.CreateToken(user.ID, user.Role)
	if err != nil {
		return response_models.LoginResponse{}, utils.ErrDatabaseError
	}
	return response_models.LoginResponse{Token: token}, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (response_models.LoginResponse, error) {
	user, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return response_models.LoginResponse{}, utils.ErrDatabaseError
	}
	if user == nil {
		return response_models.LoginResponse{}, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return response_models.LoginResponse{}, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, user.Role)
	if err != nil {
		return response_models.LoginResponse{}, utils.ErrInvalidCredentials
	}
	return response_models.LoginResponse{Token: token}, nil
}

func (a *AccountService) GetProfile(ctx context.Context, userID uuid.UUID) (response_models.AccountResponse, error) {
	user, err := a.accountRepo.FindByID(ctx, userID.String())
	if err != nil {
		return response_models.AccountResponse{}, utils.ErrDatabaseError
	}
	if user == nil {
		return response_models.AccountResponse{}, utils.ErrAccountNotFound
	}

	favoritesCount, err := a.favoriteRepo.CountByUser(ctx, userID)
	if err != nil {
		return response_models.AccountResponse{}, utils.ErrDatabaseError
	}

	return toAccountResponse(user, favoritesCount), nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, userID uuid.UUID, request request_models.UpdateProfileRequest) (response_models.AccountResponse, error) {
	user, err := a.accountRepo.FindByID(ctx, userID.String())
	if err != nil {
		return response_models.AccountResponse{}, utils.ErrDatabaseError
	}
	if user == nil {
		return response_models.AccountResponse{}, utils.ErrAccountNotFound
	}

	if request.FirstName != nil {
		user.FirstName = *request.FirstName
	}
	if request.LastName != nil {
		user.LastName = *request.LastName
	}
	if request.Phone != nil {
		user.Phone = *request.Phone
	}
	if request.AvatarURL != nil {
		user.AvatarURL = *request.AvatarURL
	}
	if request.DateOfBirth != nil {
		if *request.DateOfBirth == "" {
			user.DateOfBirth = nil
		} else {
			dob, err := utils.ParseDate(*request.DateOfBirth)
			if err != nil {
				return response_models.AccountResponse{}, utils.ErrInvalidInput
			}
			if dob.After(time.Now()) {
				return response_models.AccountResponse{}, utils.ErrInvalidInput
			}
			user.DateOfBirth = &dob
		}
	}

	if err := a.accountRepo.Update(ctx, user); err != nil {
		return response_models.AccountResponse{}, utils.ErrDatabaseError
	}

	favoritesCount, err := a.favoriteRepo.CountByUser(ctx, userID)
	if err != nil {
		return response_models.AccountResponse{}, utils.ErrDatabaseError
	}
	return toAccountResponse(user, favoritesCount), nil
}

func (a *AccountService) GetSettings(ctx context.Context, userID uuid.UUID) (response_models.SettingsResponse, error) {
	settings, err := a.accountRepo.GetSettings(ctx, userID)
	if err != nil {
		return response_models.SettingsResponse{}, utils.ErrDatabaseError
	}
	if settings == nil {
		return response_models.SettingsResponse{}, utils.ErrAccountNotFound
	}
	return toSettingsResponse(settings), nil
}

func (a *AccountService) UpdateSettings(ctx context.Context, userID uuid.UUID, request request_models.UpdateSettingsRequest) (response_models.SettingsResponse, error) {
	settings, err := a.accountRepo.GetSettings(ctx, userID)
	if err != nil {
		return response_models.SettingsResponse{}, utils.ErrDatabaseError
	}
	if settings == nil {
		return response_models.SettingsResponse{}, utils.ErrAccountNotFound
	}

	if request.EmailNotifications != nil {
		settings.EmailNotifications = *request.EmailNotifications
	}
	if request.PushNotifications != nil {
		settings.PushNotifications = *request.PushNotifications
	}
	if request.ProfilePublic != nil {
		settings.ProfilePublic = *request.ProfilePublic
	}
	if request.ShowReviews != nil {
		settings.ShowReviews = *request.ShowReviews
	}
	if request.PreferredLanguage != nil {
		if *request.PreferredLanguage != "ru" && *request.PreferredLanguage != "en" {
			return response_models.SettingsResponse{}, utils.ErrInvalidInput
		}
		settings.PreferredLanguage = *request.PreferredLanguage
	}
	if request.Timezone != nil {
		if _, err := time.LoadLocation(*request.Timezone); err != nil {
			return response_models.SettingsResponse{}, utils.ErrInvalidInput
		}
		settings.Timezone = *request.Timezone
	}

	if err := a.accountRepo.SaveSettings(ctx, settings); err != nil {
		return response_models.SettingsResponse{}, utils.ErrDatabaseError
	}
	return toSettingsResponse(settings), nil
}
