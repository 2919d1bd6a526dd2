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

type ExcursionServiceInterface interface {
	List(ctx context.Context, filter request_models.ExcursionFilter) (response_models.Page[response_models.ExcursionListItem], error)
	GetBySlug(ctx context.Context, slug string) (response_models.ExcursionDetail, error)
	ListPopular(ctx context.Context, limit int) ([]response_models.ExcursionListItem, error)
	ListFeatured(ctx context.Context, limit int) ([]response_models.ExcursionListItem, error)

	// Admin operations. Drafts and archived excursions are reachable
	// only through these.
	Create(ctx context.Context, request request_models.SaveExcursionRequest) (response_models.ExcursionDetail, error)
	Update(ctx context.Context, id uuid.UUID, request request_models.SaveExcursionRequest) (response_models.ExcursionDetail, error)
	GetByID(ctx context.Context, id uuid.UUID) (response_models.ExcursionDetail, error)
}

type ExcursionService struct {
	excursionRepo repositories.ExcursionRepository
	countryRepo   repositories.CountryRepository
	cityRepo      repositories.CityRepository
	categoryRepo  repositories.CategoryRepository
}

func NewExcursionService(
	excursionRepo repositories.ExcursionRepository,
	countryRepo repositories.CountryRepository,
	cityRepo repositories.CityRepository,
	categoryRepo repositories.CategoryRepository,
) ExcursionServiceInterface {
	return &ExcursionService{
		excursionRepo: excursionRepo,
		countryRepo:   countryRepo,
		cityRepo:      cityRepo,
		categoryRepo:  categoryRepo,
	}
}

func (e *ExcursionService) List(ctx context.Context, filter request_models.ExcursionFilter) (response_models.Page[response_models.ExcursionListItem], error) {
	var empty response_models.Page[response_models.ExcursionListItem]
	if err := validatePaging(filter.Page, filter.PageSize); err != nil {
		return empty, err
	}

	switch filter.Sort {
	case "", "popular", "price_asc", "price_desc", "rating", "newest":
	default:
		return empty, utils.ErrInvalidInput
	}
	if filter.PriceMin != nil && filter.PriceMax != nil && *filter.PriceMin > *filter.PriceMax {
		return empty, utils.ErrInvalidInput
	}

	excursions, total, err := e.excursionRepo.ListPublished(ctx, filter)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}

	items := make([]response_models.ExcursionListItem, 0, len(excursions))
	for i := range excursions {
		items = append(items, toExcursionListItem(&excursions[i]))
	}
	return response_models.NewPage(items, filter.Page, filter.PageSize, total), nil
}

func (e *ExcursionService) GetBySlug(ctx context.Context, slug string) (response_models.ExcursionDetail, error) {
	excursion, err := e.excursionRepo.FindBySlug(ctx, slug)
	if err != nil {
		return response_models.ExcursionDetail{}, utils.ErrDatabaseError
	}
	if excursion == nil || excursion.Status != db_models.ExcursionStatusPublished {
		return response_models.ExcursionDetail{}, utils.ErrExcursionNotFound
	}

	// A failed counter bump should not break the detail page.
	if err := e.excursionRepo.IncrementViews(ctx, excursion.ID); err != nil {
		log.Printf("view counter for excursion %s failed: %v", excursion.ID, err)
	} else {
		excursion.ViewsCount++
		if excursion.ViewsCount >= db_models.PopularViewsThreshold {
			excursion.IsPopular = true
		}
	}

	return toExcursionDetail(excursion), nil
}

func (e *ExcursionService) ListPopular(ctx context.Context, limit int) ([]response_models.ExcursionListItem, error) {
	if limit < 1 || limit > MaxPageSize {
		limit = DefaultPageSize
	}
	excursions, err := e.excursionRepo.ListPopular(ctx, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.ExcursionListItem, 0, len(excursions))
	for i := range excursions {
		items = append(items, toExcursionListItem(&excursions[i]))
	}
	return items, nil
}

func (e *ExcursionService) ListFeatured(ctx context.Context, limit int) ([]response_models.ExcursionListItem, error) {
	if limit < 1 || limit > MaxPageSize {
		limit = DefaultPageSize
	}
	excursions, err := e.excursionRepo.ListFeatured(ctx, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.ExcursionListItem, 0, len(excursions))
	for i := range excursions {
		items = append(items, toExcursionListItem(&excursions[i]))
	}
	return items, nil
}

func (e *ExcursionService) Create(ctx context.Context, request request_models.SaveExcursionRequest) (response_models.ExcursionDetail, error) {
	excursion, err := e.buildExcursion(ctx, &db_models.Excursion{}, request)
	if err != nil {
		return response_models.ExcursionDetail{}, err
	}

	id, err := e.excursionRepo.Create(ctx, excursion)
	if err != nil {
		return response_models.ExcursionDetail{}, utils.ErrDatabaseError
	}
	return e.GetByID(ctx, id)
}

func (e *ExcursionService) Update(ctx context.Context, id uuid.UUID, request request_models.SaveExcursionRequest) (response_models.ExcursionDetail, error) {
	existing, err := e.excursionRepo.FindByID(ctx, id)
	if err != nil {
		return response_models.ExcursionDetail{}, utils.ErrDatabaseError
	}
	if existing == nil {
		return response_models.ExcursionDetail{}, utils.ErrExcursionNotFound
	}

	excursion, err := e.buildExcursion(ctx, existing, request)
	if err != nil {
		return response_models.ExcursionDetail{}, err
	}

	if err := e.excursionRepo.Update(ctx, excursion); err != nil {
		return response_models.ExcursionDetail{}, utils.ErrDatabaseError
	}
	return e.GetByID(ctx, id)
}

func (e *ExcursionService) GetByID(ctx context.Context, id uuid.UUID) (response_models.ExcursionDetail, error) {
	excursion, err := e.excursionRepo.FindByID(ctx, id)
	if err != nil {
		return response_models.ExcursionDetail{}, utils.ErrDatabaseError
	}
	if excursion == nil {
		return response_models.ExcursionDetail{}, utils.ErrExcursionNotFound
	}
	return toExcursionDetail(excursion), nil
}

// buildExcursion applies the request onto target after checking that
// the referenced country, city and category exist and fit together.
func (e *ExcursionService) buildExcursion(ctx context.Context, target *db_models.Excursion, request request_models.SaveExcursionRequest) (*db_models.Excursion, error) {
	countryID, err := uuid.Parse(request.CountryID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	cityID, err := uuid.Parse(request.CityID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	categoryID, err := uuid.Parse(request.CategoryID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	country, err := e.countryRepo.FindByID(ctx, countryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if country == nil {
		return nil, utils.ErrCountryNotFound
	}

	city, err := e.cityRepo.FindByID(ctx, cityID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if city == nil {
		return nil, utils.ErrCityNotFound
	}
	if city.CountryID != countryID {
		return nil, utils.ErrInvalidInput
	}

	category, err := e.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if category == nil {
		return nil, utils.ErrCategoryNotFound
	}

	target.TitleRu = request.TitleRu
	target.TitleEn = request.TitleEn
	target.DescriptionRu = request.DescriptionRu
	target.DescriptionEn = request.DescriptionEn
	target.ShortDescriptionRu = request.ShortDescriptionRu
	target.ShortDescriptionEn = request.ShortDescriptionEn
	target.ProgramRu = request.ProgramRu
	target.ProgramEn = request.ProgramEn
	target.IncludedRu = request.IncludedRu
	target.IncludedEn = request.IncludedEn
	target.ImportantInfoRu = request.ImportantInfoRu
	target.ImportantInfoEn = request.ImportantInfoEn
	target.MeetingPointRu = request.MeetingPointRu
	target.MeetingPointEn = request.MeetingPointEn
	target.CountryID = countryID
	target.CityID = cityID
	target.CategoryID = categoryID
	target.Price = request.Price
	target.Duration = request.Duration
	target.Images = request.Images

	if request.Currency != "" {
		target.Currency = request.Currency
	}
	if request.DurationUnit != "" {
		target.DurationUnit = db_models.DurationUnit(request.DurationUnit)
	}
	if request.MaxPeople > 0 {
		target.MaxPeople = request.MaxPeople
	}
	if request.Status != "" {
		target.Status = db_models.ExcursionStatus(request.Status)
	}
	if request.IsFeatured != nil {
		target.IsFeatured = *request.IsFeatured
	}

	target.Slug = request.Slug
	if target.Slug == "" {
		source := request.TitleEn
		if source == "" {
			source = request.TitleRu
		}
		target.Slug = utils.Slugify(source)
	}
	if target.Slug == "" {
		return nil, utils.ErrInvalidInput
	}

	// Slugs are unique; a collision with another excursion gets a
	// short random suffix instead of failing the save.
	other, err := e.excursionRepo.FindBySlug(ctx, target.Slug)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if other != nil && other.ID != target.ID {
		target.Slug = fmt.Sprintf("%s-%s", target.Slug, uuid.New().String()[:8])
	}

	// Preloaded relations so the response can render names without
	// another fetch.
	target.Country = *country
	target.City = *city
	target.Category = *category

	return target, nil
}
