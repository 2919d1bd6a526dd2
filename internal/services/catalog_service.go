package services

import (
	"context"

	"selexia/internal/models/response_models"
	"selexia/internal/repositories"
	"selexia/pkg/utils"
)

// autocompleteLimitPerKind caps suggestions from each source so one
// kind cannot crowd out the rest.
const autocompleteLimitPerKind = 5

type CatalogServiceInterface interface {
	ListCountries(ctx context.Context, page, pageSize int) (response_models.Page[response_models.CountryResponse], error)
	GetCountry(ctx context.Context, slug string) (response_models.CountryResponse, error)
	ListCities(ctx context.Context, countrySlug string, page, pageSize int) (response_models.Page[response_models.CityResponse], error)
	ListCategories(ctx context.Context, page, pageSize int) (response_models.Page[response_models.CategoryResponse], error)
	GetCategory(ctx context.Context, slug string) (response_models.CategoryResponse, error)

	Autocomplete(ctx context.Context, query string) ([]response_models.AutocompleteResult, error)
	GetStats(ctx context.Context) (response_models.StatsResponse, error)
}

type CatalogService struct {
	countryRepo   repositories.CountryRepository
	cityRepo      repositories.CityRepository
	categoryRepo  repositories.CategoryRepository
	excursionRepo repositories.ExcursionRepository
	reviewRepo    repositories.ReviewRepository
	bookingRepo   repositories.BookingRepository
}

func NewCatalogService(
	countryRepo repositories.CountryRepository,
	cityRepo repositories.CityRepository,
	categoryRepo repositories.CategoryRepository,
	excursionRepo repositories.ExcursionRepository,
	reviewRepo repositories.ReviewRepository,
	bookingRepo repositories.BookingRepository,
) CatalogServiceInterface {
	return &CatalogService{
		countryRepo:   countryRepo,
		cityRepo:      cityRepo,
		categoryRepo:  categoryRepo,
		excursionRepo: excursionRepo,
		reviewRepo:    reviewRepo,
		bookingRepo:   bookingRepo,
	}
}

func (c *CatalogService) ListCountries(ctx context.Context, page, pageSize int) (response_models.Page[response_models.CountryResponse], error) {
	var empty response_models.Page[response_models.CountryResponse]
	if err := validatePaging(page, pageSize); err != nil {
		return empty, err
	}

	countries, total, err := c.countryRepo.List(ctx, page, pageSize)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}

	cityCounts, err := c.countryRepo.CityCounts(ctx)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}
	tourCounts, err := c.countryRepo.PublishedExcursionCounts(ctx)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}

	items := make([]response_models.CountryResponse, 0, len(countries))
	for i := range countries {
		country := &countries[i]
		items = append(items, toCountryResponse(country, cityCounts[country.ID], tourCounts[country.ID]))
	}
	return response_models.NewPage(items, page, pageSize, total), nil
}

func (c *CatalogService) GetCountry(ctx context.Context, slug string) (response_models.CountryResponse, error) {
	country, err := c.countryRepo.FindBySlug(ctx, slug)
	if err != nil {
		return response_models.CountryResponse{}, utils.ErrDatabaseError
	}
	if country == nil {
		return response_models.CountryResponse{}, utils.ErrCountryNotFound
	}

	cityCounts, err := c.countryRepo.CityCounts(ctx)
	if err != nil {
		return response_models.CountryResponse{}, utils.ErrDatabaseError
	}
	tourCounts, err := c.countryRepo.PublishedExcursionCounts(ctx)
	if err != nil {
		return response_models.CountryResponse{}, utils.ErrDatabaseError
	}
	return toCountryResponse(country, cityCounts[country.ID], tourCounts[country.ID]), nil
}

func (c *CatalogService) ListCities(ctx context.Context, countrySlug string, page, pageSize int) (response_models.Page[response_models.CityResponse], error) {
	var empty response_models.Page[response_models.CityResponse]
	if err := validatePaging(page, pageSize); err != nil {
		return empty, err
	}

	if countrySlug != "" {
		country, err := c.countryRepo.FindBySlug(ctx, countrySlug)
		if err != nil {
			return empty, utils.ErrDatabaseError
		}
		if country == nil {
			return empty, utils.ErrCountryNotFound
		}

		cities, total, err := c.cityRepo.ListByCountry(ctx, country.ID, page, pageSize)
		if err != nil {
			return empty, utils.ErrDatabaseError
		}

		items := make([]response_models.CityResponse, 0, len(cities))
		for i := range cities {
			items = append(items, toCityResponse(&cities[i]))
		}
		return response_models.NewPage(items, page, pageSize, total), nil
	}

	cities, total, err := c.cityRepo.List(ctx, page, pageSize)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}
	items := make([]response_models.CityResponse, 0, len(cities))
	for i := range cities {
		items = append(items, toCityResponse(&cities[i]))
	}
	return response_models.NewPage(items, page, pageSize, total), nil
}

func (c *CatalogService) ListCategories(ctx context.Context, page, pageSize int) (response_models.Page[response_models.CategoryResponse], error) {
	var empty response_models.Page[response_models.CategoryResponse]
	if err := validatePaging(page, pageSize); err != nil {
		return empty, err
	}

	categories, total, err := c.categoryRepo.List(ctx, page, pageSize)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}

	items := make([]response_models.CategoryResponse, 0, len(categories))
	for i := range categories {
		items = append(items, toCategoryResponse(&categories[i]))
	}
	return response_models.NewPage(items, page, pageSize, total), nil
}

func (c *CatalogService) GetCategory(ctx context.Context, slug string) (response_models.CategoryResponse, error) {
	category, err := c.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		return response_models.CategoryResponse{}, utils.ErrDatabaseError
	}
	if category == nil {
		return response_models.CategoryResponse{}, utils.ErrCategoryNotFound
	}
	return toCategoryResponse(category), nil
}

// Autocomplete merges city, country, category and excursion matches
// for the search box. Short queries return nothing rather than the
// whole catalog.
func (c *CatalogService) Autocomplete(ctx context.Context, query string) ([]response_models.AutocompleteResult, error) {
	results := []response_models.AutocompleteResult{}
	if len([]rune(query)) < 2 {
		return results, nil
	}

	cities, err := c.cityRepo.SearchByName(ctx, query, autocompleteLimitPerKind)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	for i := range cities {
		city := &cities[i]
		results = append(results, response_models.AutocompleteResult{
			Type:  "city",
			Value: city.Slug,
			Label: city.NameRu + ", " + city.Country.NameRu,
			URL:   "/excursions?city=" + city.Slug,
		})
	}

	countries, err := c.countryRepo.SearchByName(ctx, query, autocompleteLimitPerKind)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	for i := range countries {
		country := &countries[i]
		results = append(results, response_models.AutocompleteResult{
			Type:  "country",
			Value: country.Slug,
			Label: country.NameRu,
			URL:   "/excursions?country=" + country.Slug,
		})
	}

	categories, err := c.categoryRepo.SearchByName(ctx, query, autocompleteLimitPerKind)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	for i := range categories {
		category := &categories[i]
		results = append(results, response_models.AutocompleteResult{
			Type:  "category",
			Value: category.Slug,
			Label: category.NameRu,
			URL:   "/excursions?category=" + category.Slug,
		})
	}

	excursions, err := c.excursionRepo.SearchByTitle(ctx, query, autocompleteLimitPerKind)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	for i := range excursions {
		excursion := &excursions[i]
		results = append(results, response_models.AutocompleteResult{
			Type:  "excursion",
			Value: excursion.Slug,
			Label: excursion.TitleRu,
			URL:   "/excursions/" + excursion.Slug,
		})
	}

	return results, nil
}

func (c *CatalogService) GetStats(ctx context.Context) (response_models.StatsResponse, error) {
	var stats response_models.StatsResponse
	var err error

	if stats.ExcursionsCount, err = c.excursionRepo.CountPublished(ctx); err != nil {
		return stats, utils.ErrDatabaseError
	}
	if stats.CountriesCount, err = c.countryRepo.Count(ctx); err != nil {
		return stats, utils.ErrDatabaseError
	}
	if stats.CitiesCount, err = c.cityRepo.Count(ctx); err != nil {
		return stats, utils.ErrDatabaseError
	}
	if stats.ReviewsCount, err = c.reviewRepo.CountApproved(ctx); err != nil {
		return stats, utils.ErrDatabaseError
	}
	if stats.TotalBookings, err = c.bookingRepo.Count(ctx); err != nil {
		return stats, utils.ErrDatabaseError
	}
	return stats, nil
}
