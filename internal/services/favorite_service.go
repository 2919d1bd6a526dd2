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

type FavoriteServiceInterface interface {
	// Toggle adds the bookmark if absent and removes it if present.
	Toggle(ctx context.Context, userID uuid.UUID, request request_models.ToggleFavoriteRequest) (response_models.FavoriteToggleResponse, error)
	List(ctx context.Context, userID uuid.UUID, itemType string, page, pageSize int) (response_models.Page[response_models.FavoriteItem], error)
}

type FavoriteService struct {
	favoriteRepo  repositories.FavoriteRepository
	excursionRepo repositories.ExcursionRepository
	categoryRepo  repositories.CategoryRepository
	countryRepo   repositories.CountryRepository
}

func NewFavoriteService(
	favoriteRepo repositories.FavoriteRepository,
	excursionRepo repositories.ExcursionRepository,
	categoryRepo repositories.CategoryRepository,
	countryRepo repositories.CountryRepository,
) FavoriteServiceInterface {
	return &FavoriteService{
		favoriteRepo:  favoriteRepo,
		excursionRepo: excursionRepo,
		categoryRepo:  categoryRepo,
		countryRepo:   countryRepo,
	}
}

func (f *FavoriteService) Toggle(ctx context.Context, userID uuid.UUID, request request_models.ToggleFavoriteRequest) (response_models.FavoriteToggleResponse, error) {
	var empty response_models.FavoriteToggleResponse

	itemType := db_models.FavoriteItemType(request.ItemType)
	if !itemType.Valid() {
		return empty, utils.ErrUnknownItemType
	}

	itemID, err := uuid.Parse(request.ItemID)
	if err != nil {
		return empty, utils.ErrInvalidInput
	}

	if err := f.checkTarget(ctx, itemType, itemID); err != nil {
		return empty, err
	}

	existing, err := f.favoriteRepo.Find(ctx, userID, itemType, itemID)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}

	var isFavorite bool
	if existing != nil {
		if err := f.favoriteRepo.Delete(ctx, existing.ID); err != nil {
			return empty, utils.ErrDatabaseError
		}
	} else {
		favorite := &db_models.Favorite{
			UserID:   userID,
			ItemType: itemType,
			ItemID:   itemID,
		}
		if err := f.favoriteRepo.Create(ctx, favorite); err != nil {
			return empty, utils.ErrDatabaseError
		}
		isFavorite = true
	}

	count, err := f.favoriteRepo.CountByUser(ctx, userID)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}
	return response_models.FavoriteToggleResponse{
		IsFavorite:     isFavorite,
		FavoritesCount: count,
	}, nil
}

func (f *FavoriteService) List(ctx context.Context, userID uuid.UUID, itemType string, page, pageSize int) (response_models.Page[response_models.FavoriteItem], error) {
	var empty response_models.Page[response_models.FavoriteItem]
	if err := validatePaging(page, pageSize); err != nil {
		return empty, err
	}
	if itemType != "" && !db_models.FavoriteItemType(itemType).Valid() {
		return empty, utils.ErrUnknownItemType
	}

	favorites, total, err := f.favoriteRepo.ListByUser(ctx, userID, itemType, page, pageSize)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}

	items := make([]response_models.FavoriteItem, 0, len(favorites))
	for i := range favorites {
		item, err := f.resolve(ctx, &favorites[i])
		if err != nil {
			return empty, err
		}
		// The target was removed since; drop the stale bookmark so the
		// total stays consistent with what we return.
		if item == nil {
			if err := f.favoriteRepo.Delete(ctx, favorites[i].ID); err != nil {
				return empty, utils.ErrDatabaseError
			}
			total--
			continue
		}
		items = append(items, *item)
	}
	return response_models.NewPage(items, page, pageSize, total), nil
}

func (f *FavoriteService) checkTarget(ctx context.Context, itemType db_models.FavoriteItemType, itemID uuid.UUID) error {
	switch itemType {
	case db_models.FavoriteItemExcursion:
		excursion, err := f.excursionRepo.FindByID(ctx, itemID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if excursion == nil || excursion.Status != db_models.ExcursionStatusPublished {
			return utils.ErrExcursionNotFound
		}
	case db_models.FavoriteItemCategory:
		category, err := f.categoryRepo.FindByID(ctx, itemID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if category == nil {
			return utils.ErrCategoryNotFound
		}
	case db_models.FavoriteItemCountry:
		country, err := f.countryRepo.FindByID(ctx, itemID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if country == nil {
			return utils.ErrCountryNotFound
		}
	}
	return nil
}

func (f *FavoriteService) resolve(ctx context.Context, favorite *db_models.Favorite) (*response_models.FavoriteItem, error) {
	item := response_models.FavoriteItem{
		ItemID:   favorite.ItemID.String(),
		ItemType: string(favorite.ItemType),
		AddedAt:  utils.FormatRFC3339(utils.FromUnixSeconds(favorite.CreatedAt)),
	}

	switch favorite.ItemType {
	case db_models.FavoriteItemExcursion:
		excursion, err := f.excursionRepo.FindByID(ctx, favorite.ItemID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if excursion == nil {
			return nil, nil
		}
		item.TitleRu = excursion.TitleRu
		item.TitleEn = excursion.TitleEn
		item.Slug = excursion.Slug
		item.Price = excursion.Price
		item.Currency = excursion.Currency
		item.Rating = excursion.Rating
	case db_models.FavoriteItemCategory:
		category, err := f.categoryRepo.FindByID(ctx, favorite.ItemID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if category == nil {
			return nil, nil
		}
		item.TitleRu = category.NameRu
		item.TitleEn = category.NameEn
		item.Slug = category.Slug
	case db_models.FavoriteItemCountry:
		country, err := f.countryRepo.FindByID(ctx, favorite.ItemID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if country == nil {
			return nil, nil
		}
		item.TitleRu = country.NameRu
		item.TitleEn = country.NameEn
		item.Slug = country.Slug
	}
	return &item, nil
}
