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

func favoriteFixture(t *testing.T) (FavoriteServiceInterface, *db_models.Excursion, *db_models.Country) {
	t.Helper()
	excursion := publishedExcursion(75, 10)
	country := &db_models.Country{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		NameRu:    "Турция",
		NameEn:    "Turkey",
		Slug:      "turkey",
	}

	svc := NewFavoriteService(
		newFakeFavoriteRepo(),
		newFakeExcursionRepo(excursion),
		&fakeCategoryRepo{categories: map[uuid.UUID]*db_models.Category{}},
		&fakeCountryRepo{countries: map[uuid.UUID]*db_models.Country{country.ID: country}},
	)
	return svc, excursion, country
}

func TestFavoriteService_Toggle_AddThenRemove(t *testing.T) {
	svc, excursion, _ := favoriteFixture(t)
	userID := uuid.New()

	req := request_models.ToggleFavoriteRequest{
		ItemID:   excursion.ID.String(),
		ItemType: "excursion",
	}

	added, err := svc.Toggle(context.Background(), userID, req)
	require.NoError(t, err)
	assert.True(t, added.IsFavorite)
	assert.Equal(t, int64(1), added.FavoritesCount)

	removed, err := svc.Toggle(context.Background(), userID, req)
	require.NoError(t, err)
	assert.False(t, removed.IsFavorite)
	assert.Equal(t, int64(0), removed.FavoritesCount)

	// Toggling twice more lands back on "favorited".
	again, err := svc.Toggle(context.Background(), userID, req)
	require.NoError(t, err)
	assert.True(t, again.IsFavorite)
}

func TestFavoriteService_Toggle_PerUser(t *testing.T) {
	svc, excursion, _ := favoriteFixture(t)

	req := request_models.ToggleFavoriteRequest{
		ItemID:   excursion.ID.String(),
		ItemType: "excursion",
	}

	first, err := svc.Toggle(context.Background(), uuid.New(), req)
	require.NoError(t, err)
	assert.True(t, first.IsFavorite)

	// A different user toggling the same item adds, not removes.
	second, err := svc.Toggle(context.Background(), uuid.New(), req)
	require.NoError(t, err)
	assert.True(t, second.IsFavorite)
	assert.Equal(t, int64(1), second.FavoritesCount)
}

func TestFavoriteService_Toggle_CountryTarget(t *testing.T) {
	svc, _, country := favoriteFixture(t)

	resp, err := svc.Toggle(context.Background(), uuid.New(), request_models.ToggleFavoriteRequest{
		ItemID:   country.ID.String(),
		ItemType: "country",
	})

	require.NoError(t, err)
	assert.True(t, resp.IsFavorite)
}

func TestFavoriteService_Toggle_UnknownItemType(t *testing.T) {
	svc, excursion, _ := favoriteFixture(t)

	_, err := svc.Toggle(context.Background(), uuid.New(), request_models.ToggleFavoriteRequest{
		ItemID:   excursion.ID.String(),
		ItemType: "city",
	})

	assert.ErrorIs(t, err, utils.ErrUnknownItemType)
}

func TestFavoriteService_List_ResolvesTargets(t *testing.T) {
	svc, excursion, country := favoriteFixture(t)
	userID := uuid.New()

	for _, req := range []request_models.ToggleFavoriteRequest{
		{ItemID: excursion.ID.String(), ItemType: "excursion"},
		{ItemID: country.ID.String(), ItemType: "country"},
	} {
		_, err := svc.Toggle(context.Background(), userID, req)
		require.NoError(t, err)
	}

	page, err := svc.List(context.Background(), userID, "excursion", 1, DefaultPageSize)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, excursion.Slug, page.Items[0].Slug)
	assert.Equal(t, excursion.Price, page.Items[0].Price)
}

func TestFavoriteService_List_PrunesRemovedTargets(t *testing.T) {
	excursion := publishedExcursion(75, 10)
	excursionRepo := newFakeExcursionRepo(excursion)
	favoriteRepo := newFakeFavoriteRepo()
	svc := NewFavoriteService(
		favoriteRepo,
		excursionRepo,
		&fakeCategoryRepo{categories: map[uuid.UUID]*db_models.Category{}},
		&fakeCountryRepo{countries: map[uuid.UUID]*db_models.Country{}},
	)
	userID := uuid.New()

	_, err := svc.Toggle(context.Background(), userID, request_models.ToggleFavoriteRequest{
		ItemID:   excursion.ID.String(),
		ItemType: "excursion",
	})
	require.NoError(t, err)

	// The excursion disappears out from under the bookmark.
	delete(excursionRepo.excursions, excursion.ID)

	page, err := svc.List(context.Background(), userID, "", 1, DefaultPageSize)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(0), page.Total)

	// The stale bookmark is deleted, not just hidden.
	count, err := favoriteRepo.CountByUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestFavoriteService_Toggle_MissingTarget(t *testing.T) {
	svc, _, _ := favoriteFixture(t)

	_, err := svc.Toggle(context.Background(), uuid.New(), request_models.ToggleFavoriteRequest{
		ItemID:   uuid.New().String(),
		ItemType: "excursion",
	})

	assert.ErrorIs(t, err, utils.ErrExcursionNotFound)
}
