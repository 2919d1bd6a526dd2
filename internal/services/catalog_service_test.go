package services

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selexia/internal/models/db_models"
	"selexia/pkg/utils"
)

func TestCatalogService_ListCities_ByCountryPaginates(t *testing.T) {
	country := &db_models.Country{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		NameRu:    "Турция",
		NameEn:    "Turkey",
		Slug:      "turkey",
	}

	names := []string{"Alanya", "Antalya", "Istanbul"}
	cities := make([]db_models.City, 0, len(names))
	for _, name := range names {
		cities = append(cities, db_models.City{
			BaseModel: db_models.BaseModel{ID: uuid.New()},
			NameRu:    name,
			NameEn:    name,
			Slug:      strings.ToLower(name),
			CountryID: country.ID,
			Country:   *country,
		})
	}

	excursionRepo := newFakeExcursionRepo()
	svc := NewCatalogService(
		&fakeCountryRepo{countries: map[uuid.UUID]*db_models.Country{country.ID: country}},
		&fakeCityRepo{cities: cities},
		&fakeCategoryRepo{},
		excursionRepo,
		newFakeReviewRepo(),
		newFakeBookingRepo(excursionRepo),
	)

	page1, err := svc.ListCities(context.Background(), "turkey", 1, 2)
	require.NoError(t, err)
	assert.Len(t, page1.Items, 2)
	assert.Equal(t, 1, page1.Page)
	assert.Equal(t, 2, page1.PageSize)
	assert.Equal(t, int64(3), page1.Total)

	page2, err := svc.ListCities(context.Background(), "turkey", 2, 2)
	require.NoError(t, err)
	require.Len(t, page2.Items, 1)
	assert.Equal(t, 2, page2.Page)
	assert.Equal(t, "turkey", page2.Items[0].CountrySlug)

	_, err = svc.ListCities(context.Background(), "atlantis", 1, 2)
	assert.ErrorIs(t, err, utils.ErrCountryNotFound)
}
