package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"selexia/internal/services"
	"selexia/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// ListCountries godoc
// @Summary List countries
// @Tags Catalog
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /countries [get]
func (ct *CatalogController) ListCountries(c *gin.Context) {
	page, pageSize := parsePaging(c)

	resp, err := ct.catalogService.ListCountries(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Countries fetched successfully")
}

// GetCountry godoc
// @Summary Get one country by slug
// @Tags Catalog
// @Produce json
// @Param slug path string true "Country slug"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /countries/{slug} [get]
func (ct *CatalogController) GetCountry(c *gin.Context) {
	resp, err := ct.catalogService.GetCountry(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Country fetched successfully")
}

// ListCities godoc
// @Summary List cities, optionally scoped to one country
// @Tags Catalog
// @Produce json
// @Param country query string false "Country slug"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /cities [get]
func (ct *CatalogController) ListCities(c *gin.Context) {
	page, pageSize := parsePaging(c)

	resp, err := ct.catalogService.ListCities(c.Request.Context(), c.Query("country"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Cities fetched successfully")
}

// ListCategories godoc
// @Summary List excursion categories
// @Tags Catalog
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /categories [get]
func (ct *CatalogController) ListCategories(c *gin.Context) {
	page, pageSize := parsePaging(c)

	resp, err := ct.catalogService.ListCategories(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Categories fetched successfully")
}

// GetCategory godoc
// @Summary Get one category by slug
// @Tags Catalog
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /categories/{slug} [get]
func (ct *CatalogController) GetCategory(c *gin.Context) {
	resp, err := ct.catalogService.GetCategory(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Category fetched successfully")
}

// Autocomplete godoc
// @Summary Search suggestions for the search box
// @Tags Catalog
// @Produce json
// @Param q query string true "Query text"
// @Success 200 {object} utils.APIResponse
// @Router /search/autocomplete [get]
func (ct *CatalogController) Autocomplete(c *gin.Context) {
	resp, err := ct.catalogService.Autocomplete(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Suggestions fetched successfully")
}

// Stats godoc
// @Summary Aggregate site counters for the landing page
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /stats [get]
func (ct *CatalogController) Stats(c *gin.Context) {
	resp, err := ct.catalogService.GetStats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Stats fetched successfully")
}

// limitQuery is shared by the popular/featured shortcuts.
func limitQuery(c *gin.Context) int {
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return 0
}
