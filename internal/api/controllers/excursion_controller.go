package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"selexia/internal/models/request_models"
	"selexia/internal/services"
	"selexia/pkg/utils"
)

type ExcursionController struct {
	excursionService services.ExcursionServiceInterface
}

func NewExcursionController(excursionService services.ExcursionServiceInterface) *ExcursionController {
	return &ExcursionController{
		excursionService: excursionService,
	}
}

// List godoc
// @Summary List published excursions
// @Description Filter, sort and page through the catalog
// @Tags Excursions
// @Produce json
// @Param search query string false "Free text over titles, descriptions and places"
// @Param country query string false "Country slug"
// @Param city query string false "City slug"
// @Param category query string false "Category slug"
// @Param price_min query number false "Minimum price"
// @Param price_max query number false "Maximum price"
// @Param rating_min query number false "Minimum rating"
// @Param is_popular query bool false "Only popular"
// @Param is_featured query bool false "Only featured"
// @Param sort query string false "popular | price_asc | price_desc | rating | newest"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /excursions [get]
func (e *ExcursionController) List(c *gin.Context) {
	filter, ok := parseExcursionFilter(c)
	if !ok {
		return
	}

	resp, err := e.excursionService.List(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Excursions fetched successfully")
}

// GetBySlug godoc
// @Summary Get one published excursion
// @Description Fetch the full card; every view bumps the view counter
// @Tags Excursions
// @Produce json
// @Param slug path string true "Excursion slug"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /excursions/{slug} [get]
func (e *ExcursionController) GetBySlug(c *gin.Context) {
	resp, err := e.excursionService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Excursion fetched successfully")
}

// Popular godoc
// @Summary List popular excursions
// @Tags Excursions
// @Produce json
// @Param limit query int false "Max items"
// @Success 200 {object} utils.APIResponse
// @Router /excursions/popular [get]
func (e *ExcursionController) Popular(c *gin.Context) {
	resp, err := e.excursionService.ListPopular(c.Request.Context(), limitQuery(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Popular excursions fetched successfully")
}

// Featured godoc
// @Summary List featured excursions
// @Tags Excursions
// @Produce json
// @Param limit query int false "Max items"
// @Success 200 {object} utils.APIResponse
// @Router /excursions/featured [get]
func (e *ExcursionController) Featured(c *gin.Context) {
	resp, err := e.excursionService.ListFeatured(c.Request.Context(), limitQuery(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Featured excursions fetched successfully")
}

// Create godoc
// @Summary Create an excursion
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.SaveExcursionRequest true "Excursion payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/excursions [post]
func (e *ExcursionController) Create(c *gin.Context) {
	var req request_models.SaveExcursionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := e.excursionService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, resp, "Excursion created successfully")
}

// Update godoc
// @Summary Update an excursion
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Excursion id"
// @Param request body request_models.SaveExcursionRequest true "Excursion payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/excursions/{id} [put]
func (e *ExcursionController) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request_models.SaveExcursionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := e.excursionService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Excursion updated successfully")
}

// GetByID godoc
// @Summary Get an excursion in any status
// @Tags Admin
// @Produce json
// @Param id path string true "Excursion id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/excursions/{id} [get]
func (e *ExcursionController) GetByID(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	resp, err := e.excursionService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Excursion fetched successfully")
}

func parseExcursionFilter(c *gin.Context) (request_models.ExcursionFilter, bool) {
	page, pageSize := parsePaging(c)
	filter := request_models.ExcursionFilter{
		Search:   c.Query("search"),
		Country:  c.Query("country"),
		City:     c.Query("city"),
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
		Page:     page,
		PageSize: pageSize,
	}

	parseFloat := func(name string) (*float64, bool) {
		raw := c.Query(name)
		if raw == "" {
			return nil, true
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid "+name)
			return nil, false
		}
		return &v, true
	}
	parseBool := func(name string) (*bool, bool) {
		raw := c.Query(name)
		if raw == "" {
			return nil, true
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid "+name)
			return nil, false
		}
		return &v, true
	}

	var ok bool
	if filter.PriceMin, ok = parseFloat("price_min"); !ok {
		return filter, false
	}
	if filter.PriceMax, ok = parseFloat("price_max"); !ok {
		return filter, false
	}
	if filter.RatingMin, ok = parseFloat("rating_min"); !ok {
		return filter, false
	}
	if filter.IsPopular, ok = parseBool("is_popular"); !ok {
		return filter, false
	}
	if filter.IsFeatured, ok = parseBool("is_featured"); !ok {
		return filter, false
	}
	return filter, true
}
