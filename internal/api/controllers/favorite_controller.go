package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"selexia/internal/models/request_models"
	"selexia/internal/services"
	"selexia/pkg/utils"
)

type FavoriteController struct {
	favoriteService services.FavoriteServiceInterface
}

func NewFavoriteController(favoriteService services.FavoriteServiceInterface) *FavoriteController {
	return &FavoriteController{
		favoriteService: favoriteService,
	}
}

// Toggle godoc
// @Summary Toggle a favorite
// @Description Adds the item if absent, removes it if present
// @Tags Favorites
// @Accept json
// @Produce json
// @Param request body request_models.ToggleFavoriteRequest true "Item to toggle"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /favorites/toggle [post]
func (f *FavoriteController) Toggle(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.ToggleFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := f.favoriteService.Toggle(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Favorite toggled successfully")
}

// List godoc
// @Summary List the current user's favorites
// @Tags Favorites
// @Produce json
// @Param item_type query string false "excursion | category | country"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /favorites [get]
func (f *FavoriteController) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	page, pageSize := parsePaging(c)

	resp, err := f.favoriteService.List(c.Request.Context(), userID, c.Query("item_type"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Favorites fetched successfully")
}
