package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"selexia/internal/models/request_models"
	"selexia/internal/services"
	"selexia/pkg/utils"
)

type ReviewController struct {
	reviewService services.ReviewServiceInterface
}

func NewReviewController(reviewService services.ReviewServiceInterface) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
	}
}

// Create godoc
// @Summary Leave a review
// @Description Requires a confirmed or completed booking for the excursion
// @Tags Reviews
// @Accept json
// @Produce json
// @Param request body request_models.CreateReviewRequest true "Review payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /reviews [post]
func (r *ReviewController) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := r.reviewService.Create(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, resp, "Review created successfully")
}

// Update godoc
// @Summary Edit an own review
// @Tags Reviews
// @Accept json
// @Produce json
// @Param id path string true "Review id"
// @Param request body request_models.UpdateReviewRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /reviews/{id} [put]
func (r *ReviewController) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := r.reviewService.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Review updated successfully")
}

// Delete godoc
// @Summary Delete a review
// @Description Owners delete their own reviews; admins delete any
// @Tags Reviews
// @Produce json
// @Param id path string true "Review id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /reviews/{id} [delete]
func (r *ReviewController) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := r.reviewService.Delete(c.Request.Context(), userID, c.GetString("role"), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Review deleted successfully")
}

// ListByExcursion godoc
// @Summary List approved reviews of an excursion
// @Tags Reviews
// @Produce json
// @Param slug path string true "Excursion slug"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /excursions/{slug}/reviews [get]
func (r *ReviewController) ListByExcursion(c *gin.Context) {
	page, pageSize := parsePaging(c)

	resp, err := r.reviewService.ListByExcursion(c.Request.Context(), c.Param("slug"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Reviews fetched successfully")
}

// Moderate godoc
// @Summary Approve or hide a review
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Review id"
// @Param request body request_models.ModerateReviewRequest true "Approval flag"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/reviews/{id}/moderate [put]
func (r *ReviewController) Moderate(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request_models.ModerateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := r.reviewService.Moderate(c.Request.Context(), id, req.IsApproved)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Review moderated successfully")
}

// ListPending godoc
// @Summary List reviews awaiting moderation
// @Tags Admin
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/reviews/pending [get]
func (r *ReviewController) ListPending(c *gin.Context) {
	page, pageSize := parsePaging(c)

	resp, err := r.reviewService.ListPending(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Pending reviews fetched successfully")
}
