package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"selexia/internal/models/request_models"
	"selexia/internal/services"
	"selexia/pkg/utils"
)

type ApplicationController struct {
	applicationService services.ApplicationServiceInterface
}

func NewApplicationController(applicationService services.ApplicationServiceInterface) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
	}
}

// Create godoc
// @Summary Submit a travel request
// @Description Lead-capture form from the landing page; no account needed
// @Tags Applications
// @Accept json
// @Produce json
// @Param request body request_models.CreateApplicationRequest true "Request payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /applications [post]
func (a *ApplicationController) Create(c *gin.Context) {
	var req request_models.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := a.applicationService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, resp, "Application submitted successfully")
}

// List godoc
// @Summary List travel requests
// @Tags Admin
// @Produce json
// @Param status query string false "Filter by status"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/applications [get]
func (a *ApplicationController) List(c *gin.Context) {
	page, pageSize := parsePaging(c)

	resp, err := a.applicationService.List(c.Request.Context(), c.Query("status"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Applications fetched successfully")
}

// Get godoc
// @Summary Get one travel request
// @Tags Admin
// @Produce json
// @Param id path string true "Application id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/applications/{id} [get]
func (a *ApplicationController) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	resp, err := a.applicationService.Get(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Application fetched successfully")
}

// UpdateStatus godoc
// @Summary Move a travel request through its workflow
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Application id"
// @Param request body request_models.UpdateApplicationStatusRequest true "Target status"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/applications/{id}/status [put]
func (a *ApplicationController) UpdateStatus(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := a.applicationService.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Application status updated successfully")
}
