package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"selexia/internal/models/request_models"
	"selexia/internal/services"
	"selexia/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
}

func NewBookingController(bookingService services.BookingServiceInterface) *BookingController {
	return &BookingController{
		bookingService: bookingService,
	}
}

// Create godoc
// @Summary Book an excursion
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body request_models.CreateBookingRequest true "Booking payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings [post]
func (b *BookingController) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := b.bookingService.Create(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, resp, "Booking created successfully")
}

// ListMine godoc
// @Summary List the current user's bookings
// @Tags Bookings
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings [get]
func (b *BookingController) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	page, pageSize := parsePaging(c)

	resp, err := b.bookingService.ListMine(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Bookings fetched successfully")
}

// Get godoc
// @Summary Get one booking
// @Description Owners see their own bookings; admins see all
// @Tags Bookings
// @Produce json
// @Param id path string true "Booking id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/{id} [get]
func (b *BookingController) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	resp, err := b.bookingService.Get(c.Request.Context(), userID, c.GetString("role"), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Booking fetched successfully")
}

// Cancel godoc
// @Summary Cancel a pending booking
// @Tags Bookings
// @Produce json
// @Param id path string true "Booking id"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/{id}/cancel [post]
func (b *BookingController) Cancel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	resp, err := b.bookingService.Cancel(c.Request.Context(), userID, id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Booking cancelled successfully")
}

// ListAll godoc
// @Summary List all bookings
// @Tags Admin
// @Produce json
// @Param status query string false "Filter by status"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/bookings [get]
func (b *BookingController) ListAll(c *gin.Context) {
	page, pageSize := parsePaging(c)

	resp, err := b.bookingService.ListAll(c.Request.Context(), c.Query("status"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Bookings fetched successfully")
}

// UpdateStatus godoc
// @Summary Move a booking through its lifecycle
// @Description pending→confirmed|cancelled, confirmed→completed
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Booking id"
// @Param request body request_models.UpdateBookingStatusRequest true "Target status"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/bookings/{id}/status [put]
func (b *BookingController) UpdateStatus(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := b.bookingService.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Booking status updated successfully")
}
