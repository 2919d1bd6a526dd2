package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinel errors onto HTTP statuses.
// Anything unrecognized is logged and collapsed to a 500.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrExcursionNotFound),
		errors.Is(err, ErrCountryNotFound),
		errors.Is(err, ErrCityNotFound),
		errors.Is(err, ErrCategoryNotFound),
		errors.Is(err, ErrBookingNotFound),
		errors.Is(err, ErrReviewNotFound),
		errors.Is(err, ErrApplicationNotFound),
		errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrInvalidPage),
		errors.Is(err, ErrInvalidPageSize),
		errors.Is(err, ErrDateRequired),
		errors.Is(err, ErrDateInPast),
		errors.Is(err, ErrPeopleCountTooLow),
		errors.Is(err, ErrCapacityExceeded),
		errors.Is(err, ErrBookingNotPending),
		errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrReviewExists),
		errors.Is(err, ErrReviewNotEligible),
		errors.Is(err, ErrInvalidRating),
		errors.Is(err, ErrUnknownItemType),
		errors.Is(err, ErrEmailAlreadyExists),
		errors.Is(err, ErrGmailNotLinked),
		errors.Is(err, ErrGmailStateInvalid):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
