package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"selexia/pkg/utils"
)

// currentUserID reads the authenticated user set by the JWT middleware.
// Responds 401 and returns false when the claim is missing or mangled.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetString("user_id")
	userID, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid authentication token")
		return uuid.Nil, false
	}
	return userID, true
}

// parsePaging reads ?page and ?page_size with their defaults. Range
// validation happens in the services.
func parsePaging(c *gin.Context) (page, pageSize int) {
	page = 1
	pageSize = 20

	if raw := c.Query("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			page = v
		} else {
			page = -1 // force the service-side validation error
		}
	}
	if raw := c.Query("page_size"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			pageSize = v
		} else {
			pageSize = -1
		}
	}
	return page, pageSize
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
