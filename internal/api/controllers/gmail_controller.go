package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"selexia/internal/services"
	"selexia/pkg/utils"
)

type GmailController struct {
	gmailService services.GmailServiceInterface
}

func NewGmailController(gmailService services.GmailServiceInterface) *GmailController {
	return &GmailController{
		gmailService: gmailService,
	}
}

// Connect godoc
// @Summary Start linking a Google account
// @Description Returns the Google consent URL to redirect the user to
// @Tags Gmail
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /account/gmail/connect [post]
func (g *GmailController) Connect(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	resp, err := g.gmailService.ConnectURL(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Consent URL issued")
}

// Callback godoc
// @Summary OAuth redirect target
// @Description Exchanges the code, stores tokens and syncs the profile
// @Tags Gmail
// @Produce json
// @Param state query string true "Opaque state from the consent URL"
// @Param code query string true "Authorization code"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /account/gmail/callback [get]
func (g *GmailController) Callback(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")
	if state == "" || code == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing state or code")
		return
	}

	resp, err := g.gmailService.HandleCallback(c.Request.Context(), state, code)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Google account linked successfully")
}

// Sync godoc
// @Summary Refresh the Google profile snapshot
// @Tags Gmail
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /account/gmail/sync [post]
func (g *GmailController) Sync(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	resp, err := g.gmailService.Sync(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Profile synced successfully")
}

// Disconnect godoc
// @Summary Unlink the Google account
// @Tags Gmail
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /account/gmail [delete]
func (g *GmailController) Disconnect(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := g.gmailService.Disconnect(c.Request.Context(), userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Google account unlinked")
}
