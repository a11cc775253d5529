package handlers

import (
	"net/http"

	"smartpark/services/user"
	"smartpark/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the caller's own profile.
type UserHandler struct {
	Svc user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Svc: svc}
}

// Me returns the authenticated user's profile.
func (h *UserHandler) Me(c *gin.Context) {
	userID := c.GetString("userID")

	u, err := h.Svc.GetByID(userID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "user not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateMe saves the car plate and ecocash number.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID := c.GetString("userID")

	var req struct {
		CarPlate      string `json:"carPlate"`
		EcocashNumber string `json:"ecocashNumber"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Svc.UpdateDetails(userID, req.CarPlate, req.EcocashNumber); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update details", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// UpdateFCMToken registers the caller's push token.
func (h *UserHandler) UpdateFCMToken(c *gin.Context) {
	userID := c.GetString("userID")

	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Svc.UpdateFCMToken(userID, req.Token); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
