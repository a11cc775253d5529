package handlers

import (
	"net/http"

	"smartpark/services/admin"
	"smartpark/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the dashboard aggregations.
type AdminHandler struct {
	Svc admin.AdminService
}

func NewAdminHandler(svc admin.AdminService) *AdminHandler {
	return &AdminHandler{Svc: svc}
}

// Stats returns the dashboard overview.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.Svc.Overview()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute stats", err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Report returns the full report payload for client-side rendering.
func (h *AdminHandler) Report(c *gin.Context) {
	report, err := h.Svc.Report()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to assemble report", err.Error())
		return
	}
	c.JSON(http.StatusOK, report)
}

// Users returns every registered user.
func (h *AdminHandler) Users(c *gin.Context) {
	users, err := h.Svc.Users()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch users", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}
