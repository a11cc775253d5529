package handlers

import (
	"net/http"

	"smartpark/services/lot"
	"smartpark/utils"

	"github.com/gin-gonic/gin"
)

// LotHandler serves the lot catalog and the admin management endpoints.
type LotHandler struct {
	Svc lot.LotService
}

func NewLotHandler(svc lot.LotService) *LotHandler {
	return &LotHandler{Svc: svc}
}

// List returns every lot for the map screen.
func (h *LotHandler) List(c *gin.Context) {
	lots, err := h.Svc.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch parking lots", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"lots": lots})
}

// Get returns one lot by id.
func (h *LotHandler) Get(c *gin.Context) {
	l, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "parking lot not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, l)
}

// Create adds a new lot (admin).
func (h *LotHandler) Create(c *gin.Context) {
	var in lot.LotInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Svc.Create(in)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to create parking lot", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update edits a lot's metadata (admin). Slot occupancy is not editable here.
func (h *LotHandler) Update(c *gin.Context) {
	var in lot.LotInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Svc.Update(c.Param("id"), in)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to update parking lot", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes a lot (admin).
func (h *LotHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to delete parking lot", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Seed inserts the sample lots if the catalog is empty (admin).
func (h *LotHandler) Seed(c *gin.Context) {
	msg, err := h.Svc.Seed()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to seed database", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}
