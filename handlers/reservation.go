package handlers

import (
	"errors"
	"net/http"

	"smartpark/services/reservation"
	"smartpark/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReservationHandler serves the reservation flow.
type ReservationHandler struct {
	Svc    reservation.ReservationService
	Logger *zap.Logger
}

func NewReservationHandler(svc reservation.ReservationService, logger *zap.Logger) *ReservationHandler {
	return &ReservationHandler{Svc: svc, Logger: logger}
}

// Reserve claims a slot for the authenticated caller. The response is either
// the committed reservation or exactly one error kind.
func (h *ReservationHandler) Reserve(c *gin.Context) {
	userID := c.GetString("userID")

	var req struct {
		LotID  string `json:"lotId" binding:"required"`
		SlotID string `json:"slotId" binding:"required"`
		Hours  int    `json:"hours" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	res, err := h.Svc.Reserve(c.Request.Context(), userID, req.LotID, req.SlotID, req.Hours)
	if err != nil {
		status, message := reservationErrorStatus(err)
		utils.JSONError(c, status, message, err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"reservation": res})
}

// ListMine returns the caller's reservations, newest first.
func (h *ReservationHandler) ListMine(c *gin.Context) {
	userID := c.GetString("userID")

	reservations, err := h.Svc.ListForUser(userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch reservations", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}

// reservationErrorStatus maps the service's typed errors onto HTTP statuses.
func reservationErrorStatus(err error) (int, string) {
	var resErr *reservation.Error
	if !errors.As(err, &resErr) {
		return http.StatusInternalServerError, "reservation failed"
	}

	switch resErr.Code {
	case reservation.CodeNotFound:
		return http.StatusNotFound, "not found"
	case reservation.CodeAlreadyOccupied:
		return http.StatusConflict, "slot just taken, pick another"
	case reservation.CodeUnauthorized:
		return http.StatusUnauthorized, "unauthorized"
	case reservation.CodeInvalidHours:
		return http.StatusBadRequest, "invalid duration"
	case reservation.CodeStorage:
		return http.StatusServiceUnavailable, "temporary storage failure, please retry"
	default:
		return http.StatusInternalServerError, "reservation failed"
	}
}
