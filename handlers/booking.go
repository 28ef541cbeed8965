package handlers

import (
	"context"
	"net/http"
	"time"

	"storabook/models"
	"storabook/services/booking"
	"storabook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const handlerTimeout = 15 * time.Second

// BookingHandler serves availability queries and booking creation.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler returns a BookingHandler wired to the given service.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// GetAvailableSlots returns the open collection slots for a day.
// Expects ?date=YYYY-MM-DD.
func (h *BookingHandler) GetAvailableSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing date parameter", "expected ?date=YYYY-MM-DD")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), handlerTimeout)
	defer cancel()

	result, err := h.Service.GetAvailableSlots(ctx, date)
	if err != nil {
		if booking.IsValidation(err) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid date", err.Error())
			return
		}
		h.Logger.Error("booking: availability query failed", zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute availability", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"date":     date,
		"slots":    result.Slots,
		"degraded": result.Degraded,
	})
}

// CreateBooking runs the booking saga. Validation failures return 400 before
// any external call; downstream faults return 500 with compensation detail.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), handlerTimeout)
	defer cancel()

	result, err := h.Service.CreateBooking(ctx, req)
	if err != nil {
		if booking.IsValidation(err) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid booking request", err.Error())
			return
		}
		h.Logger.Error("booking: creation failed", zap.Error(err))
		if be, ok := booking.AsBookingError(err); ok && be.CompensationAttempted {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":             "error",
				"message":            be.Message,
				"compensated":        !be.CompensationFailed,
				"compensationFailed": be.CompensationFailed,
			})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Booking failed", err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":            "success",
		"booking_id":        result.BookingID,
		"calendar_event_id": result.CalendarEventID,
		"customer_id":       result.CustomerID,
		"start":             result.Start,
		"end":               result.End,
	})
}
