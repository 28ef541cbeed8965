package handlers

import (
	"net/http"

	"storabook/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Chat endpoints
	ChatHandler gin.HandlerFunc

	// Booking endpoints
	GetAvailableSlotsHandler gin.HandlerFunc
	CreateBookingHandler     gin.HandlerFunc

	// Inquiry endpoints
	CreateInquiryHandler        gin.HandlerFunc
	UpdateInquiryStatusHandler  gin.HandlerFunc
	AddInquiryResponseHandler   gin.HandlerFunc
	GetCustomerInquiriesHandler gin.HandlerFunc
	GetInquiryHistoryHandler    gin.HandlerFunc
	SearchInquiriesHandler      gin.HandlerFunc
}

// HealthHandler reports the liveness snapshot kept by the health monitor.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"dependencies": utils.GetHealthStatus(),
	})
}
