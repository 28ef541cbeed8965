package routes

import (
	"time"

	"storabook/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes registers the assistant chat endpoint.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/chat", hb.ChatHandler)
}

// RegisterBookingRoutes registers availability and booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/booking")
	{
		bookingGroup.GET("/available-slots", hb.GetAvailableSlotsHandler)
		bookingGroup.POST("/create", hb.CreateBookingHandler)
	}
}

// RegisterInquiryRoutes registers the inquiry sub-API.
func RegisterInquiryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/inquiries")
	{
		api.POST("", hb.CreateInquiryHandler)
		api.GET("/search", hb.SearchInquiriesHandler)
		api.PUT("/:id/status", hb.UpdateInquiryStatusHandler)
		api.POST("/:id/responses", hb.AddInquiryResponseHandler)
		api.GET("/:id/history", hb.GetInquiryHistoryHandler)
	}
	r.GET("/api/customers/:customerId/inquiries", hb.GetCustomerInquiriesHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterChatRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterInquiryRoutes(r, hb)
	RegisterHealthRoute(r)
}
