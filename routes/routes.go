package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"inkhaus/handlers"
)

// RegisterBookingRoutes sets up the booking wizard session endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.POST("/session", hb.Booking.StartSession)
		api.GET("/session/:sessionID", hb.Booking.GetSession)
		api.PATCH("/session/:sessionID", hb.Booking.UpdateSession)
		api.POST("/session/:sessionID/style-tags", hb.Booking.ToggleStyleTag)
		api.POST("/session/:sessionID/advance", hb.Booking.Advance)
		api.POST("/session/:sessionID/back", hb.Booking.Back)
		api.POST("/session/:sessionID/files", hb.Booking.AddFiles)
		api.DELETE("/session/:sessionID/files/:index", hb.Booking.RemoveFile)
		api.POST("/session/:sessionID/submit", hb.Booking.Submit)
		api.DELETE("/session/:sessionID", hb.Booking.CancelSession)
	}
}

// RegisterContactRoutes sets up the general-contact wizard endpoints.
func RegisterContactRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/contact")
	{
		api.POST("/session", hb.Contact.StartSession)
		api.GET("/session/:sessionID", hb.Contact.GetSession)
		api.PATCH("/session/:sessionID", hb.Contact.UpdateSession)
		api.POST("/session/:sessionID/advance", hb.Contact.Advance)
		api.POST("/session/:sessionID/back", hb.Contact.Back)
		api.POST("/session/:sessionID/submit", hb.Contact.Submit)
		api.DELETE("/session/:sessionID", hb.Contact.CancelSession)
	}
}

// RegisterGalleryRoutes sets up the internal feed endpoint.
func RegisterGalleryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/instagram", hb.Gallery.GetFeed)
}

// RegisterStorageRoutes sets up the upload cleanup relay.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/uploads/cleanup", hb.Storage.CleanupHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm inkhaus"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterContactRoutes(r, hb)
	RegisterGalleryRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterHealthRoute(r)
}
