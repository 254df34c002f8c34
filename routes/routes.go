package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hostel-backend/controllers"
	"hostel-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	sc *controllers.StructureController,
	ac *controllers.AvailabilityController,
	bc *controllers.BookingController,
	stc *controllers.StudentController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		structure := api.Group("/structure")
		{
			structure.POST("/initialize", sc.InitializeStructure)
			structure.GET("/summary", sc.GetStructureSummary)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("/available", ac.GetAvailableRooms)
		}

		blocks := api.Group("/blocks")
		{
			blocks.GET("", ac.GetBlocks)
			blocks.GET("/:id/rooms", ac.GetRoomsByBlock)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)
			bookings.GET("/:id", bc.GetBookingDetails)
			bookings.POST("/:id/confirm", bc.ConfirmBooking)
			bookings.POST("/:id/checkout", bc.CheckOutBooking)
		}

		students := api.Group("/students")
		{
			students.GET("", stc.GetStudents)
			students.POST("", stc.CreateStudent)
			students.GET("/:id", stc.GetStudentByID)
		}

		settings := api.Group("/settings")
		{
			settings.GET("/hostel", controllers.GetHostelSettings)
			settings.PUT("/hostel", controllers.UpdateHostelSettings)
		}
	}

	return r
}
