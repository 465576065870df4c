package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"college-backend/controllers"
	"college-backend/middleware"
	"college-backend/models"
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

// SetupRouter wires controllers into the route table.
func SetupRouter(
	authC *controllers.AuthController,
	bookingC *controllers.BookingController,
	markC *controllers.MarkController,
	attendanceC *controllers.AttendanceController,
	announcementC *controllers.AnnouncementController,
	chatbotC *controllers.ChatbotController,
	db *gorm.DB,
	jwtSecret string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

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
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Server is healthy", "timestamp": time.Now()})
	})

	authRequired := middleware.VerifyToken(db, jwtSecret)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", authC.Login)
			auth.POST("/register", authC.Register)
			auth.GET("/me", authRequired, authC.Me)
		}

		bookings := api.Group("/bookings", authRequired)
		{
			// Static paths must register before /:id
			bookings.GET("/pending", middleware.IsAdmin(), bookingC.ListPending)
			bookings.GET("/availability/:venue", bookingC.CheckAvailability)
			bookings.GET("", bookingC.List)
			bookings.POST("", bookingC.Create)
			bookings.GET("/:id", bookingC.Get)
			bookings.PUT("/:id/approve", middleware.IsAdmin(), bookingC.Approve)
			bookings.PUT("/:id/reject", middleware.IsAdmin(), bookingC.Reject)
			bookings.DELETE("/:id", bookingC.Delete)
		}

		marks := api.Group("/marks", authRequired)
		{
			marks.POST("", middleware.Authorize(models.RoleAdmin, models.RoleFaculty), markC.AddMark)
			marks.GET("/student/:studentId", middleware.Authorize(models.RoleAdmin, models.RoleFaculty), markC.StudentMarks)
			marks.GET("/branch/:branch", middleware.Authorize(models.RoleAdmin, models.RoleFaculty), markC.StudentsByBranch)
			marks.GET("/my-marks", middleware.Authorize(models.RoleStudent), markC.MyMarks)
		}

		attendance := api.Group("/attendance", authRequired)
		{
			attendance.POST("/mark", middleware.Authorize(models.RoleAdmin, models.RoleFaculty), attendanceC.Mark)
			attendance.PUT("/update/:id", middleware.Authorize(models.RoleAdmin, models.RoleFaculty), attendanceC.Update)
			attendance.GET("/branch/:branch", middleware.Authorize(models.RoleAdmin, models.RoleFaculty), attendanceC.ByBranch)
			attendance.GET("/my", middleware.Authorize(models.RoleStudent), attendanceC.My)
		}

		announcements := api.Group("/announcements")
		{
			announcements.GET("", announcementC.List)
			announcements.GET("/:id", announcementC.Get)
			announcements.POST("/:id/click", announcementC.Click)
			announcements.POST("", authRequired, middleware.IsAdmin(), announcementC.Create)
			announcements.PUT("/:id", authRequired, middleware.IsAdmin(), announcementC.Update)
			announcements.DELETE("/:id", authRequired, middleware.IsAdmin(), announcementC.Delete)
		}

		chatbot := api.Group("/chatbot")
		{
			chatbot.POST("/message", chatbotC.Message)
			chatbot.GET("/stats", chatbotC.Stats)
		}
	}

	return r
}
