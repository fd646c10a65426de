package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"staybook-backend/controllers"
	"staybook-backend/middleware"
)

// Session lifetime is fixed at 24 hours, not sliding.
const sessionMaxAge = 86400

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
	logger zerolog.Logger,
	hc *controllers.HotelController,
	uc *controllers.UserController,
	bc *controllers.BookingController,
	rc *controllers.ReviewController,
	sessionSecret string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Static("/uploads", "./uploads")

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

	store := cookie.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("staybook_session", store))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		hotels := api.Group("/hotels")
		{
			// static routes before /:id so "weekend" and "search" never
			// resolve as hotel ids
			hotels.GET("/weekend", hc.GetWeekendHotels)
			hotels.GET("/search", hc.SearchHotels)
			hotels.GET("/:id", hc.GetHotelDetail)
		}

		auth := api.Group("/auth")
		{
			auth.POST("/register", uc.Register)
			auth.POST("/login", uc.Login)
			auth.POST("/logout", uc.Logout)
			auth.GET("/current_user", uc.CurrentUser)
		}

		bookings := api.Group("/bookings")
		{
			bookings.POST("/create", bc.CreateBooking)
			bookings.GET("/user", bc.GetUserBookings)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("/hotel/:id", rc.GetHotelReviews)
			reviews.POST("/create", rc.CreateReview)
		}
	}

	return r
}
