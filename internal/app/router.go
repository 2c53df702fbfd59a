package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mergington/activities/internal/activities"
	"github.com/mergington/activities/internal/auth"
	"github.com/mergington/activities/internal/middleware"
	"github.com/mergington/activities/internal/registrations"
	"github.com/mergington/activities/pkg/response"
)

// RouterOptions configures NewRouter.
type RouterOptions struct {
	JWTSecret          string
	SessionTTL         time.Duration
	CORSAllowedOrigins string
}

// NewRouter builds the HTTP API on top of an opened backend.
func NewRouter(b *Backend, opts RouterOptions, storeTimeout time.Duration, logger *zap.Logger) *gin.Engine {
	gate := auth.NewGate(b.Teachers, b.Sessions, auth.NewJWTService(opts.JWTSecret, opts.SessionTTL), storeTimeout, logger)

	activityHandler := activities.NewHandler(activities.NewCatalog(b.Activities, logger), logger)
	registrationHandler := registrations.NewHandler(registrations.NewEngine(b.Activities, logger), logger)
	authHandler := auth.NewHandler(gate, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(opts.CORSAllowedOrigins))
	router.Use(middleware.Session(gate))
	router.Use(middleware.Logger(logger))

	router.GET("/health", func(c *gin.Context) { response.OK(c, gin.H{"status": "ok"}) })

	activityGroup := router.Group("/activities")
	{
		activityGroup.GET("", activityHandler.List)
		activityGroup.GET("/days", activityHandler.Days)
		activityGroup.GET("/:name", activityHandler.GetByName)
		activityGroup.POST("/:name/signup", registrationHandler.Signup)
		activityGroup.POST("/:name/unregister", registrationHandler.Unregister)
	}

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/session", authHandler.Session)
		authGroup.POST("/logout", authHandler.Logout)
	}

	return router
}
