package server

import (
	"os"
	"strings"
	"time"

	"anoa.com/schoolstaff/internal/config"
	"anoa.com/schoolstaff/internal/handler"
	"anoa.com/schoolstaff/internal/middleware"
	"anoa.com/schoolstaff/internal/repository"
	"anoa.com/schoolstaff/internal/service"
	"anoa.com/schoolstaff/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
}

func NewServer(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *Server {
	userRepo := repository.NewUserRepository(db)
	personRepo := repository.NewPersonRepository(db)

	// Revocation keys live as long as a token can; see session.Store.
	sessions := session.NewStore(redisClient, cfg.JWTTTL)

	authSvc := service.NewAuthService(userRepo)
	authHandler := handler.NewAuthHandler(authSvc)

	adminSvc := service.NewAdminService(userRepo, personRepo, sessions)
	adminHandler := handler.NewAdminHandler(adminSvc)

	teacherSvc := service.NewTeacherService(userRepo, personRepo, sessions)
	teacherHandler := handler.NewTeacherHandler(teacherSvc)

	studentSvc := service.NewStudentService(personRepo)
	studentHandler := handler.NewStudentHandler(studentSvc)

	router := gin.New()

	setupCORS(router)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	authMiddleware := middleware.NewAuthMiddleware(userRepo, sessions)

	api := router.Group("/api")

	// Public routes (no auth required)
	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
	}

	// Protected routes. The first-login password change stays outside the
	// RequirePasswordChanged gate so a fresh account can actually use it.
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.POST("/auth/first-login-password", authHandler.FirstLoginPassword)
		protected.GET("/profile/me", authHandler.Me)

		completed := protected.Group("")
		completed.Use(authMiddleware.RequirePasswordChanged())
		{
			completed.PUT("/auth/password", authHandler.ChangePassword)

			// Admin account management: superuser only.
			adminGroup := completed.Group("/admins")
			adminGroup.Use(authMiddleware.RequireSuperuser())
			{
				adminGroup.POST("", adminHandler.Create)
				adminGroup.GET("", adminHandler.List)
				adminGroup.DELETE("/:id", adminHandler.Deactivate)
				adminGroup.POST("/:id/activate", adminHandler.Activate)
			}

			// Teacher management: admin or above.
			teacherGroup := completed.Group("/teachers")
			teacherGroup.Use(authMiddleware.RequireAdmin())
			{
				teacherGroup.POST("", teacherHandler.Create)
				teacherGroup.GET("", teacherHandler.List)
				teacherGroup.GET("/:id", teacherHandler.Get)
				teacherGroup.DELETE("/:id", teacherHandler.Deactivate)
				teacherGroup.POST("/:id/activate", teacherHandler.Activate)
			}

			studentGroup := completed.Group("/students")
			studentGroup.Use(authMiddleware.RequireAdmin())
			{
				studentGroup.GET("", studentHandler.List)
			}
		}
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func setupCORS(router *gin.Engine) {
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
