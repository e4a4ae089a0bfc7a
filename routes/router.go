package routes

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"diskusi-bisnis/cache"
	"diskusi-bisnis/config"
	"diskusi-bisnis/handlers"
	"diskusi-bisnis/helper"
	"diskusi-bisnis/middleware"
	"diskusi-bisnis/models"
	"diskusi-bisnis/repositories"
	"diskusi-bisnis/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// NewRouter wires repositories, services and handlers into the HTTP API.
// rdb may be nil, in which case the tag cache is disabled.
func NewRouter(cfg *config.Config, db *gorm.DB, rdb *redis.Client, log *slog.Logger) *gin.Engine {
	h := helper.NewHTTPHelper(!cfg.IsProduction(), log)
	secret := []byte(cfg.JWT.Secret)

	// Initialize repositories
	tx := repositories.NewTxManager(db)
	userRepo := repositories.NewUserRepository(db)
	questionRepo := repositories.NewQuestionRepository(db)
	answerRepo := repositories.NewAnswerRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	voteRepo := repositories.NewVoteRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	targetRepo := repositories.NewTargetRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	tagCache := cache.NewTagCache(rdb, cfg.Redis.TagTTL, log)

	// Initialize services
	notificationService := services.NewNotificationService(notificationRepo, userRepo, log)
	authService := services.NewAuthService(userRepo, secret, cfg.JWT.Expiration)
	questionService := services.NewQuestionService(tx, questionRepo, answerRepo, commentRepo, voteRepo, tagRepo, tagCache)
	answerService := services.NewAnswerService(tx, answerRepo, questionRepo, commentRepo, voteRepo, userRepo, notificationService)
	commentService := services.NewCommentService(tx, commentRepo, targetRepo, notificationService)
	voteService := services.NewVoteService(tx, voteRepo, targetRepo, userRepo, notificationService)
	userService := services.NewUserService(userRepo, answerRepo, questionService)
	tagService := services.NewTagService(tx, tagRepo, tagCache)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, h)
	questionHandler := handlers.NewQuestionHandler(questionService, h)
	answerHandler := handlers.NewAnswerHandler(answerService, h)
	commentHandler := handlers.NewCommentHandler(commentService, h)
	voteHandler := handlers.NewVoteHandler(voteService, h)
	notificationHandler := handlers.NewNotificationHandler(notificationService, h)
	userHandler := handlers.NewUserHandler(userService, h)
	tagHandler := handlers.NewTagHandler(tagService, h)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logger(log), middleware.Recovery(h))
	router.Use(cors.New(corsConfig(cfg.CORS)))

	router.NoRoute(func(c *gin.Context) {
		h.SendNotFoundError(c, "Route not found")
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})

	auth := middleware.AuthMiddleware(secret, h)
	optional := middleware.OptionalAuth(secret)
	adminOnly := middleware.RequireRole(h, models.RoleAdmin)

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.GET("/me", auth, authHandler.GetProfile)
		}

		questions := api.Group("/questions")
		{
			questions.GET("", optional, questionHandler.GetQuestions)
			questions.GET("/:id", optional, questionHandler.GetQuestion)
			questions.POST("", auth, questionHandler.CreateQuestion)
			questions.PUT("/:id", auth, questionHandler.UpdateQuestion)
			questions.DELETE("/:id", auth, questionHandler.DeleteQuestion)
			questions.POST("/:id/view", questionHandler.IncrementView)
			questions.POST("/:id/close", auth, questionHandler.CloseQuestion)
		}

		answers := api.Group("/answers", auth)
		{
			answers.POST("", answerHandler.CreateAnswer)
			answers.PUT("/:id", answerHandler.UpdateAnswer)
			answers.DELETE("/:id", answerHandler.DeleteAnswer)
			answers.POST("/:id/accept", answerHandler.AcceptAnswer)
		}

		comments := api.Group("/comments", auth)
		{
			comments.POST("", commentHandler.CreateComment)
			comments.PUT("/:id", commentHandler.UpdateComment)
			comments.DELETE("/:id", commentHandler.DeleteComment)
		}

		votes := api.Group("/votes", auth)
		{
			votes.POST("", voteHandler.CastVote)
			votes.DELETE("/:id", voteHandler.RemoveVote)
		}

		notifications := api.Group("/notifications", auth)
		{
			notifications.GET("", notificationHandler.GetNotifications)
			notifications.PUT("/read-all", notificationHandler.MarkAllRead)
			notifications.PUT("/:id/read", notificationHandler.MarkRead)
		}

		users := api.Group("/users")
		{
			users.GET("", userHandler.GetUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", auth, userHandler.UpdateUser)
			users.GET("/:id/questions", userHandler.GetUserQuestions)
			users.GET("/:id/answers", userHandler.GetUserAnswers)
		}

		tags := api.Group("/tags")
		{
			tags.GET("", tagHandler.GetTags)
			tags.GET("/:slug", tagHandler.GetTag)
			tags.POST("", auth, adminOnly, tagHandler.CreateTag)
			tags.PUT("/:id", auth, adminOnly, tagHandler.UpdateTag)
			tags.DELETE("/:id", auth, adminOnly, tagHandler.DeleteTag)
		}
	}

	return router
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	c := cors.Config{
		AllowMethods:  cfg.Methods(),
		AllowHeaders:  cfg.Headers(),
		ExposeHeaders: []string{middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	origins := cfg.Origins()
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
		c.AllowCredentials = true
	}
	return c
}
