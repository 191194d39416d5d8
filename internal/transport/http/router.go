package handlers

import (
	"strings"
	"time"

	"learnplatform/config"
	"learnplatform/internal/infrastructure/security"
	"learnplatform/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(
	cfg config.Config,
	tokens *security.TokenManager,
	sessions middleware.SessionChecker,
	limiter *middleware.RateLimiter,
	authHandler *AuthHandler,
	lessonHandler *LessonHandler,
	progressHandler *ProgressHandler,
	quizHandler *QuizHandler,
	submissionHandler *SubmissionHandler,
) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = allowedOrigins(cfg.AllowedOrigins)
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}
	r.Use(cors.New(corsConfig))

	requireAuth := middleware.AuthMiddleware(tokens, sessions)
	loginWindow := time.Duration(cfg.LoginRateWindowMin) * time.Minute
	execWindow := time.Duration(cfg.ExecRateWindowMin) * time.Minute

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", limiter.Limit("login", cfg.LoginRateLimit, loginWindow), authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", requireAuth, authHandler.Me)
		}

		// Контент уроков открытый, запирается только прогресс
		lessons := api.Group("/lessons")
		{
			lessons.GET("", lessonHandler.List)
			lessons.GET("/:id", lessonHandler.GetOne)
		}

		progress := api.Group("/progress")
		progress.Use(requireAuth)
		{
			progress.GET("", progressHandler.Overview)
			progress.POST("", progressHandler.Save)
		}

		quiz := api.Group("/quiz")
		quiz.Use(requireAuth)
		{
			quiz.GET("", quizHandler.Questions)
			quiz.POST("/submit", quizHandler.Submit)
		}

		submissions := api.Group("/submissions")
		submissions.Use(requireAuth)
		{
			submissions.GET("", submissionHandler.List)
			submissions.POST("", submissionHandler.Save)
		}

		api.POST("/code/execute",
			requireAuth,
			limiter.Limit("code-execute", cfg.ExecRateLimit, execWindow),
			submissionHandler.Execute,
		)
	}

	return r
}

func allowedOrigins(raw string) []string {
	if raw == "" {
		return []string{"http://localhost:5173", "http://localhost:3000"}
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
