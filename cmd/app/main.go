package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"learnplatform/config"
	"learnplatform/internal/application/usecase"
	"learnplatform/internal/domain"
	"learnplatform/internal/infrastructure/cache"
	"learnplatform/internal/infrastructure/executor"
	"learnplatform/internal/infrastructure/repository"
	"learnplatform/internal/infrastructure/security"
	"learnplatform/internal/middleware"
	handlers "learnplatform/internal/transport/http"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	if err := db.AutoMigrate(
		&repository.UserGorm{},
		&domain.Lesson{},
		&domain.QuizQuestion{},
		&domain.LessonProgress{},
		&domain.Submission{},
	); err != nil {
		log.Fatalf("Failed to migrate DB: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	lessonRepo := repository.NewLessonRepository(db, rdb)
	quizRepo := repository.NewQuizRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)

	sessionCache := cache.NewSessionCache(rdb)
	hasher := security.NewPasswordHasher()
	tokenManager := security.NewTokenManager(cfg.JWTSecret)
	judge0 := executor.NewClient(cfg.Judge0URL)

	authUseCase := usecase.NewAuthUseCase(userRepo, sessionCache, hasher, tokenManager)
	lessonUseCase := usecase.NewLessonUseCase(lessonRepo, quizRepo)
	progressUseCase := usecase.NewProgressUseCase(progressRepo, lessonRepo)
	quizUseCase := usecase.NewQuizUseCase(quizRepo, lessonRepo, progressUseCase)
	submissionUseCase := usecase.NewSubmissionUseCase(submissionRepo, lessonRepo, progressUseCase, judge0)

	var store middleware.Store
	if cfg.RateLimitStore == "memory" {
		store = middleware.NewMemoryStore()
	} else {
		store = middleware.NewRedisStore(rdb)
	}
	limiter := middleware.NewRateLimiter(store)

	router := handlers.NewRouter(
		cfg,
		tokenManager,
		sessionCache,
		limiter,
		handlers.NewAuthHandler(authUseCase),
		handlers.NewLessonHandler(lessonUseCase),
		handlers.NewProgressHandler(progressUseCase),
		handlers.NewQuizHandler(quizUseCase),
		handlers.NewSubmissionHandler(submissionUseCase),
	)

	srv := &http.Server{
		Addr:    cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Learn Platform API is running on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Forced shutdown: %v", err)
	}
}
