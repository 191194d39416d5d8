package usecase

import (
	"context"
	"fmt"
	"testing"

	"learnplatform/internal/domain"
	"learnplatform/internal/infrastructure/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB — in-memory sqlite с той же схемой, что и прод.
// Имя базы уникально на тест, чтобы тесты не видели друг друга.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&repository.UserGorm{},
		&domain.Lesson{},
		&domain.QuizQuestion{},
		&domain.LessonProgress{},
		&domain.Submission{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func seedLesson(t *testing.T, db *gorm.DB, courseID string, number int) *domain.Lesson {
	t.Helper()

	lesson := &domain.Lesson{
		ID:           uuid.New(),
		CourseID:     courseID,
		LessonNumber: number,
		Title:        fmt.Sprintf("Lesson %d", number),
		Description:  "desc",
		Content:      "content",
	}
	if err := db.Create(lesson).Error; err != nil {
		t.Fatalf("failed to seed lesson: %v", err)
	}
	return lesson
}

func seedQuestion(t *testing.T, db *gorm.DB, lessonID uuid.UUID, order, correct int) *domain.QuizQuestion {
	t.Helper()

	q := &domain.QuizQuestion{
		ID:           uuid.New(),
		LessonID:     lessonID,
		OrderIndex:   order,
		Question:     fmt.Sprintf("Question %d", order),
		Options:      datatypes.JSONSlice[string]{"a", "b", "c", "d"},
		CorrectIndex: correct,
		Explanation:  "because",
		Difficulty:   "easy",
	}
	if err := db.Create(q).Error; err != nil {
		t.Fatalf("failed to seed question: %v", err)
	}
	return q
}

func newProgressUseCase(db *gorm.DB) *ProgressUseCase {
	return NewProgressUseCase(
		repository.NewProgressRepository(db),
		repository.NewLessonRepository(db, nil),
	)
}

func boolPtr(v bool) *bool { return &v }

func ctxBg() context.Context { return context.Background() }
