package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"learnplatform/internal/domain"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type LessonRepository struct {
	db  *gorm.DB
	rdb *redis.Client // nil = без кеша (тесты, dev без redis)
}

func NewLessonRepository(db *gorm.DB, rdb *redis.Client) *LessonRepository {
	return &LessonRepository{db: db, rdb: rdb}
}

// === КЕШИРУЕМ СПИСОК УРОКОВ КУРСА ===
// Контент меняется только при досеве, TTL короткий.
func (r *LessonRepository) ListByCourse(ctx context.Context, courseID string) ([]domain.Lesson, error) {
	key := "lessons:list:" + courseID

	if r.rdb != nil {
		val, err := r.rdb.Get(ctx, key).Result()
		if err == nil {
			var cached []domain.Lesson
			if json.Unmarshal([]byte(val), &cached) == nil {
				return cached, nil
			}
		}
	}

	var lessons []domain.Lesson
	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("lesson_number asc").
		Find(&lessons).Error
	if err != nil {
		return nil, err
	}

	if r.rdb != nil {
		if data, err := json.Marshal(lessons); err == nil {
			r.rdb.Set(ctx, key, data, 10*time.Minute)
		}
	}

	return lessons, nil
}

func (r *LessonRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Lesson, error) {
	var lesson domain.Lesson
	err := r.db.WithContext(ctx).First(&lesson, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLessonNotFound
		}
		return nil, err
	}
	return &lesson, nil
}

// CreateBatch — досев недостающих уроков. Сбрасываем кеш списка курса.
func (r *LessonRepository) CreateBatch(ctx context.Context, lessons []domain.Lesson) error {
	if len(lessons) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&lessons).Error; err != nil {
		return err
	}
	if r.rdb != nil {
		r.rdb.Del(ctx, "lessons:list:"+lessons[0].CourseID)
	}
	return nil
}

type QuizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{db: db}
}

func (r *QuizRepository) ListByLesson(ctx context.Context, lessonID uuid.UUID) ([]domain.QuizQuestion, error) {
	var questions []domain.QuizQuestion
	err := r.db.WithContext(ctx).
		Where("lesson_id = ?", lessonID).
		Order("order_index asc").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *QuizRepository) CreateBatch(ctx context.Context, questions []domain.QuizQuestion) error {
	if len(questions) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&questions).Error
}
