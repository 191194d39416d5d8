package repository

import (
	"context"
	"errors"
	"time"

	"learnplatform/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// GetByUserAndLesson возвращает (nil, nil) при отсутствии записи:
// отсутствие эквивалентно "все false", запись не материализуем на чтении.
func (r *ProgressRepository) GetByUserAndLesson(ctx context.Context, userID, lessonID uuid.UUID) (*domain.LessonProgress, error) {
	var rec domain.LessonProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *ProgressRepository) ListByUserAndCourse(ctx context.Context, userID uuid.UUID, courseID string) ([]domain.LessonProgress, error) {
	var records []domain.LessonProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Order("updated_at desc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Apply — upsert по ключу (userID, lessonID), пишутся ТОЛЬКО переданные
// поля. FirstOrCreate чтобы не дублировать запись при гонке двух событий.
// ID назначается через Attrs и только на вставке: непустой первичный ключ
// в приемнике попал бы в условия поиска и существующая запись не нашлась бы.
func (r *ProgressRepository) Apply(ctx context.Context, userID uuid.UUID, courseID string, lessonID uuid.UUID, fields map[string]interface{}) (*domain.LessonProgress, error) {
	var rec domain.LessonProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		Attrs(domain.LessonProgress{
			ID:       uuid.New(),
			UserID:   userID,
			CourseID: courseID,
			LessonID: lessonID,
		}).
		FirstOrCreate(&rec).Error
	if err != nil {
		return nil, err
	}

	if len(fields) > 0 {
		updates := make(map[string]interface{}, len(fields)+1)
		for k, v := range fields {
			updates[k] = v
		}
		updates["updated_at"] = time.Now()
		err = r.db.WithContext(ctx).
			Model(&domain.LessonProgress{}).
			Where("user_id = ? AND lesson_id = ?", userID, lessonID).
			Updates(updates).Error
		if err != nil {
			return nil, err
		}
	}

	// Перечитываем сохраненное состояние: авто-завершение считается
	// от него, а не от того, что прислал клиент.
	var saved domain.LessonProgress
	err = r.db.WithContext(ctx).
		Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		First(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}
