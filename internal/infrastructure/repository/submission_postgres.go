package repository

import (
	"context"

	"learnplatform/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) Create(ctx context.Context, sub *domain.Submission) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

// List — история попыток пользователя, свежие первыми.
// lessonID/courseID — опциональные фильтры (нулевые значения игнорируются).
func (r *SubmissionRepository) List(ctx context.Context, userID uuid.UUID, lessonID uuid.UUID, courseID string, limit int) ([]domain.Submission, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if lessonID != uuid.Nil {
		query = query.Where("lesson_id = ?", lessonID)
	}
	if courseID != "" {
		query = query.Where("course_id = ?", courseID)
	}

	var subs []domain.Submission
	err := query.Order("created_at desc").Limit(limit).Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}
