package usecase

import (
	"context"
	"log"

	"learnplatform/internal/domain"
	"learnplatform/internal/infrastructure/repository"
	"learnplatform/internal/infrastructure/seed"

	"github.com/google/uuid"
)

type LessonUseCase struct {
	lessonRepo *repository.LessonRepository
	quizRepo   *repository.QuizRepository
}

func NewLessonUseCase(lr *repository.LessonRepository, qr *repository.QuizRepository) *LessonUseCase {
	return &LessonUseCase{lessonRepo: lr, quizRepo: qr}
}

// List возвращает уроки курса по порядку. Для стартового Python-курса
// недостающие номера досеваются из встроенного контента: существующие
// уроки не перезаписываются.
func (uc *LessonUseCase) List(ctx context.Context, courseID string) ([]domain.Lesson, error) {
	lessons, err := uc.lessonRepo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if courseID != seed.PythonCourseID {
		return lessons, nil
	}

	existing := make(map[int]bool, len(lessons))
	for _, l := range lessons {
		existing[l.LessonNumber] = true
	}

	var missing []domain.Lesson
	for _, l := range seed.PythonLessons() {
		if !existing[l.LessonNumber] {
			l.ID = uuid.New()
			missing = append(missing, l)
		}
	}
	if len(missing) == 0 {
		return lessons, nil
	}

	if err := uc.lessonRepo.CreateBatch(ctx, missing); err != nil {
		return nil, err
	}

	// Викторины досеянных уроков
	var questions []domain.QuizQuestion
	for _, l := range missing {
		for _, q := range seed.PythonQuiz(l.LessonNumber) {
			q.ID = uuid.New()
			q.LessonID = l.ID
			questions = append(questions, q)
		}
	}
	if err := uc.quizRepo.CreateBatch(ctx, questions); err != nil {
		// Уроки уже вставлены, список отдаем; ошибку викторины логируем
		log.Printf("Failed to seed quiz questions for %s: %v", courseID, err)
	}

	return uc.lessonRepo.ListByCourse(ctx, courseID)
}

func (uc *LessonUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Lesson, error) {
	return uc.lessonRepo.GetByID(ctx, id)
}
