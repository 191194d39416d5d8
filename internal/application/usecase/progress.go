package usecase

import (
	"context"
	"errors"
	"math"

	"learnplatform/internal/domain"
	"learnplatform/internal/infrastructure/repository"

	"github.com/google/uuid"
)

var ErrEmptyUpdate = errors.New("progress update has no fields")

// ProgressUseCase — машина состояний прохождения урока.
//
// Политика ручного переключения (применяется везде одинаково):
// явный completed:true дотягивает codePassed и quizPassed до true,
// явный completed:false сбрасывает их в false. Поля, переданные в том же
// запросе явно, имеют приоритет над дотягиванием.
type ProgressUseCase struct {
	progressRepo *repository.ProgressRepository
	lessonRepo   *repository.LessonRepository
}

func NewProgressUseCase(pr *repository.ProgressRepository, lr *repository.LessonRepository) *ProgressUseCase {
	return &ProgressUseCase{progressRepo: pr, lessonRepo: lr}
}

type SaveResult struct {
	Progress *domain.LessonProgress
	// true, когда completed выставился сам по правилу "код + викторина"
	AutoCompleted bool
}

// Save применяет частичное обновление к записи (userID, lessonID).
// Непереданные поля не трогаются: {codePassed:true} не сбрасывает
// ранее сохраненный quizPassed. Повторное применение идемпотентно.
func (uc *ProgressUseCase) Save(ctx context.Context, userID uuid.UUID, courseID string, lessonID uuid.UUID, upd domain.ProgressUpdate) (*SaveResult, error) {
	if upd.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	if _, err := uc.lessonRepo.GetByID(ctx, lessonID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if upd.CodePassed != nil {
		fields["code_passed"] = *upd.CodePassed
	}
	if upd.QuizPassed != nil {
		fields["quiz_passed"] = *upd.QuizPassed
	}
	if upd.Completed != nil {
		fields["completed"] = *upd.Completed
		// Ручной переключатель ведет за собой оба флага
		if upd.CodePassed == nil {
			fields["code_passed"] = *upd.Completed
		}
		if upd.QuizPassed == nil {
			fields["quiz_passed"] = *upd.Completed
		}
	}

	saved, err := uc.progressRepo.Apply(ctx, userID, courseID, lessonID, fields)
	if err != nil {
		return nil, err
	}

	// Авто-завершение: считаем от сохраненного состояния, не от
	// присланного клиентом. Явный completed в запросе правило не включает.
	if upd.Completed == nil && saved.CodePassed && saved.QuizPassed && !saved.Completed {
		saved, err = uc.progressRepo.Apply(ctx, userID, courseID, lessonID, map[string]interface{}{
			"completed": true,
		})
		if err != nil {
			return nil, err
		}
		return &SaveResult{Progress: saved, AutoCompleted: true}, nil
	}

	return &SaveResult{Progress: saved}, nil
}

type LessonStatus struct {
	LessonID     uuid.UUID `json:"lessonId"`
	LessonNumber int       `json:"lessonNumber"`
	CodePassed   bool      `json:"codePassed"`
	QuizPassed   bool      `json:"quizPassed"`
	Completed    bool      `json:"completed"`
	// Разблокировка линейная: первый урок или предыдущий завершен.
	// Флаг справочный, доступ к уроку по нему не запрещается.
	Unlocked bool `json:"unlocked"`
}

type CourseOverview struct {
	Progress          []domain.LessonProgress `json:"progress"`
	Lessons           []LessonStatus          `json:"lessons"`
	CompletedCount    int                     `json:"completedCount"`
	TotalLessons      int                     `json:"totalLessons"`
	CompletionPercent float64                 `json:"completionPercent"`
}

// Overview агрегирует прогресс пользователя по курсу.
func (uc *ProgressUseCase) Overview(ctx context.Context, userID uuid.UUID, courseID string) (*CourseOverview, error) {
	lessons, err := uc.lessonRepo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	records, err := uc.progressRepo.ListByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	byLesson := make(map[uuid.UUID]domain.LessonProgress, len(records))
	for _, rec := range records {
		byLesson[rec.LessonID] = rec
	}

	overview := &CourseOverview{
		Progress:     records,
		Lessons:      make([]LessonStatus, 0, len(lessons)),
		TotalLessons: len(lessons),
	}

	prevCompleted := false
	for i, lesson := range lessons {
		rec := byLesson[lesson.ID] // отсутствие записи = все false
		if rec.Completed {
			overview.CompletedCount++
		}
		overview.Lessons = append(overview.Lessons, LessonStatus{
			LessonID:     lesson.ID,
			LessonNumber: lesson.LessonNumber,
			CodePassed:   rec.CodePassed,
			QuizPassed:   rec.QuizPassed,
			Completed:    rec.Completed,
			Unlocked:     i == 0 || prevCompleted,
		})
		prevCompleted = rec.Completed
	}

	overview.CompletionPercent = CompletionPercent(overview.CompletedCount, overview.TotalLessons)
	return overview, nil
}

// CompletionPercent — процент завершения с одним знаком после запятой.
// Ноль уроков — ноль процентов, на ноль не делим.
func CompletionPercent(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(completed)/float64(total)*1000) / 10
}
