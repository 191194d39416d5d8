package usecase

import (
	"context"
	"errors"

	"learnplatform/internal/domain"
	"learnplatform/internal/infrastructure/repository"

	"github.com/google/uuid"
)

var ErrAnswerCount = errors.New("answers must cover every question")

type QuizUseCase struct {
	quizRepo   *repository.QuizRepository
	lessonRepo *repository.LessonRepository
	progress   *ProgressUseCase
}

func NewQuizUseCase(qr *repository.QuizRepository, lr *repository.LessonRepository, p *ProgressUseCase) *QuizUseCase {
	return &QuizUseCase{quizRepo: qr, lessonRepo: lr, progress: p}
}

// Questions — вопросы урока без правильных ответов и пояснений
// (их прячет json-тег доменной модели).
func (uc *QuizUseCase) Questions(ctx context.Context, lessonID uuid.UUID) ([]domain.QuizQuestion, error) {
	if _, err := uc.lessonRepo.GetByID(ctx, lessonID); err != nil {
		return nil, err
	}
	return uc.quizRepo.ListByLesson(ctx, lessonID)
}

type QuizSubmitResult struct {
	Passed bool `json:"passed"`
	// Индекс первого неверного ответа, -1 при успехе
	WrongIndex    int      `json:"wrongIndex"`
	Explanations  []string `json:"explanations,omitempty"`
	AutoCompleted bool     `json:"autoCompleted"`
}

// Submit сверяет ответы с эталоном. Неверный ответ — просто "попробуйте
// снова", попытки не ограничены и прогресс не трогается. Полный верный
// набор выставляет quizPassed через машину состояний.
func (uc *QuizUseCase) Submit(ctx context.Context, userID, lessonID uuid.UUID, answers []int) (*QuizSubmitResult, error) {
	lesson, err := uc.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		return nil, err
	}

	questions, err := uc.quizRepo.ListByLesson(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, domain.ErrQuizNotFound
	}
	if len(answers) != len(questions) {
		return nil, ErrAnswerCount
	}

	for i, q := range questions {
		if answers[i] != q.CorrectIndex {
			return &QuizSubmitResult{Passed: false, WrongIndex: i}, nil
		}
	}

	quizPassed := true
	saved, err := uc.progress.Save(ctx, userID, lesson.CourseID, lessonID, domain.ProgressUpdate{
		QuizPassed: &quizPassed,
	})
	if err != nil {
		return nil, err
	}

	explanations := make([]string, 0, len(questions))
	for _, q := range questions {
		explanations = append(explanations, q.Explanation)
	}

	return &QuizSubmitResult{
		Passed:        true,
		WrongIndex:    -1,
		Explanations:  explanations,
		AutoCompleted: saved.AutoCompleted,
	}, nil
}
