package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"learnplatform/internal/domain"
	"learnplatform/internal/infrastructure/executor"
	"learnplatform/internal/infrastructure/repository"

	"github.com/google/uuid"
)

var (
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrExecutionFailed     = errors.New("code execution failed")
)

// ID языков Judge0 CE
var languageIDs = map[string]int{
	"python":     71,
	"javascript": 63,
	"cpp":        54,
}

func SupportedLanguages() []string {
	names := make([]string, 0, len(languageIDs))
	for name := range languageIDs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type SubmissionUseCase struct {
	subRepo    *repository.SubmissionRepository
	lessonRepo *repository.LessonRepository
	progress   *ProgressUseCase
	executor   *executor.Client
}

func NewSubmissionUseCase(sr *repository.SubmissionRepository, lr *repository.LessonRepository, p *ProgressUseCase, ex *executor.Client) *SubmissionUseCase {
	return &SubmissionUseCase{subRepo: sr, lessonRepo: lr, progress: p, executor: ex}
}

type RunOutcome struct {
	Language      string              `json:"language"`
	Result        *executor.RunResult `json:"result"`
	Evaluated     bool                `json:"evaluated"`
	Passed        bool                `json:"passed"`
	AutoCompleted bool                `json:"autoCompleted"`
}

// RunCode гоняет код через песочницу. Если указан урок — оцениваем
// результат, пишем попытку в журнал и, при успехе, отмечаем codePassed.
// Ошибка песочницы пробрасывается наверх и прогресс не трогает.
func (uc *SubmissionUseCase) RunCode(ctx context.Context, userID, lessonID uuid.UUID, language, code, stdin string) (*RunOutcome, error) {
	normalized := strings.ToLower(language)
	languageID, ok := languageIDs[normalized]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, language)
	}

	result, err := uc.executor.Execute(ctx, languageID, code, stdin)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecutionFailed, err)
	}

	outcome := &RunOutcome{Language: normalized, Result: result}
	if lessonID == uuid.Nil {
		return outcome, nil
	}

	lesson, err := uc.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		return nil, err
	}

	passed := EvaluateRun(result.Stdout, result.Status.Description, lesson.ExpectedOutput)
	outcome.Evaluated = true
	outcome.Passed = passed

	stderr := result.Stderr
	if stderr == "" {
		if result.CompileOutput != "" {
			stderr = result.CompileOutput
		} else {
			stderr = result.Message
		}
	}
	status := result.Status.Description
	if status == "" {
		status = "Unknown"
	}

	if err := uc.subRepo.Create(ctx, &domain.Submission{
		ID:       uuid.New(),
		UserID:   userID,
		CourseID: lesson.CourseID,
		LessonID: lesson.ID,
		Code:     code,
		Stdout:   result.Stdout,
		Stderr:   stderr,
		Status:   status,
		Passed:   passed,
	}); err != nil {
		return nil, err
	}

	// Проваленный запуск ранее заработанный codePassed не сбрасывает
	if passed {
		codePassed := true
		saved, err := uc.progress.Save(ctx, userID, lesson.CourseID, lesson.ID, domain.ProgressUpdate{
			CodePassed: &codePassed,
		})
		if err != nil {
			return nil, err
		}
		outcome.AutoCompleted = saved.AutoCompleted
	}

	return outcome, nil
}

// Save пишет запись журнала напрямую (клиент уже получил результат запуска).
func (uc *SubmissionUseCase) Save(ctx context.Context, sub *domain.Submission) error {
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	if sub.Status == "" {
		sub.Status = "Unknown"
	}
	return uc.subRepo.Create(ctx, sub)
}

func (uc *SubmissionUseCase) List(ctx context.Context, userID, lessonID uuid.UUID, courseID string, limit int) ([]domain.Submission, error) {
	if limit <= 0 {
		limit = 5
	}
	return uc.subRepo.List(ctx, userID, lessonID, courseID, limit)
}
