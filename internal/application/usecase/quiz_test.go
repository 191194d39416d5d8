package usecase

import (
	"errors"
	"testing"

	"learnplatform/internal/domain"
	"learnplatform/internal/infrastructure/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newQuizUseCase(db *gorm.DB) *QuizUseCase {
	progress := newProgressUseCase(db)
	return NewQuizUseCase(
		repository.NewQuizRepository(db),
		repository.NewLessonRepository(db, nil),
		progress,
	)
}

func TestQuizSubmit_WrongAnswerLeavesProgressUntouched(t *testing.T) {
	db := newTestDB(t)
	uc := newQuizUseCase(db)
	progress := newProgressUseCase(db)
	lesson := seedLesson(t, db, "python", 1)
	seedQuestion(t, db, lesson.ID, 0, 1)
	seedQuestion(t, db, lesson.ID, 1, 2)
	userID := uuid.New()

	res, err := uc.Submit(ctxBg(), userID, lesson.ID, []int{1, 0})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Passed {
		t.Fatalf("expected failed submission")
	}
	if res.WrongIndex != 1 {
		t.Fatalf("wrongIndex = %d, want 1", res.WrongIndex)
	}

	overview, err := progress.Overview(ctxBg(), userID, "python")
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if len(overview.Progress) != 0 {
		t.Fatalf("failed quiz attempt must not create progress records, got %d", len(overview.Progress))
	}
}

func TestQuizSubmit_AllCorrectSetsQuizPassed(t *testing.T) {
	db := newTestDB(t)
	uc := newQuizUseCase(db)
	progress := newProgressUseCase(db)
	lesson := seedLesson(t, db, "python", 1)
	seedQuestion(t, db, lesson.ID, 0, 1)
	seedQuestion(t, db, lesson.ID, 1, 2)
	userID := uuid.New()

	res, err := uc.Submit(ctxBg(), userID, lesson.ID, []int{1, 2})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !res.Passed || res.WrongIndex != -1 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(res.Explanations) != 2 {
		t.Fatalf("expected explanations for every question, got %d", len(res.Explanations))
	}
	if res.AutoCompleted {
		t.Fatalf("quiz alone must not auto-complete the lesson")
	}

	overview, err := progress.Overview(ctxBg(), userID, "python")
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if len(overview.Lessons) != 1 || !overview.Lessons[0].QuizPassed {
		t.Fatalf("quizPassed not persisted: %+v", overview.Lessons)
	}
	if overview.Lessons[0].Completed {
		t.Fatalf("lesson completed without code pass")
	}
}

func TestQuizSubmit_AutoCompletesAfterCodePass(t *testing.T) {
	db := newTestDB(t)
	uc := newQuizUseCase(db)
	progress := newProgressUseCase(db)
	lesson := seedLesson(t, db, "python", 1)
	seedQuestion(t, db, lesson.ID, 0, 0)
	userID := uuid.New()

	if _, err := progress.Save(ctxBg(), userID, "python", lesson.ID, domain.ProgressUpdate{CodePassed: boolPtr(true)}); err != nil {
		t.Fatalf("save codePassed: %v", err)
	}

	res, err := uc.Submit(ctxBg(), userID, lesson.ID, []int{0})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !res.Passed || !res.AutoCompleted {
		t.Fatalf("expected pass with auto-complete, got %+v", res)
	}
}

func TestQuizSubmit_Validation(t *testing.T) {
	db := newTestDB(t)
	uc := newQuizUseCase(db)
	lesson := seedLesson(t, db, "python", 1)
	seedQuestion(t, db, lesson.ID, 0, 0)
	empty := seedLesson(t, db, "python", 2)
	userID := uuid.New()

	if _, err := uc.Submit(ctxBg(), userID, uuid.New(), []int{0}); !errors.Is(err, domain.ErrLessonNotFound) {
		t.Fatalf("expected ErrLessonNotFound, got %v", err)
	}
	if _, err := uc.Submit(ctxBg(), userID, empty.ID, []int{0}); !errors.Is(err, domain.ErrQuizNotFound) {
		t.Fatalf("expected ErrQuizNotFound for lesson without questions, got %v", err)
	}
	if _, err := uc.Submit(ctxBg(), userID, lesson.ID, []int{0, 1}); !errors.Is(err, ErrAnswerCount) {
		t.Fatalf("expected ErrAnswerCount, got %v", err)
	}
}
