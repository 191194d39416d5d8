package usecase

import (
	"testing"

	"learnplatform/internal/infrastructure/repository"
	"learnplatform/internal/infrastructure/seed"

	"gorm.io/gorm"
)

func newLessonUseCase(db *gorm.DB) *LessonUseCase {
	return NewLessonUseCase(
		repository.NewLessonRepository(db, nil),
		repository.NewQuizRepository(db),
	)
}

func TestLessonList_SeedsPythonCourse(t *testing.T) {
	db := newTestDB(t)
	uc := newLessonUseCase(db)

	lessons, err := uc.List(ctxBg(), seed.PythonCourseID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	want := len(seed.PythonLessons())
	if len(lessons) != want {
		t.Fatalf("seeded %d lessons, want %d", len(lessons), want)
	}
	for i, l := range lessons {
		if l.LessonNumber != i+1 {
			t.Fatalf("lesson order broken at %d: lessonNumber=%d", i, l.LessonNumber)
		}
	}

	// Викторины прорастают вместе с уроками
	quizRepo := repository.NewQuizRepository(db)
	questions, err := quizRepo.ListByLesson(ctxBg(), lessons[0].ID)
	if err != nil {
		t.Fatalf("quiz list: %v", err)
	}
	if len(questions) == 0 {
		t.Fatalf("expected quiz questions seeded for first lesson")
	}
}

func TestLessonList_SeedDoesNotOverwriteExisting(t *testing.T) {
	db := newTestDB(t)
	uc := newLessonUseCase(db)

	custom := seedLesson(t, db, seed.PythonCourseID, 1)

	lessons, err := uc.List(ctxBg(), seed.PythonCourseID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lessons) != len(seed.PythonLessons()) {
		t.Fatalf("got %d lessons, want %d", len(lessons), len(seed.PythonLessons()))
	}
	if lessons[0].ID != custom.ID || lessons[0].Title != custom.Title {
		t.Fatalf("existing lesson 1 was replaced by the seed")
	}
}

func TestLessonList_ForeignCourseNotSeeded(t *testing.T) {
	db := newTestDB(t)
	uc := newLessonUseCase(db)

	lessons, err := uc.List(ctxBg(), "go")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lessons) != 0 {
		t.Fatalf("unknown course must stay empty, got %d lessons", len(lessons))
	}
}

func TestLessonList_SeedIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	uc := newLessonUseCase(db)

	first, err := uc.List(ctxBg(), seed.PythonCourseID)
	if err != nil {
		t.Fatalf("first list: %v", err)
	}
	second, err := uc.List(ctxBg(), seed.PythonCourseID)
	if err != nil {
		t.Fatalf("second list: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("repeat listing changed lesson count: %d -> %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("lesson %d got a new ID on repeat listing", i+1)
		}
	}
}
