package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

var (
	ErrLessonNotFound = errors.New("lesson not found")
	ErrQuizNotFound   = errors.New("quiz not found for lesson")
)

// Lesson — единица контента курса. Для ученика неизменяемая,
// наполняется сидом или контент-менеджментом.
type Lesson struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CourseID     string    `gorm:"index;uniqueIndex:idx_course_lesson_number;not null" json:"courseId"`
	LessonNumber int       `gorm:"uniqueIndex:idx_course_lesson_number;not null" json:"lessonNumber"`
	Title        string    `gorm:"not null" json:"title"`
	Description  string    `gorm:"not null" json:"description"`
	Content      string    `gorm:"not null" json:"content"`
	CodeExample  string    `json:"codeExample,omitempty"`
	Exercise     string    `json:"exercise,omitempty"`
	// Эталонный вывод для проверки кода. Пустая строка = проверяем по статусу песочницы.
	ExpectedOutput string    `json:"expectedOutput,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// QuizQuestion — вопрос викторины урока. У урока 0..N вопросов.
type QuizQuestion struct {
	ID           uuid.UUID                  `gorm:"type:uuid;primaryKey" json:"id"`
	LessonID     uuid.UUID                  `gorm:"type:uuid;index;not null" json:"lessonId"`
	OrderIndex   int                        `gorm:"not null" json:"orderIndex"`
	Question     string                     `gorm:"not null" json:"question"`
	Options      datatypes.JSONSlice[string] `gorm:"not null" json:"options"`
	CorrectIndex int                        `gorm:"not null" json:"-"`
	Explanation  string                     `json:"-"`
	Difficulty   string                     `json:"difficulty"`
	CreatedAt    time.Time                  `json:"-"`
}
