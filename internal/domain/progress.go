package domain

import (
	"time"

	"github.com/google/uuid"
)

// LessonProgress — состояние прохождения урока одним пользователем.
// Уникален по паре (UserID, LessonID). Отсутствие записи эквивалентно
// всем false: запись создается лениво при первом сохранении.
type LessonProgress struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_user_lesson;not null" json:"userId"`
	CourseID   string    `gorm:"index;not null" json:"courseId"`
	LessonID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_user_lesson;not null" json:"lessonId"`
	CodePassed bool      `gorm:"default:false" json:"codePassed"`
	QuizPassed bool      `gorm:"default:false" json:"quizPassed"`
	Completed  bool      `gorm:"default:false" json:"completed"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ProgressUpdate — частичное обновление: nil-поле не трогает сохраненное
// значение. Сохранение {codePassed:true} не должно сбрасывать quizPassed.
type ProgressUpdate struct {
	CodePassed *bool `json:"codePassed"`
	QuizPassed *bool `json:"quizPassed"`
	Completed  *bool `json:"completed"`
}

// IsEmpty — true, если в обновлении нет ни одного поля.
func (u ProgressUpdate) IsEmpty() bool {
	return u.CodePassed == nil && u.QuizPassed == nil && u.Completed == nil
}
