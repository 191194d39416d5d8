package domain

import (
	"time"

	"github.com/google/uuid"
)

// Submission — неизменяемый лог одной попытки запуска кода.
// Только вставка, записи никогда не обновляются и не удаляются.
type Submission struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`
	CourseID  string    `gorm:"index;not null" json:"courseId"`
	LessonID  uuid.UUID `gorm:"type:uuid;index;not null" json:"lessonId"`
	Code      string    `gorm:"not null" json:"code"`
	Stdout    string    `json:"stdout"`
	Stderr    string    `json:"stderr"`
	Status    string    `gorm:"default:'Unknown'" json:"status"`
	Passed    bool      `gorm:"default:false" json:"passed"`
	CreatedAt time.Time `json:"createdAt"`
}
