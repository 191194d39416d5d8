package handlers

import (
	"net/http"

	"learnplatform/internal/application/usecase"
	"learnplatform/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProgressHandler struct {
	progress *usecase.ProgressUseCase
}

func NewProgressHandler(progress *usecase.ProgressUseCase) *ProgressHandler {
	return &ProgressHandler{progress: progress}
}

// GET /api/v1/progress?courseId=python
func (h *ProgressHandler) Overview(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	courseID := c.Query("courseId")
	if courseID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "courseId is required"})
		return
	}

	overview, err := h.progress.Overview(c.Request.Context(), userID, courseID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

type saveProgressReq struct {
	CourseID string `json:"courseId"`
	LessonID string `json:"lessonId"`
	domain.ProgressUpdate
}

// POST /api/v1/progress — частичный upsert: непереданные флаги
// сохраненных значений не трогают.
func (h *ProgressHandler) Save(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req saveProgressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.CourseID == "" || req.LessonID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "courseId and lessonId are required"})
		return
	}

	lessonID, err := uuid.Parse(req.LessonID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lesson id"})
		return
	}

	result, err := h.progress.Save(c.Request.Context(), userID, req.CourseID, lessonID, req.ProgressUpdate)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Progress saved"
	if result.AutoCompleted {
		message = "Progress saved. Lesson auto-marked complete."
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  message,
		"progress": result.Progress,
	})
}
