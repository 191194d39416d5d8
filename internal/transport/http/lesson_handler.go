package handlers

import (
	"net/http"

	"learnplatform/internal/application/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LessonHandler struct {
	lessons *usecase.LessonUseCase
}

func NewLessonHandler(lessons *usecase.LessonUseCase) *LessonHandler {
	return &LessonHandler{lessons: lessons}
}

// GET /api/v1/lessons?courseId=python
func (h *LessonHandler) List(c *gin.Context) {
	courseID := c.Query("courseId")
	if courseID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "courseId is required"})
		return
	}

	lessons, err := h.lessons.List(c.Request.Context(), courseID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"lessons": lessons})
}

// GET /api/v1/lessons/:id
func (h *LessonHandler) GetOne(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lesson id"})
		return
	}

	lesson, err := h.lessons.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"lesson": lesson})
}
