package handlers

import (
	"net/http"

	"learnplatform/internal/application/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type QuizHandler struct {
	quiz *usecase.QuizUseCase
}

func NewQuizHandler(quiz *usecase.QuizUseCase) *QuizHandler {
	return &QuizHandler{quiz: quiz}
}

// GET /api/v1/quiz?lessonId=...
func (h *QuizHandler) Questions(c *gin.Context) {
	lessonID, err := uuid.Parse(c.Query("lessonId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lessonId is required"})
		return
	}

	questions, err := h.quiz.Questions(c.Request.Context(), lessonID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

type submitQuizReq struct {
	LessonID string `json:"lessonId" binding:"required"`
	Answers  []int  `json:"answers" binding:"required"`
}

// POST /api/v1/quiz/submit
func (h *QuizHandler) Submit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req submitQuizReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lessonID, err := uuid.Parse(req.LessonID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lesson id"})
		return
	}

	result, err := h.quiz.Submit(c.Request.Context(), userID, lessonID, req.Answers)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Incorrect. Try again."
	if result.Passed {
		message = "Correct."
	}
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"result":  result,
	})
}
