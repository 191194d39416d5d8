package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"learnplatform/internal/application/usecase"
	"learnplatform/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SubmissionHandler struct {
	subs *usecase.SubmissionUseCase
}

func NewSubmissionHandler(subs *usecase.SubmissionUseCase) *SubmissionHandler {
	return &SubmissionHandler{subs: subs}
}

// GET /api/v1/submissions?lessonId=...&courseId=...&limit=5
func (h *SubmissionHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	lessonIDStr := c.Query("lessonId")
	courseID := c.Query("courseId")
	if lessonIDStr == "" && courseID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lessonId or courseId is required"})
		return
	}

	lessonID := uuid.Nil
	if lessonIDStr != "" {
		var err error
		lessonID, err = uuid.Parse(lessonIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lesson id"})
			return
		}
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	subs, err := h.subs.List(c.Request.Context(), userID, lessonID, courseID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"submissions": subs})
}

type saveSubmissionReq struct {
	CourseID string `json:"courseId" binding:"required"`
	LessonID string `json:"lessonId" binding:"required"`
	Code     string `json:"code" binding:"required"`
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
	Status   string `json:"status"`
	Passed   bool   `json:"passed"`
}

// POST /api/v1/submissions — журнал, только вставка.
func (h *SubmissionHandler) Save(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req saveSubmissionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "courseId, lessonId, and code are required"})
		return
	}

	lessonID, err := uuid.Parse(req.LessonID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lesson id"})
		return
	}

	sub := &domain.Submission{
		UserID:   userID,
		CourseID: req.CourseID,
		LessonID: lessonID,
		Code:     req.Code,
		Stdout:   req.Stdout,
		Stderr:   req.Stderr,
		Status:   req.Status,
		Passed:   req.Passed,
	}
	if err := h.subs.Save(c.Request.Context(), sub); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Submission saved",
		"submissionId": sub.ID,
	})
}

type executeReq struct {
	Language string `json:"language" binding:"required"`
	Code     string `json:"code" binding:"required"`
	Stdin    string `json:"stdin"`
	// Опционально: с уроком запуск оценивается и попадает в журнал
	LessonID string `json:"lessonId"`
}

// POST /api/v1/code/execute
func (h *SubmissionHandler) Execute(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req executeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "language and code are required"})
		return
	}

	lessonID := uuid.Nil
	if req.LessonID != "" {
		var err error
		lessonID, err = uuid.Parse(req.LessonID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lesson id"})
			return
		}
	}

	outcome, err := h.subs.RunCode(c.Request.Context(), userID, lessonID, req.Language, req.Code, req.Stdin)
	if err != nil {
		if errors.Is(err, usecase.ErrUnsupportedLanguage) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unsupported language: " + req.Language + ". Supported: " + strings.Join(usecase.SupportedLanguages(), ", "),
			})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"language":       outcome.Language,
		"stdout":         outcome.Result.Stdout,
		"stderr":         outcome.Result.Stderr,
		"compile_output": outcome.Result.CompileOutput,
		"message":        outcome.Result.Message,
		"status":         outcome.Result.Status,
		"time":           outcome.Result.Time,
		"memory":         outcome.Result.Memory,
		"evaluated":      outcome.Evaluated,
		"passed":         outcome.Passed,
		"autoCompleted":  outcome.AutoCompleted,
	})
}
