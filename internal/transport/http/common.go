package handlers

import (
	"errors"
	"net/http"

	"learnplatform/internal/application/usecase"
	"learnplatform/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// currentUserID достает userId, положенный auth-мидлварью.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetString("userId")
	if raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// respondError переводит доменные ошибки в HTTP-статусы.
// Неизвестные ошибки наружу не детализируем.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrLessonNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrQuizNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUserAlreadyExists),
		errors.Is(err, usecase.ErrAnswerCount),
		errors.Is(err, usecase.ErrEmptyUpdate),
		errors.Is(err, usecase.ErrUnsupportedLanguage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, usecase.ErrExecutionFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Code execution failed", "details": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}
