package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"motoparts-api/internal/middleware"
	"motoparts-api/internal/repository"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Message: message})
}

// respondError traduce errores del repositorio a códigos HTTP. Lo que no
// reconoce es un 500 con internalMsg y queda registrado.
func respondError(c *gin.Context, err error, internalMsg string) {
	var stockErr *repository.InsufficientStockError
	switch {
	case errors.As(err, &stockErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: stockErr.Error()})
	case errors.Is(err, repository.ErrInvalidID):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid ID"})
	case errors.Is(err, repository.ErrUserNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "User not found"})
	case errors.Is(err, repository.ErrProductNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Product not found"})
	case errors.Is(err, repository.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Order not found"})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Not found"})
	case errors.Is(err, repository.ErrUserExists):
		c.JSON(http.StatusConflict, ErrorResponse{Message: "User already exists"})
	case errors.Is(err, repository.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Message: "Already exists"})
	default:
		middleware.Logger(c).Error(internalMsg,
			"error", err,
			"method", c.Request.Method,
			"path", c.FullPath())
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: internalMsg})
	}
}
