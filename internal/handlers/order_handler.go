package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"motoparts-api/internal/middleware"
	"motoparts-api/internal/models"
	"motoparts-api/internal/repository"
)

type OrderHandler struct {
	repo  OrderStore
	users UserStore
	now   func() time.Time
}

func NewOrderHandler(repo OrderStore, users UserStore) *OrderHandler {
	return &OrderHandler{
		repo:  repo,
		users: users,
		now:   time.Now,
	}
}

// ListOrders GET /orders. Un admin ve todos (o filtra con ?email=); un
// usuario solo los pedidos hechos con su email.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	ctx := c.Request.Context()

	email := c.Query("email")
	if !isAdmin(c) {
		claims, _ := middleware.Claims(c)
		user, err := h.users.FindByUID(ctx, claims.UID)
		if errors.Is(err, repository.ErrUserNotFound) {
			// token válido de una cuenta ya borrada
			c.JSON(http.StatusForbidden, ErrorResponse{Message: "Forbidden"})
			return
		}
		if err != nil {
			respondError(c, err, "Error fetching orders")
			return
		}
		email = user.Email
	}

	orders, err := h.repo.FindAll(ctx, email)
	if err != nil {
		respondError(c, err, "Error fetching orders")
		return
	}
	c.JSON(http.StatusOK, orders)
}

// CreateOrder POST /orders; el servidor sella orderTime
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var input models.OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "All fields are required")
		return
	}

	order := input.ToOrder(h.now())
	if err := h.repo.Create(c.Request.Context(), order); err != nil {
		respondError(c, err, "Internal Server Error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   order,
	})
}

// UpdateOrderStatus PUT /orders/:id; cualquier estado reemplaza al anterior
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id := c.Param("id")
	if _, err := repository.ParseID(id); err != nil {
		badRequest(c, "Invalid order ID")
		return
	}

	var req models.OrderStatusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Status is required")
		return
	}

	if err := h.repo.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		respondError(c, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Order status updated successfully"})
}

// DeleteOrder DELETE /orders/:id
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id := c.Param("id")
	if _, err := repository.ParseID(id); err != nil {
		badRequest(c, "Invalid order ID")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Server error")
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Order deleted successfully"})
}
