package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"motoparts-api/internal/middleware"
	"motoparts-api/internal/models"
	"motoparts-api/internal/repository"
)

type UserHandler struct {
	repo   UserStore
	tokens TokenIssuer
}

func NewUserHandler(repo UserStore, tokens TokenIssuer) *UserHandler {
	return &UserHandler{
		repo:   repo,
		tokens: tokens,
	}
}

type authResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *models.User `json:"user"`
}

// LoginOrRegister POST /users. Si ya existe un usuario con ese uid o email
// es un login; si no, se registra con rol "user".
func (h *UserHandler) LoginOrRegister(c *gin.Context) {
	var input models.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "uid and a valid email are required")
		return
	}

	ctx := c.Request.Context()

	existing, err := h.repo.FindByUIDOrEmail(ctx, input.UID, input.Email)
	switch {
	case err == nil:
		h.respondWithToken(c, http.StatusOK, "Login successful", existing)
		return
	case !errors.Is(err, repository.ErrNotFound):
		respondError(c, err, "Internal server error")
		return
	}

	user := input.ToUser()
	if err := h.repo.Create(ctx, user); err != nil {
		respondError(c, err, "Internal server error")
		return
	}

	middleware.Logger(c).Info("user registered", "uid", user.UID)
	h.respondWithToken(c, http.StatusCreated, "User registered successfully", user)
}

func (h *UserHandler) respondWithToken(c *gin.Context, status int, message string, user *models.User) {
	token, err := h.tokens.Generate(user.UID, user.Role)
	if err != nil {
		respondError(c, err, "Internal server error")
		return
	}
	c.JSON(status, authResponse{Message: message, Token: token, User: user})
}

// ListUsers GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser GET /user/:uid; solo el propio usuario o un admin
func (h *UserHandler) GetUser(c *gin.Context) {
	uid := c.Param("uid")
	if !selfOrAdmin(c, uid) {
		c.JSON(http.StatusForbidden, ErrorResponse{Message: "Forbidden"})
		return
	}

	user, err := h.repo.FindByUID(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser PUT /users/:uid. Con toggleRole alterna el rol; si no, aplica
// un merge parcial de los campos presentes.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	uid := c.Param("uid")
	if !selfOrAdmin(c, uid) {
		c.JSON(http.StatusForbidden, ErrorResponse{Message: "Forbidden"})
		return
	}

	var update models.UserUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, "Invalid user data")
		return
	}

	if update.TouchesRole() && !isAdmin(c) {
		c.JSON(http.StatusForbidden, ErrorResponse{Message: "Only admins can change roles"})
		return
	}

	ctx := c.Request.Context()

	if update.ToggleRole {
		role, err := h.repo.ToggleRole(ctx, uid)
		if err != nil {
			respondError(c, err, "Failed to update user info")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "User role toggled successfully",
			"role":    role,
		})
		return
	}

	fields := update.Fields()
	if len(fields) == 0 {
		badRequest(c, "No changes were made")
		return
	}

	changed, err := h.repo.Update(ctx, uid, fields)
	if err != nil {
		respondError(c, err, "Failed to update user info")
		return
	}
	if !changed {
		badRequest(c, "No changes were made")
		return
	}

	user, err := h.repo.FindByUID(ctx, uid)
	if err != nil {
		respondError(c, err, "Failed to update user info")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User information updated successfully",
		"data":    user,
	})
}

// MakeAdmin PUT /make-admin/:id, donde id es el ObjectID del usuario
func (h *UserHandler) MakeAdmin(c *gin.Context) {
	id := c.Param("id")
	if _, err := repository.ParseID(id); err != nil {
		badRequest(c, "Invalid user ID")
		return
	}

	if err := h.repo.SetRoleByID(c.Request.Context(), id, models.RoleAdmin); err != nil {
		respondError(c, err, "Failed to update user role")
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "User role updated to admin"})
}

// DeleteUser DELETE /users/:userId (por uid)
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.repo.DeleteByUID(c.Request.Context(), c.Param("userId")); err != nil {
		respondError(c, err, "Failed to delete user")
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "User deleted successfully"})
}

func isAdmin(c *gin.Context) bool {
	claims, ok := middleware.Claims(c)
	return ok && claims.Role == models.RoleAdmin
}

func selfOrAdmin(c *gin.Context, uid string) bool {
	claims, ok := middleware.Claims(c)
	if !ok {
		return false
	}
	return claims.UID == uid || claims.Role == models.RoleAdmin
}
