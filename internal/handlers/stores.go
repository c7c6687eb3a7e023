package handlers

import (
	"context"

	"motoparts-api/internal/models"
)

// Las interfaces viven del lado del consumidor; internal/repository las
// implementa sobre MongoDB.

type UserStore interface {
	FindByUIDOrEmail(ctx context.Context, uid, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	FindAll(ctx context.Context) ([]models.User, error)
	FindByUID(ctx context.Context, uid string) (*models.User, error)
	Update(ctx context.Context, uid string, fields map[string]interface{}) (bool, error)
	ToggleRole(ctx context.Context, uid string) (string, error)
	SetRoleByID(ctx context.Context, id, role string) error
	DeleteByUID(ctx context.Context, uid string) error
}

type ProductStore interface {
	Create(ctx context.Context, product *models.Product) error
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	AdjustStock(ctx context.Context, id string, quantity int64, action string) (int64, error)
	Delete(ctx context.Context, id string) error
}

type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	FindAll(ctx context.Context, customerEmail string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type ReviewStore interface {
	Create(ctx context.Context, review *models.Review) error
	FindAll(ctx context.Context) ([]models.Review, error)
}

// TokenIssuer firma el token devuelto al iniciar sesión
type TokenIssuer interface {
	Generate(uid, role string) (string, error)
}
