package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product representa un repuesto del catálogo
type Product struct {
	ID                   primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name                 string             `json:"name" bson:"name"`
	Price                float64            `json:"price" bson:"price"`
	AvailableQuantity    int64              `json:"available_quantity" bson:"available_quantity"`
	MinimumOrderQuantity int64              `json:"minimum_order_quantity" bson:"minimum_order_quantity"`
	Description          string             `json:"description" bson:"description"`
	Image                string             `json:"image" bson:"image"`
}

// ProductInput es el cuerpo de POST /products. Un valor cero cuenta como ausente.
type ProductInput struct {
	Name                 string  `json:"name" binding:"required"`
	Price                float64 `json:"price" binding:"required"`
	AvailableQuantity    int64   `json:"available_quantity" binding:"required"`
	MinimumOrderQuantity int64   `json:"minimum_order_quantity" binding:"required"`
	Description          string  `json:"description" binding:"required"`
	Image                string  `json:"image" binding:"required"`
}

// ToProduct construye el documento a insertar
func (in ProductInput) ToProduct() *Product {
	return &Product{
		Name:                 in.Name,
		Price:                in.Price,
		AvailableQuantity:    in.AvailableQuantity,
		MinimumOrderQuantity: in.MinimumOrderQuantity,
		Description:          in.Description,
		Image:                in.Image,
	}
}

// Acciones de ajuste de stock
const (
	StockAdd    = "add"
	StockDeduct = "deduct"
)

// StockAdjustment es el cuerpo de PATCH /products/:id. Quantity queda sin
// tipar para que un valor mal tipado se reporte como cantidad inválida.
type StockAdjustment struct {
	Quantity interface{} `json:"quantity"`
	Action   string      `json:"action"`
}
