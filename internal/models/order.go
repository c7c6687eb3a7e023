package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Estados conocidos de un pedido. No se validan transiciones: cualquier
// estado no vacío reemplaza al anterior.
const (
	OrderStatusPending   = "pending"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order es una foto desnormalizada del producto, cliente y envío al momento de la compra
type Order struct {
	ID            primitive.ObjectID     `json:"_id" bson:"_id,omitempty"`
	OrderID       string                 `json:"orderId" bson:"orderId"`
	ProductName   string                 `json:"productName" bson:"productName"`
	Price         float64                `json:"price" bson:"price"`
	TotalPrice    float64                `json:"totalPrice" bson:"totalPrice"`
	Quantity      int64                  `json:"quantity" bson:"quantity"`
	CustomerName  string                 `json:"customerName" bson:"customerName"`
	CustomerEmail string                 `json:"customerEmail" bson:"customerEmail"`
	ShippingInfo  map[string]interface{} `json:"shippingInfo" bson:"shippingInfo"`
	ContactInfo   map[string]interface{} `json:"contactInfo" bson:"contactInfo"`
	Status        string                 `json:"status" bson:"status"`
	OrderTime     string                 `json:"orderTime" bson:"orderTime"`
}

// OrderInput es el cuerpo de POST /orders; los diez campos son obligatorios
type OrderInput struct {
	OrderID       string                 `json:"orderId" binding:"required"`
	ProductName   string                 `json:"productName" binding:"required"`
	Price         float64                `json:"price" binding:"required"`
	TotalPrice    float64                `json:"totalPrice" binding:"required"`
	Quantity      int64                  `json:"quantity" binding:"required"`
	CustomerName  string                 `json:"customerName" binding:"required"`
	CustomerEmail string                 `json:"customerEmail" binding:"required"`
	ShippingInfo  map[string]interface{} `json:"shippingInfo" binding:"required"`
	ContactInfo   map[string]interface{} `json:"contactInfo" binding:"required"`
	Status        string                 `json:"status" binding:"required"`
}

// ToOrder sella la hora del pedido en UTC
func (in OrderInput) ToOrder(now time.Time) *Order {
	return &Order{
		OrderID:       in.OrderID,
		ProductName:   in.ProductName,
		Price:         in.Price,
		TotalPrice:    in.TotalPrice,
		Quantity:      in.Quantity,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		ShippingInfo:  in.ShippingInfo,
		ContactInfo:   in.ContactInfo,
		Status:        in.Status,
		OrderTime:     now.UTC().Format(time.RFC3339Nano),
	}
}

type OrderStatusUpdate struct {
	Status string `json:"status" binding:"required"`
}
