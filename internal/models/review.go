package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review es inmutable una vez creada
type Review struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Rating    float64            `json:"rating" bson:"rating"`
	Review    string             `json:"review" bson:"review"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

type ReviewInput struct {
	Name   string  `json:"name" binding:"required"`
	Email  string  `json:"email" binding:"required"`
	Rating float64 `json:"rating" binding:"required"`
	Review string  `json:"review" binding:"required"`
}
