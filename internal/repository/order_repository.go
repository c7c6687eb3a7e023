package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"motoparts-api/internal/models"
)

type OrderRepository struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func NewOrderRepository(collection *mongo.Collection, timeout time.Duration) *OrderRepository {
	return &OrderRepository{
		collection: collection,
		timeout:    timeout,
	}
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	order.ID = primitive.NewObjectID()
	_, err := r.collection.InsertOne(ctx, order)
	return err
}

// FindAll lista los pedidos, más recientes primero. Con customerEmail no
// vacío filtra por cliente.
func (r *OrderRepository) FindAll(ctx context.Context, customerEmail string) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*r.timeout)
	defer cancel()

	filter := bson.M{}
	if customerEmail != "" {
		filter["customerEmail"] = customerEmail
	}

	opts := options.Find().SetSort(bson.D{{Key: "orderTime", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := make([]models.Order, 0)
	if err = cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus sobrescribe solo el estado; no hay tabla de transiciones.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id, status string) error {
	objID, err := ParseID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	objID, err := ParseID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrOrderNotFound
	}
	return nil
}
