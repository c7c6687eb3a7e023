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

// ReviewRepository solo inserta y lista: las reseñas no se editan ni se borran.
type ReviewRepository struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func NewReviewRepository(collection *mongo.Collection, timeout time.Duration) *ReviewRepository {
	return &ReviewRepository{
		collection: collection,
		timeout:    timeout,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	review.ID = primitive.NewObjectID()
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection.InsertOne(ctx, review)
	return err
}

func (r *ReviewRepository) FindAll(ctx context.Context) ([]models.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*r.timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := make([]models.Review, 0)
	if err = cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
