package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"motoparts-api/internal/models"
)

type ProductRepository struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func NewProductRepository(collection *mongo.Collection, timeout time.Duration) *ProductRepository {
	return &ProductRepository{
		collection: collection,
		timeout:    timeout,
	}
}

// Create inserta un producto y le asigna su ID
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	product.ID = primitive.NewObjectID()
	_, err := r.collection.InsertOne(ctx, product)
	return err
}

// FindAll lista todos los productos
func (r *ProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*r.timeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err = cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// FindByID obtiene un producto por ID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	objID, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var product models.Product
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&product)
	if err != nil {
		return nil, translate(err, ErrProductNotFound, nil)
	}
	return &product, nil
}

// AdjustStock suma o resta quantity de available_quantity en una sola
// operación. Para "deduct" el filtro exige available_quantity >= quantity, de
// modo que dos deducciones concurrentes nunca dejan el stock negativo.
// Devuelve la cantidad resultante.
func (r *ProductRepository) AdjustStock(ctx context.Context, id string, quantity int64, action string) (int64, error) {
	objID, err := ParseID(id)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	filter := bson.M{"_id": objID}
	delta := quantity
	if action == models.StockDeduct {
		filter["available_quantity"] = bson.M{"$gte": quantity}
		delta = -quantity
	}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"available_quantity": 1})

	var updated models.Product
	err = r.collection.FindOneAndUpdate(
		ctx,
		filter,
		bson.M{"$inc": bson.M{"available_quantity": delta}},
		opts,
	).Decode(&updated)
	if err == nil {
		return updated.AvailableQuantity, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return 0, err
	}
	if action != models.StockDeduct {
		return 0, ErrProductNotFound
	}

	// El filtro no coincidió: o no existe o no alcanza el stock.
	var current models.Product
	err = r.collection.FindOne(
		ctx,
		bson.M{"_id": objID},
		options.FindOne().SetProjection(bson.M{"available_quantity": 1}),
	).Decode(&current)
	if err != nil {
		return 0, translate(err, ErrProductNotFound, nil)
	}
	return 0, &InsufficientStockError{Current: current.AvailableQuantity}
}

// Delete elimina un producto. Los pedidos existentes no se tocan.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
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
		return ErrProductNotFound
	}
	return nil
}
