package repository

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound se devuelve cuando ningún documento coincide con el filtro.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate se devuelve cuando un índice único rechaza la escritura.
	ErrDuplicate = errors.New("already exists")

	// ErrInvalidID se devuelve cuando el identificador no es un ObjectID válido.
	ErrInvalidID = errors.New("invalid id")

	ErrUserNotFound    = fmt.Errorf("user %w", ErrNotFound)
	ErrProductNotFound = fmt.Errorf("product %w", ErrNotFound)
	ErrOrderNotFound   = fmt.Errorf("order %w", ErrNotFound)

	ErrUserExists = fmt.Errorf("user %w", ErrDuplicate)
)

// InsufficientStockError rechaza una deducción mayor que el stock actual.
type InsufficientStockError struct {
	Current int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock. Current stock: %d", e.Current)
}

// ParseID convierte un hex en ObjectID
func ParseID(id string) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return objID, nil
}

// translate traduce errores del driver a los sentinelas del paquete
func translate(err error, notFound, duplicate error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments) && notFound != nil:
		return notFound
	case mongo.IsDuplicateKeyError(err) && duplicate != nil:
		return fmt.Errorf("%w: %v", duplicate, err)
	default:
		return err
	}
}
