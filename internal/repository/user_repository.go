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

type UserRepository struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func NewUserRepository(collection *mongo.Collection, timeout time.Duration) *UserRepository {
	return &UserRepository{
		collection: collection,
		timeout:    timeout,
	}
}

// EnsureIndexes crea los índices únicos de uid y email. La unicidad la
// garantiza la base, no la aplicación.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*r.timeout)
	defer cancel()

	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "uid", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uid_unique")},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("email_unique")},
	})
	return err
}

// FindByUIDOrEmail busca un usuario existente por uid o por email
func (r *UserRepository) FindByUIDOrEmail(ctx context.Context, uid, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	filter := bson.M{"$or": []bson.M{{"email": email}, {"uid": uid}}}

	var user models.User
	if err := r.collection.FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, translate(err, ErrUserNotFound, nil)
	}
	return &user, nil
}

// Create inserta un usuario nuevo. Si otro registro ganó la carrera,
// devuelve ErrUserExists.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	user.ID = primitive.NewObjectID()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	_, err := r.collection.InsertOne(ctx, user)
	return translate(err, nil, ErrUserExists)
}

func (r *UserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*r.timeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := make([]models.User, 0)
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) FindByUID(ctx context.Context, uid string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var user models.User
	if err := r.collection.FindOne(ctx, bson.M{"uid": uid}).Decode(&user); err != nil {
		return nil, translate(err, ErrUserNotFound, nil)
	}
	return &user, nil
}

// Update aplica un $set parcial. changed es false si el documento ya tenía
// esos valores.
func (r *UserRepository) Update(ctx context.Context, uid string, fields map[string]interface{}) (changed bool, err error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result, err := r.collection.UpdateOne(ctx, bson.M{"uid": uid}, bson.M{"$set": fields})
	if err != nil {
		return false, translate(err, nil, ErrUserExists)
	}
	if result.MatchedCount == 0 {
		return false, ErrUserNotFound
	}
	return result.ModifiedCount > 0, nil
}

// ToggleRole alterna admin<->user en una sola operación y devuelve el rol nuevo
func (r *UserRepository) ToggleRole(ctx context.Context, uid string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{{Key: "role", Value: bson.D{{Key: "$cond", Value: bson.A{
			bson.D{{Key: "$eq", Value: bson.A{"$role", models.RoleAdmin}}},
			models.RoleUser,
			models.RoleAdmin,
		}}}}}}},
	}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"role": 1})

	var updated models.User
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"uid": uid}, pipeline, opts).Decode(&updated)
	if err != nil {
		return "", translate(err, ErrUserNotFound, nil)
	}
	return updated.Role, nil
}

// SetRoleByID asigna el rol al usuario con ese ObjectID
func (r *UserRepository) SetRoleByID(ctx context.Context, id, role string) error {
	objID, err := ParseID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) DeleteByUID(ctx context.Context, uid string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"uid": uid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}
