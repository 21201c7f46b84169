package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/roadassist/dispatch/internal/domain/entity"
)

type userDocument struct {
	ID           string `bson:"_id"`
	Names        string `bson:"names"`
	Email        string `bson:"email"`
	PhoneNumber  string `bson:"phoneNumber"`
	PasswordHash string `bson:"password"`
	Role         string `bson:"role"`
}

type UserRepositoryImpl struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepositoryImpl {
	return &UserRepositoryImpl{collection: db.Collection(userCollection)}
}

func (r *UserRepositoryImpl) Save(ctx context.Context, user *entity.User) error {
	ctx, span := otel.Tracer("dispatch").Start(ctx, "MongoSaveUser")
	defer span.End()
	span.SetAttributes(attribute.String("user_id", user.ID()))

	_, err := r.collection.InsertOne(ctx, userDocument{
		ID:           user.ID(),
		Names:        user.Names(),
		Email:        user.Email(),
		PhoneNumber:  user.PhoneNumber(),
		PasswordHash: user.PasswordHash(),
		Role:         user.Role(),
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return entity.ErrDuplicateIdentity
		}
		span.RecordError(err)
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepositoryImpl) FindByID(ctx context.Context, id string) (*entity.User, error) {
	ctx, span := otel.Tracer("dispatch").Start(ctx, "MongoFindUser")
	defer span.End()
	span.SetAttributes(attribute.String("user_id", id))

	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	ctx, span := otel.Tracer("dispatch").Start(ctx, "MongoFindUserByEmail")
	defer span.End()

	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepositoryImpl) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var doc userDocument
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return entity.RestoreUser(doc.ID, doc.Names, doc.Email, doc.PhoneNumber, doc.PasswordHash, doc.Role), nil
}
