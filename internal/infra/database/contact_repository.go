package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/roadassist/dispatch/internal/domain/entity"
)

type messageDocument struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Message   string    `bson:"message"`
	CreatedAt time.Time `bson:"createdAt"`
}

type ContactRepositoryImpl struct {
	collection *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepositoryImpl {
	return &ContactRepositoryImpl{collection: db.Collection(messageCollection)}
}

func (r *ContactRepositoryImpl) Save(ctx context.Context, message *entity.ContactMessage) error {
	ctx, span := otel.Tracer("dispatch").Start(ctx, "MongoSaveContactMessage")
	defer span.End()
	span.SetAttributes(attribute.String("message_id", message.ID()))

	_, err := r.collection.InsertOne(ctx, messageDocument{
		ID:        message.ID(),
		Name:      message.Name(),
		Email:     message.Email(),
		Message:   message.Message(),
		CreatedAt: message.CreatedAt(),
	})
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}
