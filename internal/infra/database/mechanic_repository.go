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

type mechanicDocument struct {
	ID             string `bson:"_id"`
	GarageID       string `bson:"garageId"`
	FullName       string `bson:"fullName"`
	PhoneNumber    string `bson:"phoneNumber"`
	Specialisation string `bson:"specialisation"`
}

type MechanicRepositoryImpl struct {
	collection *mongo.Collection
}

func NewMechanicRepository(db *mongo.Database) *MechanicRepositoryImpl {
	return &MechanicRepositoryImpl{collection: db.Collection(mechanicCollection)}
}

func (r *MechanicRepositoryImpl) Save(ctx context.Context, mechanic *entity.Mechanic) error {
	ctx, span := otel.Tracer("dispatch").Start(ctx, "MongoSaveMechanic")
	defer span.End()
	span.SetAttributes(attribute.String("mechanic_id", mechanic.ID()))

	_, err := r.collection.InsertOne(ctx, mechanicDocument{
		ID:             mechanic.ID(),
		GarageID:       mechanic.GarageID(),
		FullName:       mechanic.FullName(),
		PhoneNumber:    mechanic.PhoneNumber(),
		Specialisation: mechanic.Specialisation(),
	})
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("insert mechanic: %w", err)
	}
	return nil
}

func (r *MechanicRepositoryImpl) FindByID(ctx context.Context, id string) (*entity.Mechanic, error) {
	ctx, span := otel.Tracer("dispatch").Start(ctx, "MongoFindMechanic")
	defer span.End()
	span.SetAttributes(attribute.String("mechanic_id", id))

	var doc mechanicDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrNotFound
		}
		span.RecordError(err)
		return nil, fmt.Errorf("find mechanic: %w", err)
	}
	return entity.RestoreMechanic(doc.ID, doc.GarageID, doc.FullName, doc.PhoneNumber, doc.Specialisation), nil
}

func (r *MechanicRepositoryImpl) FindByGarage(ctx context.Context, garageID string) ([]*entity.Mechanic, error) {
	ctx, span := otel.Tracer("dispatch").Start(ctx, "MongoFindMechanicsByGarage")
	defer span.End()
	span.SetAttributes(attribute.String("garage_id", garageID))

	cursor, err := r.collection.Find(ctx, bson.M{"garageId": garageID})
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("find mechanics: %w", err)
	}
	defer cursor.Close(ctx)

	var mechanics []*entity.Mechanic
	for cursor.Next(ctx) {
		var doc mechanicDocument
		if err := cursor.Decode(&doc); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("decode mechanic: %w", err)
		}
		mechanics = append(mechanics, entity.RestoreMechanic(doc.ID, doc.GarageID, doc.FullName, doc.PhoneNumber, doc.Specialisation))
	}
	if err := cursor.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("mechanic cursor: %w", err)
	}
	return mechanics, nil
}

func (r *MechanicRepositoryImpl) Update(ctx context.Context, mechanic *entity.Mechanic) error {
	ctx, span := otel.Tracer("dispatch").Start(ctx, "MongoUpdateMechanic")
	defer span.End()
	span.SetAttributes(attribute.String("mechanic_id", mechanic.ID()))

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": mechanic.ID()}, mechanicDocument{
		ID:             mechanic.ID(),
		GarageID:       mechanic.GarageID(),
		FullName:       mechanic.FullName(),
		PhoneNumber:    mechanic.PhoneNumber(),
		Specialisation: mechanic.Specialisation(),
	})
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("update mechanic: %w", err)
	}
	if result.MatchedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *MechanicRepositoryImpl) Delete(ctx context.Context, id string) error {
	ctx, span := otel.Tracer("dispatch").Start(ctx, "MongoDeleteMechanic")
	defer span.End()
	span.SetAttributes(attribute.String("mechanic_id", id))

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("delete mechanic: %w", err)
	}
	if result.DeletedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}
