package database

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/roadassist/dispatch/internal/application/port/outbound"
	"github.com/roadassist/dispatch/internal/domain/entity"
)

type garageDocument struct {
	ID               string           `bson:"_id"`
	Name             string           `bson:"garageName"`
	TINNumber        string           `bson:"tinNumber"`
	Phone            string           `bson:"phone"`
	PasswordHash     string           `bson:"passwordHash"`
	CertificationURL string           `bson:"certification,omitempty"`
	Location         locationDocument `bson:"location"`
	ApprovalStatus   string           `bson:"approvalStatus"`
}

type GarageRepositoryImpl struct {
	collection *mongo.Collection
}

func NewGarageRepository(db *mongo.Database) *GarageRepositoryImpl {
	return &GarageRepositoryImpl{collection: db.Collection(garageCollection)}
}

func (r *GarageRepositoryImpl) Save(ctx context.Context, garage *entity.Garage) error {
	ctx, span := otel.Tracer("dispatch").Start(ctx, "MongoSaveGarage")
	defer span.End()
	span.SetAttributes(attribute.String("garage_id", garage.ID()))

	_, err := r.collection.InsertOne(ctx, garageToDocument(garage))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return entity.ErrDuplicateIdentity
		}
		span.RecordError(err)
		return fmt.Errorf("insert garage: %w", err)
	}
	return nil
}

func (r *GarageRepositoryImpl) FindByID(ctx context.Context, id string) (*entity.Garage, error) {
	ctx, span := otel.Tracer("dispatch").Start(ctx, "MongoFindGarage")
	defer span.End()
	span.SetAttributes(attribute.String("garage_id", id))

	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *GarageRepositoryImpl) FindByTIN(ctx context.Context, tinNumber string) (*entity.Garage, error) {
	ctx, span := otel.Tracer("dispatch").Start(ctx, "MongoFindGarageByTIN")
	defer span.End()

	return r.findOne(ctx, bson.M{"tinNumber": tinNumber})
}

func (r *GarageRepositoryImpl) findOne(ctx context.Context, filter bson.M) (*entity.Garage, error) {
	var doc garageDocument
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("find garage: %w", err)
	}
	return documentToGarage(doc), nil
}

func (r *GarageRepositoryImpl) FindByIDs(ctx context.Context, ids []string) ([]*entity.Garage, error) {
	ctx, span := otel.Tracer("dispatch").Start(ctx, "MongoFindGaragesByIDs")
	defer span.End()
	span.SetAttributes(attribute.Int("count", len(ids)))

	return r.findMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *GarageRepositoryImpl) FindApproved(ctx context.Context) ([]*entity.Garage, error) {
	ctx, span := otel.Tracer("dispatch").Start(ctx, "MongoFindApprovedGarages")
	defer span.End()

	return r.findMany(ctx, bson.M{"approvalStatus": string(entity.ApprovalApproved)})
}

func (r *GarageRepositoryImpl) findMany(ctx context.Context, filter bson.M) ([]*entity.Garage, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find garages: %w", err)
	}
	defer cursor.Close(ctx)

	var garages []*entity.Garage
	for cursor.Next(ctx) {
		var doc garageDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode garage: %w", err)
		}
		garages = append(garages, documentToGarage(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("garage cursor: %w", err)
	}
	return garages, nil
}

func (r *GarageRepositoryImpl) UpdateApprovalStatus(ctx context.Context, id string, status entity.ApprovalStatus) error {
	ctx, span := otel.Tracer("dispatch").Start(ctx, "MongoUpdateGarageApproval")
	defer span.End()
	span.SetAttributes(
		attribute.String("garage_id", id),
		attribute.String("status", string(status)),
	)

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"approvalStatus": string(status)}},
	)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("update approval status: %w", err)
	}
	if result.MatchedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *GarageRepositoryImpl) Counts(ctx context.Context) (outbound.GarageCounts, error) {
	ctx, span := otel.Tracer("dispatch").Start(ctx, "MongoGarageCounts")
	defer span.End()

	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return outbound.GarageCounts{}, fmt.Errorf("count garages: %w", err)
	}
	approved, err := r.collection.CountDocuments(ctx, bson.M{"approvalStatus": string(entity.ApprovalApproved)})
	if err != nil {
		return outbound.GarageCounts{}, fmt.Errorf("count approved garages: %w", err)
	}
	pending, err := r.collection.CountDocuments(ctx, bson.M{"approvalStatus": string(entity.ApprovalPending)})
	if err != nil {
		return outbound.GarageCounts{}, fmt.Errorf("count pending garages: %w", err)
	}

	return outbound.GarageCounts{Total: total, Approved: approved, Pending: pending}, nil
}

func garageToDocument(garage *entity.Garage) garageDocument {
	return garageDocument{
		ID:               garage.ID(),
		Name:             garage.Name(),
		TINNumber:        garage.TINNumber(),
		Phone:            garage.Phone(),
		PasswordHash:     garage.PasswordHash(),
		CertificationURL: garage.CertificationURL(),
		Location: locationDocument{
			Type:        "Point",
			Coordinates: garage.Location().Coordinates(),
			Address:     garage.Location().Address(),
		},
		ApprovalStatus: string(garage.ApprovalStatus()),
	}
}

func documentToGarage(doc garageDocument) *entity.Garage {
	// A garage stored without a usable coordinate pair keeps an invalid
	// location so the ranker excludes it rather than placing it at (0, 0).
	location := entity.RestoreLocation(math.NaN(), math.NaN(), doc.Location.Address)
	if len(doc.Location.Coordinates) == 2 {
		location = entity.RestoreLocation(doc.Location.Coordinates[0], doc.Location.Coordinates[1], doc.Location.Address)
	}
	return entity.RestoreGarage(
		doc.ID,
		doc.Name,
		doc.TINNumber,
		doc.Phone,
		doc.PasswordHash,
		doc.CertificationURL,
		location,
		entity.ApprovalStatus(doc.ApprovalStatus),
	)
}
