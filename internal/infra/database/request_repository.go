package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/roadassist/dispatch/internal/domain/entity"
)

type locationDocument struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"`
	Address     string    `bson:"address,omitempty"`
}

type requestDocument struct {
	ID               string           `bson:"_id"`
	CarIssue         string           `bson:"carIssue"`
	CarModel         string           `bson:"carModel"`
	Contact          string           `bson:"contact"`
	Requester        string           `bson:"requester,omitempty"`
	Location         locationDocument `bson:"location"`
	Status           string           `bson:"status"`
	AssignedGarage   string           `bson:"assignedGarage,omitempty"`
	AssignedMechanic string           `bson:"assignedMechanic,omitempty"`
	AssignedAt       *time.Time       `bson:"assignedAt,omitempty"`
	CreatedAt        time.Time        `bson:"createdAt"`
}

type RequestRepositoryImpl struct {
	collection *mongo.Collection
}

func NewRequestRepository(db *mongo.Database) *RequestRepositoryImpl {
	return &RequestRepositoryImpl{collection: db.Collection(requestCollection)}
}

func (r *RequestRepositoryImpl) Save(ctx context.Context, request *entity.ServiceRequest) error {
	ctx, span := otel.Tracer("dispatch").Start(ctx, "MongoSaveRequest")
	defer span.End()
	span.SetAttributes(attribute.String("request_id", request.ID()))

	_, err := r.collection.InsertOne(ctx, requestToDocument(request))
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("insert request: %w", err)
	}
	return nil
}

func (r *RequestRepositoryImpl) FindByID(ctx context.Context, id string) (*entity.ServiceRequest, error) {
	ctx, span := otel.Tracer("dispatch").Start(ctx, "MongoFindRequest")
	defer span.End()
	span.SetAttributes(attribute.String("request_id", id))

	var doc requestDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrNotFound
		}
		span.RecordError(err)
		return nil, fmt.Errorf("find request: %w", err)
	}
	return documentToRequest(doc)
}

// UpdateStatus is the compare-and-set behind every lifecycle transition:
// the filter pins the status the transition started from, so at most one
// concurrent writer can match.
func (r *RequestRepositoryImpl) UpdateStatus(ctx context.Context, request *entity.ServiceRequest, expected ...string) error {
	ctx, span := otel.Tracer("dispatch").Start(ctx, "MongoUpdateRequestStatus")
	defer span.End()
	span.SetAttributes(
		attribute.String("request_id", request.ID()),
		attribute.String("status", request.StatusName()),
	)

	filter := bson.M{
		"_id":    request.ID(),
		"status": bson.M{"$in": expected},
	}
	update := bson.M{"$set": bson.M{
		"status":           request.StatusName(),
		"assignedGarage":   request.AssignedGarage(),
		"assignedMechanic": request.AssignedMechanic(),
		"assignedAt":       request.AssignedAt(),
	}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("update request status: %w", err)
	}
	if result.MatchedCount == 0 {
		// The id may be unknown, or another writer moved the status first.
		count, err := r.collection.CountDocuments(ctx, bson.M{"_id": request.ID()})
		if err != nil {
			span.RecordError(err)
			return fmt.Errorf("resolve status conflict: %w", err)
		}
		if count == 0 {
			return entity.ErrNotFound
		}
		return entity.ErrStatusConflict
	}
	return nil
}

func (r *RequestRepositoryImpl) ListByGarage(ctx context.Context, garageID string) ([]*entity.ServiceRequest, error) {
	ctx, span := otel.Tracer("dispatch").Start(ctx, "MongoListRequestsByGarage")
	defer span.End()
	span.SetAttributes(attribute.String("garage_id", garageID))

	cursor, err := r.collection.Find(ctx,
		bson.M{"assignedGarage": garageID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []*entity.ServiceRequest
	for cursor.Next(ctx) {
		var doc requestDocument
		if err := cursor.Decode(&doc); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("decode request: %w", err)
		}
		request, err := documentToRequest(doc)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	if err := cursor.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("request cursor: %w", err)
	}
	return requests, nil
}

func (r *RequestRepositoryImpl) DeleteStaleAssigned(ctx context.Context, cutoff time.Time) (int64, error) {
	ctx, span := otel.Tracer("dispatch").Start(ctx, "MongoDeleteStaleAssigned")
	defer span.End()

	result, err := r.collection.DeleteMany(ctx, bson.M{
		"status":     entity.StatusAssigned,
		"assignedAt": bson.M{"$lt": cutoff},
	})
	if err != nil {
		span.RecordError(err)
		return 0, fmt.Errorf("delete stale assignments: %w", err)
	}
	span.SetAttributes(attribute.Int64("deleted", result.DeletedCount))
	return result.DeletedCount, nil
}

func requestToDocument(request *entity.ServiceRequest) requestDocument {
	return requestDocument{
		ID:        request.ID(),
		CarIssue:  request.CarIssue(),
		CarModel:  request.CarModel(),
		Contact:   request.Contact(),
		Requester: request.Requester(),
		Location: locationDocument{
			Type:        "Point",
			Coordinates: request.Location().Coordinates(),
			Address:     request.Location().Address(),
		},
		Status:           request.StatusName(),
		AssignedGarage:   request.AssignedGarage(),
		AssignedMechanic: request.AssignedMechanic(),
		AssignedAt:       request.AssignedAt(),
		CreatedAt:        request.CreatedAt(),
	}
}

func documentToRequest(doc requestDocument) (*entity.ServiceRequest, error) {
	if len(doc.Location.Coordinates) != 2 {
		return nil, entity.ErrInvalidLocation
	}
	location := entity.RestoreLocation(doc.Location.Coordinates[0], doc.Location.Coordinates[1], doc.Location.Address)
	return entity.RestoreServiceRequest(
		doc.ID,
		doc.CarIssue,
		doc.CarModel,
		doc.Contact,
		doc.Requester,
		location,
		doc.Status,
		doc.AssignedGarage,
		doc.AssignedMechanic,
		doc.AssignedAt,
		doc.CreatedAt,
	)
}
