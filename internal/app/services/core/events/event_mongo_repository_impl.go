package events

import (
	"context"
	"time"

	"kurabi-service/internal/app/contracts"
	"kurabi-service/internal/app/models"
	"kurabi-service/internal/pkg/constvars"
	"kurabi-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type eventMongoRepository struct {
	Collection *mongo.Collection
}

func NewEventMongoRepository(db *mongo.Client, dbName string) contracts.EventRepository {
	return &eventMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionEvents),
	}
}

func (repo *eventMongoRepository) FindAll(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &events)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return events, nil
}

func (repo *eventMongoRepository) FindByID(ctx context.Context, eventID string) (*models.Event, error) {
	objectID, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var event models.Event
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&event)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &event, nil
}

func (repo *eventMongoRepository) Insert(ctx context.Context, event *models.Event) (string, error) {
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	doc := bson.M{
		"title":      event.Title,
		"date":       event.Date,
		"start_time": event.StartTime,
		"end_time":   event.EndTime,
		"created_at": event.CreatedAt,
		"updated_at": event.UpdatedAt,
	}
	appendOptional(doc, event)

	result, err := repo.Collection.InsertOne(ctx, doc)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}

	objectID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", exceptions.ErrMongoDBInsertDocument(mongo.ErrNilDocument)
	}
	return objectID.Hex(), nil
}

func (repo *eventMongoRepository) Update(ctx context.Context, event *models.Event) error {
	objectID, err := primitive.ObjectIDFromHex(event.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	event.UpdatedAt = time.Now()
	doc := bson.M{
		"title":      event.Title,
		"date":       event.Date,
		"start_time": event.StartTime,
		"end_time":   event.EndTime,
		"created_at": event.CreatedAt,
		"updated_at": event.UpdatedAt,
	}
	appendOptional(doc, event)

	result, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": doc})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrEventNotFound(mongo.ErrNoDocuments)
	}
	return nil
}

func (repo *eventMongoRepository) Delete(ctx context.Context, eventID string) error {
	objectID, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrEventNotFound(mongo.ErrNoDocuments)
	}
	return nil
}

func appendOptional(doc bson.M, event *models.Event) {
	if event.Subtitle != "" {
		doc["subtitle"] = event.Subtitle
	}
	if event.Price != "" {
		doc["price"] = event.Price
	}
	if event.MeetingPoint != "" {
		doc["meeting_point"] = event.MeetingPoint
	}
	if event.RemainingSpots != nil {
		doc["remaining_spots"] = *event.RemainingSpots
	}
	if event.IconSVG != "" {
		doc["icon_svg"] = event.IconSVG
	}
	if len(event.PhotoObjects) > 0 {
		doc["photo_objects"] = event.PhotoObjects
	}
	if len(event.Flow) > 0 {
		doc["flow"] = event.Flow
	}
	if len(event.Features) > 0 {
		doc["features"] = event.Features
	}
	if len(event.Includes) > 0 {
		doc["includes"] = event.Includes
	}
}
