package reservations

import (
	"context"

	"kurabi-service/internal/app/contracts"
	"kurabi-service/internal/app/models"
	"kurabi-service/internal/pkg/constvars"
	"kurabi-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type reservationLogMongoRepository struct {
	Collection *mongo.Collection
}

func NewReservationLogMongoRepository(db *mongo.Client, dbName string) contracts.ReservationLogRepository {
	return &reservationLogMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionReservationLogs),
	}
}

// Append writes one attribution row. The collection is append-only; there is
// deliberately no update or delete path.
func (repo *reservationLogMongoRepository) Append(ctx context.Context, log *models.ReservationLog) error {
	doc := bson.M{
		"recorded_at":    log.RecordedAt,
		"reservation_id": log.ReservationID,
	}
	if log.UTMSource != "" {
		doc["utm_source"] = log.UTMSource
	}
	if log.UTMMedium != "" {
		doc["utm_medium"] = log.UTMMedium
	}
	if log.UTMContent != "" {
		doc["utm_content"] = log.UTMContent
	}

	_, err := repo.Collection.InsertOne(ctx, doc)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *reservationLogMongoRepository) FindByReservationID(ctx context.Context, reservationID string) ([]models.ReservationLog, error) {
	var logs []models.ReservationLog
	findOptions := options.Find().SetSort(bson.M{"recorded_at": 1})
	cursor, err := repo.Collection.Find(ctx, bson.M{"reservation_id": reservationID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &logs)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return logs, nil
}
