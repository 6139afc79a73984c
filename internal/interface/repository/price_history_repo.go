package repository

import (
	"context"

	"airnova-service/internal/domain/entity"
	"airnova-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoPriceHistoryRepository implements PriceHistoryRepository.
type MongoPriceHistoryRepository struct {
	collection *mongo.Collection
}

// NewMongoPriceHistoryRepository creates a new price history repository.
func NewMongoPriceHistoryRepository(db *mongo.Database) repository.PriceHistoryRepository {
	collection := db.Collection("price_history")

	indexModel := mongo.IndexModel{
		Keys: bson.D{{Key: "flightId", Value: 1}, {Key: "recordedAt", Value: -1}},
	}
	collection.Indexes().CreateOne(context.Background(), indexModel)

	return &MongoPriceHistoryRepository{collection: collection}
}

// InsertMany appends a batch of snapshots.
func (r *MongoPriceHistoryRepository) InsertMany(ctx context.Context, snapshots []entity.PriceSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(snapshots))
	for i := range snapshots {
		if snapshots[i].ID == "" {
			snapshots[i].ID = primitive.NewObjectID().Hex()
		}
		docs = append(docs, snapshots[i])
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// CountForFlight counts the stored snapshots for one flight.
func (r *MongoPriceHistoryRepository) CountForFlight(ctx context.Context, flightID uint) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"flightId": flightID})
}
