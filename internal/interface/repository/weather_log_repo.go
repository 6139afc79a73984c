package repository

import (
	"context"
	"errors"
	"time"

	"airnova-service/internal/domain/entity"
	"airnova-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoWeatherLogRepository implements WeatherLogRepository.
type MongoWeatherLogRepository struct {
	collection *mongo.Collection
}

// NewMongoWeatherLogRepository creates a new weather log repository.
func NewMongoWeatherLogRepository(db *mongo.Database) repository.WeatherLogRepository {
	collection := db.Collection("weather_log")

	indexModel := mongo.IndexModel{
		Keys: bson.D{{Key: "airportCode", Value: 1}, {Key: "timestamp", Value: -1}},
	}
	collection.Indexes().CreateOne(context.Background(), indexModel)

	return &MongoWeatherLogRepository{collection: collection}
}

// Append inserts one weather report.
func (r *MongoWeatherLogRepository) Append(ctx context.Context, report *entity.WeatherReport) error {
	if report.ID == "" {
		report.ID = primitive.NewObjectID().Hex()
	}
	if report.Timestamp.IsZero() {
		report.Timestamp = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, report)
	return err
}

// Latest returns the most recent report for an airport, or nil when the log
// has none.
func (r *MongoWeatherLogRepository) Latest(ctx context.Context, airportCode string) (*entity.WeatherReport, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	var report entity.WeatherReport
	err := r.collection.FindOne(ctx, bson.M{"airportCode": airportCode}, opts).Decode(&report)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}
