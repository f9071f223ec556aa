package config

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	mongoClient *mongo.Client

	// DB is the application database handle, shared by the repositories.
	DB *mongo.Database
)

func ConnectDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(AppConfig.MongoURI))
	if err != nil {
		log.Fatal().Err(err).Msg("unable to connect to MongoDB")
	}

	if err = client.Ping(ctx, nil); err != nil {
		log.Fatal().Err(err).Msg("unable to ping MongoDB")
	}

	mongoClient = client
	DB = client.Database(AppConfig.MongoDBName)

	log.Info().Str("database", AppConfig.MongoDBName).Msg("database connected")

	if err := ensureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}
}

// ensureIndexes creates the indexes the queries rely on. Safe to call on
// every startup; Mongo treats existing definitions as a no-op.
func ensureIndexes(ctx context.Context) error {
	_, err := DB.Collection("accounts").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = DB.Collection("orchids").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "categoryId", Value: 1}},
	})
	if err != nil {
		return err
	}

	_, err = DB.Collection("orders").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "accountId", Value: 1}, {Key: "orderDate", Value: -1}},
	})
	return err
}

func CloseDB() {
	if mongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(ctx); err != nil {
			log.Error().Err(err).Msg("error closing MongoDB connection")
			return
		}
		log.Info().Msg("database connection closed")
	}
}
