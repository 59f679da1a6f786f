package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func createIndexes() {
	createRoutesIndexes()
	createBookingsIndexes()
}

func createRoutesIndexes() {
	routesCollection := GetCollection("routes")
	routesIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "primaryidentifier", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "transporttype", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "startpoint", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "endpoint", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "stops.name", Value: 1}},
		},
		{
			Keys: bson.D{
				{Key: "transporttype", Value: 1},
				{Key: "scheduletype", Value: 1},
			},
		},
	}

	opts := options.CreateIndexes()
	_, err := routesCollection.Indexes().CreateMany(context.Background(), routesIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}

func createBookingsIndexes() {
	bookingsCollection := GetCollection("bookings")
	bookingsIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "primaryidentifier", Value: 1}},
		},
		{
			Keys: bson.D{
				{Key: "routeref", Value: 1},
				{Key: "departuredatetime", Value: 1},
			},
		},
	}

	opts := options.CreateIndexes()
	_, err := bookingsCollection.Indexes().CreateMany(context.Background(), bookingsIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}
