package database

import (
	"context"
	"fmt"
	"log"
	"time"

	config "github.com/sportsmania/sports_mania_server/configs"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const dbName = "sportsManiaDB"

func ConnectDB() *mongo.Database {
	uri := config.Config("MONGODB_URI")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)))
	if err != nil {
		log.Fatalf("🔥 Failed to create MongoDB client: %v", err)
	}

	// The driver dials lazily, so a ping failure here only means the server is
	// unreachable right now; keep serving and let per-call retries recover.
	if err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		log.Printf("⚠️ MongoDB ping failed, continuing anyway: %v", err)
	} else {
		fmt.Println("✅ Pinged your deployment. Successfully connected to MongoDB")
	}

	return client.Database(dbName)
}

// EnsureIndexes creates the unique indexes that back the idempotent-insert
// policy: users by email, classes by className, selections by the
// (studentEmail, className) pair. Index creation failing at startup is logged,
// not fatal; the read-then-insert checks still apply without them.
func EnsureIndexes(db *mongo.Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)

	indexes := []struct {
		collection string
		model      mongo.IndexModel
	}{
		{"users", mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: unique,
		}},
		{"classes", mongo.IndexModel{
			Keys:    bson.D{{Key: "className", Value: 1}},
			Options: unique,
		}},
		{"studentsclasses", mongo.IndexModel{
			Keys:    bson.D{{Key: "studentEmail", Value: 1}, {Key: "className", Value: 1}},
			Options: unique,
		}},
	}

	for _, idx := range indexes {
		if _, err := db.Collection(idx.collection).Indexes().CreateOne(ctx, idx.model); err != nil {
			log.Printf("⚠️ Failed to create index on %s: %v", idx.collection, err)
		}
	}

	fmt.Println("✅ Database indexes ensured")
}
