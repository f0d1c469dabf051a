package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/markme/markme-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	StudentsCollection   = "students"
	AttendanceCollection = "attendance"
)

// ConnectDB opens a client against uri and verifies it with a primary ping.
func ConnectDB(ctx context.Context, uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, errors.New("MONGODB_URI is not defined")
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping: %w", err)
	}

	log.Println("MongoDB connected successfully.")
	return client, nil
}

func Disconnect(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Printf("mongo disconnect error: %v", err)
	}
}

// EnsureIndexes creates the unique indexes the ledger and directory rely on.
// The (usn, date) index is required for the one-record-per-day guarantee, so
// its failure is returned. The student index is best effort because student
// data is imported out of band and may already contain duplicates.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := db.Collection(AttendanceCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "usn", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("usn_date_unique"),
	})
	if err != nil {
		return fmt.Errorf("attendance index: %w", err)
	}

	_, err = db.Collection(StudentsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: models.StudentFieldUSN, Value: 1}},
		Options: options.Index().SetUnique(true).SetName("student_usn_unique"),
	})
	if err != nil {
		log.Printf("students index not created: %v", err)
	}

	return nil
}
