package repository

import (
	"context"

	"github.com/markme/markme-api/internal/database"
	"github.com/markme/markme-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoAttendanceRepository struct {
	coll *mongo.Collection
}

func NewMongoAttendanceRepository(db *mongo.Database) *MongoAttendanceRepository {
	return &MongoAttendanceRepository{coll: db.Collection(database.AttendanceCollection)}
}

func (r *MongoAttendanceRepository) UpsertSlot(ctx context.Context, usn, date, slot, status string) (models.Attendance, error) {
	filter := bson.M{"usn": usn, "date": date}
	update := bson.M{"$set": bson.M{"slots." + slot: status}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var record models.Attendance
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&record)
	if mongo.IsDuplicateKeyError(err) {
		// Lost the insert race for a new (usn, date); the record now exists,
		// so the second attempt takes the update path.
		err = r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&record)
	}
	if err != nil {
		return models.Attendance{}, err
	}

	if record.Slots == nil {
		record.Slots = map[string]string{}
	}
	return record, nil
}

func (r *MongoAttendanceRepository) FindAbsentees(ctx context.Context, date, slot string) ([]string, error) {
	filter := bson.M{"date": date, "slots." + slot: models.StatusAbsent}
	opts := options.Find().SetProjection(bson.D{{Key: "usn", Value: 1}, {Key: "_id", Value: 0}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		USN string `bson:"usn"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	usns := make([]string, 0, len(rows))
	for _, row := range rows {
		usns = append(usns, row.USN)
	}
	return usns, nil
}
