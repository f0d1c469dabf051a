package repository

import (
	"context"
	"errors"
	"regexp"

	"github.com/markme/markme-api/internal/database"
	"github.com/markme/markme-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoStudentRepository struct {
	coll *mongo.Collection
}

func NewMongoStudentRepository(db *mongo.Database) *MongoStudentRepository {
	return &MongoStudentRepository{coll: db.Collection(database.StudentsCollection)}
}

func (r *MongoStudentRepository) List(ctx context.Context, search string) ([]models.StudentSummary, error) {
	opts := options.Find().
		SetProjection(bson.D{
			{Key: models.StudentFieldUSN, Value: 1},
			{Key: models.StudentFieldName, Value: 1},
			{Key: "_id", Value: 0},
		}).
		SetSort(bson.D{{Key: models.StudentFieldUSN, Value: 1}})

	cursor, err := r.coll.Find(ctx, searchFilter(search), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	students := []models.StudentSummary{}
	if err := cursor.All(ctx, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (r *MongoStudentRepository) FindByUSN(ctx context.Context, usn string) (models.Student, error) {
	var student models.Student
	err := r.coll.FindOne(ctx, bson.M{models.StudentFieldUSN: usn}).Decode(&student)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Student{}, ErrNotFound
		}
		return models.Student{}, err
	}
	return student, nil
}

// searchFilter matches search as a literal, case-insensitive substring of
// either the USN or the name.
func searchFilter(search string) bson.M {
	if search == "" {
		return bson.M{}
	}
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	return bson.M{"$or": bson.A{
		bson.M{models.StudentFieldName: pattern},
		bson.M{models.StudentFieldUSN: pattern},
	}}
}
