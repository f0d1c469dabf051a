package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoAttendanceUpsertSlot(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns record after write", func(mt *mtest.T) {
		repo := NewMongoAttendanceRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: id},
			{Key: "usn", Value: "1AB20CS001"},
			{Key: "date", Value: "2024-01-10"},
			{Key: "slots", Value: bson.D{
				{Key: "9-11", Value: "absent"},
				{Key: "11:15-1:15", Value: "present"},
			}},
		}}))

		record, err := repo.UpsertSlot(context.Background(), "1AB20CS001", "2024-01-10", "11:15-1:15", "present")
		require.NoError(mt, err)

		assert.Equal(mt, id, record.ID)
		assert.Equal(mt, "1AB20CS001", record.USN)
		assert.Equal(mt, map[string]string{"9-11": "absent", "11:15-1:15": "present"}, record.Slots)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "findAndModify", evt.CommandName)
		assert.True(mt, evt.Command.Lookup("upsert").Boolean())
		assert.True(mt, evt.Command.Lookup("new").Boolean())

		query := evt.Command.Lookup("query").Document()
		assert.Equal(mt, "1AB20CS001", query.Lookup("usn").StringValue())
		assert.Equal(mt, "2024-01-10", query.Lookup("date").StringValue())

		set := evt.Command.Lookup("update", "$set").Document()
		assert.Equal(mt, "present", set.Lookup("slots.11:15-1:15").StringValue())
	})

	mt.Run("retries once after losing the insert race", func(mt *mtest.T) {
		repo := NewMongoAttendanceRepository(mt.DB)
		mt.AddMockResponses(
			mtest.CreateCommandErrorResponse(mtest.CommandError{
				Code:    11000,
				Name:    "DuplicateKey",
				Message: "E11000 duplicate key error collection: MarkMe.attendance index: usn_date_unique",
			}),
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "usn", Value: "1AB20CS001"},
				{Key: "date", Value: "2024-01-10"},
				{Key: "slots", Value: bson.D{{Key: "9-11", Value: "absent"}}},
			}}),
		)

		record, err := repo.UpsertSlot(context.Background(), "1AB20CS001", "2024-01-10", "9-11", "absent")
		require.NoError(mt, err)
		assert.Equal(mt, "absent", record.Slots["9-11"])
	})

	mt.Run("surfaces store errors", func(mt *mtest.T) {
		repo := NewMongoAttendanceRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "bad value",
		}))

		_, err := repo.UpsertSlot(context.Background(), "1AB20CS001", "2024-01-10", "9-11", "absent")
		assert.Error(mt, err)
	})
}

func TestMongoAttendanceFindAbsentees(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("maps projected usns", func(mt *mtest.T) {
		repo := NewMongoAttendanceRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "MarkMe.attendance", mtest.FirstBatch,
			bson.D{{Key: "usn", Value: "1AB20CS001"}},
			bson.D{{Key: "usn", Value: "1AB20CS007"}},
		))

		usns, err := repo.FindAbsentees(context.Background(), "2024-01-10", "9-11")
		require.NoError(mt, err)
		assert.Equal(mt, []string{"1AB20CS001", "1AB20CS007"}, usns)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		filter := evt.Command.Lookup("filter").Document()
		assert.Equal(mt, "2024-01-10", filter.Lookup("date").StringValue())
		assert.Equal(mt, "absent", filter.Lookup("slots.9-11").StringValue())
	})

	mt.Run("empty result is an empty slice", func(mt *mtest.T) {
		repo := NewMongoAttendanceRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "MarkMe.attendance", mtest.FirstBatch))

		usns, err := repo.FindAbsentees(context.Background(), "2024-01-10", "9-11")
		require.NoError(mt, err)
		assert.NotNil(mt, usns)
		assert.Empty(mt, usns)
	})
}
