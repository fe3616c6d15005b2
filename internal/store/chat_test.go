package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/apperr"
)

func TestDeleteThreadRemovesMessagesBeforeThread(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("cascade order", func(mt *mtest.T) {
		s := NewChatStore(mt.DB)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "venture_insights.chat_threads", mtest.FirstBatch,
				bson.D{{Key: "_id", Value: "t1"}}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(2)}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(1)}),
		)

		require.NoError(mt, s.DeleteThread(context.Background(), "t1"))

		var deleted []string
		for _, ev := range mt.GetAllStartedEvents() {
			if ev.CommandName == "delete" {
				deleted = append(deleted, ev.Command.Lookup("delete").StringValue())
			}
		}
		assert.Equal(mt, []string{"chat_messages", "chat_threads"}, deleted,
			"messages must be removed before the thread so a failed cascade stays retryable")
	})

	mt.Run("unknown thread", func(mt *mtest.T) {
		s := NewChatStore(mt.DB)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "venture_insights.chat_threads", mtest.FirstBatch),
		)

		err := s.DeleteThread(context.Background(), "missing")
		require.Error(mt, err)
		assert.Equal(mt, apperr.KindNotFound, apperr.KindOf(err))
		for _, ev := range mt.GetAllStartedEvents() {
			assert.NotEqual(mt, "delete", ev.CommandName)
		}
	})
}
