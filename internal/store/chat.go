package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/apperr"
	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/models"
)

// ChatStore persists threads and messages in MongoDB.
type ChatStore struct {
	threads  *mongo.Collection
	messages *mongo.Collection
}

func NewChatStore(db *mongo.Database) *ChatStore {
	return &ChatStore{
		threads:  db.Collection("chat_threads"),
		messages: db.Collection("chat_messages"),
	}
}

// EnsureIndexes creates the secondary indexes list and history queries rely on.
func (s *ChatStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.threads.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "updated_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("thread index: %w", err)
	}
	_, err = s.messages.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "thread_id", Value: 1}}},
		{Keys: bson.D{{Key: "thread_id", Value: 1}, {Key: "timestamp", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("message indexes: %w", err)
	}
	return nil
}

// ListThreads returns one page ordered by updated_at descending plus the
// total count for the filter.
func (s *ChatStore) ListThreads(ctx context.Context, limit, offset int, createdBy string) ([]models.Thread, int64, error) {
	filter := bson.M{}
	if createdBy != "" {
		filter["created_by"] = createdBy
	}

	total, err := s.threads.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, apperr.Persistence("chat_threads", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "updated_at", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	cur, err := s.threads.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, apperr.Persistence("chat_threads", err)
	}
	defer cur.Close(ctx)

	threads := []models.Thread{}
	if err := cur.All(ctx, &threads); err != nil {
		return nil, 0, apperr.Persistence("chat_threads", err)
	}
	return threads, total, nil
}

func (s *ChatStore) InsertThread(ctx context.Context, t *models.Thread) error {
	if _, err := s.threads.InsertOne(ctx, t); err != nil {
		return apperr.Persistence("chat_threads", err)
	}
	return nil
}

func (s *ChatStore) GetThread(ctx context.Context, id string) (*models.Thread, error) {
	var t models.Thread
	err := s.threads.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound(id, "thread not found")
	}
	if err != nil {
		return nil, apperr.Persistence(id, err)
	}
	return &t, nil
}

// MessagesByThread returns a thread's messages ordered by timestamp
// ascending.
func (s *ChatStore) MessagesByThread(ctx context.Context, threadID string) ([]models.Message, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cur, err := s.messages.Find(ctx, bson.M{"thread_id": threadID}, opts)
	if err != nil {
		return nil, apperr.Persistence(threadID, err)
	}
	defer cur.Close(ctx)

	msgs := []models.Message{}
	if err := cur.All(ctx, &msgs); err != nil {
		return nil, apperr.Persistence(threadID, err)
	}
	return msgs, nil
}

func (s *ChatStore) UpdateThreadTitle(ctx context.Context, id, title string) (*models.Thread, error) {
	update := bson.M{"$set": bson.M{"title": title, "updated_at": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var t models.Thread
	err := s.threads.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound(id, "thread not found")
	}
	if err != nil {
		return nil, apperr.Persistence(id, err)
	}
	return &t, nil
}

// DeleteThread removes the thread and all its messages as one logical
// unit. Messages go first: if the cascade fails partway the thread
// document survives, so a retry still finds it and can finish the job.
func (s *ChatStore) DeleteThread(ctx context.Context, id string) error {
	err := s.threads.FindOne(ctx, bson.M{"_id": id}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.NotFound(id, "thread not found")
	}
	if err != nil {
		return apperr.Persistence(id, err)
	}
	if _, err := s.messages.DeleteMany(ctx, bson.M{"thread_id": id}); err != nil {
		return apperr.Persistence(id, err)
	}
	if _, err := s.threads.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return apperr.Persistence(id, err)
	}
	return nil
}

// AppendMessage inserts the message and applies the thread's
// message_count, last_message and updated_at changes as a single atomic
// update.
func (s *ChatStore) AppendMessage(ctx context.Context, msg *models.Message) error {
	if _, err := s.messages.InsertOne(ctx, msg); err != nil {
		return apperr.Persistence(msg.ThreadID, err)
	}

	update := bson.M{
		"$inc": bson.M{"message_count": 1},
		"$set": bson.M{
			"updated_at": msg.Timestamp,
			"last_message": models.LastMessage{
				Content:   msg.Content,
				Sender:    msg.Sender,
				Timestamp: msg.Timestamp,
				Author:    msg.Author,
			},
		},
	}
	res, err := s.threads.UpdateOne(ctx, bson.M{"_id": msg.ThreadID}, update)
	if err != nil {
		return apperr.Persistence(msg.ThreadID, err)
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound(msg.ThreadID, "thread not found")
	}
	return nil
}
