package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vinaypatil-tal/scoot-assist-chat/internal/models"
)

type ChatRepository struct {
	messagesCol *mongo.Collection
}

func NewChatRepository(db *mongo.Database) *ChatRepository {
	return &ChatRepository{
		messagesCol: db.Collection("chat_messages"),
	}
}

func (r *ChatRepository) AddMessage(ctx context.Context, msg *models.ChatMessage) error {
	msg.ID = primitive.NewObjectID()
	msg.CreatedAt = time.Now()
	_, err := r.messagesCol.InsertOne(ctx, msg)
	return err
}

// GetMessagesByUser returns the user's full history in creation order.
func (r *ChatRepository) GetMessagesByUser(ctx context.Context, userID string) ([]models.ChatMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.messagesCol.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	var result []models.ChatMessage
	err = cursor.All(ctx, &result)
	return result, err
}

// GetRecentMessages returns the user's last n messages in creation order,
// used to build the escalation context window.
func (r *ChatRepository) GetRecentMessages(ctx context.Context, userID string, n int64) ([]models.ChatMessage, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(n)
	cursor, err := r.messagesCol.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	var result []models.ChatMessage
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	// back to chronological order
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	return result, nil
}
