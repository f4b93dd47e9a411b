package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MessageType string

const (
	MessageTypeText       MessageType = "text"
	MessageTypeFile       MessageType = "file"
	MessageTypeQuickReply MessageType = "quick-reply"
)

// ChatMessage is append-only: there is no update path once a message is stored.
type ChatMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	Content   string             `bson:"content" json:"content"`
	IsUser    bool               `bson:"is_user" json:"is_user"`
	Type      MessageType        `bson:"type" json:"type"`
	FileURL   string             `bson:"file_url,omitempty" json:"file_url,omitempty"`
	FileName  string             `bson:"file_name,omitempty" json:"file_name,omitempty"`
	FileSize  int64              `bson:"file_size,omitempty" json:"file_size,omitempty"`
	FileType  string             `bson:"file_type,omitempty" json:"file_type,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
