package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewStatus string

const (
	ReviewPending    ReviewStatus = "pending"
	ReviewInProgress ReviewStatus = "in_progress"
	ReviewResolved   ReviewStatus = "resolved"
	ReviewClosed     ReviewStatus = "closed"
)

func (s ReviewStatus) Valid() bool {
	switch s {
	case ReviewPending, ReviewInProgress, ReviewResolved, ReviewClosed:
		return true
	}
	return false
}

// ReviewRequest is a user's escalation of an unsatisfactory bot answer to a
// human reviewer. Only status, admin fields and resolved_at change after creation.
type ReviewRequest struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        string             `bson:"user_id" json:"user_id"`
	PhoneNumber   string             `bson:"phone_number,omitempty" json:"phone_number,omitempty"`
	OriginalQuery string             `bson:"original_query" json:"original_query" validate:"required"`
	ChatContext   string             `bson:"chat_context,omitempty" json:"chat_context,omitempty"`
	BotResponse   string             `bson:"bot_response,omitempty" json:"bot_response,omitempty"`
	UserFeedback  string             `bson:"user_feedback,omitempty" json:"user_feedback,omitempty"`
	Status        ReviewStatus       `bson:"status" json:"status"`
	AdminUserID   string             `bson:"admin_user_id,omitempty" json:"admin_user_id,omitempty"`
	AdminResponse string             `bson:"admin_response,omitempty" json:"admin_response,omitempty"`
	ResolvedAt    *time.Time         `bson:"resolved_at,omitempty" json:"resolved_at,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}
