package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vinaypatil-tal/scoot-assist-chat/internal/models"
)

// contextWindow is how many surrounding messages are captured with an
// escalation so the reviewer sees what led up to it.
const contextWindow = 6

type ReviewRepository interface {
	Create(ctx context.Context, req *models.ReviewRequest) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.ReviewRequest, error)
	GetAll(ctx context.Context) ([]models.ReviewRequest, error)
	GetByUser(ctx context.Context, userID string) ([]models.ReviewRequest, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.ReviewStatus, adminUserID, adminResponse string) error
}

type ReviewService struct {
	reviews ReviewRepository
	chats   ChatRepository
}

func NewReviewService(reviews ReviewRepository, chats ChatRepository) *ReviewService {
	return &ReviewService{reviews: reviews, chats: chats}
}

// Create files an escalation for a bot answer the user rejected. The user's
// recent conversation is flattened into a context string for the reviewer.
func (s *ReviewService) Create(ctx context.Context, userID, phoneNumber, originalQuery, botResponse, feedback string) (*models.ReviewRequest, error) {
	if originalQuery == "" {
		return nil, errors.New("original query is required")
	}

	recent, err := s.chats.GetRecentMessages(ctx, userID, contextWindow)
	if err != nil {
		return nil, fmt.Errorf("load chat context: %w", err)
	}

	req := &models.ReviewRequest{
		UserID:        userID,
		PhoneNumber:   phoneNumber,
		OriginalQuery: originalQuery,
		ChatContext:   FlattenContext(recent),
		BotResponse:   botResponse,
		UserFeedback:  feedback,
	}
	if err := s.reviews.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *ReviewService) List(ctx context.Context) ([]models.ReviewRequest, error) {
	return s.reviews.GetAll(ctx)
}

func (s *ReviewService) ListByUser(ctx context.Context, userID string) ([]models.ReviewRequest, error) {
	return s.reviews.GetByUser(ctx, userID)
}

func (s *ReviewService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.ReviewStatus, adminUserID, adminResponse string) error {
	if !status.Valid() {
		return errors.New("invalid review status")
	}
	return s.reviews.UpdateStatus(ctx, id, status, adminUserID, adminResponse)
}

// FlattenContext renders messages as one reviewer-readable text block,
// oldest first.
func FlattenContext(messages []models.ChatMessage) string {
	var b strings.Builder
	for _, msg := range messages {
		speaker := "bot"
		if msg.IsUser {
			speaker = "user"
		}
		fmt.Fprintf(&b, "[%s] %s\n", speaker, msg.Content)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
