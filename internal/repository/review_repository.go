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

type ReviewRepository struct {
	reviewsCol *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{
		reviewsCol: db.Collection("manual_review_requests"),
	}
}

func (r *ReviewRepository) Create(ctx context.Context, req *models.ReviewRequest) error {
	req.ID = primitive.NewObjectID()
	req.Status = models.ReviewPending
	req.CreatedAt = time.Now()
	req.UpdatedAt = time.Now()
	_, err := r.reviewsCol.InsertOne(ctx, req)
	return err
}

func (r *ReviewRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ReviewRequest, error) {
	var req models.ReviewRequest
	err := r.reviewsCol.FindOne(ctx, bson.M{"_id": id}).Decode(&req)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *ReviewRepository) GetAll(ctx context.Context) ([]models.ReviewRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.reviewsCol.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var result []models.ReviewRequest
	err = cursor.All(ctx, &result)
	return result, err
}

func (r *ReviewRepository) GetByUser(ctx context.Context, userID string) ([]models.ReviewRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.reviewsCol.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	var result []models.ReviewRequest
	err = cursor.All(ctx, &result)
	return result, err
}

func (r *ReviewRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.ReviewStatus, adminUserID, adminResponse string) error {
	fields := bson.M{
		"status":        status,
		"admin_user_id": adminUserID,
		"updated_at":    time.Now(),
	}
	if adminResponse != "" {
		fields["admin_response"] = adminResponse
	}
	if status == models.ReviewResolved || status == models.ReviewClosed {
		fields["resolved_at"] = time.Now()
	}
	_, err := r.reviewsCol.UpdateByID(ctx, id, bson.M{"$set": fields})
	return err
}
