package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vinaypatil-tal/scoot-assist-chat/internal/models"
)

type ProfileRepository struct {
	profilesCol *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{
		profilesCol: db.Collection("profiles"),
	}
}

func (r *ProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	profile.ID = primitive.NewObjectID()
	if profile.Role == "" {
		profile.Role = models.RoleUser
	}
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = time.Now()
	_, err := r.profilesCol.InsertOne(ctx, profile)
	return err
}

func (r *ProfileRepository) FindByPhone(ctx context.Context, phoneNumber string) (*models.Profile, error) {
	var profile models.Profile
	err := r.profilesCol.FindOne(ctx, bson.M{"phone_number": phoneNumber}).Decode(&profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) FindByEmail(ctx context.Context, email string) (*models.Profile, error) {
	var profile models.Profile
	err := r.profilesCol.FindOne(ctx, bson.M{"email": email}).Decode(&profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Profile, error) {
	var profile models.Profile
	err := r.profilesCol.FindOne(ctx, bson.M{"_id": id}).Decode(&profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	fields["updated_at"] = time.Now()
	_, err := r.profilesCol.UpdateByID(ctx, id, bson.M{"$set": fields})
	return err
}
