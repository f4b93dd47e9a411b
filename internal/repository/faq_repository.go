package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vinaypatil-tal/scoot-assist-chat/internal/models"
)

var ErrCategoryNotEmpty = errors.New("category still has FAQ items")

type FAQRepository struct {
	categoriesCol *mongo.Collection
	itemsCol      *mongo.Collection
}

func NewFAQRepository(db *mongo.Database) *FAQRepository {
	return &FAQRepository{
		categoriesCol: db.Collection("faq_categories"),
		itemsCol:      db.Collection("faq_items"),
	}
}

// Categories

func (r *FAQRepository) CreateCategory(ctx context.Context, cat *models.FAQCategory) error {
	cat.ID = primitive.NewObjectID()
	cat.CreatedAt = time.Now()
	cat.UpdatedAt = time.Now()
	_, err := r.categoriesCol.InsertOne(ctx, cat)
	return err
}

func (r *FAQRepository) UpdateCategory(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	fields["updated_at"] = time.Now()
	_, err := r.categoriesCol.UpdateByID(ctx, id, bson.M{"$set": fields})
	return err
}

// DeleteCategory refuses to delete a category that still owns items, so
// items can never reference a missing category.
func (r *FAQRepository) DeleteCategory(ctx context.Context, id primitive.ObjectID) error {
	count, err := r.itemsCol.CountDocuments(ctx, bson.M{"category_id": id})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryNotEmpty
	}
	_, err = r.categoriesCol.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *FAQRepository) GetAllCategories(ctx context.Context) ([]models.FAQCategory, error) {
	opts := options.Find().SetSort(bson.D{{Key: "display_order", Value: 1}})
	cursor, err := r.categoriesCol.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var result []models.FAQCategory
	err = cursor.All(ctx, &result)
	return result, err
}

// Items

func (r *FAQRepository) CreateItem(ctx context.Context, item *models.FAQItem) error {
	item.ID = primitive.NewObjectID()
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()
	if item.Keywords == nil {
		item.Keywords = []string{}
	}
	_, err := r.itemsCol.InsertOne(ctx, item)
	return err
}

func (r *FAQRepository) UpdateItem(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	fields["updated_at"] = time.Now()
	_, err := r.itemsCol.UpdateByID(ctx, id, bson.M{"$set": fields})
	return err
}

func (r *FAQRepository) DeleteItem(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.itemsCol.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *FAQRepository) GetAllItems(ctx context.Context) ([]models.FAQItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "display_order", Value: 1}})
	cursor, err := r.itemsCol.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var result []models.FAQItem
	err = cursor.All(ctx, &result)
	return result, err
}

func (r *FAQRepository) CategoryExists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := r.categoriesCol.CountDocuments(ctx, bson.M{"_id": id})
	return count > 0, err
}

// GetActiveCatalog returns the snapshot the responder reads: active
// categories and active items, both in display_order.
func (r *FAQRepository) GetActiveCatalog(ctx context.Context) (*models.Catalog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "display_order", Value: 1}})

	catCursor, err := r.categoriesCol.Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, err
	}
	var categories []models.FAQCategory
	if err := catCursor.All(ctx, &categories); err != nil {
		return nil, err
	}

	itemCursor, err := r.itemsCol.Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, err
	}
	var items []models.FAQItem
	if err := itemCursor.All(ctx, &items); err != nil {
		return nil, err
	}

	return &models.Catalog{Categories: categories, Items: items}, nil
}
