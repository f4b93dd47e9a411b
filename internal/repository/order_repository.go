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

type OrderRepository struct {
	ordersCol *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{
		ordersCol: db.Collection("orders"),
	}
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	order.ID = primitive.NewObjectID()
	if order.DeliveryStatus == "" {
		order.DeliveryStatus = models.DeliveryConfirmed
	}
	if order.OrderDate.IsZero() {
		order.OrderDate = time.Now()
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()
	_, err := r.ordersCol.InsertOne(ctx, order)
	return err
}

func (r *OrderRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	err := r.ordersCol.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetByOrderID looks an order up by its public tracking identifier.
func (r *OrderRepository) GetByOrderID(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	err := r.ordersCol.FindOne(ctx, bson.M{"order_id": orderID}).Decode(&order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) GetByUser(ctx context.Context, userID string) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order_date", Value: -1}})
	cursor, err := r.ordersCol.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	var result []models.Order
	err = cursor.All(ctx, &result)
	return result, err
}

func (r *OrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.ordersCol.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var result []models.Order
	err = cursor.All(ctx, &result)
	return result, err
}

func (r *OrderRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	fields["updated_at"] = time.Now()
	_, err := r.ordersCol.UpdateByID(ctx, id, bson.M{"$set": fields})
	return err
}

func (r *OrderRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.ordersCol.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
