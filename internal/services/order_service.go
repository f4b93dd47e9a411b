package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vinaypatil-tal/scoot-assist-chat/internal/models"
)

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	GetByOrderID(ctx context.Context, orderID string) (*models.Order, error)
	GetByUser(ctx context.Context, userID string) ([]models.Order, error)
	GetAll(ctx context.Context) ([]models.Order, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type OrderService struct {
	repo OrderRepository
}

func NewOrderService(repo OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

func (s *OrderService) Create(ctx context.Context, order *models.Order) error {
	if err := order.Validate(); err != nil {
		return err
	}
	return s.repo.Create(ctx, order)
}

// Track is the public lookup by the customer-facing order number.
func (s *OrderService) Track(ctx context.Context, orderID string) (*models.Order, error) {
	if orderID == "" {
		return nil, errors.New("order id is required")
	}
	return s.repo.GetByOrderID(ctx, orderID)
}

func (s *OrderService) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	return s.repo.GetByUser(ctx, userID)
}

func (s *OrderService) ListAll(ctx context.Context) ([]models.Order, error) {
	return s.repo.GetAll(ctx)
}

func (s *OrderService) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	if status, ok := fields["delivery_status"]; ok {
		st, strOK := status.(string)
		if !strOK || !models.DeliveryStatus(st).Valid() {
			return errors.New("invalid delivery status")
		}
	}
	return s.repo.UpdateFields(ctx, id, fields)
}

func (s *OrderService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}
