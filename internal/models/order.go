package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeliveryStatus string

const (
	DeliveryConfirmed      DeliveryStatus = "confirmed"
	DeliveryProcessing     DeliveryStatus = "processing"
	DeliveryShipped        DeliveryStatus = "shipped"
	DeliveryOutForDelivery DeliveryStatus = "out_for_delivery"
	DeliveryDelivered      DeliveryStatus = "delivered"
)

func (s DeliveryStatus) Valid() bool {
	switch s {
	case DeliveryConfirmed, DeliveryProcessing, DeliveryShipped, DeliveryOutForDelivery, DeliveryDelivered:
		return true
	}
	return false
}

type Order struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID           string             `bson:"order_id" json:"order_id"`
	UserID            string             `bson:"user_id" json:"user_id"`
	CustomerName      string             `bson:"customer_name" json:"customer_name"`
	CustomerEmail     string             `bson:"customer_email,omitempty" json:"customer_email,omitempty"`
	CustomerPhone     string             `bson:"customer_phone,omitempty" json:"customer_phone,omitempty"`
	ProductName       string             `bson:"product_name" json:"product_name"`
	ProductModel      string             `bson:"product_model,omitempty" json:"product_model,omitempty"`
	OrderAmount       float64            `bson:"order_amount" json:"order_amount"`
	OrderDate         time.Time          `bson:"order_date" json:"order_date"`
	DeliveryAddress   string             `bson:"delivery_address" json:"delivery_address"`
	DeliveryNotes     string             `bson:"delivery_notes,omitempty" json:"delivery_notes,omitempty"`
	DeliveryStatus    DeliveryStatus     `bson:"delivery_status" json:"delivery_status"`
	TrackingNumber    string             `bson:"tracking_number,omitempty" json:"tracking_number,omitempty"`
	EstimatedDelivery *time.Time         `bson:"estimated_delivery,omitempty" json:"estimated_delivery,omitempty"`
	ActualDelivery    *time.Time         `bson:"actual_delivery,omitempty" json:"actual_delivery,omitempty"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updated_at"`
}

func (o *Order) Validate() error {
	if o.OrderID == "" || o.CustomerName == "" || o.ProductName == "" || o.DeliveryAddress == "" {
		return errors.New("missing required order fields")
	}
	if o.DeliveryStatus != "" && !o.DeliveryStatus.Valid() {
		return errors.New("invalid delivery status")
	}
	return nil
}
