package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FAQCategory struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name" validate:"required"`
	Slug         string             `bson:"slug" json:"slug" validate:"required"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	IconName     string             `bson:"icon_name,omitempty" json:"icon_name,omitempty"`
	DisplayOrder int                `bson:"display_order" json:"display_order"`
	IsActive     bool               `bson:"is_active" json:"is_active"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

type FAQItem struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CategoryID   primitive.ObjectID `bson:"category_id" json:"category_id"`
	Question     string             `bson:"question" json:"question" validate:"required"`
	Answer       string             `bson:"answer" json:"answer" validate:"required"`
	Keywords     []string           `bson:"keywords" json:"keywords"`
	DisplayOrder int                `bson:"display_order" json:"display_order"`
	IsActive     bool               `bson:"is_active" json:"is_active"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// Catalog is the snapshot the responder works from: active categories and
// active items, both ordered by display_order.
type Catalog struct {
	Categories []FAQCategory `json:"categories"`
	Items      []FAQItem     `json:"items"`
}
