package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category mendefinisikan struktur untuk kategori produk.
type Category struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Slug      string             `json:"slug" bson:"slug"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CategoryRequest mendefinisikan body untuk create/update kategori.
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}
