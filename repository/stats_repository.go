package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront-backend/models"
)

type MongoStatsRepository struct {
	db *mongo.Database
}

func NewStatsRepository(db *mongo.Database) *MongoStatsRepository {
	return &MongoStatsRepository{db: db}
}

func (r *MongoStatsRepository) Ping(ctx context.Context) error {
	return r.db.Client().Ping(ctx, nil)
}

// InventoryValuePipeline menjumlahkan price * quantity untuk semua produk.
func InventoryValuePipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: bson.D{
				{Key: "$multiply", Value: bson.A{"$price", "$quantity"}},
			}}}},
		}}},
	}
}

func (r *MongoStatsRepository) Collect(ctx context.Context) (*models.Stats, error) {
	stats := &models.Stats{}
	counts := []struct {
		collection string
		dst        *int64
	}{
		{ProductsCollection, &stats.TotalProducts},
		{CategoriesCollection, &stats.TotalCategories},
		{UsersCollection, &stats.TotalUsers},
		{OrdersCollection, &stats.TotalOrders},
	}
	for _, c := range counts {
		n, err := r.db.Collection(c.collection).CountDocuments(ctx, bson.M{})
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", c.collection, err)
		}
		*c.dst = n
	}

	cursor, err := r.db.Collection(ProductsCollection).Aggregate(ctx, InventoryValuePipeline())
	if err != nil {
		return nil, fmt.Errorf("aggregate inventory value: %w", err)
	}
	defer cursor.Close(ctx)

	var result []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("decode inventory value: %w", err)
	}
	if len(result) > 0 {
		stats.InventoryValue = result[0].Total
	}
	return stats, nil
}
