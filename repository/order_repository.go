package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront-backend/models"
)

const OrdersCollection = "orders"

type MongoOrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{coll: db.Collection(OrdersCollection)}
}

// Create menyimpan pesanan baru; status kosong diisi "Not Process".
func (r *MongoOrderRepository) Create(ctx context.Context, order *models.Order) error {
	if order.Status == "" {
		order.Status = models.StatusNotProcess
	}
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	result, err := r.coll.InsertOne(ctx, order)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	order.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// orderRow adalah hasil aggregate sebelum products disusun ulang. $lookup
// hanya mengembalikan satu dokumen per _id unik, jadi urutan dan duplikat
// keranjang diambil dari ProductIDs.
type orderRow struct {
	ID          primitive.ObjectID   `bson:"_id"`
	ProductIDs  []primitive.ObjectID `bson:"products"`
	ProductDocs []models.Product     `bson:"productDocs"`
	Payment     models.Payment       `bson:"payment"`
	Buyer       *models.BuyerSummary `bson:"buyer"`
	Status      string               `bson:"status"`
	CreatedAt   time.Time            `bson:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt"`
}

// populateProducts menyusun dokumen produk mengikuti urutan ids. Produk yang
// sudah terhapus dilewati.
func populateProducts(ids []primitive.ObjectID, docs []models.Product) []models.Product {
	byID := make(map[primitive.ObjectID]models.Product, len(docs))
	for _, doc := range docs {
		byID[doc.ID] = doc
	}
	products := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		if doc, ok := byID[id]; ok {
			products = append(products, doc)
		}
	}
	return products
}

func (row orderRow) detail() models.OrderDetail {
	return models.OrderDetail{
		ID:        row.ID,
		Products:  populateProducts(row.ProductIDs, row.ProductDocs),
		Payment:   row.Payment,
		Buyer:     row.Buyer,
		Status:    row.Status,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

// orderDetailPipeline mengambil dokumen products (tanpa foto) ke productDocs
// dan mem-populate nama buyer.
func orderDetailPipeline(match bson.M) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: newestFirst}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: ProductsCollection},
			{Key: "localField", Value: "products"},
			{Key: "foreignField", Value: "_id"},
			{Key: "pipeline", Value: bson.A{bson.D{{Key: "$project", Value: withoutPhoto}}}},
			{Key: "as", Value: "productDocs"},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: UsersCollection},
			{Key: "localField", Value: "buyer"},
			{Key: "foreignField", Value: "_id"},
			{Key: "pipeline", Value: bson.A{bson.D{{Key: "$project", Value: bson.D{{Key: "name", Value: 1}}}}}},
			{Key: "as", Value: "buyer"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$buyer"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}
}

func (r *MongoOrderRepository) aggregate(ctx context.Context, match bson.M) ([]models.OrderDetail, error) {
	cursor, err := r.coll.Aggregate(ctx, orderDetailPipeline(match))
	if err != nil {
		return nil, fmt.Errorf("aggregate orders: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []orderRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	orders := make([]models.OrderDetail, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, row.detail())
	}
	return orders, nil
}

func (r *MongoOrderRepository) GetByBuyer(ctx context.Context, buyer primitive.ObjectID) ([]models.OrderDetail, error) {
	return r.aggregate(ctx, bson.M{"buyer": buyer})
}

func (r *MongoOrderRepository) GetAll(ctx context.Context) ([]models.OrderDetail, error) {
	return r.aggregate(ctx, bson.M{})
}

// UpdateStatus hanya mengubah field status; validasi enum dilakukan di layer request.
func (r *MongoOrderRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Order, error) {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var order models.Order
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&order); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update order status: %w", err)
	}
	return &order, nil
}
