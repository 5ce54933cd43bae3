package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront-backend/models"
)

const ProductsCollection = "products"

// withoutPhoto membuang blob foto dari hasil query daftar produk.
var withoutPhoto = bson.D{{Key: "photo", Value: 0}}

var newestFirst = bson.D{{Key: "createdAt", Value: -1}}

type MongoProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{coll: db.Collection(ProductsCollection)}
}

// PageOffset menghitung jumlah dokumen yang dilewati untuk halaman 1-based.
// Halaman < 1 diperlakukan sebagai halaman 1.
func PageOffset(page int) int64 {
	if page < 1 {
		page = 1
	}
	return int64(page-1) * ProductPageSize
}

// FilterQuery membangun query dari checkbox kategori dan range harga.
// Filter kosong menghasilkan query kosong (semua produk).
func FilterQuery(f models.ProductFilter) bson.M {
	query := bson.M{}
	if len(f.Checked) > 0 {
		query["category"] = bson.M{"$in": f.Checked}
	}
	if len(f.Radio) == 2 {
		query["price"] = bson.M{"$gte": f.Radio[0], "$lte": f.Radio[1]}
	}
	return query
}

// SearchQuery mencocokkan keyword secara case-insensitive pada name atau description.
// Keyword diperlakukan sebagai teks biasa, bukan pola regex.
func SearchQuery(keyword string) bson.M {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"}
	return bson.M{"$or": bson.A{
		bson.M{"name": pattern},
		bson.M{"description": pattern},
	}}
}

// detailPipeline mengambil produk yang cocok dengan match lalu mem-populate kategorinya.
func detailPipeline(match bson.M, limit int64) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$project", Value: withoutPhoto}},
		{{Key: "$sort", Value: newestFirst}},
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})
	}
	return append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: CategoriesCollection},
			{Key: "localField", Value: "category"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "category"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$category"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	)
}

func (r *MongoProductRepository) aggregateDetails(ctx context.Context, match bson.M, limit int64) ([]models.ProductDetail, error) {
	cursor, err := r.coll.Aggregate(ctx, detailPipeline(match, limit))
	if err != nil {
		return nil, fmt.Errorf("aggregate products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []models.ProductDetail{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

func (r *MongoProductRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Product, error) {
	cursor, err := r.coll.Find(ctx, filter, opts.SetProjection(withoutPhoto))
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

func (r *MongoProductRepository) Create(ctx context.Context, product *models.Product) error {
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	result, err := r.coll.InsertOne(ctx, product)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	product.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// Update menimpa field produk. Foto lama dipertahankan bila product.Photo nil.
func (r *MongoProductRepository) Update(ctx context.Context, product *models.Product) error {
	product.UpdatedAt = time.Now()
	set := bson.M{
		"name":        product.Name,
		"slug":        product.Slug,
		"description": product.Description,
		"price":       product.Price,
		"category":    product.Category,
		"quantity":    product.Quantity,
		"shipping":    product.Shipping,
		"updatedAt":   product.UpdatedAt,
	}
	if product.Photo != nil {
		set["photo"] = product.Photo
		set["photoUrl"] = product.PhotoURL
		set["photoId"] = product.PhotoID
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": product.ID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete menghapus produk dan mengembalikan dokumen yang terhapus (tanpa foto).
func (r *MongoProductRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	opts := options.FindOneAndDelete().SetProjection(withoutPhoto)

	var product models.Product
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}, opts).Decode(&product); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("delete product: %w", err)
	}
	return &product, nil
}

// GetByID mengambil produk lengkap termasuk foto.
func (r *MongoProductRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&product); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return &product, nil
}

func (r *MongoProductRepository) GetBySlug(ctx context.Context, slug string) (*models.ProductDetail, error) {
	products, err := r.aggregateDetails(ctx, bson.M{"slug": slug}, 1)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrNotFound
	}
	return &products[0], nil
}

func (r *MongoProductRepository) List(ctx context.Context) ([]models.ProductDetail, error) {
	return r.aggregateDetails(ctx, bson.M{}, ProductListLimit)
}

func (r *MongoProductRepository) ListPage(ctx context.Context, page int) ([]models.Product, error) {
	opts := options.Find().
		SetSort(newestFirst).
		SetSkip(PageOffset(page)).
		SetLimit(ProductPageSize)
	return r.find(ctx, bson.M{}, opts)
}

// Count mengembalikan estimasi total dokumen; tidak memperhitungkan filter.
func (r *MongoProductRepository) Count(ctx context.Context) (int64, error) {
	total, err := r.coll.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}

func (r *MongoProductRepository) Filter(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	return r.find(ctx, FilterQuery(filter), options.Find())
}

func (r *MongoProductRepository) Search(ctx context.Context, keyword string) ([]models.Product, error) {
	return r.find(ctx, SearchQuery(keyword), options.Find())
}

func (r *MongoProductRepository) Related(ctx context.Context, productID, categoryID primitive.ObjectID) ([]models.ProductDetail, error) {
	match := bson.M{
		"category": categoryID,
		"_id":      bson.M{"$ne": productID},
	}
	return r.aggregateDetails(ctx, match, RelatedProductLimit)
}

func (r *MongoProductRepository) ByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.ProductDetail, error) {
	return r.aggregateDetails(ctx, bson.M{"category": categoryID}, 0)
}
