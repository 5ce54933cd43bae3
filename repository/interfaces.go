package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront-backend/models"
)

// ProductPageSize adalah jumlah produk per halaman pada product-list.
const ProductPageSize = 6

// ProductListLimit membatasi jumlah produk pada get-product.
const ProductListLimit = 12

// RelatedProductLimit membatasi jumlah produk terkait.
const RelatedProductLimit = 3

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	GetByName(ctx context.Context, name string) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	GetAll(ctx context.Context) ([]models.Category, error)
	Update(ctx context.Context, id primitive.ObjectID, name, slug string) (*models.Category, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.ProductDetail, error)

	List(ctx context.Context) ([]models.ProductDetail, error)
	ListPage(ctx context.Context, page int) ([]models.Product, error)
	Count(ctx context.Context) (int64, error)
	Filter(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	Search(ctx context.Context, keyword string) ([]models.Product, error)
	Related(ctx context.Context, productID, categoryID primitive.ObjectID) ([]models.ProductDetail, error)
	ByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.ProductDetail, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByEmailAndAnswer(ctx context.Context, email, answer string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	UpdatePassword(ctx context.Context, id primitive.ObjectID, hashed string) error
	UpdateProfile(ctx context.Context, user *models.User) (*models.User, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByBuyer(ctx context.Context, buyer primitive.ObjectID) ([]models.OrderDetail, error)
	GetAll(ctx context.Context) ([]models.OrderDetail, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Order, error)
}

type StatsRepository interface {
	Ping(ctx context.Context) error
	Collect(ctx context.Context) (*models.Stats, error)
}
