package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxPhotoSize adalah batas ukuran foto produk (1MB).
const MaxPhotoSize = 1000000

// Photo menyimpan gambar produk secara inline.
type Photo struct {
	Data        []byte `json:"-" bson:"data,omitempty"`
	ContentType string `json:"contentType,omitempty" bson:"contentType,omitempty"`
}

// Product mendefinisikan struktur produk seperti yang disimpan di koleksi products.
type Product struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Slug        string             `json:"slug" bson:"slug"`
	Description string             `json:"description" bson:"description"`
	Price       float64            `json:"price" bson:"price"`
	Category    primitive.ObjectID `json:"category" bson:"category"`
	Quantity    int                `json:"quantity" bson:"quantity"`
	Shipping    bool               `json:"shipping" bson:"shipping"`
	Photo       *Photo             `json:"-" bson:"photo,omitempty"`
	PhotoURL    string             `json:"photoUrl,omitempty" bson:"photoUrl,omitempty"`
	PhotoID     string             `json:"-" bson:"photoId,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// HasPhoto melaporkan apakah produk memiliki data foto.
func (p *Product) HasPhoto() bool {
	return p.Photo != nil && len(p.Photo.Data) > 0
}

// ProductDetail adalah produk dengan kategori yang sudah di-populate.
// Field photo tidak pernah ikut terbawa.
type ProductDetail struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id"`
	Name        string             `json:"name" bson:"name"`
	Slug        string             `json:"slug" bson:"slug"`
	Description string             `json:"description" bson:"description"`
	Price       float64            `json:"price" bson:"price"`
	Category    *Category          `json:"category" bson:"category"`
	Quantity    int                `json:"quantity" bson:"quantity"`
	Shipping    bool               `json:"shipping" bson:"shipping"`
	PhotoURL    string             `json:"photoUrl,omitempty" bson:"photoUrl,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ProductForm adalah field multipart untuk create/update produk.
// Validasi dilakukan di controller agar pesan error per field bisa dikontrol.
type ProductForm struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	Price       string `form:"price"`
	Category    string `form:"category"`
	Quantity    string `form:"quantity"`
	Shipping    string `form:"shipping"`
}

// ProductFilter adalah body untuk endpoint product-filters.
type ProductFilter struct {
	Checked []primitive.ObjectID `json:"checked"`
	Radio   []float64            `json:"radio"`
}

// Stats mendefinisikan struktur untuk statistik aplikasi.
type Stats struct {
	TotalProducts   int64   `json:"totalProducts"`
	TotalCategories int64   `json:"totalCategories"`
	TotalUsers      int64   `json:"totalUsers"`
	TotalOrders     int64   `json:"totalOrders"`
	InventoryValue  float64 `json:"inventoryValue"`
}
