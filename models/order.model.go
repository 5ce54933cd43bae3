package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status pesanan yang diizinkan.
const (
	StatusNotProcess = "Not Process"
	StatusProcessing = "Processing"
	StatusShipped    = "Shipped"
	StatusDelivered  = "Delivered"
	StatusCancelled  = "Cancelled"
)

// OrderStatuses berisi semua status yang valid, urut sesuai alur pesanan.
var OrderStatuses = []string{
	StatusNotProcess,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

// ValidOrderStatus melaporkan apakah s termasuk salah satu OrderStatuses.
func ValidOrderStatus(s string) bool {
	for _, status := range OrderStatuses {
		if status == s {
			return true
		}
	}
	return false
}

// Payment adalah snapshot hasil transaksi dari payment gateway.
type Payment struct {
	Success       bool   `json:"success" bson:"success"`
	TransactionID string `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
	Status        string `json:"status,omitempty" bson:"status,omitempty"`
	Amount        string `json:"amount,omitempty" bson:"amount,omitempty"`
	Currency      string `json:"currency,omitempty" bson:"currency,omitempty"`
	Message       string `json:"message,omitempty" bson:"message,omitempty"`
}

// Order mendefinisikan pesanan yang tersimpan setelah pembayaran berhasil.
type Order struct {
	ID        primitive.ObjectID   `json:"_id,omitempty" bson:"_id,omitempty"`
	Products  []primitive.ObjectID `json:"products" bson:"products"`
	Payment   Payment              `json:"payment" bson:"payment"`
	Buyer     primitive.ObjectID   `json:"buyer" bson:"buyer"`
	Status    string               `json:"status" bson:"status"`
	CreatedAt time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// BuyerSummary adalah bagian user yang ikut ditampilkan pada pesanan.
type BuyerSummary struct {
	ID   primitive.ObjectID `json:"_id" bson:"_id"`
	Name string             `json:"name" bson:"name"`
}

// OrderDetail adalah pesanan dengan buyer dan products yang sudah di-populate.
type OrderDetail struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	Products  []Product          `json:"products" bson:"products"`
	Payment   Payment            `json:"payment" bson:"payment"`
	Buyer     *BuyerSummary      `json:"buyer" bson:"buyer"`
	Status    string             `json:"status" bson:"status"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CartItem adalah snapshot produk dari keranjang di sisi client.
// Server hanya membaca id dan harga.
type CartItem struct {
	ID    primitive.ObjectID `json:"_id" binding:"required"`
	Name  string             `json:"name"`
	Price float64            `json:"price" binding:"gte=0"`
}

// PaymentRequest adalah body untuk endpoint braintree/payment.
type PaymentRequest struct {
	Nonce string     `json:"nonce" binding:"required"`
	Cart  []CartItem `json:"cart" binding:"required,min=1,dive"`
}

// OrderStatusRequest adalah body untuk update status pesanan oleh admin.
type OrderStatusRequest struct {
	Status string `json:"status" binding:"required,orderstatus"`
}
