package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"storefront-backend/models"
)

// ErrEmptyCart dikembalikan bila total dihitung dari keranjang kosong.
var ErrEmptyCart = errors.New("cart is empty")

// Gateway adalah payment gateway yang dipakai saat checkout.
type Gateway interface {
	// ClientToken menerbitkan token untuk drop-in UI di client.
	ClientToken(ctx context.Context) (string, error)
	// Sale menagih amount lewat payment nonce. Transaksi yang ditolak
	// dikembalikan sebagai *DeclinedError.
	Sale(ctx context.Context, amount decimal.Decimal, nonce string) (*SaleResult, error)
}

// SaleResult adalah hasil transaksi yang berhasil.
type SaleResult struct {
	TransactionID string
	Status        string
	Amount        decimal.Decimal
	Currency      string
}

// Payment mengubah hasil transaksi menjadi snapshot yang disimpan di order.
func (r *SaleResult) Payment() models.Payment {
	return models.Payment{
		Success:       true,
		TransactionID: r.TransactionID,
		Status:        r.Status,
		Amount:        r.Amount.StringFixed(2),
		Currency:      r.Currency,
	}
}

// DeclinedError menandakan gateway menolak transaksi.
type DeclinedError struct {
	TransactionID string
	Status        string
	Message       string
}

func (e *DeclinedError) Error() string {
	if e.TransactionID != "" {
		return fmt.Sprintf("transaction %s declined (%s): %s", e.TransactionID, e.Status, e.Message)
	}
	return fmt.Sprintf("transaction declined: %s", e.Message)
}

// CartTotal menjumlahkan harga setiap item keranjang, dibulatkan ke 2 desimal.
// Harga diambil apa adanya dari client.
func CartTotal(cart []models.CartItem) (decimal.Decimal, error) {
	if len(cart) == 0 {
		return decimal.Zero, ErrEmptyCart
	}
	total := decimal.Zero
	for _, item := range cart {
		total = total.Add(decimal.NewFromFloat(item.Price))
	}
	return total.Round(2), nil
}
