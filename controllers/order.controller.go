package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront-backend/helpers"
	"storefront-backend/middlewares"
	"storefront-backend/models"
	"storefront-backend/payment"
	"storefront-backend/repository"
)

// BraintreeToken menerbitkan client token untuk drop-in UI.
func (ctrl *Controller) BraintreeToken(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	token, err := ctrl.Gateway.ClientToken(ctx)
	if err != nil {
		serverError(c, "Failed to generate client token", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientToken": token})
}

// BraintreePayment menagih nonce sebesar total keranjang dan mencatat order
// hanya bila transaksi berhasil.
func (ctrl *Controller) BraintreePayment(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	var req models.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": helpers.ValidationMessage(err)})
		return
	}

	buyer, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	total, err := payment.CartTotal(req.Cart)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	result, err := ctrl.Gateway.Sale(ctx, total, req.Nonce)
	if err != nil {
		var declined *payment.DeclinedError
		if errors.As(err, &declined) {
			log.Printf("[%s] payment declined: %v", middlewares.GetRequestID(c), err)
		} else {
			log.Printf("[%s] payment error: %v", middlewares.GetRequestID(c), err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	products := make([]primitive.ObjectID, 0, len(req.Cart))
	for _, item := range req.Cart {
		products = append(products, item.ID)
	}
	order := &models.Order{
		Products: products,
		Payment:  result.Payment(),
		Buyer:    buyer,
		Status:   models.StatusNotProcess,
	}
	if err := ctrl.Orders.Create(ctx, order); err != nil {
		log.Printf("[%s] order not saved for transaction %s: %v", middlewares.GetRequestID(c), result.TransactionID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Payment captured but order could not be saved"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GetOrders menangani daftar order milik user yang sedang login.
func (ctrl *Controller) GetOrders(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	buyer, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	orders, err := ctrl.Orders.GetByBuyer(ctx, buyer)
	if err != nil {
		serverError(c, "Error while getting orders", err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetAllOrders menangani daftar semua order (admin).
func (ctrl *Controller) GetAllOrders(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	orders, err := ctrl.Orders.GetAll(ctx)
	if err != nil {
		serverError(c, "Error while getting orders", err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus menangani perubahan status order oleh admin.
func (ctrl *Controller) UpdateOrderStatus(c *gin.Context) {
	id, ok := objectIDParam(c, "id", "order")
	if !ok {
		return
	}

	var req models.OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": helpers.ValidationMessage(err)})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	order, err := ctrl.Orders.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
			return
		}
		serverError(c, "Error while updating order", err)
		return
	}
	c.JSON(http.StatusOK, order)
}
