// File: controllers/controller.go
package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront-backend/helpers"
	"storefront-backend/media"
	"storefront-backend/middlewares"
	"storefront-backend/payment"
	"storefront-backend/repository"
)

const requestTimeout = 10 * time.Second

// Controller menampung dependensi yang akan digunakan oleh semua handler.
type Controller struct {
	Categories repository.CategoryRepository
	Products   repository.ProductRepository
	Users      repository.UserRepository
	Orders     repository.OrderRepository
	Stats      repository.StatsRepository
	Gateway    payment.Gateway
	Tokens     helpers.TokenMaker
	TokenTTL   time.Duration
	// Photos boleh nil jika Cloudinary tidak dikonfigurasi.
	Photos media.PhotoMirror
}

func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), requestTimeout)
}

// serverError mencatat error infrastruktur lalu membalas 500.
func serverError(c *gin.Context, message string, err error) {
	log.Printf("[%s] %s: %v", middlewares.GetRequestID(c), message, err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": message,
		"error":   err.Error(),
	})
}

// objectIDParam mem-parsing path param sebagai ObjectID dan membalas 400 bila gagal.
func objectIDParam(c *gin.Context, name, label string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid " + label + " ID"})
		return primitive.NilObjectID, false
	}
	return id, true
}
