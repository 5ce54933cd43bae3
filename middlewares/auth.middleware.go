package middlewares

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront-backend/helpers"
	"storefront-backend/models"
	"storefront-backend/repository"
)

const (
	// UserIDKey menyimpan id user yang sudah terautentikasi di gin.Context.
	UserIDKey = "userID"
	// UserKey menyimpan *models.User setelah IsAdmin memuatnya.
	UserKey = "user"
)

// UserLookup adalah bagian UserRepository yang dibutuhkan middleware.
type UserLookup interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// RequireSignIn memverifikasi header "Authorization: Bearer <token>".
func RequireSignIn(tokens helpers.TokenMaker) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authorization token required"})
			return
		}

		subject, err := tokens.VerifyToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired token"})
			return
		}
		userID, err := primitive.ObjectIDFromHex(subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired token"})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// IsAdmin memuat user dari database dan menolak role selain admin.
// Harus dipasang setelah RequireSignIn.
func IsAdmin(users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authorization token required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		user, err := users.GetByID(ctx, userID)
		if err != nil {
			if !errors.Is(err, repository.ErrNotFound) {
				log.Printf("[%s] admin check failed: %v", GetRequestID(c), err)
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Error in admin middleware"})
			return
		}
		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Unauthorized access"})
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}

// CurrentUserID mengembalikan id user yang diset oleh RequireSignIn.
func CurrentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return primitive.NilObjectID, false
	}
	id, ok := v.(primitive.ObjectID)
	return id, ok
}
