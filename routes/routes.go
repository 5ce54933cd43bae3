package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"storefront-backend/controllers"
	"storefront-backend/helpers"
	"storefront-backend/middlewares"
)

// Setup mengonfigurasi dan mengembalikan Gin engine.
func Setup(ctrl *controllers.Controller, env string, origins []string) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	helpers.RegisterValidators()

	r := gin.Default()
	r.Use(middlewares.RequestID())

	config := cors.DefaultConfig()
	config.AllowOrigins = origins
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middlewares.RequestIDHeader}
	config.ExposeHeaders = []string{middlewares.RequestIDHeader}
	r.Use(cors.New(config))

	signIn := middlewares.RequireSignIn(ctrl.Tokens)
	admin := middlewares.IsAdmin(ctrl.Users)

	api := r.Group("/api/v1")
	{
		// Rute utilitas
		api.GET("/health", ctrl.HealthCheck)
		api.GET("/stats", signIn, admin, ctrl.GetStats)
	}

	auth := api.Group("/auth")
	{
		auth.POST("/register", ctrl.Register)
		auth.POST("/login", ctrl.Login)
		auth.POST("/forgot-password", ctrl.ForgotPassword)
		auth.PUT("/profile", signIn, ctrl.UpdateProfile)

		auth.GET("/user-auth", signIn, ctrl.AuthProbe)
		auth.GET("/admin-auth", signIn, admin, ctrl.AuthProbe)

		auth.GET("/orders", signIn, ctrl.GetOrders)
		auth.GET("/all-users", signIn, admin, ctrl.GetUsers)
		auth.GET("/all-orders", signIn, admin, ctrl.GetAllOrders)
		auth.PUT("/order-status/:id", signIn, admin, ctrl.UpdateOrderStatus)
	}

	category := api.Group("/category")
	{
		category.POST("/create-category", signIn, admin, ctrl.CreateCategory)
		category.PUT("/update-category/:id", signIn, admin, ctrl.UpdateCategory)
		category.DELETE("/delete-category/:id", signIn, admin, ctrl.DeleteCategory)
		category.GET("/get-category", ctrl.GetCategories)
		category.GET("/get-category/:slug", ctrl.GetCategory)
	}

	product := api.Group("/product")
	{
		product.POST("/create-product", signIn, admin, ctrl.CreateProduct)
		product.PUT("/update-product/:id", signIn, admin, ctrl.UpdateProduct)
		product.DELETE("/delete-product/:id", signIn, admin, ctrl.DeleteProduct)

		product.GET("/get-product", ctrl.GetProducts)
		product.GET("/get-product/:slug", ctrl.GetProduct)
		product.GET("/product-photo/:id", ctrl.ProductPhoto)
		product.POST("/product-filters", ctrl.ProductFilters)
		product.GET("/product-count", ctrl.ProductCount)
		product.GET("/product-list/:page", ctrl.ProductList)
		product.GET("/search/:keyword", ctrl.SearchProduct)
		product.GET("/related-product/:pid/:cid", ctrl.RelatedProduct)
		product.GET("/product-category/:slug", ctrl.ProductCategory)

		// Rute pembayaran
		product.GET("/braintree/token", ctrl.BraintreeToken)
		product.POST("/braintree/payment", signIn, ctrl.BraintreePayment)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})
	return r
}
