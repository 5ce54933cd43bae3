package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront-backend/config"
	"storefront-backend/controllers"
	"storefront-backend/helpers"
	"storefront-backend/media"
	"storefront-backend/payment"
	"storefront-backend/repository"
	"storefront-backend/routes"
)

func main() {
	cfg := config.Load()

	client, err := config.ConnectDB(cfg.MongoURI, cfg.MongoMode)
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	db := client.Database(cfg.MongoDB)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := config.EnsureIndexes(ctx, db); err != nil {
		log.Printf("Could not create indexes: %v", err)
	}
	cancel()

	tokens, err := helpers.NewTokenMaker(cfg.TokenType, cfg.TokenSecret)
	if err != nil {
		log.Fatalf("Could not create token maker: %v", err)
	}

	log.Printf("Braintree %s, merchant %q", cfg.Braintree.Environment, cfg.Braintree.MerchantID)

	ctrl := &controllers.Controller{
		Categories: repository.NewCategoryRepository(db),
		Products:   repository.NewProductRepository(db),
		Users:      repository.NewUserRepository(db),
		Orders:     repository.NewOrderRepository(db),
		Stats:      repository.NewStatsRepository(db),
		Gateway:    payment.NewBraintree(cfg.Braintree),
		Tokens:     tokens,
		TokenTTL:   cfg.TokenTTL,
	}

	if cfg.CloudinaryURL != "" {
		mirror, err := media.NewCloudinaryMirror(cfg.CloudinaryURL)
		if err != nil {
			log.Fatalf("Could not initialize Cloudinary: %v", err)
		}
		ctrl.Photos = mirror
	} else {
		log.Println("CLOUDINARY_URL not set, product photos are stored in MongoDB only")
	}

	router := routes.Setup(ctrl, cfg.Env, cfg.CORSOrigins)
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server running on port %s (%s)", cfg.Port, cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to run server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Printf("Error disconnecting MongoDB: %v", err)
	}
	log.Println("Server exited")
}
