package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"storefront-backend/payment"
)

// AppConfig menampung semua variabel konfigurasi aplikasi.
type AppConfig struct {
	Port          string
	Env           string
	MongoMode     string
	MongoURI      string
	MongoDB       string
	TokenType     string
	TokenSecret   []byte
	TokenTTL      time.Duration
	CloudinaryURL string
	Braintree     payment.BraintreeConfig
	CORSOrigins   []string
}

// Load memuat konfigurasi dari file .env atau environment variables.
// Konfigurasi yang tidak valid menghentikan proses.
func Load() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := FromEnv()
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

// FromEnv membaca konfigurasi dari environment tanpa memuat .env.
func FromEnv() (*AppConfig, error) {
	cfg := &AppConfig{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENVIRONMENT", "development"),
		MongoMode:     getEnv("MONGO_MODE", "local"),
		MongoDB:       getEnv("MONGO_DB", "storefront"),
		TokenType:     strings.ToLower(getEnv("TOKEN_TYPE", "jwt")),
		CloudinaryURL: getEnv("CLOUDINARY_URL", ""),
		Braintree: payment.BraintreeConfig{
			Environment:       getEnv("BRAINTREE_ENVIRONMENT", "sandbox"),
			MerchantID:        getEnv("BRAINTREE_MERCHANT_ID", ""),
			MerchantAccountID: getEnv("BRAINTREE_MERCHANT_ACCOUNT_ID", ""),
			PublicKey:         getEnv("BRAINTREE_PUBLIC_KEY", ""),
			PrivateKey:        getEnv("BRAINTREE_PRIVATE_KEY", ""),
		},
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")),
	}

	// Atur URI MongoDB berdasarkan mode
	if cfg.MongoMode == "atlas" {
		cfg.MongoURI = getEnv("MONGO_URI_ATLAS", "")
		if cfg.MongoURI == "" {
			return nil, errors.New("MONGO_MODE 'atlas' but MONGO_URI_ATLAS is not set")
		}
	} else {
		cfg.MongoURI = getEnv("MONGO_URI_LOCAL", "mongodb://localhost:27017/storefront")
	}

	// Atur kunci token
	switch cfg.TokenType {
	case "jwt":
		secret := getEnv("JWT_SECRET", "")
		if secret == "" {
			return nil, errors.New("JWT_SECRET must be set when TOKEN_TYPE is jwt")
		}
		cfg.TokenSecret = []byte(secret)
	case "paseto":
		key := getEnv("PASETO_SECRET_KEY", "")
		if len(key) != 32 {
			return nil, errors.New("PASETO_SECRET_KEY must be 32 characters long")
		}
		cfg.TokenSecret = []byte(key)
	default:
		return nil, fmt.Errorf("TOKEN_TYPE must be jwt or paseto, got %q", cfg.TokenType)
	}

	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "168h"))
	if err != nil || ttl <= 0 {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %q", os.Getenv("TOKEN_TTL"))
	}
	cfg.TokenTTL = ttl

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
