package helpers

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/o1egl/paseto"
)

// ErrInvalidToken dikembalikan untuk token yang rusak, salah tanda tangan, atau kedaluwarsa.
var ErrInvalidToken = errors.New("invalid token")

const pasetoFooter = "storefront"

// TokenMaker membuat dan memverifikasi token sesi yang berisi id user.
type TokenMaker interface {
	CreateToken(userID string, ttl time.Duration) (string, error)
	VerifyToken(token string) (string, error)
}

// NewTokenMaker memilih implementasi berdasarkan TOKEN_TYPE.
func NewTokenMaker(kind string, secret []byte) (TokenMaker, error) {
	switch kind {
	case "", "jwt":
		return NewJWTMaker(secret)
	case "paseto":
		return NewPasetoMaker(secret)
	default:
		return nil, fmt.Errorf("unknown token type %q", kind)
	}
}

// JWTMaker menandatangani token HS256.
type JWTMaker struct {
	secret []byte
}

func NewJWTMaker(secret []byte) (*JWTMaker, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwt secret must not be empty")
	}
	return &JWTMaker{secret: secret}, nil
}

func (m *JWTMaker) CreateToken(userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *JWTMaker) VerifyToken(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// PasetoMaker mengenkripsi token PASETO v2 local dengan kunci 32 byte.
type PasetoMaker struct {
	key []byte
	v2  *paseto.V2
}

func NewPasetoMaker(key []byte) (*PasetoMaker, error) {
	if len(key) != 32 {
		return nil, errors.New("PASETO_SECRET_KEY must be 32 characters long")
	}
	return &PasetoMaker{key: key, v2: paseto.NewV2()}, nil
}

func (m *PasetoMaker) CreateToken(userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	jsonToken := paseto.JSONToken{
		Subject:    userID,
		IssuedAt:   now,
		Expiration: now.Add(ttl),
	}
	return m.v2.Encrypt(m.key, jsonToken, pasetoFooter)
}

func (m *PasetoMaker) VerifyToken(token string) (string, error) {
	var jsonToken paseto.JSONToken
	var footer string
	if err := m.v2.Decrypt(token, m.key, &jsonToken, &footer); err != nil {
		return "", ErrInvalidToken
	}
	if err := jsonToken.Validate(paseto.ValidAt(time.Now())); err != nil {
		return "", ErrInvalidToken
	}
	if jsonToken.Subject == "" {
		return "", ErrInvalidToken
	}
	return jsonToken.Subject, nil
}
