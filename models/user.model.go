package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser  = 0
	RoleAdmin = 1
)

// User mendefinisikan struktur untuk pengguna toko. Password dan jawaban
// keamanan tidak pernah ikut diserialisasi ke JSON.
type User struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"-" bson:"password"`
	Phone     string             `json:"phone" bson:"phone"`
	Address   string             `json:"address" bson:"address"`
	Answer    string             `json:"-" bson:"answer"`
	Role      int                `json:"role" bson:"role"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// IsAdmin melaporkan apakah user memiliki role admin.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// RegisterRequest mendefinisikan struktur untuk permintaan registrasi.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Address  string `json:"address" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

// LoginRequest mendefinisikan struktur untuk permintaan login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ForgotPasswordRequest mendefinisikan struktur untuk reset password
// lewat pertanyaan keamanan.
type ForgotPasswordRequest struct {
	Email       string `json:"email" binding:"required"`
	Answer      string `json:"answer" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// ProfileRequest adalah update profil parsial; field kosong dibiarkan.
type ProfileRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}
