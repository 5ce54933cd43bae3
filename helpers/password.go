package helpers

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength berlaku untuk update password lewat profil.
const MinPasswordLength = 6

// HashPassword meng-hash password dengan bcrypt.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// ComparePassword bernilai true jika password cocok dengan hash.
func ComparePassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
