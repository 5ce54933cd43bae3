package helpers

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"storefront-backend/models"
)

var registerOnce sync.Once

// RegisterValidators mendaftarkan aturan validasi tambahan ke validator gin.
// Aman dipanggil berkali-kali.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("orderstatus", func(fl validator.FieldLevel) bool {
			return models.ValidOrderStatus(fl.Field().String())
		})
	})
}

// ValidationMessage mengubah error binding menjadi pesan per field,
// misalnya "Email is required".
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request body"
	}

	fe := verrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must contain at least %s item(s)", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "orderstatus":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(models.OrderStatuses, ", "))
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
