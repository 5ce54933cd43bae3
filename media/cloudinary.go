// Package media mencerminkan foto produk ke Cloudinary sebagai CDN.
// Foto asli tetap disimpan inline di dokumen produk.
package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const DefaultFolder = "storefront/products"

// PhotoMirror mengunggah dan menghapus salinan foto produk.
type PhotoMirror interface {
	Upload(ctx context.Context, data []byte, name string) (url, publicID string, err error)
	Destroy(ctx context.Context, publicID string) error
}

type CloudinaryMirror struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryMirror membuat mirror dari CLOUDINARY_URL.
func NewCloudinaryMirror(cloudinaryURL string) (*CloudinaryMirror, error) {
	if cloudinaryURL == "" {
		return nil, errors.New("cloudinary url is empty")
	}
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &CloudinaryMirror{cld: cld, folder: DefaultFolder}, nil
}

func (m *CloudinaryMirror) Upload(ctx context.Context, data []byte, name string) (string, string, error) {
	result, err := m.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder:   m.folder,
		PublicID: name,
	})
	if err != nil {
		return "", "", fmt.Errorf("cloudinary upload: %w", err)
	}
	if result.Error.Message != "" {
		return "", "", fmt.Errorf("cloudinary upload: %s", result.Error.Message)
	}
	return result.SecureURL, result.PublicID, nil
}

func (m *CloudinaryMirror) Destroy(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}
	result, err := m.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy: %w", err)
	}
	if result.Error.Message != "" {
		return fmt.Errorf("cloudinary destroy: %s", result.Error.Message)
	}
	return nil
}
