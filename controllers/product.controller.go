// File: controllers/product.controller.go
package controllers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront-backend/helpers"
	"storefront-backend/middlewares"
	"storefront-backend/models"
	"storefront-backend/repository"
)

// productFromForm membaca field multipart menjadi Product. Error yang
// dikembalikan berisi pesan per field dan dibalas sebagai 500, sama seperti
// error penyimpanan.
func productFromForm(c *gin.Context) (*models.Product, error) {
	var form models.ProductForm
	if err := c.ShouldBind(&form); err != nil {
		return nil, errors.New("Invalid product form")
	}

	switch {
	case strings.TrimSpace(form.Name) == "":
		return nil, errors.New("Name is required")
	case strings.TrimSpace(form.Description) == "":
		return nil, errors.New("Description is required")
	case form.Price == "":
		return nil, errors.New("Price is required")
	case form.Category == "":
		return nil, errors.New("Category is required")
	case form.Quantity == "":
		return nil, errors.New("Quantity is required")
	}

	price, err := strconv.ParseFloat(form.Price, 64)
	if err != nil || price < 0 {
		return nil, errors.New("Price must be a non-negative number")
	}
	quantity, err := strconv.Atoi(form.Quantity)
	if err != nil || quantity < 0 {
		return nil, errors.New("Quantity must be a non-negative integer")
	}
	category, err := primitive.ObjectIDFromHex(form.Category)
	if err != nil {
		return nil, errors.New("Category is invalid")
	}
	shipping, _ := strconv.ParseBool(form.Shipping)

	product := &models.Product{
		Name:        form.Name,
		Slug:        helpers.Slugify(form.Name),
		Description: form.Description,
		Price:       price,
		Category:    category,
		Quantity:    quantity,
		Shipping:    shipping,
	}

	photo, err := photoFromForm(c)
	if err != nil {
		return nil, err
	}
	product.Photo = photo
	return product, nil
}

// photoFromForm membaca file "photo" bila ada. Tidak ada file berarti nil, nil.
func photoFromForm(c *gin.Context) (*models.Photo, error) {
	header, err := c.FormFile("photo")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, fmt.Errorf("Photo could not be read: %v", err)
	}
	if header.Size > models.MaxPhotoSize {
		return nil, errors.New("Photo is required and should be less than 1mb")
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("Photo could not be read: %v", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, models.MaxPhotoSize+1))
	if err != nil {
		return nil, fmt.Errorf("Photo could not be read: %v", err)
	}
	if len(data) > models.MaxPhotoSize {
		return nil, errors.New("Photo is required and should be less than 1mb")
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	return &models.Photo{Data: data, ContentType: contentType}, nil
}

// mirrorPhoto mengunggah salinan foto ke Cloudinary bila mirror dikonfigurasi.
func (ctrl *Controller) mirrorPhoto(c *gin.Context, product *models.Product) error {
	if ctrl.Photos == nil || !product.HasPhoto() {
		return nil
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	url, publicID, err := ctrl.Photos.Upload(ctx, product.Photo.Data, product.ID.Hex())
	if err != nil {
		return err
	}
	product.PhotoURL = url
	product.PhotoID = publicID
	return nil
}

// CreateProduct menangani pembuatan produk baru dari form multipart.
func (ctrl *Controller) CreateProduct(c *gin.Context) {
	product, err := productFromForm(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	product.ID = primitive.NewObjectID()

	if err := ctrl.mirrorPhoto(c, product); err != nil {
		serverError(c, "Failed to upload image", err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()
	if err := ctrl.Products.Create(ctx, product); err != nil {
		if product.PhotoID != "" {
			if derr := ctrl.Photos.Destroy(ctx, product.PhotoID); derr != nil {
				log.Printf("[%s] cloudinary destroy %s: %v", middlewares.GetRequestID(c), product.PhotoID, derr)
			}
		}
		serverError(c, "Error in creating product", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Product created successfully", "products": product})
}

// UpdateProduct menangani pembaruan data produk. Foto lama dipertahankan
// bila tidak ada file baru.
func (ctrl *Controller) UpdateProduct(c *gin.Context) {
	id, ok := objectIDParam(c, "id", "product")
	if !ok {
		return
	}

	product, err := productFromForm(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	product.ID = id

	if err := ctrl.mirrorPhoto(c, product); err != nil {
		serverError(c, "Failed to upload image", err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()
	if err := ctrl.Products.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
			return
		}
		serverError(c, "Error in updating product", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product updated successfully", "products": product})
}

// DeleteProduct menangani penghapusan produk.
func (ctrl *Controller) DeleteProduct(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	id, ok := objectIDParam(c, "id", "product")
	if !ok {
		return
	}

	deleted, err := ctrl.Products.Delete(ctx, id)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		serverError(c, "Error while deleting product", err)
		return
	}
	if deleted != nil && deleted.PhotoID != "" && ctrl.Photos != nil {
		if err := ctrl.Photos.Destroy(ctx, deleted.PhotoID); err != nil {
			log.Printf("[%s] cloudinary destroy %s: %v", middlewares.GetRequestID(c), deleted.PhotoID, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted successfully"})
}

// GetProducts menangani pengambilan 12 produk terbaru.
func (ctrl *Controller) GetProducts(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	products, err := ctrl.Products.List(ctx)
	if err != nil {
		serverError(c, "Error in getting products", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"countTotal": len(products),
		"message":    "All products",
		"products":   products,
	})
}

// GetProduct menangani pengambilan satu produk berdasarkan slug.
func (ctrl *Controller) GetProduct(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	product, err := ctrl.Products.GetBySlug(ctx, c.Param("slug"))
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		serverError(c, "Error while getting single product", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Single product fetched", "product": product})
}

// ProductPhoto mengirim foto produk apa adanya dengan Content-Type tersimpan.
func (ctrl *Controller) ProductPhoto(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	id, ok := objectIDParam(c, "id", "product")
	if !ok {
		return
	}

	product, err := ctrl.Products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
			return
		}
		serverError(c, "Error while getting photo", err)
		return
	}

	if !product.HasPhoto() {
		c.Status(http.StatusOK)
		return
	}
	c.Data(http.StatusOK, product.Photo.ContentType, product.Photo.Data)
}

// ProductFilters menangani filter berdasarkan kategori dan range harga.
func (ctrl *Controller) ProductFilters(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	var filter models.ProductFilter
	if err := c.ShouldBindJSON(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error while filtering products", "error": err.Error()})
		return
	}

	products, err := ctrl.Products.Filter(ctx, filter)
	if err != nil {
		serverError(c, "Error while filtering products", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
}

// ProductCount menangani total produk untuk tombol "load more".
func (ctrl *Controller) ProductCount(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	total, err := ctrl.Products.Count(ctx)
	if err != nil {
		serverError(c, "Error in product count", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "total": total})
}

// ProductList menangani daftar produk per halaman (6 per halaman).
func (ctrl *Controller) ProductList(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	page, err := strconv.Atoi(c.Param("page"))
	if err != nil || page < 1 {
		page = 1
	}

	products, err := ctrl.Products.ListPage(ctx, page)
	if err != nil {
		serverError(c, "Error in per page ctrl", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
}

// SearchProduct menangani pencarian produk berdasarkan keyword.
func (ctrl *Controller) SearchProduct(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	products, err := ctrl.Products.Search(ctx, c.Param("keyword"))
	if err != nil {
		serverError(c, "Error in search product API", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// RelatedProduct menangani produk lain dalam kategori yang sama.
func (ctrl *Controller) RelatedProduct(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	pid, ok := objectIDParam(c, "pid", "product")
	if !ok {
		return
	}
	cid, ok := objectIDParam(c, "cid", "category")
	if !ok {
		return
	}

	products, err := ctrl.Products.Related(ctx, pid, cid)
	if err != nil {
		serverError(c, "Error while getting related product", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
}

// ProductCategory menangani semua produk dalam kategori dengan slug tertentu.
func (ctrl *Controller) ProductCategory(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	category, err := ctrl.Categories.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"success": true, "category": nil, "products": []models.ProductDetail{}})
			return
		}
		serverError(c, "Error while getting products", err)
		return
	}

	products, err := ctrl.Products.ByCategory(ctx, category.ID)
	if err != nil {
		serverError(c, "Error while getting products", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "category": category, "products": products})
}
