package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-backend/helpers"
	"storefront-backend/models"
	"storefront-backend/repository"
)

// CreateCategory menangani pembuatan kategori baru. Nama yang sudah ada
// dibalas sukses tanpa membuat dokumen kedua.
func (ctrl *Controller) CreateCategory(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Name is required"})
		return
	}

	existing, err := ctrl.Categories.GetByName(ctx, req.Name)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		serverError(c, "Error in category", err)
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category already exists"})
		return
	}

	category := models.Category{Name: req.Name, Slug: helpers.Slugify(req.Name)}
	if err := ctrl.Categories.Create(ctx, &category); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category already exists"})
			return
		}
		serverError(c, "Error in category", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "New category created", "category": category})
}

// UpdateCategory menangani perubahan nama kategori; slug ikut diturunkan ulang.
func (ctrl *Controller) UpdateCategory(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	id, ok := objectIDParam(c, "id", "category")
	if !ok {
		return
	}

	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Name is required"})
		return
	}

	category, err := ctrl.Categories.Update(ctx, id, req.Name, helpers.Slugify(req.Name))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category updated successfully", "category": nil})
		default:
			serverError(c, "Error while updating category", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category updated successfully", "category": category})
}

// GetCategories menangani pengambilan semua kategori.
func (ctrl *Controller) GetCategories(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	categories, err := ctrl.Categories.GetAll(ctx)
	if err != nil {
		serverError(c, "Error while getting all categories", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "All categories list", "category": categories})
}

// GetCategory menangani pengambilan satu kategori berdasarkan slug.
func (ctrl *Controller) GetCategory(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	category, err := ctrl.Categories.GetBySlug(ctx, c.Param("slug"))
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		serverError(c, "Error while getting single category", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Get single category successfully", "category": category})
}

// DeleteCategory menangani penghapusan kategori.
func (ctrl *Controller) DeleteCategory(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	id, ok := objectIDParam(c, "id", "category")
	if !ok {
		return
	}

	if err := ctrl.Categories.Delete(ctx, id); err != nil && !errors.Is(err, repository.ErrNotFound) {
		serverError(c, "Error while deleting category", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category deleted successfully"})
}
