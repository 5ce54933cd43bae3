package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"storefront-backend/models"
)

func TestCreateCategoryTwiceKeepsSingleDocument(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedUser(t, "admin@example.com", models.RoleAdmin)

	w := env.do(http.MethodPost, "/category/create-category", gin.H{"name": "Books"}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("first create: expected 201, got %d %s", w.Code, w.Body.String())
	}
	category := decode(t, w)["category"].(map[string]interface{})
	if category["slug"] != "books" {
		t.Errorf("expected slug books, got %v", category["slug"])
	}

	w = env.do(http.MethodPost, "/category/create-category", gin.H{"name": "Books"}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("second create: expected 200, got %d", w.Code)
	}
	if msg := decode(t, w)["message"]; msg != "Category already exists" {
		t.Errorf("unexpected message %v", msg)
	}
	if n := len(env.categories.items); n != 1 {
		t.Errorf("expected 1 category, got %d", n)
	}
}

func TestCreateCategoryValidation(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.seedUser(t, "admin@example.com", models.RoleAdmin)
	_, userToken := env.seedUser(t, "user@example.com", models.RoleUser)

	tests := []struct {
		name  string
		body  interface{}
		token string
		want  int
	}{
		{"missing name", gin.H{}, adminToken, http.StatusBadRequest},
		{"no token", gin.H{"name": "Books"}, "", http.StatusUnauthorized},
		{"not admin", gin.H{"name": "Books"}, userToken, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(http.MethodPost, "/category/create-category", tt.body, tt.token)
			if w.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, w.Code)
			}
		})
	}
	if len(env.categories.items) != 0 {
		t.Errorf("no category should have been created")
	}
}

func TestUpdateCategoryRederivesSlug(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedUser(t, "admin@example.com", models.RoleAdmin)
	existing := &models.Category{Name: "Books", Slug: "books"}
	env.categories.Create(context.Background(), existing)

	w := env.do(http.MethodPut, "/category/update-category/"+existing.ID.Hex(), gin.H{"name": "Kids Books"}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	category := decode(t, w)["category"].(map[string]interface{})
	if category["slug"] != "kids-books" {
		t.Errorf("expected slug kids-books, got %v", category["slug"])
	}

	w = env.do(http.MethodPut, "/category/update-category/"+newID(), gin.H{"name": "Other"}, token)
	if w.Code != http.StatusOK || decode(t, w)["category"] != nil {
		t.Errorf("unknown id: expected 200 with null category, got %d %s", w.Code, w.Body.String())
	}
}

func TestGetAndDeleteCategory(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedUser(t, "admin@example.com", models.RoleAdmin)
	existing := &models.Category{Name: "Music", Slug: "music"}
	env.categories.Create(context.Background(), existing)

	w := env.do(http.MethodGet, "/category/get-category", nil, "")
	if list := decode(t, w)["category"].([]interface{}); len(list) != 1 {
		t.Fatalf("expected 1 category, got %d", len(list))
	}

	w = env.do(http.MethodGet, "/category/get-category/music", nil, "")
	if category := decode(t, w)["category"].(map[string]interface{}); category["name"] != "Music" {
		t.Errorf("unexpected category %v", category)
	}

	w = env.do(http.MethodGet, "/category/get-category/missing", nil, "")
	if w.Code != http.StatusOK || decode(t, w)["category"] != nil {
		t.Errorf("missing slug: expected 200 with null category, got %d %s", w.Code, w.Body.String())
	}

	w = env.do(http.MethodDelete, "/category/delete-category/"+existing.ID.Hex(), nil, token)
	if w.Code != http.StatusOK || len(env.categories.items) != 0 {
		t.Fatalf("delete: got %d, %d left", w.Code, len(env.categories.items))
	}
	w = env.do(http.MethodDelete, "/category/delete-category/"+existing.ID.Hex(), nil, token)
	if w.Code != http.StatusOK {
		t.Errorf("delete twice: expected 200, got %d", w.Code)
	}
}
