package controllers

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront-backend/models"
	"storefront-backend/payment"
	"storefront-backend/repository"
)

type fakeCategories struct {
	mu    sync.Mutex
	items []models.Category
}

func (f *fakeCategories) Create(_ context.Context, category *models.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.items {
		if existing.Name == category.Name || existing.Slug == category.Slug {
			return repository.ErrDuplicate
		}
	}
	category.ID = primitive.NewObjectID()
	category.CreatedAt = time.Now()
	category.UpdatedAt = category.CreatedAt
	f.items = append(f.items, *category)
	return nil
}

func (f *fakeCategories) find(match func(models.Category) bool) (*models.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.items {
		if match(c) {
			found := c
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCategories) GetByID(_ context.Context, id primitive.ObjectID) (*models.Category, error) {
	return f.find(func(c models.Category) bool { return c.ID == id })
}

func (f *fakeCategories) GetByName(_ context.Context, name string) (*models.Category, error) {
	return f.find(func(c models.Category) bool { return c.Name == name })
}

func (f *fakeCategories) GetBySlug(_ context.Context, slug string) (*models.Category, error) {
	return f.find(func(c models.Category) bool { return c.Slug == slug })
}

func (f *fakeCategories) GetAll(context.Context) ([]models.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Category{}, f.items...), nil
}

func (f *fakeCategories) Update(_ context.Context, id primitive.ObjectID, name, slug string) (*models.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Name = name
			f.items[i].Slug = slug
			updated := f.items[i]
			return &updated, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCategories) Delete(_ context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeProducts struct {
	mu        sync.Mutex
	items     []models.Product
	lastPage  int
	createErr error
}

func (f *fakeProducts) Create(_ context.Context, product *models.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt
	f.items = append(f.items, *product)
	return nil
}

func (f *fakeProducts) Update(_ context.Context, product *models.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == product.ID {
			photo, url, photoID := f.items[i].Photo, f.items[i].PhotoURL, f.items[i].PhotoID
			f.items[i] = *product
			if product.Photo == nil {
				f.items[i].Photo, f.items[i].PhotoURL, f.items[i].PhotoID = photo, url, photoID
			}
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeProducts) Delete(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id {
			deleted := f.items[i]
			f.items = append(f.items[:i], f.items[i+1:]...)
			return &deleted, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeProducts) GetByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.items {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func detail(p models.Product) models.ProductDetail {
	return models.ProductDetail{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Price:       p.Price,
		Category:    &models.Category{ID: p.Category},
		Quantity:    p.Quantity,
		Shipping:    p.Shipping,
		PhotoURL:    p.PhotoURL,
	}
}

func (f *fakeProducts) GetBySlug(_ context.Context, slug string) (*models.ProductDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.items {
		if p.Slug == slug {
			d := detail(p)
			return &d, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeProducts) List(context.Context) ([]models.ProductDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.ProductDetail{}
	for _, p := range f.items {
		if len(out) == repository.ProductListLimit {
			break
		}
		out = append(out, detail(p))
	}
	return out, nil
}

func (f *fakeProducts) ListPage(_ context.Context, page int) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastPage = page
	start := (page - 1) * repository.ProductPageSize
	if start >= len(f.items) {
		return []models.Product{}, nil
	}
	end := start + repository.ProductPageSize
	if end > len(f.items) {
		end = len(f.items)
	}
	return append([]models.Product{}, f.items[start:end]...), nil
}

func (f *fakeProducts) Count(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.items)), nil
}

func (f *fakeProducts) Filter(_ context.Context, filter models.ProductFilter) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Product{}
	for _, p := range f.items {
		if len(filter.Checked) > 0 {
			in := false
			for _, id := range filter.Checked {
				in = in || id == p.Category
			}
			if !in {
				continue
			}
		}
		if len(filter.Radio) == 2 && (p.Price < filter.Radio[0] || p.Price > filter.Radio[1]) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProducts) Search(_ context.Context, keyword string) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	keyword = strings.ToLower(keyword)
	out := []models.Product{}
	for _, p := range f.items {
		if strings.Contains(strings.ToLower(p.Name), keyword) || strings.Contains(strings.ToLower(p.Description), keyword) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProducts) Related(_ context.Context, productID, categoryID primitive.ObjectID) ([]models.ProductDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.ProductDetail{}
	for _, p := range f.items {
		if p.Category == categoryID && p.ID != productID && len(out) < repository.RelatedProductLimit {
			out = append(out, detail(p))
		}
	}
	return out, nil
}

func (f *fakeProducts) ByCategory(_ context.Context, categoryID primitive.ObjectID) ([]models.ProductDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.ProductDetail{}
	for _, p := range f.items {
		if p.Category == categoryID {
			out = append(out, detail(p))
		}
	}
	return out, nil
}

type fakeUsers struct {
	mu    sync.Mutex
	items map[primitive.ObjectID]*models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{items: map[primitive.ObjectID]*models.User{}}
}

func (f *fakeUsers) Create(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.items {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	user.ID = primitive.NewObjectID()
	stored := *user
	f.items[user.ID] = &stored
	return nil
}

func (f *fakeUsers) find(match func(*models.User) bool) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.items {
		if match(u) {
			found := *u
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUsers) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	return f.find(func(u *models.User) bool { return u.ID == id })
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return f.find(func(u *models.User) bool { return u.Email == email })
}

func (f *fakeUsers) GetByEmailAndAnswer(_ context.Context, email, answer string) (*models.User, error) {
	return f.find(func(u *models.User) bool { return u.Email == email && u.Answer == answer })
}

func (f *fakeUsers) GetAll(context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.User{}
	for _, u := range f.items {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUsers) UpdatePassword(_ context.Context, id primitive.ObjectID, hashed string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Password = hashed
	return nil
}

func (f *fakeUsers) UpdateProfile(_ context.Context, user *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[user.ID]; !ok {
		return nil, repository.ErrNotFound
	}
	stored := *user
	f.items[user.ID] = &stored
	updated := stored
	return &updated, nil
}

type fakeOrders struct {
	mu    sync.Mutex
	items []models.Order
	err   error
}

func (f *fakeOrders) Create(_ context.Context, order *models.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	order.ID = primitive.NewObjectID()
	f.items = append(f.items, *order)
	return nil
}

func (f *fakeOrders) toDetail(o models.Order) models.OrderDetail {
	return models.OrderDetail{ID: o.ID, Payment: o.Payment, Buyer: &models.BuyerSummary{ID: o.Buyer}, Status: o.Status}
}

func (f *fakeOrders) GetByBuyer(_ context.Context, buyer primitive.ObjectID) ([]models.OrderDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.OrderDetail{}
	for _, o := range f.items {
		if o.Buyer == buyer {
			out = append(out, f.toDetail(o))
		}
	}
	return out, nil
}

func (f *fakeOrders) GetAll(context.Context) ([]models.OrderDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.OrderDetail{}
	for _, o := range f.items {
		out = append(out, f.toDetail(o))
	}
	return out, nil
}

func (f *fakeOrders) UpdateStatus(_ context.Context, id primitive.ObjectID, status string) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Status = status
			updated := f.items[i]
			return &updated, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeStats struct {
	pingErr error
	stats   models.Stats
}

func (f *fakeStats) Ping(context.Context) error { return f.pingErr }

func (f *fakeStats) Collect(context.Context) (*models.Stats, error) {
	s := f.stats
	return &s, nil
}

type fakeGateway struct {
	token   string
	saleErr error
	amounts []decimal.Decimal
}

func (f *fakeGateway) ClientToken(context.Context) (string, error) {
	if f.token == "" {
		return "", errors.New("gateway unavailable")
	}
	return f.token, nil
}

func (f *fakeGateway) Sale(_ context.Context, amount decimal.Decimal, _ string) (*payment.SaleResult, error) {
	f.amounts = append(f.amounts, amount)
	if f.saleErr != nil {
		return nil, f.saleErr
	}
	return &payment.SaleResult{TransactionID: "txn_1", Status: "SUBMITTED_FOR_SETTLEMENT", Amount: amount, Currency: "USD"}, nil
}

type fakePhotos struct {
	uploaded  []string
	destroyed []string
}

func (f *fakePhotos) Upload(_ context.Context, _ []byte, name string) (string, string, error) {
	f.uploaded = append(f.uploaded, name)
	return "https://res.cloudinary.com/demo/" + name, "storefront/products/" + name, nil
}

func (f *fakePhotos) Destroy(_ context.Context, publicID string) error {
	f.destroyed = append(f.destroyed, publicID)
	return nil
}
