package repository

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"storefront-backend/models"
)

func TestPageOffset(t *testing.T) {
	cases := []struct {
		page int
		want int64
	}{
		{page: -3, want: 0},
		{page: 0, want: 0},
		{page: 1, want: 0},
		{page: 2, want: 6},
		{page: 5, want: 24},
	}
	for _, tc := range cases {
		if got := PageOffset(tc.page); got != tc.want {
			t.Errorf("PageOffset(%d) = %d, want %d", tc.page, got, tc.want)
		}
	}
}

func TestFilterQuery(t *testing.T) {
	cat := primitive.NewObjectID()

	if q := FilterQuery(models.ProductFilter{}); len(q) != 0 {
		t.Errorf("empty filter built %v", q)
	}

	q := FilterQuery(models.ProductFilter{Radio: []float64{20, 39.99}})
	if _, ok := q["category"]; ok {
		t.Error("category constrained without checked ids")
	}
	price, ok := q["price"].(bson.M)
	if !ok || price["$gte"] != 20.0 || price["$lte"] != 39.99 {
		t.Errorf("price range = %v", q["price"])
	}

	q = FilterQuery(models.ProductFilter{Checked: []primitive.ObjectID{cat}, Radio: []float64{0, 19}})
	in, ok := q["category"].(bson.M)["$in"].([]primitive.ObjectID)
	if !ok || len(in) != 1 || in[0] != cat {
		t.Errorf("category = %v", q["category"])
	}
	if _, ok := q["price"]; !ok {
		t.Error("price dropped when combined with category")
	}

	q = FilterQuery(models.ProductFilter{Radio: []float64{100}})
	if _, ok := q["price"]; ok {
		t.Error("incomplete radio range should not constrain price")
	}
}

func TestSearchQueryEscapesKeyword(t *testing.T) {
	q := SearchQuery("c++ (pro)")
	or := q["$or"].(bson.A)
	if len(or) != 2 {
		t.Fatalf("$or = %v", or)
	}
	re := or[0].(bson.M)["name"].(primitive.Regex)
	if re.Pattern != `c\+\+ \(pro\)` || re.Options != "i" {
		t.Errorf("regex = %+v", re)
	}
	if _, ok := or[1].(bson.M)["description"]; !ok {
		t.Error("description not searched")
	}
}

func TestDetailPipeline(t *testing.T) {
	p := detailPipeline(bson.M{"slug": "x"}, 3)
	stages := []string{"$match", "$project", "$sort", "$limit", "$lookup", "$unwind"}
	if len(p) != len(stages) {
		t.Fatalf("pipeline has %d stages, want %d", len(p), len(stages))
	}
	for i, name := range stages {
		if p[i][0].Key != name {
			t.Errorf("stage %d = %s, want %s", i, p[i][0].Key, name)
		}
	}

	if p := detailPipeline(bson.M{}, 0); len(p) != 5 {
		t.Errorf("unlimited pipeline has %d stages", len(p))
	}
}

func productDoc(name string, price float64) bson.D {
	return bson.D{
		{Key: "_id", Value: primitive.NewObjectID()},
		{Key: "name", Value: name},
		{Key: "slug", Value: name},
		{Key: "price", Value: price},
		{Key: "createdAt", Value: time.Now()},
	}
}

func TestMongoProductRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mt.Run("list page sends skip and limit", func(mt *mtest.T) {
		repo := NewProductRepository(mt.DB)
		ns := mt.DB.Name() + "." + ProductsCollection
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, productDoc("a", 1), productDoc("b", 2)),
		)

		products, err := repo.ListPage(context.Background(), 3)
		if err != nil {
			mt.Fatalf("ListPage: %v", err)
		}
		if len(products) != 2 {
			mt.Errorf("got %d products", len(products))
		}

		evt := mt.GetStartedEvent()
		if evt == nil || evt.CommandName != "find" {
			mt.Fatalf("unexpected command %v", evt)
		}
		if skip := evt.Command.Lookup("skip").Int64(); skip != 12 {
			mt.Errorf("skip = %d, want 12", skip)
		}
		if limit := evt.Command.Lookup("limit").Int64(); limit != ProductPageSize {
			mt.Errorf("limit = %d, want %d", limit, ProductPageSize)
		}
		if photo := evt.Command.Lookup("projection", "photo").Int32(); photo != 0 {
			mt.Errorf("photo projection = %d", photo)
		}
	})

	mt.Run("count uses estimated count", func(mt *mtest.T) {
		repo := NewProductRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(14)}))

		total, err := repo.Count(context.Background())
		if err != nil {
			mt.Fatalf("Count: %v", err)
		}
		if total != 14 {
			mt.Errorf("total = %d", total)
		}
	})

	mt.Run("get by slug missing", func(mt *mtest.T) {
		repo := NewProductRepository(mt.DB)
		ns := mt.DB.Name() + "." + ProductsCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		if _, err := repo.GetBySlug(context.Background(), "nope"); err != ErrNotFound {
			mt.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	mt.Run("update unknown product", func(mt *mtest.T) {
		repo := NewProductRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: int32(0)},
			bson.E{Key: "nModified", Value: int32(0)},
		))

		err := repo.Update(context.Background(), &models.Product{ID: primitive.NewObjectID(), Name: "x"})
		if err != ErrNotFound {
			mt.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}
