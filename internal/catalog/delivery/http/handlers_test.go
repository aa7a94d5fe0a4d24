package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-api/internal/catalog"
	repo "catalog-api/internal/catalog/repository"
	"catalog-api/internal/middleware"
	"catalog-api/pkg/log"
)

const (
	testToken = "practice-task-14"
	validID   = "65a1b2c3d4e5f60718293a4b"
)

type fakeUseCase struct {
	listIn   catalog.ListInput
	createIn catalog.CreateInput
	updateIn catalog.UpdateInput
	id       string
	calls    int

	listOut   catalog.ListOutput
	detailOut catalog.DetailOutput
	createOut catalog.CreateOutput
	err       error
}

func (f *fakeUseCase) List(_ context.Context, in catalog.ListInput) (catalog.ListOutput, error) {
	f.calls++
	f.listIn = in
	return f.listOut, f.err
}

func (f *fakeUseCase) Detail(_ context.Context, id string) (catalog.DetailOutput, error) {
	f.calls++
	f.id = id
	return f.detailOut, f.err
}

func (f *fakeUseCase) Create(_ context.Context, in catalog.CreateInput) (catalog.CreateOutput, error) {
	f.calls++
	f.createIn = in
	return f.createOut, f.err
}

func (f *fakeUseCase) Replace(_ context.Context, in catalog.UpdateInput) error {
	f.calls++
	f.updateIn = in
	return f.err
}

func (f *fakeUseCase) Patch(_ context.Context, in catalog.UpdateInput) error {
	f.calls++
	f.updateIn = in
	return f.err
}

func (f *fakeUseCase) Delete(_ context.Context, id string) error {
	f.calls++
	f.id = id
	return f.err
}

var (
	items = catalog.Resource{
		Name: "items", Collection: "items", Path: "/api/items",
		Label: "Item", RequireAuth: true, ErrorKey: "message",
	}
	products = catalog.Resource{
		Name: "products", Collection: "products", Path: "/api/products",
		Label: "Product", CategoryProjection: true, ErrorKey: "error",
	}
)

func newRouter(uc catalog.UseCase, r catalog.Resource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.NewNop()
	mw := middleware.New(l, middleware.Config{AuthToken: testToken})

	engine := gin.New()
	RegisterRoutes(engine.Group(r.Path), New(l, uc, r), mw)
	return engine
}

func send(engine *gin.Engine, method, path, body string, auth bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if auth {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestList(t *testing.T) {
	uc := &fakeUseCase{listOut: catalog.ListOutput{Documents: []catalog.Document{
		{"name": "Pen", "price": 2.0},
		{"name": "Lamp", "price": 50.0},
	}}}
	engine := newRouter(uc, items)

	w := send(engine, http.MethodGet, "/api/items?category=Electronics&minPrice=50&sort=price&fields=name,price", "", false)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":2,"items":[{"name":"Pen","price":2},{"name":"Lamp","price":50}]}`, w.Body.String())
	assert.Equal(t, catalog.ListInput{
		Category: "Electronics", MinPrice: "50", Sort: "price", Fields: "name,price",
	}, uc.listIn)
}

func TestListEmptyIsArray(t *testing.T) {
	engine := newRouter(&fakeUseCase{}, items)

	w := send(engine, http.MethodGet, "/api/items", "", false)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":0,"items":[]}`, w.Body.String())
}

func TestListStoreFailureIsGeneric(t *testing.T) {
	engine := newRouter(&fakeUseCase{err: repo.ErrFailedToList}, items)

	w := send(engine, http.MethodGet, "/api/items", "", false)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Server error"}`, w.Body.String())
}

func TestDetail(t *testing.T) {
	tests := []struct {
		name     string
		resource catalog.Resource
		uc       *fakeUseCase
		wantCode int
		wantBody string
	}{
		{
			name:     "found",
			resource: items,
			uc:       &fakeUseCase{detailOut: catalog.DetailOutput{Document: catalog.Document{"name": "Pen", "price": 2.0}}},
			wantCode: http.StatusOK,
			wantBody: `{"name":"Pen","price":2}`,
		},
		{
			name:     "item not found",
			resource: items,
			uc:       &fakeUseCase{err: catalog.ErrNotFound},
			wantCode: http.StatusNotFound,
			wantBody: `{"message":"Item not found"}`,
		},
		{
			name:     "product not found uses error key",
			resource: products,
			uc:       &fakeUseCase{err: catalog.ErrNotFound},
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"Product not found"}`,
		},
		{
			name:     "malformed id",
			resource: items,
			uc:       &fakeUseCase{err: catalog.ErrInvalidID},
			wantCode: http.StatusBadRequest,
			wantBody: `{"message":"Invalid ID"}`,
		},
		{
			name:     "store not ready",
			resource: items,
			uc:       &fakeUseCase{err: catalog.ErrStoreNotReady},
			wantCode: http.StatusServiceUnavailable,
			wantBody: `{"message":"Service unavailable"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newRouter(tt.uc, tt.resource)

			w := send(engine, http.MethodGet, tt.resource.Path+"/"+validID, "", false)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			assert.Equal(t, validID, tt.uc.id)
		})
	}
}

func TestCreate(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		uc := &fakeUseCase{createOut: catalog.CreateOutput{ID: validID}}
		engine := newRouter(uc, items)

		w := send(engine, http.MethodPost, "/api/items", `{"name":"Pen","price":2}`, true)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"acknowledged":true,"insertedId":"`+validID+`"}`, w.Body.String())
		assert.Equal(t, catalog.Document{"name": "Pen", "price": 2.0}, uc.createIn.Fields)
	})

	t.Run("empty body reaches validation", func(t *testing.T) {
		uc := &fakeUseCase{err: catalog.ErrNameRequired}
		engine := newRouter(uc, items)

		w := send(engine, http.MethodPost, "/api/items", "", true)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"Name is required"}`, w.Body.String())
		assert.Equal(t, catalog.Document{}, uc.createIn.Fields)
	})

	t.Run("malformed json", func(t *testing.T) {
		uc := &fakeUseCase{}
		engine := newRouter(uc, items)

		w := send(engine, http.MethodPost, "/api/items", `{"name":`, true)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"Invalid JSON body"}`, w.Body.String())
		assert.Zero(t, uc.calls)
	})

	t.Run("array body", func(t *testing.T) {
		uc := &fakeUseCase{}
		engine := newRouter(uc, items)

		w := send(engine, http.MethodPost, "/api/items", `[{"name":"Pen"}]`, true)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, uc.calls)
	})

	t.Run("unauthorized", func(t *testing.T) {
		uc := &fakeUseCase{}
		engine := newRouter(uc, items)

		w := send(engine, http.MethodPost, "/api/items", `{"name":"Pen"}`, false)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"message":"Unauthorized"}`, w.Body.String())
		assert.Zero(t, uc.calls)
	})

	t.Run("open resource needs no token", func(t *testing.T) {
		uc := &fakeUseCase{createOut: catalog.CreateOutput{ID: validID}}
		engine := newRouter(uc, products)

		w := send(engine, http.MethodPost, "/api/products", `{"name":"Pen"}`, false)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		engine := newRouter(&fakeUseCase{err: repo.ErrFailedToInsert}, items)

		w := send(engine, http.MethodPost, "/api/items", `{"name":"Pen"}`, true)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"message":"Server error"}`, w.Body.String())
	})
}

func TestReplaceAndPatch(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		err      error
		wantCode int
		wantBody string
	}{
		{"put ok", http.MethodPut, nil, http.StatusOK, `{"message":"Item updated"}`},
		{"patch ok", http.MethodPatch, nil, http.StatusOK, `{"message":"Item updated partially"}`},
		{"put name required", http.MethodPut, catalog.ErrNameRequired, http.StatusBadRequest, `{"message":"Name is required"}`},
		{"patch no fields", http.MethodPatch, catalog.ErrNoFields, http.StatusBadRequest, `{"message":"No fields to update"}`},
		{"patch bad field", http.MethodPatch, catalog.ErrInvalidField, http.StatusBadRequest, `{"message":"Invalid field name"}`},
		{"put not found", http.MethodPut, catalog.ErrNotFound, http.StatusNotFound, `{"message":"Item not found"}`},
		{"patch not found", http.MethodPatch, catalog.ErrNotFound, http.StatusNotFound, `{"message":"Item not found"}`},
		{"put malformed id", http.MethodPut, catalog.ErrInvalidID, http.StatusBadRequest, `{"message":"Invalid ID"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tt.err}
			engine := newRouter(uc, items)

			w := send(engine, tt.method, "/api/items/"+validID, `{"name":"Pen","price":5}`, true)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			assert.Equal(t, validID, uc.updateIn.ID)
			assert.Equal(t, catalog.Document{"name": "Pen", "price": 5.0}, uc.updateIn.Fields)
		})
	}
}

func TestDelete(t *testing.T) {
	t.Run("no content", func(t *testing.T) {
		uc := &fakeUseCase{}
		engine := newRouter(uc, items)

		w := send(engine, http.MethodDelete, "/api/items/"+validID, "", true)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
		assert.Equal(t, validID, uc.id)
	})

	t.Run("not found", func(t *testing.T) {
		engine := newRouter(&fakeUseCase{err: catalog.ErrNotFound}, items)

		w := send(engine, http.MethodDelete, "/api/items/"+validID, "", true)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unauthorized", func(t *testing.T) {
		uc := &fakeUseCase{}
		engine := newRouter(uc, items)

		w := send(engine, http.MethodDelete, "/api/items/"+validID, "", false)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Zero(t, uc.calls)
	})
}

func TestCreateRespInsertedID(t *testing.T) {
	h := New(log.NewNop(), &fakeUseCase{}, items)

	b, err := json.Marshal(h.newCreateResp(catalog.CreateOutput{ID: validID}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"acknowledged":true,"insertedId":"`+validID+`"}`, string(b))
}
