package cartControllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Naren-18/Saree-Commerce/cart"
	"github.com/Naren-18/Saree-Commerce/middleware"
	"github.com/Naren-18/Saree-Commerce/models"
	"github.com/Naren-18/Saree-Commerce/store"
)

func newCartRouter(t *testing.T) (*gin.Engine, store.ProductStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := store.NewFileStore(filepath.Join(t.TempDir(), "products.json"))
	carts := cart.NewRegistry()

	r := gin.New()
	g := r.Group("/api/cart")
	g.Use(middleware.EnsureCartSession)
	{
		g.GET("", GetCart(carts))
		g.POST("/items", AddCartItem(carts, s))
		g.PUT("/items/:product_id", SetCartItemQuantity(carts))
		g.DELETE("/items/:product_id", DeleteCartItem(carts))
		g.DELETE("", ClearCart(carts))
	}
	return r, s
}

func seedProduct(t *testing.T, s store.ProductStore, name string, price float64) models.Product {
	t.Helper()
	p, err := s.Create(context.Background(), models.Product{
		Name:     name,
		Price:    price,
		Image:    "/uploads/products/product_1.jpg",
		Category: "Silk",
	})
	require.NoError(t, err)
	return p
}

// do sends a request pinned to one cart session.
func do(t *testing.T, r *gin.Engine, method, url string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "cart_session", Value: "test-session"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type cartResponse struct {
	Items     []cart.Line `json:"items"`
	Total     float64     `json:"total"`
	ItemCount int         `json:"item_count"`
}

func getCart(t *testing.T, r *gin.Engine) cartResponse {
	t.Helper()
	w := do(t, r, http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp cartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestAddItemSnapshotsAndIncrements(t *testing.T) {
	r, s := newCartRouter(t)
	p := seedProduct(t, s, "Red Silk", 4500)

	w := do(t, r, http.MethodPost, "/api/cart/items", gin.H{"product_id": p.ID})
	require.Equal(t, http.StatusCreated, w.Code)
	w = do(t, r, http.MethodPost, "/api/cart/items", gin.H{"product_id": p.ID})
	require.Equal(t, http.StatusCreated, w.Code)

	resp := getCart(t, r)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.Equal(t, "Red Silk", resp.Items[0].Name)
	assert.Equal(t, 9000.0, resp.Total)
	assert.Equal(t, 2, resp.ItemCount)
}

func TestAddItemUnknownProductIs404(t *testing.T) {
	r, _ := newCartRouter(t)

	w := do(t, r, http.MethodPost, "/api/cart/items", gin.H{"product_id": 99})
	assert.Equal(t, http.StatusNotFound, w.Code)

	assert.Empty(t, getCart(t, r).Items)
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	r, s := newCartRouter(t)
	p := seedProduct(t, s, "Red Silk", 4500)
	do(t, r, http.MethodPost, "/api/cart/items", gin.H{"product_id": p.ID})

	w := do(t, r, http.MethodPut, "/api/cart/items/1", gin.H{"quantity": 0})
	require.Equal(t, http.StatusOK, w.Code)

	resp := getCart(t, r)
	assert.Empty(t, resp.Items)
	assert.Zero(t, resp.ItemCount)
}

func TestSetQuantityMissingLineIs404(t *testing.T) {
	r, _ := newCartRouter(t)

	w := do(t, r, http.MethodPut, "/api/cart/items/5", gin.H{"quantity": 2})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteItemIs204EvenWhenAbsent(t *testing.T) {
	r, s := newCartRouter(t)
	p := seedProduct(t, s, "Red Silk", 4500)
	do(t, r, http.MethodPost, "/api/cart/items", gin.H{"product_id": p.ID})

	w := do(t, r, http.MethodDelete, "/api/cart/items/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodDelete, "/api/cart/items/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	assert.Empty(t, getCart(t, r).Items)
}

func TestClearCart(t *testing.T) {
	r, s := newCartRouter(t)
	p := seedProduct(t, s, "Red Silk", 4500)
	q := seedProduct(t, s, "Blue Cotton", 1200)
	do(t, r, http.MethodPost, "/api/cart/items", gin.H{"product_id": p.ID})
	do(t, r, http.MethodPost, "/api/cart/items", gin.H{"product_id": q.ID})

	w := do(t, r, http.MethodDelete, "/api/cart", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, getCart(t, r).Items)
}

func TestCartLinesOutliveProductDeletion(t *testing.T) {
	r, s := newCartRouter(t)
	p := seedProduct(t, s, "Red Silk", 4500)
	do(t, r, http.MethodPost, "/api/cart/items", gin.H{"product_id": p.ID})

	require.NoError(t, s.Delete(context.Background(), p.ID))

	resp := getCart(t, r)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Red Silk", resp.Items[0].Name)
}

func TestSessionWithoutCookieGetsOne(t *testing.T) {
	r, _ := newCartRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	var found bool
	for _, c := range cookies {
		if c.Name == "cart_session" && c.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "expected a cart_session cookie to be set")
}
