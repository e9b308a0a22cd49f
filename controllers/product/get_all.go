package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Naren-18/Saree-Commerce/catalog"
	"github.com/Naren-18/Saree-Commerce/store"
)

// GET /api/products?category=&search=
func GetProducts(s store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := s.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		category := c.Query("category")
		search := c.Query("search")
		c.JSON(http.StatusOK, catalog.Filter(products, category, search))
	}
}
