package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Naren-18/Saree-Commerce/cart"
	"github.com/Naren-18/Saree-Commerce/middleware"
	"github.com/Naren-18/Saree-Commerce/store"
)

type AddItemInput struct {
	ProductID int `json:"product_id" binding:"required"`
}

type SetQuantityInput struct {
	Quantity int `json:"quantity"`
}

func cartView(c *cart.Cart) gin.H {
	return gin.H{
		"items":      c.Lines(),
		"total":      c.Total(),
		"item_count": c.ItemCount(),
	}
}

// GET /api/cart
func GetCart(carts *cart.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartView(carts.Get(middleware.SessionID(c))))
	}
}

// POST /api/cart/items
// Adds one unit of the product, snapshotting its display fields. The
// product must exist in the store at add time; after that the line
// lives its own life.
func AddCartItem(carts *cart.Registry, s store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := s.Get(c.Request.Context(), input.ProductID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		line := carts.Get(middleware.SessionID(c)).AddItem(product)
		c.JSON(http.StatusCreated, line)
	}
}

// PUT /api/cart/items/:product_id
// Overwrites the line's quantity; zero or less removes the line.
func SetCartItemQuantity(carts *cart.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var input SetQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		userCart := carts.Get(middleware.SessionID(c))
		line, found := userCart.SetQuantity(productID, input.Quantity)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		if input.Quantity <= 0 {
			c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
			return
		}
		c.JSON(http.StatusOK, line)
	}
}

// DELETE /api/cart/items/:product_id
func DeleteCartItem(carts *cart.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		carts.Get(middleware.SessionID(c)).RemoveItem(productID)
		c.Status(http.StatusNoContent)
	}
}

// DELETE /api/cart
func ClearCart(carts *cart.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		carts.Get(middleware.SessionID(c)).Clear()
		c.Status(http.StatusNoContent)
	}
}
