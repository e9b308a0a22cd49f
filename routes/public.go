package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Naren-18/Saree-Commerce/auth"
	"github.com/Naren-18/Saree-Commerce/cart"
	cartControllers "github.com/Naren-18/Saree-Commerce/controllers/cart"
	productcontroller "github.com/Naren-18/Saree-Commerce/controllers/product"
	"github.com/Naren-18/Saree-Commerce/middleware"
	"github.com/Naren-18/Saree-Commerce/store"
)

// SetupPublicRoutes registers everything a visitor can reach without a
// token: login, the browsable catalog and their own cart.
func SetupPublicRoutes(r *gin.Engine, products store.ProductStore, carts *cart.Registry) {
	r.POST("/auth/login", auth.Login())

	api := r.Group("/api")
	{
		api.GET("/products", productcontroller.GetProducts(products))
		api.GET("/products/:id", productcontroller.GetProduct(products))

		cartGroup := api.Group("/cart")
		cartGroup.Use(middleware.EnsureCartSession)
		{
			cartGroup.GET("", cartControllers.GetCart(carts))
			cartGroup.POST("/items", cartControllers.AddCartItem(carts, products))
			cartGroup.PUT("/items/:product_id", cartControllers.SetCartItemQuantity(carts))
			cartGroup.DELETE("/items/:product_id", cartControllers.DeleteCartItem(carts))
			cartGroup.DELETE("", cartControllers.ClearCart(carts))
		}
	}
}
