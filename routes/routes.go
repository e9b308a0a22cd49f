package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Naren-18/Saree-Commerce/cart"
	"github.com/Naren-18/Saree-Commerce/store"
)

// SetupRoutes is the single entry-point that wires up the public
// storefront routes and the token-protected admin routes.
func SetupRoutes(r *gin.Engine, products store.ProductStore, images store.ImageStore, carts *cart.Registry) {
	SetupPublicRoutes(r, products, carts)
	SetupAdminRoutes(r, products, images)
}
