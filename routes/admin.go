package routes

import (
	"github.com/gin-gonic/gin"

	productcontroller "github.com/Naren-18/Saree-Commerce/controllers/product"
	"github.com/Naren-18/Saree-Commerce/middleware"
	"github.com/Naren-18/Saree-Commerce/store"
)

// SetupAdminRoutes registers the catalog-mutating endpoints. All of
// them require a session token carrying the admin role.
func SetupAdminRoutes(r *gin.Engine, products store.ProductStore, images store.ImageStore) {
	adminGroup := r.Group("/api")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		adminGroup.POST("/products", productcontroller.CreateProduct(products))
		adminGroup.PUT("/products/:id", productcontroller.UpdateProduct(products))
		adminGroup.DELETE("/products/:id", productcontroller.DeleteProduct(products, images))
		adminGroup.POST("/products/image", productcontroller.UploadProductImage(images))
		adminGroup.GET("/products/export-excel", productcontroller.ExportProductsToExcel(products))
		adminGroup.POST("/products/import-excel", productcontroller.ImportProductsFromExcel(products))
	}
}
