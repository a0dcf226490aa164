package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pinshop/pinshop-api/controllers"
	"github.com/pinshop/pinshop-api/middlewares"
)

func AdminRoutes(server *gin.Engine) {
	admin := server.Group("/", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.GET("/admin/produits", controllers.ListeProduits)
		admin.GET("/admin/produits/non-verifies", controllers.ProduitsNonVerifies)
		admin.POST("/produits/create", controllers.CreerProduit)
		admin.PUT("/produits/:id/update", controllers.ModifierProduit)
		admin.PATCH("/produits/:id/update", controllers.ModifierProduit)
		admin.DELETE("/produits/:id/delete", controllers.SupprimerProduit)

		admin.PUT("/produits/:id/verify", controllers.VerifierProduit)
		admin.PATCH("/produits/:id/verify", controllers.VerifierProduit)
		admin.PUT("/produits/:id/deactivate", controllers.DesactiverProduit)
		admin.PATCH("/produits/:id/deactivate", controllers.DesactiverProduit)
		admin.POST("/produits/bulk-verify", controllers.BulkVerifierProduits)
		admin.POST("/produits/bulk-deactivate", controllers.BulkDesactiverProduits)
		admin.POST("/produits/promotion", controllers.AppliquerPromotion)

		admin.GET("/admin/sellers", controllers.ListeSellers)
		admin.PUT("/sellers/:id/verify", controllers.VerifierSeller)
		admin.PATCH("/sellers/:id/verify", controllers.VerifierSeller)
		admin.PUT("/sellers/:id/deactivate", controllers.DesactiverSeller)
		admin.PATCH("/sellers/:id/deactivate", controllers.DesactiverSeller)
		admin.POST("/sellers/bulk-verify", controllers.BulkVerifierSellers)
		admin.POST("/sellers/bulk-deactivate", controllers.BulkDesactiverSellers)

		admin.GET("/admin/clients", controllers.ListeClients)
		admin.POST("/upload/image", controllers.UploadImage)
		admin.GET("/stats", controllers.GetStats)
		admin.GET("/stats/seller/:id", controllers.GetStatsSeller)
	}
}
