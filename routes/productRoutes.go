package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pinshop/pinshop-api/controllers"
	"github.com/pinshop/pinshop-api/middlewares"
)

func ProductRoutes(server *gin.Engine) {
	server.GET("/produits", controllers.GetProduits)
	server.GET("/recherche/:text", controllers.SearchProduits)
	server.GET("/categorie/:nom", controllers.ProduitsParCategorie)
	server.GET("/trie", controllers.TrierProduits)
	server.GET("/actualiser", controllers.ActualiserProduits)
	server.GET("/produit/:id", middlewares.OptionalAuth(), controllers.DetailsProduit)
	server.GET("/seller/:id", controllers.DetailSeller)
	server.GET("/seller/:id/produits", middlewares.OptionalAuth(), controllers.ProduitsDuSeller)
}
