package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the PinShop API ❤️.

The following are the endpoints for this API:

CATALOG
- GET "/produits" - Verified product catalog
- GET "/recherche/:text" - Search products
- GET "/categorie/:nom" - Products by category
- GET "/trie" - Filter and sort products
- GET "/actualiser" - Random product refresh
- GET "/produit/:id" - Product detail
- GET "/seller/:id" - Seller detail
- GET "/seller/:id/produits" - A seller's products
- GET "/totaux" - Public marketplace counters

AUTH
- POST "/auth/login" - Sign in
- POST "/auth/logout" - Sign out
- POST "/auth/register/seller" - Seller registration
- POST "/auth/register/client" - Client registration

ADMIN
- POST "/produits/create" - Create product
- PUT/PATCH "/produits/:id/update" - Update product
- DELETE "/produits/:id/delete" - Delete product
- PUT/PATCH "/produits/:id/verify" - Verify product
- PUT/PATCH "/produits/:id/deactivate" - Deactivate product
- POST "/produits/bulk-verify" - Bulk verify products
- POST "/produits/bulk-deactivate" - Bulk deactivate products
- POST "/produits/promotion" - Apply 20% promotion
- PUT/PATCH "/sellers/:id/verify" - Verify seller
- PUT/PATCH "/sellers/:id/deactivate" - Deactivate seller
- POST "/upload/image" - Upload product image
- GET "/stats" - Dashboard statistics
- GET "/stats/seller/:id" - Per-seller statistics`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
