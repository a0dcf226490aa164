package controllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pinshop/pinshop-api/initializers"
	"github.com/pinshop/pinshop-api/models"
	"github.com/pinshop/pinshop-api/utils"
)

// setProduitStatus performs the unconditional status update. Both
// transitions are legal from either state, so re-verifying is a no-op that
// still succeeds.
func setProduitStatus(ctx *gin.Context, status, action string) {
	product, ok := findProduit(ctx, "id")
	if !ok {
		return
	}

	if err := initializers.DB.Model(&product).Update("status", status).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Erreur lors de la mise à jour du statut", err)
		return
	}
	product.Status = status

	log.Printf("Produit %s: %s", action, product.Name)
	utils.NotifyModeration(action, "produit", product.ID, product.Name)

	ctx.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Produit %q %s avec succès", product.Name, action),
		"produit": serializeProduit(product),
	})
}

// VerifierProduit makes a product publicly visible.
func VerifierProduit(ctx *gin.Context) {
	setProduitStatus(ctx, models.StatusVerified, "vérifié")
}

// DesactiverProduit pulls a product back out of the public catalog.
func DesactiverProduit(ctx *gin.Context) {
	setProduitStatus(ctx, models.StatusUnverified, "désactivé")
}

func setSellerStatus(ctx *gin.Context, status, action string) {
	seller, ok := findSeller(ctx)
	if !ok {
		return
	}

	if err := initializers.DB.Model(&seller).Update("status", status).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Erreur lors de la mise à jour du statut", err)
		return
	}
	seller.Status = status

	var totalProduits int64
	initializers.DB.Model(&models.Product{}).Where("seller_id = ?", seller.ID).Count(&totalProduits)

	log.Printf("Vendeur %s: %s", action, seller.Name)
	utils.NotifyModeration(action, "seller", seller.ID, seller.Name)

	ctx.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Vendeur %q %s avec succès", seller.Name, action),
		"seller":  serializeSeller(seller, totalProduits),
	})
}

// VerifierSeller marks a seller as verified.
func VerifierSeller(ctx *gin.Context) {
	setSellerStatus(ctx, models.StatusVerified, "vérifié")
}

// DesactiverSeller marks a seller as unverified.
func DesactiverSeller(ctx *gin.Context) {
	setSellerStatus(ctx, models.StatusUnverified, "désactivé")
}

// bulkSetStatus applies one unconditional UPDATE over the selection. The
// reported count is rows touched, not rows changed: entities already in the
// target state are counted too.
func bulkSetStatus(ctx *gin.Context, model any, status, message string) {
	var selection models.IDSelection
	if err := ctx.ShouldBindJSON(&selection); err != nil {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidInput, err)
		return
	}

	result := initializers.DB.Model(model).
		Where("id IN ?", selection.IDs).
		Update("status", status)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Erreur lors de la mise à jour du statut", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf(message, result.RowsAffected),
		"updated": result.RowsAffected,
	})
}

func BulkVerifierProduits(ctx *gin.Context) {
	bulkSetStatus(ctx, &models.Product{}, models.StatusVerified, "%d produits ont été vérifiés.")
}

func BulkDesactiverProduits(ctx *gin.Context) {
	bulkSetStatus(ctx, &models.Product{}, models.StatusUnverified, "%d produits ont été désactivés.")
}

func BulkVerifierSellers(ctx *gin.Context) {
	bulkSetStatus(ctx, &models.Seller{}, models.StatusVerified, "%d vendeurs ont été vérifiés.")
}

func BulkDesactiverSellers(ctx *gin.Context) {
	bulkSetStatus(ctx, &models.Seller{}, models.StatusUnverified, "%d vendeurs ont été désactivés.")
}

// AppliquerPromotion puts every product of the selection on the flat 20%
// promotion, skipping products already discounted so a second run reports 0
// for them. Rows are saved one by one; a mid-batch store failure leaves the
// earlier rows promoted.
func AppliquerPromotion(ctx *gin.Context) {
	var selection models.IDSelection
	if err := ctx.ShouldBindJSON(&selection); err != nil {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidInput, err)
		return
	}

	var products []models.Product
	if err := initializers.DB.Where("id IN ?", selection.IDs).Find(&products).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch products", err)
		return
	}

	updated := 0
	for i := range products {
		if !products[i].Promote() {
			continue
		}
		if err := initializers.DB.Save(&products[i]).Error; err != nil {
			log.Println("Promotion save error:", err)
			respondWithError(ctx, http.StatusInternalServerError, "Erreur lors de l'application de la promotion", err)
			return
		}
		updated++
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("%d produits ont été mis en promotion (20%% de réduction).", updated),
		"updated": updated,
	})
}
