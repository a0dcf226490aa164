package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pinshop/pinshop-api/initializers"
	"github.com/pinshop/pinshop-api/models"
)

func countProduits(conds ...any) int64 {
	var count int64
	query := initializers.DB.Model(&models.Product{})
	if len(conds) > 0 {
		query = query.Where(conds[0], conds[1:]...)
	}
	query.Count(&count)
	return count
}

// GetStats returns the admin dashboard counters.
func GetStats(ctx *gin.Context) {
	var totalSellers, sellersVerifies, sellersNonVerifies, totalClients int64
	if err := initializers.DB.Model(&models.Seller{}).Count(&totalSellers).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Erreur lors de la récupération des statistiques", err)
		return
	}
	initializers.DB.Model(&models.Seller{}).Where("status = ?", models.StatusVerified).Count(&sellersVerifies)
	initializers.DB.Model(&models.Seller{}).Where("status = ?", models.StatusUnverified).Count(&sellersNonVerifies)
	initializers.DB.Model(&models.Client{}).Count(&totalClients)

	parCategorie := gin.H{}
	for _, categorie := range models.ValidCategories() {
		parCategorie[categorie] = countProduits("category = ? AND status = ?", categorie, models.StatusVerified)
	}

	ctx.JSON(http.StatusOK, gin.H{
		"total_produits":         countProduits(),
		"produits_verifies":      countProduits("status = ?", models.StatusVerified),
		"produits_non_verifies":  countProduits("status = ?", models.StatusUnverified),
		"total_sellers":          totalSellers,
		"sellers_verifies":       sellersVerifies,
		"sellers_non_verifies":   sellersNonVerifies,
		"total_clients":          totalClients,
		"produits_par_categorie": parCategorie,
	})
}

// GetStatsSeller returns the per-seller moderation counters.
func GetStatsSeller(ctx *gin.Context) {
	seller, ok := findSeller(ctx)
	if !ok {
		return
	}

	total := countProduits("seller_id = ?", seller.ID)
	ctx.JSON(http.StatusOK, gin.H{
		"seller":                serializeSeller(seller, total),
		"total_produits":        total,
		"produits_verifies":     countProduits("seller_id = ? AND status = ?", seller.ID, models.StatusVerified),
		"produits_non_verifies": countProduits("seller_id = ? AND status = ?", seller.ID, models.StatusUnverified),
	})
}
