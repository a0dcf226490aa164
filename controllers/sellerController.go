package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pinshop/pinshop-api/catalog"
	"github.com/pinshop/pinshop-api/initializers"
	"github.com/pinshop/pinshop-api/models"
	"gorm.io/gorm"
)

func serializeSeller(seller models.Seller, totalProduits int64) gin.H {
	view := gin.H{
		"id":             seller.ID,
		"nom":            seller.Name,
		"numero":         seller.Phone,
		"status":         seller.Status,
		"start":          seller.Start,
		"avis":           seller.Remarks,
		"localisation":   seller.Location,
		"total_produits": totalProduits,
	}
	if seller.User != nil {
		view["user"] = seller.User.View()
	}
	return view
}

func findSeller(ctx *gin.Context) (models.Seller, bool) {
	sellerId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid seller ID", err)
		return models.Seller{}, false
	}

	var seller models.Seller
	result := initializers.DB.Preload("User").First(&seller, sellerId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Vendeur non trouvé", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve seller", result.Error)
		}
		return models.Seller{}, false
	}
	return seller, true
}

// DetailSeller returns a seller profile with its product count.
func DetailSeller(ctx *gin.Context) {
	seller, ok := findSeller(ctx)
	if !ok {
		return
	}

	var totalProduits int64
	initializers.DB.Model(&models.Product{}).Where("seller_id = ?", seller.ID).Count(&totalProduits)

	ctx.JSON(http.StatusOK, serializeSeller(seller, totalProduits))
}

// ProduitsDuSeller lists a seller's products, newest first. Public callers
// only see verified products; staff and the owning seller see everything.
func ProduitsDuSeller(ctx *gin.Context) {
	seller, ok := findSeller(ctx)
	if !ok {
		return
	}

	spec := catalog.Verified()
	if isStaff(ctx) || currentUserID(ctx) == seller.UserID {
		spec = catalog.Unscoped()
	}
	spec.SellerID = seller.ID
	listProduits(ctx, spec)
}

// GetTotaux exposes the public marketplace counters.
func GetTotaux(ctx *gin.Context) {
	var totalProduits, produitsVerifies, totalSellers int64
	if err := initializers.DB.Model(&models.Product{}).Count(&totalProduits).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Erreur lors du comptage", err)
		return
	}
	initializers.DB.Model(&models.Product{}).Where("status = ?", models.StatusVerified).Count(&produitsVerifies)
	initializers.DB.Model(&models.Seller{}).Where("status = ?", models.StatusVerified).Count(&totalSellers)

	ctx.JSON(http.StatusOK, gin.H{
		"total_produits":    totalProduits,
		"produits_verifies": produitsVerifies,
		"total_sellers":     totalSellers,
	})
}
