package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pinshop/pinshop-api/catalog"
	"github.com/pinshop/pinshop-api/initializers"
	"github.com/pinshop/pinshop-api/models"
	"github.com/pinshop/pinshop-api/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func toJSONList(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	encoded, _ := json.Marshal(values)
	return datatypes.JSON(encoded)
}

func findProduit(ctx *gin.Context, param string) (models.Product, bool) {
	productId, err := strconv.Atoi(ctx.Param(param))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return models.Product{}, false
	}

	var product models.Product
	result := initializers.DB.Preload("Seller").First(&product, productId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Produit non trouvé", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", result.Error)
		}
		return models.Product{}, false
	}
	return product, true
}

// CreerProduit creates a product under an existing seller. New products
// start unverified and stay out of the public catalog until moderated.
func CreerProduit(ctx *gin.Context) {
	var input models.ProductInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidInput, err)
		return
	}

	if !models.IsValidCategorie(input.Category) {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":                  "Catégorie invalide",
			"categories_disponibles": models.ValidCategories(),
		})
		return
	}

	var seller models.Seller
	if err := initializers.DB.First(&seller, input.SellerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusBadRequest, "Le vendeur spécifié n'existe pas", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate seller", err)
		}
		return
	}

	product := models.Product{
		Name:        input.Name,
		Status:      models.StatusUnverified,
		Price:       input.Price,
		FormerPrice: input.FormerPrice,
		Discount:    input.Discount,
		Category:    input.Category,
		Tags:        input.Tags,
		Description: input.Description,
		Colors:      toJSONList(input.Colors),
		Sizes:       toJSONList(input.Sizes),
		Quantity:    input.Quantity,
		ImageURL:    input.ImageURL,
		SellerID:    seller.ID,
		Seller:      &seller,
	}
	if product.Quantity == 0 {
		product.Quantity = 1
	}

	if err := initializers.DB.Create(&product).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Erreur lors de la création du produit", err)
		return
	}

	log.Println("Produit créé:", product.Name)
	ctx.JSON(http.StatusCreated, serializeProduit(product))
}

// ModifierProduit partially updates a product: only supplied fields change.
func ModifierProduit(ctx *gin.Context) {
	product, ok := findProduit(ctx, "id")
	if !ok {
		return
	}

	var input models.ProductUpdate
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidInput, err)
		return
	}

	if input.Category != nil && !models.IsValidCategorie(*input.Category) {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":                  "Catégorie invalide",
			"categories_disponibles": models.ValidCategories(),
		})
		return
	}

	updates := map[string]any{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.Category != nil {
		updates["category"] = *input.Category
	}
	if input.Tags != nil {
		updates["tags"] = *input.Tags
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.FormerPrice != nil {
		updates["former_price"] = *input.FormerPrice
	}
	if input.Discount != nil {
		updates["discount"] = *input.Discount
	}
	if input.Colors != nil {
		updates["colors"] = toJSONList(*input.Colors)
	}
	if input.Sizes != nil {
		updates["sizes"] = toJSONList(*input.Sizes)
	}
	if input.Quantity != nil {
		updates["quantity"] = *input.Quantity
	}
	if input.ImageURL != nil {
		updates["image_url"] = *input.ImageURL
	}

	if len(updates) > 0 {
		if err := initializers.DB.Model(&product).Updates(updates).Error; err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Erreur lors de la modification du produit", err)
			return
		}
		if err := initializers.DB.Preload("Seller").First(&product, product.ID).Error; err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", err)
			return
		}
	}

	log.Println("Produit modifié:", product.Name)
	ctx.JSON(http.StatusOK, serializeProduit(product))
}

// SupprimerProduit hard-deletes a product.
func SupprimerProduit(ctx *gin.Context) {
	product, ok := findProduit(ctx, "id")
	if !ok {
		return
	}

	if err := initializers.DB.Delete(&product).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Erreur lors de la suppression du produit", err)
		return
	}

	log.Println("Produit supprimé:", product.Name)
	ctx.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Produit %q supprimé avec succès", product.Name),
	})
}

// ListeProduits is the admin catalog: every product regardless of status.
func ListeProduits(ctx *gin.Context) {
	listProduits(ctx, catalog.Unscoped())
}

// ProduitsNonVerifies lists the moderation queue.
func ProduitsNonVerifies(ctx *gin.Context) {
	spec := catalog.Unscoped()
	spec.Scope = models.StatusUnverified
	listProduits(ctx, spec)
}

// ListeSellers lists all sellers, newest registration first.
func ListeSellers(ctx *gin.Context) {
	page, pageSize, offset := utils.Pagination(ctx)

	var count int64
	initializers.DB.Model(&models.Seller{}).Count(&count)

	var sellers []models.Seller
	result := initializers.DB.
		Preload("User").
		Order("start DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&sellers)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch sellers", result.Error)
		return
	}

	views := make([]gin.H, 0, len(sellers))
	for _, seller := range sellers {
		var totalProduits int64
		initializers.DB.Model(&models.Product{}).Where("seller_id = ?", seller.ID).Count(&totalProduits)
		views = append(views, serializeSeller(seller, totalProduits))
	}

	ctx.JSON(http.StatusOK, gin.H{
		"count":    count,
		"results":  views,
		"metadata": utils.PaginationMeta(count, page, pageSize),
	})
}

// ListeClients lists all client profiles.
func ListeClients(ctx *gin.Context) {
	page, pageSize, offset := utils.Pagination(ctx)

	var count int64
	initializers.DB.Model(&models.Client{}).Count(&count)

	var clients []models.Client
	result := initializers.DB.
		Preload("User").
		Order("id DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&clients)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch clients", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"count":    count,
		"results":  clients,
		"metadata": utils.PaginationMeta(count, page, pageSize),
	})
}
