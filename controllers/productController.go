package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pinshop/pinshop-api/catalog"
	"github.com/pinshop/pinshop-api/initializers"
	"github.com/pinshop/pinshop-api/models"
	"github.com/pinshop/pinshop-api/utils"
	"gorm.io/gorm"
)

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	details := ""
	if err != nil {
		details = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"error":   message,
		"details": details,
	})
}

func serializeProduit(product models.Product) gin.H {
	view := gin.H{
		"id":                  product.ID,
		"nom":                 product.Name,
		"status":              product.Status,
		"prix":                product.Price,
		"couleur":             product.Colors,
		"categorie":           product.Category,
		"tags":                product.Tags,
		"description":         product.Description,
		"seller":              product.SellerID,
		"ancien_prix":         product.FormerPrice,
		"likes":               product.Likes,
		"reduction":           product.Discount,
		"image_url":           product.ImageURL,
		"taille":              product.Sizes,
		"quantite":            product.Quantity,
		"created_at":          product.CreatedAt,
		"updated_at":          product.UpdatedAt,
		"prix_avec_reduction": utils.EffectivePrice(utils.ToFloat(product.Price), utils.ToFloat(product.Discount)),
	}
	if product.Seller != nil {
		view["seller_info"] = gin.H{
			"id":           product.Seller.ID,
			"nom":          product.Seller.Name,
			"localisation": product.Seller.Location,
			"status":       product.Seller.Status,
			"numero":       product.Seller.Phone,
		}
	}
	return view
}

func serializeProduits(products []models.Product) []gin.H {
	views := make([]gin.H, 0, len(products))
	for _, product := range products {
		views = append(views, serializeProduit(product))
	}
	return views
}

func listProduits(ctx *gin.Context, spec catalog.Spec) {
	page, pageSize, offset := utils.Pagination(ctx)

	var count int64
	if err := spec.Apply(initializers.DB).Count(&count).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch products", err)
		return
	}

	var products []models.Product
	result := spec.Apply(initializers.DB).
		Preload("Seller").
		Limit(pageSize).
		Offset(offset).
		Find(&products)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch products", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"count":    count,
		"results":  serializeProduits(products),
		"metadata": utils.PaginationMeta(count, page, pageSize),
	})
}

// GetProduits returns the public verified catalog, newest first.
func GetProduits(ctx *gin.Context) {
	listProduits(ctx, catalog.Verified())
}

// SearchProduits runs the text search with its 4-rune prefix fallback.
func SearchProduits(ctx *gin.Context) {
	text := ctx.Param("text")

	products, err := catalog.Search(initializers.DB, text, models.StatusVerified)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Search failed", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"count":   len(products),
		"results": serializeProduits(products),
	})
}

// ProduitsParCategorie lists verified products of a single category. An
// unknown category is a 400 carrying the valid category list.
func ProduitsParCategorie(ctx *gin.Context) {
	categorie := ctx.Param("nom")
	if !models.IsValidCategorie(categorie) {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":                  "Catégorie invalide",
			"categories_disponibles": models.ValidCategories(),
		})
		return
	}

	spec := catalog.Verified()
	spec.Category = categorie
	listProduits(ctx, spec)
}

// TrierProduits applies the optional couleur/taille/categorie/price filters
// and the allow-listed sort order. Malformed price bounds are dropped.
func TrierProduits(ctx *gin.Context) {
	spec := catalog.Verified()
	spec.Color = ctx.Query("couleur")
	spec.Size = ctx.Query("taille")
	spec.Category = ctx.Query("categorie")
	spec.PriceMin = catalog.ParsePrice(ctx.Query("prix_min"))
	spec.PriceMax = catalog.ParsePrice(ctx.Query("prix_max"))
	spec.Sort = catalog.SortOrder(ctx.DefaultQuery("ordre", "-created_at"))
	listProduits(ctx, spec)
}

// ActualiserProduits returns a random batch of up to 30 verified products,
// excluding ids the caller already has. Malformed exclusion tokens are
// ignored.
func ActualiserProduits(ctx *gin.Context) {
	spec := catalog.Verified()
	spec.Exclude = catalog.ParseExclusions(ctx.Query("exclus"))
	spec.Sort = "RAND()"

	var products []models.Product
	result := spec.Apply(initializers.DB).
		Preload("Seller").
		Limit(catalog.RefreshLimit).
		Find(&products)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to refresh products", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"count":   len(products),
		"results": serializeProduits(products),
	})
}

// DetailsProduit returns a single product. Public callers only see verified
// products; staff see everything.
func DetailsProduit(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	query := initializers.DB.Preload("Seller")
	if !isStaff(ctx) {
		query = query.Where("status = ?", models.StatusVerified)
	}

	var product models.Product
	result := query.First(&product, productId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Produit non trouvé", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, serializeProduit(product))
}
