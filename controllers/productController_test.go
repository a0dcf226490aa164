package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinshop/pinshop-api/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestProduitsParCategorieInvalide(t *testing.T) {
	router := gin.New()
	router.GET("/categorie/:nom", ProduitsParCategorie)

	recorder := performRequest(router, http.MethodGet, "/categorie/electronique")
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var body struct {
		Error      string   `json:"error"`
		Categories []string `json:"categories_disponibles"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Catégorie invalide", body.Error)
	assert.ElementsMatch(t, models.ValidCategories(), body.Categories)
}

func TestDetailsProduitInvalidID(t *testing.T) {
	router := gin.New()
	router.GET("/produit/:id", DetailsProduit)

	recorder := performRequest(router, http.MethodGet, "/produit/abc")
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Contains(t, body, "error")
	assert.Contains(t, body, "details")
}

func TestSerializeProduitWithDiscount(t *testing.T) {
	former := 100.0
	product := models.Product{
		ID:          1,
		Name:        "Robe",
		Status:      models.StatusVerified,
		Price:       100,
		FormerPrice: &former,
		Discount:    20,
		Category:    models.CategoriePromotion,
		Seller: &models.Seller{
			ID:       7,
			Name:     "Boutique Awa",
			Location: "Dakar",
			Status:   models.StatusVerified,
			Phone:    "770000000",
		},
	}

	view := serializeProduit(product)
	assert.Equal(t, 80.0, view["prix_avec_reduction"])
	assert.Equal(t, 20.0, view["reduction"])

	sellerInfo, ok := view["seller_info"].(gin.H)
	require.True(t, ok)
	assert.Equal(t, "Boutique Awa", sellerInfo["nom"])
}

func TestSerializeProduitWithoutDiscount(t *testing.T) {
	product := models.Product{ID: 2, Name: "Pagne", Price: 45}

	view := serializeProduit(product)
	assert.Equal(t, 45.0, view["prix_avec_reduction"])
	_, hasSellerInfo := view["seller_info"]
	assert.False(t, hasSellerInfo)
}
