package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	StatusVerified   = "verified"
	StatusUnverified = "unverified"
)

const (
	CategorieTendances  = "tendances"
	CategorieNouveautes = "nouveautés"
	CategoriePopulaire  = "populaire"
	CategoriePromotion  = "promotion"
	CategorieChere      = "chere"
)

// PromotionDiscount is the flat percentage applied by the bulk promotion.
const PromotionDiscount = 20

func ValidCategories() []string {
	return []string{
		CategorieTendances,
		CategorieNouveautes,
		CategoriePopulaire,
		CategoriePromotion,
		CategorieChere,
	}
}

func IsValidCategorie(categorie string) bool {
	for _, c := range ValidCategories() {
		if c == categorie {
			return true
		}
	}
	return false
}

type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"size:200" json:"nom"`
	Status      string         `gorm:"size:20;default:unverified" json:"status"`
	Price       float64        `json:"prix"`
	FormerPrice *float64       `json:"ancien_prix"`
	Discount    float64        `gorm:"default:0" json:"reduction"`
	Category    string         `gorm:"size:20" json:"categorie"`
	Tags        string         `gorm:"type:text" json:"tags"`
	Description string         `gorm:"type:text" json:"description"`
	Colors      datatypes.JSON `json:"couleur"`
	Sizes       datatypes.JSON `json:"taille"`
	Quantity    uint           `gorm:"default:1" json:"quantite"`
	Likes       uint           `gorm:"default:0" json:"likes"`
	ImageURL    string         `gorm:"size:500" json:"image_url"`
	SellerID    uint           `json:"seller"`
	Seller      *Seller        `gorm:"foreignKey:SellerID" json:"-"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Promote puts the product on the standard 20% promotion. Products that
// already carry a discount are left untouched so that re-running a bulk
// promotion never stacks reductions.
func (p *Product) Promote() bool {
	if p.Discount != 0 {
		return false
	}
	former := p.Price
	p.FormerPrice = &former
	p.Discount = PromotionDiscount
	p.Category = CategoriePromotion
	return true
}

// ProductInput is the create payload. Couleur and taille bind as string
// lists; a scalar value fails binding and is rejected before persistence.
type ProductInput struct {
	Name        string   `json:"nom" binding:"required"`
	Price       float64  `json:"prix" binding:"required,gte=0"`
	Category    string   `json:"categorie" binding:"required"`
	Tags        string   `json:"tags"`
	Description string   `json:"description" binding:"required"`
	SellerID    uint     `json:"seller" binding:"required"`
	FormerPrice *float64 `json:"ancien_prix"`
	Discount    float64  `json:"reduction" binding:"gte=0,lte=100"`
	Colors      []string `json:"couleur"`
	Sizes       []string `json:"taille"`
	Quantity    uint     `json:"quantite"`
	ImageURL    string   `json:"image_url"`
}

// ProductUpdate is the partial update payload: only supplied fields change.
type ProductUpdate struct {
	Name        *string   `json:"nom"`
	Price       *float64  `json:"prix" binding:"omitempty,gte=0"`
	Category    *string   `json:"categorie"`
	Tags        *string   `json:"tags"`
	Description *string   `json:"description"`
	FormerPrice *float64  `json:"ancien_prix"`
	Discount    *float64  `json:"reduction" binding:"omitempty,gte=0,lte=100"`
	Colors      *[]string `json:"couleur"`
	Sizes       *[]string `json:"taille"`
	Quantity    *uint     `json:"quantite"`
	ImageURL    *string   `json:"image_url"`
}

type IDSelection struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}
