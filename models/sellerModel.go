package models

import "time"

type Seller struct {
	ID       uint      `gorm:"primarykey" json:"id"`
	UserID   uint      `gorm:"uniqueIndex" json:"-"`
	User     *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Name     string    `gorm:"size:25" json:"nom"`
	Phone    string    `gorm:"size:20" json:"numero"`
	Status   string    `gorm:"size:20;default:unverified" json:"status"`
	Start    time.Time `gorm:"autoCreateTime" json:"start"`
	Remarks  string    `gorm:"type:text" json:"avis"`
	Location string    `gorm:"size:255" json:"localisation"`
	Products []Product `gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE" json:"-"`
}

// SellerInput is the registration payload: a nested user account plus the
// seller profile fields.
type SellerInput struct {
	User     UserInput `json:"user" binding:"required"`
	Name     string    `json:"nom" binding:"required,max=25"`
	Phone    string    `json:"numero" binding:"required,max=20"`
	Location string    `json:"localisation" binding:"required"`
	Remarks  string    `json:"avis"`
}
