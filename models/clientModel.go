package models

type Client struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	UserID   uint   `gorm:"uniqueIndex" json:"-"`
	User     *User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Relation string `gorm:"size:255" json:"relation"`
}

type ClientInput struct {
	User     UserInput `json:"user" binding:"required"`
	Relation string    `json:"relation"`
}
