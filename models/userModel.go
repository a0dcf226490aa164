package models

import "time"

// RoleSet is the set of marketplace capabilities a user holds. Seller and
// client are independent: a user may hold both or neither.
type RoleSet uint8

const (
	RoleClient RoleSet = 1 << iota
	RoleSeller
)

func Roles(seller, client bool) RoleSet {
	var r RoleSet
	if seller {
		r = r.With(RoleSeller)
	}
	if client {
		r = r.With(RoleClient)
	}
	return r
}

func (r RoleSet) Has(role RoleSet) bool { return r&role != 0 }

func (r RoleSet) With(role RoleSet) RoleSet { return r | role }

func (r RoleSet) Without(role RoleSet) RoleSet { return r &^ role }

type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Email     string    `gorm:"uniqueIndex;size:255" json:"email"`
	Username  string    `gorm:"size:150" json:"username"`
	Password  string    `json:"-"`
	Roles     RoleSet   `gorm:"default:0" json:"-"`
	IsStaff   bool      `gorm:"default:false" json:"-"`
	CreatedAt time.Time `json:"date_joined"`
	UpdatedAt time.Time `json:"-"`
}

func (u User) IsSeller() bool { return u.Roles.Has(RoleSeller) }

func (u User) IsClient() bool { return u.Roles.Has(RoleClient) }

// UserView is the wire shape of a user: the role set is rendered back as the
// two independent booleans the API has always exposed.
type UserView struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsSeller bool   `json:"is_seller"`
	IsClient bool   `json:"is_client"`
}

func (u User) View() UserView {
	return UserView{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		IsSeller: u.IsSeller(),
		IsClient: u.IsClient(),
	}
}

type LoginData struct {
	Identifier string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// UserInput is the nested user payload of the registration endpoints.
type UserInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}
