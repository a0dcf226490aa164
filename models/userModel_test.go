package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleSetIndependence(t *testing.T) {
	// Seller and client are not mutually exclusive.
	both := Roles(true, true)
	assert.True(t, both.Has(RoleSeller))
	assert.True(t, both.Has(RoleClient))

	neither := Roles(false, false)
	assert.False(t, neither.Has(RoleSeller))
	assert.False(t, neither.Has(RoleClient))
}

func TestRoleSetWithWithout(t *testing.T) {
	r := Roles(false, true)
	r = r.With(RoleSeller)
	assert.True(t, r.Has(RoleSeller))
	assert.True(t, r.Has(RoleClient))

	r = r.Without(RoleClient)
	assert.True(t, r.Has(RoleSeller))
	assert.False(t, r.Has(RoleClient))
}

func TestUserView(t *testing.T) {
	user := User{
		ID:       3,
		Email:    "vendeur@pinshop.store",
		Username: "vendeur",
		Roles:    Roles(true, false),
	}

	view := user.View()
	assert.Equal(t, uint(3), view.ID)
	assert.True(t, view.IsSeller)
	assert.False(t, view.IsClient)
}
