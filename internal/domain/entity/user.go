package entity

import (
	"time"
)

const (
	RoleCustomer = "customer"
	RoleOwner    = "owner"
	RoleAdmin    = "admin"
)

type User struct {
	ID       string `json:"id" firestore:"id"`
	Email    string `json:"email" firestore:"email"`
	Name     string `json:"name" firestore:"name"`
	Role     string `json:"role" firestore:"role"`
	IsActive bool   `json:"is_active" firestore:"isActive"`

	Phone   string `json:"phone,omitempty" firestore:"phone,omitempty"`
	Address string `json:"address,omitempty" firestore:"address,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
