package models

import "time"

// User roles.
const (
	RoleTourist = "tourist"
	RoleOwner   = "owner"
	RoleAdmin   = "admin"
)

// User is a registered account. Tourists book cottages, owners list them,
// admins moderate both.
type User struct {
	ID             string    `bson:"id" json:"id"`
	Username       string    `bson:"username" json:"username"`
	PasswordHash   string    `bson:"passwordHash" json:"-"`
	FirstName      string    `bson:"firstName" json:"firstName"`
	LastName       string    `bson:"lastName" json:"lastName"`
	Gender         string    `bson:"gender" json:"gender"`
	Address        string    `bson:"address" json:"address"`
	Phone          string    `bson:"phone" json:"phone"`
	Email          string    `bson:"email" json:"email"`
	ProfilePicture string    `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"`
	CreditCard     string    `bson:"creditCard" json:"creditCard,omitempty"`
	Role           string    `bson:"role" json:"userType"`
	Active         bool      `bson:"active" json:"isActive"`
	TokenHash      string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

// PublicOwner is the subset of owner fields embedded in cottage responses.
type PublicOwner struct {
	ID        string `bson:"id" json:"id"`
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName" json:"lastName"`
	Email     string `bson:"email" json:"email"`
	Phone     string `bson:"phone,omitempty" json:"phone,omitempty"`
}
