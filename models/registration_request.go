package models

import "time"

// Registration request statuses.
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

// RegistrationRequest is a pending account awaiting admin moderation. The
// password is already hashed when the request is stored. A rejected
// username/email stays blocked for future requests.
type RegistrationRequest struct {
	ID             string     `bson:"id" json:"id"`
	Username       string     `bson:"username" json:"username"`
	PasswordHash   string     `bson:"passwordHash" json:"-"`
	FirstName      string     `bson:"firstName" json:"firstName"`
	LastName       string     `bson:"lastName" json:"lastName"`
	Gender         string     `bson:"gender" json:"gender"`
	Address        string     `bson:"address" json:"address"`
	Phone          string     `bson:"phone" json:"phone"`
	Email          string     `bson:"email" json:"email"`
	ProfilePicture string     `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"`
	CreditCard     string     `bson:"creditCard" json:"-"`
	Role           string     `bson:"role" json:"userType"`
	Status         string     `bson:"status" json:"status"`
	CreatedAt      time.Time  `bson:"createdAt" json:"createdAt"`
	ReviewedAt     *time.Time `bson:"reviewedAt,omitempty" json:"reviewedAt,omitempty"`
}
