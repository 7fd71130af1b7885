package models

import "time"

// Reservation statuses. Only confirmed reservations occupy a date range;
// pending ones await owner approval and do not block other requests.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

// Reservation is a tourist's request to occupy a cottage over [checkIn, checkOut).
type Reservation struct {
	ID         string    `bson:"id" json:"id"`
	CottageID  string    `bson:"cottageId" json:"cottageId"`
	TouristID  string    `bson:"touristId" json:"touristId"`
	CheckIn    time.Time `bson:"checkIn" json:"checkIn"`
	CheckOut   time.Time `bson:"checkOut" json:"checkOut"`
	Adults     int       `bson:"adults" json:"adults"`
	Children   int       `bson:"children" json:"children"`
	TotalPrice float64   `bson:"totalPrice" json:"totalPrice"`
	Status     string    `bson:"status" json:"status"`
	CreditCard string    `bson:"creditCard,omitempty" json:"-"`
	Note       string    `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// TouristReservationView decorates a reservation with cottage info and, for
// past stays, the tourist's rating of the cottage.
type TouristReservationView struct {
	Reservation
	CottageName     string `json:"cottageName"`
	CottageLocation string `json:"cottageLocation"`
	HasRated        bool   `json:"hasRated"`
	Rating          *int   `json:"rating,omitempty"`
	Comment         string `json:"comment,omitempty"`
}

// TouristReservations splits a tourist's reservations into upcoming and past.
type TouristReservations struct {
	Current []TouristReservationView `json:"currentReservations"`
	Past    []TouristReservationView `json:"pastReservations"`
}

// OwnerReservationView decorates a reservation with cottage and tourist info
// for the owner dashboard.
type OwnerReservationView struct {
	Reservation
	CottageName     string `json:"cottageName"`
	CottageLocation string `json:"cottageLocation"`
	TouristName     string `json:"touristName"`
	TouristEmail    string `json:"touristEmail"`
	TouristPhone    string `json:"touristPhone"`
}

// OwnerReservations lists all reservations on an owner's cottages with the
// pending subset split out for approval.
type OwnerReservations struct {
	Pending []OwnerReservationView `json:"pending"`
	All     []OwnerReservationView `json:"all"`
}
