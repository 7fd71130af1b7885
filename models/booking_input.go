package models

// AvailabilityRequest is the body of POST /cottages/:id/check-availability.
// Dates are calendar dates or RFC3339 timestamps.
type AvailabilityRequest struct {
	CheckIn  string `json:"checkIn" binding:"required"`
	CheckOut string `json:"checkOut" binding:"required"`
	Adults   int    `json:"adults"`
	Children int    `json:"children"`
}

// ReservationRequest is the body of POST /cottages/:id/reserve. The tourist
// identity comes from the auth token, not the body.
type ReservationRequest struct {
	CheckIn    string  `json:"checkIn" binding:"required"`
	CheckOut   string  `json:"checkOut" binding:"required"`
	Adults     int     `json:"adults"`
	Children   int     `json:"children"`
	TotalPrice float64 `json:"totalPrice"`
	CreditCard string  `json:"creditCard"`
	Note       string  `json:"note" binding:"max=500"`
}

// RateRequest is the body of POST /cottages/:id/rate.
type RateRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment" binding:"required"`
}

// RejectRequest carries the owner's reason for rejecting a reservation.
type RejectRequest struct {
	RejectionReason string `json:"rejectionReason" binding:"required"`
}

// CottageInput is the cottage create/update shape. It binds from multipart
// forms (images ride along as files) and from imported JSON documents.
type CottageInput struct {
	Name        string   `json:"name" form:"name"`
	Location    string   `json:"location" form:"location"`
	Description string   `json:"description" form:"description"`
	SummerPrice float64  `json:"summerPrice" form:"summerPrice"`
	WinterPrice float64  `json:"winterPrice" form:"winterPrice"`
	Capacity    int      `json:"capacity" form:"capacity"`
	Amenities   []string `json:"amenities" form:"amenities"`
	Phone       string   `json:"phone" form:"phone"`
	Latitude    *float64 `json:"latitude" form:"latitude"`
	Longitude   *float64 `json:"longitude" form:"longitude"`
}
