package models

import "time"

// Cottage is a rentable property listing owned by an owner user.
// Nightly rates are seasonal: summerPrice covers May through August,
// winterPrice the rest of the year. A cottage with blockedUntil in the
// future accepts no new reservations (admin moderation).
type Cottage struct {
	ID           string     `bson:"id" json:"id"`
	Name         string     `bson:"name" json:"name"`
	Location     string     `bson:"location" json:"location"`
	OwnerID      string     `bson:"ownerId" json:"ownerId"`
	Description  string     `bson:"description,omitempty" json:"description,omitempty"`
	SummerPrice  float64    `bson:"summerPrice" json:"summerPrice"`
	WinterPrice  float64    `bson:"winterPrice" json:"winterPrice"`
	Capacity     int        `bson:"capacity" json:"capacity"`
	Amenities    []string   `bson:"amenities,omitempty" json:"amenities,omitempty"`
	Images       []string   `bson:"images,omitempty" json:"images,omitempty"`
	Phone        string     `bson:"phone,omitempty" json:"phone,omitempty"`
	Latitude     *float64   `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude    *float64   `bson:"longitude,omitempty" json:"longitude,omitempty"`
	BlockedUntil *time.Time `bson:"blockedUntil,omitempty" json:"blockedUntil,omitempty"`
	CreatedAt    time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// IsBlocked reports whether the admin block is still in effect.
func (c *Cottage) IsBlocked(now time.Time) bool {
	return c.BlockedUntil != nil && c.BlockedUntil.After(now)
}

// CottageWithRating decorates a cottage with its rating aggregate for list views.
type CottageWithRating struct {
	Cottage       `bson:",inline"`
	Owner         *PublicOwner `json:"owner,omitempty"`
	AverageRating float64      `json:"averageRating"`
	RatingCount   int          `json:"ratingCount"`
}

// CottageDetail is the full cottage view including individual ratings.
type CottageDetail struct {
	CottageWithRating
	Ratings []RatingView `json:"ratings"`
}

// CottageModeration is the admin list view with rating analysis.
type CottageModeration struct {
	Cottage          `bson:",inline"`
	Owner            *PublicOwner `json:"owner,omitempty"`
	LastThreeRatings []int        `json:"lastThreeRatings"`
	NeedsAttention   bool         `json:"needsAttention"`
	AverageRating    float64      `json:"averageRating"`
	TotalRatings     int          `json:"totalRatings"`
	Blocked          bool         `json:"isBlocked"`
}
