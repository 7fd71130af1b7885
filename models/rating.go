package models

import "time"

// Rating is a tourist's score and comment for a cottage. One document per
// (cottage, tourist) pair; a second submission updates the first.
type Rating struct {
	ID        string    `bson:"id" json:"id"`
	CottageID string    `bson:"cottageId" json:"cottageId"`
	TouristID string    `bson:"touristId" json:"touristId"`
	Value     int       `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment" json:"comment"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// RatingView decorates a rating with the tourist's name for cottage details.
type RatingView struct {
	Rating
	TouristName string `json:"touristName"`
}
