package models

// AvailabilityResult is the evaluator verdict. Nights and prices are only
// populated when the cottage is available.
type AvailabilityResult struct {
	Available   bool    `json:"available"`
	Message     string  `json:"message"`
	Nights      int     `json:"nights,omitempty"`
	TotalPrice  float64 `json:"totalPrice,omitempty"`
	SummerPrice float64 `json:"summerPrice,omitempty"`
	WinterPrice float64 `json:"winterPrice,omitempty"`
}

// ReservationCounts aggregates recent reservation activity for the home page.
type ReservationCounts struct {
	Last24Hours int64 `json:"last24Hours"`
	Last7Days   int64 `json:"last7Days"`
	Last30Days  int64 `json:"last30Days"`
}

// PublicStatistics is the home page statistics payload.
type PublicStatistics struct {
	TotalCottages int64             `json:"totalCottages"`
	TotalOwners   int64             `json:"totalOwners"`
	TotalTourists int64             `json:"totalTourists"`
	Reservations  ReservationCounts `json:"reservations"`
}

// MonthlyReservations counts completed reservations per "YYYY-MM" month for
// one cottage.
type MonthlyReservations struct {
	CottageID   string         `json:"cottageId"`
	CottageName string         `json:"cottageName"`
	Months      map[string]int `json:"months"`
}

// WeekendSplit counts weekend versus weekday nights booked on one cottage.
type WeekendSplit struct {
	CottageID   string `json:"cottageId"`
	CottageName string `json:"cottageName"`
	WeekendDays int    `json:"weekendDays"`
	WeekdayDays int    `json:"weekdayDays"`
}

// OwnerStatistics is the owner dashboard statistics payload.
type OwnerStatistics struct {
	ReservationsPerMonth []MonthlyReservations `json:"reservationsPerMonth"`
	WeekendVsWeekday     []WeekendSplit        `json:"weekendVsWeekday"`
}
