package domain

import "time"

type ReviewType string

const (
	ReviewTypeSpace  ReviewType = "space"
	ReviewTypeRenter ReviewType = "renter"
)

func (t ReviewType) Valid() bool {
	return t == ReviewTypeSpace || t == ReviewTypeRenter
}

type Review struct {
	ID         string     `json:"id"`
	BookingID  string     `json:"bookingId"`
	SpaceID    string     `json:"spaceId"`
	ReviewerID string     `json:"reviewerId"`
	RevieweeID string     `json:"revieweeId"`
	Rating     int        `json:"rating"` // 1-5
	Comment    *string    `json:"comment,omitempty"`
	ReviewType ReviewType `json:"reviewType"`
	CreatedAt  time.Time  `json:"createdAt"`
}

type Favorite struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	SpaceID   string    `json:"spaceId"`
	CreatedAt time.Time `json:"createdAt"`
}
