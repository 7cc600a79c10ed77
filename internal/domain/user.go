package domain

type User struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        *string `json:"phone,omitempty"`
	Rating       float64 `json:"rating"`
	TotalReviews int     `json:"totalReviews"`
	IsVerified   bool    `json:"isVerified"`
	Bio          *string `json:"bio,omitempty"`
	JoinedDate   *string `json:"joinedDate,omitempty"`
}

// OwnerSummary is the denormalized owner block attached to space results.
// A nil summary means the owner record no longer exists.
type OwnerSummary struct {
	Name         string  `json:"name"`
	Rating       float64 `json:"rating"`
	TotalReviews int     `json:"totalReviews"`
	IsVerified   bool    `json:"isVerified"`
}

func (u User) Summary() *OwnerSummary {
	return &OwnerSummary{
		Name:         u.Name,
		Rating:       u.Rating,
		TotalReviews: u.TotalReviews,
		IsVerified:   u.IsVerified,
	}
}
