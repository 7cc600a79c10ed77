package domain

import "time"

type SpaceType string

const (
	SpaceTypeRoom        SpaceType = "room"
	SpaceTypeGarage      SpaceType = "garage"
	SpaceTypeBasement    SpaceType = "basement"
	SpaceTypeAttic       SpaceType = "attic"
	SpaceTypeStorageUnit SpaceType = "storage_unit"
	SpaceTypeOther       SpaceType = "other"
)

func (t SpaceType) Valid() bool {
	switch t {
	case SpaceTypeRoom, SpaceTypeGarage, SpaceTypeBasement,
		SpaceTypeAttic, SpaceTypeStorageUnit, SpaceTypeOther:
		return true
	}
	return false
}

type Space struct {
	ID                  string    `json:"id"`
	OwnerID             string    `json:"ownerId"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	Address             string    `json:"address"`
	City                string    `json:"city"`
	PricePerMonth       float64   `json:"pricePerMonth"`
	SpaceType           SpaceType `json:"spaceType"`
	Size                string    `json:"size"`
	SizeInSqFt          *float64  `json:"sizeInSqFt,omitempty"`
	Amenities           []string  `json:"amenities"`
	SecurityFeatures    []string  `json:"securityFeatures"`
	MinimumRentalPeriod int       `json:"minimumRentalPeriod"`
	AccessHours         string    `json:"accessHours"`
	IsAvailable         bool      `json:"isAvailable"`
	Rating              float64   `json:"rating"`
	TotalReviews        int       `json:"totalReviews"`
	Latitude            *float64  `json:"latitude,omitempty"`
	Longitude           *float64  `json:"longitude,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
	ViewCount           int       `json:"viewCount"`
	FavoriteCount       int       `json:"favoriteCount"`
}

// HasCoordinates reports whether the space can take part in distance
// filtering. Spaces missing either coordinate are excluded from nearby
// results, never treated as distance zero.
func (s Space) HasCoordinates() bool {
	return s.Latitude != nil && s.Longitude != nil
}
