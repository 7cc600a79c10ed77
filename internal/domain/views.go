package domain

import "time"

// Read models assembled by the application services. All of them are
// transient: derived per call, never persisted.

type SpaceResult struct {
	Space
	Owner *OwnerSummary `json:"owner"`
}

type NearbySpaceResult struct {
	Space
	Owner      *OwnerSummary `json:"owner"`
	DistanceKm float64       `json:"distanceKm"`
}

type ReviewerSummary struct {
	Name string `json:"name"`
}

type SpaceReview struct {
	Review
	Reviewer *ReviewerSummary `json:"reviewer"`
}

type UserReview struct {
	Review
	Reviewer   *ReviewerSummary `json:"reviewer"`
	SpaceTitle *string          `json:"spaceTitle,omitempty"`
}

type SpaceDetail struct {
	Space
	Owner   *OwnerSummary `json:"owner"`
	Reviews []SpaceReview `json:"reviews"`
}

// OwnerSpace annotates a listing with its booking load.
type OwnerSpace struct {
	Space
	TotalBookings  int `json:"totalBookings"`
	ActiveBookings int `json:"activeBookings"`
}

type BookingSpaceInfo struct {
	Title   string `json:"title"`
	Address string `json:"address"`
	City    string `json:"city"`
}

type BookingContact struct {
	Name  string  `json:"name"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
}

type RenterBooking struct {
	Booking
	Space *BookingSpaceInfo `json:"space"`
	Owner *BookingContact   `json:"owner"`
}

type OwnerBooking struct {
	Booking
	Space  *BookingSpaceInfo `json:"space"`
	Renter *BookingContact   `json:"renter"`
}

type FavoriteSpace struct {
	Space
	Owner       *OwnerSummary `json:"owner"`
	FavoriteID  string        `json:"favoriteId"`
	FavoritedAt time.Time     `json:"favoritedAt"`
}

// ---- analytics ----

type OwnerOverview struct {
	TotalSpaces       int     `json:"totalSpaces"`
	AvailableSpaces   int     `json:"availableSpaces"`
	OccupiedSpaces    int     `json:"occupiedSpaces"`
	TotalBookings     int     `json:"totalBookings"`
	ActiveBookings    int     `json:"activeBookings"`
	CompletedBookings int     `json:"completedBookings"`
	PendingBookings   int     `json:"pendingBookings"`
	TotalEarnings     float64 `json:"totalEarnings"`
	MonthlyEarnings   float64 `json:"monthlyEarnings"`
	AverageRating     float64 `json:"averageRating"`
}

type MonthlyTrend struct {
	Month    string  `json:"month"` // e.g. "Mar 2026"
	Bookings int     `json:"bookings"`
	Earnings float64 `json:"earnings"`
}

type TopSpace struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Rating          float64 `json:"rating"`
	TotalReviews    int     `json:"totalReviews"`
	MonthlyEarnings float64 `json:"monthlyEarnings"`
}

type OwnerAnalytics struct {
	Overview            OwnerOverview  `json:"overview"`
	Trends              []MonthlyTrend `json:"trends"`
	TopPerformingSpaces []TopSpace     `json:"topPerformingSpaces"`
}

type PlatformOverview struct {
	TotalSpaces        int     `json:"totalSpaces"`
	AvailableSpaces    int     `json:"availableSpaces"`
	TotalUsers         int     `json:"totalUsers"`
	TotalBookings      int     `json:"totalBookings"`
	TotalReviews       int     `json:"totalReviews"`
	TotalRevenue       float64 `json:"totalRevenue"`
	AverageSpaceRating float64 `json:"averageSpaceRating"`
}

type CityCount struct {
	City  string `json:"city"`
	Count int    `json:"count"`
}

type SpaceTypeCount struct {
	Type  SpaceType `json:"type"`
	Count int       `json:"count"`
}

type PlatformDistributions struct {
	Cities     []CityCount      `json:"cities"`
	SpaceTypes []SpaceTypeCount `json:"spaceTypes"`
}

type PlatformAnalytics struct {
	Overview      PlatformOverview      `json:"overview"`
	Distributions PlatformDistributions `json:"distributions"`
}
