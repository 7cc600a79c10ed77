package domain

import "context"

type UserRepository interface {
	InsertUser(ctx context.Context, u User) error
	GetUser(ctx context.Context, id string) (User, error)
	// GetUsers is a batched point-read; missing ids are simply absent
	// from the returned map.
	GetUsers(ctx context.Context, ids []string) (map[string]User, error)
	ListUsers(ctx context.Context) ([]User, error)
	UpdateUserRating(ctx context.Context, id string, rating float64, totalReviews int) error
}

type SpaceRepository interface {
	InsertSpace(ctx context.Context, s Space) error
	GetSpace(ctx context.Context, id string) (Space, error)
	ListSpaces(ctx context.Context) ([]Space, error)
	ListAvailableSpaces(ctx context.Context) ([]Space, error)
	ListSpacesByOwner(ctx context.Context, ownerID string) ([]Space, error)
	SetSpaceAvailability(ctx context.Context, id string, available bool) error
	UpdateSpaceRating(ctx context.Context, id string, rating float64, totalReviews int) error
	AdjustFavoriteCount(ctx context.Context, id string, delta int) error
}

type BookingRepository interface {
	InsertBooking(ctx context.Context, b Booking) error
	GetBooking(ctx context.Context, id string) (Booking, error)
	ListBookings(ctx context.Context) ([]Booking, error)
	// ListBookingsForSpaces replaces the per-space fan-out with a single
	// batched read; spaceID partitions bookings, so no dedup is needed.
	ListBookingsForSpaces(ctx context.Context, spaceIDs []string) ([]Booking, error)
	ListBookingsByRenter(ctx context.Context, renterID string) ([]Booking, error)
	ListBookingsByOwner(ctx context.Context, ownerID string) ([]Booking, error)
	UpdateBookingStatus(ctx context.Context, id string, status BookingStatus) error
	UpdateBookingPayment(ctx context.Context, id string, status PaymentStatus) error
}

type ReviewRepository interface {
	InsertReview(ctx context.Context, r Review) error
	ListReviews(ctx context.Context) ([]Review, error)
	// ListSpaceReviews returns only reviews of type "space" for the space.
	ListSpaceReviews(ctx context.Context, spaceID string) ([]Review, error)
	ListReviewsByReviewee(ctx context.Context, revieweeID string) ([]Review, error)
}

type FavoriteRepository interface {
	InsertFavorite(ctx context.Context, f Favorite) error
	GetFavorite(ctx context.Context, userID, spaceID string) (Favorite, error)
	DeleteFavorite(ctx context.Context, userID, spaceID string) error
	ListFavoritesByUser(ctx context.Context, userID string) ([]Favorite, error)
	CountFavoritesBySpace(ctx context.Context, spaceID string) (int, error)
}

// Repository is the full storage port the application services depend on.
type Repository interface {
	UserRepository
	SpaceRepository
	BookingRepository
	ReviewRepository
	FavoriteRepository
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// SearchFilters are AND-combined; every field is optional.
type SearchFilters struct {
	City      *string
	MinPrice  *float64
	MaxPrice  *float64
	SpaceType *string // "all" and "" mean no filter
	Amenities []string
}

// ListFilters narrows the plain available-space listing.
type ListFilters struct {
	City      *string
	MaxPrice  *float64
	SpaceType *string
}
