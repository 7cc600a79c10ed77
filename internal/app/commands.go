package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"holdhive/internal/domain"
)

// CommandService owns the write paths: space and booking lifecycle,
// review submission with derived-rating maintenance, and favorites.
// Every mutation evicts the caches it can stale.
type CommandService struct {
	repo  domain.Repository
	cache domain.Cache
	now   func() time.Time
	newID func() string
}

func NewCommandService(r domain.Repository, c domain.Cache, now func() time.Time, newID func() string) *CommandService {
	if now == nil {
		now = time.Now
	}
	if newID == nil {
		newID = uuid.NewString
	}
	return &CommandService{repo: r, cache: c, now: now, newID: newID}
}

type CreateSpaceInput struct {
	OwnerID             string
	Title               string
	Description         string
	Address             string
	City                string
	PricePerMonth       float64
	SpaceType           domain.SpaceType
	Size                string
	SizeInSqFt          *float64
	Amenities           []string
	SecurityFeatures    []string
	MinimumRentalPeriod int
	AccessHours         string
	Latitude            *float64
	Longitude           *float64
}

// CreateSpace inserts a new listing. New spaces start available and
// unrated.
func (s *CommandService) CreateSpace(ctx context.Context, in CreateSpaceInput) (domain.Space, error) {
	if !in.SpaceType.Valid() {
		return domain.Space{}, fmt.Errorf("%w: unknown space type %q", domain.ErrInvalidArgument, in.SpaceType)
	}
	if (in.Latitude == nil) != (in.Longitude == nil) {
		return domain.Space{}, fmt.Errorf("%w: latitude and longitude must be set together", domain.ErrInvalidArgument)
	}
	if in.Latitude != nil {
		if err := validateCoordinates(*in.Latitude, *in.Longitude); err != nil {
			return domain.Space{}, err
		}
	}
	if _, err := s.repo.GetUser(ctx, in.OwnerID); err != nil {
		return domain.Space{}, fmt.Errorf("owner %s: %w", in.OwnerID, err)
	}

	sp := domain.Space{
		ID:                  s.newID(),
		OwnerID:             in.OwnerID,
		Title:               in.Title,
		Description:         in.Description,
		Address:             in.Address,
		City:                in.City,
		PricePerMonth:       in.PricePerMonth,
		SpaceType:           in.SpaceType,
		Size:                in.Size,
		SizeInSqFt:          in.SizeInSqFt,
		Amenities:           in.Amenities,
		SecurityFeatures:    in.SecurityFeatures,
		MinimumRentalPeriod: in.MinimumRentalPeriod,
		AccessHours:         in.AccessHours,
		IsAvailable:         true,
		Latitude:            in.Latitude,
		Longitude:           in.Longitude,
		CreatedAt:           s.now(),
	}
	if err := s.repo.InsertSpace(ctx, sp); err != nil {
		return domain.Space{}, err
	}
	s.invalidateListings(ctx)
	return sp, nil
}

func (s *CommandService) SetSpaceAvailability(ctx context.Context, spaceID string, available bool) error {
	if _, err := s.repo.GetSpace(ctx, spaceID); err != nil {
		return fmt.Errorf("space %s: %w", spaceID, err)
	}
	if err := s.repo.SetSpaceAvailability(ctx, spaceID, available); err != nil {
		return err
	}
	s.invalidateSpace(ctx, spaceID)
	s.invalidateListings(ctx)
	return nil
}

type CreateBookingInput struct {
	SpaceID             string
	RenterID            string
	StartDate           string
	EndDate             string
	TotalAmount         float64
	SpecialInstructions *string
}

// CreateBooking resolves the owner from the space and records a pending
// booking with pending payment.
func (s *CommandService) CreateBooking(ctx context.Context, in CreateBookingInput) (domain.Booking, error) {
	sp, err := s.repo.GetSpace(ctx, in.SpaceID)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("space %s: %w", in.SpaceID, err)
	}
	b := domain.Booking{
		ID:                  s.newID(),
		SpaceID:             in.SpaceID,
		RenterID:            in.RenterID,
		OwnerID:             sp.OwnerID,
		StartDate:           in.StartDate,
		EndDate:             in.EndDate,
		TotalAmount:         in.TotalAmount,
		Status:              domain.BookingPending,
		PaymentStatus:       domain.PaymentPending,
		SpecialInstructions: in.SpecialInstructions,
		CreatedAt:           s.now(),
	}
	if err := s.repo.InsertBooking(ctx, b); err != nil {
		return domain.Booking{}, err
	}
	s.invalidateAnalytics(ctx)
	return b, nil
}

func (s *CommandService) UpdateBookingStatus(ctx context.Context, bookingID string, status domain.BookingStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown booking status %q", domain.ErrInvalidArgument, status)
	}
	if _, err := s.repo.GetBooking(ctx, bookingID); err != nil {
		return fmt.Errorf("booking %s: %w", bookingID, err)
	}
	if err := s.repo.UpdateBookingStatus(ctx, bookingID, status); err != nil {
		return err
	}
	s.invalidateAnalytics(ctx)
	return nil
}

func (s *CommandService) UpdateBookingPayment(ctx context.Context, bookingID string, status domain.PaymentStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown payment status %q", domain.ErrInvalidArgument, status)
	}
	if _, err := s.repo.GetBooking(ctx, bookingID); err != nil {
		return fmt.Errorf("booking %s: %w", bookingID, err)
	}
	if err := s.repo.UpdateBookingPayment(ctx, bookingID, status); err != nil {
		return err
	}
	s.invalidateAnalytics(ctx)
	return nil
}

type CreateReviewInput struct {
	BookingID  string
	SpaceID    string
	ReviewerID string
	RevieweeID string
	Rating     int
	Comment    *string
	ReviewType domain.ReviewType
}

// CreateReview records the review and recomputes the derived ratings:
// the space average over its space-type reviews (for space reviews) and
// the reviewee's average over everything they have received.
func (s *CommandService) CreateReview(ctx context.Context, in CreateReviewInput) (domain.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return domain.Review{}, fmt.Errorf("%w: rating must be 1-5, got %d", domain.ErrInvalidArgument, in.Rating)
	}
	if !in.ReviewType.Valid() {
		return domain.Review{}, fmt.Errorf("%w: unknown review type %q", domain.ErrInvalidArgument, in.ReviewType)
	}

	rv := domain.Review{
		ID:         s.newID(),
		BookingID:  in.BookingID,
		SpaceID:    in.SpaceID,
		ReviewerID: in.ReviewerID,
		RevieweeID: in.RevieweeID,
		Rating:     in.Rating,
		Comment:    in.Comment,
		ReviewType: in.ReviewType,
		CreatedAt:  s.now(),
	}
	if err := s.repo.InsertReview(ctx, rv); err != nil {
		return domain.Review{}, err
	}

	if in.ReviewType == domain.ReviewTypeSpace {
		spaceReviews, err := s.repo.ListSpaceReviews(ctx, in.SpaceID)
		if err != nil {
			return domain.Review{}, err
		}
		avg, n := meanRating(spaceReviews)
		if err := s.repo.UpdateSpaceRating(ctx, in.SpaceID, avg, n); err != nil {
			return domain.Review{}, err
		}
	}

	received, err := s.repo.ListReviewsByReviewee(ctx, in.RevieweeID)
	if err != nil {
		return domain.Review{}, err
	}
	avg, n := meanRating(received)
	if err := s.repo.UpdateUserRating(ctx, in.RevieweeID, avg, n); err != nil {
		return domain.Review{}, err
	}

	s.invalidateSpace(ctx, in.SpaceID)
	s.invalidateListings(ctx)
	s.invalidateAnalytics(ctx)
	return rv, nil
}

// AddFavorite is idempotent: favoriting twice returns the existing id
// without touching the count.
func (s *CommandService) AddFavorite(ctx context.Context, userID, spaceID string) (string, error) {
	if existing, err := s.repo.GetFavorite(ctx, userID, spaceID); err == nil {
		return existing.ID, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return "", err
	}

	f := domain.Favorite{ID: s.newID(), UserID: userID, SpaceID: spaceID, CreatedAt: s.now()}
	if err := s.repo.InsertFavorite(ctx, f); err != nil {
		return "", err
	}
	if err := s.repo.AdjustFavoriteCount(ctx, spaceID, 1); err != nil {
		return "", err
	}
	s.invalidateSpace(ctx, spaceID)
	return f.ID, nil
}

func (s *CommandService) RemoveFavorite(ctx context.Context, userID, spaceID string) error {
	if _, err := s.repo.GetFavorite(ctx, userID, spaceID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}
	if err := s.repo.DeleteFavorite(ctx, userID, spaceID); err != nil {
		return err
	}
	if err := s.repo.AdjustFavoriteCount(ctx, spaceID, -1); err != nil {
		return err
	}
	s.invalidateSpace(ctx, spaceID)
	return nil
}

func meanRating(reviews []domain.Review) (float64, int) {
	if len(reviews) == 0 {
		return 0, 0
	}
	var sum int
	for _, rv := range reviews {
		sum += rv.Rating
	}
	return float64(sum) / float64(len(reviews)), len(reviews)
}

// ---- cache invalidation ----

func (s *CommandService) invalidateSpace(ctx context.Context, spaceID string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, spaceKey(spaceID))
	_ = s.cache.Del(ctx, spaceReviewsKey(spaceID))
}

// invalidateListings clears the popular-space variants the API serves
// by default. Limits are part of the key; clear the common ones.
func (s *CommandService) invalidateListings(ctx context.Context) {
	if s.cache == nil {
		return
	}
	for _, lim := range []int{0, 5, 10, 20, 50} {
		_ = s.cache.Del(ctx, fmt.Sprintf("spaces:popular:%d", lim))
	}
}

func (s *CommandService) invalidateAnalytics(ctx context.Context) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, platformAnalyticsKey)
}
