package app

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"holdhive/internal/domain"
)

// QueryService serves the non-search read paths with cache-aside reads
// in front of the repository.
type QueryService struct {
	repo     domain.Repository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(r domain.Repository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

func spaceKey(id string) string        { return "space:" + id }
func spaceReviewsKey(id string) string { return "reviews:space:" + id }

// ListSpaces returns available spaces with optional city / max price /
// space type narrowing, each annotated with its owner summary.
func (s *QueryService) ListSpaces(ctx context.Context, f domain.ListFilters) ([]domain.SpaceResult, error) {
	spaces, err := s.repo.ListAvailableSpaces(ctx)
	if err != nil {
		return nil, err
	}
	if f.City != nil && *f.City != "" {
		city := strings.ToLower(*f.City)
		spaces = filterSpaces(spaces, func(sp domain.Space) bool {
			return strings.Contains(strings.ToLower(sp.City), city)
		})
	}
	if f.MaxPrice != nil {
		max := *f.MaxPrice
		spaces = filterSpaces(spaces, func(sp domain.Space) bool { return sp.PricePerMonth <= max })
	}
	if f.SpaceType != nil && *f.SpaceType != "" && *f.SpaceType != "all" {
		st := domain.SpaceType(*f.SpaceType)
		spaces = filterSpaces(spaces, func(sp domain.Space) bool { return sp.SpaceType == st })
	}
	return s.spacesWithOwners(ctx, spaces)
}

// GetSpace returns a space with its owner summary and space reviews.
func (s *QueryService) GetSpace(ctx context.Context, id string) (domain.SpaceDetail, error) {
	key := spaceKey(id)
	var cached domain.SpaceDetail
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &cached); ok {
			return cached, nil
		}
	}

	sp, err := s.repo.GetSpace(ctx, id)
	if err != nil {
		return domain.SpaceDetail{}, err
	}
	detail := domain.SpaceDetail{Space: sp, Owner: s.lookupOwner(ctx, sp.OwnerID)}
	reviews, err := s.SpaceReviews(ctx, id)
	if err != nil {
		return domain.SpaceDetail{}, err
	}
	detail.Reviews = reviews

	if s.cache != nil {
		_ = s.cache.Set(ctx, key, detail, int(s.cacheTTL.Seconds()))
	}
	return detail, nil
}

// OwnerSpaces lists an owner's spaces annotated with booking load.
func (s *QueryService) OwnerSpaces(ctx context.Context, ownerID string) ([]domain.OwnerSpace, error) {
	spaces, err := s.repo.ListSpacesByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(spaces))
	for i, sp := range spaces {
		ids[i] = sp.ID
	}
	bookings, err := s.repo.ListBookingsForSpaces(ctx, ids)
	if err != nil {
		return nil, err
	}
	total := map[string]int{}
	active := map[string]int{}
	for _, b := range bookings {
		total[b.SpaceID]++
		if b.Status == domain.BookingActive {
			active[b.SpaceID]++
		}
	}

	out := make([]domain.OwnerSpace, len(spaces))
	for i, sp := range spaces {
		out[i] = domain.OwnerSpace{
			Space:          sp,
			TotalBookings:  total[sp.ID],
			ActiveBookings: active[sp.ID],
		}
	}
	return out, nil
}

// RenterBookings lists a renter's bookings newest first, each with
// space and owner snapshots. Dangling references degrade to nil.
func (s *QueryService) RenterBookings(ctx context.Context, renterID string) ([]domain.RenterBooking, error) {
	bookings, err := s.repo.ListBookingsByRenter(ctx, renterID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.RenterBooking, len(bookings))
	for i, b := range bookings {
		rb := domain.RenterBooking{Booking: b}
		if sp, err := s.repo.GetSpace(ctx, b.SpaceID); err == nil {
			rb.Space = &domain.BookingSpaceInfo{Title: sp.Title, Address: sp.Address, City: sp.City}
			if owner, err := s.repo.GetUser(ctx, sp.OwnerID); err == nil {
				rb.Owner = &domain.BookingContact{Name: owner.Name, Phone: owner.Phone}
			}
		}
		out[i] = rb
	}
	sortBookingsNewestFirst(out, func(rb domain.RenterBooking) time.Time { return rb.CreatedAt })
	return out, nil
}

// OwnerBookings lists bookings across an owner's spaces newest first,
// each with space and renter snapshots.
func (s *QueryService) OwnerBookings(ctx context.Context, ownerID string) ([]domain.OwnerBooking, error) {
	bookings, err := s.repo.ListBookingsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.OwnerBooking, len(bookings))
	for i, b := range bookings {
		ob := domain.OwnerBooking{Booking: b}
		if sp, err := s.repo.GetSpace(ctx, b.SpaceID); err == nil {
			ob.Space = &domain.BookingSpaceInfo{Title: sp.Title, Address: sp.Address, City: sp.City}
		}
		if renter, err := s.repo.GetUser(ctx, b.RenterID); err == nil {
			email := renter.Email
			ob.Renter = &domain.BookingContact{Name: renter.Name, Phone: renter.Phone, Email: &email}
		}
		out[i] = ob
	}
	sortBookingsNewestFirst(out, func(ob domain.OwnerBooking) time.Time { return ob.CreatedAt })
	return out, nil
}

// SpaceReviews returns the space-type reviews for a space, newest
// first, with reviewer snapshots.
func (s *QueryService) SpaceReviews(ctx context.Context, spaceID string) ([]domain.SpaceReview, error) {
	key := spaceReviewsKey(spaceID)
	var cached []domain.SpaceReview
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &cached); ok {
			return cached, nil
		}
	}

	reviews, err := s.repo.ListSpaceReviews(ctx, spaceID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.SpaceReview, len(reviews))
	for i, rv := range reviews {
		sr := domain.SpaceReview{Review: rv}
		if u, err := s.repo.GetUser(ctx, rv.ReviewerID); err == nil {
			sr.Reviewer = &domain.ReviewerSummary{Name: u.Name}
		}
		out[i] = sr
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	if s.cache != nil {
		_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	}
	return out, nil
}

// UserReviews returns reviews received by a user, newest first.
func (s *QueryService) UserReviews(ctx context.Context, userID string) ([]domain.UserReview, error) {
	reviews, err := s.repo.ListReviewsByReviewee(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.UserReview, len(reviews))
	for i, rv := range reviews {
		ur := domain.UserReview{Review: rv}
		if u, err := s.repo.GetUser(ctx, rv.ReviewerID); err == nil {
			ur.Reviewer = &domain.ReviewerSummary{Name: u.Name}
		}
		if rv.ReviewType == domain.ReviewTypeSpace {
			if sp, err := s.repo.GetSpace(ctx, rv.SpaceID); err == nil {
				title := sp.Title
				ur.SpaceTitle = &title
			}
		}
		out[i] = ur
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// UserFavorites lists a user's favorited spaces, newest favorite first.
// Favorites pointing at deleted spaces are skipped.
func (s *QueryService) UserFavorites(ctx context.Context, userID string) ([]domain.FavoriteSpace, error) {
	favs, err := s.repo.ListFavoritesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.FavoriteSpace, 0, len(favs))
	for _, f := range favs {
		sp, err := s.repo.GetSpace(ctx, f.SpaceID)
		if err != nil {
			continue
		}
		out = append(out, domain.FavoriteSpace{
			Space:       sp,
			Owner:       s.lookupOwner(ctx, sp.OwnerID),
			FavoriteID:  f.ID,
			FavoritedAt: f.CreatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FavoritedAt.After(out[j].FavoritedAt) })
	return out, nil
}

func (s *QueryService) IsFavorited(ctx context.Context, userID, spaceID string) (bool, error) {
	_, err := s.repo.GetFavorite(ctx, userID, spaceID)
	if err == nil {
		return true, nil
	}
	if isNotFound(err) {
		return false, nil
	}
	return false, err
}

func (s *QueryService) SpaceFavoriteCount(ctx context.Context, spaceID string) (int, error) {
	return s.repo.CountFavoritesBySpace(ctx, spaceID)
}

// spacesWithOwners resolves owner snapshots with one batched read. A
// missing owner maps to nil rather than failing the whole result.
func (s *QueryService) spacesWithOwners(ctx context.Context, spaces []domain.Space) ([]domain.SpaceResult, error) {
	seen := map[string]bool{}
	ids := make([]string, 0, len(spaces))
	for _, sp := range spaces {
		if !seen[sp.OwnerID] {
			seen[sp.OwnerID] = true
			ids = append(ids, sp.OwnerID)
		}
	}
	owners := map[string]*domain.OwnerSummary{}
	if len(ids) > 0 {
		users, err := s.repo.GetUsers(ctx, ids)
		if err != nil {
			return nil, err
		}
		for id, u := range users {
			owners[id] = u.Summary()
		}
	}
	out := make([]domain.SpaceResult, len(spaces))
	for i, sp := range spaces {
		out[i] = domain.SpaceResult{Space: sp, Owner: owners[sp.OwnerID]}
	}
	return out, nil
}

func (s *QueryService) lookupOwner(ctx context.Context, ownerID string) *domain.OwnerSummary {
	u, err := s.repo.GetUser(ctx, ownerID)
	if err != nil {
		return nil
	}
	return u.Summary()
}

func sortBookingsNewestFirst[T any](items []T, createdAt func(T) time.Time) {
	sort.Slice(items, func(i, j int) bool {
		return createdAt(items[i]).After(createdAt(items[j]))
	})
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
