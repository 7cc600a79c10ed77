package app

import (
	"context"
	"fmt"
	"sort"
	"time"

	"holdhive/internal/domain"
)

const platformAnalyticsKey = "analytics:platform"

// AnalyticsService derives owner-facing and platform-facing aggregates
// from point-in-time reads. The reference clock is injected so month
// bucketing is deterministic under test.
type AnalyticsService struct {
	repo     domain.Repository
	cache    domain.Cache
	cacheTTL time.Duration
	now      func() time.Time
}

func NewAnalyticsService(r domain.Repository, c domain.Cache, ttl time.Duration, now func() time.Time) *AnalyticsService {
	if now == nil {
		now = time.Now
	}
	return &AnalyticsService{repo: r, cache: c, cacheTTL: ttl, now: now}
}

func sameMonth(t time.Time, ref time.Time) bool {
	return t.Year() == ref.Year() && t.Month() == ref.Month()
}

func (s *AnalyticsService) OwnerAnalytics(ctx context.Context, ownerID string) (domain.OwnerAnalytics, error) {
	if _, err := s.repo.GetUser(ctx, ownerID); err != nil {
		return domain.OwnerAnalytics{}, fmt.Errorf("owner %s: %w", ownerID, err)
	}

	spaces, err := s.repo.ListSpacesByOwner(ctx, ownerID)
	if err != nil {
		return domain.OwnerAnalytics{}, err
	}
	spaceIDs := make([]string, len(spaces))
	for i, sp := range spaces {
		spaceIDs[i] = sp.ID
	}
	bookings, err := s.repo.ListBookingsForSpaces(ctx, spaceIDs)
	if err != nil {
		return domain.OwnerAnalytics{}, err
	}

	now := s.now()

	var ov domain.OwnerOverview
	ov.TotalSpaces = len(spaces)
	for _, sp := range spaces {
		if sp.IsAvailable {
			ov.AvailableSpaces++
		}
	}
	ov.OccupiedSpaces = ov.TotalSpaces - ov.AvailableSpaces

	ov.TotalBookings = len(bookings)
	for _, b := range bookings {
		switch b.Status {
		case domain.BookingActive:
			ov.ActiveBookings++
		case domain.BookingCompleted:
			ov.CompletedBookings++
		case domain.BookingPending:
			ov.PendingBookings++
		}
		if b.Paid() {
			ov.TotalEarnings += b.TotalAmount
			if sameMonth(b.CreatedAt, now) {
				ov.MonthlyEarnings += b.TotalAmount
			}
		}
	}

	var ratingSum float64
	var rated int
	for _, sp := range spaces {
		if sp.Rating > 0 {
			ratingSum += sp.Rating
			rated++
		}
	}
	if rated > 0 {
		ov.AverageRating = ratingSum / float64(rated)
	}

	return domain.OwnerAnalytics{
		Overview:            ov,
		Trends:              monthlyTrends(bookings, now),
		TopPerformingSpaces: topSpaces(spaces, bookings, now),
	}, nil
}

// monthlyTrends buckets bookings by calendar month for the six months
// ending at the reference month, oldest first. Bucketing is independent
// of booking status; earnings count paid bookings only.
func monthlyTrends(bookings []domain.Booking, now time.Time) []domain.MonthlyTrend {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	trends := make([]domain.MonthlyTrend, 0, 6)
	for i := 5; i >= 0; i-- {
		m := firstOfMonth.AddDate(0, -i, 0)
		t := domain.MonthlyTrend{Month: m.Format("Jan 2006")}
		for _, b := range bookings {
			if !sameMonth(b.CreatedAt, m) {
				continue
			}
			t.Bookings++
			if b.Paid() {
				t.Earnings += b.TotalAmount
			}
		}
		trends = append(trends, t)
	}
	return trends
}

// topSpaces ranks rated spaces by rating, annotating each with its
// current-month paid earnings. Equal ratings break by createdAt
// descending, then id, so the ranking is stable across calls.
func topSpaces(spaces []domain.Space, bookings []domain.Booking, now time.Time) []domain.TopSpace {
	rated := make([]domain.Space, 0, len(spaces))
	for _, sp := range spaces {
		if sp.Rating > 0 {
			rated = append(rated, sp)
		}
	}
	sort.Slice(rated, func(i, j int) bool {
		if rated[i].Rating != rated[j].Rating {
			return rated[i].Rating > rated[j].Rating
		}
		if !rated[i].CreatedAt.Equal(rated[j].CreatedAt) {
			return rated[i].CreatedAt.After(rated[j].CreatedAt)
		}
		return rated[i].ID < rated[j].ID
	})
	if len(rated) > 5 {
		rated = rated[:5]
	}

	out := make([]domain.TopSpace, 0, len(rated))
	for _, sp := range rated {
		var monthly float64
		for _, b := range bookings {
			if b.SpaceID == sp.ID && b.Paid() && sameMonth(b.CreatedAt, now) {
				monthly += b.TotalAmount
			}
		}
		out = append(out, domain.TopSpace{
			ID:              sp.ID,
			Title:           sp.Title,
			Rating:          sp.Rating,
			TotalReviews:    sp.TotalReviews,
			MonthlyEarnings: monthly,
		})
	}
	return out
}

func (s *AnalyticsService) PlatformAnalytics(ctx context.Context) (domain.PlatformAnalytics, error) {
	var cached domain.PlatformAnalytics
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, platformAnalyticsKey, &cached); ok {
			return cached, nil
		}
	}

	spaces, err := s.repo.ListSpaces(ctx)
	if err != nil {
		return domain.PlatformAnalytics{}, err
	}
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return domain.PlatformAnalytics{}, err
	}
	bookings, err := s.repo.ListBookings(ctx)
	if err != nil {
		return domain.PlatformAnalytics{}, err
	}
	reviews, err := s.repo.ListReviews(ctx)
	if err != nil {
		return domain.PlatformAnalytics{}, err
	}

	ov := domain.PlatformOverview{
		TotalSpaces:   len(spaces),
		TotalUsers:    len(users),
		TotalBookings: len(bookings),
		TotalReviews:  len(reviews),
	}
	var ratingSum float64
	var rated int
	cities := map[string]int{}
	types := map[domain.SpaceType]int{}
	for _, sp := range spaces {
		if sp.IsAvailable {
			ov.AvailableSpaces++
		}
		if sp.Rating > 0 {
			ratingSum += sp.Rating
			rated++
		}
		cities[sp.City]++
		types[sp.SpaceType]++
	}
	if rated > 0 {
		ov.AverageSpaceRating = ratingSum / float64(rated)
	}
	for _, b := range bookings {
		if b.Paid() {
			ov.TotalRevenue += b.TotalAmount
		}
	}

	out := domain.PlatformAnalytics{
		Overview: ov,
		Distributions: domain.PlatformDistributions{
			Cities:     cityCounts(cities),
			SpaceTypes: typeCounts(types),
		},
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, platformAnalyticsKey, out, int(s.cacheTTL.Seconds()))
	}
	return out, nil
}

func cityCounts(m map[string]int) []domain.CityCount {
	out := make([]domain.CityCount, 0, len(m))
	for city, n := range m {
		out = append(out, domain.CityCount{City: city, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].City < out[j].City
	})
	return out
}

func typeCounts(m map[domain.SpaceType]int) []domain.SpaceTypeCount {
	out := make([]domain.SpaceTypeCount, 0, len(m))
	for t, n := range m {
		out = append(out, domain.SpaceTypeCount{Type: t, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Type < out[j].Type
	})
	return out
}
