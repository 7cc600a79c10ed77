package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"holdhive/internal/app"
	"holdhive/internal/domain"
)

var analyticsNow = time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return analyticsNow }

func TestOwnerAnalytics_PaidEarningsOnly(t *testing.T) {
	repo := newMemRepo()
	repo.users["own-1"] = domain.User{ID: "own-1", Name: "Sarah"}
	repo.spaces = []domain.Space{
		{ID: "s1", OwnerID: "own-1", IsAvailable: true, Rating: 4.5, CreatedAt: analyticsNow.AddDate(0, -6, 0)},
		{ID: "s2", OwnerID: "own-1", IsAvailable: false, Rating: 0, CreatedAt: analyticsNow.AddDate(0, -3, 0)},
	}
	repo.bookings = []domain.Booking{
		{ID: "b1", SpaceID: "s1", TotalAmount: 450, Status: domain.BookingActive, PaymentStatus: domain.PaymentPaid, CreatedAt: analyticsNow},
		{ID: "b2", SpaceID: "s1", TotalAmount: 200, Status: domain.BookingPending, PaymentStatus: domain.PaymentPending, CreatedAt: analyticsNow},
		{ID: "b3", SpaceID: "s2", TotalAmount: 300, Status: domain.BookingCompleted, PaymentStatus: domain.PaymentRefunded, CreatedAt: analyticsNow.AddDate(0, -2, 0)},
	}
	a := app.NewAnalyticsService(repo, nil, time.Minute, fixedClock)

	got, err := a.OwnerAnalytics(context.Background(), "own-1")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	ov := got.Overview
	if ov.TotalSpaces != 2 || ov.AvailableSpaces != 1 || ov.OccupiedSpaces != 1 {
		t.Fatalf("unexpected space counts: %+v", ov)
	}
	if ov.TotalBookings != 3 || ov.ActiveBookings != 1 || ov.CompletedBookings != 1 || ov.PendingBookings != 1 {
		t.Fatalf("unexpected booking counts: %+v", ov)
	}
	if ov.TotalEarnings != 450 {
		t.Fatalf("total earnings must count paid bookings only, got %v", ov.TotalEarnings)
	}
	if ov.MonthlyEarnings != 450 {
		t.Fatalf("monthly earnings: got %v, want 450", ov.MonthlyEarnings)
	}
	// s2 has rating 0 and must not drag the average down.
	if ov.AverageRating != 4.5 {
		t.Fatalf("average rating: got %v, want 4.5", ov.AverageRating)
	}
}

func TestOwnerAnalytics_TrendsSixBucketsOldestFirst(t *testing.T) {
	repo := newMemRepo()
	repo.users["own-1"] = domain.User{ID: "own-1"}
	repo.spaces = []domain.Space{{ID: "s1", OwnerID: "own-1", Rating: 4, CreatedAt: analyticsNow.AddDate(-1, 0, 0)}}
	repo.bookings = []domain.Booking{
		{ID: "b1", SpaceID: "s1", TotalAmount: 100, PaymentStatus: domain.PaymentPaid, CreatedAt: time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)},
		{ID: "b2", SpaceID: "s1", TotalAmount: 80, PaymentStatus: domain.PaymentPending, CreatedAt: time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC)},
		{ID: "b3", SpaceID: "s1", TotalAmount: 250, PaymentStatus: domain.PaymentPaid, CreatedAt: time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)},
		// Outside the six-month window, must not appear anywhere.
		{ID: "b4", SpaceID: "s1", TotalAmount: 999, PaymentStatus: domain.PaymentPaid, CreatedAt: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)},
	}
	a := app.NewAnalyticsService(repo, nil, time.Minute, fixedClock)

	got, err := a.OwnerAnalytics(context.Background(), "own-1")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	trends := got.Trends
	if len(trends) != 6 {
		t.Fatalf("want 6 buckets, got %d", len(trends))
	}
	wantMonths := []string{"Mar 2026", "Apr 2026", "May 2026", "Jun 2026", "Jul 2026", "Aug 2026"}
	for i, w := range wantMonths {
		if trends[i].Month != w {
			t.Fatalf("bucket %d: got %q, want %q", i, trends[i].Month, w)
		}
	}
	// March: two bookings counted, only the paid one contributes earnings.
	if trends[0].Bookings != 2 || trends[0].Earnings != 100 {
		t.Fatalf("march bucket: %+v", trends[0])
	}
	if trends[5].Bookings != 1 || trends[5].Earnings != 250 {
		t.Fatalf("august bucket: %+v", trends[5])
	}
	for _, i := range []int{1, 2, 3, 4} {
		if trends[i].Bookings != 0 || trends[i].Earnings != 0 {
			t.Fatalf("bucket %d should be empty: %+v", i, trends[i])
		}
	}
}

func TestOwnerAnalytics_TopSpacesRankingAndTies(t *testing.T) {
	older := analyticsNow.AddDate(0, -8, 0)
	newer := analyticsNow.AddDate(0, -1, 0)
	repo := newMemRepo()
	repo.users["own-1"] = domain.User{ID: "own-1"}
	repo.spaces = []domain.Space{
		{ID: "s-a", OwnerID: "own-1", Title: "A", Rating: 4.2, CreatedAt: older},
		{ID: "s-b", OwnerID: "own-1", Title: "B", Rating: 4.8, CreatedAt: older},
		{ID: "s-c", OwnerID: "own-1", Title: "C", Rating: 4.2, CreatedAt: newer},
		{ID: "s-d", OwnerID: "own-1", Title: "D", Rating: 0, CreatedAt: newer},
		{ID: "s-e", OwnerID: "own-1", Title: "E", Rating: 3.9, CreatedAt: newer},
		{ID: "s-f", OwnerID: "own-1", Title: "F", Rating: 3.5, CreatedAt: newer},
		{ID: "s-g", OwnerID: "own-1", Title: "G", Rating: 3.1, CreatedAt: newer},
		{ID: "s-h", OwnerID: "own-1", Title: "H", Rating: 2.9, CreatedAt: newer},
	}
	repo.bookings = []domain.Booking{
		{ID: "b1", SpaceID: "s-b", TotalAmount: 120, PaymentStatus: domain.PaymentPaid, CreatedAt: analyticsNow},
		{ID: "b2", SpaceID: "s-b", TotalAmount: 60, PaymentStatus: domain.PaymentPaid, CreatedAt: analyticsNow.AddDate(0, -1, 0)},
	}
	a := app.NewAnalyticsService(repo, nil, time.Minute, fixedClock)

	got, err := a.OwnerAnalytics(context.Background(), "own-1")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	top := got.TopPerformingSpaces
	if len(top) != 5 {
		t.Fatalf("want top 5, got %d", len(top))
	}
	// 4.2 tie breaks to the newer listing; unrated s-d never ranks.
	wantOrder := []string{"s-b", "s-c", "s-a", "s-e", "s-f"}
	for i, w := range wantOrder {
		if top[i].ID != w {
			t.Fatalf("rank %d: got %s, want %s", i, top[i].ID, w)
		}
	}
	// Only the current-month paid booking counts toward monthly earnings.
	if top[0].MonthlyEarnings != 120 {
		t.Fatalf("s-b monthly earnings: got %v, want 120", top[0].MonthlyEarnings)
	}
}

func TestOwnerAnalytics_NoSpaces(t *testing.T) {
	repo := newMemRepo()
	repo.users["own-1"] = domain.User{ID: "own-1"}
	a := app.NewAnalyticsService(repo, nil, time.Minute, fixedClock)

	got, err := a.OwnerAnalytics(context.Background(), "own-1")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got.Overview != (domain.OwnerOverview{}) {
		t.Fatalf("expected zeroed overview, got %+v", got.Overview)
	}
	if len(got.Trends) != 6 {
		t.Fatalf("trends must still have 6 buckets, got %d", len(got.Trends))
	}
	if len(got.TopPerformingSpaces) != 0 {
		t.Fatalf("expected no top spaces, got %+v", got.TopPerformingSpaces)
	}
}

func TestOwnerAnalytics_UnknownOwner(t *testing.T) {
	a := app.NewAnalyticsService(newMemRepo(), nil, time.Minute, fixedClock)
	_, err := a.OwnerAnalytics(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestPlatformAnalytics_DistributionsAndCache(t *testing.T) {
	repo := newMemRepo()
	repo.users["u1"] = domain.User{ID: "u1"}
	repo.users["u2"] = domain.User{ID: "u2"}
	repo.spaces = []domain.Space{
		{ID: "s1", City: "Dublin", SpaceType: domain.SpaceTypeGarage, IsAvailable: true, Rating: 4},
		{ID: "s2", City: "Dublin", SpaceType: domain.SpaceTypeRoom, IsAvailable: true, Rating: 5},
		{ID: "s3", City: "Cork", SpaceType: domain.SpaceTypeGarage, IsAvailable: false, Rating: 0},
		{ID: "s4", City: "Galway", SpaceType: domain.SpaceTypeAttic, IsAvailable: true, Rating: 3},
	}
	repo.bookings = []domain.Booking{
		{ID: "b1", TotalAmount: 650, PaymentStatus: domain.PaymentPaid},
		{ID: "b2", TotalAmount: 200, PaymentStatus: domain.PaymentPending},
	}
	repo.reviews = []domain.Review{{ID: "r1", ReviewType: domain.ReviewTypeSpace}}
	cache := &fakeCache{}
	a := app.NewAnalyticsService(repo, cache, time.Minute, fixedClock)

	got, err := a.PlatformAnalytics(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	ov := got.Overview
	if ov.TotalSpaces != 4 || ov.AvailableSpaces != 3 || ov.TotalUsers != 2 || ov.TotalBookings != 2 || ov.TotalReviews != 1 {
		t.Fatalf("unexpected overview: %+v", ov)
	}
	if ov.TotalRevenue != 650 {
		t.Fatalf("revenue must count paid bookings only, got %v", ov.TotalRevenue)
	}
	if ov.AverageSpaceRating != 4 {
		t.Fatalf("average rating over rated spaces: got %v, want 4", ov.AverageSpaceRating)
	}

	cities := got.Distributions.Cities
	if len(cities) != 3 || cities[0].City != "Dublin" || cities[0].Count != 2 {
		t.Fatalf("unexpected cities: %+v", cities)
	}
	// Count ties order alphabetically.
	if cities[1].City != "Cork" || cities[2].City != "Galway" {
		t.Fatalf("tied cities out of order: %+v", cities)
	}
	types := got.Distributions.SpaceTypes
	if types[0].Type != domain.SpaceTypeGarage || types[0].Count != 2 {
		t.Fatalf("unexpected types: %+v", types)
	}
	if types[1].Type != domain.SpaceTypeAttic || types[2].Type != domain.SpaceTypeRoom {
		t.Fatalf("tied types out of order: %+v", types)
	}

	// Second call is served from cache: mutate the repo and re-read.
	repo.spaces = repo.spaces[:1]
	again, err := a.PlatformAnalytics(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if again.Overview.TotalSpaces != 4 {
		t.Fatalf("expected cached overview, got %+v", again.Overview)
	}
}
