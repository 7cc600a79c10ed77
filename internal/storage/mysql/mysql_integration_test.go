//go:build integration || !unit

package mysql_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"holdhive/internal/domain"
	mysqlrepo "holdhive/internal/storage/mysql"
)

// ---------- small helpers ----------
func pstr(s string) *string     { return &s }
func pfloat(f float64) *float64 { return &f }

func mustEnv(t *testing.T, k string) string {
	t.Helper()
	v := os.Getenv(k)
	if v == "" {
		t.Fatalf("%s not set; export it (e.g. MIGRATIONS_DIR=/path/to/sql)", k)
	}
	return v
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := mustEnv(t, "MIGRATIONS_DIR")

	st, err := os.Stat(dir)
	if err != nil || !st.IsDir() {
		t.Fatalf("MIGRATIONS_DIR=%s is not a directory or missing", dir)
	}

	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)

	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}

	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=holdhive",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:%s@tcp(127.0.0.1:%s)/%s?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		"root", hostPort, "holdhive")

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)
	return db
}

// ---------- the test ----------
func TestRepo_MySQL_InsertAndQuery(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	now := time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC)

	owner := domain.User{
		ID: "usr-owner", Name: "Sarah Johnson", Email: "sarah@example.com",
		Phone: pstr("+353 87 123 4567"), Rating: 4.8, TotalReviews: 24,
		IsVerified: true, JoinedDate: pstr("2023-06-15"),
	}
	renter := domain.User{ID: "usr-renter", Name: "Aoife Byrne", Email: "aoife@example.com"}
	if err := repo.InsertUser(ctx, owner); err != nil {
		t.Fatalf("InsertUser: %v", err)
	}
	if err := repo.InsertUser(ctx, renter); err != nil {
		t.Fatalf("InsertUser: %v", err)
	}

	sp := domain.Space{
		ID: "spc-1", OwnerID: "usr-owner",
		Title: "Spacious Garage Storage", Description: "Secure garage",
		Address: "15 Dame Street", City: "Dublin",
		PricePerMonth: 180, SpaceType: domain.SpaceTypeGarage,
		Size: "20x12 feet", SizeInSqFt: pfloat(240),
		Amenities:        []string{"24_7_access", "security"},
		SecurityFeatures: []string{"cctv"},
		MinimumRentalPeriod: 1, AccessHours: "24/7",
		IsAvailable: true, Rating: 4.8, TotalReviews: 15,
		Latitude: pfloat(53.3440), Longitude: pfloat(-6.2675),
		CreatedAt: now,
	}
	sp2 := domain.Space{
		ID: "spc-2", OwnerID: "usr-owner",
		Title: "Attic Storage", City: "Dublin",
		PricePerMonth: 70, SpaceType: domain.SpaceTypeAttic,
		Amenities: []string{}, SecurityFeatures: []string{},
		IsAvailable: false, CreatedAt: now.Add(time.Hour),
	}
	if err := repo.InsertSpace(ctx, sp); err != nil {
		t.Fatalf("InsertSpace: %v", err)
	}
	if err := repo.InsertSpace(ctx, sp2); err != nil {
		t.Fatalf("InsertSpace: %v", err)
	}

	// Point read round-trips optional fields and tags.
	got, err := repo.GetSpace(ctx, "spc-1")
	if err != nil {
		t.Fatalf("GetSpace: %v", err)
	}
	if got.Title != sp.Title || got.City != "Dublin" || got.SpaceType != domain.SpaceTypeGarage {
		t.Fatalf("unexpected space: %+v", got)
	}
	if got.Latitude == nil || *got.Latitude != 53.3440 || got.SizeInSqFt == nil || *got.SizeInSqFt != 240 {
		t.Fatalf("optional fields lost: %+v", got)
	}
	if len(got.Amenities) != 2 || got.Amenities[0] != "24_7_access" {
		t.Fatalf("amenities lost: %+v", got.Amenities)
	}

	// Availability listing excludes spc-2 until it is flipped back on.
	avail, err := repo.ListAvailableSpaces(ctx)
	if err != nil {
		t.Fatalf("ListAvailableSpaces: %v", err)
	}
	if len(avail) != 1 || avail[0].ID != "spc-1" {
		t.Fatalf("unexpected available spaces: %+v", avail)
	}
	if err := repo.SetSpaceAvailability(ctx, "spc-2", true); err != nil {
		t.Fatalf("SetSpaceAvailability: %v", err)
	}
	avail, _ = repo.ListAvailableSpaces(ctx)
	if len(avail) != 2 {
		t.Fatalf("availability flip not visible: %+v", avail)
	}

	// Batched user read returns only known ids.
	users, err := repo.GetUsers(ctx, []string{"usr-owner", "usr-renter", "ghost"})
	if err != nil {
		t.Fatalf("GetUsers: %v", err)
	}
	if len(users) != 2 || users["usr-owner"].Name != "Sarah Johnson" {
		t.Fatalf("unexpected users: %+v", users)
	}

	b := domain.Booking{
		ID: "bkg-1", SpaceID: "spc-1", RenterID: "usr-renter", OwnerID: "usr-owner",
		StartDate: "2026-09-01", EndDate: "2026-12-01", TotalAmount: 540,
		Status: domain.BookingPending, PaymentStatus: domain.PaymentPending,
		SpecialInstructions: pstr("call ahead"), CreatedAt: now,
	}
	if err := repo.InsertBooking(ctx, b); err != nil {
		t.Fatalf("InsertBooking: %v", err)
	}
	if err := repo.UpdateBookingStatus(ctx, "bkg-1", domain.BookingActive); err != nil {
		t.Fatalf("UpdateBookingStatus: %v", err)
	}
	if err := repo.UpdateBookingPayment(ctx, "bkg-1", domain.PaymentPaid); err != nil {
		t.Fatalf("UpdateBookingPayment: %v", err)
	}

	forSpaces, err := repo.ListBookingsForSpaces(ctx, []string{"spc-1", "spc-2"})
	if err != nil {
		t.Fatalf("ListBookingsForSpaces: %v", err)
	}
	if len(forSpaces) != 1 || forSpaces[0].Status != domain.BookingActive || !forSpaces[0].Paid() {
		t.Fatalf("unexpected bookings: %+v", forSpaces)
	}
	if forSpaces[0].SpecialInstructions == nil || *forSpaces[0].SpecialInstructions != "call ahead" {
		t.Fatalf("instructions lost: %+v", forSpaces[0])
	}

	rv := domain.Review{
		ID: "rev-1", BookingID: "bkg-1", SpaceID: "spc-1",
		ReviewerID: "usr-renter", RevieweeID: "usr-owner",
		Rating: 5, Comment: pstr("Great space"),
		ReviewType: domain.ReviewTypeSpace, CreatedAt: now,
	}
	renterRv := domain.Review{
		ID: "rev-2", BookingID: "bkg-1", SpaceID: "spc-1",
		ReviewerID: "usr-owner", RevieweeID: "usr-renter",
		Rating: 4, ReviewType: domain.ReviewTypeRenter, CreatedAt: now,
	}
	if err := repo.InsertReview(ctx, rv); err != nil {
		t.Fatalf("InsertReview: %v", err)
	}
	if err := repo.InsertReview(ctx, renterRv); err != nil {
		t.Fatalf("InsertReview: %v", err)
	}

	// Space review listing excludes the renter-type review.
	reviews, err := repo.ListSpaceReviews(ctx, "spc-1")
	if err != nil {
		t.Fatalf("ListSpaceReviews: %v", err)
	}
	if len(reviews) != 1 || reviews[0].ID != "rev-1" {
		t.Fatalf("unexpected reviews: %+v", reviews)
	}

	if err := repo.UpdateSpaceRating(ctx, "spc-1", 5, 16); err != nil {
		t.Fatalf("UpdateSpaceRating: %v", err)
	}
	got, _ = repo.GetSpace(ctx, "spc-1")
	if got.Rating != 5 || got.TotalReviews != 16 {
		t.Fatalf("rating not persisted: %+v", got)
	}

	if _, err := repo.GetSpace(ctx, "ghost"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("missing space: want ErrNotFound, got %v", err)
	}
}

func TestRepo_MySQL_Favorites(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	now := time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC)

	if err := repo.InsertUser(ctx, domain.User{ID: "u1", Name: "Emma", Email: "emma@example.com"}); err != nil {
		t.Fatalf("InsertUser: %v", err)
	}
	if err := repo.InsertSpace(ctx, domain.Space{
		ID: "s1", OwnerID: "u1", Title: "Unit", City: "Cork",
		SpaceType: domain.SpaceTypeStorageUnit,
		Amenities: []string{}, SecurityFeatures: []string{},
		IsAvailable: true, CreatedAt: now,
	}); err != nil {
		t.Fatalf("InsertSpace: %v", err)
	}

	if err := repo.InsertFavorite(ctx, domain.Favorite{ID: "f1", UserID: "u1", SpaceID: "s1", CreatedAt: now}); err != nil {
		t.Fatalf("InsertFavorite: %v", err)
	}
	if _, err := repo.GetFavorite(ctx, "u1", "s1"); err != nil {
		t.Fatalf("GetFavorite: %v", err)
	}
	n, err := repo.CountFavoritesBySpace(ctx, "s1")
	if err != nil || n != 1 {
		t.Fatalf("CountFavoritesBySpace: %d %v", n, err)
	}

	// The counter clamps at zero no matter how far down it is pushed.
	if err := repo.AdjustFavoriteCount(ctx, "s1", -5); err != nil {
		t.Fatalf("AdjustFavoriteCount: %v", err)
	}
	sp, _ := repo.GetSpace(ctx, "s1")
	if sp.FavoriteCount != 0 {
		t.Fatalf("favorite count went negative: %d", sp.FavoriteCount)
	}

	if err := repo.DeleteFavorite(ctx, "u1", "s1"); err != nil {
		t.Fatalf("DeleteFavorite: %v", err)
	}
	if _, err := repo.GetFavorite(ctx, "u1", "s1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("deleted favorite: want ErrNotFound, got %v", err)
	}
}
