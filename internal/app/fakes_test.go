package app_test

import (
	"context"
	"encoding/json"
	"sort"

	"holdhive/internal/domain"
)

// ---- fakes ----

// memRepo is an in-memory domain.Repository shared by the service tests.
type memRepo struct {
	users     map[string]domain.User
	spaces    []domain.Space
	bookings  []domain.Booking
	reviews   []domain.Review
	favorites []domain.Favorite
}

func newMemRepo() *memRepo {
	return &memRepo{users: map[string]domain.User{}}
}

func (m *memRepo) InsertUser(ctx context.Context, u domain.User) error {
	m.users[u.ID] = u
	return nil
}

func (m *memRepo) GetUser(ctx context.Context, id string) (domain.User, error) {
	u, ok := m.users[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (m *memRepo) GetUsers(ctx context.Context, ids []string) (map[string]domain.User, error) {
	out := map[string]domain.User{}
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

func (m *memRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memRepo) UpdateUserRating(ctx context.Context, id string, rating float64, totalReviews int) error {
	u, ok := m.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.Rating = rating
	u.TotalReviews = totalReviews
	m.users[id] = u
	return nil
}

func (m *memRepo) InsertSpace(ctx context.Context, s domain.Space) error {
	m.spaces = append(m.spaces, s)
	return nil
}

func (m *memRepo) GetSpace(ctx context.Context, id string) (domain.Space, error) {
	for _, s := range m.spaces {
		if s.ID == id {
			return s, nil
		}
	}
	return domain.Space{}, domain.ErrNotFound
}

func (m *memRepo) ListSpaces(ctx context.Context) ([]domain.Space, error) {
	return append([]domain.Space(nil), m.spaces...), nil
}

func (m *memRepo) ListAvailableSpaces(ctx context.Context) ([]domain.Space, error) {
	var out []domain.Space
	for _, s := range m.spaces {
		if s.IsAvailable {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memRepo) ListSpacesByOwner(ctx context.Context, ownerID string) ([]domain.Space, error) {
	var out []domain.Space
	for _, s := range m.spaces {
		if s.OwnerID == ownerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memRepo) SetSpaceAvailability(ctx context.Context, id string, available bool) error {
	for i := range m.spaces {
		if m.spaces[i].ID == id {
			m.spaces[i].IsAvailable = available
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memRepo) UpdateSpaceRating(ctx context.Context, id string, rating float64, totalReviews int) error {
	for i := range m.spaces {
		if m.spaces[i].ID == id {
			m.spaces[i].Rating = rating
			m.spaces[i].TotalReviews = totalReviews
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memRepo) AdjustFavoriteCount(ctx context.Context, id string, delta int) error {
	for i := range m.spaces {
		if m.spaces[i].ID == id {
			m.spaces[i].FavoriteCount += delta
			if m.spaces[i].FavoriteCount < 0 {
				m.spaces[i].FavoriteCount = 0
			}
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memRepo) InsertBooking(ctx context.Context, b domain.Booking) error {
	m.bookings = append(m.bookings, b)
	return nil
}

func (m *memRepo) GetBooking(ctx context.Context, id string) (domain.Booking, error) {
	for _, b := range m.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return domain.Booking{}, domain.ErrNotFound
}

func (m *memRepo) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return append([]domain.Booking(nil), m.bookings...), nil
}

func (m *memRepo) ListBookingsForSpaces(ctx context.Context, spaceIDs []string) ([]domain.Booking, error) {
	want := map[string]bool{}
	for _, id := range spaceIDs {
		want[id] = true
	}
	var out []domain.Booking
	for _, b := range m.bookings {
		if want[b.SpaceID] {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memRepo) ListBookingsByRenter(ctx context.Context, renterID string) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range m.bookings {
		if b.RenterID == renterID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memRepo) ListBookingsByOwner(ctx context.Context, ownerID string) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range m.bookings {
		if b.OwnerID == ownerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memRepo) UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			m.bookings[i].Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memRepo) UpdateBookingPayment(ctx context.Context, id string, status domain.PaymentStatus) error {
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			m.bookings[i].PaymentStatus = status
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memRepo) InsertReview(ctx context.Context, r domain.Review) error {
	m.reviews = append(m.reviews, r)
	return nil
}

func (m *memRepo) ListReviews(ctx context.Context) ([]domain.Review, error) {
	return append([]domain.Review(nil), m.reviews...), nil
}

func (m *memRepo) ListSpaceReviews(ctx context.Context, spaceID string) ([]domain.Review, error) {
	var out []domain.Review
	for _, r := range m.reviews {
		if r.SpaceID == spaceID && r.ReviewType == domain.ReviewTypeSpace {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRepo) ListReviewsByReviewee(ctx context.Context, revieweeID string) ([]domain.Review, error) {
	var out []domain.Review
	for _, r := range m.reviews {
		if r.RevieweeID == revieweeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRepo) InsertFavorite(ctx context.Context, f domain.Favorite) error {
	m.favorites = append(m.favorites, f)
	return nil
}

func (m *memRepo) GetFavorite(ctx context.Context, userID, spaceID string) (domain.Favorite, error) {
	for _, f := range m.favorites {
		if f.UserID == userID && f.SpaceID == spaceID {
			return f, nil
		}
	}
	return domain.Favorite{}, domain.ErrNotFound
}

func (m *memRepo) DeleteFavorite(ctx context.Context, userID, spaceID string) error {
	for i, f := range m.favorites {
		if f.UserID == userID && f.SpaceID == spaceID {
			m.favorites = append(m.favorites[:i], m.favorites[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memRepo) ListFavoritesByUser(ctx context.Context, userID string) ([]domain.Favorite, error) {
	var out []domain.Favorite
	for _, f := range m.favorites {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *memRepo) CountFavoritesBySpace(ctx context.Context, spaceID string) (int, error) {
	n := 0
	for _, f := range m.favorites {
		if f.SpaceID == spaceID {
			n++
		}
	}
	return n, nil
}

// fakeCache stores marshaled values and records key traffic so tests
// can assert on invalidation.
type fakeCache struct {
	store map[string][]byte
	dels  []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	raw, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = raw
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	c.dels = append(c.dels, key)
	return nil
}

// ---- helpers ----

func ptr(s string) *string     { return &s }
func pfloat(f float64) *float64 { return &f }
