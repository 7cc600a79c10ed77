package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"holdhive/internal/domain"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var u domain.User
	var phone, bio, joined sql.NullString
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&phone,
		&u.Rating,
		&u.TotalReviews,
		&u.IsVerified,
		&bio,
		&joined,
	); err != nil {
		return domain.User{}, err
	}
	if phone.Valid {
		s := phone.String
		u.Phone = &s
	}
	if bio.Valid {
		s := bio.String
		u.Bio = &s
	}
	if joined.Valid {
		s := joined.String
		u.JoinedDate = &s
	}
	return u, nil
}

func scanSpace(row rowScanner) (domain.Space, error) {
	var s domain.Space
	var spaceType string
	var sizeSqFt, lat, lon sql.NullFloat64
	var amenities, security []byte
	if err := row.Scan(
		&s.ID,
		&s.OwnerID,
		&s.Title,
		&s.Description,
		&s.Address,
		&s.City,
		&s.PricePerMonth,
		&spaceType,
		&s.Size,
		&sizeSqFt,
		&amenities,
		&security,
		&s.MinimumRentalPeriod,
		&s.AccessHours,
		&s.IsAvailable,
		&s.Rating,
		&s.TotalReviews,
		&lat,
		&lon,
		&s.CreatedAt,
		&s.ViewCount,
		&s.FavoriteCount,
	); err != nil {
		return domain.Space{}, err
	}
	s.SpaceType = domain.SpaceType(spaceType)
	if sizeSqFt.Valid {
		f := sizeSqFt.Float64
		s.SizeInSqFt = &f
	}
	if lat.Valid {
		f := lat.Float64
		s.Latitude = &f
	}
	if lon.Valid {
		f := lon.Float64
		s.Longitude = &f
	}
	_ = json.Unmarshal(amenities, &s.Amenities)
	_ = json.Unmarshal(security, &s.SecurityFeatures)
	return s, nil
}

func scanBooking(row rowScanner) (domain.Booking, error) {
	var b domain.Booking
	var status, payment string
	var instructions, cancellation sql.NullString
	if err := row.Scan(
		&b.ID,
		&b.SpaceID,
		&b.RenterID,
		&b.OwnerID,
		&b.StartDate,
		&b.EndDate,
		&b.TotalAmount,
		&status,
		&payment,
		&instructions,
		&cancellation,
		&b.CreatedAt,
	); err != nil {
		return domain.Booking{}, err
	}
	b.Status = domain.BookingStatus(status)
	b.PaymentStatus = domain.PaymentStatus(payment)
	if instructions.Valid {
		s := instructions.String
		b.SpecialInstructions = &s
	}
	if cancellation.Valid {
		s := cancellation.String
		b.CancellationReason = &s
	}
	return b, nil
}

func scanReview(row rowScanner) (domain.Review, error) {
	var rv domain.Review
	var reviewType string
	var comment sql.NullString
	if err := row.Scan(
		&rv.ID,
		&rv.BookingID,
		&rv.SpaceID,
		&rv.ReviewerID,
		&rv.RevieweeID,
		&rv.Rating,
		&comment,
		&reviewType,
		&rv.CreatedAt,
	); err != nil {
		return domain.Review{}, err
	}
	rv.ReviewType = domain.ReviewType(reviewType)
	if comment.Valid {
		s := comment.String
		rv.Comment = &s
	}
	return rv, nil
}

// placeholders renders "?,?,?" for n args.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func (r *Repo) GetUser(ctx context.Context, id string) (domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, getUserSQL, id))
	if err == sql.ErrNoRows {
		return domain.User{}, domain.ErrNotFound
	}
	return u, err
}

func (r *Repo) GetUsers(ctx context.Context, ids []string) (map[string]domain.User, error) {
	if len(ids) == 0 {
		return map[string]domain.User{}, nil
	}
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	rows, err := r.db.QueryContext(ctx, selectUsersPrefix+" WHERE id IN ("+placeholders(len(ids))+")", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]domain.User, len(ids))
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out[u.ID] = u
	}
	return out, rows.Err()
}

func (r *Repo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, selectUsersPrefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *Repo) GetSpace(ctx context.Context, id string) (domain.Space, error) {
	s, err := scanSpace(r.db.QueryRowContext(ctx, getSpaceSQL, id))
	if err == sql.ErrNoRows {
		return domain.Space{}, domain.ErrNotFound
	}
	return s, err
}

func (r *Repo) listSpaces(ctx context.Context, query string, args ...any) ([]domain.Space, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Space
	for rows.Next() {
		s, err := scanSpace(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *Repo) ListSpaces(ctx context.Context) ([]domain.Space, error) {
	return r.listSpaces(ctx, listSpacesSQL)
}

func (r *Repo) ListAvailableSpaces(ctx context.Context) ([]domain.Space, error) {
	return r.listSpaces(ctx, listAvailableSpacesSQL)
}

func (r *Repo) ListSpacesByOwner(ctx context.Context, ownerID string) ([]domain.Space, error) {
	return r.listSpaces(ctx, listSpacesByOwnerSQL, ownerID)
}

func (r *Repo) GetBooking(ctx context.Context, id string) (domain.Booking, error) {
	b, err := scanBooking(r.db.QueryRowContext(ctx, getBookingSQL, id))
	if err == sql.ErrNoRows {
		return domain.Booking{}, domain.ErrNotFound
	}
	return b, err
}

func (r *Repo) listBookings(ctx context.Context, query string, args ...any) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *Repo) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return r.listBookings(ctx, listBookingsSQL)
}

func (r *Repo) ListBookingsForSpaces(ctx context.Context, spaceIDs []string) ([]domain.Booking, error) {
	if len(spaceIDs) == 0 {
		return nil, nil
	}
	args := make([]any, len(spaceIDs))
	for i, id := range spaceIDs {
		args[i] = id
	}
	return r.listBookings(ctx, selectBookingsPrefix+" WHERE space_id IN ("+placeholders(len(spaceIDs))+") ORDER BY created_at, id", args...)
}

func (r *Repo) ListBookingsByRenter(ctx context.Context, renterID string) ([]domain.Booking, error) {
	return r.listBookings(ctx, listBookingsByRenterSQL, renterID)
}

func (r *Repo) ListBookingsByOwner(ctx context.Context, ownerID string) ([]domain.Booking, error) {
	return r.listBookings(ctx, listBookingsByOwnerSQL, ownerID)
}

func (r *Repo) listReviews(ctx context.Context, query string, args ...any) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Review
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r *Repo) ListReviews(ctx context.Context) ([]domain.Review, error) {
	return r.listReviews(ctx, listReviewsSQL)
}

func (r *Repo) ListSpaceReviews(ctx context.Context, spaceID string) ([]domain.Review, error) {
	return r.listReviews(ctx, listSpaceReviewsSQL, spaceID)
}

func (r *Repo) ListReviewsByReviewee(ctx context.Context, revieweeID string) ([]domain.Review, error) {
	return r.listReviews(ctx, listReviewsByRevieweeSQL, revieweeID)
}

func (r *Repo) GetFavorite(ctx context.Context, userID, spaceID string) (domain.Favorite, error) {
	var f domain.Favorite
	err := r.db.QueryRowContext(ctx, getFavoriteSQL, userID, spaceID).
		Scan(&f.ID, &f.UserID, &f.SpaceID, &f.CreatedAt)
	if err == sql.ErrNoRows {
		return domain.Favorite{}, domain.ErrNotFound
	}
	return f, err
}

func (r *Repo) ListFavoritesByUser(ctx context.Context, userID string) ([]domain.Favorite, error) {
	rows, err := r.db.QueryContext(ctx, listFavoritesByUserSQL, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Favorite
	for rows.Next() {
		var f domain.Favorite
		if err := rows.Scan(&f.ID, &f.UserID, &f.SpaceID, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *Repo) CountFavoritesBySpace(ctx context.Context, spaceID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, countFavoritesBySpaceSQL, spaceID).Scan(&n)
	return n, err
}
