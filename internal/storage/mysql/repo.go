package mysql

import (
	"context"
	"database/sql"
	"encoding/json"

	"holdhive/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
func valF64(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}
func tagsJSON(tags []string) string {
	if tags == nil {
		tags = []string{}
	}
	b, _ := json.Marshal(tags)
	return string(b)
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) InsertUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, insertUserSQL,
		u.ID,
		u.Name,
		u.Email,
		valStr(u.Phone),
		u.Rating,
		u.TotalReviews,
		u.IsVerified,
		valStr(u.Bio),
		valStr(u.JoinedDate),
	)
	return err
}

func (r *Repo) InsertSpace(ctx context.Context, s domain.Space) error {
	_, err := r.db.ExecContext(ctx, insertSpaceSQL,
		s.ID,
		s.OwnerID,
		s.Title,
		s.Description,
		s.Address,
		s.City,
		s.PricePerMonth,
		string(s.SpaceType),
		s.Size,
		valF64(s.SizeInSqFt),
		tagsJSON(s.Amenities),
		tagsJSON(s.SecurityFeatures),
		s.MinimumRentalPeriod,
		s.AccessHours,
		s.IsAvailable,
		s.Rating,
		s.TotalReviews,
		valF64(s.Latitude),
		valF64(s.Longitude),
		s.CreatedAt,
		s.ViewCount,
		s.FavoriteCount,
	)
	return err
}

func (r *Repo) SetSpaceAvailability(ctx context.Context, id string, available bool) error {
	_, err := r.db.ExecContext(ctx, setAvailabilitySQL, available, id)
	return err
}

func (r *Repo) UpdateSpaceRating(ctx context.Context, id string, rating float64, totalReviews int) error {
	_, err := r.db.ExecContext(ctx, updateSpaceRatingSQL, rating, totalReviews, id)
	return err
}

func (r *Repo) UpdateUserRating(ctx context.Context, id string, rating float64, totalReviews int) error {
	_, err := r.db.ExecContext(ctx, updateUserRatingSQL, rating, totalReviews, id)
	return err
}

// AdjustFavoriteCount clamps at zero so double removes cannot drive the
// counter negative.
func (r *Repo) AdjustFavoriteCount(ctx context.Context, id string, delta int) error {
	_, err := r.db.ExecContext(ctx, adjustFavoriteCountSQL, delta, id)
	return err
}

func (r *Repo) InsertBooking(ctx context.Context, b domain.Booking) error {
	_, err := r.db.ExecContext(ctx, insertBookingSQL,
		b.ID,
		b.SpaceID,
		b.RenterID,
		b.OwnerID,
		b.StartDate,
		b.EndDate,
		b.TotalAmount,
		string(b.Status),
		string(b.PaymentStatus),
		valStr(b.SpecialInstructions),
		valStr(b.CancellationReason),
		b.CreatedAt,
	)
	return err
}

func (r *Repo) UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	_, err := r.db.ExecContext(ctx, updateBookingStatusSQL, string(status), id)
	return err
}

func (r *Repo) UpdateBookingPayment(ctx context.Context, id string, status domain.PaymentStatus) error {
	_, err := r.db.ExecContext(ctx, updateBookingPaymentSQL, string(status), id)
	return err
}

func (r *Repo) InsertReview(ctx context.Context, rv domain.Review) error {
	_, err := r.db.ExecContext(ctx, insertReviewSQL,
		rv.ID,
		rv.BookingID,
		rv.SpaceID,
		rv.ReviewerID,
		rv.RevieweeID,
		rv.Rating,
		valStr(rv.Comment),
		string(rv.ReviewType),
		rv.CreatedAt,
	)
	return err
}

func (r *Repo) InsertFavorite(ctx context.Context, f domain.Favorite) error {
	_, err := r.db.ExecContext(ctx, insertFavoriteSQL, f.ID, f.UserID, f.SpaceID, f.CreatedAt)
	return err
}

func (r *Repo) DeleteFavorite(ctx context.Context, userID, spaceID string) error {
	_, err := r.db.ExecContext(ctx, deleteFavoriteSQL, userID, spaceID)
	return err
}
