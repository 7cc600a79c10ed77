package mysql

// -----------------------------------------------------------------------------
// WRITE STATEMENTS
// -----------------------------------------------------------------------------

const insertUserSQL = `
INSERT INTO users
  (id, name, email, phone, rating, total_reviews, is_verified, bio, joined_date)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const insertSpaceSQL = `
INSERT INTO spaces
  (id, owner_id, title, description, address, city, price_per_month,
   space_type, size, size_sqft, amenities, security_features,
   minimum_rental_period, access_hours, is_available, rating,
   total_reviews, latitude, longitude, created_at, view_count, favorite_count)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const setAvailabilitySQL = `
UPDATE spaces SET is_available = ? WHERE id = ?
`

const updateSpaceRatingSQL = `
UPDATE spaces SET rating = ?, total_reviews = ? WHERE id = ?
`

const updateUserRatingSQL = `
UPDATE users SET rating = ?, total_reviews = ? WHERE id = ?
`

const adjustFavoriteCountSQL = `
UPDATE spaces SET favorite_count = GREATEST(favorite_count + ?, 0) WHERE id = ?
`

const insertBookingSQL = `
INSERT INTO bookings
  (id, space_id, renter_id, owner_id, start_date, end_date, total_amount,
   status, payment_status, special_instructions, cancellation_reason, created_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const updateBookingStatusSQL = `
UPDATE bookings SET status = ? WHERE id = ?
`

const updateBookingPaymentSQL = `
UPDATE bookings SET payment_status = ? WHERE id = ?
`

const insertReviewSQL = `
INSERT INTO reviews
  (id, booking_id, space_id, reviewer_id, reviewee_id, rating, comment,
   review_type, created_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const insertFavoriteSQL = `
INSERT INTO favorites (id, user_id, space_id, created_at)
VALUES (?, ?, ?, ?)
`

const deleteFavoriteSQL = `
DELETE FROM favorites WHERE user_id = ? AND space_id = ?
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const selectUsersPrefix = `
SELECT id, name, email, phone, rating, total_reviews, is_verified, bio, joined_date
FROM users`

const getUserSQL = selectUsersPrefix + ` WHERE id = ?`

const selectSpacesPrefix = `
SELECT id, owner_id, title, description, address, city, price_per_month,
       space_type, size, size_sqft, amenities, security_features,
       minimum_rental_period, access_hours, is_available, rating,
       total_reviews, latitude, longitude, created_at, view_count, favorite_count
FROM spaces`

const getSpaceSQL = selectSpacesPrefix + ` WHERE id = ?`

// Insertion order is the contract for unsorted search results; created_at
// plus id gives a stable stand-in for it.
const listSpacesSQL = selectSpacesPrefix + ` ORDER BY created_at, id`

const listAvailableSpacesSQL = selectSpacesPrefix + ` WHERE is_available = TRUE ORDER BY created_at, id`

const listSpacesByOwnerSQL = selectSpacesPrefix + ` WHERE owner_id = ? ORDER BY created_at, id`

const selectBookingsPrefix = `
SELECT id, space_id, renter_id, owner_id, start_date, end_date, total_amount,
       status, payment_status, special_instructions, cancellation_reason, created_at
FROM bookings`

const getBookingSQL = selectBookingsPrefix + ` WHERE id = ?`

const listBookingsSQL = selectBookingsPrefix + ` ORDER BY created_at, id`

const listBookingsByRenterSQL = selectBookingsPrefix + ` WHERE renter_id = ? ORDER BY created_at, id`

const listBookingsByOwnerSQL = selectBookingsPrefix + ` WHERE owner_id = ? ORDER BY created_at, id`

const selectReviewsPrefix = `
SELECT id, booking_id, space_id, reviewer_id, reviewee_id, rating, comment,
       review_type, created_at
FROM reviews`

const listReviewsSQL = selectReviewsPrefix + ` ORDER BY created_at, id`

const listSpaceReviewsSQL = selectReviewsPrefix + ` WHERE space_id = ? AND review_type = 'space' ORDER BY created_at, id`

const listReviewsByRevieweeSQL = selectReviewsPrefix + ` WHERE reviewee_id = ? ORDER BY created_at, id`

const getFavoriteSQL = `
SELECT id, user_id, space_id, created_at
FROM favorites
WHERE user_id = ? AND space_id = ?
`

const listFavoritesByUserSQL = `
SELECT id, user_id, space_id, created_at
FROM favorites
WHERE user_id = ?
ORDER BY created_at, id
`

const countFavoritesBySpaceSQL = `
SELECT COUNT(*) FROM favorites WHERE space_id = ?
`
