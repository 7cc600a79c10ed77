package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingActive    BookingStatus = "active"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingActive, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
	PaymentFailed   PaymentStatus = "failed"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentRefunded, PaymentFailed:
		return true
	}
	return false
}

type Booking struct {
	ID                  string        `json:"id"`
	SpaceID             string        `json:"spaceId"`
	RenterID            string        `json:"renterId"`
	OwnerID             string        `json:"ownerId"`
	StartDate           string        `json:"startDate"` // YYYY-MM-DD
	EndDate             string        `json:"endDate"`   // YYYY-MM-DD
	TotalAmount         float64       `json:"totalAmount"`
	Status              BookingStatus `json:"status"`
	PaymentStatus       PaymentStatus `json:"paymentStatus"`
	SpecialInstructions *string       `json:"specialInstructions,omitempty"`
	CancellationReason  *string       `json:"cancellationReason,omitempty"`
	CreatedAt           time.Time     `json:"createdAt"`
}

// Paid reports whether the booking counts toward earnings sums.
func (b Booking) Paid() bool { return b.PaymentStatus == PaymentPaid }
