package httpserver

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report json field names in validation errors
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

func decodeJSON(r *http.Request, dst any) error {
	defer func() { _, _ = io.Copy(io.Discard, r.Body) }()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if err := validate.Struct(dst); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			fields := make([]string, 0, len(errs))
			for _, fe := range errs {
				fields = append(fields, fe.Field())
			}
			return fmt.Errorf("validation failed on: %s", strings.Join(fields, ", "))
		}
		return err
	}
	return nil
}

type createSpaceRequest struct {
	OwnerID             string   `json:"ownerId" validate:"required"`
	Title               string   `json:"title" validate:"required"`
	Description         string   `json:"description" validate:"required"`
	Address             string   `json:"address" validate:"required"`
	City                string   `json:"city" validate:"required"`
	PricePerMonth       float64  `json:"pricePerMonth" validate:"gt=0"`
	SpaceType           string   `json:"spaceType" validate:"required,oneof=room garage basement attic storage_unit other"`
	Size                string   `json:"size"`
	SizeInSqFt          *float64 `json:"sizeInSqFt" validate:"omitempty,gt=0"`
	Amenities           []string `json:"amenities"`
	SecurityFeatures    []string `json:"securityFeatures"`
	MinimumRentalPeriod int      `json:"minimumRentalPeriod" validate:"min=1"`
	AccessHours         string   `json:"accessHours"`
	Latitude            *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude           *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

type updateAvailabilityRequest struct {
	IsAvailable *bool `json:"isAvailable" validate:"required"`
}

type createBookingRequest struct {
	SpaceID             string  `json:"spaceId" validate:"required"`
	RenterID            string  `json:"renterId" validate:"required"`
	StartDate           string  `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate             string  `json:"endDate" validate:"required,datetime=2006-01-02"`
	TotalAmount         float64 `json:"totalAmount" validate:"gt=0"`
	SpecialInstructions *string `json:"specialInstructions"`
}

type updateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed active completed cancelled"`
}

type updateBookingPaymentRequest struct {
	PaymentStatus string `json:"paymentStatus" validate:"required,oneof=pending paid refunded failed"`
}

type createReviewRequest struct {
	BookingID  string  `json:"bookingId" validate:"required"`
	SpaceID    string  `json:"spaceId" validate:"required"`
	ReviewerID string  `json:"reviewerId" validate:"required"`
	RevieweeID string  `json:"revieweeId" validate:"required"`
	Rating     int     `json:"rating" validate:"min=1,max=5"`
	Comment    *string `json:"comment"`
	ReviewType string  `json:"reviewType" validate:"required,oneof=space renter"`
}

// ---- query helpers ----

func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return n, nil
}

func queryFloat(r *http.Request, key string) (*float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", key)
	}
	return &f, nil
}

func queryStr(r *http.Request, key string) *string {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil
	}
	return &raw
}
