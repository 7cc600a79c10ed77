package main

import (
	"time"

	"holdhive/internal/domain"
)

func strp(s string) *string   { return &s }
func f64p(f float64) *float64 { return &f }

// Demo dataset: a handful of Irish hosts with spaces around Dublin,
// Cork and Galway, plus bookings spread over recent months so the
// analytics trends have something to show.
func seedUsers() []domain.User {
	return []domain.User{
		{ID: "usr-sarah", Name: "Sarah Johnson", Email: "sarah@example.com", Phone: strp("+353 87 123 4567"), Rating: 4.8, TotalReviews: 24, IsVerified: true, JoinedDate: strp("2023-06-15")},
		{ID: "usr-michael", Name: "Michael O'Connor", Email: "michael@example.com", Phone: strp("+353 86 987 6543"), Rating: 4.9, TotalReviews: 18, IsVerified: true, JoinedDate: strp("2023-08-20")},
		{ID: "usr-emma", Name: "Emma Walsh", Email: "emma@example.com", Phone: strp("+353 85 456 7890"), Rating: 4.7, TotalReviews: 12, IsVerified: false, JoinedDate: strp("2023-09-10")},
		{ID: "usr-james", Name: "James Murphy", Email: "james@example.com", Phone: strp("+353 83 234 5678"), Rating: 4.6, TotalReviews: 8, IsVerified: true, JoinedDate: strp("2023-11-02")},
		{ID: "usr-aoife", Name: "Aoife Byrne", Email: "aoife@example.com", Phone: strp("+353 89 345 6789"), Rating: 0, TotalReviews: 0, IsVerified: false, JoinedDate: strp("2024-01-18")},
	}
}

func seedSpaces(now time.Time) []domain.Space {
	return []domain.Space{
		{
			ID: "spc-garage-dublin", OwnerID: "usr-sarah",
			Title:       "Spacious Garage Storage in City Center",
			Description: "Secure garage space perfect for storing furniture, boxes, or a small vehicle.",
			Address:     "15 Dame Street", City: "Dublin",
			PricePerMonth: 180, SpaceType: domain.SpaceTypeGarage, Size: "20x12 feet", SizeInSqFt: f64p(240),
			Amenities:        []string{"24_7_access", "security", "parking", "electricity"},
			SecurityFeatures: []string{"cctv", "locked_gate"},
			MinimumRentalPeriod: 1, AccessHours: "24/7",
			IsAvailable: true, Rating: 4.8, TotalReviews: 15,
			Latitude: f64p(53.3440), Longitude: f64p(-6.2675),
			CreatedAt: now.AddDate(0, -8, 0), ViewCount: 320, FavoriteCount: 12,
		},
		{
			ID: "spc-basement-dublin", OwnerID: "usr-sarah",
			Title:       "Clean Basement Room Near University",
			Description: "Dry basement storage close to Trinity College, ideal for student belongings.",
			Address:     "42 Pearse Street", City: "Dublin",
			PricePerMonth: 95, SpaceType: domain.SpaceTypeBasement, Size: "Medium", SizeInSqFt: f64p(120),
			Amenities:        []string{"climate_controlled", "security"},
			SecurityFeatures: []string{"alarm"},
			MinimumRentalPeriod: 3, AccessHours: "9AM-6PM",
			IsAvailable: true, Rating: 4.5, TotalReviews: 7,
			Latitude: f64p(53.3434), Longitude: f64p(-6.2499),
			CreatedAt: now.AddDate(0, -6, 0), ViewCount: 180, FavoriteCount: 6,
		},
		{
			ID: "spc-attic-dublin", OwnerID: "usr-michael",
			Title:       "Attic Storage in Quiet Neighborhood",
			Description: "Bright attic space in Rathmines for seasonal items and archives.",
			Address:     "8 Leinster Road", City: "Dublin",
			PricePerMonth: 70, SpaceType: domain.SpaceTypeAttic, Size: "Small", SizeInSqFt: f64p(80),
			Amenities:        []string{"security"},
			SecurityFeatures: []string{"locked_entry"},
			MinimumRentalPeriod: 1, AccessHours: "By appointment",
			IsAvailable: false, Rating: 4.2, TotalReviews: 4,
			Latitude: f64p(53.3215), Longitude: f64p(-6.2664),
			CreatedAt: now.AddDate(0, -5, 0), ViewCount: 95, FavoriteCount: 3,
		},
		{
			ID: "spc-unit-cork", OwnerID: "usr-michael",
			Title:       "Modern Storage Unit with Premium Access",
			Description: "Climate controlled storage unit with drive-up access near the city docks.",
			Address:     "Unit 4, Monahan Road", City: "Cork",
			PricePerMonth: 220, SpaceType: domain.SpaceTypeStorageUnit, Size: "10x10 feet", SizeInSqFt: f64p(100),
			Amenities:        []string{"climate_controlled", "24_7_access", "security", "parking"},
			SecurityFeatures: []string{"cctv", "alarm", "keypad"},
			MinimumRentalPeriod: 1, AccessHours: "24/7",
			IsAvailable: true, Rating: 4.9, TotalReviews: 21,
			Latitude: f64p(51.8960), Longitude: f64p(-8.4610),
			CreatedAt: now.AddDate(0, -4, 0), ViewCount: 410, FavoriteCount: 18,
		},
		{
			ID: "spc-room-cork", OwnerID: "usr-emma",
			Title:       "Spare Room for Student Storage",
			Description: "Spare bedroom available over the summer for boxes and small furniture.",
			Address:     "23 College Road", City: "Cork",
			PricePerMonth: 60, SpaceType: domain.SpaceTypeRoom, Size: "Small",
			Amenities:           []string{},
			SecurityFeatures:    []string{},
			MinimumRentalPeriod: 2, AccessHours: "9AM-9PM",
			IsAvailable: true, Rating: 0, TotalReviews: 0,
			Latitude: f64p(51.8925), Longitude: f64p(-8.4930),
			CreatedAt: now.AddDate(0, -2, 0), ViewCount: 34, FavoriteCount: 1,
		},
		{
			ID: "spc-warehouse-galway", OwnerID: "usr-james",
			Title:       "Secure Warehouse Space",
			Description: "Sectioned warehouse floor space for pallets and bulky equipment.",
			Address:     "Ballybrit Business Park", City: "Galway",
			PricePerMonth: 350, SpaceType: domain.SpaceTypeOther, Size: "Large", SizeInSqFt: f64p(600),
			Amenities:        []string{"24_7_access", "security", "parking"},
			SecurityFeatures: []string{"cctv", "guard"},
			MinimumRentalPeriod: 6, AccessHours: "24/7",
			IsAvailable: true, Rating: 4.6, TotalReviews: 9,
			CreatedAt: now.AddDate(0, -3, 0), ViewCount: 150, FavoriteCount: 5,
		},
	}
}

func seedBookings(now time.Time) []domain.Booking {
	return []domain.Booking{
		{
			ID: "bkg-1", SpaceID: "spc-garage-dublin", RenterID: "usr-aoife", OwnerID: "usr-sarah",
			StartDate: "2026-03-01", EndDate: "2026-09-01", TotalAmount: 1080,
			Status: domain.BookingActive, PaymentStatus: domain.PaymentPaid,
			CreatedAt: now.AddDate(0, -5, 0),
		},
		{
			ID: "bkg-2", SpaceID: "spc-garage-dublin", RenterID: "usr-james", OwnerID: "usr-sarah",
			StartDate: "2026-07-01", EndDate: "2026-08-01", TotalAmount: 180,
			Status: domain.BookingCompleted, PaymentStatus: domain.PaymentPaid,
			CreatedAt: now.AddDate(0, -2, 0),
		},
		{
			ID: "bkg-3", SpaceID: "spc-basement-dublin", RenterID: "usr-aoife", OwnerID: "usr-sarah",
			StartDate: "2026-08-15", EndDate: "2026-11-15", TotalAmount: 285,
			Status: domain.BookingPending, PaymentStatus: domain.PaymentPending,
			CreatedAt: now,
		},
		{
			ID: "bkg-4", SpaceID: "spc-unit-cork", RenterID: "usr-emma", OwnerID: "usr-michael",
			StartDate: "2026-06-01", EndDate: "2026-12-01", TotalAmount: 1320,
			Status: domain.BookingActive, PaymentStatus: domain.PaymentPaid,
			CreatedAt: now.AddDate(0, -1, 0),
		},
		{
			ID: "bkg-5", SpaceID: "spc-attic-dublin", RenterID: "usr-sarah", OwnerID: "usr-michael",
			StartDate: "2026-01-01", EndDate: "2026-04-01", TotalAmount: 210,
			Status: domain.BookingCancelled, PaymentStatus: domain.PaymentRefunded,
			CreatedAt: now.AddDate(0, -4, 0),
		},
		{
			ID: "bkg-6", SpaceID: "spc-warehouse-galway", RenterID: "usr-michael", OwnerID: "usr-james",
			StartDate: "2026-08-01", EndDate: "2027-02-01", TotalAmount: 2100,
			Status: domain.BookingConfirmed, PaymentStatus: domain.PaymentPending,
			CreatedAt: now,
		},
	}
}

func seedReviews(now time.Time) []domain.Review {
	return []domain.Review{
		{
			ID: "rev-1", BookingID: "bkg-1", SpaceID: "spc-garage-dublin",
			ReviewerID: "usr-aoife", RevieweeID: "usr-sarah",
			Rating: 5, Comment: strp("Spotless garage and easy access, highly recommend."),
			ReviewType: domain.ReviewTypeSpace, CreatedAt: now.AddDate(0, -4, 0),
		},
		{
			ID: "rev-2", BookingID: "bkg-2", SpaceID: "spc-garage-dublin",
			ReviewerID: "usr-james", RevieweeID: "usr-sarah",
			Rating: 4, Comment: strp("Good location, gate code changed once without notice."),
			ReviewType: domain.ReviewTypeSpace, CreatedAt: now.AddDate(0, -1, 0),
		},
		{
			ID: "rev-3", BookingID: "bkg-4", SpaceID: "spc-unit-cork",
			ReviewerID: "usr-emma", RevieweeID: "usr-michael",
			Rating: 5, Comment: strp("Best storage unit in Cork, climate control works great."),
			ReviewType: domain.ReviewTypeSpace, CreatedAt: now.AddDate(0, 0, -10),
		},
		{
			ID: "rev-4", BookingID: "bkg-1", SpaceID: "spc-garage-dublin",
			ReviewerID: "usr-sarah", RevieweeID: "usr-aoife",
			Rating: 5, ReviewType: domain.ReviewTypeRenter, CreatedAt: now.AddDate(0, -4, 0),
		},
	}
}
