package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"holdhive/internal/app"
	"holdhive/internal/domain"
)

// ---- spaces ----

func (h *Handlers) listSpaces(w http.ResponseWriter, r *http.Request) {
	maxPrice, err := queryFloat(r, "max_price")
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid max_price", err.Error())
		return
	}
	out, err := h.Q.ListSpaces(r.Context(), domain.ListFilters{
		City:      queryStr(r, "city"),
		MaxPrice:  maxPrice,
		SpaceType: queryStr(r, "space_type"),
	})
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) getSpace(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.GetSpace(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, err)
		return
	}
	writeETagged(w, r, out)
}

func (h *Handlers) createSpace(w http.ResponseWriter, r *http.Request) {
	var req createSpaceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", err.Error())
		return
	}
	sp, err := h.C.CreateSpace(r.Context(), app.CreateSpaceInput{
		OwnerID:             req.OwnerID,
		Title:               req.Title,
		Description:         req.Description,
		Address:             req.Address,
		City:                req.City,
		PricePerMonth:       req.PricePerMonth,
		SpaceType:           domain.SpaceType(req.SpaceType),
		Size:                req.Size,
		SizeInSqFt:          req.SizeInSqFt,
		Amenities:           req.Amenities,
		SecurityFeatures:    req.SecurityFeatures,
		MinimumRentalPeriod: req.MinimumRentalPeriod,
		AccessHours:         req.AccessHours,
		Latitude:            req.Latitude,
		Longitude:           req.Longitude,
	})
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sp)
}

func (h *Handlers) updateAvailability(w http.ResponseWriter, r *http.Request) {
	var req updateAvailabilityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", err.Error())
		return
	}
	if err := h.C.SetSpaceAvailability(r.Context(), chi.URLParam(r, "id"), *req.IsAvailable); err != nil {
		respondErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ownerSpaces(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.OwnerSpaces(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// ---- bookings ----

func (h *Handlers) createBooking(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", err.Error())
		return
	}
	b, err := h.C.CreateBooking(r.Context(), app.CreateBookingInput{
		SpaceID:             req.SpaceID,
		RenterID:            req.RenterID,
		StartDate:           req.StartDate,
		EndDate:             req.EndDate,
		TotalAmount:         req.TotalAmount,
		SpecialInstructions: req.SpecialInstructions,
	})
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (h *Handlers) updateBookingStatus(w http.ResponseWriter, r *http.Request) {
	var req updateBookingStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", err.Error())
		return
	}
	if err := h.C.UpdateBookingStatus(r.Context(), chi.URLParam(r, "id"), domain.BookingStatus(req.Status)); err != nil {
		respondErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) updateBookingPayment(w http.ResponseWriter, r *http.Request) {
	var req updateBookingPaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", err.Error())
		return
	}
	if err := h.C.UpdateBookingPayment(r.Context(), chi.URLParam(r, "id"), domain.PaymentStatus(req.PaymentStatus)); err != nil {
		respondErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) renterBookings(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.RenterBookings(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) ownerBookings(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.OwnerBookings(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// ---- reviews ----

func (h *Handlers) createReview(w http.ResponseWriter, r *http.Request) {
	var req createReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", err.Error())
		return
	}
	rv, err := h.C.CreateReview(r.Context(), app.CreateReviewInput{
		BookingID:  req.BookingID,
		SpaceID:    req.SpaceID,
		ReviewerID: req.ReviewerID,
		RevieweeID: req.RevieweeID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		ReviewType: domain.ReviewType(req.ReviewType),
	})
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rv)
}

func (h *Handlers) spaceReviews(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.SpaceReviews(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) userReviews(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.UserReviews(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// ---- favorites ----

func (h *Handlers) userFavorites(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.UserFavorites(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) isFavorited(w http.ResponseWriter, r *http.Request) {
	ok, err := h.Q.IsFavorited(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "spaceId"))
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"favorited": ok})
}

func (h *Handlers) addFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := h.C.AddFavorite(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "spaceId"))
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"favoriteId": id})
}

func (h *Handlers) removeFavorite(w http.ResponseWriter, r *http.Request) {
	if err := h.C.RemoveFavorite(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "spaceId")); err != nil {
		respondErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) spaceFavoriteCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.Q.SpaceFavoriteCount(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": n})
}
