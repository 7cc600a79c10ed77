package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"holdhive/internal/app"
	"holdhive/internal/domain"
)

type Handlers struct {
	Q *app.QueryService
	S *app.SearchService
	A *app.AnalyticsService
	C *app.CommandService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/v1", func(r chi.Router) {
		r.Get("/search", h.search)

		r.Get("/spaces", h.listSpaces)
		r.Post("/spaces", h.createSpace)
		r.Get("/spaces/popular", h.popularSpaces)
		r.Get("/spaces/nearby", h.nearbySpaces)
		r.Get("/spaces/{id}", h.getSpace)
		r.Patch("/spaces/{id}/availability", h.updateAvailability)
		r.Get("/spaces/{id}/reviews", h.spaceReviews)
		r.Get("/spaces/{id}/favorites/count", h.spaceFavoriteCount)

		r.Post("/bookings", h.createBooking)
		r.Patch("/bookings/{id}/status", h.updateBookingStatus)
		r.Patch("/bookings/{id}/payment", h.updateBookingPayment)

		r.Post("/reviews", h.createReview)

		r.Get("/users/{id}/bookings", h.renterBookings)
		r.Get("/users/{id}/reviews", h.userReviews)
		r.Get("/users/{id}/favorites", h.userFavorites)
		r.Get("/users/{id}/favorites/{spaceId}", h.isFavorited)
		r.Put("/users/{id}/favorites/{spaceId}", h.addFavorite)
		r.Delete("/users/{id}/favorites/{spaceId}", h.removeFavorite)

		r.Get("/owners/{id}/spaces", h.ownerSpaces)
		r.Get("/owners/{id}/bookings", h.ownerBookings)
		r.Get("/owners/{id}/analytics", h.ownerAnalytics)

		r.Get("/analytics/platform", h.platformAnalytics)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func respondErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, domain.ErrInvalidArgument):
		writeProblem(w, http.StatusBadRequest, "Invalid Argument", err.Error())
	default:
		log.Error().Err(err).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeETagged serves v with a weak ETag, short-circuiting to 304 when
// the client already holds the same version.
func writeETagged(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

// ---- search & analytics ----

func (h *Handlers) search(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid limit", err.Error())
		return
	}
	minPrice, err := queryFloat(r, "min_price")
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid min_price", err.Error())
		return
	}
	maxPrice, err := queryFloat(r, "max_price")
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid max_price", err.Error())
		return
	}
	filters := domain.SearchFilters{
		City:      queryStr(r, "city"),
		MinPrice:  minPrice,
		MaxPrice:  maxPrice,
		SpaceType: queryStr(r, "space_type"),
	}
	if raw := queryStr(r, "amenities"); raw != nil {
		filters.Amenities = strings.Split(*raw, ",")
	}

	out, err := h.S.SearchSpaces(r.Context(), r.URL.Query().Get("q"), filters, limit)
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) popularSpaces(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 10)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid limit", err.Error())
		return
	}
	out, err := h.S.PopularSpaces(r.Context(), limit)
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) nearbySpaces(w http.ResponseWriter, r *http.Request) {
	lat, err := queryFloat(r, "lat")
	if err != nil || lat == nil {
		writeProblem(w, http.StatusBadRequest, "Invalid lat", "lat is required and must be a number")
		return
	}
	lon, err := queryFloat(r, "lon")
	if err != nil || lon == nil {
		writeProblem(w, http.StatusBadRequest, "Invalid lon", "lon is required and must be a number")
		return
	}
	radius, err := queryFloat(r, "radius_km")
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid radius_km", err.Error())
		return
	}
	radiusKm := 10.0 // default radius
	if radius != nil {
		radiusKm = *radius
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid limit", err.Error())
		return
	}

	out, err := h.S.NearbySpaces(r.Context(), *lat, *lon, radiusKm, limit)
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) ownerAnalytics(w http.ResponseWriter, r *http.Request) {
	out, err := h.A.OwnerAnalytics(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) platformAnalytics(w http.ResponseWriter, r *http.Request) {
	out, err := h.A.PlatformAnalytics(r.Context())
	if err != nil {
		respondErr(w, err)
		return
	}
	writeETagged(w, r, out)
}
