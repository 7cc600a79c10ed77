package app

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"holdhive/internal/domain"
)

// SearchService filters and ranks the available-space collection by
// free text, structured filters, popularity, and great-circle distance.
type SearchService struct {
	repo     domain.Repository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewSearchService(r domain.Repository, c domain.Cache, ttl time.Duration) *SearchService {
	return &SearchService{repo: r, cache: c, cacheTTL: ttl}
}

// SearchSpaces matches available spaces against an optional free-text
// query (case-insensitive substring over title, description, city and
// address) and AND-combined filters. Results keep the underlying read
// order and are truncated to limit when limit > 0.
func (s *SearchService) SearchSpaces(ctx context.Context, query string, f domain.SearchFilters, limit int) ([]domain.SpaceResult, error) {
	spaces, err := s.repo.ListAvailableSpaces(ctx)
	if err != nil {
		return nil, err
	}

	if term := strings.ToLower(strings.TrimSpace(query)); term != "" {
		spaces = filterSpaces(spaces, func(sp domain.Space) bool {
			return strings.Contains(strings.ToLower(sp.Title), term) ||
				strings.Contains(strings.ToLower(sp.Description), term) ||
				strings.Contains(strings.ToLower(sp.City), term) ||
				strings.Contains(strings.ToLower(sp.Address), term)
		})
	}

	if f.City != nil && *f.City != "" {
		city := strings.ToLower(*f.City)
		spaces = filterSpaces(spaces, func(sp domain.Space) bool {
			return strings.Contains(strings.ToLower(sp.City), city)
		})
	}
	if f.MinPrice != nil {
		min := *f.MinPrice
		spaces = filterSpaces(spaces, func(sp domain.Space) bool { return sp.PricePerMonth >= min })
	}
	if f.MaxPrice != nil {
		max := *f.MaxPrice
		spaces = filterSpaces(spaces, func(sp domain.Space) bool { return sp.PricePerMonth <= max })
	}
	if f.SpaceType != nil && *f.SpaceType != "" && *f.SpaceType != "all" {
		st := domain.SpaceType(*f.SpaceType)
		if !st.Valid() {
			return nil, fmt.Errorf("%w: unknown space type %q", domain.ErrInvalidArgument, *f.SpaceType)
		}
		spaces = filterSpaces(spaces, func(sp domain.Space) bool { return sp.SpaceType == st })
	}
	if len(f.Amenities) > 0 {
		// Inclusive-OR semantics: one matching tag is enough.
		spaces = filterSpaces(spaces, func(sp domain.Space) bool {
			for _, want := range f.Amenities {
				for _, have := range sp.Amenities {
					if have == want {
						return true
					}
				}
			}
			return false
		})
	}

	spaces = truncate(spaces, limit)
	return s.withOwners(ctx, spaces)
}

// PopularSpaces ranks rated available spaces by rating x totalReviews.
// The score deliberately favors high-volume spaces over
// high-quality-low-volume ones. Score ties break by createdAt
// descending, then id, so the order is deterministic.
func (s *SearchService) PopularSpaces(ctx context.Context, limit int) ([]domain.SpaceResult, error) {
	key := fmt.Sprintf("spaces:popular:%d", limit)
	var cached []domain.SpaceResult
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &cached); ok {
			return cached, nil
		}
	}

	spaces, err := s.repo.ListAvailableSpaces(ctx)
	if err != nil {
		return nil, err
	}
	spaces = filterSpaces(spaces, func(sp domain.Space) bool { return sp.Rating > 0 })

	score := func(sp domain.Space) float64 { return sp.Rating * float64(sp.TotalReviews) }
	sort.Slice(spaces, func(i, j int) bool {
		si, sj := score(spaces[i]), score(spaces[j])
		if si != sj {
			return si > sj
		}
		if !spaces[i].CreatedAt.Equal(spaces[j].CreatedAt) {
			return spaces[i].CreatedAt.After(spaces[j].CreatedAt)
		}
		return spaces[i].ID < spaces[j].ID
	})

	spaces = truncate(spaces, limit)
	out, err := s.withOwners(ctx, spaces)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	}
	return out, nil
}

// NearbySpaces keeps available spaces within radiusKm of the reference
// point, sorted ascending by haversine distance (ties by id). Spaces
// missing either coordinate never qualify.
func (s *SearchService) NearbySpaces(ctx context.Context, lat, lon, radiusKm float64, limit int) ([]domain.NearbySpaceResult, error) {
	if err := validateCoordinates(lat, lon); err != nil {
		return nil, err
	}
	if radiusKm <= 0 {
		return nil, fmt.Errorf("%w: radius must be positive, got %v", domain.ErrInvalidArgument, radiusKm)
	}

	spaces, err := s.repo.ListAvailableSpaces(ctx)
	if err != nil {
		return nil, err
	}

	type hit struct {
		space domain.Space
		dist  float64
	}
	hits := make([]hit, 0, len(spaces))
	for _, sp := range spaces {
		if !sp.HasCoordinates() {
			continue
		}
		d := haversineKm(lat, lon, *sp.Latitude, *sp.Longitude)
		if d <= radiusKm {
			hits = append(hits, hit{space: sp, dist: d})
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].dist != hits[j].dist {
			return hits[i].dist < hits[j].dist
		}
		return hits[i].space.ID < hits[j].space.ID
	})
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}

	bare := make([]domain.Space, len(hits))
	for i, h := range hits {
		bare[i] = h.space
	}
	owners, err := s.ownerSummaries(ctx, bare)
	if err != nil {
		return nil, err
	}

	out := make([]domain.NearbySpaceResult, len(hits))
	for i, h := range hits {
		out[i] = domain.NearbySpaceResult{
			Space:      h.space,
			Owner:      owners[h.space.OwnerID],
			DistanceKm: h.dist,
		}
	}
	return out, nil
}

// ownerSummaries resolves owner snapshots with one batched read. A
// missing owner maps to nil rather than failing the whole result.
func (s *SearchService) ownerSummaries(ctx context.Context, spaces []domain.Space) (map[string]*domain.OwnerSummary, error) {
	seen := map[string]bool{}
	ids := make([]string, 0, len(spaces))
	for _, sp := range spaces {
		if !seen[sp.OwnerID] {
			seen[sp.OwnerID] = true
			ids = append(ids, sp.OwnerID)
		}
	}
	if len(ids) == 0 {
		return map[string]*domain.OwnerSummary{}, nil
	}
	users, err := s.repo.GetUsers(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make(map[string]*domain.OwnerSummary, len(users))
	for id, u := range users {
		out[id] = u.Summary()
	}
	return out, nil
}

func (s *SearchService) withOwners(ctx context.Context, spaces []domain.Space) ([]domain.SpaceResult, error) {
	owners, err := s.ownerSummaries(ctx, spaces)
	if err != nil {
		return nil, err
	}
	out := make([]domain.SpaceResult, len(spaces))
	for i, sp := range spaces {
		out[i] = domain.SpaceResult{Space: sp, Owner: owners[sp.OwnerID]}
	}
	return out, nil
}

func filterSpaces(in []domain.Space, keep func(domain.Space) bool) []domain.Space {
	out := in[:0:0]
	for _, sp := range in {
		if keep(sp) {
			out = append(out, sp)
		}
	}
	return out
}

func truncate(in []domain.Space, limit int) []domain.Space {
	if limit > 0 && len(in) > limit {
		return in[:limit]
	}
	return in
}
