package cellar

import (
	"context"
	"fmt"

	"github.com/heartmarshall/mycellar-backend/internal/domain"
	"github.com/heartmarshall/mycellar-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// 5. FindWines
// ---------------------------------------------------------------------------

// FindWines lists the user's cellar with filtering, sorting and free-text
// search. Results are cached per user; any write invalidates the cache.
func (s *Service) FindWines(ctx context.Context, input FindInput) (*FindResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	sort := input.Sort
	if sort == "" {
		sort = domain.WineSortRecent
	}
	// Rating sorts only apply while a minimum-rating filter is active;
	// otherwise the listing falls back to the default order.
	if sort.IsRatingSort() && input.MinRating == nil {
		sort = domain.WineSortRecent
	}

	filter := domain.WineFilter{
		Search:       domain.NormalizeSearch(input.Search),
		Country:      input.Country,
		Region:       input.Region,
		GrapeVariety: input.GrapeVariety,
		MinRating:    input.MinRating,
		Type:         input.Type,
		Sort:         sort,
		Limit:        clampLimit(input.Limit, 1, s.cfg.MaxPageSize, s.cfg.DefaultPageSize),
		Offset:       input.Offset,
	}

	key := cacheKey(userID, filter)
	if cached, ok := s.cache.Get(key); ok {
		if result, ok := cached.(*FindResult); ok {
			return result, nil
		}
	}

	wines, total, err := s.wines.Find(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("find wines: %w", err)
	}

	result := &FindResult{
		Wines:       wines,
		TotalCount:  total,
		HasNextPage: filter.Offset+len(wines) < total,
	}
	s.cache.Put(key, result)

	return result, nil
}
