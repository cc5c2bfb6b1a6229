package cellar

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/mycellar-backend/internal/config"
	"github.com/heartmarshall/mycellar-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wineRepo interface {
	GetByID(ctx context.Context, userID, wineID uuid.UUID) (*domain.Wine, error)
	Find(ctx context.Context, userID uuid.UUID, filter domain.WineFilter) ([]domain.Wine, int, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	Create(ctx context.Context, wine *domain.Wine) (*domain.Wine, error)
	Update(ctx context.Context, wine *domain.Wine) (*domain.Wine, error)
	SetImageURL(ctx context.Context, userID, wineID uuid.UUID, url string) (*domain.Wine, error)
	Delete(ctx context.Context, userID, wineID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// queryCache holds recent list/search results keyed per user so repeated
// browsing does not hit the database. Writes invalidate the user's prefix.
type queryCache interface {
	Get(key string) (any, bool)
	Put(key string, value any)
	InvalidatePrefix(prefix string)
}

type imageStore interface {
	Save(ctx context.Context, userID, wineID uuid.UUID, filename string, r io.Reader) (string, error)
	Remove(ctx context.Context, url string) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the wine cellar business logic.
type Service struct {
	log    *slog.Logger
	wines  wineRepo
	tx     txManager
	cache  queryCache
	images imageStore
	cfg    config.CellarConfig
}

// NewService creates a new Cellar service.
func NewService(
	logger *slog.Logger,
	wines wineRepo,
	tx txManager,
	cache queryCache,
	images imageStore,
	cfg config.CellarConfig,
) *Service {
	return &Service{
		log:    logger.With("service", "cellar"),
		wines:  wines,
		tx:     tx,
		cache:  cache,
		images: images,
		cfg:    cfg,
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// clampLimit ensures a limit is within [min, max], defaulting from 0 to defaultVal.
func clampLimit(limit, min, max, defaultVal int) int {
	if limit <= 0 {
		return defaultVal
	}
	if limit < min {
		return min
	}
	if limit > max {
		return max
	}
	return limit
}

// cachePrefix is the invalidation prefix for one user's query results.
func cachePrefix(userID uuid.UUID) string {
	return "wines:" + userID.String() + ":"
}

// cacheKey derives a stable key for a filter under the user's prefix.
func cacheKey(userID uuid.UUID, f domain.WineFilter) string {
	var b strings.Builder
	b.WriteString(cachePrefix(userID))
	b.WriteString("find:")
	b.WriteString(f.Search)
	b.WriteByte('|')
	b.WriteString(f.Country)
	b.WriteByte('|')
	b.WriteString(f.Region)
	b.WriteByte('|')
	b.WriteString(f.GrapeVariety)
	b.WriteByte('|')
	if f.MinRating != nil {
		b.WriteString(strconv.FormatFloat(*f.MinRating, 'f', 1, 64))
	}
	b.WriteByte('|')
	if f.Type != nil {
		b.WriteString(f.Type.String())
	}
	b.WriteByte('|')
	b.WriteString(f.Sort.String())
	fmt.Fprintf(&b, "|%d|%d", f.Limit, f.Offset)
	return b.String()
}
