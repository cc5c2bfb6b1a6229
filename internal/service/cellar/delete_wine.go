package cellar

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/mycellar-backend/internal/domain"
	"github.com/heartmarshall/mycellar-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// 3. DeleteWine
// ---------------------------------------------------------------------------

// DeleteWine removes a record and its stored label image, if any.
// Returns ErrNotFound if the record does not exist or belongs to another user.
func (s *Service) DeleteWine(ctx context.Context, wineID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if wineID == uuid.Nil {
		return domain.ErrNotFound
	}

	wine, err := s.wines.GetByID(ctx, userID, wineID)
	if err != nil {
		return fmt.Errorf("cellar.DeleteWine get: %w", err)
	}

	if err := s.wines.Delete(ctx, userID, wineID); err != nil {
		return fmt.Errorf("cellar.DeleteWine: %w", err)
	}

	// Image removal is best-effort: the record is already gone and an
	// orphaned file must not fail the request.
	if wine.ImageURL != "" {
		if err := s.images.Remove(ctx, wine.ImageURL); err != nil {
			s.log.WarnContext(ctx, "failed to remove wine image",
				slog.String("wine_id", wineID.String()),
				slog.String("error", err.Error()))
		}
	}

	s.cache.InvalidatePrefix(cachePrefix(userID))

	return nil
}
