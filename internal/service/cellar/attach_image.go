package cellar

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/mycellar-backend/internal/domain"
	"github.com/heartmarshall/mycellar-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// 6. AttachImage
// ---------------------------------------------------------------------------

// AttachImage stores an uploaded label photo and links it to the record.
// A previous image, if any, is removed after the new URL is persisted.
func (s *Service) AttachImage(ctx context.Context, input AttachImageInput, maxBytes int64) (*domain.Wine, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(maxBytes); err != nil {
		return nil, err
	}

	// Ownership check before touching storage.
	wine, err := s.wines.GetByID(ctx, userID, input.WineID)
	if err != nil {
		return nil, fmt.Errorf("cellar.AttachImage get: %w", err)
	}
	oldURL := wine.ImageURL

	url, err := s.images.Save(ctx, userID, input.WineID, input.Filename, input.Reader)
	if err != nil {
		return nil, fmt.Errorf("cellar.AttachImage save: %w", err)
	}

	updated, err := s.wines.SetImageURL(ctx, userID, input.WineID, url)
	if err != nil {
		// The file is orphaned; remove it so storage does not leak.
		if rmErr := s.images.Remove(ctx, url); rmErr != nil {
			s.log.WarnContext(ctx, "failed to remove orphaned image",
				slog.String("url", url), slog.String("error", rmErr.Error()))
		}
		return nil, fmt.Errorf("cellar.AttachImage link: %w", err)
	}

	if oldURL != "" && oldURL != url {
		if err := s.images.Remove(ctx, oldURL); err != nil {
			s.log.WarnContext(ctx, "failed to remove replaced image",
				slog.String("url", oldURL), slog.String("error", err.Error()))
		}
	}

	s.cache.InvalidatePrefix(cachePrefix(userID))

	return updated, nil
}
