package cellar

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/mycellar-backend/internal/domain"
	"github.com/heartmarshall/mycellar-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// 4. GetWine
// ---------------------------------------------------------------------------

// GetWine returns a single record by ID, scoped to the authenticated user.
func (s *Service) GetWine(ctx context.Context, wineID uuid.UUID) (*domain.Wine, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if wineID == uuid.Nil {
		return nil, domain.ErrNotFound
	}

	return s.wines.GetByID(ctx, userID, wineID)
}
