package cellar

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/mycellar-backend/internal/domain"
	"github.com/heartmarshall/mycellar-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// 2. UpdateWine
// ---------------------------------------------------------------------------

// UpdateWine applies a partial update to an existing record. The patch is
// merged over the stored record and the merged result must still pass the
// full-report validation, so an update can never leave a record incomplete.
func (s *Service) UpdateWine(ctx context.Context, input UpdateWineInput) (*domain.Wine, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Wine
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.wines.GetByID(txCtx, userID, input.WineID)
		if err != nil {
			return fmt.Errorf("get wine: %w", err)
		}

		merged := domain.MergeWine(*current, input.Patch)
		merged.GrapeVariety = domain.NormalizeGrapeVarieties(merged.GrapeVariety)

		if missing := domain.MissingFields(&merged); len(missing) > 0 {
			return domain.NewMissingFieldsError(missing)
		}
		if err := domain.ValidateDomains(&merged); err != nil {
			return err
		}
		if err := s.checkLimits(&merged); err != nil {
			return err
		}

		merged.UpdatedAt = time.Now().UTC()

		updated, err = s.wines.Update(txCtx, &merged)
		if err != nil {
			return fmt.Errorf("update wine: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.cache.InvalidatePrefix(cachePrefix(userID))

	return updated, nil
}
