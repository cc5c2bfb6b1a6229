package cellar

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mycellar-backend/internal/domain"
	"github.com/heartmarshall/mycellar-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// 1. AddWine
// ---------------------------------------------------------------------------

// AddWine validates and stores a submitted tasting record.
// The record must carry every required field for a full report; partial
// drafts are rejected with a single error naming all missing fields.
func (s *Service) AddWine(ctx context.Context, input AddWineInput) (*domain.Wine, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	// Write-path normalization happens before validation so a variety set
	// of blanks is reported as missing, not stored empty.
	wine := input.Wine
	wine.GrapeVariety = domain.NormalizeGrapeVarieties(wine.GrapeVariety)
	input.Wine = wine

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkLimits(&wine); err != nil {
		return nil, err
	}

	// Check cellar size limit.
	count, err := s.wines.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count wines: %w", err)
	}
	if count >= s.cfg.MaxWinesPerUser {
		return nil, domain.NewValidationError("wines", "limit reached")
	}

	var created *domain.Wine
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := time.Now().UTC()
		wine.ID = uuid.New()
		wine.UserID = userID
		wine.CreatedAt = now
		wine.UpdatedAt = now

		var createErr error
		created, createErr = s.wines.Create(txCtx, &wine)
		if createErr != nil {
			return fmt.Errorf("create wine: %w", createErr)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.cache.InvalidatePrefix(cachePrefix(userID))

	return created, nil
}

// checkLimits enforces the config-bound size limits that domain validation
// cannot know about.
func (s *Service) checkLimits(wine *domain.Wine) error {
	var errs []domain.FieldError

	if len(wine.GrapeVariety) > s.cfg.MaxGrapeVarieties {
		errs = append(errs, domain.FieldError{Field: "grape_variety", Message: "too many varieties"})
	}
	if len(wine.Notes) > s.cfg.MaxNotesLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
