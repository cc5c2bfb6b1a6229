package cellar

import (
	"io"

	"github.com/google/uuid"

	"github.com/heartmarshall/mycellar-backend/internal/domain"
)

// AddWineInput holds the submitted record for the add operation.
type AddWineInput struct {
	Wine domain.Wine
}

// Validate checks the submission for completeness and domain validity.
// Missing required fields are reported together in the fixed form order;
// invalid enum or range values are collected field by field.
func (i AddWineInput) Validate() error {
	if missing := domain.MissingFields(&i.Wine); len(missing) > 0 {
		return domain.NewMissingFieldsError(missing)
	}
	return domain.ValidateDomains(&i.Wine)
}

// UpdateWineInput holds a partial update for an existing record.
type UpdateWineInput struct {
	WineID uuid.UUID
	Patch  domain.WinePatch
}

// Validate checks the update target. The merged record is validated by the
// service after the patch is applied, so only identity is checked here.
func (i UpdateWineInput) Validate() error {
	if i.WineID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	return nil
}

// FindInput holds browse/search parameters.
type FindInput struct {
	Search       string
	Country      string
	Region       string
	GrapeVariety string
	MinRating    *float64
	Type         *domain.WineType
	Sort         domain.WineSort
	Limit        int
	Offset       int
}

// Validate validates the find input.
func (i FindInput) Validate() error {
	var errs []domain.FieldError

	if i.Sort != "" && !i.Sort.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sort", Message: "unknown sort order"})
	}
	if i.MinRating != nil && (*i.MinRating < 0 || *i.MinRating > 5) {
		errs = append(errs, domain.FieldError{Field: "min_rating", Message: "must be between 0 and 5"})
	}
	if i.Type != nil && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "unknown wine type"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AttachImageInput holds an uploaded label photo for a wine.
type AttachImageInput struct {
	WineID   uuid.UUID
	Filename string
	Size     int64
	Reader   io.Reader
}

// Validate validates the upload against the given size cap.
func (i AttachImageInput) Validate(maxBytes int64) error {
	var errs []domain.FieldError

	if i.WineID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Filename == "" {
		errs = append(errs, domain.FieldError{Field: "filename", Message: "required"})
	}
	if i.Reader == nil {
		errs = append(errs, domain.FieldError{Field: "file", Message: "required"})
	}
	if i.Size > maxBytes {
		errs = append(errs, domain.FieldError{Field: "file", Message: "too large"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
