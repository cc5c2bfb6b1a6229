package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/mycellar-backend/internal/domain"
	"github.com/heartmarshall/mycellar-backend/internal/service/cellar"
)

// cellarService defines the minimal interface needed by WineHandler.
type cellarService interface {
	AddWine(ctx context.Context, input cellar.AddWineInput) (*domain.Wine, error)
	GetWine(ctx context.Context, wineID uuid.UUID) (*domain.Wine, error)
	FindWines(ctx context.Context, input cellar.FindInput) (*cellar.FindResult, error)
	UpdateWine(ctx context.Context, input cellar.UpdateWineInput) (*domain.Wine, error)
	DeleteWine(ctx context.Context, wineID uuid.UUID) error
	AttachImage(ctx context.Context, input cellar.AttachImageInput, maxBytes int64) (*domain.Wine, error)
}

// WineHandler serves the wine catalogue REST endpoints.
type WineHandler struct {
	svc           cellarService
	log           *slog.Logger
	maxImageBytes int64
}

// NewWineHandler creates a WineHandler.
func NewWineHandler(svc cellarService, logger *slog.Logger, maxImageBytes int64) *WineHandler {
	return &WineHandler{
		svc:           svc,
		log:           logger.With("handler", "wines"),
		maxImageBytes: maxImageBytes,
	}
}

type listResponse struct {
	Wines       []domain.Wine `json:"wines"`
	TotalCount  int           `json:"totalCount"`
	HasNextPage bool          `json:"hasNextPage"`
}

// Add handles POST /wines. The body is a full wine record; an incomplete
// submission is rejected with the full list of missing fields.
func (h *WineHandler) Add(w http.ResponseWriter, r *http.Request) {
	var wine domain.Wine
	if err := json.NewDecoder(r.Body).Decode(&wine); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.AddWine(r.Context(), cellar.AddWineInput{Wine: wine})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// Get handles GET /wines/{id}.
func (h *WineHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	wine, err := h.svc.GetWine(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, wine)
}

// List handles GET /wines with filter, sort, and pagination query parameters.
func (h *WineHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := parseFindInput(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.svc.FindWines(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse{
		Wines:       result.Wines,
		TotalCount:  result.TotalCount,
		HasNextPage: result.HasNextPage,
	})
}

// Update handles PUT /wines/{id}. The body carries only the fields to change.
func (h *WineHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var patch winePatchRequest
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateWine(r.Context(), cellar.UpdateWineInput{
		WineID: id,
		Patch:  patch.toDomain(),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /wines/{id}.
func (h *WineHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteWine(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AttachImage handles POST /wines/{id}/image as a multipart upload with a
// single "image" part.
func (h *WineHandler) AttachImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxImageBytes+1024)
	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing image upload")
		return
	}
	defer file.Close()

	updated, err := h.svc.AttachImage(r.Context(), cellar.AttachImageInput{
		WineID:   id,
		Filename: header.Filename,
		Size:     header.Size,
		Reader:   file,
	}, h.maxImageBytes)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *WineHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeValidationError(w, verr)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// writeValidationError renders field-level errors. When every reported field
// is a missing required one, the message is the single full report the form
// shows verbatim.
func writeValidationError(w http.ResponseWriter, verr *domain.ValidationError) {
	type fieldError struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	}

	fields := make([]fieldError, len(verr.Errors))
	allMissing := len(verr.Errors) > 0
	for i, fe := range verr.Errors {
		fields[i] = fieldError{Field: fe.Field, Message: fe.Message}
		if fe.Message != "required" {
			allMissing = false
		}
	}

	message := verr.Error()
	if allMissing {
		message = domain.MissingFieldsMessage(verr.Fields())
	}

	writeJSON(w, http.StatusBadRequest, map[string]any{
		"error":  message,
		"fields": fields,
	})
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// parseFindInput reads the browse query parameters.
func parseFindInput(r *http.Request) (cellar.FindInput, error) {
	q := r.URL.Query()

	input := cellar.FindInput{
		Search:       q.Get("search"),
		Country:      q.Get("country"),
		Region:       q.Get("region"),
		GrapeVariety: q.Get("grape"),
		Sort:         domain.WineSort(q.Get("sort")),
	}

	if v := q.Get("min_rating"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cellar.FindInput{}, errors.New("min_rating must be a number")
		}
		input.MinRating = &f
	}
	if v := q.Get("type"); v != "" {
		t := domain.WineType(v)
		input.Type = &t
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cellar.FindInput{}, errors.New("limit must be an integer")
		}
		input.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cellar.FindInput{}, errors.New("offset must be an integer")
		}
		input.Offset = n
	}

	return input, nil
}

// winePatchRequest is the JSON shape of a partial update. A "vintage": null in
// the body clears the vintage; an absent key leaves it untouched.
type winePatchRequest struct {
	Name        *string `json:"name"`
	Producer    *string `json:"producer"`
	Country     *string `json:"country"`
	Region      *string `json:"region"`
	Appellation *string `json:"appellation"`

	Vintage        *int `json:"vintage"`
	vintagePresent bool

	Price        *float64         `json:"price"`
	Type         *domain.WineType `json:"type"`
	AlcoholByVol *float64         `json:"alcoholLevel"`

	GrapeVariety *domain.GrapeVarieties `json:"grapeVariety"`

	Appearance *domain.Appearance `json:"appearance"`
	Nose       *domain.Nose       `json:"nose"`
	Palate     *domain.Palate     `json:"palate"`

	Rating *float64      `json:"rating"`
	Blice  *domain.Blice `json:"blice"`

	Notes *string `json:"notes"`
}

func (p *winePatchRequest) UnmarshalJSON(data []byte) error {
	type alias winePatchRequest
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	_, a.vintagePresent = keys["vintage"]

	*p = winePatchRequest(a)
	return nil
}

func (p winePatchRequest) toDomain() domain.WinePatch {
	return domain.WinePatch{
		Name:         p.Name,
		Producer:     p.Producer,
		Country:      p.Country,
		Region:       p.Region,
		Appellation:  p.Appellation,
		Vintage:      p.Vintage,
		NonVintage:   p.vintagePresent && p.Vintage == nil,
		Price:        p.Price,
		Type:         p.Type,
		AlcoholByVol: p.AlcoholByVol,
		GrapeVariety: p.GrapeVariety,
		Appearance:   p.Appearance,
		Nose:         p.Nose,
		Palate:       p.Palate,
		Rating:       p.Rating,
		Blice:        p.Blice,
		Notes:        p.Notes,
	}
}
