package wine

import (
	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/mycellar-backend/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const selectColumns = `id, user_id, name, producer, country, region, appellation,
vintage, price, type, alcohol_by_vol, grape_variety,
appearance, nose, palate, rating, blice, notes, image_url,
created_at, updated_at`

// applyFilter adds the filter's WHERE conditions to a builder.
func applyFilter(b squirrel.SelectBuilder, userID uuid.UUID, f domain.WineFilter) squirrel.SelectBuilder {
	b = b.Where(squirrel.Eq{"user_id": userID})

	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		b = b.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"producer": pattern},
		})
	}
	if f.Country != "" {
		b = b.Where(squirrel.ILike{"country": "%" + f.Country + "%"})
	}
	if f.Region != "" {
		b = b.Where(squirrel.ILike{"region": "%" + f.Region + "%"})
	}
	if f.GrapeVariety != "" {
		b = b.Where(squirrel.Expr("? = ANY(grape_variety)", f.GrapeVariety))
	}
	if f.MinRating != nil {
		// The threshold arrives on the UI 0-5 half-star scale; the column
		// stores half-star units.
		b = b.Where(squirrel.GtOrEq{"rating": domain.StoredRating(*f.MinRating)})
	}
	if f.Type != nil {
		b = b.Where(squirrel.Eq{"type": f.Type.String()})
	}

	return b
}

// orderClause maps a sort to its SQL ordering. Non-vintage rows always sort
// after dated ones regardless of direction.
func orderClause(sort domain.WineSort) string {
	switch sort {
	case domain.WineSortVintageAsc:
		return "vintage ASC NULLS LAST, created_at DESC"
	case domain.WineSortVintageDesc:
		return "vintage DESC NULLS LAST, created_at DESC"
	case domain.WineSortPriceAsc:
		return "price ASC, created_at DESC"
	case domain.WineSortPriceDesc:
		return "price DESC, created_at DESC"
	case domain.WineSortRatingAsc:
		return "rating ASC, created_at DESC"
	case domain.WineSortRatingDesc:
		return "rating DESC, created_at DESC"
	default:
		return "created_at DESC"
	}
}

// buildFindQuery renders the filtered, sorted, paginated SELECT.
func buildFindQuery(userID uuid.UUID, f domain.WineFilter) (string, []any, error) {
	b := applyFilter(psql.Select(selectColumns).From("wines"), userID, f).
		OrderBy(orderClause(f.Sort))

	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		b = b.Offset(uint64(f.Offset))
	}

	return b.ToSql()
}

// buildCountQuery renders the matching COUNT for the same filter.
func buildCountQuery(userID uuid.UUID, f domain.WineFilter) (string, []any, error) {
	return applyFilter(psql.Select("count(*)").From("wines"), userID, f).ToSql()
}
