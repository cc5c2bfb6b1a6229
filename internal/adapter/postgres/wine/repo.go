// Package wine implements the wine repository using PostgreSQL.
// Simple CRUD uses raw SQL; the filtered listing is built with squirrel.
package wine

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/mycellar-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mycellar-backend/internal/domain"
)

// Repo provides wine persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new wine repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getByIDSQL = `
SELECT ` + selectColumns + `
FROM wines
WHERE id = $1 AND user_id = $2`

const insertSQL = `
INSERT INTO wines (id, user_id, name, producer, country, region, appellation,
                   vintage, price, type, alcohol_by_vol, grape_variety,
                   appearance, nose, palate, rating, blice, notes, image_url,
                   created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
        $17, $18, $19, $20, $21)
RETURNING ` + selectColumns

const updateSQL = `
UPDATE wines
SET name = $3, producer = $4, country = $5, region = $6, appellation = $7,
    vintage = $8, price = $9, type = $10, alcohol_by_vol = $11,
    grape_variety = $12, appearance = $13, nose = $14, palate = $15,
    rating = $16, blice = $17, notes = $18, updated_at = $19
WHERE id = $1 AND user_id = $2
RETURNING ` + selectColumns

const setImageURLSQL = `
UPDATE wines
SET image_url = $3, updated_at = now()
WHERE id = $1 AND user_id = $2
RETURNING ` + selectColumns

const deleteSQL = `
DELETE FROM wines
WHERE id = $1 AND user_id = $2`

const countByUserSQL = `
SELECT count(*) FROM wines WHERE user_id = $1`

// scanRow reads one wines row in selectColumns order.
func scanRow(row pgx.Row) (wineRow, error) {
	var r wineRow
	err := row.Scan(
		&r.ID, &r.UserID, &r.Name, &r.Producer, &r.Country, &r.Region, &r.Appellation,
		&r.Vintage, &r.Price, &r.Type, &r.AlcoholByVol, &r.GrapeVariety,
		&r.Appearance, &r.Nose, &r.Palate, &r.Rating, &r.Blice, &r.Notes, &r.ImageURL,
		&r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

// GetByID returns a record by primary key scoped to the owner.
func (r *Repo) GetByID(ctx context.Context, userID, wineID uuid.UUID) (*domain.Wine, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row, err := scanRow(q.QueryRow(ctx, getByIDSQL, wineID, userID))
	if err != nil {
		return nil, mapError(err, "wine", wineID)
	}

	w := toDomain(row)
	return &w, nil
}

// Find returns the filtered page plus the total number of matching rows.
func (r *Repo) Find(ctx context.Context, userID uuid.UUID, filter domain.WineFilter) ([]domain.Wine, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := buildFindQuery(userID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("build find query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, mapError(err, "wine", uuid.Nil)
	}
	defer rows.Close()

	wines := []domain.Wine{}
	for rows.Next() {
		row, scanErr := scanRow(rows)
		if scanErr != nil {
			return nil, 0, mapError(scanErr, "wine", uuid.Nil)
		}
		wines = append(wines, toDomain(row))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, mapError(err, "wine", uuid.Nil)
	}

	countSQL, countArgs, err := buildCountQuery(userID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, mapError(err, "wine", uuid.Nil)
	}

	return wines, total, nil
}

// CountByUser returns the user's cellar size.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countByUserSQL, userID).Scan(&count); err != nil {
		return 0, mapError(err, "wine", uuid.Nil)
	}
	return count, nil
}

// Create inserts a record and returns the stored version.
func (r *Repo) Create(ctx context.Context, wine *domain.Wine) (*domain.Wine, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row, err := fromDomain(wine)
	if err != nil {
		return nil, fmt.Errorf("encode wine %s: %w", wine.ID, err)
	}

	stored, err := scanRow(q.QueryRow(ctx, insertSQL,
		row.ID, row.UserID, row.Name, row.Producer, row.Country, row.Region, row.Appellation,
		row.Vintage, row.Price, row.Type, row.AlcoholByVol, row.GrapeVariety,
		row.Appearance, row.Nose, row.Palate, row.Rating, row.Blice, row.Notes, row.ImageURL,
		row.CreatedAt, row.UpdatedAt,
	))
	if err != nil {
		return nil, mapError(err, "wine", wine.ID)
	}

	w := toDomain(stored)
	return &w, nil
}

// Update replaces a record's mutable columns and returns the stored version.
// The image URL is managed separately via SetImageURL.
func (r *Repo) Update(ctx context.Context, wine *domain.Wine) (*domain.Wine, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row, err := fromDomain(wine)
	if err != nil {
		return nil, fmt.Errorf("encode wine %s: %w", wine.ID, err)
	}

	stored, err := scanRow(q.QueryRow(ctx, updateSQL,
		row.ID, row.UserID, row.Name, row.Producer, row.Country, row.Region, row.Appellation,
		row.Vintage, row.Price, row.Type, row.AlcoholByVol, row.GrapeVariety,
		row.Appearance, row.Nose, row.Palate, row.Rating, row.Blice, row.Notes,
		row.UpdatedAt,
	))
	if err != nil {
		return nil, mapError(err, "wine", wine.ID)
	}

	w := toDomain(stored)
	return &w, nil
}

// SetImageURL links a stored label image to the record.
func (r *Repo) SetImageURL(ctx context.Context, userID, wineID uuid.UUID, url string) (*domain.Wine, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stored, err := scanRow(q.QueryRow(ctx, setImageURLSQL, wineID, userID, url))
	if err != nil {
		return nil, mapError(err, "wine", wineID)
	}

	w := toDomain(stored)
	return &w, nil
}

// Delete removes a record. Returns ErrNotFound when nothing matched.
func (r *Repo) Delete(ctx context.Context, userID, wineID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, wineID, userID)
	if err != nil {
		return mapError(err, "wine", wineID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wine %s: %w", wineID, domain.ErrNotFound)
	}
	return nil
}

func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
