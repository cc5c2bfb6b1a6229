package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/mycellar-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user row and returns the filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Username:     "testuser-" + suffix,
		PasswordHash: "$2a$04$" + suffix, // never verified in repo tests
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Username, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedWine inserts a complete wine record for the user and returns it.
// The caller can tweak it first via the mutate callback (applied before insert).
func SeedWine(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, mutate func(*domain.Wine)) domain.Wine {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	vintage := 2019

	wine := domain.Wine{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         "Test Wine " + suffix,
		Producer:     "Test Producer " + suffix,
		Country:      "France",
		Region:       "Rhône Valley",
		Vintage:      &vintage,
		Price:        35,
		Type:         domain.WineTypeRed,
		AlcoholByVol: 13.5,
		GrapeVariety: domain.GrapeVarieties{"Syrah"},
		Appearance:   domain.DefaultAppearance(),
		Nose: domain.Nose{
			Condition:            domain.NoseConditionClean,
			Intensity:            domain.NoseIntensityMedium,
			AromaCharacteristics: "dark fruit, pepper",
			Development:          domain.DevelopmentYouthful,
		},
		Palate:    domain.DefaultPalate(),
		Rating:    4,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if mutate != nil {
		mutate(&wine)
	}

	appearance, err := json.Marshal(wine.Appearance)
	if err != nil {
		t.Fatalf("testhelper: SeedWine marshal appearance: %v", err)
	}
	nose, err := json.Marshal(wine.Nose)
	if err != nil {
		t.Fatalf("testhelper: SeedWine marshal nose: %v", err)
	}
	palate, err := json.Marshal(wine.Palate)
	if err != nil {
		t.Fatalf("testhelper: SeedWine marshal palate: %v", err)
	}

	var blice []byte
	if !wine.Blice.IsZero() {
		if blice, err = json.Marshal(wine.Blice); err != nil {
			t.Fatalf("testhelper: SeedWine marshal blice: %v", err)
		}
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO wines (id, user_id, name, producer, country, region, appellation,
		                    vintage, price, type, alcohol_by_vol, grape_variety,
		                    appearance, nose, palate, rating, blice, notes, image_url,
		                    created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
		         $17, $18, $19, $20, $21)`,
		wine.ID, wine.UserID, wine.Name, wine.Producer, wine.Country, wine.Region, wine.Appellation,
		wine.Vintage, wine.Price, wine.Type.String(), wine.AlcoholByVol, []string(wine.GrapeVariety),
		appearance, nose, palate, domain.StoredRating(wine.EffectiveRating()), blice, wine.Notes, wine.ImageURL,
		wine.CreatedAt, wine.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWine insert wine: %v", err)
	}

	return wine
}
