package cellar

import "github.com/heartmarshall/mycellar-backend/internal/domain"

// FindResult is returned by FindWines.
type FindResult struct {
	Wines       []domain.Wine
	TotalCount  int
	HasNextPage bool
}
