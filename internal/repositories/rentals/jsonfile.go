// Package rentals persists rental records as Docs/rentals.json.
package rentals

import (
	"context"
	"path/filepath"

	"github.com/Dns2690/Rentals/internal/models"
	"github.com/Dns2690/Rentals/internal/repositories/jsonfile"
)

// FileName is the store file inside the data directory.
const FileName = "rentals.json"

// JSONFileRepository implements Repository over a whole-file JSON store.
type JSONFileRepository struct {
	col *jsonfile.Collection[models.Rental]
}

// NewJSONFileRepository binds the repository to <dataDir>/rentals.json.
func NewJSONFileRepository(dataDir string) *JSONFileRepository {
	return &JSONFileRepository{
		col: jsonfile.NewCollection[models.Rental](filepath.Join(dataDir, FileName)),
	}
}

func (r *JSONFileRepository) List(ctx context.Context) ([]models.Rental, error) {
	return r.col.Load()
}

func (r *JSONFileRepository) Save(ctx context.Context, items []models.Rental) error {
	return r.col.Save(items)
}
