// Package vehicles persists vehicle records as Docs/vehicles.json.
package vehicles

import (
	"context"
	"path/filepath"

	"github.com/Dns2690/Rentals/internal/models"
	"github.com/Dns2690/Rentals/internal/repositories/jsonfile"
)

// FileName is the store file inside the data directory.
const FileName = "vehicles.json"

// JSONFileRepository implements Repository over a whole-file JSON store.
type JSONFileRepository struct {
	col *jsonfile.Collection[models.Vehicle]
}

// NewJSONFileRepository binds the repository to <dataDir>/vehicles.json.
func NewJSONFileRepository(dataDir string) *JSONFileRepository {
	return &JSONFileRepository{
		col: jsonfile.NewCollection[models.Vehicle](filepath.Join(dataDir, FileName)),
	}
}

func (r *JSONFileRepository) List(ctx context.Context) ([]models.Vehicle, error) {
	return r.col.Load()
}

func (r *JSONFileRepository) Save(ctx context.Context, items []models.Vehicle) error {
	return r.col.Save(items)
}
