// Package clients persists client records as Docs/clients.json.
package clients

import (
	"context"
	"path/filepath"

	"github.com/Dns2690/Rentals/internal/models"
	"github.com/Dns2690/Rentals/internal/repositories/jsonfile"
)

// FileName is the store file inside the data directory.
const FileName = "clients.json"

// JSONFileRepository implements Repository over a whole-file JSON store.
type JSONFileRepository struct {
	col *jsonfile.Collection[models.Client]
}

// NewJSONFileRepository binds the repository to <dataDir>/clients.json.
func NewJSONFileRepository(dataDir string) *JSONFileRepository {
	return &JSONFileRepository{
		col: jsonfile.NewCollection[models.Client](filepath.Join(dataDir, FileName)),
	}
}

func (r *JSONFileRepository) List(ctx context.Context) ([]models.Client, error) {
	return r.col.Load()
}

func (r *JSONFileRepository) Save(ctx context.Context, items []models.Client) error {
	return r.col.Save(items)
}
