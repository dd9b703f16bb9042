// Package users persists staff accounts as Docs/users.json.
package users

import (
	"context"
	"path/filepath"

	"github.com/Dns2690/Rentals/internal/models"
	"github.com/Dns2690/Rentals/internal/repositories/jsonfile"
)

// FileName is the store file inside the data directory.
const FileName = "users.json"

// JSONFileRepository implements Repository over a whole-file JSON store.
type JSONFileRepository struct {
	col *jsonfile.Collection[models.User]
}

// NewJSONFileRepository binds the repository to <dataDir>/users.json.
func NewJSONFileRepository(dataDir string) *JSONFileRepository {
	return &JSONFileRepository{
		col: jsonfile.NewCollection[models.User](filepath.Join(dataDir, FileName)),
	}
}

func (r *JSONFileRepository) List(ctx context.Context) ([]models.User, error) {
	return r.col.Load()
}

func (r *JSONFileRepository) Save(ctx context.Context, items []models.User) error {
	return r.col.Save(items)
}
