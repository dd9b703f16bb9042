package vehicles

import (
	"context"

	"github.com/Dns2690/Rentals/internal/models"
)

// Repository is the vehicle store: whole-list read and whole-list replace.
type Repository interface {
	// List returns every vehicle record.
	List(ctx context.Context) ([]models.Vehicle, error)

	// Save replaces the whole vehicle list.
	Save(ctx context.Context, items []models.Vehicle) error
}
