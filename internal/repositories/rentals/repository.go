package rentals

import (
	"context"

	"github.com/Dns2690/Rentals/internal/models"
)

// Repository is the rental store: whole-list read and whole-list replace.
// Rentals are append-and-mutate only; there is no delete operation.
type Repository interface {
	// List returns every rental record.
	List(ctx context.Context) ([]models.Rental, error)

	// Save replaces the whole rental list.
	Save(ctx context.Context, items []models.Rental) error
}
