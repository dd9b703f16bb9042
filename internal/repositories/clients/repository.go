package clients

import (
	"context"

	"github.com/Dns2690/Rentals/internal/models"
)

// Repository is the client store: whole-list read and whole-list replace.
type Repository interface {
	// List returns every client record.
	List(ctx context.Context) ([]models.Client, error)

	// Save replaces the whole client list.
	Save(ctx context.Context, items []models.Client) error
}
