package users

import (
	"context"

	"github.com/Dns2690/Rentals/internal/models"
)

// Repository is the staff-user store: whole-list read and whole-list replace.
type Repository interface {
	// List returns every user record.
	List(ctx context.Context) ([]models.User, error)

	// Save replaces the whole user list.
	Save(ctx context.Context, items []models.User) error
}
