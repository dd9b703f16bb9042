package services

import (
	"context"
	"fmt"

	"github.com/Dns2690/Rentals/internal/common"
	"github.com/Dns2690/Rentals/internal/models"
	"github.com/Dns2690/Rentals/internal/repositories/clients"
	"github.com/Dns2690/Rentals/internal/repositories/users"
)

// AuthService authenticates a session against the combined user and client
// stores. Staff accounts are checked first, then clients; the first record
// whose username and password both match wins.
//
// Passwords are stored and compared in plain text. Credential hardening is
// an explicit non-goal of this system.
type AuthService interface {
	// Authenticate returns the identity for the given credentials, or
	// common.ErrUnauthorized when no record matches.
	Authenticate(ctx context.Context, username, password string) (*models.Identity, error)
}

type authService struct {
	userRepo   users.Repository
	clientRepo clients.Repository
}

// NewAuthService constructs the service over the user and client stores.
func NewAuthService(userRepo users.Repository, clientRepo clients.Repository) AuthService {
	return &authService{userRepo: userRepo, clientRepo: clientRepo}
}

func (s *authService) Authenticate(ctx context.Context, username, password string) (*models.Identity, error) {
	us, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range us {
		if u.Username == username && u.Password == password {
			return &models.Identity{ID: u.ID, Username: u.Username, Name: u.Name, Role: u.Role}, nil
		}
	}

	cs, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range cs {
		if c.Username == username && c.Password == password {
			return &models.Identity{ID: c.ID, Username: c.Username, Name: c.Name, Role: models.RoleClient}, nil
		}
	}

	return nil, fmt.Errorf("credentials for %q: %w", username, common.ErrUnauthorized)
}
