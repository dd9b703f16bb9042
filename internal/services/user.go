package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/Dns2690/Rentals/internal/common"
	"github.com/Dns2690/Rentals/internal/models"
	"github.com/Dns2690/Rentals/internal/repositories/users"
	"github.com/Dns2690/Rentals/internal/validate"
)

// UserService is the staff-account registry (administrador / asistente).
type UserService interface {
	// Create registers a new staff account. The identification number must
	// be valid for its document type and unique; the role must be
	// administrador or asistente.
	Create(ctx context.Context, in CreateUserInput) (*models.User, error)

	// List returns every staff account.
	List(ctx context.Context) ([]models.User, error)

	// Update edits name, email and password. Empty input fields keep the
	// current value.
	Update(ctx context.Context, id string, in UpdateUserInput) (*models.User, error)

	// Delete removes the staff account with the given identification number.
	Delete(ctx context.Context, id string) error
}

// CreateUserInput carries the staff registration fields as entered.
type CreateUserInput struct {
	IDType   string
	ID       string
	Name     string
	Email    string
	Password string
	Role     models.Role
}

// UpdateUserInput carries the editable fields; empty means keep.
type UpdateUserInput struct {
	Name     string
	Email    string
	Password string
}

type userService struct {
	repo users.Repository
	mu   *sync.Mutex
}

// NewUserService constructs the registry over the user store.
func NewUserService(repo users.Repository, mu *sync.Mutex) UserService {
	return &userService{repo: repo, mu: mu}
}

func (s *userService) Create(ctx context.Context, in CreateUserInput) (*models.User, error) {
	if !validate.IDNumber(in.IDType, in.ID) {
		return nil, fmt.Errorf("identification %q (%s): %w", in.ID, in.IDType, common.ErrValidation)
	}
	if !validate.Alphabetic(in.Name, 4) {
		return nil, fmt.Errorf("name %q: %w", in.Name, common.ErrValidation)
	}
	if !validate.Email(in.Email) {
		return nil, fmt.Errorf("email %q: %w", in.Email, common.ErrValidation)
	}
	if !validate.Password(in.Password) {
		return nil, fmt.Errorf("password: %w", common.ErrValidation)
	}
	if in.Role != models.RoleAdmin && in.Role != models.RoleAssistant {
		return nil, fmt.Errorf("role %q: %w", in.Role, common.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	us, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range us {
		if u.ID == in.ID {
			return nil, fmt.Errorf("user %s: %w", in.ID, common.ErrAlreadyExists)
		}
	}

	u := models.User{
		IDType:   in.IDType,
		ID:       in.ID,
		Name:     in.Name,
		Email:    in.Email,
		Username: in.Email,
		Password: in.Password,
		Role:     in.Role,
	}
	us = append(us, u)
	if err := s.repo.Save(ctx, us); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) Update(ctx context.Context, id string, in UpdateUserInput) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	us, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range us {
		if us[i].ID != id {
			continue
		}

		u := us[i]
		if in.Name != "" {
			u.Name = in.Name
		}
		if in.Email != "" {
			u.Email = in.Email
			u.Username = in.Email
		}
		if in.Password != "" {
			u.Password = in.Password
		}

		if !validate.Alphabetic(u.Name, 4) {
			return nil, fmt.Errorf("name %q: %w", u.Name, common.ErrValidation)
		}
		if !validate.Email(u.Email) {
			return nil, fmt.Errorf("email %q: %w", u.Email, common.ErrValidation)
		}
		if !validate.Password(u.Password) {
			return nil, fmt.Errorf("password: %w", common.ErrValidation)
		}

		us[i] = u
		if err := s.repo.Save(ctx, us); err != nil {
			return nil, err
		}
		return &us[i], nil
	}
	return nil, fmt.Errorf("user %s: %w", id, common.ErrNotFound)
}

func (s *userService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	us, err := s.repo.List(ctx)
	if err != nil {
		return err
	}

	kept := us[:0]
	for _, u := range us {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	if len(kept) == len(us) {
		return fmt.Errorf("user %s: %w", id, common.ErrNotFound)
	}
	return s.repo.Save(ctx, kept)
}
