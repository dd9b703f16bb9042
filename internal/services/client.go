package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/Dns2690/Rentals/internal/common"
	"github.com/Dns2690/Rentals/internal/models"
	"github.com/Dns2690/Rentals/internal/repositories/clients"
	"github.com/Dns2690/Rentals/internal/validate"
)

// ClientService is the client registry. Clients log in with their email as
// username and always carry role "cliente".
type ClientService interface {
	// Create registers a new client. The identification number must be valid
	// for its document type and unique.
	Create(ctx context.Context, in CreateClientInput) (*models.Client, error)

	// List returns every client.
	List(ctx context.Context) ([]models.Client, error)

	// Get returns the client with the given identification number.
	Get(ctx context.Context, id string) (*models.Client, error)

	// Update edits a client's profile fields. Empty input fields keep the
	// current value. The identification number cannot change.
	Update(ctx context.Context, id string, in UpdateClientInput) (*models.Client, error)

	// Delete removes the client with the given identification number.
	Delete(ctx context.Context, id string) error
}

// CreateClientInput carries the client registration fields as entered.
type CreateClientInput struct {
	IDType     string
	ID         string
	Name       string
	Email      string
	Password   string
	Profession string
	Address    string
	Job        string
}

// UpdateClientInput carries the editable profile fields; empty means keep.
type UpdateClientInput struct {
	Name       string
	Email      string
	Password   string
	Profession string
	Address    string
	Job        string
}

type clientService struct {
	repo clients.Repository
	mu   *sync.Mutex
}

// NewClientService constructs the registry over the client store.
func NewClientService(repo clients.Repository, mu *sync.Mutex) ClientService {
	return &clientService{repo: repo, mu: mu}
}

func (s *clientService) Create(ctx context.Context, in CreateClientInput) (*models.Client, error) {
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
	if !validate.Alphabetic(in.Profession, 4) {
		return nil, fmt.Errorf("profession %q: %w", in.Profession, common.ErrValidation)
	}
	if !validate.Alphabetic(in.Address, 4) {
		return nil, fmt.Errorf("address %q: %w", in.Address, common.ErrValidation)
	}
	if !validate.Alphabetic(in.Job, 4) {
		return nil, fmt.Errorf("job address %q: %w", in.Job, common.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range cs {
		if c.ID == in.ID {
			return nil, fmt.Errorf("client %s: %w", in.ID, common.ErrAlreadyExists)
		}
	}

	c := models.Client{
		IDType:     in.IDType,
		ID:         in.ID,
		Name:       in.Name,
		Email:      in.Email,
		Username:   in.Email,
		Password:   in.Password,
		Profession: in.Profession,
		Address:    in.Address,
		Job:        in.Job,
		Role:       models.RoleClient,
	}
	cs = append(cs, c)
	if err := s.repo.Save(ctx, cs); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *clientService) List(ctx context.Context) ([]models.Client, error) {
	return s.repo.List(ctx)
}

func (s *clientService) Get(ctx context.Context, id string) (*models.Client, error) {
	cs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range cs {
		if cs[i].ID == id {
			return &cs[i], nil
		}
	}
	return nil, fmt.Errorf("client %s: %w", id, common.ErrNotFound)
}

func (s *clientService) Update(ctx context.Context, id string, in UpdateClientInput) (*models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range cs {
		if cs[i].ID != id {
			continue
		}

		c := cs[i]
		if in.Name != "" {
			c.Name = in.Name
		}
		if in.Email != "" {
			c.Email = in.Email
			c.Username = in.Email
		}
		if in.Password != "" {
			c.Password = in.Password
		}
		if in.Profession != "" {
			c.Profession = in.Profession
		}
		if in.Address != "" {
			c.Address = in.Address
		}
		if in.Job != "" {
			c.Job = in.Job
		}

		if !validate.Alphabetic(c.Name, 4) {
			return nil, fmt.Errorf("name %q: %w", c.Name, common.ErrValidation)
		}
		if !validate.Email(c.Email) {
			return nil, fmt.Errorf("email %q: %w", c.Email, common.ErrValidation)
		}
		if !validate.Password(c.Password) {
			return nil, fmt.Errorf("password: %w", common.ErrValidation)
		}

		cs[i] = c
		if err := s.repo.Save(ctx, cs); err != nil {
			return nil, err
		}
		return &cs[i], nil
	}
	return nil, fmt.Errorf("client %s: %w", id, common.ErrNotFound)
}

func (s *clientService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cs, err := s.repo.List(ctx)
	if err != nil {
		return err
	}

	kept := cs[:0]
	for _, c := range cs {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(cs) {
		return fmt.Errorf("client %s: %w", id, common.ErrNotFound)
	}
	return s.repo.Save(ctx, kept)
}
