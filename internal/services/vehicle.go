package services

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/Dns2690/Rentals/internal/common"
	"github.com/Dns2690/Rentals/internal/models"
	"github.com/Dns2690/Rentals/internal/repositories/vehicles"
	"github.com/Dns2690/Rentals/internal/validate"
)

// VehicleService is the fleet registry. It never touches the availability
// state: vehicles are created DISPONIBLE and only the rental workflow
// transitions the state afterwards.
type VehicleService interface {
	// Create registers a new vehicle in state DISPONIBLE. The plate must be
	// unique.
	Create(ctx context.Context, in CreateVehicleInput) (*models.Vehicle, error)

	// List returns every vehicle.
	List(ctx context.Context) ([]models.Vehicle, error)

	// Get returns the vehicle with the given plate.
	Get(ctx context.Context, plate string) (*models.Vehicle, error)

	// Update edits descriptive fields of a vehicle. Empty input fields keep
	// the current value. The state field cannot be edited.
	Update(ctx context.Context, plate string, in UpdateVehicleInput) (*models.Vehicle, error)

	// Delete removes the vehicle with the given plate.
	Delete(ctx context.Context, plate string) error
}

// CreateVehicleInput carries the vehicle registration fields as entered.
type CreateVehicleInput struct {
	Plate             string
	Brand             string
	Model             string
	Year              int
	Color             string
	PassengerCapacity int
}

// UpdateVehicleInput carries the editable fields; empty string or zero means
// keep the stored value.
type UpdateVehicleInput struct {
	Brand             string
	Model             string
	Year              int
	Color             string
	PassengerCapacity int
}

type vehicleService struct {
	repo vehicles.Repository
	mu   *sync.Mutex
}

// NewVehicleService constructs the registry over the vehicle store.
func NewVehicleService(repo vehicles.Repository, mu *sync.Mutex) VehicleService {
	return &vehicleService{repo: repo, mu: mu}
}

func validateVehicleFields(brand, model string, year int, color string, capacity int) error {
	if !validate.Alphabetic(brand, 3) {
		return fmt.Errorf("brand %q: %w", brand, common.ErrValidation)
	}
	if !validate.Alphanumeric(model, 2) {
		return fmt.Errorf("model %q: %w", model, common.ErrValidation)
	}
	if !validate.Year(strconv.Itoa(year)) {
		return fmt.Errorf("year %d: %w", year, common.ErrValidation)
	}
	if !validate.Alphabetic(color, 3) {
		return fmt.Errorf("color %q: %w", color, common.ErrValidation)
	}
	if !validate.Capacity(strconv.Itoa(capacity)) {
		return fmt.Errorf("passenger capacity %d: %w", capacity, common.ErrValidation)
	}
	return nil
}

func (s *vehicleService) Create(ctx context.Context, in CreateVehicleInput) (*models.Vehicle, error) {
	if !validate.Plate(in.Plate) {
		return nil, fmt.Errorf("plate %q: %w", in.Plate, common.ErrValidation)
	}
	if err := validateVehicleFields(in.Brand, in.Model, in.Year, in.Color, in.PassengerCapacity); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	vs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, v := range vs {
		if v.Plate == in.Plate {
			return nil, fmt.Errorf("vehicle %s: %w", in.Plate, common.ErrAlreadyExists)
		}
	}

	v := models.Vehicle{
		Plate:             in.Plate,
		Brand:             in.Brand,
		Model:             in.Model,
		Year:              in.Year,
		Color:             in.Color,
		PassengerCapacity: in.PassengerCapacity,
		State:             models.VehicleAvailable,
	}
	vs = append(vs, v)
	if err := s.repo.Save(ctx, vs); err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *vehicleService) List(ctx context.Context) ([]models.Vehicle, error) {
	return s.repo.List(ctx)
}

func (s *vehicleService) Get(ctx context.Context, plate string) (*models.Vehicle, error) {
	vs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range vs {
		if vs[i].Plate == plate {
			return &vs[i], nil
		}
	}
	return nil, fmt.Errorf("vehicle %s: %w", plate, common.ErrNotFound)
}

func (s *vehicleService) Update(ctx context.Context, plate string, in UpdateVehicleInput) (*models.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range vs {
		if vs[i].Plate != plate {
			continue
		}

		v := vs[i]
		if in.Brand != "" {
			v.Brand = in.Brand
		}
		if in.Model != "" {
			v.Model = in.Model
		}
		if in.Year != 0 {
			v.Year = in.Year
		}
		if in.Color != "" {
			v.Color = in.Color
		}
		if in.PassengerCapacity != 0 {
			v.PassengerCapacity = in.PassengerCapacity
		}
		if err := validateVehicleFields(v.Brand, v.Model, v.Year, v.Color, v.PassengerCapacity); err != nil {
			return nil, err
		}

		vs[i] = v
		if err := s.repo.Save(ctx, vs); err != nil {
			return nil, err
		}
		return &vs[i], nil
	}
	return nil, fmt.Errorf("vehicle %s: %w", plate, common.ErrNotFound)
}

func (s *vehicleService) Delete(ctx context.Context, plate string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	vs, err := s.repo.List(ctx)
	if err != nil {
		return err
	}

	kept := vs[:0]
	for _, v := range vs {
		if v.Plate != plate {
			kept = append(kept, v)
		}
	}
	if len(kept) == len(vs) {
		return fmt.Errorf("vehicle %s: %w", plate, common.ErrNotFound)
	}
	return s.repo.Save(ctx, kept)
}
