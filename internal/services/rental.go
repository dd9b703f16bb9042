// Package services contains the application services behind the console
// menus: the rental workflow (the core), the vehicle/client/user registries
// and authentication. Services re-validate their inputs even though the
// prompts already filter them, so the rules hold for any caller.
package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Dns2690/Rentals/internal/common"
	"github.com/Dns2690/Rentals/internal/logging"
	"github.com/Dns2690/Rentals/internal/models"
	"github.com/Dns2690/Rentals/internal/repositories/clients"
	"github.com/Dns2690/Rentals/internal/repositories/rentals"
	"github.com/Dns2690/Rentals/internal/repositories/vehicles"
	"github.com/Dns2690/Rentals/internal/validate"
)

// RentalService is the rental lifecycle workflow. Creating a rental reserves
// the vehicle (state RENTADO); returning it (DEVUELTO) releases the vehicle
// (state DISPONIBLE). The vehicle state has no other writer.
type RentalService interface {
	// Create validates the request and, on success, appends a new rental in
	// state PREPARADO and marks the vehicle RENTADO. For role "cliente" the
	// client id is forced to the identity's own id.
	Create(ctx context.Context, identity *models.Identity, in CreateRentalInput) (*models.Rental, error)

	// UpdateStatus advances the first rental matching (plate, clientID,
	// state == from) to the given state. On DEVUELTO the vehicle is released.
	UpdateStatus(ctx context.Context, plate, clientID string, from, to models.RentalState) (*models.Rental, error)

	// UpdateStatusByID advances the rental with the given id to the given
	// state, with the same vehicle coupling as UpdateStatus.
	UpdateStatusByID(ctx context.Context, id string, to models.RentalState) (*models.Rental, error)

	// List returns all rentals, or only the identity's own when its role is
	// "cliente".
	List(ctx context.Context, identity *models.Identity) ([]models.Rental, error)
}

// CreateRentalInput carries the rental request fields. ClientID is ignored
// for identities with role "cliente".
type CreateRentalInput struct {
	Plate          string
	ClientID       string
	StartDate      string
	EndDate        string
	CostPerDay     int
	CardNumber     string
	CardExpiration string
}

type rentalService struct {
	rentalRepo  rentals.Repository
	vehicleRepo vehicles.Repository
	clientRepo  clients.Repository
	log         logging.Logger

	// mu serializes every load-mutate-save cycle so the two store writes of
	// one logical operation form a single critical section.
	mu *sync.Mutex

	// requireClientExists makes operator-created rentals fail when the
	// client id is not registered. Off by default: the operator is trusted.
	requireClientExists bool

	now func() time.Time
}

// NewRentalService constructs the workflow over the three stores. The mutex
// must be the one shared by all services touching the same data directory.
func NewRentalService(rentalRepo rentals.Repository, vehicleRepo vehicles.Repository, clientRepo clients.Repository, log logging.Logger, mu *sync.Mutex, requireClientExists bool) RentalService {
	return &rentalService{
		rentalRepo:          rentalRepo,
		vehicleRepo:         vehicleRepo,
		clientRepo:          clientRepo,
		log:                 log,
		mu:                  mu,
		requireClientExists: requireClientExists,
		now:                 time.Now,
	}
}

func (s *rentalService) Create(ctx context.Context, identity *models.Identity, in CreateRentalInput) (*models.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vs, err := s.vehicleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range vs {
		if vs[i].Plate == in.Plate {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("vehicle %s: %w", in.Plate, common.ErrNotFound)
	}
	if vs[idx].IsRented() {
		return nil, fmt.Errorf("vehicle %s: %w", in.Plate, common.ErrVehicleUnavailable)
	}

	if !validate.Date(in.StartDate) {
		return nil, fmt.Errorf("start date %q: %w", in.StartDate, common.ErrValidation)
	}
	if !validate.DateAfter(in.EndDate, in.StartDate) {
		return nil, fmt.Errorf("end date %q: %w", in.EndDate, common.ErrValidation)
	}
	if in.CostPerDay <= 0 {
		return nil, fmt.Errorf("cost per day %d: %w", in.CostPerDay, common.ErrValidation)
	}
	if !validate.CardNumber(in.CardNumber) {
		return nil, fmt.Errorf("card number: %w", common.ErrValidation)
	}
	if !validate.Expiry(in.CardExpiration, s.now()) {
		return nil, fmt.Errorf("card expiration %q: %w", in.CardExpiration, common.ErrValidation)
	}

	clientID := in.ClientID
	if identity != nil && identity.Role == models.RoleClient {
		// Self-service: a client can only rent for themselves.
		clientID = identity.ID
	} else if s.requireClientExists {
		ok, err := s.clientExists(ctx, clientID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("client %s: %w", clientID, common.ErrNotFound)
		}
	}

	rental := models.Rental{
		ID:                uuid.NewString(),
		Plate:             in.Plate,
		ClientID:          clientID,
		StartDate:         in.StartDate,
		EndDate:           in.EndDate,
		CostPerDay:        in.CostPerDay,
		PaymentCardNumber: in.CardNumber,
		CardExpiration:    in.CardExpiration,
		State:             models.RentalPrepared,
	}

	rs, err := s.rentalRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	rs = append(rs, rental)
	if err := s.rentalRepo.Save(ctx, rs); err != nil {
		return nil, err
	}

	vs[idx].State = models.VehicleRented
	if err := s.vehicleRepo.Save(ctx, vs); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "rental created", "id", rental.ID, "plate", rental.Plate, "client", rental.ClientID)
	return &rental, nil
}

func (s *rentalService) UpdateStatus(ctx context.Context, plate, clientID string, from, to models.RentalState) (*models.Rental, error) {
	if !models.CanTransition(from, to) {
		return nil, fmt.Errorf("%s -> %s: %w", from, to, common.ErrInvalidTransition)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.transition(ctx, to, func(r *models.Rental) bool {
		return r.Plate == plate && r.ClientID == clientID && r.State == from
	})
}

func (s *rentalService) UpdateStatusByID(ctx context.Context, id string, to models.RentalState) (*models.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.transition(ctx, to, func(r *models.Rental) bool {
		return r.ID == id
	})
}

// transition advances the first rental matching the predicate, in stored
// order, and persists the rental store. On DEVUELTO it also releases the
// vehicle. The caller must hold s.mu.
func (s *rentalService) transition(ctx context.Context, to models.RentalState, match func(*models.Rental) bool) (*models.Rental, error) {
	rs, err := s.rentalRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range rs {
		if match(&rs[i]) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("rental: %w", common.ErrNotFound)
	}

	if err := rs[idx].ApplyTransition(to); err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrInvalidTransition, err)
	}
	if err := s.rentalRepo.Save(ctx, rs); err != nil {
		return nil, err
	}

	if to == models.RentalReturned {
		if err := s.releaseVehicle(ctx, rs[idx].Plate); err != nil {
			return nil, err
		}
	}

	s.log.Info(ctx, "rental state updated", "id", rs[idx].ID, "state", to)
	return &rs[idx], nil
}

// releaseVehicle forces the vehicle back to DISPONIBLE after a return. A
// missing vehicle (deleted by an administrator while rented) is logged and
// otherwise ignored: the rental transition already happened.
func (s *rentalService) releaseVehicle(ctx context.Context, plate string) error {
	vs, err := s.vehicleRepo.List(ctx)
	if err != nil {
		return err
	}
	for i := range vs {
		if vs[i].Plate == plate {
			vs[i].State = models.VehicleAvailable
			return s.vehicleRepo.Save(ctx, vs)
		}
	}
	s.log.Warn(ctx, "returned rental references unknown vehicle", "plate", plate)
	return nil
}

func (s *rentalService) List(ctx context.Context, identity *models.Identity) ([]models.Rental, error) {
	rs, err := s.rentalRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if identity == nil || identity.Role != models.RoleClient {
		return rs, nil
	}

	own := make([]models.Rental, 0, len(rs))
	for _, r := range rs {
		if r.ClientID == identity.ID {
			own = append(own, r)
		}
	}
	return own, nil
}

func (s *rentalService) clientExists(ctx context.Context, id string) (bool, error) {
	cs, err := s.clientRepo.List(ctx)
	if err != nil {
		return false, err
	}
	for _, c := range cs {
		if c.ID == id {
			return true, nil
		}
	}
	return false, nil
}
