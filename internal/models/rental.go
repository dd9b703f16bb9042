package models

import "fmt"

// RentalState is the lifecycle state of a rental, persisted as a string.
type RentalState string

const (
	RentalPrepared RentalState = "PREPARADO" // created, vehicle reserved
	RentalActive   RentalState = "ACTIVO"    // vehicle handed over to the client
	RentalReturned RentalState = "DEVUELTO"  // terminal: vehicle received back
)

// Rental is a booking record linking a vehicle, a client, a date range and
// payment details. Rentals are never deleted; they only advance state.
type Rental struct {
	ID                string      `json:"id"`
	Plate             string      `json:"plate"`
	ClientID          string      `json:"client_id"`
	StartDate         string      `json:"start_date"`
	EndDate           string      `json:"end_date"`
	CostPerDay        int         `json:"cost_per_day"`
	PaymentCardNumber string      `json:"payment_card_number"`
	CardExpiration    string      `json:"card_expiration"`
	State             RentalState `json:"state"`
}

// AllowedTransitions defines the rental state machine as a directed graph.
// The lifecycle is strictly ordered: PREPARADO -> ACTIVO -> DEVUELTO,
// with no skipping and no reverse edges. DEVUELTO is terminal.
var AllowedTransitions = map[RentalState][]RentalState{
	RentalPrepared: {RentalActive},
	RentalActive:   {RentalReturned},
	RentalReturned: {},
}

// CanTransition reports whether from -> to is an allowed state transition.
func CanTransition(from, to RentalState) bool {
	allowed, ok := AllowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// ApplyTransition advances the rental to the given state.
// It fails without modifying the rental if the transition is not allowed.
func (r *Rental) ApplyTransition(to RentalState) error {
	if !CanTransition(r.State, to) {
		return fmt.Errorf("rental %s: transition %s -> %s not allowed", r.ID, r.State, to)
	}
	r.State = to
	return nil
}
