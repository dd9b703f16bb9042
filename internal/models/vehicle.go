package models

import "strings"

// VehicleState is the availability state of a vehicle, persisted as a string.
type VehicleState string

const (
	VehicleAvailable VehicleState = "DISPONIBLE"
	VehicleRented    VehicleState = "RENTADO"
)

// Vehicle is a fleet record keyed by its plate number.
type Vehicle struct {
	Plate             string       `json:"plate"`
	Brand             string       `json:"brand"`
	Model             string       `json:"model"`
	Year              int          `json:"year"`
	Color             string       `json:"color"`
	PassengerCapacity int          `json:"passenger_capacity"`
	State             VehicleState `json:"state"`
}

// IsRented reports whether the vehicle is currently claimed by an open
// rental. Only the exact state "RENTADO" (case-insensitive) counts as
// unavailable; a missing or unknown state value is treated as available.
func (v *Vehicle) IsRented() bool {
	return strings.EqualFold(string(v.State), string(VehicleRented))
}
