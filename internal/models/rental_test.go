package models

import "testing"

func TestCanTransition(t *testing.T) {
	if !CanTransition(RentalPrepared, RentalActive) {
		t.Fatalf("expected PREPARADO -> ACTIVO allowed")
	}
	if !CanTransition(RentalActive, RentalReturned) {
		t.Fatalf("expected ACTIVO -> DEVUELTO allowed")
	}

	// No skipping, no reverse edges, DEVUELTO is terminal.
	blocked := []struct{ from, to RentalState }{
		{RentalPrepared, RentalReturned},
		{RentalActive, RentalPrepared},
		{RentalReturned, RentalActive},
		{RentalReturned, RentalPrepared},
		{RentalPrepared, RentalPrepared},
		{RentalState("OTRO"), RentalActive},
	}
	for _, tc := range blocked {
		if CanTransition(tc.from, tc.to) {
			t.Errorf("expected %s -> %s not allowed", tc.from, tc.to)
		}
	}
}

func TestApplyTransition(t *testing.T) {
	r := &Rental{ID: "r1", State: RentalPrepared}

	if err := r.ApplyTransition(RentalActive); err != nil {
		t.Fatalf("ApplyTransition: %v", err)
	}
	if r.State != RentalActive {
		t.Fatalf("expected state ACTIVO, got %s", r.State)
	}

	if err := r.ApplyTransition(RentalPrepared); err == nil {
		t.Fatalf("expected reverse transition to fail")
	}
	if r.State != RentalActive {
		t.Fatalf("failed transition must not modify the rental, got %s", r.State)
	}
}

func TestVehicleIsRented(t *testing.T) {
	tests := []struct {
		state VehicleState
		want  bool
	}{
		{VehicleRented, true},
		{VehicleState("rentado"), true}, // case-insensitive match
		{VehicleAvailable, false},
		{VehicleState(""), false},       // missing state is available
		{VehicleState("TALLER"), false}, // unknown state is available
	}
	for _, tc := range tests {
		v := &Vehicle{Plate: "ABC123", State: tc.state}
		if got := v.IsRented(); got != tc.want {
			t.Errorf("IsRented with state %q = %v, want %v", tc.state, got, tc.want)
		}
	}
}
