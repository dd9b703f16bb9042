package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Dns2690/Rentals/internal/common"
	"github.com/Dns2690/Rentals/internal/models"
)

func validVehicle() CreateVehicleInput {
	return CreateVehicleInput{
		Plate: "ABC123", Brand: "Toyota", Model: "Corolla",
		Year: 2023, Color: "Rojo", PassengerCapacity: 5,
	}
}

func TestVehicleCreate(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	v, err := f.vehicleSvc.Create(ctx, validVehicle())
	require.NoError(t, err)
	require.Equal(t, models.VehicleAvailable, v.State)

	// Duplicate plate is rejected.
	_, err = f.vehicleSvc.Create(ctx, validVehicle())
	require.ErrorIs(t, err, common.ErrAlreadyExists)
}

func TestVehicleCreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateVehicleInput)
	}{
		{"short plate", func(in *CreateVehicleInput) { in.Plate = "AB12" }},
		{"numeric brand", func(in *CreateVehicleInput) { in.Brand = "123" }},
		{"short model", func(in *CreateVehicleInput) { in.Model = "X" }},
		{"year too old", func(in *CreateVehicleInput) { in.Year = 1989 }},
		{"year too new", func(in *CreateVehicleInput) { in.Year = 2026 }},
		{"short color", func(in *CreateVehicleInput) { in.Color = "ab" }},
		{"capacity zero", func(in *CreateVehicleInput) { in.PassengerCapacity = 0 }},
		{"capacity too big", func(in *CreateVehicleInput) { in.PassengerCapacity = 16 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, false)
			in := validVehicle()
			tc.mutate(&in)
			_, err := f.vehicleSvc.Create(context.Background(), in)
			require.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestVehicleUpdateKeepsStateAndEmptyFields(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	_, err := f.vehicleSvc.Create(ctx, validVehicle())
	require.NoError(t, err)

	// Simulate an open rental having flipped the state.
	vs, err := f.vehicleRepo.List(ctx)
	require.NoError(t, err)
	vs[0].State = models.VehicleRented
	require.NoError(t, f.vehicleRepo.Save(ctx, vs))

	v, err := f.vehicleSvc.Update(ctx, "ABC123", UpdateVehicleInput{Color: "Azul"})
	require.NoError(t, err)
	require.Equal(t, "Azul", v.Color)
	require.Equal(t, "Toyota", v.Brand) // empty field keeps the stored value

	// The administrative edit cannot desynchronize availability.
	require.Equal(t, models.VehicleRented, v.State)
}

func TestVehicleUpdateNotFoundAndInvalid(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	_, err := f.vehicleSvc.Update(ctx, "ZZZ999", UpdateVehicleInput{Color: "Azul"})
	require.ErrorIs(t, err, common.ErrNotFound)

	_, err = f.vehicleSvc.Create(ctx, validVehicle())
	require.NoError(t, err)
	_, err = f.vehicleSvc.Update(ctx, "ABC123", UpdateVehicleInput{Brand: "123"})
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestVehicleDelete(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	_, err := f.vehicleSvc.Create(ctx, validVehicle())
	require.NoError(t, err)

	require.NoError(t, f.vehicleSvc.Delete(ctx, "ABC123"))
	require.ErrorIs(t, f.vehicleSvc.Delete(ctx, "ABC123"), common.ErrNotFound)

	vs, err := f.vehicleSvc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, vs)
}
