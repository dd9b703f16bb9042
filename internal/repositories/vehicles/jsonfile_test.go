package vehicles

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Dns2690/Rentals/internal/models"
)

func TestListEmptyWhenFileMissing(t *testing.T) {
	repo := NewJSONFileRepository(t.TempDir())

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestSaveThenList(t *testing.T) {
	dir := t.TempDir()
	repo := NewJSONFileRepository(dir)
	ctx := context.Background()

	want := []models.Vehicle{
		{Plate: "ABC123", Brand: "Toyota", Model: "Corolla", Year: 2023, Color: "Rojo", PassengerCapacity: 5, State: models.VehicleAvailable},
	}
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)

	// The store file carries the flat JSON field names.
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	require.Contains(t, string(data), `"passenger_capacity": 5`)
	require.Contains(t, string(data), `"state": "DISPONIBLE"`)
}
