package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Dns2690/Rentals/internal/common"
	"github.com/Dns2690/Rentals/internal/models"
)

func TestAuthenticate(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	_, err := f.userSvc.Create(ctx, CreateUserInput{
		IDType: "fisica", ID: "101110111", Name: "Carlos Mora",
		Email: "carlos@example.com", Password: "clave12345", Role: models.RoleAdmin,
	})
	require.NoError(t, err)

	_, err = f.clientSvc.Create(ctx, CreateClientInput{
		IDType: "fisica", ID: "202220222", Name: "Ana Solis",
		Email: "ana@example.com", Password: "clave67890",
		Profession: "Doctora", Address: "Heredia", Job: "Hospital",
	})
	require.NoError(t, err)

	// Staff login resolves the stored role.
	id, err := f.authSvc.Authenticate(ctx, "carlos@example.com", "clave12345")
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, id.Role)
	require.Equal(t, "101110111", id.ID)

	// Client login always carries role "cliente".
	id, err = f.authSvc.Authenticate(ctx, "ana@example.com", "clave67890")
	require.NoError(t, err)
	require.Equal(t, models.RoleClient, id.Role)

	// Wrong password and unknown user both fail the same way.
	_, err = f.authSvc.Authenticate(ctx, "carlos@example.com", "incorrecta1")
	require.ErrorIs(t, err, common.ErrUnauthorized)
	_, err = f.authSvc.Authenticate(ctx, "nadie@example.com", "clave12345")
	require.ErrorIs(t, err, common.ErrUnauthorized)
}
