package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Dns2690/Rentals/internal/common"
	"github.com/Dns2690/Rentals/internal/models"
)

func validClient() CreateClientInput {
	return CreateClientInput{
		IDType: "fisica", ID: "301230123", Name: "Laura Campos",
		Email: "laura@example.com", Password: "clave12345",
		Profession: "Ingeniera", Address: "Cartago", Job: "Oficina",
	}
}

func TestClientCreateAndDuplicate(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	c, err := f.clientSvc.Create(ctx, validClient())
	require.NoError(t, err)
	require.Equal(t, models.RoleClient, c.Role)
	require.Equal(t, "laura@example.com", c.Username) // username is the email

	_, err = f.clientSvc.Create(ctx, validClient())
	require.ErrorIs(t, err, common.ErrAlreadyExists)
}

func TestClientCreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateClientInput)
	}{
		{"bad id for type", func(in *CreateClientInput) { in.ID = "99" }},
		{"unknown id type", func(in *CreateClientInput) { in.IDType = "licencia" }},
		{"numeric name", func(in *CreateClientInput) { in.Name = "L4ura" }},
		{"bad email", func(in *CreateClientInput) { in.Email = "laura-example.com" }},
		{"short password", func(in *CreateClientInput) { in.Password = "corta" }},
		{"numeric profession", func(in *CreateClientInput) { in.Profession = "1234" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, false)
			in := validClient()
			tc.mutate(&in)
			_, err := f.clientSvc.Create(context.Background(), in)
			require.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestClientUpdateAndDelete(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	_, err := f.clientSvc.Create(ctx, validClient())
	require.NoError(t, err)

	c, err := f.clientSvc.Update(ctx, "301230123", UpdateClientInput{Email: "nueva@example.com"})
	require.NoError(t, err)
	require.Equal(t, "nueva@example.com", c.Email)
	require.Equal(t, "nueva@example.com", c.Username)
	require.Equal(t, "Laura Campos", c.Name)

	_, err = f.clientSvc.Update(ctx, "301230123", UpdateClientInput{Password: "corta"})
	require.ErrorIs(t, err, common.ErrValidation)

	require.NoError(t, f.clientSvc.Delete(ctx, "301230123"))
	require.ErrorIs(t, f.clientSvc.Delete(ctx, "301230123"), common.ErrNotFound)
}

func TestUserCreateRoleRules(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	in := CreateUserInput{
		IDType: "fisica", ID: "401230123", Name: "Pedro Vargas",
		Email: "pedro@example.com", Password: "clave12345", Role: models.RoleAssistant,
	}
	u, err := f.userSvc.Create(ctx, in)
	require.NoError(t, err)
	require.Equal(t, models.RoleAssistant, u.Role)

	// Staff accounts cannot carry the client role.
	in.ID = "501230123"
	in.Role = models.RoleClient
	_, err = f.userSvc.Create(ctx, in)
	require.ErrorIs(t, err, common.ErrValidation)

	in.Role = models.Role("gerente")
	_, err = f.userSvc.Create(ctx, in)
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestUserUpdateAndDelete(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	_, err := f.userSvc.Create(ctx, CreateUserInput{
		IDType: "juridica", ID: "3101234567", Name: "Rosa Jimenez",
		Email: "rosa@example.com", Password: "clave12345", Role: models.RoleAdmin,
	})
	require.NoError(t, err)

	u, err := f.userSvc.Update(ctx, "3101234567", UpdateUserInput{Name: "Rosa Maria Jimenez"})
	require.NoError(t, err)
	require.Equal(t, "Rosa Maria Jimenez", u.Name)
	require.Equal(t, "rosa@example.com", u.Email)

	_, err = f.userSvc.Update(ctx, "0000000000", UpdateUserInput{Name: "Nadie Aqui"})
	require.ErrorIs(t, err, common.ErrNotFound)

	require.NoError(t, f.userSvc.Delete(ctx, "3101234567"))
	us, err := f.userSvc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, us)
}
