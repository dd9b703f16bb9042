package cli

import (
	"context"
	"fmt"

	"github.com/Dns2690/Rentals/internal/models"
	"github.com/Dns2690/Rentals/internal/services"
	"github.com/Dns2690/Rentals/internal/validate"
)

// validIDType accepts the four identification types the validators know.
func validIDType(s string) bool {
	switch s {
	case "fisica", "dimex", "pasaporte", "juridica":
		return true
	}
	return false
}

func (a *App) clientMenu(ctx context.Context) {
	for {
		fmt.Fprintln(a.out, "\n--- Gestión de clientes ---")
		fmt.Fprintln(a.out, "1. Registrar cliente")
		fmt.Fprintln(a.out, "2. Listar clientes")
		fmt.Fprintln(a.out, "3. Consultar cliente")
		fmt.Fprintln(a.out, "4. Editar cliente")
		fmt.Fprintln(a.out, "5. Eliminar cliente")
		fmt.Fprintln(a.out, "0. Volver")

		opt, err := GetSimpleText(a.reader, "Seleccione una opción", a.out)
		if err != nil {
			return
		}
		switch opt {
		case "1":
			a.registerClient(ctx)
		case "2":
			a.listClients(ctx)
		case "3":
			a.showClient(ctx)
		case "4":
			a.editClient(ctx)
		case "5":
			a.deleteClient(ctx)
		case "0":
			return
		default:
			fmt.Fprintln(a.out, "Opción desconocida:", opt)
		}
	}
}

func (a *App) registerClient(ctx context.Context) {
	var in services.CreateClientInput
	var err error

	if in.IDType, err = GetValidated(a.reader, "Tipo de identificación (fisica/dimex/pasaporte/juridica)", a.out, validIDType); err != nil {
		return
	}
	if in.ID, err = GetValidated(a.reader, "Número de identificación", a.out, func(s string) bool {
		return validate.IDNumber(in.IDType, s)
	}); err != nil {
		return
	}
	if in.Name, err = GetValidated(a.reader, "Nombre completo", a.out, alphabetic(4)); err != nil {
		return
	}
	if in.Email, err = GetValidated(a.reader, "Correo electrónico", a.out, validate.Email); err != nil {
		return
	}
	if in.Password, err = a.getValidPassword("Contraseña (8 a 12 caracteres)"); err != nil {
		return
	}
	if in.Profession, err = GetValidated(a.reader, "Profesión", a.out, alphabetic(4)); err != nil {
		return
	}
	if in.Address, err = GetValidated(a.reader, "Dirección", a.out, alphabetic(4)); err != nil {
		return
	}
	if in.Job, err = GetValidated(a.reader, "Lugar de trabajo", a.out, alphabetic(4)); err != nil {
		return
	}

	c, err := a.clients.Create(ctx, in)
	if err != nil {
		a.printError(ctx, "register client", err)
		return
	}
	fmt.Fprintf(a.out, "Cliente %s registrado.\n", c.ID)
}

func (a *App) listClients(ctx context.Context) {
	cs, err := a.clients.List(ctx)
	if err != nil {
		a.printError(ctx, "list clients", err)
		return
	}
	if len(cs) == 0 {
		fmt.Fprintln(a.out, "No hay clientes registrados.")
		return
	}
	for _, c := range cs {
		a.printClient(c)
	}
}

func (a *App) printClient(c models.Client) {
	fmt.Fprintf(a.out, "%s | %s | %s | %s | %s\n",
		c.ID, c.Name, c.Email, c.Profession, c.Address)
}

func (a *App) showClient(ctx context.Context) {
	id, err := GetSimpleText(a.reader, "Número de identificación", a.out)
	if err != nil {
		return
	}
	c, err := a.clients.Get(ctx, id)
	if err != nil {
		a.printError(ctx, "show client", err)
		return
	}
	a.printClient(*c)
}

func (a *App) editClient(ctx context.Context) {
	id, err := GetSimpleText(a.reader, "Número de identificación del cliente a editar", a.out)
	if err != nil {
		return
	}
	a.editClientByID(ctx, id)
}

func (a *App) deleteClient(ctx context.Context) {
	id, err := GetSimpleText(a.reader, "Número de identificación del cliente a eliminar", a.out)
	if err != nil {
		return
	}
	if err := a.clients.Delete(ctx, id); err != nil {
		a.printError(ctx, "delete client", err)
		return
	}
	fmt.Fprintf(a.out, "Cliente %s eliminado.\n", id)
}

// showOwnProfile and editOwnProfile serve cliente sessions, which operate on
// their own record only.

func (a *App) showOwnProfile(ctx context.Context) {
	c, err := a.clients.Get(ctx, a.identity.ID)
	if err != nil {
		a.printError(ctx, "show profile", err)
		return
	}
	fmt.Fprintf(a.out, "Identificación: %s (%s)\n", c.ID, c.IDType)
	fmt.Fprintf(a.out, "Nombre: %s\n", c.Name)
	fmt.Fprintf(a.out, "Correo: %s\n", c.Email)
	fmt.Fprintf(a.out, "Profesión: %s\n", c.Profession)
	fmt.Fprintf(a.out, "Dirección: %s\n", c.Address)
	fmt.Fprintf(a.out, "Lugar de trabajo: %s\n", c.Job)
}

func (a *App) editOwnProfile(ctx context.Context) {
	a.editClientByID(ctx, a.identity.ID)
}

func (a *App) editClientByID(ctx context.Context, id string) {
	fmt.Fprintln(a.out, "Deje el campo vacío para mantener el valor actual.")

	var in services.UpdateClientInput
	var err error
	if in.Name, err = GetSimpleText(a.reader, "Nombre completo", a.out); err != nil {
		return
	}
	if in.Email, err = GetSimpleText(a.reader, "Correo electrónico", a.out); err != nil {
		return
	}
	if in.Password, err = getPassword("Contraseña (vacío para mantener)", a.out); err != nil {
		return
	}
	if in.Profession, err = GetSimpleText(a.reader, "Profesión", a.out); err != nil {
		return
	}
	if in.Address, err = GetSimpleText(a.reader, "Dirección", a.out); err != nil {
		return
	}
	if in.Job, err = GetSimpleText(a.reader, "Lugar de trabajo", a.out); err != nil {
		return
	}

	c, err := a.clients.Update(ctx, id, in)
	if err != nil {
		a.printError(ctx, "edit client", err)
		return
	}
	fmt.Fprintf(a.out, "Cliente %s actualizado.\n", c.ID)
}
