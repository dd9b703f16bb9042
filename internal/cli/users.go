package cli

import (
	"context"
	"fmt"

	"github.com/Dns2690/Rentals/internal/models"
	"github.com/Dns2690/Rentals/internal/services"
	"github.com/Dns2690/Rentals/internal/validate"
)

// userMenu is reachable only for administrador sessions.
func (a *App) userMenu(ctx context.Context) {
	for {
		fmt.Fprintln(a.out, "\n--- Gestión de usuarios ---")
		fmt.Fprintln(a.out, "1. Registrar usuario")
		fmt.Fprintln(a.out, "2. Listar usuarios")
		fmt.Fprintln(a.out, "3. Editar usuario")
		fmt.Fprintln(a.out, "4. Eliminar usuario")
		fmt.Fprintln(a.out, "0. Volver")

		opt, err := GetSimpleText(a.reader, "Seleccione una opción", a.out)
		if err != nil {
			return
		}
		switch opt {
		case "1":
			a.registerUser(ctx)
		case "2":
			a.listUsers(ctx)
		case "3":
			a.editUser(ctx)
		case "4":
			a.deleteUser(ctx)
		case "0":
			return
		default:
			fmt.Fprintln(a.out, "Opción desconocida:", opt)
		}
	}
}

func (a *App) registerUser(ctx context.Context) {
	var in services.CreateUserInput
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
	role, err := GetValidated(a.reader, "Rol (administrador/asistente)", a.out, func(s string) bool {
		return s == string(models.RoleAdmin) || s == string(models.RoleAssistant)
	})
	if err != nil {
		return
	}
	in.Role = models.Role(role)

	u, err := a.users.Create(ctx, in)
	if err != nil {
		a.printError(ctx, "register user", err)
		return
	}
	fmt.Fprintf(a.out, "Usuario %s registrado.\n", u.ID)
}

func (a *App) listUsers(ctx context.Context) {
	us, err := a.users.List(ctx)
	if err != nil {
		a.printError(ctx, "list users", err)
		return
	}
	if len(us) == 0 {
		fmt.Fprintln(a.out, "No hay usuarios registrados.")
		return
	}
	for _, u := range us {
		fmt.Fprintf(a.out, "%s | %s | %s | %s\n", u.ID, u.Name, u.Email, u.Role)
	}
}

func (a *App) editUser(ctx context.Context) {
	id, err := GetSimpleText(a.reader, "Número de identificación del usuario a editar", a.out)
	if err != nil {
		return
	}

	fmt.Fprintln(a.out, "Deje el campo vacío para mantener el valor actual.")
	var in services.UpdateUserInput
	if in.Name, err = GetSimpleText(a.reader, "Nombre completo", a.out); err != nil {
		return
	}
	if in.Email, err = GetSimpleText(a.reader, "Correo electrónico", a.out); err != nil {
		return
	}
	if in.Password, err = getPassword("Contraseña (vacío para mantener)", a.out); err != nil {
		return
	}

	u, err := a.users.Update(ctx, id, in)
	if err != nil {
		a.printError(ctx, "edit user", err)
		return
	}
	fmt.Fprintf(a.out, "Usuario %s actualizado.\n", u.ID)
}

func (a *App) deleteUser(ctx context.Context) {
	id, err := GetSimpleText(a.reader, "Número de identificación del usuario a eliminar", a.out)
	if err != nil {
		return
	}
	if err := a.users.Delete(ctx, id); err != nil {
		a.printError(ctx, "delete user", err)
		return
	}
	fmt.Fprintf(a.out, "Usuario %s eliminado.\n", id)
}
