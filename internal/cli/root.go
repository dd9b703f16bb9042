package cli

import (
	"context"
	"fmt"

	"github.com/Dns2690/Rentals/internal/models"
)

// staffRoot is the main menu for administrador and asistente sessions.
// User administration is reachable only for administrators.
func (a *App) staffRoot(ctx context.Context) {
	for {
		fmt.Fprintln(a.out, "\n--- Menú principal ---")
		if a.identity.Role == models.RoleAdmin {
			fmt.Fprintln(a.out, "1. Gestión de usuarios")
		}
		fmt.Fprintln(a.out, "2. Gestión de vehículos")
		fmt.Fprintln(a.out, "3. Gestión de clientes")
		fmt.Fprintln(a.out, "4. Gestión de alquileres")
		fmt.Fprintln(a.out, "0. Salir")

		opt, err := GetSimpleText(a.reader, "Seleccione una opción", a.out)
		if err != nil {
			return
		}
		switch opt {
		case "1":
			if a.identity.Role != models.RoleAdmin {
				fmt.Fprintln(a.out, "Opción no disponible para su rol.")
				continue
			}
			a.userMenu(ctx)
		case "2":
			a.vehicleMenu(ctx)
		case "3":
			a.clientMenu(ctx)
		case "4":
			a.rentalMenu(ctx)
		case "0":
			fmt.Fprintln(a.out, "Hasta luego.")
			return
		default:
			fmt.Fprintln(a.out, "Opción desconocida:", opt)
		}
	}
}

// clientRoot is the main menu for cliente sessions: own profile and own
// rentals only.
func (a *App) clientRoot(ctx context.Context) {
	for {
		fmt.Fprintln(a.out, "\n--- Menú principal ---")
		fmt.Fprintln(a.out, "1. Ver mi perfil")
		fmt.Fprintln(a.out, "2. Editar mi perfil")
		fmt.Fprintln(a.out, "3. Alquilar un vehículo")
		fmt.Fprintln(a.out, "4. Mis alquileres")
		fmt.Fprintln(a.out, "0. Salir")

		opt, err := GetSimpleText(a.reader, "Seleccione una opción", a.out)
		if err != nil {
			return
		}
		switch opt {
		case "1":
			a.showOwnProfile(ctx)
		case "2":
			a.editOwnProfile(ctx)
		case "3":
			a.createRental(ctx)
		case "4":
			a.listRentals(ctx)
		case "0":
			fmt.Fprintln(a.out, "Hasta luego.")
			return
		default:
			fmt.Fprintln(a.out, "Opción desconocida:", opt)
		}
	}
}
