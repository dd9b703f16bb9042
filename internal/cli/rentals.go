package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Dns2690/Rentals/internal/models"
	"github.com/Dns2690/Rentals/internal/services"
	"github.com/Dns2690/Rentals/internal/validate"
)

func (a *App) rentalMenu(ctx context.Context) {
	for {
		fmt.Fprintln(a.out, "\n--- Gestión de alquileres ---")
		fmt.Fprintln(a.out, "1. Registrar alquiler")
		fmt.Fprintln(a.out, "2. Listar alquileres")
		fmt.Fprintln(a.out, "3. Entregar vehículo")
		fmt.Fprintln(a.out, "4. Recibir vehículo")
		fmt.Fprintln(a.out, "0. Volver")

		opt, err := GetSimpleText(a.reader, "Seleccione una opción", a.out)
		if err != nil {
			return
		}
		switch opt {
		case "1":
			a.createRental(ctx)
		case "2":
			a.listRentals(ctx)
		case "3":
			a.advanceRental(ctx, models.RentalPrepared, models.RentalActive)
		case "4":
			a.advanceRental(ctx, models.RentalActive, models.RentalReturned)
		case "0":
			return
		default:
			fmt.Fprintln(a.out, "Opción desconocida:", opt)
		}
	}
}

// createRental serves both staff and cliente sessions. For clientes the
// service ignores any entered client id and books against the session's own.
func (a *App) createRental(ctx context.Context) {
	var in services.CreateRentalInput
	var err error

	if in.Plate, err = GetSimpleText(a.reader, "Placa del vehículo", a.out); err != nil {
		return
	}
	if a.identity.Role.IsStaff() {
		if in.ClientID, err = GetSimpleText(a.reader, "Número de identificación del cliente", a.out); err != nil {
			return
		}
	}
	if in.StartDate, err = GetValidated(a.reader, "Fecha de inicio (AAAA-MM-DD)", a.out, validate.Date); err != nil {
		return
	}
	if in.EndDate, err = GetValidated(a.reader, "Fecha de fin (AAAA-MM-DD)", a.out, func(s string) bool {
		return validate.DateAfter(s, in.StartDate)
	}); err != nil {
		return
	}
	cost, err := GetValidated(a.reader, "Costo por día", a.out, validate.PositiveInt)
	if err != nil {
		return
	}
	in.CostPerDay, _ = strconv.Atoi(cost)
	if in.CardNumber, err = GetValidated(a.reader, "Número de tarjeta (13 o 16 dígitos)", a.out, validate.CardNumber); err != nil {
		return
	}
	if in.CardExpiration, err = GetValidated(a.reader, "Vencimiento de la tarjeta (MM-AAAA)", a.out, func(s string) bool {
		return validate.Expiry(s, time.Now())
	}); err != nil {
		return
	}

	r, err := a.rentals.Create(ctx, a.identity, in)
	if err != nil {
		a.printError(ctx, "create rental", err)
		return
	}
	fmt.Fprintf(a.out, "Alquiler %s registrado en estado %s.\n", r.ID, r.State)
}

func (a *App) listRentals(ctx context.Context) {
	rs, err := a.rentals.List(ctx, a.identity)
	if err != nil {
		a.printError(ctx, "list rentals", err)
		return
	}
	if len(rs) == 0 {
		fmt.Fprintln(a.out, "No hay alquileres registrados.")
		return
	}
	for _, r := range rs {
		fmt.Fprintf(a.out, "%s | placa %s | cliente %s | %s a %s | %d/día | %s\n",
			r.ID, r.Plate, r.ClientID, r.StartDate, r.EndDate, r.CostPerDay, r.State)
	}
}

// advanceRental drives one lifecycle step: hand-over (PREPARADO a ACTIVO) or
// return (ACTIVO a DEVUELTO). The rental can be addressed by its code or,
// when left blank, by the plate and client pair.
func (a *App) advanceRental(ctx context.Context, from, to models.RentalState) {
	id, err := GetSimpleText(a.reader, "Código del alquiler (vacío para buscar por placa y cliente)", a.out)
	if err != nil {
		return
	}

	var r *models.Rental
	if id != "" {
		r, err = a.rentals.UpdateStatusByID(ctx, id, to)
	} else {
		var plate, clientID string
		if plate, err = GetSimpleText(a.reader, "Placa del vehículo", a.out); err != nil {
			return
		}
		if clientID, err = GetSimpleText(a.reader, "Número de identificación del cliente", a.out); err != nil {
			return
		}
		r, err = a.rentals.UpdateStatus(ctx, plate, clientID, from, to)
	}
	if err != nil {
		a.printError(ctx, "advance rental", err)
		return
	}
	fmt.Fprintf(a.out, "Alquiler %s ahora en estado %s.\n", r.ID, r.State)
}
