package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Dns2690/Rentals/internal/models"
	"github.com/Dns2690/Rentals/internal/services"
	"github.com/Dns2690/Rentals/internal/validate"
)

func (a *App) vehicleMenu(ctx context.Context) {
	for {
		fmt.Fprintln(a.out, "\n--- Gestión de vehículos ---")
		fmt.Fprintln(a.out, "1. Registrar vehículo")
		fmt.Fprintln(a.out, "2. Listar vehículos")
		fmt.Fprintln(a.out, "3. Consultar vehículo")
		fmt.Fprintln(a.out, "4. Editar vehículo")
		fmt.Fprintln(a.out, "5. Eliminar vehículo")
		fmt.Fprintln(a.out, "0. Volver")

		opt, err := GetSimpleText(a.reader, "Seleccione una opción", a.out)
		if err != nil {
			return
		}
		switch opt {
		case "1":
			a.registerVehicle(ctx)
		case "2":
			a.listVehicles(ctx)
		case "3":
			a.showVehicle(ctx)
		case "4":
			a.editVehicle(ctx)
		case "5":
			a.deleteVehicle(ctx)
		case "0":
			return
		default:
			fmt.Fprintln(a.out, "Opción desconocida:", opt)
		}
	}
}

func (a *App) registerVehicle(ctx context.Context) {
	var in services.CreateVehicleInput
	var err error

	if in.Plate, err = GetValidated(a.reader, "Placa (6 caracteres)", a.out, validate.Plate); err != nil {
		return
	}
	if in.Brand, err = GetValidated(a.reader, "Marca", a.out, alphabetic(3)); err != nil {
		return
	}
	if in.Model, err = GetValidated(a.reader, "Modelo", a.out, alphanumeric(2)); err != nil {
		return
	}
	year, err := GetValidated(a.reader, "Año (1990-2025)", a.out, validate.Year)
	if err != nil {
		return
	}
	in.Year, _ = strconv.Atoi(year)
	if in.Color, err = GetValidated(a.reader, "Color", a.out, alphabetic(3)); err != nil {
		return
	}
	capacity, err := GetValidated(a.reader, "Capacidad de pasajeros (1-15)", a.out, validate.Capacity)
	if err != nil {
		return
	}
	in.PassengerCapacity, _ = strconv.Atoi(capacity)

	v, err := a.vehicles.Create(ctx, in)
	if err != nil {
		a.printError(ctx, "register vehicle", err)
		return
	}
	fmt.Fprintf(a.out, "Vehículo %s registrado.\n", v.Plate)
}

func (a *App) listVehicles(ctx context.Context) {
	vs, err := a.vehicles.List(ctx)
	if err != nil {
		a.printError(ctx, "list vehicles", err)
		return
	}
	if len(vs) == 0 {
		fmt.Fprintln(a.out, "No hay vehículos registrados.")
		return
	}
	for _, v := range vs {
		a.printVehicle(v)
	}
}

func (a *App) printVehicle(v models.Vehicle) {
	fmt.Fprintf(a.out, "%s | %s %s %d | %s | %d pasajeros | %s\n",
		v.Plate, v.Brand, v.Model, v.Year, v.Color, v.PassengerCapacity, v.State)
}

func (a *App) showVehicle(ctx context.Context) {
	plate, err := GetSimpleText(a.reader, "Placa", a.out)
	if err != nil {
		return
	}
	v, err := a.vehicles.Get(ctx, plate)
	if err != nil {
		a.printError(ctx, "show vehicle", err)
		return
	}
	a.printVehicle(*v)
}

func (a *App) editVehicle(ctx context.Context) {
	plate, err := GetSimpleText(a.reader, "Placa del vehículo a editar", a.out)
	if err != nil {
		return
	}

	fmt.Fprintln(a.out, "Deje el campo vacío para mantener el valor actual.")
	var in services.UpdateVehicleInput
	if in.Brand, err = GetSimpleText(a.reader, "Marca", a.out); err != nil {
		return
	}
	if in.Model, err = GetSimpleText(a.reader, "Modelo", a.out); err != nil {
		return
	}
	if in.Year, err = GetOptionalInt(a.reader, "Año", a.out); err != nil {
		a.printError(ctx, "edit vehicle", err)
		return
	}
	if in.Color, err = GetSimpleText(a.reader, "Color", a.out); err != nil {
		return
	}
	if in.PassengerCapacity, err = GetOptionalInt(a.reader, "Capacidad de pasajeros", a.out); err != nil {
		a.printError(ctx, "edit vehicle", err)
		return
	}

	v, err := a.vehicles.Update(ctx, plate, in)
	if err != nil {
		a.printError(ctx, "edit vehicle", err)
		return
	}
	fmt.Fprintf(a.out, "Vehículo %s actualizado.\n", v.Plate)
}

func (a *App) deleteVehicle(ctx context.Context) {
	plate, err := GetSimpleText(a.reader, "Placa del vehículo a eliminar", a.out)
	if err != nil {
		return
	}
	if err := a.vehicles.Delete(ctx, plate); err != nil {
		a.printError(ctx, "delete vehicle", err)
		return
	}
	fmt.Fprintf(a.out, "Vehículo %s eliminado.\n", plate)
}
