// Package cli implements the interactive console: login, the role-gated
// menus, and the prompt flows that drive the registry and rental services.
// All user-facing text is in Spanish; everything read from or written to
// the console goes through the App's reader and writer so flows can be
// scripted in tests.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Dns2690/Rentals/internal/audit"
	"github.com/Dns2690/Rentals/internal/config"
	"github.com/Dns2690/Rentals/internal/logging"
	"github.com/Dns2690/Rentals/internal/models"
	"github.com/Dns2690/Rentals/internal/services"
)

type App struct {
	cfg   *config.Config
	log   logging.Logger
	trail *audit.Trail

	auth     services.AuthService
	vehicles services.VehicleService
	clients  services.ClientService
	users    services.UserService
	rentals  services.RentalService

	reader   *bufio.Reader
	out      io.Writer
	identity *models.Identity
}

func NewApp(
	cfg *config.Config,
	log logging.Logger,
	trail *audit.Trail,
	auth services.AuthService,
	vehicles services.VehicleService,
	clients services.ClientService,
	users services.UserService,
	rentals services.RentalService,
) *App {
	return &App{
		cfg:      cfg,
		log:      log,
		trail:    trail,
		auth:     auth,
		vehicles: vehicles,
		clients:  clients,
		users:    users,
		rentals:  rentals,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
}

// Run drives one console session: banner, login, role menu, logout.
// It returns an error only when login is abandoned; menu-level errors are
// reported to the user and logged, never propagated.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "=== Sistema de Alquiler de Vehículos ===")
	if err := a.login(ctx); err != nil {
		return err
	}
	defer a.logout()

	if a.identity.Role == models.RoleClient {
		a.clientRoot(ctx)
	} else {
		a.staffRoot(ctx)
	}
	return nil
}

// printError reports a failed operation to the user and the log. The user
// sees the error text; the log additionally carries the operation name.
func (a *App) printError(ctx context.Context, op string, err error) {
	fmt.Fprintf(a.out, "Error: %v\n", err)
	a.log.Error(ctx, op, "error", err)
}
