package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/Dns2690/Rentals/internal/audit"
	"github.com/Dns2690/Rentals/internal/buildinfo"
	"github.com/Dns2690/Rentals/internal/cli"
	"github.com/Dns2690/Rentals/internal/config"
	"github.com/Dns2690/Rentals/internal/filex"
	"github.com/Dns2690/Rentals/internal/flagx"
	"github.com/Dns2690/Rentals/internal/logging"
	"github.com/Dns2690/Rentals/internal/repositories/clients"
	"github.com/Dns2690/Rentals/internal/repositories/rentals"
	"github.com/Dns2690/Rentals/internal/repositories/users"
	"github.com/Dns2690/Rentals/internal/repositories/vehicles"
	"github.com/Dns2690/Rentals/internal/services"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	applyFlags(cfg)

	logger, err := logging.NewZapLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	dataDir, err := filex.EnsureDir(cfg.DataDir)
	if err != nil {
		log.Fatalf("data dir: %v", err)
	}

	trail, err := audit.New(cfg.AuditFile)
	if err != nil {
		log.Fatalf("audit trail: %v", err)
	}
	defer trail.Close()

	userRepo := users.NewJSONFileRepository(dataDir)
	clientRepo := clients.NewJSONFileRepository(dataDir)
	vehicleRepo := vehicles.NewJSONFileRepository(dataDir)
	rentalRepo := rentals.NewJSONFileRepository(dataDir)

	// One mutex guards every load-mutate-save cycle across all four stores.
	var mu sync.Mutex

	authSvc := services.NewAuthService(userRepo, clientRepo)
	userSvc := services.NewUserService(userRepo, &mu)
	clientSvc := services.NewClientService(clientRepo, &mu)
	vehicleSvc := services.NewVehicleService(vehicleRepo, &mu)
	rentalSvc := services.NewRentalService(rentalRepo, vehicleRepo, clientRepo, logger, &mu, cfg.RequireClientExists)

	app := cli.NewApp(cfg, logger, trail, authSvc, vehicleSvc, clientSvc, userSvc, rentalSvc)
	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "session ended", "error", err)
		os.Exit(1)
	}
}

// applyFlags lets -d (data dir) and -b (audit file) override the environment
// and config file. Unknown arguments are dropped rather than failing the
// start.
func applyFlags(cfg *config.Config) {
	fs := flag.NewFlagSet(filepath.Base(os.Args[0]), flag.ContinueOnError)
	dataDir := fs.String("d", cfg.DataDir, "directory for the JSON stores")
	auditFile := fs.String("b", cfg.AuditFile, "path of the session log")

	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-b"})
	if err := fs.Parse(args); err != nil {
		return
	}
	cfg.DataDir = *dataDir
	cfg.AuditFile = *auditFile
}
