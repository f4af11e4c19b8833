// Command partsctl bootstraps administrator and employee accounts from the shell.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"parts-tracking-backend/internal/cache"
	"parts-tracking-backend/internal/config"
	"parts-tracking-backend/internal/database"
	"parts-tracking-backend/internal/logger"
	"parts-tracking-backend/internal/repository"
	"parts-tracking-backend/internal/service"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"
)

const usage = `usage: partsctl <command> [flags]

commands:
  create-admin     -name NAME -username USER -password PASS
  create-employee  -name NAME -username USER -password PASS
`

// services are the operations partsctl drives
type services struct {
	admins    service.AdminServiceInterface
	employees service.EmployeeServiceInterface
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger.Setup(cfg.LogLevel)

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{LogLevel: gormlogger.Silent})
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize database")
	}

	ctx := context.Background()
	tx := repository.NewTransactionManager(db)
	store := cache.New()
	validator := service.NewValidator()
	parts := service.NewPartService(tx, store, validator, nil)
	if err := parts.ReloadCache(ctx); err != nil {
		logrus.WithError(err).Fatal("Failed to load current records")
	}

	svc := services{
		admins:    service.NewAdminService(tx, validator, cfg.BcryptCost),
		employees: service.NewEmployeeService(tx, store, validator, nil, cfg.BcryptCost),
	}
	if err := run(ctx, svc, os.Args[1], os.Args[2:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "partsctl: %v\n", err)
		os.Exit(1)
	}
}

type accountFlags struct {
	name, username, password string
}

func parseAccountFlags(command string, args []string) (accountFlags, error) {
	var f accountFlags
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&f.name, "name", "", "display name")
	fs.StringVar(&f.username, "username", "", "login name")
	fs.StringVar(&f.password, "password", "", "initial password")
	if err := fs.Parse(args); err != nil {
		return f, err
	}
	if f.name == "" || f.username == "" || f.password == "" {
		return f, errors.New("-name, -username and -password are required")
	}
	return f, nil
}

func run(ctx context.Context, svc services, command string, args []string, out io.Writer) error {
	switch command {
	case "create-admin":
		f, err := parseAccountFlags(command, args)
		if err != nil {
			return err
		}
		admin, err := svc.admins.CreateAdmin(ctx, &service.CreateAdminRequest{
			Name:     f.name,
			Username: f.username,
			Password: f.password,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "created admin %s (%s)\n", admin.Username, admin.ID)
		return nil

	case "create-employee":
		f, err := parseAccountFlags(command, args)
		if err != nil {
			return err
		}
		employee, err := svc.employees.CreateEmployee(ctx, &service.CreateEmployeeRequest{
			Name:     f.name,
			Username: f.username,
			Password: f.password,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "created employee %s with code %d\n", employee.Username, employee.EmployeeID)
		return nil

	default:
		return fmt.Errorf("unknown command %q\n\n%s", command, usage)
	}
}
