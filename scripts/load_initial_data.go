package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"parts-tracking-backend/internal/cache"
	"parts-tracking-backend/internal/config"
	"parts-tracking-backend/internal/database"
	"parts-tracking-backend/internal/database/models"
	apperrors "parts-tracking-backend/internal/errors"
	"parts-tracking-backend/internal/repository"
	"parts-tracking-backend/internal/service"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type EmployeeData struct {
	Name     string `yaml:"name"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type PartData struct {
	CallID          string `yaml:"call_id"`
	CallStatus      string `yaml:"call_status"`
	CustomerName    string `yaml:"customer_name"`
	MachineModelNo  string `yaml:"machine_model_no"`
	SerialNo        string `yaml:"serial_no"`
	PartNo          string `yaml:"part_no"`
	PartDescription string `yaml:"part_description"`
	AssignTo        string `yaml:"assign_to,omitempty"`
	Notes           string `yaml:"notes,omitempty"`
}

func (p PartData) details() models.PartDetails {
	return models.PartDetails{
		CallStatus:      p.CallStatus,
		CustomerName:    p.CustomerName,
		MachineModelNo:  p.MachineModelNo,
		SerialNo:        p.SerialNo,
		PartNo:          p.PartNo,
		PartDescription: p.PartDescription,
	}
}

// File structures
type EmployeesFile struct {
	Employees []EmployeeData `yaml:"employees"`
}

type PartsFile struct {
	Parts []PartData `yaml:"parts"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(context.Background(), db, cfg, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// loadDataFromYAMLFiles seeds employees then parts through the services, so every
// record passes the same validation and lifecycle rules as API traffic. Records that
// already exist are skipped, which makes the loader safe to re-run.
func loadDataFromYAMLFiles(ctx context.Context, db *gorm.DB, cfg *config.Config, dataDir string) error {
	var employeesFile EmployeesFile
	if err := loadYAML(filepath.Join(dataDir, "employees.yaml"), &employeesFile); err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}
	var partsFile PartsFile
	if err := loadYAML(filepath.Join(dataDir, "parts.yaml"), &partsFile); err != nil {
		return fmt.Errorf("failed to load parts: %w", err)
	}

	tx := repository.NewTransactionManager(db)
	store := cache.New()
	validator := service.NewValidator()
	partService := service.NewPartService(tx, store, validator, nil)
	employeeService := service.NewEmployeeService(tx, store, validator, nil, cfg.BcryptCost)

	if err := partService.ReloadCache(ctx); err != nil {
		return fmt.Errorf("failed to load current records: %w", err)
	}

	created := 0
	for _, e := range employeesFile.Employees {
		_, err := employeeService.CreateEmployee(ctx, &service.CreateEmployeeRequest{
			Name:     e.Name,
			Username: e.Username,
			Password: e.Password,
		})
		switch {
		case err == nil:
			created++
		case errors.Is(err, apperrors.ErrEmployeeExists):
		default:
			return fmt.Errorf("failed to create employee %s: %w", e.Username, err)
		}
	}
	log.Printf("Employees: %d created, %d total", created, len(employeesFile.Employees))

	byUsername := make(map[string]models.Employee)
	for _, e := range store.ListEmployees() {
		byUsername[strings.ToLower(e.Username)] = e
	}

	created = 0
	for _, p := range partsFile.Parts {
		req := &service.CreatePartRequest{
			CallID:      p.CallID,
			PartDetails: p.details(),
			Notes:       p.Notes,
		}
		if p.AssignTo != "" {
			employee, ok := byUsername[strings.ToLower(p.AssignTo)]
			if !ok {
				return fmt.Errorf("part %s: unknown employee %q", p.CallID, p.AssignTo)
			}
			req.EmployeeID = &employee.ID
		}

		_, err := partService.CreateAndAssignPart(ctx, req)
		switch {
		case err == nil:
			created++
		case errors.Is(err, apperrors.ErrDuplicateCallID):
		default:
			return fmt.Errorf("failed to create part %s: %w", p.CallID, err)
		}
	}
	log.Printf("Parts: %d created, %d total", created, len(partsFile.Parts))
	return nil
}

func loadYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, out)
}
