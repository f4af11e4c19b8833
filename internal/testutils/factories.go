package testutils

import (
	"fmt"
	"time"

	"parts-tracking-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TestPassword is the plain-text password behind every factory-made account
const TestPassword = "secret123"

var testPasswordHash = func() string {
	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}()

// PartFactory provides methods to create test Part data
type PartFactory struct {
	seq int
}

// NewPartFactory creates a new PartFactory
func NewPartFactory() *PartFactory {
	return &PartFactory{}
}

// Create creates an available test Part with a unique call id
func (f *PartFactory) Create() *models.Part {
	f.seq++
	callID := fmt.Sprintf("CALL-%04d", f.seq)
	return &models.Part{
		ID:     callID,
		CallID: callID,
		PartDetails: models.PartDetails{
			PartNo:          fmt.Sprintf("PN-%04d", f.seq),
			PartDescription: "Hydraulic valve",
			CustomerName:    "Acme Mills",
			MachineModelNo:  "HX-200",
			SerialNo:        "SN-1001",
			CallStatus:      "Open",
		},
		Status:                models.PartStatusAvailable,
		PendingReturnApproval: models.ReturnApprovalNone,
		ReturnStatus:          models.ReturnStatusPending,
	}
}

// WithCallID creates an available test Part with the given call id
func (f *PartFactory) WithCallID(callID string) *models.Part {
	part := f.Create()
	part.ID = callID
	part.CallID = callID
	return part
}

// AssignedTo creates a test Part already in the custody of employeeID
func (f *PartFactory) AssignedTo(employeeID uuid.UUID) *models.Part {
	part := f.Create()
	now := time.Now()
	part.Status = models.PartStatusAssigned
	part.AssignedTo = &employeeID
	part.AssignedDate = &now
	return part
}

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct {
	seq int
}

// NewEmployeeFactory creates a new EmployeeFactory
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// Create creates a test Employee whose password is TestPassword
func (f *EmployeeFactory) Create() *models.Employee {
	f.seq++
	return &models.Employee{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		EmployeeID:   1000 + f.seq,
		Name:         fmt.Sprintf("Engineer %d", f.seq),
		Username:     fmt.Sprintf("engineer%d", f.seq),
		PasswordHash: testPasswordHash,
	}
}

// WithUsername creates a test Employee with a custom username
func (f *EmployeeFactory) WithUsername(username string) *models.Employee {
	employee := f.Create()
	employee.Username = username
	return employee
}

// AssignmentFactory provides methods to create test Assignment data
type AssignmentFactory struct{}

// NewAssignmentFactory creates a new AssignmentFactory
func NewAssignmentFactory() *AssignmentFactory {
	return &AssignmentFactory{}
}

// Active creates an active test Assignment linking part and employee
func (f *AssignmentFactory) Active(partID string, employeeID uuid.UUID) *models.Assignment {
	return &models.Assignment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		PartID:       partID,
		EmployeeID:   employeeID,
		AssignedDate: time.Now(),
		Status:       models.AssignmentStatusActive,
	}
}

// AdminFactory provides methods to create test Admin data
type AdminFactory struct{}

// NewAdminFactory creates a new AdminFactory
func NewAdminFactory() *AdminFactory {
	return &AdminFactory{}
}

// Create creates a test Admin whose password is TestPassword
func (f *AdminFactory) Create() *models.Admin {
	return &models.Admin{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "Store Admin",
		Username:     "admin",
		PasswordHash: testPasswordHash,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Part       *PartFactory
	Employee   *EmployeeFactory
	Assignment *AssignmentFactory
	Admin      *AdminFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Part:       NewPartFactory(),
		Employee:   NewEmployeeFactory(),
		Assignment: NewAssignmentFactory(),
		Admin:      NewAdminFactory(),
	}
}
