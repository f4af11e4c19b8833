package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"parts-tracking-backend/internal/database/models"
	apperrors "parts-tracking-backend/internal/errors"
	"parts-tracking-backend/internal/repository"

	"github.com/google/uuid"
)

// Store is an in-process implementation of the repository interfaces with
// all-or-nothing transactions. It backs service scenario tests that need real
// state instead of mock expectations.
type Store struct {
	mu       sync.Mutex
	data     *memoryData
	failures map[string]error
}

type memoryData struct {
	parts       map[string]models.Part
	employees   map[uuid.UUID]models.Employee
	assignments map[uuid.UUID]models.Assignment
	admins      map[uuid.UUID]models.Admin
}

// New creates an empty store
func New() *Store {
	return &Store{
		data: &memoryData{
			parts:       map[string]models.Part{},
			employees:   map[uuid.UUID]models.Employee{},
			assignments: map[uuid.UUID]models.Assignment{},
			admins:      map[uuid.UUID]models.Admin{},
		},
		failures: map[string]error{},
	}
}

// Repositories returns repositories that operate outside any transaction
func (s *Store) Repositories() *repository.Repositories {
	return (&memoryView{store: s}).repositories()
}

// WithinTransaction runs fn against a private copy and publishes it only when fn succeeds
func (s *Store) WithinTransaction(ctx context.Context, fn func(repos *repository.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.data.clone()
	view := &memoryView{store: s, tx: staged}
	if err := fn(view.repositories()); err != nil {
		return err
	}
	s.data = staged
	return nil
}

// FailOn makes the next call of op (for example "parts.Update") return err
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = err
}

func (d *memoryData) clone() *memoryData {
	c := &memoryData{
		parts:       make(map[string]models.Part, len(d.parts)),
		employees:   make(map[uuid.UUID]models.Employee, len(d.employees)),
		assignments: make(map[uuid.UUID]models.Assignment, len(d.assignments)),
		admins:      make(map[uuid.UUID]models.Admin, len(d.admins)),
	}
	for k, v := range d.parts {
		c.parts[k] = v
	}
	for k, v := range d.employees {
		c.employees[k] = v
	}
	for k, v := range d.assignments {
		c.assignments[k] = v
	}
	for k, v := range d.admins {
		c.admins[k] = v
	}
	return c
}

type memoryView struct {
	store *Store
	tx    *memoryData
}

func (v *memoryView) run(op string, fn func(d *memoryData) error) error {
	if v.tx == nil {
		v.store.mu.Lock()
		defer v.store.mu.Unlock()
	}
	if err, ok := v.store.failures[op]; ok {
		delete(v.store.failures, op)
		return err
	}
	if v.tx != nil {
		return fn(v.tx)
	}
	return fn(v.store.data)
}

func (v *memoryView) repositories() *repository.Repositories {
	return &repository.Repositories{
		Parts:       &memoryParts{v},
		Employees:   &memoryEmployees{v},
		Assignments: &memoryAssignments{v},
		Admins:      &memoryAdmins{v},
	}
}

func stamp(created, updated *time.Time) {
	now := time.Now()
	if created.IsZero() {
		*created = now
	}
	*updated = now
}

type memoryParts struct{ v *memoryView }

func (r *memoryParts) Create(_ context.Context, part *models.Part) error {
	return r.v.run("parts.Create", func(d *memoryData) error {
		if _, ok := d.parts[part.ID]; ok {
			return apperrors.NewDuplicateCallIDError(part.ID)
		}
		stamp(&part.CreatedAt, &part.UpdatedAt)
		d.parts[part.ID] = *part
		return nil
	})
}

func (r *memoryParts) GetByID(_ context.Context, id string) (*models.Part, error) {
	var out *models.Part
	err := r.v.run("parts.GetByID", func(d *memoryData) error {
		part, ok := d.parts[id]
		if !ok {
			return apperrors.ErrPartNotFound
		}
		out = &part
		return nil
	})
	return out, err
}

// GetByIDForUpdate needs no row lock: transactions already run one at a time
func (r *memoryParts) GetByIDForUpdate(ctx context.Context, id string) (*models.Part, error) {
	return r.GetByID(ctx, id)
}

func (r *memoryParts) Exists(_ context.Context, id string) (bool, error) {
	var found bool
	err := r.v.run("parts.Exists", func(d *memoryData) error {
		_, found = d.parts[id]
		return nil
	})
	return found, err
}

func (r *memoryParts) GetAll(_ context.Context) ([]models.Part, error) {
	var out []models.Part
	err := r.v.run("parts.GetAll", func(d *memoryData) error {
		for _, part := range d.parts {
			out = append(out, part)
		}
		sort.Slice(out, func(i, j int) bool {
			if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
				return out[i].CreatedAt.Before(out[j].CreatedAt)
			}
			return out[i].ID < out[j].ID
		})
		return nil
	})
	return out, err
}

func (r *memoryParts) Update(_ context.Context, part *models.Part) error {
	return r.v.run("parts.Update", func(d *memoryData) error {
		stamp(&part.CreatedAt, &part.UpdatedAt)
		d.parts[part.ID] = *part
		return nil
	})
}

func (r *memoryParts) Delete(_ context.Context, id string) error {
	return r.v.run("parts.Delete", func(d *memoryData) error {
		if _, ok := d.parts[id]; !ok {
			return apperrors.ErrPartNotFound
		}
		delete(d.parts, id)
		return nil
	})
}

type memoryEmployees struct{ v *memoryView }

func (r *memoryEmployees) Create(_ context.Context, employee *models.Employee) error {
	return r.v.run("employees.Create", func(d *memoryData) error {
		for _, existing := range d.employees {
			if existing.Username == employee.Username {
				return apperrors.ErrEmployeeExists
			}
			if existing.EmployeeID == employee.EmployeeID {
				return apperrors.ErrEmployeeCodeTaken
			}
		}
		if employee.ID == uuid.Nil {
			employee.ID = uuid.New()
		}
		stamp(&employee.CreatedAt, &employee.UpdatedAt)
		d.employees[employee.ID] = *employee
		return nil
	})
}

func (r *memoryEmployees) GetByID(_ context.Context, id uuid.UUID) (*models.Employee, error) {
	var out *models.Employee
	err := r.v.run("employees.GetByID", func(d *memoryData) error {
		employee, ok := d.employees[id]
		if !ok {
			return apperrors.ErrEmployeeNotFound
		}
		out = &employee
		return nil
	})
	return out, err
}

func (r *memoryEmployees) GetByUsername(_ context.Context, username string) (*models.Employee, error) {
	var out *models.Employee
	err := r.v.run("employees.GetByUsername", func(d *memoryData) error {
		for _, employee := range d.employees {
			if employee.Username == username {
				e := employee
				out = &e
				return nil
			}
		}
		return apperrors.ErrEmployeeNotFound
	})
	return out, err
}

func (r *memoryEmployees) UsernameTaken(_ context.Context, username string) (bool, error) {
	var taken bool
	err := r.v.run("employees.UsernameTaken", func(d *memoryData) error {
		for _, employee := range d.employees {
			if strings.EqualFold(employee.Username, username) {
				taken = true
			}
		}
		return nil
	})
	return taken, err
}

func (r *memoryEmployees) GetAll(_ context.Context) ([]models.Employee, error) {
	var out []models.Employee
	err := r.v.run("employees.GetAll", func(d *memoryData) error {
		for _, employee := range d.employees {
			out = append(out, employee)
		}
		sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID < out[j].EmployeeID })
		return nil
	})
	return out, err
}

func (r *memoryEmployees) MaxEmployeeID(_ context.Context) (int, error) {
	var max int
	err := r.v.run("employees.MaxEmployeeID", func(d *memoryData) error {
		for _, employee := range d.employees {
			if employee.EmployeeID > max {
				max = employee.EmployeeID
			}
		}
		return nil
	})
	return max, err
}

// LockEmployeeCodes is a no-op: transactions already run one at a time
func (r *memoryEmployees) LockEmployeeCodes(_ context.Context) error {
	return r.v.run("employees.LockEmployeeCodes", func(*memoryData) error { return nil })
}

func (r *memoryEmployees) Update(_ context.Context, employee *models.Employee) error {
	return r.v.run("employees.Update", func(d *memoryData) error {
		stamp(&employee.CreatedAt, &employee.UpdatedAt)
		d.employees[employee.ID] = *employee
		return nil
	})
}

func (r *memoryEmployees) Delete(_ context.Context, id uuid.UUID) error {
	return r.v.run("employees.Delete", func(d *memoryData) error {
		if _, ok := d.employees[id]; !ok {
			return apperrors.ErrEmployeeNotFound
		}
		delete(d.employees, id)
		return nil
	})
}

type memoryAssignments struct{ v *memoryView }

func (r *memoryAssignments) Create(_ context.Context, assignment *models.Assignment) error {
	return r.v.run("assignments.Create", func(d *memoryData) error {
		if assignment.ID == uuid.Nil {
			assignment.ID = uuid.New()
		}
		if d.hasOpenAssignment(assignment) {
			return apperrors.ErrActiveAssignmentExists
		}
		stamp(&assignment.CreatedAt, &assignment.UpdatedAt)
		d.assignments[assignment.ID] = *assignment
		return nil
	})
}

func (r *memoryAssignments) GetByID(_ context.Context, id uuid.UUID) (*models.Assignment, error) {
	var out *models.Assignment
	err := r.v.run("assignments.GetByID", func(d *memoryData) error {
		assignment, ok := d.assignments[id]
		if !ok {
			return apperrors.ErrAssignmentNotFound
		}
		out = &assignment
		return nil
	})
	return out, err
}

func (r *memoryAssignments) GetOpenByPartID(_ context.Context, partID string) (*models.Assignment, error) {
	var out *models.Assignment
	err := r.v.run("assignments.GetOpenByPartID", func(d *memoryData) error {
		for _, assignment := range d.assignments {
			if assignment.PartID == partID && assignment.Status != models.AssignmentStatusCompleted {
				a := assignment
				out = &a
				return nil
			}
		}
		return apperrors.ErrAssignmentNotFound
	})
	return out, err
}

func (r *memoryAssignments) GetByEmployeeID(ctx context.Context, employeeID uuid.UUID) ([]models.Assignment, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.Assignment
	for _, assignment := range all {
		if assignment.EmployeeID == employeeID {
			out = append(out, assignment)
		}
	}
	return out, nil
}

func (r *memoryAssignments) GetAll(_ context.Context) ([]models.Assignment, error) {
	var out []models.Assignment
	err := r.v.run("assignments.GetAll", func(d *memoryData) error {
		for _, assignment := range d.assignments {
			out = append(out, assignment)
		}
		sort.Slice(out, func(i, j int) bool { return out[i].AssignedDate.After(out[j].AssignedDate) })
		return nil
	})
	return out, err
}

func (r *memoryAssignments) Update(_ context.Context, assignment *models.Assignment) error {
	return r.v.run("assignments.Update", func(d *memoryData) error {
		if d.hasOpenAssignment(assignment) {
			return apperrors.ErrActiveAssignmentExists
		}
		stamp(&assignment.CreatedAt, &assignment.UpdatedAt)
		d.assignments[assignment.ID] = *assignment
		return nil
	})
}

// hasOpenAssignment mirrors idx_assignments_open_part: another assignment of
// the same part that is not completed conflicts with an open one
func (d *memoryData) hasOpenAssignment(assignment *models.Assignment) bool {
	if assignment.Status == models.AssignmentStatusCompleted {
		return false
	}
	for id, other := range d.assignments {
		if id != assignment.ID && other.PartID == assignment.PartID && other.Status != models.AssignmentStatusCompleted {
			return true
		}
	}
	return false
}

type memoryAdmins struct{ v *memoryView }

func (r *memoryAdmins) Create(_ context.Context, admin *models.Admin) error {
	return r.v.run("admins.Create", func(d *memoryData) error {
		for _, existing := range d.admins {
			if existing.Username == admin.Username {
				return apperrors.ErrAdminExists
			}
		}
		if admin.ID == uuid.Nil {
			admin.ID = uuid.New()
		}
		stamp(&admin.CreatedAt, &admin.UpdatedAt)
		d.admins[admin.ID] = *admin
		return nil
	})
}

func (r *memoryAdmins) GetByID(_ context.Context, id uuid.UUID) (*models.Admin, error) {
	var out *models.Admin
	err := r.v.run("admins.GetByID", func(d *memoryData) error {
		admin, ok := d.admins[id]
		if !ok {
			return apperrors.ErrAdminNotFound
		}
		out = &admin
		return nil
	})
	return out, err
}

func (r *memoryAdmins) GetByUsername(_ context.Context, username string) (*models.Admin, error) {
	var out *models.Admin
	err := r.v.run("admins.GetByUsername", func(d *memoryData) error {
		for _, admin := range d.admins {
			if admin.Username == username {
				a := admin
				out = &a
				return nil
			}
		}
		return apperrors.ErrAdminNotFound
	})
	return out, err
}

func (r *memoryAdmins) Count(_ context.Context) (int64, error) {
	var count int64
	err := r.v.run("admins.Count", func(d *memoryData) error {
		count = int64(len(d.admins))
		return nil
	})
	return count, err
}

var (
	_ repository.TransactionManagerInterface   = (*Store)(nil)
	_ repository.PartRepositoryInterface       = (*memoryParts)(nil)
	_ repository.EmployeeRepositoryInterface   = (*memoryEmployees)(nil)
	_ repository.AssignmentRepositoryInterface = (*memoryAssignments)(nil)
	_ repository.AdminRepositoryInterface      = (*memoryAdmins)(nil)
)
