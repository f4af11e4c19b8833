// Package cache keeps the committed parts, employees and assignments in memory
// so reads never touch the database. The part service is its only writer:
// it applies the exact records of each committed transaction.
package cache

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"parts-tracking-backend/internal/database/models"
	"parts-tracking-backend/internal/repository"

	"github.com/google/uuid"
)

// Change is the set of records written by one committed transaction
type Change struct {
	Parts            []models.Part
	Assignments      []models.Assignment
	Employees        []models.Employee
	DeletedEmployees []uuid.UUID
}

// PartFilter narrows ListParts. Zero values match everything.
type PartFilter struct {
	Status     models.PartStatus
	AssignedTo *uuid.UUID
	Approval   models.ReturnApproval
}

// AssignmentFilter narrows ListAssignments. Zero values match everything.
type AssignmentFilter struct {
	Status     models.AssignmentStatus
	EmployeeID *uuid.UUID
	PartID     string
}

// Store is the in-memory entity store
type Store struct {
	mu          sync.RWMutex
	writer      chan struct{}
	parts       map[string]models.Part
	employees   map[uuid.UUID]models.Employee
	assignments map[uuid.UUID]models.Assignment
	loadedAt    time.Time
}

// New creates an empty store
func New() *Store {
	return &Store{
		writer:      make(chan struct{}, 1),
		parts:       map[string]models.Part{},
		employees:   map[uuid.UUID]models.Employee{},
		assignments: map[uuid.UUID]models.Assignment{},
	}
}

// Refresh replaces the whole cache with what repos return. The previous
// content stays visible until every collection has loaded.
func (s *Store) Refresh(ctx context.Context, repos *repository.Repositories) error {
	parts, err := repos.Parts.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load parts: %w", err)
	}
	employees, err := repos.Employees.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}
	assignments, err := repos.Assignments.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load assignments: %w", err)
	}

	partMap := make(map[string]models.Part, len(parts))
	for _, p := range parts {
		partMap[p.ID] = p
	}
	employeeMap := make(map[uuid.UUID]models.Employee, len(employees))
	for _, e := range employees {
		employeeMap[e.ID] = e
	}
	assignmentMap := make(map[uuid.UUID]models.Assignment, len(assignments))
	for _, a := range assignments {
		assignmentMap[a.ID] = a
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.parts = partMap
	s.employees = employeeMap
	s.assignments = assignmentMap
	s.loadedAt = time.Now()
	return nil
}

// Write runs fn as the single writer. fn commits its transaction and returns
// the committed records, which are applied before the next writer starts, so
// the store sees changes in commit order. A nil change publishes nothing.
func (s *Store) Write(ctx context.Context, fn func() (*Change, error)) error {
	select {
	case s.writer <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-s.writer }()

	change, err := fn()
	if err != nil {
		return err
	}
	if change != nil {
		s.Apply(*change)
	}
	return nil
}

// Apply publishes the records of a committed transaction in one step.
// Mutations call it through Write.
func (s *Store) Apply(change Change) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range change.Parts {
		s.parts[p.ID] = p
	}
	for _, a := range change.Assignments {
		s.assignments[a.ID] = a
	}
	for _, e := range change.Employees {
		s.employees[e.ID] = e
	}
	for _, id := range change.DeletedEmployees {
		delete(s.employees, id)
	}
}

// LoadedAt returns the time of the last full refresh
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Part returns a part by call id
func (s *Store) Part(id string) (models.Part, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.parts[id]
	return p, ok
}

// Employee returns an employee by id
func (s *Store) Employee(id uuid.UUID) (models.Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.employees[id]
	return e, ok
}

// Assignment returns an assignment by id
func (s *Store) Assignment(id uuid.UUID) (models.Assignment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.assignments[id]
	return a, ok
}

// ListParts returns matching parts, oldest first
func (s *Store) ListParts(filter PartFilter) []models.Part {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Part, 0, len(s.parts))
	for _, p := range s.parts {
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.Approval != "" && p.PendingReturnApproval != filter.Approval {
			continue
		}
		if filter.AssignedTo != nil && (p.AssignedTo == nil || *p.AssignedTo != *filter.AssignedTo) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// ListEmployees returns every employee ordered by employee number
func (s *Store) ListEmployees() []models.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID < out[j].EmployeeID })
	return out
}

// ListAssignments returns matching assignments, newest first
func (s *Store) ListAssignments(filter AssignmentFilter) []models.Assignment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Assignment, 0, len(s.assignments))
	for _, a := range s.assignments {
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if filter.EmployeeID != nil && a.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.PartID != "" && a.PartID != filter.PartID {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].AssignedDate.Equal(out[j].AssignedDate) {
			return out[i].AssignedDate.After(out[j].AssignedDate)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

// AssignedParts derives the ids of the parts in the employee's custody,
// ordered by assignment date. Custody ends when a return is approved.
func (s *Store) AssignedParts(employeeID uuid.UUID) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	held := make([]models.Part, 0)
	for _, p := range s.parts {
		if p.InCustodyOf(employeeID) {
			held = append(held, p)
		}
	}
	sort.Slice(held, func(i, j int) bool {
		di, dj := held[i].AssignedDate, held[j].AssignedDate
		if di != nil && dj != nil && !di.Equal(*dj) {
			return di.Before(*dj)
		}
		return held[i].ID < held[j].ID
	})
	ids := make([]string, len(held))
	for i, p := range held {
		ids[i] = p.ID
	}
	return ids
}
