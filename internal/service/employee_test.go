package service_test

import (
	"context"
	"errors"
	"testing"

	"parts-tracking-backend/internal/auth"
	"parts-tracking-backend/internal/cache"
	"parts-tracking-backend/internal/database/models"
	apperrors "parts-tracking-backend/internal/errors"
	"parts-tracking-backend/internal/metrics"
	"parts-tracking-backend/internal/repository"
	"parts-tracking-backend/internal/service"
	"parts-tracking-backend/internal/testutils/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type EmployeeServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	store     *memstore.Store
	repos     *repository.Repositories
	cache     *cache.Store
	employees *service.EmployeeService
	parts     *service.PartService
}

func (s *EmployeeServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memstore.New()
	s.repos = s.store.Repositories()
	s.cache = cache.New()
	m := metrics.New()
	v := service.NewValidator()
	s.employees = service.NewEmployeeService(s.store, s.cache, v, m, testBcryptCost)
	s.parts = service.NewPartService(s.store, s.cache, v, m)
}

func (s *EmployeeServiceTestSuite) create(name, username string) *service.EmployeeResponse {
	employee, err := s.employees.CreateEmployee(s.ctx, &service.CreateEmployeeRequest{
		Name:     name,
		Username: username,
		Password: "secret123",
	})
	s.Require().NoError(err)
	return employee
}

func (s *EmployeeServiceTestSuite) TestCreateEmployeeAllocatesSequentialCodes() {
	first := s.create("Ravi Kumar", "ravi")
	second := s.create("Anita Rao", "anita")

	s.Equal(service.FirstEmployeeID, first.EmployeeID)
	s.Equal(service.FirstEmployeeID+1, second.EmployeeID)
	s.Empty(first.AssignedParts)

	listed := s.employees.ListEmployees()
	s.Require().Len(listed, 2)
	s.Equal("ravi", listed[0].Username)
	s.Equal("anita", listed[1].Username)

	stored, err := s.repos.Employees.GetByID(s.ctx, first.ID)
	s.Require().NoError(err)
	s.True(auth.CheckPassword(stored.PasswordHash, "secret123"))
}

func (s *EmployeeServiceTestSuite) TestCreateEmployeeContinuesAfterHighestCode() {
	s.Require().NoError(s.repos.Employees.Create(s.ctx, &models.Employee{
		EmployeeID: 1500,
		Name:       "Imported",
		Username:   "imported",
	}))

	employee := s.create("Ravi Kumar", "ravi")
	s.Equal(1501, employee.EmployeeID)
}

func (s *EmployeeServiceTestSuite) TestCreateEmployeeRefusesTakenUsername() {
	s.create("Ravi Kumar", "ravi")

	_, err := s.employees.CreateEmployee(s.ctx, &service.CreateEmployeeRequest{
		Name:     "Other Ravi",
		Username: "RAVI",
		Password: "secret123",
	})

	s.ErrorIs(err, apperrors.ErrEmployeeExists)
	s.Len(s.employees.ListEmployees(), 1)
}

func (s *EmployeeServiceTestSuite) TestCreateEmployeeStopsWhenCodeLockFails() {
	s.store.FailOn("employees.LockEmployeeCodes", apperrors.NewConnectionError("lock employee codes", errors.New("connection reset")))

	_, err := s.employees.CreateEmployee(s.ctx, &service.CreateEmployeeRequest{
		Name:     "Ravi Kumar",
		Username: "ravi",
		Password: "secret123",
	})

	s.True(apperrors.IsConnection(err))
	s.Empty(s.employees.ListEmployees())
	count, err := s.repos.Employees.MaxEmployeeID(s.ctx)
	s.Require().NoError(err)
	s.Zero(count)
}

func (s *EmployeeServiceTestSuite) TestCreateEmployeeValidation() {
	tests := []struct {
		name  string
		req   service.CreateEmployeeRequest
		field string
	}{
		{name: "short username", req: service.CreateEmployeeRequest{Name: "Ravi", Username: "rk", Password: "secret123"}, field: "username"},
		{name: "short password", req: service.CreateEmployeeRequest{Name: "Ravi", Username: "ravi", Password: "12345"}, field: "password"},
		{name: "markup in name", req: service.CreateEmployeeRequest{Name: "<script>", Username: "ravi", Password: "secret123"}, field: "name"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			req := tt.req
			_, err := s.employees.CreateEmployee(s.ctx, &req)

			var validationErr *apperrors.ValidationError
			s.Require().True(errors.As(err, &validationErr), "got %v", err)
			s.Equal(tt.field, validationErr.Field)
		})
	}
	s.Empty(s.employees.ListEmployees())
}

func (s *EmployeeServiceTestSuite) TestChangeEmployeePassword() {
	employee := s.create("Ravi Kumar", "ravi")

	s.Require().NoError(s.employees.ChangeEmployeePassword(s.ctx, employee.ID, &service.ChangePasswordRequest{Password: "n3wpass"}))

	stored, err := s.repos.Employees.GetByID(s.ctx, employee.ID)
	s.Require().NoError(err)
	s.True(auth.CheckPassword(stored.PasswordHash, "n3wpass"))
	s.False(auth.CheckPassword(stored.PasswordHash, "secret123"))

	err = s.employees.ChangeEmployeePassword(s.ctx, uuid.New(), &service.ChangePasswordRequest{Password: "n3wpass"})
	s.ErrorIs(err, apperrors.ErrEmployeeNotFound)
	err = s.employees.ChangeEmployeePassword(s.ctx, employee.ID, &service.ChangePasswordRequest{Password: "123"})
	s.True(apperrors.IsValidation(err))
}

func (s *EmployeeServiceTestSuite) TestDeleteEmployeeWithCustodyIsRefused() {
	employee := s.create("Ravi Kumar", "ravi")
	_, err := s.parts.CreateAndAssignPart(s.ctx, &service.CreatePartRequest{
		CallID:      "CALL-1",
		PartDetails: models.PartDetails{PartNo: "PN-1"},
		EmployeeID:  &employee.ID,
	})
	s.Require().NoError(err)

	err = s.employees.DeleteEmployee(s.ctx, employee.ID)
	s.ErrorIs(err, apperrors.ErrEmployeeHasCustody)

	got, err := s.employees.GetEmployee(employee.ID)
	s.Require().NoError(err)
	s.Equal([]string{"CALL-1"}, got.AssignedParts)
	s.Equal(1, got.Stats.ActiveAssignments)
}

func (s *EmployeeServiceTestSuite) TestDeleteEmployeeAfterApprovedReturn() {
	employee := s.create("Ravi Kumar", "ravi")
	_, err := s.parts.CreateAndAssignPart(s.ctx, &service.CreatePartRequest{
		CallID:      "CALL-1",
		PartDetails: models.PartDetails{PartNo: "PN-1"},
		EmployeeID:  &employee.ID,
	})
	s.Require().NoError(err)
	assignment := s.parts.ListAssignments(cache.AssignmentFilter{PartID: "CALL-1"})[0]
	_, err = s.parts.ReturnPart(s.ctx, assignment.ID, employee.ID, &service.ReturnPartRequest{Condition: models.ReturnConditionDefective})
	s.Require().NoError(err)

	s.ErrorIs(s.employees.DeleteEmployee(s.ctx, employee.ID), apperrors.ErrEmployeeHasCustody, "pending returns still count as custody")

	_, err = s.parts.AcceptReturn(s.ctx, assignment.ID)
	s.Require().NoError(err)
	stats := s.employees.Stats(employee.ID)
	s.Equal(service.EmployeeStats{TotalAssignments: 1, DefectiveReturns: 1}, stats)

	s.Require().NoError(s.employees.DeleteEmployee(s.ctx, employee.ID))
	_, err = s.employees.GetEmployee(employee.ID)
	s.ErrorIs(err, apperrors.ErrEmployeeNotFound)
	s.Len(s.parts.ListAssignments(cache.AssignmentFilter{}), 1, "history is kept")
}

func (s *EmployeeServiceTestSuite) TestDeleteUnknownEmployee() {
	s.ErrorIs(s.employees.DeleteEmployee(s.ctx, uuid.New()), apperrors.ErrEmployeeNotFound)
}

func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
