//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	apperrors "parts-tracking-backend/internal/errors"
	"parts-tracking-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// EmployeeRepositoryTestSuite tests the EmployeeRepository against Postgres
type EmployeeRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	ctx           context.Context
	repo          *EmployeeRepository
	factories     *testutils.FactorySet
}

func (suite *EmployeeRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.ctx = context.Background()
	suite.repo = NewEmployeeRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *EmployeeRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *EmployeeRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *EmployeeRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *EmployeeRepositoryTestSuite) TestCreateAndLookup() {
	employee := suite.factories.Employee.WithUsername("ravi")
	suite.Require().NoError(suite.repo.Create(suite.ctx, employee))

	byID, err := suite.repo.GetByID(suite.ctx, employee.ID)
	suite.Require().NoError(err)
	suite.Equal("ravi", byID.Username)
	suite.Equal(employee.EmployeeID, byID.EmployeeID)

	byName, err := suite.repo.GetByUsername(suite.ctx, "ravi")
	suite.Require().NoError(err)
	suite.Equal(employee.ID, byName.ID)

	_, err = suite.repo.GetByUsername(suite.ctx, "nobody")
	suite.ErrorIs(err, apperrors.ErrEmployeeNotFound)
}

func (suite *EmployeeRepositoryTestSuite) TestUsernameTakenIgnoresCase() {
	suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.Employee.WithUsername("Ravi")))

	taken, err := suite.repo.UsernameTaken(suite.ctx, "RAVI")
	suite.Require().NoError(err)
	suite.True(taken)

	taken, err = suite.repo.UsernameTaken(suite.ctx, "anita")
	suite.Require().NoError(err)
	suite.False(taken)
}

func (suite *EmployeeRepositoryTestSuite) TestCreateDuplicateUsername() {
	suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.Employee.WithUsername("ravi")))

	err := suite.repo.Create(suite.ctx, suite.factories.Employee.WithUsername("ravi"))

	suite.ErrorIs(err, apperrors.ErrEmployeeExists)
}

func (suite *EmployeeRepositoryTestSuite) TestCreateDuplicateEmployeeCode() {
	first := suite.factories.Employee.WithUsername("ravi")
	suite.Require().NoError(suite.repo.Create(suite.ctx, first))

	second := suite.factories.Employee.WithUsername("anita")
	second.EmployeeID = first.EmployeeID
	suite.ErrorIs(suite.repo.Create(suite.ctx, second), apperrors.ErrEmployeeCodeTaken)
}

func (suite *EmployeeRepositoryTestSuite) TestLockEmployeeCodesSerializesAllocation() {
	tx := suite.baseTestSuite.DB.Begin()
	suite.Require().NoError(tx.Error)
	suite.Require().NoError(NewEmployeeRepository(tx).LockEmployeeCodes(suite.ctx))

	acquired := make(chan error, 1)
	go func() {
		acquired <- suite.baseTestSuite.DB.Transaction(func(other *gorm.DB) error {
			return NewEmployeeRepository(other).LockEmployeeCodes(suite.ctx)
		})
	}()

	select {
	case <-acquired:
		suite.Fail("second transaction took the allocation lock while the first held it")
	case <-time.After(200 * time.Millisecond):
	}

	suite.Require().NoError(tx.Rollback().Error)
	select {
	case err := <-acquired:
		suite.NoError(err)
	case <-time.After(5 * time.Second):
		suite.Fail("second transaction never took the allocation lock")
	}
}

func (suite *EmployeeRepositoryTestSuite) TestMaxEmployeeID() {
	max, err := suite.repo.MaxEmployeeID(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(0, max)

	first := suite.factories.Employee.Create()
	second := suite.factories.Employee.Create()
	second.EmployeeID = 1500
	suite.Require().NoError(suite.repo.Create(suite.ctx, first))
	suite.Require().NoError(suite.repo.Create(suite.ctx, second))

	max, err = suite.repo.MaxEmployeeID(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(1500, max)
}

func (suite *EmployeeRepositoryTestSuite) TestGetAllOrderedByEmployeeID() {
	late := suite.factories.Employee.Create()
	late.EmployeeID = 2000
	early := suite.factories.Employee.Create()
	early.EmployeeID = 1001
	suite.Require().NoError(suite.repo.Create(suite.ctx, late))
	suite.Require().NoError(suite.repo.Create(suite.ctx, early))

	employees, err := suite.repo.GetAll(suite.ctx)

	suite.Require().NoError(err)
	suite.Require().Len(employees, 2)
	suite.Equal(1001, employees[0].EmployeeID)
	suite.Equal(2000, employees[1].EmployeeID)
}

func (suite *EmployeeRepositoryTestSuite) TestUpdatePasswordHash() {
	employee := suite.factories.Employee.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, employee))

	employee.PasswordHash = "new-hash"
	suite.Require().NoError(suite.repo.Update(suite.ctx, employee))

	got, err := suite.repo.GetByID(suite.ctx, employee.ID)
	suite.Require().NoError(err)
	suite.Equal("new-hash", got.PasswordHash)
}

func (suite *EmployeeRepositoryTestSuite) TestDelete() {
	employee := suite.factories.Employee.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, employee))

	suite.NoError(suite.repo.Delete(suite.ctx, employee.ID))
	suite.ErrorIs(suite.repo.Delete(suite.ctx, employee.ID), apperrors.ErrEmployeeNotFound)
	suite.ErrorIs(suite.repo.Delete(suite.ctx, uuid.New()), apperrors.ErrEmployeeNotFound)
}

func TestEmployeeRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeRepositoryTestSuite))
}
