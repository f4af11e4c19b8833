//go:build integration
// +build integration

package repository

import (
	"context"
	"errors"
	"testing"

	"parts-tracking-backend/internal/database/models"
	apperrors "parts-tracking-backend/internal/errors"
	"parts-tracking-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// TransactionManagerTestSuite checks commit and rollback of multi-record writes
type TransactionManagerTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	ctx           context.Context
	tx            *TransactionManager
	repos         *Repositories
	factories     *testutils.FactorySet
}

func (suite *TransactionManagerTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.ctx = context.Background()
	suite.tx = NewTransactionManager(suite.baseTestSuite.DB)
	suite.repos = NewRepositories(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *TransactionManagerTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *TransactionManagerTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *TransactionManagerTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TransactionManagerTestSuite) assignInTx(fail error) error {
	employee := suite.factories.Employee.Create()
	suite.Require().NoError(suite.repos.Employees.Create(suite.ctx, employee))
	part := suite.factories.Part.WithCallID("CALL-TX")

	return suite.tx.WithinTransaction(suite.ctx, func(repos *Repositories) error {
		if err := repos.Parts.Create(suite.ctx, part); err != nil {
			return err
		}
		held := *part
		held.Status = models.PartStatusAssigned
		held.AssignedTo = &employee.ID
		if err := repos.Parts.Update(suite.ctx, &held); err != nil {
			return err
		}
		if err := repos.Assignments.Create(suite.ctx, suite.factories.Assignment.Active(part.ID, employee.ID)); err != nil {
			return err
		}
		return fail
	})
}

func (suite *TransactionManagerTestSuite) TestCommit() {
	suite.Require().NoError(suite.assignInTx(nil))

	part, err := suite.repos.Parts.GetByID(suite.ctx, "CALL-TX")
	suite.Require().NoError(err)
	suite.Equal(models.PartStatusAssigned, part.Status)

	assignments, err := suite.repos.Assignments.GetAll(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(assignments, 1)
}

func (suite *TransactionManagerTestSuite) TestRollbackLeavesNothingBehind() {
	boom := errors.New("boom")

	err := suite.assignInTx(boom)

	suite.ErrorIs(err, boom)
	_, err = suite.repos.Parts.GetByID(suite.ctx, "CALL-TX")
	suite.ErrorIs(err, apperrors.ErrPartNotFound)
	assignments, err := suite.repos.Assignments.GetAll(suite.ctx)
	suite.Require().NoError(err)
	suite.Empty(assignments)
}

func (suite *TransactionManagerTestSuite) TestAdminRepository() {
	admin := suite.factories.Admin.Create()

	count, err := suite.repos.Admins.Count(suite.ctx)
	suite.Require().NoError(err)
	suite.Zero(count)

	suite.Require().NoError(suite.repos.Admins.Create(suite.ctx, admin))
	suite.ErrorIs(suite.repos.Admins.Create(suite.ctx, suite.factories.Admin.Create()), apperrors.ErrAdminExists)

	got, err := suite.repos.Admins.GetByUsername(suite.ctx, "admin")
	suite.Require().NoError(err)
	suite.Equal(admin.ID, got.ID)

	count, err = suite.repos.Admins.Count(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)
}

func TestTransactionManagerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionManagerTestSuite))
}
