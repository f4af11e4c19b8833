package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories groups the repositories that share one connection or transaction
type Repositories struct {
	Parts       PartRepositoryInterface
	Employees   EmployeeRepositoryInterface
	Assignments AssignmentRepositoryInterface
	Admins      AdminRepositoryInterface
}

// NewRepositories builds every repository on top of db
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Parts:       NewPartRepository(db),
		Employees:   NewEmployeeRepository(db),
		Assignments: NewAssignmentRepository(db),
		Admins:      NewAdminRepository(db),
	}
}

// TransactionManager opens database transactions for multi-record operations
type TransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager creates a new transaction manager
func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// WithinTransaction runs fn with repositories bound to a single transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
func (m *TransactionManager) WithinTransaction(ctx context.Context, fn func(repos *Repositories) error) error {
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
	if err != nil {
		return translate(err, "transaction", nil, nil)
	}
	return nil
}
