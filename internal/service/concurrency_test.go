package service_test

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"testing"
	"time"

	"parts-tracking-backend/internal/cache"
	"parts-tracking-backend/internal/database/models"
	"parts-tracking-backend/internal/repository"
	"parts-tracking-backend/internal/service"
	"parts-tracking-backend/internal/testutils"
	"parts-tracking-backend/internal/testutils/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lateCommitTx delays the return of every committed transaction so that
// goroutines finishing their commits in one order return in another
type lateCommitTx struct {
	*memstore.Store
}

func (tx lateCommitTx) WithinTransaction(ctx context.Context, fn func(repos *repository.Repositories) error) error {
	err := tx.Store.WithinTransaction(ctx, fn)
	time.Sleep(time.Duration(rand.Intn(300)) * time.Microsecond)
	return err
}

func TestConcurrentUpdatesPublishInCommitOrder(t *testing.T) {
	ctx := context.Background()

	for round := 0; round < 25; round++ {
		store := memstore.New()
		entities := cache.New()
		svc := service.NewPartService(lateCommitTx{store}, entities, service.NewValidator(), nil)
		require.NoError(t, svc.ReloadCache(ctx))

		_, err := svc.CreateAndAssignPart(ctx, &service.CreatePartRequest{
			CallID:      "HV-1",
			PartDetails: models.PartDetails{PartNo: "PN-1"},
		})
		require.NoError(t, err)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, err := svc.UpdatePart(ctx, "HV-1", map[string]interface{}{"remarks": fmt.Sprintf("update %d", i)})
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()

		stored, err := store.Repositories().Parts.GetByID(ctx, "HV-1")
		require.NoError(t, err)
		cached, ok := entities.Part("HV-1")
		require.True(t, ok)
		require.Equal(t, stored.Remarks, cached.Remarks, "round %d", round)
	}
}

func TestConcurrentAssignKeepsOneActiveAssignment(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	entities := cache.New()
	svc := service.NewPartService(lateCommitTx{store}, entities, service.NewValidator(), nil)
	factories := testutils.NewFactorySet()

	employees := make([]*models.Employee, 6)
	for i := range employees {
		employees[i] = factories.Employee.Create()
		require.NoError(t, store.Repositories().Employees.Create(ctx, employees[i]))
	}
	require.NoError(t, svc.ReloadCache(ctx))
	_, err := svc.CreateAndAssignPart(ctx, &service.CreatePartRequest{
		CallID:      "HV-1",
		PartDetails: models.PartDetails{PartNo: "PN-1"},
	})
	require.NoError(t, err)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for _, e := range employees {
		wg.Add(1)
		go func(e *models.Employee) {
			defer wg.Done()
			if _, err := svc.AssignPart(ctx, "HV-1", &service.AssignPartRequest{EmployeeID: e.ID}); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}(e)
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Len(t, svc.ListAssignments(cache.AssignmentFilter{PartID: "HV-1"}), 1)

	stored, err := store.Repositories().Parts.GetByID(ctx, "HV-1")
	require.NoError(t, err)
	cached, ok := entities.Part("HV-1")
	require.True(t, ok)
	assert.Equal(t, stored.AssignedTo, cached.AssignedTo)
}

func TestConcurrentCreateEmployeeAllocatesDistinctCodes(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	entities := cache.New()
	employees := service.NewEmployeeService(lateCommitTx{store}, entities, service.NewValidator(), nil, testBcryptCost)

	var wg sync.WaitGroup
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := employees.CreateEmployee(ctx, &service.CreateEmployeeRequest{
				Name:     fmt.Sprintf("Engineer %d", i),
				Username: fmt.Sprintf("engineer%d", i),
				Password: "secret123",
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	listed := employees.ListEmployees()
	require.Len(t, listed, 6)
	for i, e := range listed {
		assert.Equal(t, service.FirstEmployeeID+i, e.EmployeeID)
	}
}
