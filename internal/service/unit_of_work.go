package service

import (
	"context"

	"parts-tracking-backend/internal/cache"
	"parts-tracking-backend/internal/database/models"
	"parts-tracking-backend/internal/lifecycle"
	"parts-tracking-backend/internal/logger"
	"parts-tracking-backend/internal/metrics"
	"parts-tracking-backend/internal/repository"

	"github.com/google/uuid"
)

// transition is a part state change recorded for logging once its transaction commits
type transition struct {
	partID       string
	assignmentID uuid.UUID
	trigger      lifecycle.Trigger
	from         lifecycle.State
	to           lifecycle.State
}

// unitOfWork collects the writes of one transaction so the entity store and
// the logs only see them after commit
type unitOfWork struct {
	repos       *repository.Repositories
	change      cache.Change
	transitions []transition
}

// lockPart loads a part and holds its row lock until the transaction ends.
// Every custody change goes through the part row, so changes to one part
// run one at a time.
func (u *unitOfWork) lockPart(ctx context.Context, id string) (*models.Part, error) {
	return u.repos.Parts.GetByIDForUpdate(ctx, id)
}

// lockAssignment locks the part of an assignment, then reads the assignment
// again so its status is the one committed before the lock was taken
func (u *unitOfWork) lockAssignment(ctx context.Context, id uuid.UUID) (*models.Assignment, *models.Part, error) {
	a, err := u.repos.Assignments.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	part, err := u.lockPart(ctx, a.PartID)
	if err != nil {
		return nil, nil, err
	}
	a, err = u.repos.Assignments.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return a, part, nil
}

func (u *unitOfWork) createPart(ctx context.Context, part *models.Part) error {
	if err := u.repos.Parts.Create(ctx, part); err != nil {
		return err
	}
	u.change.Parts = append(u.change.Parts, *part)
	return nil
}

func (u *unitOfWork) savePart(ctx context.Context, part *models.Part) error {
	if err := u.repos.Parts.Update(ctx, part); err != nil {
		return err
	}
	u.change.Parts = append(u.change.Parts, *part)
	return nil
}

func (u *unitOfWork) createAssignment(ctx context.Context, assignment *models.Assignment) error {
	if err := u.repos.Assignments.Create(ctx, assignment); err != nil {
		return err
	}
	u.change.Assignments = append(u.change.Assignments, *assignment)
	return nil
}

func (u *unitOfWork) saveAssignment(ctx context.Context, assignment *models.Assignment) error {
	if err := u.repos.Assignments.Update(ctx, assignment); err != nil {
		return err
	}
	u.change.Assignments = append(u.change.Assignments, *assignment)
	return nil
}

// advance moves part along trigger in memory; the caller persists it
func (u *unitOfWork) advance(part *models.Part, trigger lifecycle.Trigger, cond models.ReturnCondition, assignmentID uuid.UUID) error {
	from := lifecycle.StateOf(part)
	to, err := lifecycle.Next(from, trigger, cond)
	if err != nil {
		return err
	}
	part.Status = to.Status
	part.PendingReturnApproval = to.Approval
	u.transitions = append(u.transitions, transition{
		partID:       part.ID,
		assignmentID: assignmentID,
		trigger:      trigger,
		from:         from,
		to:           to,
	})
	return nil
}

// runInTransaction executes fn in one transaction while holding the entity
// store's writer slot. On commit the collected records are published before
// the slot is released, then transitions are logged and counted. On failure
// nothing is published.
func runInTransaction(
	ctx context.Context,
	tx repository.TransactionManagerInterface,
	store *cache.Store,
	m *metrics.Metrics,
	operation string,
	fn func(u *unitOfWork) error,
) error {
	var committed *unitOfWork
	err := store.Write(ctx, func() (*cache.Change, error) {
		err := tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
			u := &unitOfWork{repos: repos}
			if err := fn(u); err != nil {
				return err
			}
			committed = u
			return nil
		})
		if err != nil {
			return nil, err
		}
		return &committed.change, nil
	})
	if err != nil {
		m.RecordFailure(operation, err)
		logger.WithContext(ctx).WithError(err).WithField("operation", operation).Warn("Operation failed")
		return err
	}

	for _, t := range committed.transitions {
		fields := map[string]interface{}{
			"part_id": t.partID,
			"trigger": string(t.trigger),
			"from":    t.from.String(),
			"to":      t.to.String(),
		}
		if t.assignmentID != uuid.Nil {
			fields["assignment_id"] = t.assignmentID.String()
		}
		logger.WithContext(ctx).WithFields(fields).Info("Part lifecycle transition")
		m.RecordTransition(string(t.trigger), string(t.to.Status))
	}
	return nil
}
