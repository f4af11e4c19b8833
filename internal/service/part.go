package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"parts-tracking-backend/internal/cache"
	"parts-tracking-backend/internal/database/models"
	apperrors "parts-tracking-backend/internal/errors"
	"parts-tracking-backend/internal/lifecycle"
	"parts-tracking-backend/internal/logger"
	"parts-tracking-backend/internal/metrics"
	"parts-tracking-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Consumption statuses that move an assigned part to in-use
const (
	ConsumptionInUse    = "In Use"
	ConsumptionConsumed = "Consumed"
)

// PartService runs the part lifecycle: allotment, consumption, returns and
// their approval. Every mutation is one transaction; reads come from the
// entity store.
type PartService struct {
	tx        repository.TransactionManagerInterface
	store     *cache.Store
	validator *validator.Validate
	metrics   *metrics.Metrics
	now       func() time.Time
}

// Ensure PartService implements PartServiceInterface
var _ PartServiceInterface = (*PartService)(nil)

// NewPartService creates a new PartService. m may be nil.
func NewPartService(tx repository.TransactionManagerInterface, store *cache.Store, validator *validator.Validate, m *metrics.Metrics) *PartService {
	return &PartService{
		tx:        tx,
		store:     store,
		validator: validator,
		metrics:   m,
		now:       time.Now,
	}
}

// CreatePartRequest represents the request to register a part, optionally
// allotting it to an employee right away
type CreatePartRequest struct {
	CallID string `json:"call_id" validate:"required,max=100,callid,nomarkup" example:"CALL-2024-001"`
	models.PartDetails
	EmployeeID *uuid.UUID `json:"employee_id,omitempty"`
	Notes      string     `json:"notes,omitempty" validate:"max=2000"`
}

// AssignPartRequest represents the request to allot a part to an employee
type AssignPartRequest struct {
	EmployeeID uuid.UUID `json:"employee_id"`
	Notes      string    `json:"notes,omitempty" validate:"max=2000"`
}

// UpdateConsumptionRequest carries the consumption columns an employee may edit.
// Nil fields are left unchanged.
type UpdateConsumptionRequest struct {
	ConsumptionEngineer *string `json:"consumption_engineer,omitempty" validate:"omitempty,max=100,nomarkup"`
	ConsumptionStatus   *string `json:"consumption_status,omitempty" validate:"omitempty,max=100,nomarkup" example:"In Use"`
	ConsumptionDate     *string `json:"consumption_date,omitempty" validate:"omitempty,max=40,nomarkup"`
	FaultyGPRPartSent   *string `json:"faulty_gpr_part_sent,omitempty" validate:"omitempty,max=100,nomarkup"`
	SentDate            *string `json:"sent_date,omitempty" validate:"omitempty,max=40,nomarkup"`
	ReceivedBy          *string `json:"received_by,omitempty" validate:"omitempty,max=100,nomarkup"`
	RecdDate            *string `json:"recd_date,omitempty" validate:"omitempty,max=40,nomarkup"`
}

// ReturnPartRequest represents an employee's request to hand a part back
type ReturnPartRequest struct {
	Condition models.ReturnCondition `json:"condition" validate:"required,oneof=gpr defective" example:"gpr"`
	Notes     string                 `json:"notes,omitempty" validate:"max=2000,nomarkup"`
}

// PartResponse is a part with its current holder resolved
type PartResponse struct {
	models.Part
	AssigneeName     string `json:"assignee_name,omitempty"`
	AssigneeUsername string `json:"assignee_username,omitempty"`
}

// AssignmentResponse is a custody record with part and employee resolved
type AssignmentResponse struct {
	models.Assignment
	PartNo          string            `json:"part_no,omitempty"`
	PartDescription string            `json:"part_description,omitempty"`
	PartStatus      models.PartStatus `json:"part_status,omitempty"`
	EmployeeName    string            `json:"employee_name,omitempty"`
	EmployeeCode    int               `json:"employee_code,omitempty"`
}

// CreateAndAssignPart registers a new part and, when an employee is given,
// allots it in the same transaction
func (s *PartService) CreateAndAssignPart(ctx context.Context, req *CreatePartRequest) (*PartResponse, error) {
	req.CallID = strings.TrimSpace(req.CallID)
	req.PartNo = strings.TrimSpace(req.PartNo)
	if err := s.validator.Struct(req); err != nil {
		err = validationError(err)
		s.metrics.RecordFailure("create_part", err)
		return nil, err
	}

	now := s.now()
	part := &models.Part{
		ID:                    req.CallID,
		CallID:                req.CallID,
		PartDetails:           req.PartDetails,
		Status:                models.PartStatusAvailable,
		PendingReturnApproval: models.ReturnApprovalNone,
		ReturnStatus:          models.ReturnStatusPending,
	}

	err := runInTransaction(ctx, s.tx, s.store, s.metrics, "create_part", func(u *unitOfWork) error {
		exists, err := u.repos.Parts.Exists(ctx, part.ID)
		if err != nil {
			return fmt.Errorf("failed to check call id: %w", err)
		}
		if exists {
			return apperrors.NewDuplicateCallIDError(part.ID)
		}
		if req.EmployeeID != nil {
			if _, err := u.repos.Employees.GetByID(ctx, *req.EmployeeID); err != nil {
				return err
			}
		}

		if err := u.createPart(ctx, part); err != nil {
			return err
		}
		if req.EmployeeID == nil {
			return nil
		}
		_, err = s.assign(ctx, u, part, *req.EmployeeID, req.Notes, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("part_id", part.ID).Info("Part created")
	return s.toPartResponse(part), nil
}

// AssignPart allots an available part to an employee
func (s *PartService) AssignPart(ctx context.Context, partID string, req *AssignPartRequest) (*AssignmentResponse, error) {
	if err := s.validateAssign(req); err != nil {
		s.metrics.RecordFailure("assign_part", err)
		return nil, err
	}

	var assignment *models.Assignment
	err := runInTransaction(ctx, s.tx, s.store, s.metrics, "assign_part", func(u *unitOfWork) error {
		part, err := u.lockPart(ctx, partID)
		if err != nil {
			return err
		}
		if _, err := u.repos.Employees.GetByID(ctx, req.EmployeeID); err != nil {
			return err
		}
		assignment, err = s.assign(ctx, u, part, req.EmployeeID, req.Notes, s.now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.toAssignmentResponse(assignment), nil
}

// assign opens a custody record for part and moves it to assigned
func (s *PartService) assign(ctx context.Context, u *unitOfWork, part *models.Part, employeeID uuid.UUID, notes string, now time.Time) (*models.Assignment, error) {
	assignmentID := uuid.New()
	if err := u.advance(part, lifecycle.TriggerAssign, "", assignmentID); err != nil {
		return nil, err
	}

	open, err := u.repos.Assignments.GetOpenByPartID(ctx, part.ID)
	if err != nil && !apperrors.IsNotFound(err) {
		return nil, err
	}
	if open != nil {
		return nil, apperrors.ErrActiveAssignmentExists
	}

	assignment := &models.Assignment{
		BaseModel:    models.BaseModel{ID: assignmentID},
		PartID:       part.ID,
		EmployeeID:   employeeID,
		AssignedDate: now,
		Status:       models.AssignmentStatusActive,
		Notes:        strings.TrimSpace(notes),
	}
	if err := u.createAssignment(ctx, assignment); err != nil {
		return nil, err
	}

	holder := employeeID
	assignedAt := now
	part.AssignedTo = &holder
	part.AssignedDate = &assignedAt
	part.ReturnStatus = models.ReturnStatusPending
	part.ReturnCondition = nil
	part.ReturnedDate = nil
	if err := u.savePart(ctx, part); err != nil {
		return nil, err
	}
	return assignment, nil
}

// UpdatePart merges patch into the descriptive columns of a part. Keys that
// belong to the lifecycle are refused.
func (s *PartService) UpdatePart(ctx context.Context, partID string, patch map[string]interface{}) (*PartResponse, error) {
	values := make(map[string]string, len(patch))
	for key, raw := range patch {
		if _, ok := models.LifecycleFields[key]; ok {
			err := apperrors.NewValidationError(key, apperrors.ErrLifecycleFieldInPatch.Message)
			s.metrics.RecordFailure("update_part", err)
			return nil, err
		}
		if !models.IsDetailField(key) {
			err := apperrors.NewValidationError(key, "unknown field")
			s.metrics.RecordFailure("update_part", err)
			return nil, err
		}
		switch v := raw.(type) {
		case string:
			values[key] = v
		case nil:
			values[key] = ""
		default:
			err := apperrors.NewValidationError(key, "must be a string")
			s.metrics.RecordFailure("update_part", err)
			return nil, err
		}
	}

	var updated *models.Part
	err := runInTransaction(ctx, s.tx, s.store, s.metrics, "update_part", func(u *unitOfWork) error {
		part, err := u.lockPart(ctx, partID)
		if err != nil {
			return err
		}
		for key, value := range values {
			part.PartDetails.Set(key, value)
		}
		if err := s.validator.Struct(&part.PartDetails); err != nil {
			return validationError(err)
		}
		if err := u.savePart(ctx, part); err != nil {
			return err
		}
		updated = part
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.toPartResponse(updated), nil
}

// UpdateConsumption lets the holder of a part record its consumption. Marking
// an assigned part as in use or consumed moves it to in-use.
func (s *PartService) UpdateConsumption(ctx context.Context, partID string, employeeID uuid.UUID, req *UpdateConsumptionRequest) (*PartResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		err = validationError(err)
		s.metrics.RecordFailure("update_consumption", err)
		return nil, err
	}

	var updated *models.Part
	err := runInTransaction(ctx, s.tx, s.store, s.metrics, "update_consumption", func(u *unitOfWork) error {
		part, err := u.lockPart(ctx, partID)
		if err != nil {
			return err
		}
		if !part.InCustodyOf(employeeID) {
			return apperrors.ErrNotPartHolder
		}

		d := &part.PartDetails
		apply := func(dst *string, src *string) {
			if src != nil {
				*dst = strings.TrimSpace(*src)
			}
		}
		apply(&d.ConsumptionEngineer, req.ConsumptionEngineer)
		apply(&d.ConsumptionStatus, req.ConsumptionStatus)
		apply(&d.ConsumptionDate, req.ConsumptionDate)
		apply(&d.FaultyGPRPartSent, req.FaultyGPRPartSent)
		apply(&d.SentDate, req.SentDate)
		apply(&d.ReceivedBy, req.ReceivedBy)
		apply(&d.RecdDate, req.RecdDate)

		if req.ConsumptionStatus != nil && isConsumed(d.ConsumptionStatus) &&
			lifecycle.Allowed(lifecycle.StateOf(part), lifecycle.TriggerConsume) {
			if err := u.advance(part, lifecycle.TriggerConsume, "", uuid.Nil); err != nil {
				return err
			}
		}
		if err := u.savePart(ctx, part); err != nil {
			return err
		}
		updated = part
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.toPartResponse(updated), nil
}

func isConsumed(status string) bool {
	return strings.EqualFold(status, ConsumptionInUse) || strings.EqualFold(status, ConsumptionConsumed)
}

// UpdatePartAssignment moves the open custody record of a part to another
// employee. A part without one is allotted as by AssignPart.
func (s *PartService) UpdatePartAssignment(ctx context.Context, partID string, req *AssignPartRequest) (*AssignmentResponse, error) {
	if err := s.validateAssign(req); err != nil {
		s.metrics.RecordFailure("reassign_part", err)
		return nil, err
	}

	var assignment *models.Assignment
	var previous uuid.UUID
	err := runInTransaction(ctx, s.tx, s.store, s.metrics, "reassign_part", func(u *unitOfWork) error {
		part, err := u.lockPart(ctx, partID)
		if err != nil {
			return err
		}
		if _, err := u.repos.Employees.GetByID(ctx, req.EmployeeID); err != nil {
			return err
		}

		open, err := u.repos.Assignments.GetOpenByPartID(ctx, part.ID)
		if apperrors.IsNotFound(err) {
			if part.Status != models.PartStatusAvailable {
				return apperrors.NewInvalidTransitionError("part", lifecycle.StateOf(part).String(), "reassign")
			}
			assignment, err = s.assign(ctx, u, part, req.EmployeeID, req.Notes, s.now())
			return err
		}
		if err != nil {
			return err
		}

		if open.Status != models.AssignmentStatusActive {
			return apperrors.NewInvalidTransitionError("assignment", string(open.Status), "reassign")
		}
		previous = open.EmployeeID
		if previous == req.EmployeeID {
			assignment = open
			return nil
		}

		open.EmployeeID = req.EmployeeID
		if notes := strings.TrimSpace(req.Notes); notes != "" {
			open.Notes = appendNote(open.Notes, notes)
		}
		if err := u.saveAssignment(ctx, open); err != nil {
			return err
		}
		holder := req.EmployeeID
		part.AssignedTo = &holder
		if err := u.savePart(ctx, part); err != nil {
			return err
		}
		assignment = open
		return nil
	})
	if err != nil {
		return nil, err
	}

	if previous != uuid.Nil && previous != req.EmployeeID {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"part_id":       partID,
			"assignment_id": assignment.ID.String(),
			"from_employee": previous.String(),
			"to_employee":   req.EmployeeID.String(),
		}).Info("Part reassigned")
	}
	return s.toAssignmentResponse(assignment), nil
}

// ReturnPart records an employee's return of a part for admin approval.
// Custody is kept until the return is accepted.
func (s *PartService) ReturnPart(ctx context.Context, assignmentID, employeeID uuid.UUID, req *ReturnPartRequest) (*AssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		err = validationError(err)
		s.metrics.RecordFailure("return_part", err)
		return nil, err
	}

	var assignment *models.Assignment
	err := runInTransaction(ctx, s.tx, s.store, s.metrics, "return_part", func(u *unitOfWork) error {
		a, part, err := u.lockAssignment(ctx, assignmentID)
		if err != nil {
			return err
		}
		if a.EmployeeID != employeeID {
			return apperrors.ErrNotAssignmentOwner
		}
		next, err := lifecycle.NextAssignment(a.Status, lifecycle.TriggerReturn)
		if err != nil {
			return err
		}
		if err := u.advance(part, lifecycle.TriggerReturn, req.Condition, a.ID); err != nil {
			return err
		}

		now := s.now()
		assignmentCondition := req.Condition
		a.Status = next
		a.ReturnDate = &now
		a.ReturnCondition = &assignmentCondition
		if notes := strings.TrimSpace(req.Notes); notes != "" {
			a.Notes = notes
		}
		if err := u.saveAssignment(ctx, a); err != nil {
			return err
		}

		partCondition := req.Condition
		part.ReturnCondition = &partCondition
		part.ReturnStatus = models.ReturnStatusPending
		if err := u.savePart(ctx, part); err != nil {
			return err
		}
		assignment = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.toAssignmentResponse(assignment), nil
}

// AcceptReturn approves a pending return and releases custody
func (s *PartService) AcceptReturn(ctx context.Context, assignmentID uuid.UUID) (*AssignmentResponse, error) {
	var assignment *models.Assignment
	err := runInTransaction(ctx, s.tx, s.store, s.metrics, "accept_return", func(u *unitOfWork) error {
		a, part, next, err := s.loadReturn(ctx, u, assignmentID, lifecycle.TriggerAccept)
		if err != nil {
			return err
		}

		now := s.now()
		a.Status = next
		a.ReturnDate = &now
		if err := u.saveAssignment(ctx, a); err != nil {
			return err
		}

		returnedAt := now
		part.ReturnStatus = models.ReturnStatusYes
		part.ReturnedDate = &returnedAt
		if err := u.savePart(ctx, part); err != nil {
			return err
		}
		assignment = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.toAssignmentResponse(assignment), nil
}

// RejectReturn refuses a pending return; the part goes back to the employee
func (s *PartService) RejectReturn(ctx context.Context, assignmentID uuid.UUID) (*AssignmentResponse, error) {
	var assignment *models.Assignment
	err := runInTransaction(ctx, s.tx, s.store, s.metrics, "reject_return", func(u *unitOfWork) error {
		a, part, next, err := s.loadReturn(ctx, u, assignmentID, lifecycle.TriggerReject)
		if err != nil {
			return err
		}

		a.Status = next
		a.Notes = appendNote(a.Notes, fmt.Sprintf("[Return rejected %s]", s.now().Format(time.RFC3339)))
		a.ReturnCondition = nil
		a.ReturnDate = nil
		if err := u.saveAssignment(ctx, a); err != nil {
			return err
		}

		part.ReturnCondition = nil
		part.ReturnStatus = models.ReturnStatusNo
		if err := u.savePart(ctx, part); err != nil {
			return err
		}
		assignment = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.toAssignmentResponse(assignment), nil
}

// loadReturn fetches an assignment and its part and advances both for an
// approval decision. Nothing is written.
func (s *PartService) loadReturn(ctx context.Context, u *unitOfWork, assignmentID uuid.UUID, trigger lifecycle.Trigger) (*models.Assignment, *models.Part, models.AssignmentStatus, error) {
	a, part, err := u.lockAssignment(ctx, assignmentID)
	if err != nil {
		return nil, nil, "", err
	}
	next, err := lifecycle.NextAssignment(a.Status, trigger)
	if err != nil {
		return nil, nil, "", err
	}
	if err := u.advance(part, trigger, "", a.ID); err != nil {
		return nil, nil, "", err
	}
	return a, part, next, nil
}

func appendNote(notes, note string) string {
	if notes == "" {
		return note
	}
	return notes + "\n" + note
}

func (s *PartService) validateAssign(req *AssignPartRequest) error {
	if req.EmployeeID == uuid.Nil {
		return apperrors.NewValidationError("employee_id", "is required")
	}
	if err := s.validator.Struct(req); err != nil {
		return validationError(err)
	}
	return nil
}

// ListParts returns the parts matching filter
func (s *PartService) ListParts(filter cache.PartFilter) []PartResponse {
	parts := s.store.ListParts(filter)
	out := make([]PartResponse, len(parts))
	for i := range parts {
		out[i] = *s.toPartResponse(&parts[i])
	}
	return out
}

// GetPart returns one part by call id
func (s *PartService) GetPart(id string) (*PartResponse, error) {
	part, ok := s.store.Part(id)
	if !ok {
		return nil, apperrors.ErrPartNotFound
	}
	return s.toPartResponse(&part), nil
}

// ListAssignments returns custody records matching filter, newest first
func (s *PartService) ListAssignments(filter cache.AssignmentFilter) []AssignmentResponse {
	assignments := s.store.ListAssignments(filter)
	out := make([]AssignmentResponse, len(assignments))
	for i := range assignments {
		out[i] = *s.toAssignmentResponse(&assignments[i])
	}
	return out
}

// ListPendingReturns returns the returns awaiting an admin decision
func (s *PartService) ListPendingReturns() []AssignmentResponse {
	return s.ListAssignments(cache.AssignmentFilter{Status: models.AssignmentStatusPendingReturn})
}

// EmployeeParts returns the parts currently in the employee's custody
func (s *PartService) EmployeeParts(employeeID uuid.UUID) ([]PartResponse, error) {
	if _, ok := s.store.Employee(employeeID); !ok {
		return nil, apperrors.ErrEmployeeNotFound
	}
	ids := s.store.AssignedParts(employeeID)
	out := make([]PartResponse, 0, len(ids))
	for _, id := range ids {
		if part, ok := s.store.Part(id); ok {
			out = append(out, *s.toPartResponse(&part))
		}
	}
	return out, nil
}

// ReloadCache replaces the entity store content with a fresh snapshot
func (s *PartService) ReloadCache(ctx context.Context) error {
	err := s.store.Write(ctx, func() (*cache.Change, error) {
		return nil, s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
			return s.store.Refresh(ctx, repos)
		})
	})
	if err != nil {
		return fmt.Errorf("failed to reload entity store: %w", err)
	}
	logger.WithContext(ctx).Info("Entity store reloaded")
	return nil
}

func (s *PartService) toPartResponse(part *models.Part) *PartResponse {
	resp := &PartResponse{Part: *part}
	if part.AssignedTo != nil {
		if employee, ok := s.store.Employee(*part.AssignedTo); ok {
			resp.AssigneeName = employee.Name
			resp.AssigneeUsername = employee.Username
		}
	}
	return resp
}

func (s *PartService) toAssignmentResponse(a *models.Assignment) *AssignmentResponse {
	resp := &AssignmentResponse{Assignment: *a}
	if part, ok := s.store.Part(a.PartID); ok {
		resp.PartNo = part.PartNo
		resp.PartDescription = part.PartDescription
		resp.PartStatus = part.Status
	}
	if employee, ok := s.store.Employee(a.EmployeeID); ok {
		resp.EmployeeName = employee.Name
		resp.EmployeeCode = employee.EmployeeID
	}
	return resp
}
