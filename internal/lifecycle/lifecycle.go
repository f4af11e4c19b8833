// Package lifecycle holds the transition table for parts and their custody
// records. Every state change made by the part service is computed here.
package lifecycle

import (
	"fmt"

	"parts-tracking-backend/internal/database/models"
	apperrors "parts-tracking-backend/internal/errors"
)

// Trigger names an event that moves a part through its lifecycle
type Trigger string

const (
	TriggerAssign  Trigger = "assign"
	TriggerConsume Trigger = "consume"
	TriggerReturn  Trigger = "return"
	TriggerAccept  Trigger = "accept"
	TriggerReject  Trigger = "reject"
)

// State is the lifecycle-relevant projection of a part
type State struct {
	Status   models.PartStatus
	Approval models.ReturnApproval
}

func (s State) String() string {
	return fmt.Sprintf("%s/%s", s.Status, s.Approval)
}

// StateOf extracts the lifecycle state of a part
func StateOf(p *models.Part) State {
	approval := p.PendingReturnApproval
	if approval == "" {
		approval = models.ReturnApprovalNone
	}
	return State{Status: p.Status, Approval: approval}
}

type partRule struct {
	from      []models.PartStatus
	approvals []models.ReturnApproval // nil accepts any approval
	to        func(from State, cond models.ReturnCondition) State
}

var partTransitions = map[Trigger]partRule{
	TriggerAssign: {
		from: []models.PartStatus{models.PartStatusAvailable},
		to: func(State, models.ReturnCondition) State {
			return State{Status: models.PartStatusAssigned, Approval: models.ReturnApprovalNone}
		},
	},
	TriggerConsume: {
		from:      []models.PartStatus{models.PartStatusAssigned},
		approvals: []models.ReturnApproval{models.ReturnApprovalNone, models.ReturnApprovalRejected},
		to: func(from State, _ models.ReturnCondition) State {
			return State{Status: models.PartStatusInUse, Approval: from.Approval}
		},
	},
	TriggerReturn: {
		from:      []models.PartStatus{models.PartStatusAssigned, models.PartStatusInUse},
		approvals: []models.ReturnApproval{models.ReturnApprovalNone, models.ReturnApprovalRejected},
		to: func(_ State, cond models.ReturnCondition) State {
			return State{Status: cond.ReturnedStatus(), Approval: models.ReturnApprovalPending}
		},
	},
	TriggerAccept: {
		from:      []models.PartStatus{models.PartStatusReturnedGPR, models.PartStatusReturnedDefective},
		approvals: []models.ReturnApproval{models.ReturnApprovalPending},
		to: func(from State, _ models.ReturnCondition) State {
			return State{Status: from.Status, Approval: models.ReturnApprovalApproved}
		},
	},
	TriggerReject: {
		from:      []models.PartStatus{models.PartStatusReturnedGPR, models.PartStatusReturnedDefective},
		approvals: []models.ReturnApproval{models.ReturnApprovalPending},
		to: func(State, models.ReturnCondition) State {
			return State{Status: models.PartStatusAssigned, Approval: models.ReturnApprovalRejected}
		},
	},
}

// Next returns the state a part moves to when trigger fires from the given
// state. cond is only read by TriggerReturn and must then be valid.
func Next(from State, trigger Trigger, cond models.ReturnCondition) (State, error) {
	rule, ok := partTransitions[trigger]
	if !ok || !rule.allows(from) {
		return State{}, apperrors.NewInvalidTransitionError("part", from.String(), string(trigger))
	}
	if trigger == TriggerReturn && !cond.IsValid() {
		return State{}, apperrors.NewValidationError("condition", "must be gpr or defective")
	}
	return rule.to(from, cond), nil
}

// Allowed reports whether trigger may fire from the given state
func Allowed(from State, trigger Trigger) bool {
	rule, ok := partTransitions[trigger]
	return ok && rule.allows(from)
}

func (r partRule) allows(from State) bool {
	if !contains(r.from, from.Status) {
		return false
	}
	return r.approvals == nil || contains(r.approvals, from.Approval)
}

var assignmentTransitions = map[Trigger]struct {
	from models.AssignmentStatus
	to   models.AssignmentStatus
}{
	TriggerReturn: {from: models.AssignmentStatusActive, to: models.AssignmentStatusPendingReturn},
	TriggerAccept: {from: models.AssignmentStatusPendingReturn, to: models.AssignmentStatusCompleted},
	TriggerReject: {from: models.AssignmentStatusPendingReturn, to: models.AssignmentStatusActive},
}

// NextAssignment returns the custody record status that follows trigger
func NextAssignment(from models.AssignmentStatus, trigger Trigger) (models.AssignmentStatus, error) {
	t, ok := assignmentTransitions[trigger]
	if !ok || t.from != from {
		return "", apperrors.NewInvalidTransitionError("assignment", string(from), string(trigger))
	}
	return t.to, nil
}

func contains[T comparable](values []T, v T) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
