package lifecycle

import (
	"testing"

	"parts-tracking-backend/internal/database/models"
	apperrors "parts-tracking-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext(t *testing.T) {
	tests := []struct {
		name    string
		from    State
		trigger Trigger
		cond    models.ReturnCondition
		want    State
		wantErr bool
	}{
		{
			name:    "assign available part",
			from:    State{models.PartStatusAvailable, models.ReturnApprovalNone},
			trigger: TriggerAssign,
			want:    State{models.PartStatusAssigned, models.ReturnApprovalNone},
		},
		{
			name:    "assign already assigned part",
			from:    State{models.PartStatusAssigned, models.ReturnApprovalNone},
			trigger: TriggerAssign,
			wantErr: true,
		},
		{
			name:    "consume assigned part",
			from:    State{models.PartStatusAssigned, models.ReturnApprovalNone},
			trigger: TriggerConsume,
			want:    State{models.PartStatusInUse, models.ReturnApprovalNone},
		},
		{
			name:    "consume after rejected return keeps approval",
			from:    State{models.PartStatusAssigned, models.ReturnApprovalRejected},
			trigger: TriggerConsume,
			want:    State{models.PartStatusInUse, models.ReturnApprovalRejected},
		},
		{
			name:    "consume available part",
			from:    State{models.PartStatusAvailable, models.ReturnApprovalNone},
			trigger: TriggerConsume,
			wantErr: true,
		},
		{
			name:    "return assigned part as gpr",
			from:    State{models.PartStatusAssigned, models.ReturnApprovalNone},
			trigger: TriggerReturn,
			cond:    models.ReturnConditionGPR,
			want:    State{models.PartStatusReturnedGPR, models.ReturnApprovalPending},
		},
		{
			name:    "return in-use part as defective",
			from:    State{models.PartStatusInUse, models.ReturnApprovalNone},
			trigger: TriggerReturn,
			cond:    models.ReturnConditionDefective,
			want:    State{models.PartStatusReturnedDefective, models.ReturnApprovalPending},
		},
		{
			name:    "return again after rejection",
			from:    State{models.PartStatusAssigned, models.ReturnApprovalRejected},
			trigger: TriggerReturn,
			cond:    models.ReturnConditionGPR,
			want:    State{models.PartStatusReturnedGPR, models.ReturnApprovalPending},
		},
		{
			name:    "return while return is pending",
			from:    State{models.PartStatusReturnedGPR, models.ReturnApprovalPending},
			trigger: TriggerReturn,
			cond:    models.ReturnConditionGPR,
			wantErr: true,
		},
		{
			name:    "return available part",
			from:    State{models.PartStatusAvailable, models.ReturnApprovalNone},
			trigger: TriggerReturn,
			cond:    models.ReturnConditionGPR,
			wantErr: true,
		},
		{
			name:    "accept pending gpr return",
			from:    State{models.PartStatusReturnedGPR, models.ReturnApprovalPending},
			trigger: TriggerAccept,
			want:    State{models.PartStatusReturnedGPR, models.ReturnApprovalApproved},
		},
		{
			name:    "accept pending defective return",
			from:    State{models.PartStatusReturnedDefective, models.ReturnApprovalPending},
			trigger: TriggerAccept,
			want:    State{models.PartStatusReturnedDefective, models.ReturnApprovalApproved},
		},
		{
			name:    "accept twice",
			from:    State{models.PartStatusReturnedGPR, models.ReturnApprovalApproved},
			trigger: TriggerAccept,
			wantErr: true,
		},
		{
			name:    "reject pending return",
			from:    State{models.PartStatusReturnedDefective, models.ReturnApprovalPending},
			trigger: TriggerReject,
			want:    State{models.PartStatusAssigned, models.ReturnApprovalRejected},
		},
		{
			name:    "reject without pending return",
			from:    State{models.PartStatusAssigned, models.ReturnApprovalNone},
			trigger: TriggerReject,
			wantErr: true,
		},
		{
			name:    "unknown trigger",
			from:    State{models.PartStatusAvailable, models.ReturnApprovalNone},
			trigger: Trigger("scrap"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Next(tt.from, tt.trigger, tt.cond)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsInvalidTransition(err))
				assert.False(t, Allowed(tt.from, tt.trigger))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, Allowed(tt.from, tt.trigger))
		})
	}
}

func TestNextRejectsUnknownCondition(t *testing.T) {
	_, err := Next(State{models.PartStatusAssigned, models.ReturnApprovalNone}, TriggerReturn, models.ReturnCondition("scrapped"))
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestNextOnlyProducesValidStatuses(t *testing.T) {
	statuses := []models.PartStatus{
		models.PartStatusAvailable, models.PartStatusAssigned, models.PartStatusInUse,
		models.PartStatusReturnedGPR, models.PartStatusReturnedDefective,
	}
	approvals := []models.ReturnApproval{
		models.ReturnApprovalNone, models.ReturnApprovalPending,
		models.ReturnApprovalApproved, models.ReturnApprovalRejected,
	}
	triggers := []Trigger{TriggerAssign, TriggerConsume, TriggerReturn, TriggerAccept, TriggerReject}

	for _, status := range statuses {
		for _, approval := range approvals {
			for _, trigger := range triggers {
				got, err := Next(State{status, approval}, trigger, models.ReturnConditionDefective)
				if err != nil {
					continue
				}
				assert.True(t, got.Status.IsValid(), "%s/%s --%s--> %s", status, approval, trigger, got)
				assert.True(t, got.Approval.IsValid(), "%s/%s --%s--> %s", status, approval, trigger, got)
			}
		}
	}
}

func TestStateOfDefaultsApproval(t *testing.T) {
	state := StateOf(&models.Part{Status: models.PartStatusAvailable})
	assert.Equal(t, models.ReturnApprovalNone, state.Approval)
}

func TestNextAssignment(t *testing.T) {
	tests := []struct {
		from    models.AssignmentStatus
		trigger Trigger
		want    models.AssignmentStatus
		wantErr bool
	}{
		{models.AssignmentStatusActive, TriggerReturn, models.AssignmentStatusPendingReturn, false},
		{models.AssignmentStatusPendingReturn, TriggerAccept, models.AssignmentStatusCompleted, false},
		{models.AssignmentStatusPendingReturn, TriggerReject, models.AssignmentStatusActive, false},
		{models.AssignmentStatusCompleted, TriggerAccept, "", true},
		{models.AssignmentStatusActive, TriggerAccept, "", true},
		{models.AssignmentStatusPendingReturn, TriggerReturn, "", true},
		{models.AssignmentStatusActive, TriggerAssign, "", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_"+string(tt.trigger), func(t *testing.T) {
			got, err := NextAssignment(tt.from, tt.trigger)
			if tt.wantErr {
				assert.True(t, apperrors.IsInvalidTransition(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
