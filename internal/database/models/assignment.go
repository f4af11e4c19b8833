package models

import (
	"time"

	"github.com/google/uuid"
)

// Assignment records one custody of a part by an employee. A part has at
// most one assignment that is not completed.
type Assignment struct {
	BaseModel
	PartID          string           `json:"part_id" gorm:"size:100;not null;index;uniqueIndex:idx_assignments_open_part,where:status <> 'completed'"`
	EmployeeID      uuid.UUID        `json:"employee_id" gorm:"type:uuid;not null;index"`
	AssignedDate    time.Time        `json:"assigned_date" gorm:"not null"`
	Status          AssignmentStatus `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`
	ReturnDate      *time.Time       `json:"return_date"`
	ReturnCondition *ReturnCondition `json:"return_condition" gorm:"type:varchar(20)"`
	Notes           string           `json:"notes" gorm:"type:text"`
}

// TableName returns the table name for Assignment
func (Assignment) TableName() string {
	return "assignments"
}
