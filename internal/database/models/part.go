package models

import (
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PartDetails holds the descriptive, free-text columns of the parts ledger.
// None of them take part in the lifecycle.
type PartDetails struct {
	CallStatus           string `json:"call_status" gorm:"size:100"`
	CustomerName         string `json:"customer_name" gorm:"size:200" validate:"max=200,nomarkup"`
	MachineModelNo       string `json:"machine_model_no" gorm:"size:100"`
	SerialNo             string `json:"serial_no" gorm:"size:100"`
	AttendDate           string `json:"attend_date" gorm:"size:40"`
	ClaimEngineerName    string `json:"claim_engineer_name" gorm:"size:100"`
	ClaimDate            string `json:"claim_date" gorm:"size:40"`
	RepairReplacementDOA string `json:"repair_replacement_doa" gorm:"size:100"`
	PartDescription      string `json:"part_description" gorm:"type:text" validate:"nomarkup"`
	PartNo               string `json:"part_no" gorm:"size:100;not null;index" validate:"required,max=100,nomarkup"`
	ConsumptionEngineer  string `json:"consumption_engineer" gorm:"size:100"`
	ConsumptionStatus    string `json:"consumption_status" gorm:"size:100"`
	ConsumptionDate      string `json:"consumption_date" gorm:"size:40"`
	FaultyGPRPartSent    string `json:"faulty_gpr_part_sent" gorm:"size:100"`
	SentDate             string `json:"sent_date" gorm:"size:40"`
	ReceivedBy           string `json:"received_by" gorm:"size:100"`
	RecdDate             string `json:"recd_date" gorm:"size:40"`
	CompletedStatus      string `json:"completed_status" gorm:"size:100"`
	CompletedBy          string `json:"completed_by" gorm:"size:100"`
	CompleteDate         string `json:"complete_date" gorm:"size:40"`
	CompletedLocation    string `json:"completed_location" gorm:"size:200"`
	Remarks              string `json:"remarks" gorm:"type:text"`
	Category             string `json:"category" gorm:"size:100"`
	Name                 string `json:"name" gorm:"size:200"`
	Description          string `json:"description" gorm:"type:text"`
	PartNumber           string `json:"part_number" gorm:"size:100"`
}

// Part is one physical spare part tracked through the allotment lifecycle.
// Its primary key is the call identifier.
type Part struct {
	ID     string `json:"id" gorm:"primaryKey;size:100"`
	CallID string `json:"call_id" gorm:"size:100;not null;uniqueIndex"`
	PartDetails

	Status                PartStatus       `json:"status" gorm:"type:varchar(30);not null;default:'available';index"`
	AssignedTo            *uuid.UUID       `json:"assigned_to" gorm:"type:uuid;index"`
	AssignedDate          *time.Time       `json:"assigned_date"`
	PendingReturnApproval ReturnApproval   `json:"pending_return_approval" gorm:"type:varchar(20);not null;default:'none';index"`
	ReturnCondition       *ReturnCondition `json:"return_condition" gorm:"type:varchar(20)"`
	ReturnStatus          ReturnStatus     `json:"return_status" gorm:"type:varchar(20);not null;default:'pending'"`
	ReturnedDate          *time.Time       `json:"returned_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for Part
func (Part) TableName() string {
	return "parts"
}

// InCustodyOf reports whether the part is held by the employee: assigned to
// them and not released by an approved return.
func (p *Part) InCustodyOf(employeeID uuid.UUID) bool {
	return p.AssignedTo != nil && *p.AssignedTo == employeeID && p.PendingReturnApproval != ReturnApprovalApproved
}

// InCustody reports whether any employee currently holds the part.
func (p *Part) InCustody() bool {
	return p.AssignedTo != nil && p.PendingReturnApproval != ReturnApprovalApproved
}

// LifecycleFields are the JSON keys owned by lifecycle transitions.
var LifecycleFields = map[string]struct{}{
	"id":                      {},
	"call_id":                 {},
	"status":                  {},
	"assigned_to":             {},
	"assigned_date":           {},
	"pending_return_approval": {},
	"return_condition":        {},
	"return_status":           {},
	"returned_date":           {},
	"created_at":              {},
	"updated_at":              {},
}

var detailFieldIndex = func() map[string]int {
	t := reflect.TypeOf(PartDetails{})
	index := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := strings.Split(t.Field(i).Tag.Get("json"), ",")[0]
		index[tag] = i
	}
	return index
}()

// IsDetailField reports whether key names a descriptive column.
func IsDetailField(key string) bool {
	_, ok := detailFieldIndex[key]
	return ok
}

// Set assigns a descriptive column by its JSON key. It returns false for
// unknown keys.
func (d *PartDetails) Set(key, value string) bool {
	i, ok := detailFieldIndex[key]
	if !ok {
		return false
	}
	reflect.ValueOf(d).Elem().Field(i).SetString(value)
	return true
}
