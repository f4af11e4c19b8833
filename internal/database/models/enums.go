package models

// PartStatus is the lifecycle state of a part
type PartStatus string

const (
	PartStatusAvailable         PartStatus = "available"
	PartStatusAssigned          PartStatus = "assigned"
	PartStatusInUse             PartStatus = "in-use"
	PartStatusReturnedGPR       PartStatus = "returned-gpr"
	PartStatusReturnedDefective PartStatus = "returned-defective"
)

// ReturnApproval tracks the admin decision on a return request
type ReturnApproval string

const (
	ReturnApprovalNone     ReturnApproval = "none"
	ReturnApprovalPending  ReturnApproval = "pending"
	ReturnApprovalApproved ReturnApproval = "approved"
	ReturnApprovalRejected ReturnApproval = "rejected"
)

// ReturnCondition is the condition an engineer declares when returning a part
type ReturnCondition string

const (
	ReturnConditionGPR       ReturnCondition = "gpr"
	ReturnConditionDefective ReturnCondition = "defective"
)

// ReturnStatus is the ledger-facing return flag of a part
type ReturnStatus string

const (
	ReturnStatusPending ReturnStatus = "pending"
	ReturnStatusYes     ReturnStatus = "yes"
	ReturnStatusNo      ReturnStatus = "no"
)

// AssignmentStatus is the state of a custody record
type AssignmentStatus string

const (
	AssignmentStatusActive        AssignmentStatus = "active"
	AssignmentStatusPendingReturn AssignmentStatus = "pending-return"
	AssignmentStatusCompleted     AssignmentStatus = "completed"
)

// Role identifies the kind of principal behind a session
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// IsValid checks if the PartStatus is valid
func (s PartStatus) IsValid() bool {
	switch s {
	case PartStatusAvailable, PartStatusAssigned, PartStatusInUse, PartStatusReturnedGPR, PartStatusReturnedDefective:
		return true
	}
	return false
}

// IsReturned reports whether the part sits in one of the returned states
func (s PartStatus) IsReturned() bool {
	return s == PartStatusReturnedGPR || s == PartStatusReturnedDefective
}

// IsValid checks if the ReturnApproval is valid
func (a ReturnApproval) IsValid() bool {
	switch a {
	case ReturnApprovalNone, ReturnApprovalPending, ReturnApprovalApproved, ReturnApprovalRejected:
		return true
	}
	return false
}

// IsValid checks if the ReturnCondition is valid
func (c ReturnCondition) IsValid() bool {
	switch c {
	case ReturnConditionGPR, ReturnConditionDefective:
		return true
	}
	return false
}

// ReturnedStatus maps a return condition to the part status it produces
func (c ReturnCondition) ReturnedStatus() PartStatus {
	if c == ReturnConditionDefective {
		return PartStatusReturnedDefective
	}
	return PartStatusReturnedGPR
}

// IsValid checks if the ReturnStatus is valid
func (s ReturnStatus) IsValid() bool {
	switch s {
	case ReturnStatusPending, ReturnStatusYes, ReturnStatusNo:
		return true
	}
	return false
}

// IsValid checks if the AssignmentStatus is valid
func (s AssignmentStatus) IsValid() bool {
	switch s {
	case AssignmentStatusActive, AssignmentStatusPendingReturn, AssignmentStatusCompleted:
		return true
	}
	return false
}

// IsOpen reports whether the assignment still represents custody
func (s AssignmentStatus) IsOpen() bool {
	return s == AssignmentStatusActive || s == AssignmentStatusPendingReturn
}

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleEmployee:
		return true
	}
	return false
}
