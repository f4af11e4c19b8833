package models

// Employee is a field engineer who receives parts
type Employee struct {
	BaseModel
	EmployeeID   int    `json:"employee_id" gorm:"not null;uniqueIndex:idx_employees_employee_id"`
	Name         string `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Username     string `json:"username" gorm:"size:100;not null;uniqueIndex" validate:"required,min=3,max=100"`
	PasswordHash string `json:"-" gorm:"size:100;not null"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employees"
}

// Admin is an administrator account
type Admin struct {
	BaseModel
	Name         string `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Username     string `json:"username" gorm:"size:100;not null;uniqueIndex" validate:"required,min=3,max=100"`
	PasswordHash string `json:"-" gorm:"size:100;not null"`
}

// TableName returns the table name for Admin
func (Admin) TableName() string {
	return "admins"
}
