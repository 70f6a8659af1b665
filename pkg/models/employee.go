package models

type Employee struct {
	EmployeeID      int    `json:"employeeID,omitempty"`
	FirstName       string `json:"firstName" binding:"required"`
	LastName        string `json:"lastName" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	CurrentOfficeID *int   `json:"currentOfficeId"`
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// EmployeeWithOffice enriches an employee with the resolved office name:
// "Unknown Office" when the reference dangles, "N/A" when unassigned.
type EmployeeWithOffice struct {
	Employee
	OfficeName string `json:"officeName"`
}
