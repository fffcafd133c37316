package payroll

import "go-payroll/internal/employee"

type GeneratePayrollRequest struct {
	Month string `json:"month" binding:"required"`
	Year  int    `json:"year" binding:"required"`
}

type UpdateSalaryRequest struct {
	Salary       employee.SalaryInput `json:"salary" binding:"required"`
	LastPaidDate *string              `json:"lastPaidDate"`
}

type SnapshotResponse struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employeeId"`
	Month       string  `json:"month"`
	Year        int     `json:"year"`
	GrossSalary float64 `json:"grossSalary"`
	Deductions  float64 `json:"deductions"`
	NetSalary   float64 `json:"netSalary"`
	Paid        bool    `json:"paid"`
}

// EmployeePayrollResponse is the salary view of one employee, with
// lastPaidDate serialized as ISO-8601 or null.
type EmployeePayrollResponse struct {
	Name         string          `json:"name"`
	Salary       employee.Salary `json:"salary"`
	LastPaidDate *string         `json:"lastPaidDate"`
}
