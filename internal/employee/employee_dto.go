package employee

type SalaryInput struct {
	Basic float64 `json:"basic"`
	HRA   float64 `json:"hra"`
	Other float64 `json:"other"`
}

type CreateEmployeeRequest struct {
	Name        string      `json:"name" binding:"required"`
	Email       string      `json:"email" binding:"required,email"`
	Department  string      `json:"department"`
	Role        string      `json:"role"`
	JoiningDate string      `json:"joiningDate" binding:"required"`
	Salary      SalaryInput `json:"salary"`
}

// UpdateEmployeeRequest uses pointers throughout: only fields present in the
// request body are written, everything else is left untouched.
type UpdateEmployeeRequest struct {
	Name         *string      `json:"name"`
	Email        *string      `json:"email" binding:"omitempty,email"`
	Department   *string      `json:"department"`
	Role         *string      `json:"role"`
	JoiningDate  *string      `json:"joiningDate"`
	Salary       *SalaryInput `json:"salary"`
	LastPaidDate *string      `json:"lastPaidDate"`
}

type EmployeeResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Department   string  `json:"department"`
	Role         string  `json:"role"`
	JoiningDate  string  `json:"joiningDate"`
	Salary       Salary  `json:"salary"`
	LastPaidDate *string `json:"lastPaidDate"`
}
