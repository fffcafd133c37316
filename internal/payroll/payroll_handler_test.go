package payroll_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-payroll/internal/employee"
	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/payroll"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakePayrollService struct {
	GenerateFn           func(ctx context.Context, employeeID string, req payroll.GeneratePayrollRequest) (payroll.SnapshotResponse, error)
	ListAllFn            func(ctx context.Context) ([]employee.EmployeeResponse, error)
	GetForEmployeeFn     func(ctx context.Context, employeeID string) (payroll.EmployeePayrollResponse, error)
	UpdateSalaryFn       func(ctx context.Context, employeeID string, req payroll.UpdateSalaryRequest) (employee.EmployeeResponse, error)
	GetSnapshotFn        func(ctx context.Context, id string) (payroll.SnapshotResponse, error)
	HistoryForEmployeeFn func(ctx context.Context, employeeID string) ([]payroll.SnapshotResponse, error)
}

func (f *fakePayrollService) Generate(ctx context.Context, employeeID string, req payroll.GeneratePayrollRequest) (payroll.SnapshotResponse, error) {
	return f.GenerateFn(ctx, employeeID, req)
}
func (f *fakePayrollService) ListAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.ListAllFn(ctx)
}
func (f *fakePayrollService) GetForEmployee(ctx context.Context, employeeID string) (payroll.EmployeePayrollResponse, error) {
	return f.GetForEmployeeFn(ctx, employeeID)
}
func (f *fakePayrollService) UpdateSalary(ctx context.Context, employeeID string, req payroll.UpdateSalaryRequest) (employee.EmployeeResponse, error) {
	return f.UpdateSalaryFn(ctx, employeeID, req)
}
func (f *fakePayrollService) GetSnapshot(ctx context.Context, id string) (payroll.SnapshotResponse, error) {
	return f.GetSnapshotFn(ctx, id)
}
func (f *fakePayrollService) HistoryForEmployee(ctx context.Context, employeeID string) ([]payroll.SnapshotResponse, error) {
	return f.HistoryForEmployeeFn(ctx, employeeID)
}

func testContext(t *testing.T, method, path, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func TestPayrollHandler_Generate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		emplID := primitive.NewObjectID().Hex()
		svc := &fakePayrollService{
			GenerateFn: func(ctx context.Context, employeeID string, req payroll.GeneratePayrollRequest) (payroll.SnapshotResponse, error) {
				assert.Equal(t, emplID, employeeID)
				assert.Equal(t, "Jan", req.Month)
				return payroll.SnapshotResponse{
					ID:          primitive.NewObjectID().Hex(),
					EmployeeID:  employeeID,
					Month:       req.Month,
					Year:        req.Year,
					GrossSalary: 1250,
					Deductions:  125,
					NetSalary:   1125,
					Paid:        true,
				}, nil
			},
		}
		h := payroll.NewHandler(svc)

		c, w := testContext(t, http.MethodPost, "/api/payroll/generate/"+emplID, `{"month":"Jan","year":2024}`)
		c.Params = gin.Params{{Key: "employeeId", Value: emplID}}

		h.Generate(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "1125")
	})

	t.Run("employee not found", func(t *testing.T) {
		svc := &fakePayrollService{
			GenerateFn: func(ctx context.Context, employeeID string, req payroll.GeneratePayrollRequest) (payroll.SnapshotResponse, error) {
				return payroll.SnapshotResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}
		h := payroll.NewHandler(svc)

		emplID := primitive.NewObjectID().Hex()
		c, w := testContext(t, http.MethodPost, "/api/payroll/generate/"+emplID, `{"month":"Jan","year":2024}`)
		c.Params = gin.Params{{Key: "employeeId", Value: emplID}}

		h.Generate(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("validation error", func(t *testing.T) {
		svc := &fakePayrollService{}
		h := payroll.NewHandler(svc)

		emplID := primitive.NewObjectID().Hex()
		c, w := testContext(t, http.MethodPost, "/api/payroll/generate/"+emplID, `{}`)
		c.Params = gin.Params{{Key: "employeeId", Value: emplID}}

		h.Generate(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPayrollHandler_GetForEmployee(t *testing.T) {
	t.Run("malformed id answers 400", func(t *testing.T) {
		svc := &fakePayrollService{
			GetForEmployeeFn: func(ctx context.Context, employeeID string) (payroll.EmployeePayrollResponse, error) {
				return payroll.EmployeePayrollResponse{}, employeeerrors.ErrInvalidEmployeeID
			},
		}
		h := payroll.NewHandler(svc)

		c, w := testContext(t, http.MethodGet, "/api/payroll/employee/bad", "")
		c.Params = gin.Params{{Key: "employeeId", Value: "bad"}}

		h.GetForEmployee(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid Employee ID format")
	})

	t.Run("success", func(t *testing.T) {
		lastPaid := "2024-03-01T00:00:00Z"
		svc := &fakePayrollService{
			GetForEmployeeFn: func(ctx context.Context, employeeID string) (payroll.EmployeePayrollResponse, error) {
				return payroll.EmployeePayrollResponse{
					Name:         "John Doe",
					Salary:       employee.Salary{Basic: 1000, HRA: 200, Other: 50},
					LastPaidDate: &lastPaid,
				}, nil
			},
		}
		h := payroll.NewHandler(svc)

		emplID := primitive.NewObjectID().Hex()
		c, w := testContext(t, http.MethodGet, "/api/payroll/employee/"+emplID, "")
		c.Params = gin.Params{{Key: "employeeId", Value: emplID}}

		h.GetForEmployee(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "2024-03-01T00:00:00Z")
	})
}

func TestPayrollHandler_UpdateSalary(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakePayrollService{
			UpdateSalaryFn: func(ctx context.Context, employeeID string, req payroll.UpdateSalaryRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{
					ID:     employeeID,
					Name:   "John Doe",
					Salary: employee.Salary{Basic: req.Salary.Basic, HRA: req.Salary.HRA, Other: req.Salary.Other},
				}, nil
			},
		}
		h := payroll.NewHandler(svc)

		emplID := primitive.NewObjectID().Hex()
		body := `{"salary":{"basic":2000,"hra":400,"other":100},"lastPaidDate":"2024-03-01"}`
		c, w := testContext(t, http.MethodPut, "/api/payroll/employee/"+emplID+"/payroll", body)
		c.Params = gin.Params{{Key: "employeeId", Value: emplID}}

		h.UpdateSalary(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Payroll updated successfully")
		assert.Contains(t, w.Body.String(), "2000")
	})

	t.Run("missing employee answers 404", func(t *testing.T) {
		svc := &fakePayrollService{
			UpdateSalaryFn: func(ctx context.Context, employeeID string, req payroll.UpdateSalaryRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}
		h := payroll.NewHandler(svc)

		emplID := primitive.NewObjectID().Hex()
		body := `{"salary":{"basic":2000,"hra":400,"other":100}}`
		c, w := testContext(t, http.MethodPut, "/api/payroll/employee/"+emplID+"/payroll", body)
		c.Params = gin.Params{{Key: "employeeId", Value: emplID}}

		h.UpdateSalary(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
