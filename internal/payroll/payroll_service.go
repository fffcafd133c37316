package payroll

import (
	"context"
	"errors"
	"time"

	"go-payroll/internal/employee"
	employeeerrors "go-payroll/internal/employee/errors"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/shared/contextutil"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// deductionRate is the flat cut applied to gross salary. Not configurable
// and not tax-aware.
const deductionRate = 0.10

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, employeeID string, req GeneratePayrollRequest) (SnapshotResponse, error)
	ListAll(ctx context.Context) ([]employee.EmployeeResponse, error)
	GetForEmployee(ctx context.Context, employeeID string) (EmployeePayrollResponse, error)
	UpdateSalary(ctx context.Context, employeeID string, req UpdateSalaryRequest) (employee.EmployeeResponse, error)
	GetSnapshot(ctx context.Context, id string) (SnapshotResponse, error)
	HistoryForEmployee(ctx context.Context, employeeID string) ([]SnapshotResponse, error)
}

type service struct {
	repo      Repository
	employees employee.Repository
	logger    *zap.Logger
}

func NewService(repo Repository, employees employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{repo: repo, employees: employees, logger: l}
}

// Generate computes and persists a payroll snapshot for one employee and
// period. There is deliberately no (employee, month, year) uniqueness:
// calling this twice for the same period produces two snapshots.
func (s *service) Generate(ctx context.Context, employeeID string, req GeneratePayrollRequest) (SnapshotResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("generate payroll requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("month", req.Month),
		zap.Int("year", req.Year),
	)

	oid, err := primitive.ObjectIDFromHex(employeeID)
	if err != nil {
		return SnapshotResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.employees.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return SnapshotResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		s.logger.Error("generate payroll fetch employee failed", zap.String("request_id", rid), zap.Error(err))
		return SnapshotResponse{}, err
	}

	gross := empl.Salary.Basic + empl.Salary.HRA + empl.Salary.Other
	deductions := gross * deductionRate
	net := gross - deductions

	snapshot := &Snapshot{
		EmployeeID:  empl.ID,
		Month:       req.Month,
		Year:        req.Year,
		GrossSalary: gross,
		Deductions:  deductions,
		NetSalary:   net,
		Paid:        true,
	}

	if err := s.repo.Create(ctx, snapshot); err != nil {
		s.logger.Error("generate payroll persist failed", zap.String("request_id", rid), zap.Error(err))
		return SnapshotResponse{}, err
	}

	s.logger.Info("generate payroll success",
		zap.String("request_id", rid),
		zap.String("payroll_id", snapshot.ID.Hex()),
		zap.Float64("net_salary", net),
	)

	return mapSnapshotToResponse(*snapshot), nil
}

// ListAll returns the employee collection, salary included. The payroll
// overview screen renders employees with their current salary rather than
// snapshot history, so this intentionally does not read the payrolls
// collection.
func (s *service) ListAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	s.logger.Debug("list payroll overview requested")

	empls, err := s.employees.FindAll(ctx)
	if err != nil {
		s.logger.Error("list payroll overview failed", zap.Error(err))
		return nil, err
	}

	return employee.MapToListResponse(empls), nil
}

func (s *service) GetForEmployee(ctx context.Context, employeeID string) (EmployeePayrollResponse, error) {
	s.logger.Debug("get payroll for employee requested", zap.String("employee_id", employeeID))

	// Reject malformed ids before touching the store.
	oid, err := primitive.ObjectIDFromHex(employeeID)
	if err != nil {
		return EmployeePayrollResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.employees.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return EmployeePayrollResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		s.logger.Error("get payroll for employee failed", zap.Error(err))
		return EmployeePayrollResponse{}, err
	}

	resp := EmployeePayrollResponse{
		Name:   empl.Name,
		Salary: empl.Salary,
	}
	if empl.LastPaidDate != nil {
		iso := empl.LastPaidDate.UTC().Format(time.RFC3339)
		resp.LastPaidDate = &iso
	}
	return resp, nil
}

// UpdateSalary overwrites the employee's salary structure and lastPaidDate.
// Snapshots already generated from the old salary are left as they are.
func (s *service) UpdateSalary(ctx context.Context, employeeID string, req UpdateSalaryRequest) (employee.EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update salary requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
	)

	oid, err := primitive.ObjectIDFromHex(employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	var lastPaid *time.Time
	if req.LastPaidDate != nil {
		t, err := employee.ParseFlexibleDate(*req.LastPaidDate)
		if err != nil {
			return employee.EmployeeResponse{}, employeeerrors.ErrInvalidLastPaidDate
		}
		lastPaid = &t
	}

	salary := employee.Salary{
		Basic: req.Salary.Basic,
		HRA:   req.Salary.HRA,
		Other: req.Salary.Other,
	}

	empl, err := s.employees.UpdateSalary(ctx, oid, salary, lastPaid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		s.logger.Error("update salary persist failed", zap.String("request_id", rid), zap.Error(err))
		return employee.EmployeeResponse{}, err
	}

	s.logger.Info("update salary success",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
	)

	return employee.MapToResponse(*empl), nil
}

func (s *service) GetSnapshot(ctx context.Context, id string) (SnapshotResponse, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return SnapshotResponse{}, payrollerrors.ErrInvalidSnapshotID
	}

	snapshot, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return SnapshotResponse{}, payrollerrors.ErrSnapshotNotFound
		}
		s.logger.Error("get payroll snapshot failed", zap.Error(err))
		return SnapshotResponse{}, err
	}

	return mapSnapshotToResponse(*snapshot), nil
}

// HistoryForEmployee lists every snapshot ever generated for the employee,
// newest first. It reads the payrolls collection only, so it keeps working
// for employees that have since been deleted.
func (s *service) HistoryForEmployee(ctx context.Context, employeeID string) ([]SnapshotResponse, error) {
	oid, err := primitive.ObjectIDFromHex(employeeID)
	if err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}

	snapshots, err := s.repo.FindByEmployee(ctx, oid)
	if err != nil {
		s.logger.Error("payroll history failed", zap.Error(err))
		return nil, err
	}

	res := make([]SnapshotResponse, len(snapshots))
	for i, snap := range snapshots {
		res[i] = mapSnapshotToResponse(snap)
	}
	return res, nil
}

func mapSnapshotToResponse(snapshot Snapshot) SnapshotResponse {
	return SnapshotResponse{
		ID:          snapshot.ID.Hex(),
		EmployeeID:  snapshot.EmployeeID.Hex(),
		Month:       snapshot.Month,
		Year:        snapshot.Year,
		GrossSalary: snapshot.GrossSalary,
		Deductions:  snapshot.Deductions,
		NetSalary:   snapshot.NetSalary,
		Paid:        snapshot.Paid,
	}
}
