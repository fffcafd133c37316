package employee

import (
	"context"
	"time"

	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/shared/contextutil"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	joiningDate, err := time.Parse(dateLayout, req.JoiningDate)
	if err != nil {
		s.logger.Warn("create employee invalid joiningDate",
			zap.String("joiningDate", req.JoiningDate),
			zap.Error(err),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidJoiningDate
	}

	empl := &Employee{
		Name:        req.Name,
		Email:       req.Email,
		Department:  req.Department,
		Role:        req.Role,
		JoiningDate: joiningDate,
		Salary: Salary{
			Basic: req.Salary.Basic,
			HRA:   req.Salary.HRA,
			Other: req.Salary.Other,
		},
	}

	if err := s.repo.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.Hex()),
	)

	return MapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested")

	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return MapToListResponse(empls), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return MapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	fields, err := buildUpdateFields(req)
	if err != nil {
		return EmployeeResponse{}, err
	}

	empl, err := s.repo.UpdateFields(ctx, oid, fields)
	if err != nil {
		s.logger.Error("update employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	return MapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	if err := s.repo.Delete(ctx, oid); err != nil {
		s.logger.Error("delete employee failed", zap.String("request_id", rid), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func buildUpdateFields(req UpdateEmployeeRequest) (bson.M, error) {
	fields := bson.M{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Department != nil {
		fields["department"] = *req.Department
	}
	if req.Role != nil {
		fields["role"] = *req.Role
	}
	if req.JoiningDate != nil {
		joiningDate, err := time.Parse(dateLayout, *req.JoiningDate)
		if err != nil {
			return nil, employeeerrors.ErrInvalidJoiningDate
		}
		fields["joiningDate"] = joiningDate
	}
	if req.Salary != nil {
		fields["salary"] = Salary{
			Basic: req.Salary.Basic,
			HRA:   req.Salary.HRA,
			Other: req.Salary.Other,
		}
	}
	if req.LastPaidDate != nil {
		lastPaid, err := ParseFlexibleDate(*req.LastPaidDate)
		if err != nil {
			return nil, employeeerrors.ErrInvalidLastPaidDate
		}
		fields["lastPaidDate"] = lastPaid
	}
	return fields, nil
}

// ParseFlexibleDate accepts both the date-only layout the forms send and
// full RFC 3339 timestamps.
func ParseFlexibleDate(v string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, v); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, v)
}

func MapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:          empl.ID.Hex(),
		Name:        empl.Name,
		Email:       empl.Email,
		Department:  empl.Department,
		Role:        empl.Role,
		JoiningDate: empl.JoiningDate.Format(dateLayout),
		Salary:      empl.Salary,
	}
	if empl.LastPaidDate != nil {
		iso := empl.LastPaidDate.UTC().Format(time.RFC3339)
		resp.LastPaidDate = &iso
	}
	return resp
}

func MapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = MapToResponse(e)
	}
	return res
}
