package employee_test

import (
	"context"
	"testing"
	"time"

	"go-payroll/internal/employee"
	employeeerrors "go-payroll/internal/employee/errors"
	employeeMock "go-payroll/internal/employee/mock"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/mock/gomock"
)

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := employeeMock.NewMockRepository(ctrl)
	service := employee.NewService(mockRepo)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		req := employee.CreateEmployeeRequest{
			Name:        "John Doe",
			Email:       "john@example.com",
			Department:  "Engineering",
			Role:        "Developer",
			JoiningDate: "2024-01-15",
			Salary:      employee.SalaryInput{Basic: 1000, HRA: 200, Other: 50},
		}

		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, empl *employee.Employee) error {
				assert.Equal(t, "John Doe", empl.Name)
				assert.Equal(t, 1000.0, empl.Salary.Basic)
				empl.ID = primitive.NewObjectID()
				return nil
			})

		resp, err := service.Create(ctx, req)

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "2024-01-15", resp.JoiningDate)
		assert.Nil(t, resp.LastPaidDate)
	})

	t.Run("invalid joining date", func(t *testing.T) {
		req := employee.CreateEmployeeRequest{
			Name:        "John Doe",
			Email:       "john@example.com",
			JoiningDate: "15/01/2024",
		}

		_, err := service.Create(ctx, req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidJoiningDate)
	})
}

func TestService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := employeeMock.NewMockRepository(ctrl)
	service := employee.NewService(mockRepo)
	ctx := context.Background()

	t.Run("malformed id rejected without store access", func(t *testing.T) {
		_, err := service.GetByID(ctx, "not-an-object-id")

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})

	t.Run("not found", func(t *testing.T) {
		oid := primitive.NewObjectID()
		mockRepo.EXPECT().
			FindByID(ctx, oid).
			Return(nil, mongo.ErrNoDocuments)

		_, err := service.GetByID(ctx, oid.Hex())

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("success serializes lastPaidDate as ISO-8601", func(t *testing.T) {
		oid := primitive.NewObjectID()
		lastPaid := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		mockRepo.EXPECT().
			FindByID(ctx, oid).
			Return(&employee.Employee{
				ID:           oid,
				Name:         "John Doe",
				JoiningDate:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
				LastPaidDate: &lastPaid,
			}, nil)

		resp, err := service.GetByID(ctx, oid.Hex())

		assert.NoError(t, err)
		assert.NotNil(t, resp.LastPaidDate)
		assert.Equal(t, "2024-02-01T00:00:00Z", *resp.LastPaidDate)
	})
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := employeeMock.NewMockRepository(ctrl)
	service := employee.NewService(mockRepo)
	ctx := context.Background()

	t.Run("partial update only writes provided fields", func(t *testing.T) {
		oid := primitive.NewObjectID()
		newName := "Renamed"

		mockRepo.EXPECT().
			UpdateFields(ctx, oid, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ primitive.ObjectID, fields bson.M) (*employee.Employee, error) {
				assert.Equal(t, "Renamed", fields["name"])
				_, hasEmail := fields["email"]
				assert.False(t, hasEmail)
				_, hasSalary := fields["salary"]
				assert.False(t, hasSalary)
				return &employee.Employee{ID: oid, Name: "Renamed"}, nil
			})

		resp, err := service.Update(ctx, oid.Hex(), employee.UpdateEmployeeRequest{Name: &newName})

		assert.NoError(t, err)
		assert.Equal(t, "Renamed", resp.Name)
	})

	t.Run("missing employee", func(t *testing.T) {
		oid := primitive.NewObjectID()
		newName := "Renamed"

		mockRepo.EXPECT().
			UpdateFields(ctx, oid, gomock.Any()).
			Return(nil, mongo.ErrNoDocuments)

		_, err := service.Update(ctx, oid.Hex(), employee.UpdateEmployeeRequest{Name: &newName})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := employeeMock.NewMockRepository(ctrl)
	service := employee.NewService(mockRepo)
	ctx := context.Background()

	t.Run("idempotent for the caller", func(t *testing.T) {
		oid := primitive.NewObjectID()

		// Repository reports success whether or not a document matched.
		mockRepo.EXPECT().
			Delete(ctx, oid).
			Return(nil).
			Times(2)

		assert.NoError(t, service.Delete(ctx, oid.Hex()))
		assert.NoError(t, service.Delete(ctx, oid.Hex()))
	})
}
