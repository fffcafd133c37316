package employee

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const employeesCollection = "employees"

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Employee, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*Employee, error)
	UpdateSalary(ctx context.Context, id primitive.ObjectID, salary Salary, lastPaidDate *time.Time) (*Employee, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type repository struct {
	coll *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{coll: db.Collection(employeesCollection)}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	now := time.Now().UTC()
	empl.CreatedAt = now
	empl.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, empl)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		empl.ID = oid
	}
	return nil
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var empls []Employee
	if err := cursor.All(ctx, &empls); err != nil {
		return nil, err
	}
	return empls, nil
}

func (r *repository) FindByID(ctx context.Context, id primitive.ObjectID) (*Employee, error) {
	var empl Employee
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&empl)
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

// UpdateFields applies a partial $set and returns the post-update document.
func (r *repository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*Employee, error) {
	fields["updatedAt"] = time.Now().UTC()

	var empl Employee
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&empl)
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) UpdateSalary(ctx context.Context, id primitive.ObjectID, salary Salary, lastPaidDate *time.Time) (*Employee, error) {
	return r.UpdateFields(ctx, id, bson.M{
		"salary":       salary,
		"lastPaidDate": lastPaidDate,
	})
}

// Delete removes at most one document and reports no error when nothing
// matched, so deletes stay idempotent for the caller.
func (r *repository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
