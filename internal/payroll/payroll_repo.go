package payroll

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const payrollsCollection = "payrolls"

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, snapshot *Snapshot) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Snapshot, error)
	FindByEmployee(ctx context.Context, employeeID primitive.ObjectID) ([]Snapshot, error)
}

type repository struct {
	coll *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{coll: db.Collection(payrollsCollection)}
}

func (r *repository) Create(ctx context.Context, snapshot *Snapshot) error {
	snapshot.CreatedAt = time.Now().UTC()

	res, err := r.coll.InsertOne(ctx, snapshot)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		snapshot.ID = oid
	}
	return nil
}

func (r *repository) FindByID(ctx context.Context, id primitive.ObjectID) (*Snapshot, error) {
	var snapshot Snapshot
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&snapshot)
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID primitive.ObjectID) ([]Snapshot, error) {
	cursor, err := r.coll.Find(ctx,
		bson.M{"employeeId": employeeID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var snapshots []Snapshot
	if err := cursor.All(ctx, &snapshots); err != nil {
		return nil, err
	}
	return snapshots, nil
}
