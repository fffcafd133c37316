package payroll

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Snapshot is an immutable record of one payroll computation. It references
// its employee by id only: deleting the employee orphans the snapshot, it
// does not cascade. Nothing ever updates or deletes a snapshot.
type Snapshot struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EmployeeID  primitive.ObjectID `bson:"employeeId" json:"employeeId"`
	Month       string             `bson:"month" json:"month"`
	Year        int                `bson:"year" json:"year"`
	GrossSalary float64            `bson:"grossSalary" json:"grossSalary"`
	Deductions  float64            `bson:"deductions" json:"deductions"`
	NetSalary   float64            `bson:"netSalary" json:"netSalary"`
	Paid        bool               `bson:"paid" json:"paid"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
