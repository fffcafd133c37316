package employee

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Salary struct {
	Basic float64 `bson:"basic" json:"basic"`
	HRA   float64 `bson:"hra" json:"hra"`
	Other float64 `bson:"other" json:"other"`
}

type Employee struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Department   string             `bson:"department" json:"department"`
	Role         string             `bson:"role" json:"role"`
	JoiningDate  time.Time          `bson:"joiningDate" json:"joiningDate"`
	Salary       Salary             `bson:"salary" json:"salary"`
	LastPaidDate *time.Time         `bson:"lastPaidDate,omitempty" json:"lastPaidDate"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
