package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Employee struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Password     string             `bson:"password" json:"-"`
	Gender       string             `bson:"gender" json:"gender"`
	Phone        string             `bson:"phone" json:"phone"`
	Position     string             `bson:"position" json:"position"`
	Role         Role               `bson:"role" json:"role"`
	Permissions  []string           `bson:"permissions" json:"permissions"`
	DepartmentID primitive.ObjectID `bson:"departmentId" json:"departmentId"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// EmployeeDetail is an employee record with its department resolved.
type EmployeeDetail struct {
	Employee
	Department *DepartmentRef `json:"department,omitempty"`
}
